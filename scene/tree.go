package scene

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"slices"
	"strings"
)

var ErrNoSuchNode = errors.New("no such node")
var ErrInTree = errors.New("node is already in the tree")
var ErrNotInTree = errors.New("node is not in the tree")
var ErrHasParent = errors.New("node already has a parent")

type entry struct {
	id       NodeId
	node     Node
	parent   NodeId
	children []NodeId
	inTree   bool
	ready    bool
}

// Tree holds a hierarchy of nodes and drives their lifecycle hooks.
//
// Nodes are inserted with AddRoot or AddChild. A node that is detached with Detach keeps its
// id and its subtree and can be inserted again using Attach. The Tree is not safe for concurrent use,
// all hooks run synchronously on the goroutine that mutates the tree.
type Tree struct {
	nodeIdSeq NodeId
	entries   map[NodeId]*entry
	roots     []NodeId
	observers []*observer

	observerIdSeq ObserverId

	// number of operations currently running. Deferred work
	// is executed once the outermost operation completes.
	activeOps int
	deferred  []func() error
}

// NewTree creates a new empty tree.
func NewTree() *Tree {
	return &Tree{
		entries: map[NodeId]*entry{},
	}
}

// AddRoot inserts the spawn as a new root of the tree.
func (t *Tree) AddRoot(spawn Spawn) (NodeId, error) {
	return t.AddChild(NoNodeId, spawn)
}

// AddChild creates the nodes described by spawn and inserts them below the given parent.
// If any hook fails, all created nodes are removed again and the error is returned.
func (t *Tree) AddChild(parentId NodeId, spawn Spawn) (NodeId, error) {
	if parentId != NoNodeId {
		parent, ok := t.entries[parentId]
		if !ok {
			return NoNodeId, fmt.Errorf("add child to %s: %w", parentId, ErrNoSuchNode)
		}

		if !parent.inTree {
			return NoNodeId, fmt.Errorf("add child to %s: %w", t.Path(parentId), ErrNotInTree)
		}
	}

	t.begin()

	id := t.create(spawn)

	err := t.attach(parentId, id)
	if err != nil {
		t.remove(id)
		return NoNodeId, t.end(err)
	}

	return id, t.end(nil)
}

// Attach inserts a previously detached subtree below the given parent.
func (t *Tree) Attach(parentId NodeId, id NodeId) error {
	e, ok := t.entries[id]
	if !ok {
		return fmt.Errorf("attach %s: %w", id, ErrNoSuchNode)
	}

	if e.inTree {
		return fmt.Errorf("attach %s: %w", t.Path(id), ErrInTree)
	}

	if e.parent != NoNodeId {
		return fmt.Errorf("attach %s: %w", t.Path(id), ErrHasParent)
	}

	if parentId != NoNodeId {
		parent, ok := t.entries[parentId]
		if !ok {
			return fmt.Errorf("attach %s to %s: %w", t.Path(id), parentId, ErrNoSuchNode)
		}

		if !parent.inTree {
			return fmt.Errorf("attach %s to %s: %w", t.Path(id), t.Path(parentId), ErrNotInTree)
		}
	}

	t.begin()
	return t.end(t.attach(parentId, id))
}

// Detach removes the subtree rooted at the given node from the tree.
// The nodes stay known to the tree and can be attached again.
func (t *Tree) Detach(id NodeId) error {
	e, ok := t.entries[id]
	if !ok {
		return fmt.Errorf("detach %s: %w", id, ErrNoSuchNode)
	}

	if !e.inTree {
		return fmt.Errorf("detach %s: %w", t.Path(id), ErrNotInTree)
	}

	t.begin()
	t.exit(id)
	t.unlink(id)
	return t.end(nil)
}

// Despawn removes the subtree rooted at the given node from the tree and
// forgets about all nodes within it.
func (t *Tree) Despawn(id NodeId) {
	e, ok := t.entries[id]
	if !ok {
		slog.Warn("Cannot despawn node, does not exist", slog.Any("nodeId", id))
		return
	}

	t.begin()

	if e.inTree {
		t.exit(id)
	}

	t.unlink(id)
	t.remove(id)

	if err := t.end(nil); err != nil {
		slog.Warn("Deferred work failed during despawn", slog.String("error", err.Error()))
	}
}

// Node returns the node value with the given id.
func (t *Tree) Node(id NodeId) (Node, bool) {
	e, ok := t.entries[id]
	if !ok {
		return nil, false
	}

	return e.node, true
}

// Parent returns the id of the parent node. Returns false for
// roots, detached subtrees and unknown nodes.
func (t *Tree) Parent(id NodeId) (NodeId, bool) {
	e, ok := t.entries[id]
	if !ok || e.parent == NoNodeId {
		return NoNodeId, false
	}

	return e.parent, true
}

// Children returns the children of the node in insertion order.
// You **must not** modify the returned slice.
func (t *Tree) Children(id NodeId) []NodeId {
	e, ok := t.entries[id]
	if !ok {
		return nil
	}

	return e.children
}

// Roots returns the root nodes in insertion order.
func (t *Tree) Roots() []NodeId {
	return slices.Clone(t.roots)
}

// InTree returns true if the node is currently part of the tree.
func (t *Tree) InTree(id NodeId) bool {
	e, ok := t.entries[id]
	return ok && e.inTree
}

// Len returns the number of nodes known to the tree, including detached ones.
func (t *Tree) Len() int {
	return len(t.entries)
}

// Path returns a human readable path of the node, e.g. /Display/Occluder#3
func (t *Tree) Path(id NodeId) string {
	var segments []string

	for id != NoNodeId {
		e, ok := t.entries[id]
		if !ok {
			segments = append(segments, "?#"+id.String())
			break
		}

		segments = append(segments, nodeName(e))
		id = e.parent
	}

	slices.Reverse(segments)
	return "/" + strings.Join(segments, "/")
}

func nodeName(e *entry) string {
	if named, ok := e.node.(Named); ok {
		return named.NodeName()
	}

	ty := reflect.TypeOf(e.node)
	for ty != nil && ty.Kind() == reflect.Pointer {
		ty = ty.Elem()
	}

	name := "nil"
	if ty != nil {
		name = ty.Name()
	}

	return name + "#" + e.id.String()
}

func (t *Tree) create(spawn Spawn) NodeId {
	if spawn.Node == nil {
		panic("can not spawn a nil node")
	}

	t.nodeIdSeq += 1

	e := &entry{
		id:   t.nodeIdSeq,
		node: spawn.Node,
	}

	t.entries[e.id] = e

	for _, childSpawn := range spawn.Children {
		childId := t.create(childSpawn)
		t.entries[childId].parent = e.id
		e.children = append(e.children, childId)
	}

	return e.id
}

// attach links the subtree to its parent and runs the enter and ready hooks.
// On failure, the subtree is detached again.
func (t *Tree) attach(parentId NodeId, id NodeId) error {
	t.link(parentId, id)

	if err := t.enter(id); err != nil {
		t.exit(id)
		t.unlink(id)
		return err
	}

	if err := t.ready(id); err != nil {
		t.exit(id)
		t.unlink(id)
		return err
	}

	return nil
}

func (t *Tree) link(parentId NodeId, id NodeId) {
	t.entries[id].parent = parentId

	if parentId == NoNodeId {
		t.roots = append(t.roots, id)
		return
	}

	parent := t.entries[parentId]
	parent.children = append(parent.children, id)
}

func (t *Tree) unlink(id NodeId) {
	e := t.entries[id]

	if e.parent == NoNodeId {
		t.roots = deleteValue(t.roots, id)
		return
	}

	if parent, ok := t.entries[e.parent]; ok {
		parent.children = deleteValue(parent.children, id)
	}

	e.parent = NoNodeId
}

// enter runs the enter hooks top down. Nodes that entered before a hook
// failed stay marked as in tree, so that exit can undo them.
func (t *Tree) enter(id NodeId) error {
	e := t.entries[id]
	e.inTree = true

	if hook, ok := e.node.(EnterTreeHook); ok {
		if err := hook.EnterTree(t.contextOf(id)); err != nil {
			e.inTree = false
			return fmt.Errorf("enter tree %s: %w", t.Path(id), err)
		}
	}

	slog.Debug("Node entered tree", slog.String("path", t.Path(id)))
	Trigger(t, id, NodeEntered{})

	for _, childId := range e.children {
		if err := t.enter(childId); err != nil {
			return err
		}
	}

	return nil
}

// ready runs the ready hooks bottom up, once per node.
func (t *Tree) ready(id NodeId) error {
	e := t.entries[id]

	for _, childId := range e.children {
		if err := t.ready(childId); err != nil {
			return err
		}
	}

	if e.ready {
		return nil
	}

	if hook, ok := e.node.(ReadyHook); ok {
		if err := hook.Ready(t.contextOf(id)); err != nil {
			return fmt.Errorf("ready %s: %w", t.Path(id), err)
		}
	}

	e.ready = true

	return nil
}

// exit runs the exit hooks bottom up for all nodes of the subtree that are in the tree.
func (t *Tree) exit(id NodeId) {
	e := t.entries[id]
	if !e.inTree {
		return
	}

	for _, childId := range slices.Backward(e.children) {
		t.exit(childId)
	}

	if hook, ok := e.node.(ExitTreeHook); ok {
		hook.ExitTree(t.contextOf(id))
	}

	e.inTree = false

	slog.Debug("Node exited tree", slog.String("path", t.Path(id)))
	Trigger(t, id, NodeExited{})
}

// remove forgets about all nodes within the subtree.
func (t *Tree) remove(id NodeId) {
	queue := []NodeId{id}

	for idx := 0; idx < len(queue); idx++ {
		e, ok := t.entries[queue[idx]]
		if !ok {
			continue
		}

		queue = append(queue, e.children...)
	}

	for _, id := range queue {
		delete(t.entries, id)
	}

	t.observers = slices.DeleteFunc(t.observers, func(o *observer) bool {
		return o.target != NoNodeId && slices.Contains(queue, o.target)
	})
}

func (t *Tree) begin() {
	t.activeOps += 1
}

// end finishes an operation. Once the outermost operation ends, all deferred
// work is executed. Errors of the deferred work are joined with err.
func (t *Tree) end(err error) error {
	t.activeOps -= 1
	if t.activeOps > 0 {
		return err
	}

	errs := []error{err}

	for len(t.deferred) > 0 {
		fn := t.deferred[0]
		t.deferred = t.deferred[1:]

		t.activeOps += 1
		errs = append(errs, fn())
		t.activeOps -= 1
	}

	return errors.Join(errs...)
}

func (t *Tree) defer_(fn func() error) {
	if t.activeOps == 0 {
		panic("deferred work outside of a tree operation")
	}

	t.deferred = append(t.deferred, fn)
}

func deleteValue[T comparable](values []T, value T) []T {
	idx := slices.Index(values, value)
	if idx < 0 {
		return values
	}

	return slices.Delete(values, idx, idx+1)
}
