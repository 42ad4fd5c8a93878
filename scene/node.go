package scene

import (
	"log/slog"
	"strconv"
)

// NodeId identifies a node within a Tree. Ids are never reused.
type NodeId uint32

// NoNodeId is the parent of every root node.
const NoNodeId = NodeId(0)

func (id NodeId) String() string {
	return strconv.Itoa(int(id))
}

func (id NodeId) LogValue() slog.Value {
	return slog.StringValue(id.String())
}

// Node is any value that lives in a Tree. Nodes opt into lifecycle
// callbacks by implementing one or more of the hook interfaces.
// Nodes are normally pointers so hooks can update their own state.
type Node = any

// EnterTreeHook is called each time a node enters the tree, after its parent
// has entered, before its children. Returning an error aborts the insertion.
type EnterTreeHook interface {
	EnterTree(ctx *Context) error
}

// ReadyHook is called once per node, after the node and all of its
// children have entered the tree for the first time.
type ReadyHook interface {
	Ready(ctx *Context) error
}

// ExitTreeHook is called each time a node leaves the tree, after all its children left.
type ExitTreeHook interface {
	ExitTree(ctx *Context)
}

// Named nodes use their name in node paths instead of their type.
type Named interface {
	NodeName() string
}

// Spawn describes a node together with the children that should be
// inserted below it.
type Spawn struct {
	Node     Node
	Children []Spawn
}

// Child builds a Spawn for the given node and children.
func Child(node Node, children ...Spawn) Spawn {
	return Spawn{
		Node:     node,
		Children: children,
	}
}

// Len returns the number of nodes within the spawn, including the root.
func (s Spawn) Len() int {
	count := 1
	for _, child := range s.Children {
		count += child.Len()
	}

	return count
}
