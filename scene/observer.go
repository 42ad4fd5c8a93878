package scene

import (
	"fmt"
	"reflect"
)

// NodeEntered is triggered on a node after it entered the tree.
type NodeEntered struct{}

// NodeExited is triggered on a node after it left the tree.
type NodeExited struct{}

// On is the value an observer receives when an event is triggered.
type On[E any] struct {
	Target NodeId
	Event  E
}

type ObserverId uint32

type observer struct {
	id        ObserverId
	eventType reflect.Type
	target    NodeId
	callback  func(target NodeId, event any)
}

// Observe registers a callback that is invoked for each event of type E
// triggered on any node.
func Observe[E any](tree *Tree, callback func(On[E])) ObserverId {
	return ObserveNode(tree, NoNodeId, callback)
}

// ObserveNode registers a callback that is invoked for each event of type E triggered on
// the given node. Observing NoNodeId observes all nodes. The observer is removed
// once the node is despawned.
func ObserveNode[E any](tree *Tree, nodeId NodeId, callback func(On[E])) ObserverId {
	if callback == nil {
		panic("observer callback must not be nil")
	}

	if nodeId != NoNodeId {
		if _, ok := tree.entries[nodeId]; !ok {
			panic(fmt.Sprintf("can not observe node %s: does not exist", nodeId))
		}
	}

	tree.observerIdSeq += 1
	id := tree.observerIdSeq

	tree.observers = append(tree.observers, &observer{
		id:        id,
		eventType: reflect.TypeFor[E](),
		target:    nodeId,
		callback: func(target NodeId, event any) {
			callback(On[E]{Target: target, Event: event.(E)})
		},
	})

	return id
}

// Unobserve removes an observer previously registered with Observe or ObserveNode.
func (t *Tree) Unobserve(id ObserverId) {
	for idx, o := range t.observers {
		if o.id == id {
			t.observers = append(t.observers[:idx:idx], t.observers[idx+1:]...)
			return
		}
	}
}

// Trigger invokes all observers of event type E that observe the target node
// or all nodes.
func Trigger[E any](tree *Tree, target NodeId, event E) {
	eventType := reflect.TypeFor[E]()

	// observers might register new observers while running
	observers := append([]*observer(nil), tree.observers...)

	for _, o := range observers {
		if o.eventType != eventType {
			continue
		}

		if o.target != NoNodeId && o.target != target {
			continue
		}

		o.callback(target, event)
	}
}
