package scene

import (
	"iter"
	"maps"
	"slices"
)

// NodesOf iterates over all nodes of type T that are currently in the tree,
// ordered by their id.
func NodesOf[T any](tree *Tree) iter.Seq2[NodeId, T] {
	return func(yield func(NodeId, T) bool) {
		for _, id := range slices.Sorted(maps.Keys(tree.entries)) {
			e, ok := tree.entries[id]
			if !ok || !e.inTree {
				continue
			}

			value, ok := e.node.(T)
			if !ok {
				continue
			}

			if !yield(id, value) {
				return
			}
		}
	}
}

// Single returns the only node of type T that is in the tree.
// Returns false if there is none or more than one.
func Single[T any](tree *Tree) (NodeId, T, bool) {
	var foundId NodeId
	var found T
	var count int

	for id, value := range NodesOf[T](tree) {
		foundId, found = id, value
		count += 1

		if count > 1 {
			var tNil T
			return NoNodeId, tNil, false
		}
	}

	return foundId, found, count == 1
}
