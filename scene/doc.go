// Package scene provides a minimal scene tree of nodes with lifecycle hooks.
//
// Nodes are plain Go values. They take part in the lifecycle by implementing EnterTreeHook,
// ReadyHook or ExitTreeHook. Spatial nodes embed Node3D which carries a Transform
// relative to the parent node.
//
// Insert a subtree described by Child:
//
//	tree := scene.NewTree()
//	id, err := tree.AddRoot(scene.Child(parent, scene.Child(first), scene.Child(second)))
//
// EnterTree hooks run top down, Ready hooks run bottom up once all children have entered.
package scene
