// Package display implements the occlusion grid and the recursive shadowcasting.
//
// A Display node owns a Grid. Occluder children register their cells while entering
// the tree. When the Display becomes ready, a Caster casts light from the origin of the
// grid along the positive z axis. For each depth, the visible region is a rectangle
// within the plane in front of that depth. Occluded cells project a rectangle onto that plane,
// whatever is left of the view is passed on to the next depth as a new region of slopes.
//
// The result is visualised using DebugLine3D children of the Display.
package display
