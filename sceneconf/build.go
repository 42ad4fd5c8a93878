package sceneconf

import (
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/voxelcast/display"
	"github.com/oliverbestmann/voxelcast/gm"
	"github.com/oliverbestmann/voxelcast/occluder"
	"github.com/oliverbestmann/voxelcast/scene"
)

// Build creates the Display with all its occluders and inserts it as a new root into the
// tree. The occluders register their cells while entering the tree, the Display casts
// once all of them have entered.
func Build(tree *scene.Tree, desc Scene) (scene.NodeId, *display.Display, error) {
	if err := desc.Validate(); err != nil {
		return scene.NoNodeId, nil, err
	}

	rounding, err := gm.ParseRounding(desc.Display.Rounding)
	if err != nil {
		return scene.NoNodeId, nil, err
	}

	size := desc.Display.Size
	d := display.New(gm.IVecOf(size[0], size[1], size[2]))
	d.Caster.MaxDepth = desc.Display.MaxDepth
	d.Debug.Enabled = desc.Display.Debug.Enabled == nil || *desc.Display.Debug.Enabled
	d.Debug.Line.Mesh.Sections = desc.Display.Debug.Sections
	d.Debug.Line.Mesh.Radius = desc.Display.Debug.Radius

	var children []scene.Spawn

	for _, config := range desc.Occluders {
		o := occluder.New(config.position())
		o.Rounding = rounding

		if config.Val != nil {
			o.Val = *config.Val
		}

		children = append(children, scene.Child(o))
	}

	displayId, err := tree.AddRoot(scene.Child(d, children...))
	if err != nil {
		return scene.NoNodeId, nil, fmt.Errorf("build scene: %w", err)
	}

	slog.Info("Scene built",
		slog.Int("occluders", len(desc.Occluders)),
		slog.Int("occludedCells", d.Grid.Count()),
		slog.String("rounding", rounding.String()))

	return displayId, d, nil
}
