// Package sceneconf loads scene descriptions and builds the scene tree they describe.
package sceneconf

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oliverbestmann/voxelcast/display"
	"github.com/oliverbestmann/voxelcast/gm"
	"github.com/oliverbestmann/voxelcast/occluder"
	"gopkg.in/yaml.v3"
)

const MaxDepthLimit = 32

// MaxGridSize limits each axis of the grid.
const MaxGridSize = 1024

var ErrInvalid = errors.New("invalid scene")

// Scene describes a Display and the occluders placed below it.
type Scene struct {
	Display   DisplayConfig    `yaml:"display"`
	Occluders []OccluderConfig `yaml:"occluders"`
}

type DisplayConfig struct {
	Size     [3]int32    `yaml:"size,flow"`
	MaxDepth int         `yaml:"max_depth"`
	Rounding string      `yaml:"rounding"`
	Debug    DebugConfig `yaml:"debug"`
}

type DebugConfig struct {
	Enabled  *bool   `yaml:"enabled,omitempty"`
	Sections int     `yaml:"sections"`
	Radius   float32 `yaml:"radius"`
}

type OccluderConfig struct {
	Position [3]float32 `yaml:"position,flow"`
	Val      *float32   `yaml:"val,omitempty"`
}

// Default returns a small scene with a wall at depth 3 that has a hole in it.
func Default() Scene {
	scene := Scene{}

	for x := range 4 {
		for y := range 4 {
			if x == 2 && y == 1 {
				continue
			}

			scene.Occluders = append(scene.Occluders, OccluderConfig{
				Position: [3]float32{float32(x), float32(y), 3},
			})
		}
	}

	scene.applyDefaults()

	return scene
}

// Load reads a scene from yaml. Missing values are filled with their defaults.
func Load(r io.Reader) (Scene, error) {
	var scene Scene

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	if err := decoder.Decode(&scene); err != nil && !errors.Is(err, io.EOF) {
		return Scene{}, fmt.Errorf("decode scene: %w", err)
	}

	scene.applyDefaults()

	if err := scene.Validate(); err != nil {
		return Scene{}, err
	}

	return scene, nil
}

// LoadFile reads a scene from the given file.
func LoadFile(path string) (Scene, error) {
	fp, err := os.Open(path)
	if err != nil {
		return Scene{}, fmt.Errorf("open scene: %w", err)
	}

	defer fp.Close()

	scene, err := Load(fp)
	if err != nil {
		return Scene{}, fmt.Errorf("load %q: %w", path, err)
	}

	return scene, nil
}

// Encode writes the scene as yaml.
func (s Scene) Encode(w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	if err := encoder.Encode(s); err != nil {
		return fmt.Errorf("encode scene: %w", err)
	}

	return encoder.Close()
}

func (s *Scene) applyDefaults() {
	if s.Display.Size == [3]int32{} {
		size := display.DefaultGridSize
		s.Display.Size = [3]int32{size.X, size.Y, size.Z}
	}

	if s.Display.MaxDepth == 0 {
		s.Display.MaxDepth = display.DefaultMaxDepth
	}

	if s.Display.Rounding == "" {
		s.Display.Rounding = gm.RoundHalfUp.String()
	}

	if s.Display.Debug.Enabled == nil {
		enabled := true
		s.Display.Debug.Enabled = &enabled
	}

	if s.Display.Debug.Sections == 0 {
		s.Display.Debug.Sections = display.DefaultDebugLine.Mesh.Sections
	}

	if s.Display.Debug.Radius == 0 {
		s.Display.Debug.Radius = display.DefaultDebugLine.Mesh.Radius
	}

	for idx := range s.Occluders {
		if s.Occluders[idx].Val == nil {
			val := float32(occluder.DefaultVal)
			s.Occluders[idx].Val = &val
		}
	}
}

// Validate checks that the scene can be built.
func (s *Scene) Validate() error {
	for _, size := range s.Display.Size {
		if size <= 0 || size > MaxGridSize {
			return fmt.Errorf("%w: grid size must be within [1, %d], got %v", ErrInvalid, MaxGridSize, s.Display.Size)
		}
	}

	size := s.Display.Size
	if cells := display.CellCount(gm.IVecOf(size[0], size[1], size[2])); cells > display.MaxGridCells {
		return fmt.Errorf("%w: grid has %d cells, at most %d are allowed", ErrInvalid, cells, display.MaxGridCells)
	}

	if s.Display.MaxDepth < 1 || s.Display.MaxDepth > MaxDepthLimit {
		return fmt.Errorf("%w: max_depth must be within [1, %d], got %d", ErrInvalid, MaxDepthLimit, s.Display.MaxDepth)
	}

	if _, err := gm.ParseRounding(s.Display.Rounding); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	if s.Display.Debug.Sections < 1 {
		return fmt.Errorf("%w: debug sections must be positive, got %d", ErrInvalid, s.Display.Debug.Sections)
	}

	return nil
}

func (c OccluderConfig) position() mgl32.Vec3 {
	return mgl32.Vec3(c.Position)
}
