// Package ebitenview renders the debug lines of a scene tree into an ebiten window.
package ebitenview

import (
	"fmt"
	"image/color"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/oliverbestmann/voxelcast/display"
	"github.com/oliverbestmann/voxelcast/gm"
	"github.com/oliverbestmann/voxelcast/scene"
)

type WindowConfig struct {
	Title         string
	Width         int
	Height        int
	DisableResize bool
}

var DefaultWindowConfig = WindowConfig{
	Title:  "voxelcast",
	Width:  1024,
	Height: 768,
}

const orbitSpeed = gm.Rad(0.03)

// Run opens a window showing the debug lines of the tree and blocks until the window is closed.
func Run(tree *scene.Tree, d *display.Display, win WindowConfig) error {
	ebiten.SetWindowTitle(win.Title)
	ebiten.SetWindowSize(win.Width, win.Height)

	if !win.DisableResize {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	theGame := &game{
		segments: CollectSegments(tree),
		camera:   DefaultCamera(),
		display:  d,
	}

	var options ebiten.RunGameOptions
	options.SingleThread = true

	return ebiten.RunGameWithOptions(theGame, &options)
}

type game struct {
	segments []Segment
	camera   Camera
	display  *display.Display

	showTimings bool
	width       int
	height      int

	tempPath vector.Path
}

// colors returns the distinct colors of all segments in order of first use.
func (g *game) colors() []display.Color {
	var colors []display.Color

	for _, segment := range g.segments {
		if !slices.Contains(colors, segment.Color) {
			colors = append(colors, segment.Color)
		}
	}

	return colors
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.showTimings = !g.showTimings
	}

	var yaw, pitch gm.Rad

	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		yaw -= orbitSpeed
	}

	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		yaw += orbitSpeed
	}

	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		pitch += orbitSpeed
	}

	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		pitch -= orbitSpeed
	}

	g.camera = g.camera.Orbit(yaw, pitch)

	if ebiten.IsKeyPressed(ebiten.KeyEqual) || ebiten.IsKeyPressed(ebiten.KeyKPAdd) {
		g.camera = g.camera.Zoom(0.98)
	}

	if ebiten.IsKeyPressed(ebiten.KeyMinus) || ebiten.IsKeyPressed(ebiten.KeyKPSubtract) {
		g.camera = g.camera.Zoom(1.02)
	}

	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	width := float32(g.width)
	height := float32(g.height)

	viewProjection := g.camera.ViewProjection(width / max(height, 1))

	// one path per color
	for _, clr := range g.colors() {
		path := &g.tempPath
		path.Reset()

		for _, segment := range g.segments {
			if segment.Color != clr {
				continue
			}

			x0, y0, ok0 := Project(viewProjection, segment.Start, width, height)
			x1, y1, ok1 := Project(viewProjection, segment.End, width, height)
			if !ok0 || !ok1 {
				continue
			}

			path.MoveTo(x0, y0)
			path.LineTo(x1, y1)
		}

		vector.StrokePath(screen, path, clr, true, &vector.StrokeOptions{
			Width:   1.5,
			LineCap: vector.LineCapRound,
		})
	}

	ebitenutil.DebugPrintAt(screen, "arrows: orbit, +/-: zoom, d: timings, q: quit", 16, 16)

	if g.showTimings && g.display != nil {
		t := g.display.Timings()
		result := g.display.Result()

		text := fmt.Sprintf("casts=%d, latest=%4.2fms, min=%4.2fms, max=%4.2fms, avg=%4.2fms\nlevels=%d, visible=%d, blocking=%d",
			t.Count,
			t.Latest.Seconds()*1000,
			t.Min.Seconds()*1000,
			t.Max.Seconds()*1000,
			t.MovingAverage.Seconds()*1000,
			len(result.Levels),
			result.Visible.Len(),
			result.Blocking.Len(),
		)

		ebitenutil.DebugPrintAt(screen, text, 16, 32)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	g.width = outsideWidth
	g.height = outsideHeight
	return outsideWidth, outsideHeight
}
