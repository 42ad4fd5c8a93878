package termview

import (
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/oliverbestmann/voxelcast/display"
)

var (
	styleDefault  = tcell.StyleDefault
	styleVisible  = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleBlocking = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleHidden   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleHeader   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
)

// Viewer shows one slice at a time. Left and right switch between depths.
type Viewer struct {
	slices  []Slice
	current int
	summary string
}

func NewViewer(d *display.Display) *Viewer {
	result := d.Result()

	maxDepth := d.Caster.MaxDepth
	if maxDepth <= 0 {
		maxDepth = display.DefaultMaxDepth
	}

	return &Viewer{
		slices: BuildSlices(d.Grid, result, maxDepth),
		summary: fmt.Sprintf("levels=%d visible=%d blocking=%d duration=%s",
			len(result.Levels), result.Visible.Len(), result.Blocking.Len(), result.Duration),
	}
}

// Current returns the slice that is currently shown.
func (v *Viewer) Current() (Slice, bool) {
	if len(v.slices) == 0 {
		return Slice{}, false
	}

	return v.slices[v.current], true
}

// HandleKey updates the viewer. Returns false if the viewer should be closed.
func (v *Viewer) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false

	case tcell.KeyLeft:
		v.current = max(v.current-1, 0)

	case tcell.KeyRight:
		v.current = min(v.current+1, max(len(v.slices)-1, 0))

	case tcell.KeyRune:
		if ev.Rune() == 'q' {
			return false
		}
	}

	return true
}

// Draw renders the current slice with y growing upwards.
func (v *Viewer) Draw(screen tcell.Screen) {
	screen.Clear()

	slice, ok := v.Current()
	if !ok {
		drawText(screen, 0, 0, styleHeader, "nothing to show")
		screen.Show()
		return
	}

	header := fmt.Sprintf("depth %d/%d  %s", slice.Depth, len(v.slices), v.summary)
	drawText(screen, 0, 0, styleHeader, header)
	drawText(screen, 0, 1, styleDefault, "left/right: depth, q: quit")

	const top = 3

	for y := range slice.Height {
		row := top + slice.Height - 1 - y

		for x := range slice.Width {
			kind := slice.At(x, y)
			screen.SetContent(x*2, row, kind.Rune(), nil, styleOf(kind))
		}
	}

	screen.Show()
}

// Run takes over the terminal until the user quits.
func Run(d *display.Display) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}

	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	defer screen.Fini()

	return NewViewer(d).Loop(screen)
}

// Loop draws and handles events until the user quits.
func (v *Viewer) Loop(screen tcell.Screen) error {
	v.Draw(screen)

	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			// screen was finalized
			return nil

		case *tcell.EventResize:
			screen.Sync()

		case *tcell.EventKey:
			if !v.HandleKey(ev) {
				slog.Debug("Terminal view closed")
				return nil
			}
		}

		v.Draw(screen)
	}
}

func styleOf(kind CellKind) tcell.Style {
	switch kind {
	case Visible:
		return styleVisible
	case Blocking:
		return styleBlocking
	case Hidden:
		return styleHidden
	default:
		return styleDefault
	}
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for idx, ch := range []rune(text) {
		screen.SetContent(x+idx, y, ch, nil, style)
	}
}
