package gm

import (
	"cmp"
	"fmt"
	"slices"
)

// Rect is an axis aligned rectangle. EX and EY describe the end
// of the rectangle, not its size.
type Rect struct {
	SX, SY float32
	EX, EY float32
}

func RectOf(sx, sy, ex, ey float32) Rect {
	return Rect{SX: sx, SY: sy, EX: ex, EY: ey}
}

// IsEmpty returns true if the rectangle does not cover any area.
func (r Rect) IsEmpty() bool {
	return r.SX >= r.EX || r.SY >= r.EY
}

// Intersects returns true if both rectangles share some area.
// Rectangles that only touch at an edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	return r.SX < other.EX && other.SX < r.EX &&
		r.SY < other.EY && other.SY < r.EY
}

// Clip returns the part of other that lies within r.
// The result might be empty.
func (r Rect) Clip(other Rect) Rect {
	return Rect{
		SX: max(other.SX, r.SX),
		SY: max(other.SY, r.SY),
		EX: min(other.EX, r.EX),
		EY: min(other.EY, r.EY),
	}
}

func (r Rect) Width() float32 {
	return r.EX - r.SX
}

func (r Rect) Height() float32 {
	return r.EY - r.SY
}

// Area returns the area of the rectangle, or zero for empty rectangles.
func (r Rect) Area() float32 {
	if r.IsEmpty() {
		return 0
	}

	return r.Width() * r.Height()
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect(start=(%v, %v), end=(%v, %v))", r.SX, r.SY, r.EX, r.EY)
}

// Interval is a one dimensional range from Start to End, exclusive.
type Interval struct {
	Start, End float32
}

func (i Interval) IsEmpty() bool {
	return i.Start >= i.End
}

// SubtractIntervals removes all intervals in subtract from base and
// returns what is left over, in ascending order.
func SubtractIntervals(base Interval, subtract []Interval) []Interval {
	result := []Interval{base}

	for _, sub := range subtract {
		var next []Interval

		for _, interval := range result {
			if interval.End <= sub.Start || interval.Start >= sub.End {
				// no overlap
				next = append(next, interval)
				continue
			}

			// split the interval around sub
			if interval.Start < sub.Start {
				next = append(next, Interval{Start: interval.Start, End: sub.Start})
			}

			if interval.End > sub.End {
				next = append(next, Interval{Start: sub.End, End: interval.End})
			}
		}

		result = next
	}

	return result
}

type sweepKind uint8

const (
	// exits sort before enters at the same x coordinate
	sweepExit sweepKind = iota
	sweepEnter
)

type sweepEvent struct {
	X    float32
	Span Interval
	Kind sweepKind
}

// SubtractRects returns a set of disjoint rectangles covering everything in rect
// that is not covered by any of the given rectangles.
//
// The decomposition sweeps a vertical line along the x axis. Every strip between two
// consecutive rectangle edges produces one rectangle per free interval on the y axis.
func SubtractRects(rect Rect, rects []Rect) []Rect {
	if rect.IsEmpty() {
		return nil
	}

	var events []sweepEvent

	for _, other := range rects {
		if !rect.Intersects(other) {
			continue
		}

		clipped := rect.Clip(other)
		if clipped.IsEmpty() {
			continue
		}

		span := Interval{Start: clipped.SY, End: clipped.EY}
		events = append(events,
			sweepEvent{X: clipped.SX, Span: span, Kind: sweepEnter},
			sweepEvent{X: clipped.EX, Span: span, Kind: sweepExit},
		)
	}

	if len(events) == 0 {
		return []Rect{rect}
	}

	slices.SortStableFunc(events, func(a, b sweepEvent) int {
		return cmp.Or(cmp.Compare(a.X, b.X), cmp.Compare(a.Kind, b.Kind))
	})

	var result []Rect
	var active []Interval

	emitStrip := func(sx, ex float32) {
		free := SubtractIntervals(Interval{Start: rect.SY, End: rect.EY}, active)
		for _, interval := range free {
			if !interval.IsEmpty() {
				result = append(result, Rect{SX: sx, SY: interval.Start, EX: ex, EY: interval.End})
			}
		}
	}

	prevX := rect.SX

	for _, event := range events {
		if event.X > prevX {
			emitStrip(prevX, event.X)
		}

		switch event.Kind {
		case sweepEnter:
			active = append(active, event.Span)

		case sweepExit:
			if idx := slices.Index(active, event.Span); idx >= 0 {
				active = slices.Delete(active, idx, idx+1)
			}
		}

		prevX = max(prevX, event.X)
	}

	// everything right of the last event is free
	if prevX < rect.EX {
		emitStrip(prevX, rect.EX)
	}

	return result
}
