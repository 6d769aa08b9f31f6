package snap

import (
	"math"
	"slices"
)

// Geometry is the container and extent data the snap table derives from.
// All values share one unit (points, terminal rows).
type Geometry struct {
	ContainerHeight     float64
	TopMargin           float64
	CollapsedHeight     float64
	PartiallyOpenHeight float64
}

// Available reports whether the sheet has a container to resolve offsets in.
func (g Geometry) Available() bool {
	return g.ContainerHeight > 0
}

// Offset returns the physical offset of p from the container top.
// It returns false only when the geometry is unavailable.
func (g Geometry) Offset(p Position) (float64, bool) {
	if !g.Available() {
		return 0, false
	}
	switch p {
	case Open:
		return g.TopMargin, true
	case PartiallyOpen:
		return g.ContainerHeight - g.PartiallyOpenHeight, true
	case Collapsed:
		return g.ContainerHeight - g.CollapsedHeight, true
	case Closed:
		return g.ContainerHeight, true
	}
	return 0, false
}

// SheetHeight is the resting height of the sheet: it spans from the open
// offset to the container bottom.
func (g Geometry) SheetHeight() float64 {
	return max(g.ContainerHeight-g.TopMargin, 0)
}

// Opacities maps positions to overlay opacity targets.
type Opacities map[Position]float64

// DefaultOpacities dims fully when open and not at all otherwise.
func DefaultOpacities() Opacities {
	return Opacities{Open: 1}
}

// For returns the opacity target of p clamped to [0, 1].
func (o Opacities) For(p Position) float64 {
	if o == nil {
		o = DefaultOpacities()
	}
	return min(max(o[p], 0), 1)
}

// OpacityFor returns the default opacity target of p.
func OpacityFor(p Position) float64 {
	return DefaultOpacities().For(p)
}

// Entry is one row of the snap table.
type Entry struct {
	Position Position
	Offset   float64
	Opacity  float64
}

// Table resolves every supported position under g, most open first.
// Positions without an offset are dropped.
func Table(s Positions, g Geometry, o Opacities) []Entry {
	entries := make([]Entry, 0, s.Len())
	for _, p := range s.List() {
		off, ok := g.Offset(p)
		if !ok {
			continue
		}
		entries = append(entries, Entry{Position: p, Offset: off, Opacity: o.For(p)})
	}
	slices.SortStableFunc(entries, func(a, b Entry) int {
		switch {
		case a.Offset < b.Offset:
			return -1
		case a.Offset > b.Offset:
			return 1
		}
		return int(a.Position) - int(b.Position)
	})
	return entries
}

// Sorted returns the supported positions resolvable under g, most open first.
func Sorted(s Positions, g Geometry) []Position {
	entries := Table(s, g, nil)
	out := make([]Position, len(entries))
	for i, e := range entries {
		out[i] = e.Position
	}
	return out
}

// Nearest returns the entry whose offset is closest to offset.
// Ties go to the more open entry. It returns false for an empty table.
func Nearest(offset float64, entries []Entry) (Entry, bool) {
	if len(entries) == 0 {
		return Entry{}, false
	}
	best := entries[0]
	bestDist := math.Abs(offset - best.Offset)
	for _, e := range entries[1:] {
		if d := math.Abs(offset - e.Offset); d < bestDist {
			best, bestDist = e, d
		}
	}
	return best, true
}

// Bounds returns the smallest and largest offsets in the table.
func Bounds(entries []Entry) (lowest, highest float64, ok bool) {
	if len(entries) == 0 {
		return 0, 0, false
	}
	lowest, highest = entries[0].Offset, entries[0].Offset
	for _, e := range entries[1:] {
		lowest = min(lowest, e.Offset)
		highest = max(highest, e.Offset)
	}
	return lowest, highest, true
}
