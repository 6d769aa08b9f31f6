// Package snap holds the pure geometry of a bottom sheet: the logical rest
// positions, their physical offsets, overscroll damping and overlay opacity.
package snap

import (
	"fmt"
	"slices"
	"strings"
)

// Position is a logical rest position of the sheet.
// Lower values are more open.
type Position int

const (
	Open Position = iota
	PartiallyOpen
	Collapsed
	Closed
)

// All lists every position from most open to most closed.
var All = []Position{Open, PartiallyOpen, Collapsed, Closed}

// String returns the config name of the position.
func (p Position) String() string {
	switch p {
	case Open:
		return "open"
	case PartiallyOpen:
		return "partially_open"
	case Collapsed:
		return "collapsed"
	case Closed:
		return "closed"
	}
	return fmt.Sprintf("position(%d)", int(p))
}

// ParsePosition parses a config name (case-insensitive, "-" and " " accepted for "_").
func ParsePosition(s string) (Position, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.NewReplacer("-", "_", " ", "_").Replace(name)
	for _, p := range All {
		if p.String() == name {
			return p, nil
		}
	}
	switch name {
	case "partial", "partially_revealed":
		return PartiallyOpen, nil
	}
	return 0, fmt.Errorf("unknown position %q", s)
}

// Positions is an ordered, non-empty set of supported positions.
// The zero value behaves like the fallback set {Collapsed}.
type Positions struct {
	list []Position
}

// Fallback is used whenever a supported set would otherwise be empty.
const Fallback = Collapsed

// DefaultPositions returns {Open, PartiallyOpen, Collapsed}.
func DefaultPositions() Positions {
	return NewPositions(Open, PartiallyOpen, Collapsed)
}

// NewPositions builds a set from ps, dropping duplicates and unknown values.
// An empty result is normalized to {Fallback}.
func NewPositions(ps ...Position) Positions {
	list := make([]Position, 0, len(ps))
	for _, p := range ps {
		if p < Open || p > Closed || slices.Contains(list, p) {
			continue
		}
		list = append(list, p)
	}
	if len(list) == 0 {
		list = append(list, Fallback)
	}
	slices.Sort(list)
	return Positions{list: list}
}

// ParsePositions parses config names into a set.
func ParsePositions(names []string) (Positions, error) {
	ps := make([]Position, 0, len(names))
	for _, n := range names {
		p, err := ParsePosition(n)
		if err != nil {
			return Positions{}, err
		}
		ps = append(ps, p)
	}
	return NewPositions(ps...), nil
}

// List returns the members from most open to most closed.
func (s Positions) List() []Position {
	if len(s.list) == 0 {
		return []Position{Fallback}
	}
	return slices.Clone(s.list)
}

// Contains reports whether p is a member.
func (s Positions) Contains(p Position) bool {
	return slices.Contains(s.List(), p)
}

// MostOpen returns the most open member.
func (s Positions) MostOpen() Position {
	return s.List()[0]
}

// MostClosed returns the most closed member.
func (s Positions) MostClosed() Position {
	l := s.List()
	return l[len(l)-1]
}

// Len returns the number of members.
func (s Positions) Len() int {
	return len(s.List())
}

// Advance moves current by steps within ordered, holding at either end.
// A current that is not in ordered steps from index 0. An empty ordered
// slice returns current unchanged.
func Advance(current Position, by int, ordered []Position) Position {
	if len(ordered) == 0 {
		return current
	}
	idx := max(slices.Index(ordered, current), 0)
	idx = min(max(idx+by, 0), len(ordered)-1)
	return ordered[idx]
}
