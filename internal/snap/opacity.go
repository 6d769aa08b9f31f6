package snap

import "slices"

// Opacity interpolates the overlay opacity at a live offset from the table
// markers. Between two markers it is linear; outside the markers it holds
// the nearest marker's value; an empty table yields 0.
func Opacity(offset float64, entries []Entry) float64 {
	markers := slices.Clone(entries)
	slices.SortStableFunc(markers, func(a, b Entry) int {
		switch {
		case a.Offset < b.Offset:
			return -1
		case a.Offset > b.Offset:
			return 1
		}
		return 0
	})

	var prev, next *Entry
	for i := range markers {
		m := &markers[i]
		if m.Offset <= offset {
			prev = m
			continue
		}
		next = m
		break
	}

	switch {
	case prev != nil && next != nil:
		t := (offset - prev.Offset) / (next.Offset - prev.Offset)
		return prev.Opacity + (next.Opacity-prev.Opacity)*t
	case prev != nil:
		return prev.Opacity
	case next != nil:
		return next.Opacity
	}
	return 0
}
