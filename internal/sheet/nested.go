package sheet

// AttachScrollable hands the active drag a nested scrolling region that is
// recognizing the same gesture. Only one region can join a session; it
// reports whether s was attached. The region's scroll flag is restored when
// the session ends, whatever way it ends.
func (e *Engine) AttachScrollable(s Scrollable) bool {
	d := e.drag
	if d == nil || d.scroll != nil || s == nil {
		return false
	}
	d.scroll = s
	d.scrollWasEnabled = s.ScrollEnabled()
	return true
}

// deferToScrollable decides who consumes the current sample. It returns
// true when the nested region keeps it and the sheet must not move.
func (e *Engine) deferToScrollable() bool {
	d := e.drag
	s := d.scroll
	if s == nil {
		return false
	}

	off := s.ContentOffset()
	if off < 0 {
		d.latched = true
	}

	if !d.latched && d.scrollWasEnabled && e.policy(e.position, e.supported) {
		if !d.childActive && !s.ScrollEnabled() {
			s.SetScrollEnabled(true)
		}
		d.childActive = true
		return true
	}

	if s.ScrollEnabled() {
		s.SetScrollEnabled(false)
	}
	switch {
	case d.childActive:
		// Continue from where the content is instead of jumping: move the
		// sheet by the residual content offset while the content returns to 0.
		d.origin = d.point - d.translation.Y - off
		s.SetContentOffset(0, true)
		e.log.Debug().
			Float64("content_offset", off).
			Float64("origin", d.origin).
			Msg("drag handed from nested region to sheet")
	case off < 0:
		s.SetContentOffset(0, true)
	}
	d.childActive = false
	return false
}

// ScrollOwner reports whether the attached region currently owns the drag,
// so a host can move its content before forwarding the sample. It has no
// side effects.
func (e *Engine) ScrollOwner() bool {
	d := e.drag
	if d == nil || d.scroll == nil {
		return false
	}
	return !d.latched && d.scrollWasEnabled && e.policy(e.position, e.supported)
}
