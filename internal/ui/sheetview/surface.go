package sheetview

import (
	"github.com/rs/zerolog"

	"github.com/llehouerou/drawer/internal/sheet"
	"github.com/llehouerou/drawer/internal/snap"
)

// surface is what the engine drives: it owns the geometry and records the
// placement and overlay opacity for the next render.
type surface struct {
	sheet.NopDelegate

	log      zerolog.Logger
	frames   zerolog.Logger // sampled, for per-frame events
	geometry snap.Geometry

	offset  float64
	height  float64
	opacity float64

	transitions int
}

var (
	_ sheet.Host     = (*surface)(nil)
	_ sheet.Delegate = (*surface)(nil)
)

func (s *surface) Geometry() snap.Geometry {
	return s.geometry
}

func (s *surface) Apply(offset, height float64) {
	s.offset = offset
	s.height = height
}

func (s *surface) WillTransition(from snap.Position) {
	s.log.Debug().Stringer("from", from).Msg("sheet transition starting")
}

func (s *surface) DidTransition(to snap.Position) {
	s.transitions++
	s.log.Info().Stringer("to", to).Msg("sheet moved")
}

func (s *surface) DidMove(offset float64) {
	s.frames.Trace().Float64("offset", offset).Msg("sheet offset")
}

func (s *surface) OverlayOpacity(opacity float64) {
	s.opacity = opacity
}
