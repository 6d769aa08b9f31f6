// Package sheetview hosts the sheet engine in a bubbletea program. Mouse
// drags move the sheet, releases settle it on a spring, and the background
// dims as the sheet opens.
package sheetview

import (
	"errors"
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/llehouerou/drawer/internal/errmsg"
	"github.com/llehouerou/drawer/internal/gesture"
	"github.com/llehouerou/drawer/internal/keymap"
	"github.com/llehouerou/drawer/internal/logging"
	"github.com/llehouerou/drawer/internal/sheet"
	"github.com/llehouerou/drawer/internal/snap"
	"github.com/llehouerou/drawer/internal/spring"
	"github.com/llehouerou/drawer/internal/ui"
	"github.com/llehouerou/drawer/internal/ui/scrollview"
	"github.com/llehouerou/drawer/internal/ui/styles"
)

// Options configures a Model.
type Options struct {
	Geometry  snap.Geometry // ContainerHeight is taken from the window
	Supported snap.Positions
	Initial   snap.Position
	Opacities snap.Opacities // nil dims only when open
	Motion    sheet.Motion
	FPS       int

	Chrome   styles.Chrome
	DimColor lipgloss.Color

	Content    string // text in the scrollable region
	Background string // text behind the sheet

	Logger zerolog.Logger
	Now    func() time.Time // nil uses time.Now
}

// Model is the root bubbletea model.
type Model struct {
	ui.Base

	engine  *sheet.Engine
	driver  *spring.Driver
	gesture *gesture.Recognizer
	scroll  *scrollview.Model
	surface *surface
	keys    *keymap.Resolver

	chrome     styles.Chrome
	dim        lipgloss.Color
	content    string
	background string

	log zerolog.Logger
	now func() time.Time

	dragY    float64 // translation already given to the content
	err      string
	showHelp bool
}

var _ tea.Model = (*Model)(nil)

// New builds the model and its engine. Nothing is placed until the first
// window size arrives.
func New(opts Options) *Model {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	dim := opts.DimColor
	if dim == "" {
		dim = lipgloss.Color("#000000")
	}

	motion := opts.Motion
	if motion == (sheet.Motion{}) {
		motion = sheet.DefaultMotion()
	}

	geometry := opts.Geometry
	geometry.ContainerHeight = 0

	m := &Model{
		driver:     spring.New(opts.FPS),
		gesture:    gesture.NewRecognizer(gesture.DefaultWindow),
		scroll:     scrollview.New(0, 0),
		surface:    &surface{log: opts.Logger, frames: logging.Sampled(opts.Logger), geometry: geometry},
		keys:       keymap.NewResolver(keymap.All),
		chrome:     opts.Chrome,
		dim:        dim,
		content:    opts.Content,
		background: opts.Background,
		log:        opts.Logger,
		now:        now,
	}
	engineOpts := []sheet.Option{
		sheet.WithDelegate(m.surface),
		sheet.WithLogger(opts.Logger),
		sheet.WithMotion(motion),
		sheet.WithPositions(opts.Supported),
		sheet.WithInitial(opts.Initial),
	}
	if opts.Opacities != nil {
		engineOpts = append(engineOpts, sheet.WithOpacities(opts.Opacities))
	}
	m.engine = sheet.New(m.surface, m.driver, engineOpts...)
	m.scroll.SetContent(m.content)
	return m
}

// Engine exposes the sheet engine.
func (m *Model) Engine() *sheet.Engine {
	return m.engine
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, m.driver.Cmd()
	case spring.FrameMsg:
		return m, m.driver.Update(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, m.driver.Cmd()
	case tea.BlurMsg:
		if s, ok := m.gesture.Fail(); ok {
			m.engine.Handle(s)
		}
		return m, m.driver.Cmd()
	case tea.KeyMsg:
		if cmd := m.handleKey(msg); cmd != nil {
			return m, cmd
		}
		return m, m.driver.Cmd()
	}
	return m, nil
}

func (m *Model) resize(width, height int) {
	m.SetSize(width, height)
	m.surface.geometry.ContainerHeight = float64(height)

	rows := int(math.Round(m.surface.geometry.SheetHeight())) - ui.ChromeHeight
	m.scroll.SetSize(max(width-ui.BorderWidth, 0), max(rows, 0))
	m.engine.Layout()
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	p := gesture.Point{X: float64(msg.X), Y: float64(msg.Y), Time: m.now()}

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.scroll.ScrollLines(-ui.WheelStep)
	case msg.Button == tea.MouseButtonWheelDown:
		m.scroll.ScrollLines(ui.WheelStep)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.press(p, msg.Y)
	case msg.Action == tea.MouseActionMotion:
		m.move(p)
	case msg.Action == tea.MouseActionRelease:
		if s, ok := m.gesture.Release(p); ok {
			if s.Translation.Y != m.dragY {
				m.track(sheet.Sample{Phase: sheet.PhaseChanged, Translation: s.Translation})
			}
			m.engine.Handle(s)
		}
	}
}

func (m *Model) press(p gesture.Point, row int) {
	m.err = ""
	top := m.sheetTop()

	if row < top {
		if _, err := m.engine.TapOverlay(); err != nil {
			m.fail(errmsg.OpSheetCollapse, err)
		}
		return
	}

	m.engine.Handle(m.gesture.Press(p))
	m.dragY = 0
	if row >= top+ui.ChromeHeight {
		m.engine.AttachScrollable(m.scroll)
	}
}

func (m *Model) move(p gesture.Point) {
	if s, ok := m.gesture.Move(p); ok {
		m.track(s)
	}
}

// track forwards a changed sample, scrolling the content first while it
// owns the drag.
func (m *Model) track(s sheet.Sample) {
	if m.engine.ScrollOwner() {
		// Dragging down reveals earlier lines.
		m.scroll.ScrollBy(m.dragY - s.Translation.Y)
	}
	m.dragY = s.Translation.Y
	m.engine.Handle(s)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	m.err = ""

	switch m.keys.Resolve(msg.String()) {
	case keymap.ActionQuit:
		return tea.Quit
	case keymap.ActionHelp:
		m.toggleHelp()
	case keymap.ActionOpen:
		m.moveTo(snap.Open)
	case keymap.ActionPartiallyOpen:
		m.moveTo(snap.PartiallyOpen)
	case keymap.ActionCollapse:
		m.moveTo(snap.Collapsed)
	case keymap.ActionClose:
		m.moveTo(snap.Closed)
	case keymap.ActionStepOpen:
		m.step(-1)
	case keymap.ActionStepClosed:
		m.step(1)
	case keymap.ActionDismiss:
		if _, err := m.engine.TapOverlay(); err != nil {
			m.fail(errmsg.OpSheetCollapse, err)
		}
	default:
		m.scrollKey(msg.String())
	}
	return nil
}

func (m *Model) scrollKey(key string) {
	page := max(m.scroll.Height()-1, 1)
	switch key {
	case "j", "down":
		m.scroll.ScrollLines(1)
	case "k", "up":
		m.scroll.ScrollLines(-1)
	case "pgdown":
		m.scroll.ScrollLines(page)
	case "pgup":
		m.scroll.ScrollLines(-page)
	}
}

func (m *Model) moveTo(p snap.Position) {
	if m.engine.Dragging() {
		return
	}
	if err := m.engine.SetPosition(p, sheet.Vector{}, true); err != nil {
		m.fail(errmsg.OpSheetMove, err)
	}
}

// step moves by n positions, negative toward open.
func (m *Model) step(n int) {
	if m.engine.Dragging() {
		return
	}
	if err := m.engine.Step(n); err != nil {
		m.fail(errmsg.OpSheetMove, err)
	}
}

func (m *Model) toggleHelp() {
	m.showHelp = !m.showHelp
	if m.showHelp {
		m.scroll.SetContent(m.helpText())
	} else {
		m.scroll.SetContent(m.content)
	}
	m.scroll.SetContentOffset(0, false)
}

func (m *Model) fail(op errmsg.Op, err error) {
	m.err = errmsg.Format(op, err)
	if errors.Is(err, sheet.ErrUnsupportedPosition) {
		m.log.Debug().Err(err).Msg("sheet request ignored")
		return
	}
	m.log.Error().Err(err).Str("op", string(op)).Msg("sheet request failed")
}

func (m *Model) sheetTop() int {
	return int(math.Round(m.surface.offset))
}
