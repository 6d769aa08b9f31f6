package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/llehouerou/drawer/internal/config"
	"github.com/llehouerou/drawer/internal/errmsg"
	"github.com/llehouerou/drawer/internal/logging"
	"github.com/llehouerou/drawer/internal/ui/sheetview"
	"github.com/llehouerou/drawer/internal/ui/styles"
)

const background = `
  Drag the sheet by its handle, or anywhere on it, with the mouse.
  Release quickly to fling it to the next position.

  o / p / c / x   open, partially open, collapse, close
  [ / ]           one position more open / more closed
  esc             dismiss an open sheet (or click the dimmed area)
  ?               show all key bindings in the sheet
  q               quit`

// startupError carries the failed operation for the user-facing message.
type startupError struct {
	op      errmsg.Op
	context string
	err     error
}

func (e *startupError) Error() string { return errmsg.FormatWith(e.op, e.context, e.err) }

func (e *startupError) Unwrap() error { return e.err }

func initialModel() (*sheetview.Model, io.Closer, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, &startupError{op: errmsg.OpConfigLoad, err: err}
	}

	logCfg := cfg.GetLogConfig()
	start := time.Now()
	logger, closer, err := logging.Open(logging.Options{Path: logCfg.Path, Level: logCfg.Level}, start)
	if err != nil {
		return nil, nil, &startupError{op: errmsg.OpLogOpen, context: logCfg.Path, err: err}
	}
	session := start.Format("20060102_150405")
	logger = logging.WithContext(logger, func(e *zerolog.Event) {
		e.Str("session", session)
	})

	supported, initial, err := cfg.GetPositions()
	if err != nil {
		closer.Close()
		return nil, nil, &startupError{op: errmsg.OpConfigLoad, err: err}
	}

	opacities, err := cfg.GetOpacities()
	if err != nil {
		closer.Close()
		return nil, nil, &startupError{op: errmsg.OpConfigLoad, err: err}
	}

	content := defaultContent()
	if cfg.Content != "" {
		data, err := os.ReadFile(cfg.Content)
		if err != nil {
			closer.Close()
			return nil, nil, &startupError{op: errmsg.OpContentLoad, context: cfg.Content, err: err}
		}
		content = string(data)
	}

	look := cfg.GetLook()
	logger.Info().
		Stringer("initial", initial).
		Int("positions", supported.Len()).
		Int("fps", cfg.GetFPS()).
		Msg("starting")

	m := sheetview.New(sheetview.Options{
		Geometry:   cfg.GetGeometry(),
		Supported:  supported,
		Initial:    initial,
		Opacities:  opacities,
		Motion:     cfg.GetMotion(),
		FPS:        cfg.GetFPS(),
		Chrome:     styles.Chrome{Border: look.Border, Title: look.Title},
		DimColor:   lipgloss.Color(look.DimColor),
		Content:    content,
		Background: background,
		Logger:     logger,
	})
	return m, closer, nil
}

func defaultContent() string {
	var b strings.Builder
	for i := 1; i <= 60; i++ {
		fmt.Fprintf(&b, "Row %d: scroll me when the sheet is open\n", i)
	}
	return b.String()
}

func run() int {
	m, closer, err := initialModel()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintln(os.Stderr, "Check the paths in config.toml.")
		}
		return 1
	}
	defer closer.Close()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithReportFocus())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpInitialize, err))
		return 1
	}
	return 0
}

func main() {
	os.Exit(run())
}
