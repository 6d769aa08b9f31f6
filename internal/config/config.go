package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/drawer/internal/sheet"
	"github.com/llehouerou/drawer/internal/snap"
)

const appName = "drawer"

type Config struct {
	Geometry  GeometryConfig  `koanf:"geometry"`
	Positions PositionsConfig `koanf:"positions"`
	Motion    MotionConfig    `koanf:"motion"`
	Look      LookConfig      `koanf:"look"`
	Log       LogConfig       `koanf:"log"`

	// Content is a text file shown in the sheet's scrollable region.
	Content string `koanf:"content"`
}

// GeometryConfig holds the sheet extents, in terminal rows.
type GeometryConfig struct {
	TopMargin           *float64 `koanf:"top_margin"`            // gap above the open sheet (default: 2)
	CollapsedHeight     float64  `koanf:"collapsed_height"`      // visible rows when collapsed (default: 3)
	PartiallyOpenHeight float64  `koanf:"partially_open_height"` // visible rows when partially open (default: 12)
}

// PositionsConfig selects the rest positions.
type PositionsConfig struct {
	Supported []string `koanf:"supported"` // e.g. ["open", "partially_open", "collapsed"]
	Initial   string   `koanf:"initial"`   // default: "collapsed"

	// Opacity overrides the overlay dimming per position, 0-1.
	// e.g. [positions.opacity] partially_open = 0.4 (default: open = 1, others 0)
	Opacity map[string]float64 `koanf:"opacity"`
}

// MotionConfig tunes drag and spring behavior.
type MotionConfig struct {
	DampingFactor     float64 `koanf:"damping_factor"`     // overscroll damping (default: 4)
	LookAhead         float64 `koanf:"look_ahead"`         // release extrapolation in seconds (default: 0.15)
	VelocityThreshold float64 `koanf:"velocity_threshold"` // rows/s above which releases step (default: 0)
	HeightLeeway      float64 `koanf:"height_leeway"`      // extra rows during animations (default: 2)
	SpringDamping     float64 `koanf:"spring_damping"`     // damping ratio, 0-1 (default: 0.8)
	SpringDurationMS  int     `koanf:"spring_duration_ms"` // default: 500
	FPS               int     `koanf:"fps"`                // animation frame rate (default: 60)
}

// LookConfig holds the sheet chrome.
type LookConfig struct {
	Border   string `koanf:"border"`    // "rounded", "normal", "thick", "double" or "hidden"
	DimColor string `koanf:"dim_color"` // overlay color at full opacity (default: "#000000")
	Title    string `koanf:"title"`
}

// LogConfig controls the diagnostics log.
type LogConfig struct {
	Path  string `koanf:"path"`  // default: $XDG_STATE_HOME/drawer/drawer.log
	Level string `koanf:"level"` // zerolog level name (default: "info")
}

func Load() (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("load %s: %w", path, err)
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.Content = expandPath(cfg.Content)
	cfg.Log.Path = expandPath(cfg.Log.Path)

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. $XDG_CONFIG_HOME/drawer/config.toml
	paths = append(paths, filepath.Join(xdg.ConfigHome, appName, "config.toml"))

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetGeometry returns the extents with defaults applied. The container
// height is left to the host.
func (c *Config) GetGeometry() snap.Geometry {
	g := c.Geometry
	top := 2.0
	if g.TopMargin != nil && *g.TopMargin >= 0 {
		top = *g.TopMargin
	}
	if g.CollapsedHeight <= 0 {
		g.CollapsedHeight = 3
	}
	if g.PartiallyOpenHeight <= 0 {
		g.PartiallyOpenHeight = 12
	}
	return snap.Geometry{
		TopMargin:           top,
		CollapsedHeight:     g.CollapsedHeight,
		PartiallyOpenHeight: g.PartiallyOpenHeight,
	}
}

// GetPositions returns the supported set and the initial position.
// Unknown names are an error; an empty list uses the default set.
func (c *Config) GetPositions() (snap.Positions, snap.Position, error) {
	supported := snap.DefaultPositions()
	if len(c.Positions.Supported) > 0 {
		s, err := snap.ParsePositions(c.Positions.Supported)
		if err != nil {
			return snap.Positions{}, 0, err
		}
		supported = s
	}

	initial := snap.Collapsed
	if c.Positions.Initial != "" {
		p, err := snap.ParsePosition(c.Positions.Initial)
		if err != nil {
			return snap.Positions{}, 0, err
		}
		initial = p
	}
	return supported, initial, nil
}

// GetOpacities returns the overlay opacity targets: the defaults with the
// configured positions overridden. Unknown names and values outside 0-1 are
// an error.
func (c *Config) GetOpacities() (snap.Opacities, error) {
	out := snap.DefaultOpacities()
	for name, v := range c.Positions.Opacity {
		p, err := snap.ParsePosition(name)
		if err != nil {
			return nil, err
		}
		if v < 0 || v > 1 {
			return nil, fmt.Errorf("opacity for %s out of range: %g", p, v)
		}
		out[p] = v
	}
	return out, nil
}

// GetMotion returns the motion tuning with defaults applied, in rows.
func (c *Config) GetMotion() sheet.Motion {
	m := c.Motion
	out := sheet.DefaultMotion()

	out.DampingFactor = 4
	if m.DampingFactor > 0 {
		out.DampingFactor = m.DampingFactor
	}
	if m.LookAhead > 0 {
		out.LookAhead = m.LookAhead
	}
	if m.VelocityThreshold > 0 {
		out.VelocityThreshold = m.VelocityThreshold
	}
	out.HeightLeeway = 2
	if m.HeightLeeway > 0 {
		out.HeightLeeway = m.HeightLeeway
	}
	if m.SpringDamping > 0 && m.SpringDamping <= 1 {
		out.DampingRatio = m.SpringDamping
	}
	if m.SpringDurationMS > 0 {
		out.Duration = time.Duration(m.SpringDurationMS) * time.Millisecond
	}
	return out
}

// GetFPS returns the animation frame rate (1-120, default: 60).
func (c *Config) GetFPS() int {
	if c.Motion.FPS <= 0 || c.Motion.FPS > 120 {
		return 60
	}
	return c.Motion.FPS
}

// GetLogConfig returns the log settings with defaults applied.
func (c *Config) GetLogConfig() LogConfig {
	l := c.Log
	if l.Level == "" {
		l.Level = "info"
	}
	l.Level = strings.ToLower(l.Level)
	return l
}

// GetLook returns the chrome settings with defaults applied.
func (c *Config) GetLook() LookConfig {
	l := c.Look
	l.Border = strings.ToLower(strings.TrimSpace(l.Border))
	if l.Border == "" {
		l.Border = "rounded"
	}
	if l.DimColor == "" {
		l.DimColor = "#000000"
	}
	if l.Title == "" {
		l.Title = appName
	}
	return l
}
