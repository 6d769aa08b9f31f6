//nolint:goconst // test cases intentionally repeat strings for readability
package config

import (
	"maps"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/adrg/xdg"

	"github.com/llehouerou/drawer/internal/snap"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tilde expands to home",
			input:    "~/notes/sheet.txt",
			expected: filepath.Join(home, "notes", "sheet.txt"),
		},
		{
			name:     "absolute path unchanged",
			input:    "/var/log/drawer.log",
			expected: "/var/log/drawer.log",
		},
		{
			name:     "empty string unchanged",
			input:    "",
			expected: "",
		},
		{
			name:     "tilde only",
			input:    "~",
			expected: home,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandPath(tt.input)
			if result != tt.expected {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()

	if len(paths) != 2 {
		t.Fatalf("getConfigPaths() = %v, want 2 paths", paths)
	}
	if paths[1] != "config.toml" {
		t.Errorf("last config path = %q, want %q", paths[1], "config.toml")
	}
	expectedFirst := filepath.Join(xdg.ConfigHome, "drawer", "config.toml")
	if paths[0] != expectedFirst {
		t.Errorf("first config path = %q, want %q", paths[0], expectedFirst)
	}
}

func TestLoad_LocalFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	content := `
content = "~/readme.txt"

[geometry]
top_margin = 0
collapsed_height = 4

[positions]
supported = ["open", "collapsed"]
initial = "open"

[positions.opacity]
partially_open = 0.4

[motion]
spring_duration_ms = 250
fps = 30

[look]
border = "Thick"
`
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	g := cfg.GetGeometry()
	if g.TopMargin != 0 || g.CollapsedHeight != 4 || g.PartiallyOpenHeight != 12 {
		t.Errorf("GetGeometry() = %+v", g)
	}

	supported, initial, err := cfg.GetPositions()
	if err != nil {
		t.Fatalf("GetPositions() error = %v", err)
	}
	if !slices.Equal(supported.List(), []snap.Position{snap.Open, snap.Collapsed}) || initial != snap.Open {
		t.Errorf("GetPositions() = %v, %v", supported.List(), initial)
	}

	opacities, err := cfg.GetOpacities()
	if err != nil {
		t.Fatalf("GetOpacities() error = %v", err)
	}
	if opacities.For(snap.PartiallyOpen) != 0.4 || opacities.For(snap.Open) != 1 {
		t.Errorf("GetOpacities() = %v", opacities)
	}

	if got := cfg.GetMotion().Duration; got != 250*time.Millisecond {
		t.Errorf("GetMotion().Duration = %v, want 250ms", got)
	}
	if got := cfg.GetFPS(); got != 30 {
		t.Errorf("GetFPS() = %d, want 30", got)
	}
	if got := cfg.GetLook().Border; got != "thick" {
		t.Errorf("GetLook().Border = %q, want %q", got, "thick")
	}
	if filepath.Base(cfg.Content) != "readme.txt" || cfg.Content[0] == '~' {
		t.Errorf("Content = %q, want expanded path", cfg.Content)
	}
}

func TestLoad_InvalidFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[geometry\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(); err == nil {
		t.Error("Load() with malformed TOML should fail")
	}
}

func TestDefaults(t *testing.T) {
	cfg := Config{}

	g := cfg.GetGeometry()
	if g.TopMargin != 2 || g.CollapsedHeight != 3 || g.PartiallyOpenHeight != 12 {
		t.Errorf("GetGeometry() = %+v, want defaults", g)
	}

	supported, initial, err := cfg.GetPositions()
	if err != nil {
		t.Fatalf("GetPositions() error = %v", err)
	}
	if !slices.Equal(supported.List(), snap.DefaultPositions().List()) || initial != snap.Collapsed {
		t.Errorf("GetPositions() = %v, %v", supported.List(), initial)
	}

	m := cfg.GetMotion()
	if m.DampingFactor != 4 || m.HeightLeeway != 2 || m.LookAhead != 0.15 || m.DampingRatio != 0.8 {
		t.Errorf("GetMotion() = %+v", m)
	}
	if m.VelocityThreshold != 0 {
		t.Errorf("VelocityThreshold = %v, want 0", m.VelocityThreshold)
	}
	if cfg.GetFPS() != 60 {
		t.Errorf("GetFPS() = %d, want 60", cfg.GetFPS())
	}

	look := cfg.GetLook()
	if look.Border != "rounded" || look.DimColor != "#000000" || look.Title != "drawer" {
		t.Errorf("GetLook() = %+v", look)
	}
	if cfg.GetLogConfig().Level != "info" {
		t.Errorf("GetLogConfig().Level = %q, want info", cfg.GetLogConfig().Level)
	}
}

func TestGetPositions_Invalid(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"unknown supported", Config{Positions: PositionsConfig{Supported: []string{"open", "upside_down"}}}},
		{"unknown initial", Config{Positions: PositionsConfig{Initial: "halfway"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := tt.cfg.GetPositions(); err == nil {
				t.Error("GetPositions() should fail")
			}
		})
	}
}

func TestGetOpacities(t *testing.T) {
	tests := []struct {
		name    string
		opacity map[string]float64
		want    snap.Opacities
		wantErr bool
	}{
		{
			name: "empty keeps defaults",
			want: snap.Opacities{snap.Open: 1},
		},
		{
			name:    "override merges with defaults",
			opacity: map[string]float64{"Partially-Open": 0.25, "open": 0.8},
			want:    snap.Opacities{snap.Open: 0.8, snap.PartiallyOpen: 0.25},
		},
		{
			name:    "unknown position",
			opacity: map[string]float64{"halfway": 0.5},
			wantErr: true,
		},
		{
			name:    "out of range",
			opacity: map[string]float64{"collapsed": 1.5},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Positions: PositionsConfig{Opacity: tt.opacity}}
			got, err := cfg.GetOpacities()
			if tt.wantErr {
				if err == nil {
					t.Error("GetOpacities() should fail")
				}
				return
			}
			if err != nil {
				t.Fatalf("GetOpacities() error = %v", err)
			}
			if !maps.Equal(got, tt.want) {
				t.Errorf("GetOpacities() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetFPS_OutOfRange(t *testing.T) {
	for _, fps := range []int{-1, 0, 500} {
		cfg := Config{Motion: MotionConfig{FPS: fps}}
		if got := cfg.GetFPS(); got != 60 {
			t.Errorf("GetFPS() with %d = %d, want 60", fps, got)
		}
	}
}
