package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Window.Width != 800 || cfg.Window.Height != 600 {
		t.Errorf("expected 800x600 window, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if !cfg.Window.VSync {
		t.Error("expected vsync to be true by default")
	}

	if cfg.Dome.Radius.Value != 300 {
		t.Errorf("expected radius 300, got %v", cfg.Dome.Radius.Value)
	}
	if cfg.Dome.Radius.Min != 100 || cfg.Dome.Radius.Max != 600 {
		t.Errorf("expected radius range [100, 600], got [%v, %v]", cfg.Dome.Radius.Min, cfg.Dome.Radius.Max)
	}
	if cfg.Dome.Grid.Value != 10 {
		t.Errorf("expected grid 10, got %v", cfg.Dome.Grid.Value)
	}
	if cfg.Arcs.Extension.Value != 1.2 {
		t.Errorf("expected arc extension 1.2, got %v", cfg.Arcs.Extension.Value)
	}

	names := make([]string, 0, len(cfg.Views))
	for _, v := range cfg.Views {
		names = append(names, v.Name)
	}
	if got := strings.Join(names, ","); got != "top,left,right" {
		t.Errorf("expected views top,left,right, got %s", got)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config does not validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "domeview.yaml")

	yamlContent := `
window:
  width: 1024
  height: 768
  vsync: false

dome:
  radius: {min: 50, max: 500, step: 5, value: 250}
  grid: {min: 1, max: 64, step: 1, value: 16}
  show_rays: true

arcs:
  enabled: true
  height: 80

motion:
  pattern: orbit
  orbit_radius: 150

views:
  - name: solo
    position: [0, 0, 0]
    mode: rotate
    axes: xy
    region: {kind: circle, cx: 512, cy: 384, r: 200}
  - name: rest
    position: [100, 0, 0]
    gains: {pitch: 0.02, yaw: 0.02, roll: 0}
    region: {kind: half, side: right}

logging:
  level: "debug"
  log_file: "dome.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Window.Width != 1024 || cfg.Window.Height != 768 {
		t.Errorf("expected 1024x768, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.VSync {
		t.Error("expected vsync to be false")
	}
	if cfg.Window.Title != "Dome View" {
		t.Errorf("expected default title to survive, got %q", cfg.Window.Title)
	}
	if cfg.Dome.Radius.Value != 250 || cfg.Dome.Grid.Value != 16 {
		t.Errorf("expected radius 250 grid 16, got %v %v", cfg.Dome.Radius.Value, cfg.Dome.Grid.Value)
	}
	if !cfg.Dome.ShowRays {
		t.Error("expected show_rays to be true")
	}
	if !cfg.Arcs.Enabled || cfg.Arcs.Height != 80 {
		t.Errorf("expected arcs enabled with height 80, got %v %v", cfg.Arcs.Enabled, cfg.Arcs.Height)
	}
	if cfg.Arcs.Extension.Value != 1.2 {
		t.Errorf("expected default extension to survive, got %v", cfg.Arcs.Extension.Value)
	}
	if cfg.Motion.Pattern != "orbit" || cfg.Motion.OrbitRadius != 150 {
		t.Errorf("expected orbit motion radius 150, got %s %v", cfg.Motion.Pattern, cfg.Motion.OrbitRadius)
	}

	if len(cfg.Views) != 2 {
		t.Fatalf("expected file views to replace defaults, got %d views", len(cfg.Views))
	}
	solo := cfg.Views[0]
	if solo.Name != "solo" || solo.Axes != "xy" || solo.Region.Kind != "circle" || solo.Region.R != 200 {
		t.Errorf("unexpected first view: %+v", solo)
	}
	if solo.Gains != DefaultGains() {
		t.Errorf("expected default gains for view without gains, got %+v", solo.Gains)
	}
	rest := cfg.Views[1]
	if rest.Position != [3]float64{100, 0, 0} || rest.Gains.Pitch != 0.02 {
		t.Errorf("unexpected second view: %+v", rest)
	}

	if cfg.Logging.Level != "debug" || cfg.Logging.LogFile != "dome.log" {
		t.Errorf("unexpected logging config: %+v", cfg.Logging)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("loaded config does not validate: %v", err)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "domeview.yaml")

	invalidYAML := `
window:
  width: not a number
  invalid syntax here
`
	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if err := loadFromFile(Default(), configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	if err := loadFromFile(Default(), "/nonexistent/path/domeview.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero width", func(c *Config) { c.Window.Width = 0 }, "window"},
		{"radius out of range", func(c *Config) { c.Dome.Radius.Value = 900 }, "dome.radius"},
		{"inverted grid", func(c *Config) { c.Dome.Grid.Min = 50 }, "dome.grid"},
		{"zero step", func(c *Config) { c.Arcs.Extension.Step = 0 }, "arcs.extension"},
		{"short extension", func(c *Config) { c.Arcs.Extension.Min = 0.5 }, "at least 1"},
		{"bad pattern", func(c *Config) { c.Motion.Pattern = "spin" }, "motion"},
		{"headless hz", func(c *Config) { c.Headless.Enabled = true; c.Headless.Hz = 0 }, "headless"},
		{"missing name", func(c *Config) { c.Views[0].Name = "" }, "name is required"},
		{"duplicate name", func(c *Config) { c.Views[1].Name = "top" }, "duplicate"},
		{"empty rect", func(c *Config) { c.Views[0].Region.W = 0 }, "rect"},
		{"empty circle", func(c *Config) { c.Views[0].Region = RegionConfig{Kind: "circle"} }, "circle"},
		{"bad side", func(c *Config) { c.Views[0].Region = RegionConfig{Kind: "half", Side: "up"} }, "left or right"},
		{"bad kind", func(c *Config) { c.Views[0].Region.Kind = "hexagon" }, "unknown region"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate() = %v, want mention of %q", err, tt.want)
			}
		})
	}
}

func TestValidateJoinsErrors(t *testing.T) {
	cfg := Default()
	cfg.Window.Height = -1
	cfg.Motion.Pattern = "spin"
	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if !strings.Contains(err.Error(), "window") || !strings.Contains(err.Error(), "motion") {
		t.Errorf("Validate() = %v, want both problems reported", err)
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	os.Chdir(tmpDir)

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "domeview.yaml")
	if err := os.WriteFile(configPath, []byte("window:\n  width: 640\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find domeview.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name: "dome flags",
			setup: func() {
				*flagRadius = 420
				*flagGrid = 24
				*flagArcs = true
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Dome.Radius.Value != 420 {
					t.Errorf("expected radius 420, got %v", cfg.Dome.Radius.Value)
				}
				if cfg.Dome.Grid.Value != 24 {
					t.Errorf("expected grid 24, got %v", cfg.Dome.Grid.Value)
				}
				if !cfg.Arcs.Enabled {
					t.Error("expected arcs to be enabled")
				}
			},
			teardown: func() {
				*flagRadius = 0
				*flagGrid = 0
				*flagArcs = false
			},
		},
		{
			name: "headless flags",
			setup: func() {
				*flagHeadless = true
				*flagHz = 120
				*flagTicks = 30
			},
			verify: func(t *testing.T, cfg *Config) {
				h := cfg.Headless
				if !h.Enabled || h.Hz != 120 || h.Ticks != 30 {
					t.Errorf("expected headless at 120Hz for 30 ticks, got %+v", h)
				}
			},
			teardown: func() {
				*flagHeadless = false
				*flagHz = 0
				*flagTicks = 0
			},
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 1280
				*flagHeight = 960
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Window.Width != 1280 || cfg.Window.Height != 960 {
					t.Errorf("expected 1280x960, got %dx%d", cfg.Window.Width, cfg.Window.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name:  "motion flag",
			setup: func() { *flagMotion = "bounce" },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Motion.Pattern != "bounce" {
					t.Errorf("expected bounce motion, got %s", cfg.Motion.Pattern)
				}
			},
			teardown: func() { *flagMotion = "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "domeview.yaml")

	yamlContent := `
window:
  width: 1600
  height: 900
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Window.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Window.Height)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "domeview.yaml")
	if err := os.WriteFile(configPath, []byte("motion:\n  pattern: spin\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); err == nil {
		t.Error("expected Load to reject an invalid pattern")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "domeview.yaml")

	cfg := Default()
	cfg.Dome.Grid.Value = 12
	cfg.Views[2].Region = RegionConfig{Kind: "half", Side: "right"}
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error = %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loadFromFile() error = %v", err)
	}
	if loaded.Dome.Grid.Value != 12 {
		t.Errorf("expected grid 12 after round trip, got %v", loaded.Dome.Grid.Value)
	}
	if loaded.Views[2].Region.Side != "right" {
		t.Errorf("expected right half region after round trip, got %+v", loaded.Views[2].Region)
	}
}

func TestLoadFromTOML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "domeview.toml")

	tomlContent := `
[window]
width = 1024
height = 768

[dome.grid]
min = 1
max = 40
step = 1
value = 16

[motion]
pattern = "orbit"

[[views]]
name = "only"
position = [0.0, 0.0, 0.0]
mode = "rotate"
axes = "xz"

[views.region]
kind = "circle"
cx = 400.0
cy = 300.0
r = 150.0
`
	if err := os.WriteFile(configPath, []byte(tomlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("loadFromFile() error = %v", err)
	}

	if cfg.Window.Width != 1024 || cfg.Window.Height != 768 {
		t.Errorf("window = %dx%d, want 1024x768", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Dome.Grid.Value != 16 {
		t.Errorf("grid = %v, want 16", cfg.Dome.Grid.Value)
	}
	if cfg.Dome.Radius.Value != 300 {
		t.Errorf("radius = %v, want default 300", cfg.Dome.Radius.Value)
	}
	if cfg.Motion.Pattern != "orbit" {
		t.Errorf("motion = %q, want orbit", cfg.Motion.Pattern)
	}
	if len(cfg.Views) != 1 {
		t.Fatalf("views = %d, want 1", len(cfg.Views))
	}
	v := cfg.Views[0]
	if v.Axes != "xz" || v.Region.Kind != "circle" || v.Region.R != 150 {
		t.Errorf("view = %+v", v)
	}
	if v.Region.W != 0 || v.Region.X != 0 {
		t.Errorf("default rect leaked into loaded view: %+v", v.Region)
	}
	if v.Gains != DefaultGains() {
		t.Errorf("gains = %+v, want defaults", v.Gains)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestSaveRoundTripTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := Default()
	cfg.Arcs.Enabled = true
	cfg.Headless.Ticks = 120
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error = %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loadFromFile() error = %v", err)
	}
	if !loaded.Arcs.Enabled || loaded.Headless.Ticks != 120 {
		t.Errorf("round trip lost values: arcs %v, ticks %d", loaded.Arcs.Enabled, loaded.Headless.Ticks)
	}
	if len(loaded.Views) != 3 || loaded.Views[0].Region.W != 300 {
		t.Errorf("views = %+v", loaded.Views)
	}
}
