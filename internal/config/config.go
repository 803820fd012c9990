// Package config handles viewer configuration loading and management.
package config

import (
	"errors"
	"fmt"
)

// Config holds all viewer settings.
type Config struct {
	Window   WindowConfig   `yaml:"window" toml:"window"`
	Dome     DomeConfig     `yaml:"dome" toml:"dome"`
	Arcs     ArcConfig      `yaml:"arcs" toml:"arcs"`
	Motion   MotionConfig   `yaml:"motion" toml:"motion"`
	Views    []ViewConfig   `yaml:"views" toml:"views"`
	Logging  LoggingConfig  `yaml:"logging" toml:"logging"`
	Headless HeadlessConfig `yaml:"headless" toml:"headless"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title" toml:"title"`
	Width      int    `yaml:"width" toml:"width"`
	Height     int    `yaml:"height" toml:"height"`
	Fullscreen bool   `yaml:"fullscreen" toml:"fullscreen"`
	VSync      bool   `yaml:"vsync" toml:"vsync"`
	FPSLimit   int    `yaml:"fps_limit" toml:"fps_limit"`
}

// RangeConfig describes a numeric control.
type RangeConfig struct {
	Min   float64 `yaml:"min" toml:"min"`
	Max   float64 `yaml:"max" toml:"max"`
	Step  float64 `yaml:"step" toml:"step"`
	Value float64 `yaml:"value" toml:"value"`
}

// DomeConfig holds tessellation settings.
type DomeConfig struct {
	Radius     RangeConfig `yaml:"radius" toml:"radius"`
	Grid       RangeConfig `yaml:"grid" toml:"grid"`
	ShowScreen bool        `yaml:"show_screen" toml:"show_screen"` // backing plane under each dome
	ShowRays   bool        `yaml:"show_rays" toml:"show_rays"`     // origin-to-corner rays per patch
	ShowCenter bool        `yaml:"show_center" toml:"show_center"` // patch center markers and rays
}

// ArcConfig holds fountain arc settings.
type ArcConfig struct {
	Enabled   bool        `yaml:"enabled" toml:"enabled"`
	Extension RangeConfig `yaml:"extension" toml:"extension"`
	Height    float64     `yaml:"height" toml:"height"`
	Steps     int         `yaml:"steps" toml:"steps"`
	BlinkRate int         `yaml:"blink_frames" toml:"blink_frames"` // inner segment period in frames, 0 = steady
}

// MotionConfig holds unlocked dome drift settings.
type MotionConfig struct {
	Pattern     string  `yaml:"pattern" toml:"pattern"` // none, bounce or orbit
	Locked      bool    `yaml:"locked" toml:"locked"`
	Speed       float64 `yaml:"speed" toml:"speed"`        // bounce: pixels per frame on x
	Bound       float64 `yaml:"bound" toml:"bound"`        // bounce: |x| limit
	OrbitRadius float64 `yaml:"orbit_radius" toml:"orbit_radius"` // orbit: circle radius
	OrbitRate   float64 `yaml:"orbit_rate" toml:"orbit_rate"`   // orbit: radians per frame
}

// GainsConfig converts drag pixels to radians.
type GainsConfig struct {
	Pitch float64 `yaml:"pitch" toml:"pitch"`
	Yaw   float64 `yaml:"yaw" toml:"yaw"`
	Roll  float64 `yaml:"roll" toml:"roll"`
}

// RegionConfig describes a screen hit area. Kind is rect, circle, half or none.
type RegionConfig struct {
	Kind string  `yaml:"kind" toml:"kind"`
	X    float64 `yaml:"x,omitempty" toml:"x,omitempty"`
	Y    float64 `yaml:"y,omitempty" toml:"y,omitempty"`
	W    float64 `yaml:"w,omitempty" toml:"w,omitempty"`
	H    float64 `yaml:"h,omitempty" toml:"h,omitempty"`
	CX   float64 `yaml:"cx,omitempty" toml:"cx,omitempty"`
	CY   float64 `yaml:"cy,omitempty" toml:"cy,omitempty"`
	R    float64 `yaml:"r,omitempty" toml:"r,omitempty"`
	Side string  `yaml:"side,omitempty" toml:"side,omitempty"` // left or right
}

// ViewConfig declares one dome view. Views are hit-tested in list order.
type ViewConfig struct {
	Name     string       `yaml:"name" toml:"name"`
	Position [3]float64   `yaml:"position,flow" toml:"position"`
	Mode     string       `yaml:"mode" toml:"mode"` // rotate or pan
	Axes     string       `yaml:"axes" toml:"axes"` // subset of "xyz"
	Gains    GainsConfig  `yaml:"gains" toml:"gains"`
	Region   RegionConfig `yaml:"region" toml:"region"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level" toml:"level"`
	LogFile string `yaml:"log_file" toml:"log_file"`
}

// HeadlessConfig runs the frame pipeline without a window.
type HeadlessConfig struct {
	Enabled bool   `yaml:"enabled" toml:"enabled"`
	Hz      int    `yaml:"hz" toml:"hz"`
	Ticks   uint64 `yaml:"ticks" toml:"ticks"` // 0 = until interrupted
}

// DefaultGains returns the drag gains of the rotating side views.
func DefaultGains() GainsConfig {
	return GainsConfig{Pitch: 0.01, Yaw: 0.01, Roll: 0.005}
}

// DefaultViews returns the top, left and right layout on an 800x600 canvas.
func DefaultViews() []ViewConfig {
	return []ViewConfig{
		{
			Name:     "top",
			Position: [3]float64{0, -200, 0},
			Mode:     "pan",
			Axes:     "y",
			Gains:    DefaultGains(),
			Region:   RegionConfig{Kind: "rect", X: 250, Y: 0, W: 300, H: 200},
		},
		{
			Name:     "left",
			Position: [3]float64{-300, 0, 0},
			Mode:     "rotate",
			Axes:     "xyz",
			Gains:    DefaultGains(),
			Region:   RegionConfig{Kind: "rect", X: 0, Y: 150, W: 250, H: 300},
		},
		{
			Name:     "right",
			Position: [3]float64{300, 0, 0},
			Mode:     "rotate",
			Axes:     "xyz",
			Gains:    DefaultGains(),
			Region:   RegionConfig{Kind: "rect", X: 550, Y: 150, W: 250, H: 300},
		},
	}
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "Dome View",
			Width:      800,
			Height:     600,
			Fullscreen: false,
			VSync:      true,
			FPSLimit:   0,
		},
		Dome: DomeConfig{
			Radius:     RangeConfig{Min: 100, Max: 600, Step: 1, Value: 300},
			Grid:       RangeConfig{Min: 1, Max: 40, Step: 1, Value: 10},
			ShowScreen: true,
			ShowRays:   false,
			ShowCenter: false,
		},
		Arcs: ArcConfig{
			Enabled:   false,
			Extension: RangeConfig{Min: 1, Max: 2, Step: 0.01, Value: 1.2},
			Height:    50,
			Steps:     20,
			BlinkRate: 30,
		},
		Motion: MotionConfig{
			Pattern:     "none",
			Locked:      false,
			Speed:       2,
			Bound:       300,
			OrbitRadius: 200,
			OrbitRate:   0.005,
		},
		Views: DefaultViews(),
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
		Headless: HeadlessConfig{
			Enabled: false,
			Hz:      60,
			Ticks:   0,
		},
	}
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window: size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	errs = append(errs,
		c.Dome.Radius.validate("dome.radius"),
		c.Dome.Grid.validate("dome.grid"),
		c.Arcs.Extension.validate("arcs.extension"),
	)
	if c.Dome.Grid.Min < 0 {
		errs = append(errs, fmt.Errorf("dome.grid: min %v must not be negative", c.Dome.Grid.Min))
	}
	if c.Arcs.Extension.Min < 1 {
		errs = append(errs, fmt.Errorf("arcs.extension: min %v must be at least 1", c.Arcs.Extension.Min))
	}

	switch c.Motion.Pattern {
	case "", "none", "bounce", "orbit":
	default:
		errs = append(errs, fmt.Errorf("motion: unknown pattern %q", c.Motion.Pattern))
	}

	if c.Headless.Enabled && c.Headless.Hz <= 0 {
		errs = append(errs, fmt.Errorf("headless: hz %d must be positive", c.Headless.Hz))
	}

	seen := make(map[string]bool, len(c.Views))
	for i, v := range c.Views {
		if v.Name == "" {
			errs = append(errs, fmt.Errorf("views[%d]: name is required", i))
		} else if seen[v.Name] {
			errs = append(errs, fmt.Errorf("views[%d]: duplicate name %q", i, v.Name))
		}
		seen[v.Name] = true

		switch v.Region.Kind {
		case "rect":
			if v.Region.W <= 0 || v.Region.H <= 0 {
				errs = append(errs, fmt.Errorf("views[%d]: rect region needs positive w and h", i))
			}
		case "circle":
			if v.Region.R <= 0 {
				errs = append(errs, fmt.Errorf("views[%d]: circle region needs positive r", i))
			}
		case "half":
			if v.Region.Side != "left" && v.Region.Side != "right" {
				errs = append(errs, fmt.Errorf("views[%d]: half region side %q must be left or right", i, v.Region.Side))
			}
		case "", "none":
		default:
			errs = append(errs, fmt.Errorf("views[%d]: unknown region kind %q", i, v.Region.Kind))
		}
	}

	return errors.Join(errs...)
}

func (r RangeConfig) validate(name string) error {
	if r.Min > r.Max {
		return fmt.Errorf("%s: min %v above max %v", name, r.Min, r.Max)
	}
	if r.Step <= 0 {
		return fmt.Errorf("%s: step %v must be positive", name, r.Step)
	}
	if r.Value < r.Min || r.Value > r.Max {
		return fmt.Errorf("%s: value %v outside [%v, %v]", name, r.Value, r.Min, r.Max)
	}
	return nil
}
