package config

import "flag"

var (
	flagConfig   = flag.String("config", "", "Path to config file")
	flagDebug    = flag.Bool("debug", false, "Enable debug logging")
	flagLogFile  = flag.String("log-file", "", "Write logs to this rotating file")
	flagWidth    = flag.Int("width", 0, "Window width")
	flagHeight   = flag.Int("height", 0, "Window height")
	flagRadius   = flag.Float64("radius", 0, "Initial dome radius")
	flagGrid     = flag.Int("grid", 0, "Initial grid resolution")
	flagArcs     = flag.Bool("arcs", false, "Show fountain arcs")
	flagMotion   = flag.String("motion", "", "Dome drift: none, bounce or orbit")
	flagHeadless = flag.Bool("headless", false, "Run without a window")
	flagHz       = flag.Int("hz", 0, "Tick rate in headless mode")
	flagTicks    = flag.Uint64("ticks", 0, "Stop after N ticks in headless mode (0 = run forever)")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
	}
	if *flagRadius > 0 {
		cfg.Dome.Radius.Value = *flagRadius
	}
	if *flagGrid > 0 {
		cfg.Dome.Grid.Value = float64(*flagGrid)
	}
	if *flagArcs {
		cfg.Arcs.Enabled = true
	}
	if *flagMotion != "" {
		cfg.Motion.Pattern = *flagMotion
	}
	if *flagHeadless {
		cfg.Headless.Enabled = true
	}
	if *flagHz > 0 {
		cfg.Headless.Hz = *flagHz
	}
	if *flagTicks > 0 {
		cfg.Headless.Ticks = *flagTicks
	}
}
