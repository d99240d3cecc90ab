// Package config loads runtime settings from flags, environment variables
// and an optional config file.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "CONTROLLER2KEYS"

// Config is the resolved runtime configuration, immutable after Load.
// The button and axis assignments are fixed and deliberately not part
// of it.
type Config struct {
	PollInterval time.Duration
	Deadzone     float64
	PointerSpeed float64
	Backend      string
	Tray         bool
	Verbose      bool
}

// Load parses args (program name excluded), then layers environment
// variables prefixed CONTROLLER2KEYS_ and an optional controller2keys.yaml
// in the working directory. Precedence: flag, env, file, default.
func Load(args []string) (Config, error) {
	fs := pflag.NewFlagSet("controller2keys", pflag.ContinueOnError)
	fs.Duration("poll-interval", 4*time.Millisecond, "delay between translation ticks")
	fs.Float64("deadzone", 0.15, "stick deflection treated as centered, 0..1")
	fs.Float64("pointer-speed", 50.0, "pointer pixels per tick at full deflection")
	fs.String("backend", "auto", "injection backend: auto, robotgo or uinput")
	fs.Bool("tray", true, "show the system tray icon (windows)")
	fs.BoolP("verbose", "v", false, "log per-axis diagnostics")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	v := viper.New()
	if err := v.BindPFlags(fs); err != nil {
		return Config{}, err
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigName("controller2keys")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := Config{
		PollInterval: v.GetDuration("poll-interval"),
		Deadzone:     v.GetFloat64("deadzone"),
		PointerSpeed: v.GetFloat64("pointer-speed"),
		Backend:      v.GetString("backend"),
		Tray:         v.GetBool("tray"),
		Verbose:      v.GetBool("verbose"),
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.PollInterval <= 0 {
		return fmt.Errorf("poll-interval must be positive, got %v", c.PollInterval)
	}
	if c.Deadzone < 0 || c.Deadzone >= 1 {
		return fmt.Errorf("deadzone must be in [0, 1), got %v", c.Deadzone)
	}
	if c.PointerSpeed <= 0 {
		return fmt.Errorf("pointer-speed must be positive, got %v", c.PointerSpeed)
	}
	switch c.Backend {
	case "auto", "robotgo", "uinput":
	default:
		return fmt.Errorf("unknown backend %q", c.Backend)
	}
	return nil
}
