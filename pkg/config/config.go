// Package config loads toast defaults from .toast.yaml and TOAST_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"tableflip.dev/toast/pkg/toast"
	"tableflip.dev/toast/pkg/tui/components/toastview"
	"tableflip.dev/toast/pkg/tui/theme"
)

// Config holds the resolved settings.
type Config struct {
	Kind         string
	Position     string
	Width        int
	CellWidth    int
	CellHeight   int
	EnterDelay   time.Duration
	ExitDelay    time.Duration
	CloseOnClick bool
	Draggable    bool
	Backdrop     string
	LogFile      string

	// File is the config file that was read, empty when none was found.
	File string
}

// Load reads .toast.yaml from $TOAST_CONFIG_PATH, the working directory and
// the home directory, in that order. A missing file is not an error.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigName(".toast") // .yaml is implicit
	v.SetEnvPrefix("TOAST")
	v.AutomaticEnv()

	if override := os.Getenv("TOAST_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: reading %s: %w", v.ConfigFileUsed(), err)
		}
	}
	return decode(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("kind", string(toast.KindDefault))
	v.SetDefault("position", string(toast.PositionTopRight))
	v.SetDefault("width", toastview.DefaultWidth)
	v.SetDefault("cell_width", toastview.DefaultMetrics().CellWidth)
	v.SetDefault("cell_height", toastview.DefaultMetrics().CellHeight)
	v.SetDefault("enter_delay", toastview.DefaultEnterDelay)
	v.SetDefault("exit_delay", toastview.DefaultExitDelay)
	v.SetDefault("close_on_click", true)
	v.SetDefault("draggable", true)
	v.SetDefault("backdrop", "")
	v.SetDefault("log_file", "")
}

func decode(v *viper.Viper) (*Config, error) {
	c := &Config{
		Kind:         v.GetString("kind"),
		Position:     v.GetString("position"),
		Width:        v.GetInt("width"),
		CellWidth:    v.GetInt("cell_width"),
		CellHeight:   v.GetInt("cell_height"),
		EnterDelay:   v.GetDuration("enter_delay"),
		ExitDelay:    v.GetDuration("exit_delay"),
		CloseOnClick: v.GetBool("close_on_click"),
		Draggable:    v.GetBool("draggable"),
		Backdrop:     v.GetString("backdrop"),
		File:         v.ConfigFileUsed(),
	}
	if path := v.GetString("log_file"); path != "" {
		expanded, err := homedir.Expand(path)
		if err != nil {
			return nil, fmt.Errorf("config: log_file: %w", err)
		}
		c.LogFile = expanded
	}
	return c, nil
}

// Request builds the default request described by the config.
func (c *Config) Request() (toast.Request, error) {
	req := toast.NewRequest()
	kind, err := toast.ParseKind(c.Kind)
	if err != nil {
		return req, fmt.Errorf("config: %w", err)
	}
	pos, err := toast.ParsePosition(c.Position)
	if err != nil {
		return req, fmt.Errorf("config: %w", err)
	}
	req.Kind = kind
	req.Position = pos
	req.CloseOnClick = c.CloseOnClick
	req.Draggable = c.Draggable
	return req, nil
}

// Metrics returns the configured cell size.
func (c *Config) Metrics() toastview.Metrics {
	return toastview.Metrics{CellWidth: c.CellWidth, CellHeight: c.CellHeight}
}

// Theme returns the default theme with the configured backdrop applied.
func (c *Config) Theme() theme.Theme {
	t := theme.Default()
	if c.Backdrop != "" {
		t.Toast.Backdrop = c.Backdrop
	}
	return t
}

// ToastOptions returns the component settings shared by every toast.
func (c *Config) ToastOptions() toastview.Options {
	return toastview.Options{
		Width:      c.Width,
		Metrics:    c.Metrics(),
		EnterDelay: c.EnterDelay,
		ExitDelay:  c.ExitDelay,
	}
}
