// Package config loads the optional snake.ini file.
package config

import (
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/ini.v1"
)

const (
	FrontendWindow   = "window"
	FrontendTerminal = "terminal"

	DefaultPath            = "snake.ini"
	DefaultLeaderboardPath = "data/leaderboard.json"
	DefaultTerminalLogFile = "data/snake.log"
	DefaultCellSize        = 20
)

type Config struct {
	Leaderboard Leaderboard `ini:"leaderboard"`
	Display     Display     `ini:"display"`
	Log         Log         `ini:"log"`
}

type Leaderboard struct {
	Path string `ini:"path"`
}

type Display struct {
	Frontend string `ini:"frontend"`
	CellSize int    `ini:"cell_size"` // pixels per grid cell in the window
}

type Log struct {
	Level string `ini:"level"`
	File  string `ini:"file"`
}

func Default() *Config {
	return &Config{
		Leaderboard: Leaderboard{Path: DefaultLeaderboardPath},
		Display:     Display{Frontend: FrontendWindow, CellSize: DefaultCellSize},
		Log:         Log{Level: "info"},
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	file, err := ini.Load(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, errors.Wrapf(err, "load config %s", path)
	}
	if err := file.MapTo(cfg); err != nil {
		return nil, errors.Wrapf(err, "map config %s", path)
	}
	if err := cfg.validate(); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	c.Display.Frontend = strings.ToLower(strings.TrimSpace(c.Display.Frontend))
	switch c.Display.Frontend {
	case FrontendWindow, FrontendTerminal:
	default:
		return errors.Errorf("unknown frontend %q", c.Display.Frontend)
	}
	if c.Display.CellSize < 4 || c.Display.CellSize > 64 {
		return errors.Errorf("cell_size %d out of range 4-64", c.Display.CellSize)
	}
	if strings.TrimSpace(c.Leaderboard.Path) == "" {
		return errors.New("leaderboard path is empty")
	}
	c.Leaderboard.Path = filepath.Clean(c.Leaderboard.Path)
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel parses the configured level name.
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo, errors.Wrapf(err, "log level %q", c.Log.Level)
	}
	return level, nil
}

// LogFile is where logs go. The terminal front end owns the screen, so it
// logs to a file unless one is configured.
func (c *Config) LogFile() string {
	if c.Log.File == "" && c.Display.Frontend == FrontendTerminal {
		return DefaultTerminalLogFile
	}
	return c.Log.File
}
