package config

import (
	"errors"
	"flag"
	"fmt"
	"time"
)

// Defaults for a standard session.
const (
	DefaultWidth     = 800
	DefaultHeight    = 800
	DefaultTPS       = 30
	DefaultCellCount = 1500
	DefaultName      = "DP-SM"
	DefaultFont      = "Ubuntu-B.ttf"
	WindowTitle      = "agario"
)

var ErrInvalid = errors.New("invalid config")

// Config holds everything main needs to start a session.
type Config struct {
	Width  int
	Height int
	TPS    int
	Cells  int
	Seed   int64
	Name   string
	Font   string

	Dark  bool
	Debug bool
	Mute  bool
}

func Default() *Config {
	return &Config{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		TPS:    DefaultTPS,
		Cells:  DefaultCellCount,
		Name:   DefaultName,
		Font:   DefaultFont,
	}
}

// Bind registers the config's flags on fs, using the current values as defaults.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "screen width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "screen height in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "game ticks per second")
	fs.IntVar(&c.Cells, "cells", c.Cells, "number of cells scattered at startup")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed (0 picks one from the clock)")
	fs.StringVar(&c.Name, "name", c.Name, "player name")
	fs.StringVar(&c.Font, "font", c.Font, "path to the TTF font file")
	fs.BoolVar(&c.Dark, "dark", c.Dark, "dark background")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "show the debug overlay")
	fs.BoolVar(&c.Mute, "mute", c.Mute, "disable sound")
}

func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalid, c.Width, c.Height)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("%w: tps %d", ErrInvalid, c.TPS)
	}
	if c.Cells < 0 {
		return fmt.Errorf("%w: cells %d", ErrInvalid, c.Cells)
	}
	return nil
}

// ResolveSeed returns the configured seed, or a clock-derived one when unset.
func (c *Config) ResolveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
