package gfx

import (
	"errors"
	"fmt"
)

var ErrInvalidConfig = errors.New("invalid display config")

// Config holds the fixed display geometry.
//
// ScreenHeight must be a multiple of SliceHeight. The check happens once in
// Validate; the render loops assume it.
type Config struct {
	ScreenWidth  int
	ScreenHeight int
	SliceHeight  int

	// Transparent is the reserved "do not overwrite" color.
	Transparent Color
}

// DefaultConfig is a 160x128 panel rendered in 8-line slices.
var DefaultConfig = Config{
	ScreenWidth:  160,
	ScreenHeight: 128,
	SliceHeight:  8,
	Transparent:  0xF81F,
}

// Slices returns the number of slices per frame.
func (c Config) Slices() int {
	if c.SliceHeight <= 0 {
		return 0
	}
	return c.ScreenHeight / c.SliceHeight
}

// SlicePixels returns the pixel count of one slice buffer.
func (c Config) SlicePixels() int { return c.ScreenWidth * c.SliceHeight }

// ScreenPixels returns the pixel count of a full-screen surface.
func (c Config) ScreenPixels() int { return c.ScreenWidth * c.ScreenHeight }

func (c Config) Validate() error {
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return fmt.Errorf("%w: screen %dx%d", ErrInvalidConfig, c.ScreenWidth, c.ScreenHeight)
	}
	if c.SliceHeight <= 0 || c.SliceHeight > c.ScreenHeight {
		return fmt.Errorf("%w: slice height %d", ErrInvalidConfig, c.SliceHeight)
	}
	if c.ScreenHeight%c.SliceHeight != 0 {
		return fmt.Errorf("%w: slice height %d does not divide screen height %d", ErrInvalidConfig, c.SliceHeight, c.ScreenHeight)
	}
	return nil
}
