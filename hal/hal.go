package hal

import (
	"errors"
	"time"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var ErrNotImplemented = errors.New("not implemented")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Clock provides the wall clock.
//
// Minute ticks are derived from it in userland; the HAL only reports the current instant.
type Clock interface {
	Now() time.Time
}

// Config describes the screen the HAL should provide.
type Config struct {
	Width  int
	Height int
}

func (c Config) withDefaults() Config {
	if c.Width <= 0 {
		c.Width = 144
	}
	if c.Height <= 0 {
		c.Height = 168
	}
	return c
}

// HAL provides the only contact point between the watch and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Clock() Clock
}
