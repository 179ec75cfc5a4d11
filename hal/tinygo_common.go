//go:build tinygo

package hal

import "time"

type tinyGoDisplay struct {
	fb Framebuffer
}

func (d tinyGoDisplay) Framebuffer() Framebuffer { return d.fb }

// tinyGoClock reads the runtime wall clock.
//
// Boards without an RTC start at the epoch; the face still ticks once per minute.
type tinyGoClock struct{}

func (tinyGoClock) Now() time.Time { return time.Now() }
