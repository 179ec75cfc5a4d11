//go:build tinygo && !baremetal

package hal

import "strconv"

type tinyGoHostHAL struct {
	logger *tinyGoHostLogger
	fb     *memFramebuffer
	clock  tinyGoClock
}

// New returns a TinyGo-on-host HAL implementation.
//
// This is used by `tinygo run` targets like linux/wasm where there is no MCU pin mapping.
// Each Present logs a compact "frame" line, since there is no panel to push pixels to.
func New(cfg Config) HAL {
	cfg = cfg.withDefaults()
	l := &tinyGoHostLogger{}
	return &tinyGoHostHAL{
		logger: l,
		fb: newMemFramebuffer(cfg.Width, cfg.Height, func(buf []byte, w, h int) error {
			l.WriteLineString("frame: " + strconv.Itoa(w) + "x" + strconv.Itoa(h))
			return nil
		}),
	}
}

func (h *tinyGoHostHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHostHAL) Display() Display { return tinyGoDisplay{fb: h.fb} }
func (h *tinyGoHostHAL) Clock() Clock     { return h.clock }

type tinyGoHostLogger struct{}

func (l *tinyGoHostLogger) WriteLineString(s string) {
	println(s)
}

func (l *tinyGoHostLogger) WriteLineBytes(b []byte) {
	println(string(b))
}
