package app

import (
	"fmt"
	"io"
	"time"

	"binclock/hal"
	"binclock/watch/face"
	"binclock/watch/settings"
	"binclock/watch/timefmt"
)

// Config selects the layout and the collaborators of the watch.
type Config struct {
	Shape    face.Shape
	Settings settings.Settings

	// Console, if set, receives one line per tick with the four fields.
	Console      io.Writer
	ConsoleColor bool
}

type system struct {
	log      hal.Logger
	clock    hal.Clock
	settings settings.Settings

	render  func(ct timefmt.CalendarTime, is24h bool) (timefmt.Fields, error)
	face    *face.Face
	ticker  MinuteTicker
	console *console
}

// New initializes the watch and returns its per-frame step.
func New(h hal.HAL, cfg Config) func() error {
	return newSystem(h, cfg).step
}

// Run starts the watch and polls the clock forever (TinyGo/native entrypoint).
func Run(h hal.HAL, cfg Config) {
	step := New(h, cfg)
	for {
		_ = step()
		time.Sleep(250 * time.Millisecond)
	}
}

// RenderAt draws a single frame for the instant at, ignoring the HAL clock.
func RenderAt(h hal.HAL, cfg Config, at time.Time) (timefmt.Fields, error) {
	s := newSystem(h, cfg)
	return s.tick(at)
}

func newSystem(h hal.HAL, cfg Config) *system {
	s := &system{
		log:      h.Logger(),
		clock:    h.Clock(),
		settings: cfg.Settings,
		render:   timefmt.NewFormatter().Render,
	}
	if s.settings == nil {
		s.settings = settings.Static(true)
	}
	if disp := h.Display(); disp != nil {
		s.face = face.New(disp.Framebuffer(), cfg.Shape)
	}
	if s.face == nil {
		s.logf("binclock: no display, rendering headless")
	}
	if cfg.Console != nil {
		s.console = &console{w: cfg.Console, color: cfg.ConsoleColor}
	}
	return s
}

func (s *system) step() error {
	if s.clock == nil {
		return nil
	}
	now, ok := s.ticker.Poll(s.clock.Now())
	if !ok {
		return nil
	}
	_, _ = s.tick(now)
	return nil
}

// tick renders one minute. Render failures show the placeholder and are only logged;
// the next tick recomputes from scratch.
func (s *system) tick(now time.Time) (timefmt.Fields, error) {
	fields, err := s.render(timefmt.FromTime(now), s.settings.Is24Hour())
	for _, line := range fields.Debug {
		s.logf("%s", line)
	}
	if err != nil {
		s.logf("binclock: %v", err)
	}

	if s.face != nil {
		if showErr := s.face.Show(fields); showErr != nil {
			s.logf("binclock: show: %v", showErr)
			if err == nil {
				err = showErr
			}
		}
	}
	if s.console != nil {
		s.console.write(now, fields)
	}
	return fields, err
}

func (s *system) logf(format string, args ...any) {
	if s.log == nil {
		return
	}
	s.log.WriteLineString(fmt.Sprintf(format, args...))
}

// MinuteTicker turns clock polls into one event per wall-clock minute.
//
// The first poll always fires, so the face is drawn immediately at startup.
type MinuteTicker struct {
	started bool
	last    time.Time
}

// Poll reports whether now falls in a different minute than the previous event.
func (m *MinuteTicker) Poll(now time.Time) (time.Time, bool) {
	minute := now.Truncate(time.Minute)
	if m.started && minute.Equal(m.last) {
		return time.Time{}, false
	}
	m.started = true
	m.last = minute
	return now, true
}
