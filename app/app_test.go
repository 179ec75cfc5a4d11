package app

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"binclock/hal"
	"binclock/watch/binary"
	"binclock/watch/face"
	"binclock/watch/timefmt"
)

type fakeLogger struct{ lines []string }

func (l *fakeLogger) WriteLineString(s string) { l.lines = append(l.lines, s) }
func (l *fakeLogger) WriteLineBytes(b []byte)  { l.lines = append(l.lines, string(b)) }

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

type fakeFB struct {
	w, h     int
	buf      []byte
	presents int
}

func (f *fakeFB) Width() int              { return f.w }
func (f *fakeFB) Height() int             { return f.h }
func (f *fakeFB) Format() hal.PixelFormat { return hal.PixelFormatRGB565 }
func (f *fakeFB) StrideBytes() int        { return f.w * 2 }
func (f *fakeFB) Buffer() []byte          { return f.buf }
func (f *fakeFB) Present() error          { f.presents++; return nil }
func (f *fakeFB) ClearRGB(r, g, b uint8) {
	p := hal.RGB565(r, g, b)
	for i := 0; i+1 < len(f.buf); i += 2 {
		f.buf[i] = byte(p)
		f.buf[i+1] = byte(p >> 8)
	}
}

type fakeDisplay struct{ fb hal.Framebuffer }

func (d fakeDisplay) Framebuffer() hal.Framebuffer { return d.fb }

type fakeHAL struct {
	log   *fakeLogger
	clock *fakeClock
	disp  hal.Display
}

func (h *fakeHAL) Logger() hal.Logger   { return h.log }
func (h *fakeHAL) Display() hal.Display { return h.disp }
func (h *fakeHAL) Clock() hal.Clock     { return h.clock }

func newFakeHAL(now time.Time) (*fakeHAL, *fakeFB) {
	fb := &fakeFB{w: 144, h: 168, buf: make([]byte, 144*168*2)}
	return &fakeHAL{log: &fakeLogger{}, clock: &fakeClock{now: now}, disp: fakeDisplay{fb: fb}}, fb
}

func countPixels(fb hal.Framebuffer, p uint16) int {
	n := 0
	for y := 0; y < fb.Height(); y++ {
		for x := 0; x < fb.Width(); x++ {
			if hal.PixelAt(fb, x, y) == p {
				n++
			}
		}
	}
	return n
}

type switchSettings struct{ is24h bool }

func (s *switchSettings) Is24Hour() bool { return s.is24h }

func TestMinuteTicker(t *testing.T) {
	var m MinuteTicker
	base := time.Date(2024, time.March, 9, 10, 15, 30, 0, time.UTC)

	if _, ok := m.Poll(base); !ok {
		t.Fatal("expected startup tick")
	}
	if _, ok := m.Poll(base.Add(20 * time.Second)); ok {
		t.Fatal("unexpected tick within the same minute")
	}
	if now, ok := m.Poll(base.Add(30 * time.Second)); !ok || now.Minute() != 16 {
		t.Fatalf("expected tick at next minute, got %v %v", now, ok)
	}
	if _, ok := m.Poll(base.Add(-time.Hour)); !ok {
		t.Fatal("expected tick after clock moved backwards")
	}
}

func TestStepRendersOncePerMinute(t *testing.T) {
	h, fb := newFakeHAL(time.Date(2024, time.December, 31, 13, 59, 10, 0, time.UTC))
	var out bytes.Buffer
	step := New(h, Config{Shape: face.Narrow, Settings: &switchSettings{is24h: false}, Console: &out})

	if err := step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	want := []string{
		"Hours 1 --> 00001",
		"Minutes 59 --> 111011",
		"Month 12 --> 1100",
		"Day 31 --> 011111",
	}
	if strings.Join(h.log.lines, "\n") != strings.Join(want, "\n") {
		t.Fatalf("log=%q", h.log.lines)
	}
	if fb.presents != 1 {
		t.Fatalf("presents=%d", fb.presents)
	}
	if countPixels(fb, hal.RGB565(face.Foreground.R, face.Foreground.G, face.Foreground.B)) == 0 {
		t.Fatal("expected lit pixels")
	}
	if got := out.String(); got != "2024-12-31 13:59  00001 111011  1100 011111\n" {
		t.Fatalf("console=%q", got)
	}

	h.clock.now = h.clock.now.Add(30 * time.Second)
	if err := step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	if len(h.log.lines) != 4 || fb.presents != 1 {
		t.Fatalf("re-rendered within the same minute: lines=%d presents=%d", len(h.log.lines), fb.presents)
	}

	h.clock.now = h.clock.now.Add(30 * time.Second)
	if err := step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	if len(h.log.lines) != 8 || fb.presents != 2 {
		t.Fatalf("lines=%d presents=%d", len(h.log.lines), fb.presents)
	}
	if h.log.lines[4] != "Hours 2 --> 00010" || h.log.lines[5] != "Minutes 0 --> 000000" {
		t.Fatalf("log=%q", h.log.lines[4:])
	}
}

func TestStepReadsSettingsEveryTick(t *testing.T) {
	h, _ := newFakeHAL(time.Date(2024, time.January, 1, 0, 5, 0, 0, time.UTC))
	s := &switchSettings{is24h: true}
	step := New(h, Config{Settings: s})

	_ = step()
	if h.log.lines[0] != "Hours 0 --> 00000" {
		t.Fatalf("24h line=%q", h.log.lines[0])
	}

	s.is24h = false
	h.clock.now = h.clock.now.Add(time.Minute)
	_ = step()
	if h.log.lines[4] != "Hours 12 --> 01100" {
		t.Fatalf("12h line=%q", h.log.lines[4])
	}
}

func TestRenderAt(t *testing.T) {
	h, fb := newFakeHAL(time.Time{})
	fields, err := RenderAt(h, Config{Shape: face.Wide}, time.Date(2024, time.January, 1, 0, 5, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("RenderAt: %v", err)
	}
	if fields.Hour() != "00000" || fields.Minute() != "000101" || fields.Month() != "0001" || fields.Day() != "000001" {
		t.Fatalf("fields=%v", fields.Bits)
	}
	if fb.presents != 1 {
		t.Fatalf("presents=%d", fb.presents)
	}
}

func TestNoDisplay(t *testing.T) {
	h, _ := newFakeHAL(time.Date(2024, time.January, 1, 0, 5, 0, 0, time.UTC))
	h.disp = nil
	step := New(h, Config{})
	if err := step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	if h.log.lines[0] != "binclock: no display, rendering headless" {
		t.Fatalf("log=%q", h.log.lines)
	}
	if len(h.log.lines) != 5 {
		t.Fatalf("lines=%d", len(h.log.lines))
	}
}

func TestConsoleColor(t *testing.T) {
	var out bytes.Buffer
	h, _ := newFakeHAL(time.Time{})
	if _, err := RenderAt(h, Config{Console: &out, ConsoleColor: true}, time.Date(2024, time.May, 4, 9, 3, 0, 0, time.UTC)); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out.String(), ansiGreen) || !strings.HasSuffix(out.String(), ansiReset+"\n") {
		t.Fatalf("console=%q", out.String())
	}
}

func TestTickShowsPlaceholderOnRenderError(t *testing.T) {
	h, fb := newFakeHAL(time.Time{})
	s := newSystem(h, Config{Shape: face.Narrow})
	formatter := s.render
	s.render = func(ct timefmt.CalendarTime, is24h bool) (timefmt.Fields, error) {
		ct.Hour += 40
		return formatter(ct, is24h)
	}

	fields, err := s.tick(time.Date(2024, time.June, 1, 8, 30, 0, 0, time.UTC))
	if !errors.Is(err, binary.ErrOutOfRange) {
		t.Fatalf("err=%v", err)
	}
	for i := timefmt.Field(0); i < timefmt.NumFields; i++ {
		if fields.Bits[i] != timefmt.Placeholder(i) {
			t.Fatalf("%s bits=%q", i, fields.Bits[i])
		}
	}

	if fb.presents != 1 {
		t.Fatalf("presents=%d", fb.presents)
	}
	lit := countPixels(fb, hal.RGB565(face.Foreground.R, face.Foreground.G, face.Foreground.B))
	if lit == 0 {
		t.Fatal("expected placeholder pixels")
	}

	last := h.log.lines[len(h.log.lines)-1]
	if !strings.HasPrefix(last, "binclock: render Hours: ") {
		t.Fatalf("log=%q", h.log.lines)
	}
	if len(h.log.lines) != 5 {
		t.Fatalf("lines=%d", len(h.log.lines))
	}
}
