package face

import (
	"errors"
	"image"
	"testing"

	"binclock/hal"
	"binclock/watch/timefmt"
)

type testFB struct {
	w, h     int
	buf      []byte
	presents int
}

func newTestFB(w, h int) *testFB { return &testFB{w: w, h: h, buf: make([]byte, w*h*2)} }

func (f *testFB) Width() int              { return f.w }
func (f *testFB) Height() int             { return f.h }
func (f *testFB) Format() hal.PixelFormat { return hal.PixelFormatRGB565 }
func (f *testFB) StrideBytes() int        { return f.w * 2 }
func (f *testFB) Buffer() []byte          { return f.buf }
func (f *testFB) Present() error          { f.presents++; return nil }

func (f *testFB) ClearRGB(r, g, b uint8) {
	p := hal.RGB565(r, g, b)
	for i := 0; i+1 < len(f.buf); i += 2 {
		f.buf[i] = byte(p)
		f.buf[i+1] = byte(p >> 8)
	}
}

func TestLayoutNarrow(t *testing.T) {
	r := Layout(Narrow, 144, 168)
	want := [timefmt.NumFields]image.Rectangle{
		timefmt.Hour:   image.Rect(10, 10, 144, 42),
		timefmt.Minute: image.Rect(10, 42, 144, 74),
		timefmt.Month:  image.Rect(10, 100, 144, 124),
		timefmt.Day:    image.Rect(10, 124, 144, 148),
	}
	if r != want {
		t.Fatalf("layout=%v want %v", r, want)
	}
}

func TestLayoutWide(t *testing.T) {
	r := Layout(Wide, 180, 180)
	if r[timefmt.Hour] != image.Rect(25, 24, 180, 56) {
		t.Fatalf("hour=%v", r[timefmt.Hour])
	}
	if r[timefmt.Minute] != image.Rect(25, 56, 180, 88) {
		t.Fatalf("minute=%v", r[timefmt.Minute])
	}
	if r[timefmt.Day] != image.Rect(25, 124, 180, 148) {
		t.Fatalf("day=%v", r[timefmt.Day])
	}
}

func TestLayoutClipsToScreen(t *testing.T) {
	r := Layout(Narrow, 144, 110)
	if r[timefmt.Month] != image.Rect(10, 100, 144, 110) {
		t.Fatalf("month=%v", r[timefmt.Month])
	}
	if !r[timefmt.Day].Empty() {
		t.Fatalf("day=%v", r[timefmt.Day])
	}
}

func TestParseShape(t *testing.T) {
	cases := map[string]Shape{"": Narrow, "rect": Narrow, "Narrow": Narrow, "round": Wide, " wide ": Wide}
	for in, want := range cases {
		got, err := ParseShape(in)
		if err != nil || got != want {
			t.Errorf("ParseShape(%q)=%v, %v", in, got, err)
		}
	}
	if _, err := ParseShape("hexagon"); !errors.Is(err, ErrShape) {
		t.Fatalf("err=%v", err)
	}
}

func TestShowDrawsInsideRegions(t *testing.T) {
	for _, shape := range []Shape{Narrow, Wide} {
		w, h := shape.Size()
		fb := newTestFB(w, h)
		f := New(fb, shape)
		if f == nil {
			t.Fatal("expected face")
		}

		fields := timefmt.Fields{Bits: [timefmt.NumFields]string{"11111", "111111", "1111", "111111"}}
		if err := f.Show(fields); err != nil {
			t.Fatalf("Show: %v", err)
		}
		if fb.presents != 1 {
			t.Fatalf("presents=%d", fb.presents)
		}

		fg := hal.RGB565(Foreground.R, Foreground.G, Foreground.B)
		var lit [timefmt.NumFields]int
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				p := hal.PixelAt(fb, x, y)
				if p == 0 {
					continue
				}
				if p != fg {
					t.Fatalf("%s: pixel(%d,%d)=%#04x", shape, x, y, p)
				}
				inside := false
				for i := timefmt.Field(0); i < timefmt.NumFields; i++ {
					if (image.Point{X: x, Y: y}).In(f.Region(i)) {
						lit[i]++
						inside = true
					}
				}
				if !inside {
					t.Fatalf("%s: pixel(%d,%d) outside every region", shape, x, y)
				}
			}
		}
		for i, n := range lit {
			if n == 0 {
				t.Fatalf("%s: %s region empty", shape, timefmt.Field(i))
			}
		}
	}
}

func TestShowClearsPreviousFrame(t *testing.T) {
	fb := newTestFB(144, 168)
	f := New(fb, Narrow)
	full := timefmt.Fields{Bits: [timefmt.NumFields]string{"11111", "111111", "1111", "111111"}}
	if err := f.Show(full); err != nil {
		t.Fatal(err)
	}
	if err := f.Show(timefmt.Fields{}); err != nil {
		t.Fatal(err)
	}
	for i, b := range fb.buf {
		if b != 0 {
			t.Fatalf("byte %d=%#x after empty frame", i, b)
		}
	}
}

func TestNewRejectsMissingFramebuffer(t *testing.T) {
	if New(nil, Narrow) != nil {
		t.Fatal("expected nil face")
	}
	var f *Face
	if err := f.Show(timefmt.Fields{}); !errors.Is(err, ErrNoFramebuffer) {
		t.Fatalf("err=%v", err)
	}
}
