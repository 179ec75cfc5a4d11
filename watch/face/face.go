// Package face draws the four binary fields onto the watch framebuffer.
package face

import (
	"errors"
	"image"
	"image/color"

	"binclock/hal"
	"binclock/watch/timefmt"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"
)

var (
	Background = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}
	Foreground = color.RGBA{R: 0x00, G: 0xFF, B: 0x00, A: 0xFF}
)

var ErrNoFramebuffer = errors.New("face: no RGB565 framebuffer")

// Face is the display sink for rendered fields.
type Face struct {
	fb      hal.Framebuffer
	regions [timefmt.NumFields]image.Rectangle

	timeFont tinyfont.Fonter
	dateFont tinyfont.Fonter
}

// New lays out the face for fb. It returns nil if fb cannot be drawn on.
func New(fb hal.Framebuffer, shape Shape) *Face {
	if fb == nil || fb.Format() != hal.PixelFormatRGB565 {
		return nil
	}
	return &Face{
		fb:       fb,
		regions:  Layout(shape, fb.Width(), fb.Height()),
		timeFont: &freemono.Bold18pt7b,
		dateFont: &freemono.Bold12pt7b,
	}
}

// Region returns the screen rectangle of field f.
func (f *Face) Region(field timefmt.Field) image.Rectangle { return f.regions[field] }

// Show redraws the whole screen with the four field strings.
func (f *Face) Show(fields timefmt.Fields) error {
	if f == nil || f.fb == nil || f.fb.Buffer() == nil {
		return ErrNoFramebuffer
	}

	f.fb.ClearRGB(Background.R, Background.G, Background.B)
	for i := timefmt.Field(0); i < timefmt.NumFields; i++ {
		font := f.timeFont
		if i == timefmt.Month || i == timefmt.Day {
			font = f.dateFont
		}
		f.drawText(f.regions[i], font, fields.Bits[i], Foreground)
	}
	return f.fb.Present()
}

func (f *Face) drawText(r image.Rectangle, font tinyfont.Fonter, s string, c color.RGBA) {
	if r.Empty() || s == "" {
		return
	}
	d := &fbDisplayer{fb: f.fb, clip: r}
	baseline := r.Min.Y + r.Dy()*3/4
	tinyfont.WriteLine(d, font, int16(r.Min.X), int16(baseline), s, c)
}

// fbDisplayer adapts an RGB565 framebuffer to drivers.Displayer, dropping pixels outside clip.
type fbDisplayer struct {
	fb   hal.Framebuffer
	clip image.Rectangle
}

var _ drivers.Displayer = (*fbDisplayer)(nil)

func (d *fbDisplayer) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *fbDisplayer) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	buf := d.fb.Buffer()
	if buf == nil {
		return
	}
	ix := int(x)
	iy := int(y)
	if !(image.Point{X: ix, Y: iy}).In(d.clip) {
		return
	}
	if ix < 0 || ix >= d.fb.Width() || iy < 0 || iy >= d.fb.Height() {
		return
	}
	pixel := hal.RGB565(c.R, c.G, c.B)
	off := iy*d.fb.StrideBytes() + ix*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

func (d *fbDisplayer) Display() error { return nil }
