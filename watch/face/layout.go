package face

import (
	"errors"
	"fmt"
	"image"
	"strings"

	"binclock/watch/timefmt"
)

// Shape selects one of the two screen layouts.
type Shape uint8

const (
	// Narrow is the rectangular screen.
	Narrow Shape = iota
	// Wide is the round screen.
	Wide
)

var ErrShape = errors.New("unknown screen shape")

// ParseShape accepts "narrow" (also "rect", "square") and "wide" (also "round").
func ParseShape(s string) (Shape, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "narrow", "rect", "square":
		return Narrow, nil
	case "wide", "round":
		return Wide, nil
	default:
		return Narrow, fmt.Errorf("%w: %q", ErrShape, s)
	}
}

func (s Shape) String() string {
	switch s {
	case Narrow:
		return "narrow"
	case Wide:
		return "wide"
	default:
		return fmt.Sprintf("Shape(%d)", uint8(s))
	}
}

// Size is the native screen size for the shape.
func (s Shape) Size() (w, h int) {
	if s == Wide {
		return 180, 180
	}
	return 144, 168
}

const (
	leftMarginNarrow = 10
	leftMarginWide   = 25

	timeTopNarrow = 10
	timeTopWide   = 24
	timeHeight    = 32

	dateTopNarrow = 100
	dateTopWide   = 100
	dateHeight    = 24
)

// Layout returns the text region of every field on a w x h screen.
func Layout(shape Shape, w, h int) [timefmt.NumFields]image.Rectangle {
	left, timeTop, dateTop := leftMarginNarrow, timeTopNarrow, dateTopNarrow
	if shape == Wide {
		left, timeTop, dateTop = leftMarginWide, timeTopWide, dateTopWide
	}

	row := func(top, height int) image.Rectangle {
		r := image.Rect(left, top, w, top+height)
		return r.Intersect(image.Rect(0, 0, w, h))
	}

	var out [timefmt.NumFields]image.Rectangle
	out[timefmt.Hour] = row(timeTop, timeHeight)
	out[timefmt.Minute] = row(timeTop+timeHeight, timeHeight)
	out[timefmt.Month] = row(dateTop, dateHeight)
	out[timefmt.Day] = row(dateTop+dateHeight, dateHeight)
	return out
}
