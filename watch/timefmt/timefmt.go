// Package timefmt turns a calendar time into the four binary fields shown by the watch face.
package timefmt

import (
	"fmt"
	"time"

	"binclock/watch/binary"
)

// CalendarTime is the part of a wall-clock instant the face displays.
type CalendarTime struct {
	Hour   int // 0-23
	Minute int // 0-59
	Month0 int // 0-11
	Day    int // 1-31
}

// FromTime extracts a CalendarTime from t in t's location.
func FromTime(t time.Time) CalendarTime {
	return CalendarTime{
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Month0: int(t.Month()) - 1,
		Day:    t.Day(),
	}
}

// Field identifies one of the four display fields.
type Field uint8

const (
	Hour Field = iota
	Minute
	Month
	Day

	NumFields = 4
)

var fieldWidths = [NumFields]int{Hour: 5, Minute: 6, Month: 4, Day: 6}

var fieldLabels = [NumFields]string{Hour: "Hours", Minute: "Minutes", Month: "Month", Day: "Day"}

// Width is the fixed bit width of f.
func (f Field) Width() int { return fieldWidths[f] }

func (f Field) String() string {
	if int(f) >= NumFields {
		return fmt.Sprintf("Field(%d)", uint8(f))
	}
	return fieldLabels[f]
}

// NormalizeHour returns the hour as displayed: 0-23 in 24-hour mode, 1-12 otherwise.
func NormalizeHour(ct CalendarTime, is24h bool) int {
	if is24h {
		return ct.Hour
	}
	if h := ct.Hour % 12; h != 0 {
		return h
	}
	return 12
}

// NormalizeMonth returns the 1-based month.
func NormalizeMonth(ct CalendarTime) int {
	return ct.Month0 + 1
}

// Fields is one rendered frame.
type Fields struct {
	Bits   [NumFields]string
	Values [NumFields]int
	Debug  [NumFields]string
}

func (f Fields) Hour() string   { return f.Bits[Hour] }
func (f Fields) Minute() string { return f.Bits[Minute] }
func (f Fields) Month() string  { return f.Bits[Month] }
func (f Fields) Day() string    { return f.Bits[Day] }

// Placeholder is the clearly invalid pattern shown for f when rendering fails.
func Placeholder(f Field) string {
	b := make([]byte, f.Width())
	for i := range b {
		b[i] = '-'
	}
	return string(b)
}

// Formatter renders calendar times into binary fields.
//
// Output buffers are sized once and reused by every Render call, so a Formatter
// must not be shared between goroutines without external serialization.
type Formatter struct {
	bufs [NumFields][]byte
}

// NewFormatter returns a Formatter with pre-sized buffers.
func NewFormatter() *Formatter {
	f := &Formatter{}
	for i := range f.bufs {
		f.bufs[i] = make([]byte, fieldWidths[i])
	}
	return f
}

// Render normalizes ct and encodes every field.
//
// On failure the returned Fields carry placeholders for all four fields and the
// error names the first field that could not be encoded.
func (f *Formatter) Render(ct CalendarTime, is24h bool) (Fields, error) {
	var out Fields
	out.Values = [NumFields]int{
		Hour:   NormalizeHour(ct, is24h),
		Minute: ct.Minute,
		Month:  NormalizeMonth(ct),
		Day:    ct.Day,
	}

	for i := Field(0); i < NumFields; i++ {
		if err := binary.EncodeInto(f.bufs[i], out.Values[i]); err != nil {
			return placeholderFields(out.Values, err), fmt.Errorf("render %s: %w", i, err)
		}
	}
	for i := Field(0); i < NumFields; i++ {
		out.Bits[i] = string(f.bufs[i])
		out.Debug[i] = DebugLine(i, out.Values[i], out.Bits[i])
	}
	return out, nil
}

// DebugLine formats a "label decimal --> binary" diagnostic line.
func DebugLine(f Field, value int, bits string) string {
	return fmt.Sprintf("%s %d --> %s", f, value, bits)
}

func placeholderFields(values [NumFields]int, err error) Fields {
	var out Fields
	out.Values = values
	for i := Field(0); i < NumFields; i++ {
		out.Bits[i] = Placeholder(i)
		out.Debug[i] = fmt.Sprintf("%s %d --> %s (%v)", i, values[i], out.Bits[i], err)
	}
	return out
}
