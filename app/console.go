package app

import (
	"fmt"
	"io"
	"time"

	"binclock/watch/timefmt"
)

const (
	ansiGreen = "\x1b[32m"
	ansiReset = "\x1b[0m"
)

type console struct {
	w     io.Writer
	color bool
}

func (c *console) write(now time.Time, f timefmt.Fields) {
	line := fmt.Sprintf("%s  %s %s  %s %s", now.Format("2006-01-02 15:04"),
		f.Hour(), f.Minute(), f.Month(), f.Day())
	if c.color {
		line = ansiGreen + line + ansiReset
	}
	fmt.Fprintln(c.w, line)
}
