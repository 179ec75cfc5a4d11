//go:build tinygo

package main

import (
	"binclock/app"
	"binclock/hal"
	"binclock/watch/face"
)

func main() {
	w, h := face.Narrow.Size()
	app.Run(hal.New(hal.Config{Width: w, Height: h}), app.Config{Shape: face.Narrow})
}
