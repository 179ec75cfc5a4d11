//go:build !tinygo

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"binclock/app"
	"binclock/hal"
	"binclock/internal/buildinfo"
	"binclock/watch/face"
	"binclock/watch/settings"

	"github.com/alecthomas/kong"
	"golang.org/x/term"
)

// CLI defines the command-line interface structure
type CLI struct {
	Run      RunCmd      `cmd:"" default:"withargs" help:"Show the binary clock (window by default)"`
	Snapshot SnapshotCmd `cmd:"" help:"Render a single frame to a PNG file"`
	Version  VersionCmd  `cmd:"" help:"Print build information"`
}

// FaceFlags are shared by every command that draws the face.
type FaceFlags struct {
	Shape    string `help:"Screen layout: narrow (rect) or wide (round). Overrides the settings file."`
	Clock    string `help:"Hour format: auto (from settings), 24h or 12h." enum:"auto,24h,12h" default:"auto"`
	Settings string `help:"Device settings file (YAML). Defaults to the user config dir." type:"path"`
}

// RunCmd shows the clock until interrupted.
type RunCmd struct {
	FaceFlags `embed:""`

	Headless bool   `help:"Run without a window."`
	Hz       int    `help:"Clock polls per second in headless mode." default:"4"`
	Ticks    uint64 `help:"Stop after N polls in headless mode (0 = run forever)."`
	Console  bool   `help:"Print the fields to stdout on every minute."`
}

func (c *RunCmd) Run() error {
	cfg, hc, err := c.FaceFlags.resolve()
	if err != nil {
		return err
	}
	if c.Console {
		cfg.Console = os.Stdout
		cfg.ConsoleColor = term.IsTerminal(int(os.Stdout.Fd()))
	}
	newApp := func(h hal.HAL) func() error { return app.New(h, cfg) }

	if c.Headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err := hal.RunHeadless(ctx, hc, newApp, hal.HeadlessConfig{Hz: c.Hz, Ticks: c.Ticks})
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}
	return hal.RunWindow(hc, newApp)
}

// SnapshotCmd renders one frame and writes it as PNG.
type SnapshotCmd struct {
	FaceFlags `embed:""`

	Out   string `arg:"" help:"Output PNG path" type:"path"`
	At    string `help:"Instant to render (RFC 3339). Defaults to now."`
	Scale int    `help:"Integer upscale factor." default:"2"`
}

func (c *SnapshotCmd) Run() error {
	cfg, hc, err := c.FaceFlags.resolve()
	if err != nil {
		return err
	}
	at := time.Now()
	if c.At != "" {
		at, err = time.Parse(time.RFC3339, c.At)
		if err != nil {
			return fmt.Errorf("parsing --at: %w", err)
		}
	}

	h := hal.New(hc)
	_, renderErr := app.RenderAt(h, cfg, at)

	f, err := os.Create(c.Out)
	if err != nil {
		return err
	}
	if err := hal.WritePNG(f, h.Display().Framebuffer(), c.Scale); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return renderErr
}

// VersionCmd prints build information
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Println(buildinfo.String())
	return nil
}

// resolve merges flags with the settings file: flags > settings file > defaults.
func (f FaceFlags) resolve() (app.Config, hal.Config, error) {
	path := f.Settings
	if path == "" {
		p, err := defaultSettingsPath()
		if err == nil {
			path = p
		}
	}

	file := &settings.Config{}
	if path != "" {
		loaded, err := settings.Load(path)
		if err != nil {
			return app.Config{}, hal.Config{}, err
		}
		file = loaded
	}

	shapeName := f.Shape
	if shapeName == "" {
		shapeName = file.Shape
	}
	shape, err := face.ParseShape(shapeName)
	if err != nil {
		return app.Config{}, hal.Config{}, err
	}

	cfg := app.Config{Shape: shape}
	switch {
	case f.Clock == "24h":
		cfg.Settings = settings.Static(true)
	case f.Clock == "12h":
		cfg.Settings = settings.Static(false)
	case path != "":
		cfg.Settings = settings.NewFile(path, true)
	default:
		cfg.Settings = settings.Static(true)
	}

	w, h := shape.Size()
	return cfg, hal.Config{Width: w, Height: h}, nil
}

func defaultSettingsPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("determining config directory: %w", err)
	}
	return filepath.Join(configDir, "binclock", "settings.yml"), nil
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("binclock"),
		kong.Description("Binary clock watch face"),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
