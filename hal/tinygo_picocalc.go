//go:build tinygo && baremetal && picocalc

package hal

// PicoCalc panel geometry.
const (
	picoCalcWidth  = 320
	picoCalcHeight = 320
)

// New returns a PicoCalc HAL implementation (Pico/Pico2 on the PicoCalc carrier).
//
// The watch framebuffer is cfg-sized and presented centered on the 320x320 ILI9488;
// the rest of the panel is cleared to black once at startup.
func New(cfg Config) HAL {
	cfg = cfg.withDefaults()
	if cfg.Width > picoCalcWidth {
		cfg.Width = picoCalcWidth
	}
	if cfg.Height > picoCalcHeight {
		cfg.Height = picoCalcHeight
	}

	logger := newUARTLogger()
	h := &baremetalHAL{logger: logger}

	lcd, err := initILI9488()
	if err != nil {
		logger.WriteLineString("hal: display: " + err.Error())
		h.fb = newMemFramebuffer(cfg.Width, cfg.Height, nil)
		return h
	}
	lcd.fill(picoCalcWidth, picoCalcHeight, RGB565(0, 0, 0))

	x0 := (picoCalcWidth - cfg.Width) / 2
	y0 := (picoCalcHeight - cfg.Height) / 2
	h.fb = newMemFramebuffer(cfg.Width, cfg.Height, func(buf []byte, w, h int) error {
		return lcd.blitRGB565LittleEndian(buf, x0, y0, w, h)
	})
	return h
}
