//go:build tinygo && baremetal && !picocalc

package hal

// New returns a bare Pico 2 (RP2350) HAL implementation.
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1. There is no panel, so Present
// reports ErrNotImplemented and the face is only visible through the UART log.
func New(cfg Config) HAL {
	cfg = cfg.withDefaults()
	return &baremetalHAL{
		logger: newUARTLogger(),
		fb:     newMemFramebuffer(cfg.Width, cfg.Height, nil),
	}
}
