package hal

// memFramebuffer is an RGB565 buffer whose Present hands the pixels to a sink.
//
// A nil sink means there is no panel behind the buffer.
type memFramebuffer struct {
	w      int
	h      int
	stride int
	buf    []byte

	sink func(buf []byte, w, h int) error
}

func newMemFramebuffer(w, h int, sink func(buf []byte, w, h int) error) *memFramebuffer {
	return &memFramebuffer{
		w:      w,
		h:      h,
		stride: w * 2,
		buf:    make([]byte, w*h*2),
		sink:   sink,
	}
}

func (f *memFramebuffer) Width() int          { return f.w }
func (f *memFramebuffer) Height() int         { return f.h }
func (f *memFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *memFramebuffer) StrideBytes() int    { return f.stride }
func (f *memFramebuffer) Buffer() []byte      { return f.buf }

func (f *memFramebuffer) ClearRGB(r, g, b uint8) {
	fillRGB565(f.buf, RGB565(r, g, b))
}

func (f *memFramebuffer) Present() error {
	if f.sink == nil {
		return ErrNotImplemented
	}
	return f.sink(f.buf, f.w, f.h)
}

func fillRGB565(buf []byte, pixel uint16) {
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for i := 0; i+1 < len(buf); i += 2 {
		buf[i] = lo
		buf[i+1] = hi
	}
}

// swapRGB565 copies little-endian RGB565 pixels from src into dst as big-endian,
// the byte order SPI panels expect. It returns the number of bytes written.
func swapRGB565(dst, src []byte) int {
	n := len(src)
	if len(dst) < n {
		n = len(dst)
	}
	n &^= 1
	for i := 0; i < n; i += 2 {
		dst[i] = src[i+1]
		dst[i+1] = src[i]
	}
	return n
}
