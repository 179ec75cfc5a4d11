package hal

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"golang.org/x/image/draw"
)

// Image converts an RGB565 framebuffer to an RGBA image.
func Image(fb Framebuffer) (*image.RGBA, error) {
	if fb == nil {
		return nil, fmt.Errorf("framebuffer image: nil framebuffer")
	}
	if fb.Format() != PixelFormatRGB565 {
		return nil, fmt.Errorf("framebuffer image: unsupported pixel format %d", fb.Format())
	}
	w, h := fb.Width(), fb.Height()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	buf := fb.Buffer()
	stride := fb.StrideBytes()
	for y := 0; y < h; y++ {
		row := buf[y*stride : y*stride+w*2]
		rgbaFromRGB565(img.Pix[y*img.Stride:y*img.Stride+w*4], row)
	}
	return img, nil
}

// WritePNG encodes the framebuffer as PNG, upscaled by an integer factor.
func WritePNG(w io.Writer, fb Framebuffer, scale int) error {
	img, err := Image(fb)
	if err != nil {
		return err
	}
	if scale < 1 {
		scale = 1
	}

	out := image.Image(img)
	if scale > 1 {
		b := img.Bounds()
		scaled := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
		draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), img, b, draw.Src, nil)
		out = scaled
	}
	if err := png.Encode(w, out); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

func rgbaFromRGB565(dst, src []byte) {
	for i := 0; i+1 < len(src) && i/2*4+3 < len(dst); i += 2 {
		r, g, b := rgb888From565(uint16(src[i]) | uint16(src[i+1])<<8)
		j := (i / 2) * 4
		dst[j+0] = r
		dst[j+1] = g
		dst[j+2] = b
		dst[j+3] = 0xFF
	}
}
