package qrcore

import (
	"image"

	"golang.org/x/image/draw"
)

// ImageLuminanceSource wraps a Go image.Image, converting each pixel to
// greyscale luminance on construction. It satisfies LuminanceSource, so it
// can be sampled by the same binarizer/detector pipeline as
// RGBALuminanceSource; it exists as a convenience for callers that already
// hold a decoded image.Image rather than a raw pixel buffer.
type ImageLuminanceSource struct {
	luminances []byte
	width      int
	height     int
}

// NewImageLuminanceSource creates a LuminanceSource from a Go image.Image,
// applying the same 0.30R + 0.59G + 0.11B weighting Decode uses for raw
// pixel buffers.
func NewImageLuminanceSource(img image.Image) *ImageLuminanceSource {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	luminances := make([]byte, w*h)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			if a == 0 {
				luminances[y*w+x] = 0xFF
				continue
			}
			r8 := int(r >> 8)
			g8 := int(g >> 8)
			b8 := int(b >> 8)
			luminances[y*w+x] = byte((30*r8 + 59*g8 + 11*b8 + 50) / 100)
		}
	}

	return &ImageLuminanceSource{luminances: luminances, width: w, height: h}
}

// NewScaledImageLuminanceSource is like NewImageLuminanceSource, but first
// resamples img so its longer side is at most maxDim pixels. Oversized
// source images (a camera frame far larger than any plausible symbol)
// otherwise waste detector search time proportional to their area with no
// gain in read reliability once modules are well above the sampler's
// minimum module-size threshold.
func NewScaledImageLuminanceSource(img image.Image, maxDim int) *ImageLuminanceSource {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	longest := w
	if h > longest {
		longest = h
	}
	if longest <= maxDim {
		return NewImageLuminanceSource(img)
	}

	scale := float64(maxDim) / float64(longest)
	dstW := int(float64(w)*scale + 0.5)
	dstH := int(float64(h)*scale + 0.5)
	if dstW < 1 {
		dstW = 1
	}
	if dstH < 1 {
		dstH = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, dstW, dstH))
	draw.BiLinear.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return NewImageLuminanceSource(dst)
}

// Row returns a row of luminance data.
func (s *ImageLuminanceSource) Row(y int, row []byte) []byte {
	if y < 0 || y >= s.height {
		return nil
	}
	if row == nil || len(row) < s.width {
		row = make([]byte, s.width)
	}
	offset := y * s.width
	copy(row, s.luminances[offset:offset+s.width])
	return row
}

// Matrix returns a copy of the entire luminance matrix.
func (s *ImageLuminanceSource) Matrix() []byte {
	result := make([]byte, len(s.luminances))
	copy(result, s.luminances)
	return result
}

// Width returns the image width.
func (s *ImageLuminanceSource) Width() int { return s.width }

// Height returns the image height.
func (s *ImageLuminanceSource) Height() int { return s.height }
