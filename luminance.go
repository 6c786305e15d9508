package qrcore

// LuminanceSource provides access to greyscale luminance values for an
// image. Implementations need not precompute the entire matrix eagerly.
type LuminanceSource interface {
	// Row returns a row of luminance data. If row is non-nil and large
	// enough, it is reused.
	Row(y int, row []byte) []byte

	// Matrix returns the entire luminance matrix, row-major.
	Matrix() []byte

	// Width returns the width of the image.
	Width() int

	// Height returns the height of the image.
	Height() int
}

// RGBALuminanceSource converts a caller-supplied RGBA pixel buffer
// (width*height*4 bytes, row-major, 8 bits per channel) into greyscale
// luminance on construction, using the weights from the QR sampling spec:
// L = 0.30*R + 0.59*G + 0.11*B.
type RGBALuminanceSource struct {
	luminances []byte
	width      int
	height     int
}

// NewRGBALuminanceSource builds a LuminanceSource from a raw RGBA pixel
// buffer. It panics if len(pixels) != w*h*4, since that indicates a
// programmer error in the caller rather than bad image content.
func NewRGBALuminanceSource(pixels []byte, w, h int) *RGBALuminanceSource {
	if len(pixels) != w*h*4 {
		panic("qrcore: pixel buffer length does not match width*height*4")
	}
	luminances := make([]byte, w*h)
	for i := 0; i < w*h; i++ {
		r := int(pixels[4*i])
		g := int(pixels[4*i+1])
		b := int(pixels[4*i+2])
		// Fixed-point form of 0.30R + 0.59G + 0.11B, rounded.
		luminances[i] = byte((30*r + 59*g + 11*b + 50) / 100)
	}
	return &RGBALuminanceSource{luminances: luminances, width: w, height: h}
}

// Row returns a row of luminance data.
func (s *RGBALuminanceSource) Row(y int, row []byte) []byte {
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
func (s *RGBALuminanceSource) Matrix() []byte {
	result := make([]byte, len(s.luminances))
	copy(result, s.luminances)
	return result
}

// Width returns the image width.
func (s *RGBALuminanceSource) Width() int { return s.width }

// Height returns the image height.
func (s *RGBALuminanceSource) Height() int { return s.height }

// croppedLuminanceSource restricts a LuminanceSource to a sub-rectangle,
// used to scope the finder scan to a caller-supplied region.
type croppedLuminanceSource struct {
	inner    LuminanceSource
	x0, y0   int
	w, h     int
}

func cropLuminance(inner LuminanceSource, x0, x1, y0, y1 int) LuminanceSource {
	if x0 == 0 && y0 == 0 && x1 == inner.Width() && y1 == inner.Height() {
		return inner
	}
	return &croppedLuminanceSource{inner: inner, x0: x0, y0: y0, w: x1 - x0, h: y1 - y0}
}

func (c *croppedLuminanceSource) Row(y int, row []byte) []byte {
	if y < 0 || y >= c.h {
		return nil
	}
	full := c.inner.Row(c.y0+y, nil)
	if row == nil || len(row) < c.w {
		row = make([]byte, c.w)
	}
	copy(row, full[c.x0:c.x0+c.w])
	return row
}

func (c *croppedLuminanceSource) Matrix() []byte {
	result := make([]byte, c.w*c.h)
	for y := 0; y < c.h; y++ {
		row := c.Row(y, nil)
		copy(result[y*c.w:(y+1)*c.w], row)
	}
	return result
}

func (c *croppedLuminanceSource) Width() int  { return c.w }
func (c *croppedLuminanceSource) Height() int { return c.h }
