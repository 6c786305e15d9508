package binarizer

import "errors"

// LuminanceSource provides access to greyscale luminance values for an
// image. Implementations need not precompute the entire matrix eagerly.
// It mirrors the root package's LuminanceSource method set exactly, so
// any qrcore.LuminanceSource value can be passed to NewGlobalHistogram
// or NewHybrid without an adapter.
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

// ErrLowContrast is returned when a luminance histogram has no clear
// two-peak split, meaning the image lacks the contrast needed to pick a
// black point.
var ErrLowContrast = errors.New("binarizer: image does not have enough contrast to binarize")
