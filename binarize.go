package qrcore

import "github.com/ericlevine/qrcore/bitutil"

// Binarizer converts luminance data to 1-bit black/white data. The
// binarizer package provides the two implementations used by the sampler:
// a global-histogram threshold and a locally-adaptive one. It declares its
// own LuminanceSource type rather than importing this one, so this
// interface only names the methods a caller actually drives; a concrete
// binarizer is used through its own package's LuminanceSource, never
// through this one.
type Binarizer interface {
	// BlackRow returns a row of black/white values.
	BlackRow(y int, row *bitutil.BitArray) (*bitutil.BitArray, error)

	// BlackMatrix returns the 2D matrix of black/white values.
	BlackMatrix() (*bitutil.BitMatrix, error)

	// Width returns the width of the image.
	Width() int

	// Height returns the height of the image.
	Height() int
}
