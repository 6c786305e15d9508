package detector

import "errors"

var (
	errFinderNotFound = errors.New("qrcode/detector: could not locate three finder patterns")
	errBadDimension   = errors.New("qrcode/detector: could not compute a valid symbol dimension")
)
