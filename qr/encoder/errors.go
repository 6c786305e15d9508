package encoder

import "errors"

var (
	// ErrCapacityExceeded means the requested version/EC level combination
	// cannot hold the encoded content. With an explicit version this is
	// returned even when a larger version would fit; with automatic
	// selection it means no version at that EC level fits.
	ErrCapacityExceeded = errors.New("qrcode/encoder: content exceeds capacity")

	// ErrInvalidContent means the content contains characters the requested
	// mode cannot represent.
	ErrInvalidContent = errors.New("qrcode/encoder: content not valid for mode")
)
