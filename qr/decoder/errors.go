package decoder

import "errors"

var (
	errInvalidECLevel   = errors.New("qrcode/decoder: invalid error correction level")
	errInvalidMode      = errors.New("qrcode/decoder: invalid mode")
	errInvalidVersion   = errors.New("qrcode/decoder: invalid version number")
	errDecodingMismatch = errors.New("qrcode/decoder: bitstream decoding mismatch")
)

// ErrUncorrectable is returned by Decoder.Decode when a Reed-Solomon block
// carries more errors than its parity codewords can fix.
var ErrUncorrectable = errors.New("qrcode/decoder: block has more errors than error correction can fix")

// ErrFormatInfoUnreadable is returned when BCH(15,5) decoding fails at
// both format-info locations.
var ErrFormatInfoUnreadable = errors.New("qrcode/decoder: format information unreadable")

// ErrVersionInfoUnreadable is returned when, for V>=7, BCH(18,6) decoding
// fails at both version-info locations.
var ErrVersionInfoUnreadable = errors.New("qrcode/decoder: version information unreadable")
