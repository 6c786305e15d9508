package qrcore

import "errors"

// Error taxonomy for the QR core. Each is a sentinel suitable for
// errors.Is; decode/encode paths wrap these with fmt.Errorf("...: %w", ...).
// A few wraps add context (an out-of-range version, invalid region bounds,
// a version above maxVersion); the rest add only the "qrcore:" prefix and
// do not say which block or location failed.
var (
	// ErrInvalidInput is returned when text contains characters not
	// permitted by the chosen mode, or a version is out of range.
	ErrInvalidInput = errors.New("qrcore: invalid input")

	// ErrCapacityExceeded is returned when a payload does not fit the
	// chosen (version, ec, mode).
	ErrCapacityExceeded = errors.New("qrcore: capacity exceeded")

	// ErrFinderNotFound is returned when fewer than three finder patterns
	// can be confirmed in the image, or when the patterns found do not give
	// a usable module size or symbol dimension. More than three confirmed
	// candidates is not an error: three of them are picked and used.
	ErrFinderNotFound = errors.New("qrcore: finder patterns not found")

	// ErrFormatInfoUnreadable is returned when BCH(15,5) decoding fails
	// at both format-info locations.
	ErrFormatInfoUnreadable = errors.New("qrcore: format information unreadable")

	// ErrVersionInfoUnreadable is returned when, for V>=7, BCH(18,6)
	// decoding fails at both version-info locations and the pitch-based
	// estimate disagrees.
	ErrVersionInfoUnreadable = errors.New("qrcore: version information unreadable")

	// ErrSamplingFailed is returned when the image cannot be binarized,
	// when the perspective fit maps module centers outside the image, or
	// when DecodeRegion's maxVersion rejects the symbol. An alignment
	// pattern missing from its search window is not an error: the fit then
	// uses a bottom-right corner estimated from the three finder patterns.
	ErrSamplingFailed = errors.New("qrcore: sampling failed")

	// ErrUncorrectable is returned when at least one Reed-Solomon block
	// exceeds its correction capacity.
	ErrUncorrectable = errors.New("qrcore: uncorrectable errors")

	// ErrDecodingMismatch is returned when the decoded bitstream
	// violates mode/count/terminator structure.
	ErrDecodingMismatch = errors.New("qrcore: decoded bitstream is malformed")
)
