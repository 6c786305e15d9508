package decoder

// Mode represents a QR code data encoding mode. Kanji, Structured Append,
// ECI, and the FNC1 variants are part of the full QR standard but are out
// of scope here; only the terminator sentinel and the three supported
// segment modes are represented.
type Mode int

const (
	ModeTerminator   Mode = 0x00
	ModeNumeric      Mode = 0x01
	ModeAlphanumeric Mode = 0x02
	ModeByte         Mode = 0x04
)

// characterCountBits holds [v1-9, v10-26, v27-40] bit widths per mode.
var characterCountBits = map[Mode][3]int{
	ModeTerminator:   {0, 0, 0},
	ModeNumeric:      {10, 12, 14},
	ModeAlphanumeric: {9, 11, 13},
	ModeByte:         {8, 16, 16},
}

// ModeForBits returns the Mode for the given 4-bit value.
func ModeForBits(bits int) (Mode, error) {
	switch bits {
	case 0x0:
		return ModeTerminator, nil
	case 0x1:
		return ModeNumeric, nil
	case 0x2:
		return ModeAlphanumeric, nil
	case 0x4:
		return ModeByte, nil
	}
	return 0, errInvalidMode
}

// CharacterCountBits returns the number of bits used to encode the character
// count for this mode in the given version.
func (m Mode) CharacterCountBits(version *Version) int {
	number := version.Number
	var offset int
	if number <= 9 {
		offset = 0
	} else if number <= 26 {
		offset = 1
	} else {
		offset = 2
	}
	return characterCountBits[m][offset]
}

// Bits returns the 4-bit encoding of this mode.
func (m Mode) Bits() int {
	return int(m)
}

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeTerminator:
		return "TERMINATOR"
	case ModeNumeric:
		return "NUMERIC"
	case ModeAlphanumeric:
		return "ALPHANUMERIC"
	case ModeByte:
		return "BYTE"
	}
	return "?"
}
