package decoder

import (
	"fmt"
	"strings"

	"github.com/ericlevine/qrcore/bitutil"
)

// AlphanumericChars is the QR alphanumeric alphabet, in the order fixed
// by the standard: values 0..44.
const AlphanumericChars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"

// DecodeBitStream unpacks a de-interleaved, error-corrected codeword
// stream into its original text, reversing exactly what the encoder's
// bitstream writer produced: a single segment (mode indicator, character
// count, payload), a terminator, and padding.
func DecodeBitStream(bytes []byte, version *Version) (string, error) {
	bs := bitutil.NewBitSource(bytes)
	var result strings.Builder
	result.Grow(len(bytes))

	if bs.Available() < 4 {
		return "", nil
	}
	modeBits, err := bs.ReadBits(4)
	if err != nil {
		return "", fmt.Errorf("qrcode/decoder: %w", errDecodingMismatch)
	}
	mode, err := ModeForBits(modeBits)
	if err != nil {
		return "", fmt.Errorf("qrcode/decoder: %w", errDecodingMismatch)
	}
	if mode == ModeTerminator {
		return "", nil
	}

	countBits := mode.CharacterCountBits(version)
	count, err := bs.ReadBits(countBits)
	if err != nil {
		return "", fmt.Errorf("qrcode/decoder: %w", errDecodingMismatch)
	}

	switch mode {
	case ModeNumeric:
		if err := decodeNumericSegment(bs, &result, count); err != nil {
			return "", err
		}
	case ModeAlphanumeric:
		if err := decodeAlphanumericSegment(bs, &result, count); err != nil {
			return "", err
		}
	case ModeByte:
		if err := decodeByteSegment(bs, &result, count); err != nil {
			return "", err
		}
	default:
		return "", fmt.Errorf("qrcode/decoder: %w", errDecodingMismatch)
	}

	return result.String(), nil
}

func decodeByteSegment(bs *bitutil.BitSource, result *strings.Builder, count int) error {
	if 8*count > bs.Available() {
		return fmt.Errorf("qrcode/decoder: %w", errDecodingMismatch)
	}
	for i := 0; i < count; i++ {
		val, _ := bs.ReadBits(8)
		result.WriteByte(byte(val))
	}
	return nil
}

func toAlphaNumericChar(value int) (byte, error) {
	if value < 0 || value >= len(AlphanumericChars) {
		return 0, fmt.Errorf("qrcode/decoder: %w", errDecodingMismatch)
	}
	return AlphanumericChars[value], nil
}

func decodeAlphanumericSegment(bs *bitutil.BitSource, result *strings.Builder, count int) error {
	for count > 1 {
		if bs.Available() < 11 {
			return fmt.Errorf("qrcode/decoder: %w", errDecodingMismatch)
		}
		nextTwo, _ := bs.ReadBits(11)
		c1, err := toAlphaNumericChar(nextTwo / 45)
		if err != nil {
			return err
		}
		c2, err := toAlphaNumericChar(nextTwo % 45)
		if err != nil {
			return err
		}
		result.WriteByte(c1)
		result.WriteByte(c2)
		count -= 2
	}
	if count == 1 {
		if bs.Available() < 6 {
			return fmt.Errorf("qrcode/decoder: %w", errDecodingMismatch)
		}
		val, _ := bs.ReadBits(6)
		c, err := toAlphaNumericChar(val)
		if err != nil {
			return err
		}
		result.WriteByte(c)
	}
	return nil
}

func decodeNumericSegment(bs *bitutil.BitSource, result *strings.Builder, count int) error {
	for count >= 3 {
		if bs.Available() < 10 {
			return fmt.Errorf("qrcode/decoder: %w", errDecodingMismatch)
		}
		threeDigits, _ := bs.ReadBits(10)
		if threeDigits >= 1000 {
			return fmt.Errorf("qrcode/decoder: %w", errDecodingMismatch)
		}
		result.WriteString(fmt.Sprintf("%03d", threeDigits))
		count -= 3
	}
	if count == 2 {
		if bs.Available() < 7 {
			return fmt.Errorf("qrcode/decoder: %w", errDecodingMismatch)
		}
		twoDigits, _ := bs.ReadBits(7)
		if twoDigits >= 100 {
			return fmt.Errorf("qrcode/decoder: %w", errDecodingMismatch)
		}
		result.WriteString(fmt.Sprintf("%02d", twoDigits))
	} else if count == 1 {
		if bs.Available() < 4 {
			return fmt.Errorf("qrcode/decoder: %w", errDecodingMismatch)
		}
		digit, _ := bs.ReadBits(4)
		if digit >= 10 {
			return fmt.Errorf("qrcode/decoder: %w", errDecodingMismatch)
		}
		result.WriteString(fmt.Sprintf("%d", digit))
	}
	return nil
}
