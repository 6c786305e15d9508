package qrcore

import (
	"errors"
	"fmt"

	"github.com/ericlevine/qrcore/qr/decoder"
	"github.com/ericlevine/qrcore/qr/encoder"
)

// Encode packs text into a QR symbol using the given mode and error
// correction level. If version is 0, the smallest version that can hold
// the content is chosen. A version outside [0, 40] fails with
// ErrInvalidInput; a version in [1, 40] too small for the content fails
// with ErrCapacityExceeded.
func Encode(text string, mode Mode, ec ErrorCorrectionLevel, version int) (*Grid, error) {
	if version < 0 || version > 40 {
		return nil, fmt.Errorf("qrcore: version %d out of range: %w", version, ErrInvalidInput)
	}

	qr, err := encoder.Encode(text, mode.toDecoder(), ec.toDecoder(), version, -1)
	if err != nil {
		if errors.Is(err, encoder.ErrCapacityExceeded) {
			return nil, fmt.Errorf("qrcore: %w", ErrCapacityExceeded)
		}
		return nil, fmt.Errorf("qrcore: %w", ErrInvalidInput)
	}
	return newGrid(qr), nil
}

// VersionForLength returns the smallest version at ec that can hold
// length characters of mode, or ErrCapacityExceeded if none of the 40
// versions can.
func VersionForLength(ec ErrorCorrectionLevel, mode Mode, length int) (int, error) {
	dmode := mode.toDecoder()
	decLevel := ec.toDecoder()
	for v := 1; v <= 40; v++ {
		version, err := decoder.GetVersionForNumber(v)
		if err != nil {
			return 0, fmt.Errorf("qrcore: %w", ErrInvalidInput)
		}
		headerBits := 4 + dmode.CharacterCountBits(version)
		dataBits := bitsForLength(dmode, length)
		ecBlocks := version.ECBlocksForLevel(decLevel)
		numDataBytes := version.TotalCodewords - ecBlocks.TotalECCodewords()
		if headerBits+dataBits <= numDataBytes*8 {
			return v, nil
		}
	}
	return 0, fmt.Errorf("qrcore: %w", ErrCapacityExceeded)
}

func bitsForLength(mode decoder.Mode, length int) int {
	switch mode {
	case decoder.ModeNumeric:
		full := length / 3
		rem := length % 3
		bits := full * 10
		switch rem {
		case 1:
			bits += 4
		case 2:
			bits += 7
		}
		return bits
	case decoder.ModeAlphanumeric:
		bits := (length / 2) * 11
		if length%2 == 1 {
			bits += 6
		}
		return bits
	default: // ModeByte
		return length * 8
	}
}

// DataCapacityBits returns the number of data-codeword bits (every
// codeword except the error-correction ones) at the given version and
// error correction level. The segment's mode and count header is part of
// what must fit in this capacity.
func DataCapacityBits(version int, ec ErrorCorrectionLevel) int {
	v, err := decoder.GetVersionForNumber(version)
	if err != nil {
		return 0
	}
	ecBlocks := v.ECBlocksForLevel(ec.toDecoder())
	return (v.TotalCodewords - ecBlocks.TotalECCodewords()) * 8
}
