package qrcore

import (
	"github.com/ericlevine/qrcore/qr/decoder"
	"github.com/ericlevine/qrcore/qr/encoder"
)

// Grid is the module matrix produced by Encode: a square boolean array,
// dark-true, plus the parameters that fixed its size and structure.
type Grid struct {
	Dimension int
	Version   int
	ECLevel   ErrorCorrectionLevel
	Mask      int
	modules   *encoder.ByteMatrix
}

// Get reports whether module (x, y) is dark.
func (g *Grid) Get(x, y int) bool {
	return g.modules.Get(x, y) == 1
}

// Row returns a copy of row y as a []bool, dark-true.
func (g *Grid) Row(y int) []bool {
	row := make([]bool, g.Dimension)
	for x := 0; x < g.Dimension; x++ {
		row[x] = g.Get(x, y)
	}
	return row
}

func newGrid(qr *encoder.QRCode) *Grid {
	return &Grid{
		Dimension: qr.Matrix.Width,
		Version:   qr.Version.Number,
		ECLevel:   ecLevelFromDecoder(qr.ECLevel),
		Mask:      qr.MaskPattern,
		modules:   qr.Matrix,
	}
}

// ErrorCorrectionLevel is the four-level QR error correction strength.
// Ordinal values match the array-index convention used by the version
// capacity tables (L=0, M=1, Q=2, H=3), distinct from the wire-format bit
// pattern used inside format information (L=1, M=0, Q=3, H=2).
type ErrorCorrectionLevel int

const (
	ECLevelL ErrorCorrectionLevel = iota
	ECLevelM
	ECLevelQ
	ECLevelH
)

// String returns the single-letter name of the level.
func (e ErrorCorrectionLevel) String() string {
	switch e {
	case ECLevelL:
		return "L"
	case ECLevelM:
		return "M"
	case ECLevelQ:
		return "Q"
	case ECLevelH:
		return "H"
	}
	return "?"
}

func (e ErrorCorrectionLevel) toDecoder() decoder.ErrorCorrectionLevel {
	switch e {
	case ECLevelL:
		return decoder.ECLevelL
	case ECLevelM:
		return decoder.ECLevelM
	case ECLevelQ:
		return decoder.ECLevelQ
	case ECLevelH:
		return decoder.ECLevelH
	}
	return decoder.ECLevelL
}

func ecLevelFromDecoder(e decoder.ErrorCorrectionLevel) ErrorCorrectionLevel {
	switch e {
	case decoder.ECLevelL:
		return ECLevelL
	case decoder.ECLevelM:
		return ECLevelM
	case decoder.ECLevelQ:
		return ECLevelQ
	case decoder.ECLevelH:
		return ECLevelH
	}
	return ECLevelL
}

// Mode is the QR data encoding mode. Kanji, Structured Append, ECI, and
// the FNC1 variants are part of the full standard but out of scope here.
type Mode int

const (
	ModeNumeric      Mode = Mode(decoder.ModeNumeric)
	ModeAlphanumeric Mode = Mode(decoder.ModeAlphanumeric)
	ModeByte         Mode = Mode(decoder.ModeByte)
)

func (m Mode) toDecoder() decoder.Mode { return decoder.Mode(m) }
