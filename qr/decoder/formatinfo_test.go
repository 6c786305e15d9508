package decoder

import (
	"testing"

	"github.com/ericlevine/qrcore/bitutil"
)

func TestDecodeFormatInformationExactMatch(t *testing.T) {
	fi := DecodeFormatInformation(0x5412, 0x5412)
	if fi == nil {
		t.Fatal("expected a decode for an exact table entry")
	}
	if fi.ECLevel != ECLevelM || fi.DataMask != 0 {
		t.Errorf("got ECLevel=%v DataMask=%d, want M/0", fi.ECLevel, fi.DataMask)
	}
}

func TestDecodeFormatInformationToleratesSingleCopyCorruption(t *testing.T) {
	// 0x5125 is a genuine table entry (mask 1); flip one low bit so it no
	// longer matches exactly, and confirm it is still recovered from the
	// second, uncorrupted copy, which matches its table entry exactly.
	fi := DecodeFormatInformation(0x5125^0x1, 0x5125)
	if fi == nil {
		t.Fatal("expected recovery from a single corrupted copy")
	}
	if fi.DataMask != 1 {
		t.Errorf("DataMask = %d, want 1", fi.DataMask)
	}
}

func TestDecodeFormatInformationFailsWhenBothCopiesUnrecoverable(t *testing.T) {
	// 0x2AAA sits at Hamming distance 4 from its nearest table entry both
	// as read and after the standard's alternate-mask fallback, past the
	// <=3 tie-break tolerance either branch allows.
	fi := DecodeFormatInformation(0x2AAA, 0x2AAA)
	if fi != nil {
		t.Fatalf("expected nil for input with no close table entry, got %+v", fi)
	}
}

func TestUnmaskBitMatrixIsSelfInverse(t *testing.T) {
	// Grounded on the same self-inverse property the encoder and decoder
	// both rely on: masking twice with the same pattern returns the
	// original matrix, since UnmaskBitMatrix is a per-cell XOR.
	m := bitutil.NewBitMatrix(21)
	m.Set(0, 0)
	m.Set(5, 5)
	m.Set(20, 20)

	original := m.Clone()
	UnmaskBitMatrix(m, 21, 3)
	UnmaskBitMatrix(m, 21, 3)

	for y := 0; y < 21; y++ {
		for x := 0; x < 21; x++ {
			if m.Get(x, y) != original.Get(x, y) {
				t.Fatalf("mask/unmask round trip mismatch at (%d,%d)", x, y)
			}
		}
	}
}

func TestMaskPenaltyPrefersFewerRuns(t *testing.T) {
	// A matrix with a long same-color run in row 0 should score strictly
	// worse under rule 1 than one broken into alternating short runs.
	striped := bitutil.NewBitMatrix(21)
	for x := 0; x < 21; x++ {
		if x%2 == 0 {
			striped.Set(x, 0)
		}
	}
	solid := bitutil.NewBitMatrix(21)
	for x := 0; x < 21; x++ {
		solid.Set(x, 0)
	}
	if MaskPenalty(solid) <= MaskPenalty(striped) {
		t.Errorf("solid run penalty %d not worse than striped penalty %d", MaskPenalty(solid), MaskPenalty(striped))
	}
}
