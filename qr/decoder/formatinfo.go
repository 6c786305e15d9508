package decoder

import "math/bits"

// formatInfoMaskQR is the fixed XOR mask (per ISO/IEC 18004 §8.9) applied to
// a symbol's raw 15-bit format-info codeword before it can match one of the
// 32 valid BCH(15,5) codewords below. QR defines exactly one such mask,
// unlike the per-symbol-instance masks the same standard uses for data
// modules, so this decoder tries the unmasked codeword first and only
// XORs by this constant on the retry.
const formatInfoMaskQR = 0x5412

// FormatInformation encapsulates a QR code's format info (EC level + data mask).
type FormatInformation struct {
	ECLevel  ErrorCorrectionLevel
	DataMask byte
}

// formatInfoEntry pairs one of the 32 valid masked format-info codewords
// with the (EC level, data mask) it encodes, packed as ECLevel<<3|DataMask.
type formatInfoEntry struct {
	codeword int
	packed   int
}

var formatInfoTable = [32]formatInfoEntry{
	{0x5412, 0x00}, {0x5125, 0x01}, {0x5E7C, 0x02}, {0x5B4B, 0x03},
	{0x45F9, 0x04}, {0x40CE, 0x05}, {0x4F97, 0x06}, {0x4AA0, 0x07},
	{0x77C4, 0x08}, {0x72F3, 0x09}, {0x7DAA, 0x0A}, {0x789D, 0x0B},
	{0x662F, 0x0C}, {0x6318, 0x0D}, {0x6C41, 0x0E}, {0x6976, 0x0F},
	{0x1689, 0x10}, {0x13BE, 0x11}, {0x1CE7, 0x12}, {0x19D0, 0x13},
	{0x0762, 0x14}, {0x0255, 0x15}, {0x0D0C, 0x16}, {0x083B, 0x17},
	{0x355F, 0x18}, {0x3068, 0x19}, {0x3F31, 0x1A}, {0x3A06, 0x1B},
	{0x24B4, 0x1C}, {0x2183, 0x1D}, {0x2EDA, 0x1E}, {0x2BED, 0x1F},
}

func newFormatInformation(packed int) *FormatInformation {
	ecLevel, _ := ECLevelForBits((packed >> 3) & 0x03)
	return &FormatInformation{
		ECLevel:  ecLevel,
		DataMask: byte(packed & 0x07),
	}
}

// DecodeFormatInformation decodes format information from the two redundant
// masked copies a symbol carries. Each pass looks for an exact table match,
// on the first (top-left) copy before the second, and otherwise accepts the
// table entry closest in Hamming distance to either copy if that distance
// is at most 3. The first pass uses the copies as read; a second pass, after
// undoing formatInfoMaskQR, runs only if the first finds nothing.
func DecodeFormatInformation(maskedFormatInfo1, maskedFormatInfo2 int) *FormatInformation {
	fi := doDecodeFormatInformation(maskedFormatInfo1, maskedFormatInfo2)
	if fi != nil {
		return fi
	}
	return doDecodeFormatInformation(maskedFormatInfo1^formatInfoMaskQR, maskedFormatInfo2^formatInfoMaskQR)
}

func doDecodeFormatInformation(maskedFormatInfo1, maskedFormatInfo2 int) *FormatInformation {
	bestDifference := 32
	bestPacked := 0
	for _, entry := range formatInfoTable {
		if entry.codeword == maskedFormatInfo1 {
			return newFormatInformation(entry.packed)
		}
	}
	for _, entry := range formatInfoTable {
		if entry.codeword == maskedFormatInfo2 {
			return newFormatInformation(entry.packed)
		}
		if d := bits.OnesCount(uint(maskedFormatInfo1 ^ entry.codeword)); d < bestDifference {
			bestPacked = entry.packed
			bestDifference = d
		}
		if maskedFormatInfo1 != maskedFormatInfo2 {
			if d := bits.OnesCount(uint(maskedFormatInfo2 ^ entry.codeword)); d < bestDifference {
				bestPacked = entry.packed
				bestDifference = d
			}
		}
	}
	if bestDifference <= 3 {
		return newFormatInformation(bestPacked)
	}
	return nil
}
