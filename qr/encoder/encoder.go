// Package encoder implements QR code encoding: mode-appropriate bitstream
// packing, Reed-Solomon codeword generation, mask selection, and module
// placement.
package encoder

import (
	"fmt"
	"math"
	"strings"

	"github.com/ericlevine/qrcore/bitutil"
	"github.com/ericlevine/qrcore/qr/decoder"
	"github.com/ericlevine/qrcore/reedsolomon"
)

const numMaskPatterns = 8

// ByteMatrix is a simple 2D byte matrix used while building a symbol.
// Cells hold 0, 1, or 0xFF for "not yet placed".
type ByteMatrix struct {
	Data          [][]byte
	Width, Height int
}

// NewByteMatrix creates a new ByteMatrix.
func NewByteMatrix(width, height int) *ByteMatrix {
	data := make([][]byte, height)
	for i := range data {
		data[i] = make([]byte, width)
	}
	return &ByteMatrix{Data: data, Width: width, Height: height}
}

// Get returns the value at (x, y).
func (bm *ByteMatrix) Get(x, y int) byte { return bm.Data[y][x] }

// Set sets the value at (x, y).
func (bm *ByteMatrix) Set(x, y int, value byte) { bm.Data[y][x] = value }

// Clear fills the matrix with the given value.
func (bm *ByteMatrix) Clear(value byte) {
	for y := range bm.Data {
		for x := range bm.Data[y] {
			bm.Data[y][x] = value
		}
	}
}

// QRCode holds the encoded QR code data prior to conversion to a Grid.
type QRCode struct {
	Mode        decoder.Mode
	ECLevel     decoder.ErrorCorrectionLevel
	Version     *decoder.Version
	MaskPattern int
	Matrix      *ByteMatrix
}

// alphanumericTable maps ASCII values to alphanumeric codes, -1 if none.
var alphanumericTable = [128]int{
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	36, -1, -1, -1, 37, 38, -1, -1, -1, -1, 39, 40, -1, 41, 42, 43,
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 44, -1, -1, -1, -1, -1,
	-1, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24,
	25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
}

// GetAlphanumericCode returns the alphanumeric code for a character, or -1.
func GetAlphanumericCode(code int) int {
	if code < 128 {
		return alphanumericTable[code]
	}
	return -1
}

// Encode packs content into a QRCode using the caller-supplied mode and
// error correction level. Mode is never inferred: the caller decides
// whether content is numeric, alphanumeric, or byte data, and Encode
// fails with ErrInvalidContent if the content doesn't fit the mode.
//
// If qrVersion is 0, the smallest version that can hold the content at
// ecLevel is chosen. If maskPattern is outside [0,8), the mask with the
// lowest penalty score is chosen.
func Encode(content string, mode decoder.Mode, ecLevel decoder.ErrorCorrectionLevel, qrVersion int, maskPattern int) (*QRCode, error) {
	headerBits := bitutil.NewBitArray(0)
	headerBits.AppendBits(uint32(mode.Bits()), 4)

	dataBits := bitutil.NewBitArray(0)
	if err := appendBytes(content, mode, dataBits); err != nil {
		return nil, err
	}

	var version *decoder.Version
	var err error
	if qrVersion > 0 {
		version, err = decoder.GetVersionForNumber(qrVersion)
		if err != nil {
			return nil, err
		}
	} else {
		version, err = chooseVersion(mode, headerBits, dataBits, ecLevel)
		if err != nil {
			return nil, err
		}
	}

	numLetters := len(content)
	if mode == decoder.ModeAlphanumeric || mode == decoder.ModeNumeric {
		numLetters = utf8RuneCountForDigits(content)
	}
	countBits := mode.CharacterCountBits(version)
	headerBits.AppendBits(uint32(numLetters), countBits)
	headerBits.AppendBitArray(dataBits)

	ecBlocks := version.ECBlocksForLevel(ecLevel)
	totalBytes := version.TotalCodewords
	numDataBytes := totalBytes - ecBlocks.TotalECCodewords()

	if err := terminateBits(numDataBytes, headerBits); err != nil {
		return nil, err
	}

	numRSBlocks := ecBlocks.NumBlocks()
	finalBits, err := interleaveWithECBytes(headerBits, totalBytes, numDataBytes, numRSBlocks)
	if err != nil {
		return nil, err
	}

	qr := &QRCode{
		Mode:        mode,
		ECLevel:     ecLevel,
		Version:     version,
		MaskPattern: -1,
	}

	dimension := version.DimensionForVersion()
	matrix := NewByteMatrix(dimension, dimension)

	if maskPattern >= 0 && maskPattern < numMaskPatterns {
		qr.MaskPattern = maskPattern
	} else {
		qr.MaskPattern = chooseMaskPattern(finalBits, ecLevel, version, matrix)
	}

	qr.Matrix = matrix
	buildMatrix(finalBits, ecLevel, version, qr.MaskPattern, matrix)

	return qr, nil
}

// utf8RuneCountForDigits counts characters for numeric/alphanumeric mode,
// where content is guaranteed single-byte ASCII by appendBytes validation.
func utf8RuneCountForDigits(content string) int {
	return len(content)
}

func chooseVersion(mode decoder.Mode, headerBits *bitutil.BitArray, dataBits *bitutil.BitArray, ecLevel decoder.ErrorCorrectionLevel) (*decoder.Version, error) {
	for versionNum := 1; versionNum <= 40; versionNum++ {
		version, _ := decoder.GetVersionForNumber(versionNum)
		totalBits := headerBits.Size() + mode.CharacterCountBits(version) + dataBits.Size()
		ecBlocks := version.ECBlocksForLevel(ecLevel)
		numDataBytes := version.TotalCodewords - ecBlocks.TotalECCodewords()
		if totalBits <= numDataBytes*8 {
			return version, nil
		}
	}
	return nil, fmt.Errorf("%w: no version at this EC level fits", ErrCapacityExceeded)
}

func terminateBits(numDataBytes int, bits *bitutil.BitArray) error {
	capacity := numDataBytes * 8
	if bits.Size() > capacity {
		return fmt.Errorf("%w: %d data bits, %d byte capacity", ErrCapacityExceeded, bits.Size(), numDataBytes)
	}

	for i := 0; i < 4 && bits.Size() < capacity; i++ {
		bits.AppendBit(false)
	}

	numBitsInLastByte := bits.Size() & 0x07
	if numBitsInLastByte > 0 {
		for i := numBitsInLastByte; i < 8; i++ {
			bits.AppendBit(false)
		}
	}

	numPaddingBytes := numDataBytes - bits.SizeInBytes()
	for i := 0; i < numPaddingBytes; i++ {
		if i%2 == 0 {
			bits.AppendBits(0xEC, 8)
		} else {
			bits.AppendBits(0x11, 8)
		}
	}
	return nil
}

func appendBytes(content string, mode decoder.Mode, bits *bitutil.BitArray) error {
	switch mode {
	case decoder.ModeNumeric:
		return appendNumericBytes(content, bits)
	case decoder.ModeAlphanumeric:
		return appendAlphanumericBytes(content, bits)
	case decoder.ModeByte:
		return append8BitBytes(content, bits)
	default:
		return fmt.Errorf("%w: unsupported mode %s", ErrInvalidContent, mode)
	}
}

func appendNumericBytes(content string, bits *bitutil.BitArray) error {
	length := len(content)
	for i := 0; i < length; i++ {
		if content[i] < '0' || content[i] > '9' {
			return fmt.Errorf("%w: non-digit character in numeric mode", ErrInvalidContent)
		}
	}
	i := 0
	for i < length {
		num1 := int(content[i] - '0')
		if i+2 < length {
			num2 := int(content[i+1] - '0')
			num3 := int(content[i+2] - '0')
			bits.AppendBits(uint32(num1*100+num2*10+num3), 10)
			i += 3
		} else if i+1 < length {
			num2 := int(content[i+1] - '0')
			bits.AppendBits(uint32(num1*10+num2), 7)
			i += 2
		} else {
			bits.AppendBits(uint32(num1), 4)
			i++
		}
	}
	return nil
}

func appendAlphanumericBytes(content string, bits *bitutil.BitArray) error {
	length := len(content)
	i := 0
	for i < length {
		code1 := GetAlphanumericCode(int(content[i]))
		if code1 == -1 {
			return fmt.Errorf("%w: invalid alphanumeric character %q", ErrInvalidContent, content[i])
		}
		if i+1 < length {
			code2 := GetAlphanumericCode(int(content[i+1]))
			if code2 == -1 {
				return fmt.Errorf("%w: invalid alphanumeric character %q", ErrInvalidContent, content[i+1])
			}
			bits.AppendBits(uint32(code1*45+code2), 11)
			i += 2
		} else {
			bits.AppendBits(uint32(code1), 6)
			i++
		}
	}
	return nil
}

func append8BitBytes(content string, bits *bitutil.BitArray) error {
	for i := 0; i < len(content); i++ {
		bits.AppendBits(uint32(content[i]), 8)
	}
	return nil
}

func interleaveWithECBytes(bits *bitutil.BitArray, numTotalBytes, numDataBytes, numRSBlocks int) (*bitutil.BitArray, error) {
	if bits.SizeInBytes() != numDataBytes {
		return nil, fmt.Errorf("%w: data bytes mismatch", ErrCapacityExceeded)
	}

	dataBytesOffset := 0
	maxNumDataBytes := 0
	maxNumEcBytes := 0

	type blockPair struct {
		dataBytes []byte
		ecBytes   []byte
	}
	blocks := make([]blockPair, numRSBlocks)

	for i := 0; i < numRSBlocks; i++ {
		numDataBytesInBlock, numEcBytesInBlock := getNumDataBytesAndNumECBytesForBlockID(
			numTotalBytes, numDataBytes, numRSBlocks, i)

		dataBytes := make([]byte, numDataBytesInBlock)
		bits.ToBytes(8*dataBytesOffset, dataBytes, 0, numDataBytesInBlock)
		ecBytes := generateECBytes(dataBytes, numEcBytesInBlock)
		blocks[i] = blockPair{dataBytes: dataBytes, ecBytes: ecBytes}

		if numDataBytesInBlock > maxNumDataBytes {
			maxNumDataBytes = numDataBytesInBlock
		}
		if numEcBytesInBlock > maxNumEcBytes {
			maxNumEcBytes = numEcBytesInBlock
		}
		dataBytesOffset += numDataBytesInBlock
	}

	result := bitutil.NewBitArray(0)

	for i := 0; i < maxNumDataBytes; i++ {
		for _, block := range blocks {
			if i < len(block.dataBytes) {
				result.AppendBits(uint32(block.dataBytes[i]), 8)
			}
		}
	}
	for i := 0; i < maxNumEcBytes; i++ {
		for _, block := range blocks {
			if i < len(block.ecBytes) {
				result.AppendBits(uint32(block.ecBytes[i]), 8)
			}
		}
	}

	if result.SizeInBytes() != numTotalBytes {
		return nil, fmt.Errorf("%w: interleaved size mismatch", ErrCapacityExceeded)
	}
	return result, nil
}

func getNumDataBytesAndNumECBytesForBlockID(numTotalBytes, numDataBytes, numRSBlocks, blockID int) (int, int) {
	if blockID >= numRSBlocks {
		return 0, 0
	}
	numRsBlocksInGroup2 := numTotalBytes % numRSBlocks
	numRsBlocksInGroup1 := numRSBlocks - numRsBlocksInGroup2
	numTotalBytesInGroup1 := numTotalBytes / numRSBlocks
	numTotalBytesInGroup2 := numTotalBytesInGroup1 + 1
	numDataBytesInGroup1 := numDataBytes / numRSBlocks
	numDataBytesInGroup2 := numDataBytesInGroup1 + 1
	numEcBytesInGroup1 := numTotalBytesInGroup1 - numDataBytesInGroup1
	numEcBytesInGroup2 := numTotalBytesInGroup2 - numDataBytesInGroup2

	if blockID < numRsBlocksInGroup1 {
		return numDataBytesInGroup1, numEcBytesInGroup1
	}
	return numDataBytesInGroup2, numEcBytesInGroup2
}

func generateECBytes(dataBytes []byte, numEcBytesInBlock int) []byte {
	numDataBytes := len(dataBytes)
	toEncode := make([]int, numDataBytes+numEcBytesInBlock)
	for i, b := range dataBytes {
		toEncode[i] = int(b) & 0xFF
	}
	enc := reedsolomon.NewEncoder()
	enc.Encode(toEncode, numEcBytesInBlock)
	ecBytes := make([]byte, numEcBytesInBlock)
	for i := 0; i < numEcBytesInBlock; i++ {
		ecBytes[i] = byte(toEncode[numDataBytes+i])
	}
	return ecBytes
}

// chooseMaskPattern tries every mask and keeps the one with the lowest
// penalty score, using the same evaluator the decoder exposes for scoring
// an already-sampled symbol.
func chooseMaskPattern(bits *bitutil.BitArray, ecLevel decoder.ErrorCorrectionLevel, version *decoder.Version, matrix *ByteMatrix) int {
	minPenalty := math.MaxInt32
	bestPattern := 0
	for i := 0; i < numMaskPatterns; i++ {
		buildMatrix(bits, ecLevel, version, i, matrix)
		penalty := decoder.MaskPenalty(toBitMatrix(matrix))
		if penalty < minPenalty {
			minPenalty = penalty
			bestPattern = i
		}
	}
	return bestPattern
}

func toBitMatrix(matrix *ByteMatrix) *bitutil.BitMatrix {
	bm := bitutil.NewBitMatrixWithSize(matrix.Width, matrix.Height)
	for y := 0; y < matrix.Height; y++ {
		for x := 0; x < matrix.Width; x++ {
			if matrix.Get(x, y) == 1 {
				bm.Set(x, y)
			}
		}
	}
	return bm
}

// buildMatrix builds the QR code matrix with all patterns and data.
func buildMatrix(dataBits *bitutil.BitArray, ecLevel decoder.ErrorCorrectionLevel,
	version *decoder.Version, maskPattern int, matrix *ByteMatrix) {

	matrix.Clear(0xFF) // empty marker

	embedBasicPatterns(version, matrix)
	embedTypeInfo(ecLevel, maskPattern, matrix)
	maybeEmbedVersionInfo(version, matrix)
	embedDataBits(dataBits, maskPattern, matrix)
}

// Position detection pattern (7x7 finder pattern)
var positionDetectionPattern = [7][7]byte{
	{1, 1, 1, 1, 1, 1, 1},
	{1, 0, 0, 0, 0, 0, 1},
	{1, 0, 1, 1, 1, 0, 1},
	{1, 0, 1, 1, 1, 0, 1},
	{1, 0, 1, 1, 1, 0, 1},
	{1, 0, 0, 0, 0, 0, 1},
	{1, 1, 1, 1, 1, 1, 1},
}

// Position adjustment pattern (5x5 alignment pattern)
var positionAdjustmentPattern = [5][5]byte{
	{1, 1, 1, 1, 1},
	{1, 0, 0, 0, 1},
	{1, 0, 1, 0, 1},
	{1, 0, 0, 0, 1},
	{1, 1, 1, 1, 1},
}

func embedBasicPatterns(version *decoder.Version, matrix *ByteMatrix) {
	embedPositionDetectionPattern(0, 0, matrix)
	embedPositionDetectionPattern(matrix.Width-7, 0, matrix)
	embedPositionDetectionPattern(0, matrix.Height-7, matrix)

	embedHorizontalSeparator(0, 7, matrix)
	embedHorizontalSeparator(matrix.Width-8, 7, matrix)
	embedHorizontalSeparator(0, matrix.Height-8, matrix)

	embedVerticalSeparator(7, 0, matrix)
	embedVerticalSeparator(matrix.Width-8, 0, matrix)
	embedVerticalSeparator(7, matrix.Height-7, matrix)

	if version.Number >= 2 {
		embedPositionAdjustmentPatterns(version, matrix)
	}

	embedTimingPatterns(matrix)

	matrix.Set(8, matrix.Height-8, 1)
}

func embedPositionDetectionPattern(xStart, yStart int, matrix *ByteMatrix) {
	for y := 0; y < 7; y++ {
		for x := 0; x < 7; x++ {
			matrix.Set(xStart+x, yStart+y, positionDetectionPattern[y][x])
		}
	}
}

func embedHorizontalSeparator(xStart, yStart int, matrix *ByteMatrix) {
	for x := 0; x < 8; x++ {
		if xStart+x < matrix.Width {
			matrix.Set(xStart+x, yStart, 0)
		}
	}
}

func embedVerticalSeparator(xStart, yStart int, matrix *ByteMatrix) {
	for y := 0; y < 7; y++ {
		if yStart+y < matrix.Height {
			matrix.Set(xStart, yStart+y, 0)
		}
	}
}

func embedPositionAdjustmentPatterns(version *decoder.Version, matrix *ByteMatrix) {
	centers := version.AlignmentPatternCenters
	for _, cy := range centers {
		for _, cx := range centers {
			if matrix.Get(cx, cy) != 0xFF {
				continue
			}
			for y := 0; y < 5; y++ {
				for x := 0; x < 5; x++ {
					matrix.Set(cx-2+x, cy-2+y, positionAdjustmentPattern[y][x])
				}
			}
		}
	}
}

func embedTimingPatterns(matrix *ByteMatrix) {
	for i := 8; i < matrix.Width-8; i++ {
		bit := byte((i + 1) % 2)
		if matrix.Get(i, 6) == 0xFF {
			matrix.Set(i, 6, bit)
		}
		if matrix.Get(6, i) == 0xFF {
			matrix.Set(6, i, bit)
		}
	}
}

const (
	typeInfoPoly        = 0x537
	typeInfoMaskPattern = 0x5412
	versionInfoPoly     = 0x1f25
)

func embedTypeInfo(ecLevel decoder.ErrorCorrectionLevel, maskPattern int, matrix *ByteMatrix) {
	typeInfo := (ecLevel.Bits() << 3) | maskPattern
	bchCode := calculateBCHCode(typeInfo, typeInfoPoly)
	typeInfoBits := (typeInfo << 10) | bchCode
	typeInfoBits ^= typeInfoMaskPattern

	typeInfoCoordinates := [][2]int{
		{8, 0}, {8, 1}, {8, 2}, {8, 3}, {8, 4}, {8, 5}, {8, 7}, {8, 8},
		{7, 8}, {5, 8}, {4, 8}, {3, 8}, {2, 8}, {1, 8}, {0, 8},
	}

	for i := 0; i < 15; i++ {
		bit := byte((typeInfoBits >> uint(i)) & 1)
		coord := typeInfoCoordinates[i]
		matrix.Set(coord[0], coord[1], bit)

		if i < 8 {
			matrix.Set(matrix.Width-1-i, 8, bit)
		} else {
			matrix.Set(8, matrix.Height-7+(i-8), bit)
		}
	}
}

func maybeEmbedVersionInfo(version *decoder.Version, matrix *ByteMatrix) {
	if version.Number < 7 {
		return
	}
	versionInfoBits := calculateBCHCode(version.Number, versionInfoPoly)
	versionInfoBits = (version.Number << 12) | versionInfoBits

	bitIndex := 0
	for i := 0; i < 6; i++ {
		for j := 0; j < 3; j++ {
			bit := byte((versionInfoBits >> uint(bitIndex)) & 1)
			bitIndex++
			matrix.Set(i, matrix.Height-11+j, bit)
			matrix.Set(matrix.Width-11+j, i, bit)
		}
	}
}

func embedDataBits(dataBits *bitutil.BitArray, maskPattern int, matrix *ByteMatrix) {
	bitIndex := 0
	dimension := matrix.Height

	for j := dimension - 1; j > 0; j -= 2 {
		if j == 6 {
			j-- // skip timing column
		}
		for count := 0; count < dimension; count++ {
			upward := (((dimension - 1 - j) / 2) & 1) == 0
			i := count
			if upward {
				i = dimension - 1 - count
			}
			for col := 0; col < 2; col++ {
				x := j - col
				if matrix.Get(x, i) == 0xFF { // empty cell
					var bit bool
					if bitIndex < dataBits.Size() {
						bit = dataBits.Get(bitIndex)
						bitIndex++
					}
					if decoder.DataMasks[maskPattern](i, x) {
						bit = !bit
					}
					if bit {
						matrix.Set(x, i, 1)
					} else {
						matrix.Set(x, i, 0)
					}
				}
			}
		}
	}
}

func calculateBCHCode(value, poly int) int {
	msbSetInPoly := findMSBSet(poly)
	value <<= uint(msbSetInPoly - 1)
	for findMSBSet(value) >= msbSetInPoly {
		value ^= poly << uint(findMSBSet(value)-msbSetInPoly)
	}
	return value
}

func findMSBSet(value int) int {
	count := 0
	for value != 0 {
		value >>= 1
		count++
	}
	return count
}

// ToBitMatrix converts a QRCode's ByteMatrix to a BitMatrix.
func (qr *QRCode) ToBitMatrix() *bitutil.BitMatrix {
	return toBitMatrix(qr.Matrix)
}

// String returns a visual representation of the QR code, for debugging.
func (qr *QRCode) String() string {
	var sb strings.Builder
	for y := 0; y < qr.Matrix.Height; y++ {
		for x := 0; x < qr.Matrix.Width; x++ {
			switch qr.Matrix.Get(x, y) {
			case 1:
				sb.WriteString("##")
			default:
				sb.WriteString("  ")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
