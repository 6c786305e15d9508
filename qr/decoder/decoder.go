package decoder

import (
	"github.com/ericlevine/qrcore/bitutil"
	"github.com/ericlevine/qrcore/reedsolomon"
)

// Result holds everything recovered from a sampled symbol: the decoded
// text plus the metadata a caller needs to grade the read.
type Result struct {
	Text             string
	Version          *Version
	ECLevel          ErrorCorrectionLevel
	Mask             int
	ErrorsCorrected  int
	PerBlockErrors   []int
	FormatInfoAgreed bool
}

// Decoder decodes QR codes from an already-sampled BitMatrix.
type Decoder struct {
	rsDecoder *reedsolomon.Decoder
}

// NewDecoder creates a new QR code Decoder.
func NewDecoder() *Decoder {
	return &Decoder{
		rsDecoder: reedsolomon.NewDecoder(),
	}
}

// Decode decodes a BitMatrix into a Result. If the direct reading fails,
// it retries once against the transposed matrix, since some samplers hand
// back symbols mirrored across their main diagonal.
func (d *Decoder) Decode(bits *bitutil.BitMatrix) (*Result, error) {
	parser, err := NewBitMatrixParser(bits)
	if err != nil {
		return nil, err
	}

	result, err := d.decodeParser(parser)
	if err == nil {
		return result, nil
	}

	parser.Remask()
	parser.SetMirror(true)

	if _, verr := parser.ReadVersion(); verr != nil {
		return nil, err
	}
	if _, ferr := parser.ReadFormatInformation(); ferr != nil {
		return nil, err
	}

	parser.Mirror()

	result, err2 := d.decodeParser(parser)
	if err2 != nil {
		return nil, err
	}
	return result, nil
}

func (d *Decoder) decodeParser(parser *BitMatrixParser) (*Result, error) {
	version, err := parser.ReadVersion()
	if err != nil {
		return nil, err
	}
	formatInfo, err := parser.ReadFormatInformation()
	if err != nil {
		return nil, err
	}
	ecLevel := formatInfo.ECLevel

	codewords, err := parser.ReadCodewords()
	if err != nil {
		return nil, err
	}

	dataBlocks := GetDataBlocks(codewords, version, ecLevel)

	totalBytes := 0
	for _, db := range dataBlocks {
		totalBytes += db.NumDataCodewords
	}
	resultBytes := make([]byte, totalBytes)
	resultOffset := 0

	perBlockErrors := make([]int, len(dataBlocks))
	errorsCorrected := 0
	for i, db := range dataBlocks {
		corrected, err := d.correctErrors(db.Codewords, db.NumDataCodewords)
		if err != nil {
			return nil, err
		}
		perBlockErrors[i] = corrected
		errorsCorrected += corrected
		copy(resultBytes[resultOffset:], db.Codewords[:db.NumDataCodewords])
		resultOffset += db.NumDataCodewords
	}

	text, err := DecodeBitStream(resultBytes, version)
	if err != nil {
		return nil, err
	}

	return &Result{
		Text:             text,
		Version:          version,
		ECLevel:          ecLevel,
		Mask:             int(formatInfo.DataMask),
		ErrorsCorrected:  errorsCorrected,
		PerBlockErrors:   perBlockErrors,
		FormatInfoAgreed: parser.FormatInfoAgreed(),
	}, nil
}

func (d *Decoder) correctErrors(codewordBytes []byte, numDataCodewords int) (int, error) {
	numCodewords := len(codewordBytes)
	codewordsInts := make([]int, numCodewords)
	for i := 0; i < numCodewords; i++ {
		codewordsInts[i] = int(codewordBytes[i]) & 0xFF
	}
	corrected, err := d.rsDecoder.Decode(codewordsInts, numCodewords-numDataCodewords)
	if err != nil {
		return 0, ErrUncorrectable
	}
	for i := 0; i < numDataCodewords; i++ {
		codewordBytes[i] = byte(codewordsInts[i])
	}
	return corrected, nil
}
