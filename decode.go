package qrcore

import (
	"errors"
	"fmt"
	"image"

	"github.com/ericlevine/qrcore/binarizer"
	"github.com/ericlevine/qrcore/qr/decoder"
	"github.com/ericlevine/qrcore/qr/detector"
	"github.com/ericlevine/qrcore/transform"
)

// Decode locates a single QR symbol in an RGBA pixel buffer, samples it,
// and decodes the recovered text. sink may be nil, in which case
// diagnostic events are discarded.
func Decode(pixels []byte, w, h int, sink Sink) (*DecodeResult, error) {
	return decodeSource(NewRGBALuminanceSource(pixels, w, h), 0, sink)
}

// DecodeRegion is like Decode but restricts the finder scan to the
// rectangle [x0,x1)x[y0,y1) and, if maxVersion > 0, rejects any symbol
// whose version estimate exceeds it. The check runs after the symbol has
// been located and sampled, before it is decoded.
func DecodeRegion(pixels []byte, w, h, x0, x1, y0, y1, maxVersion int, sink Sink) (*DecodeResult, error) {
	if x0 < 0 || y0 < 0 || x1 > w || y1 > h || x0 >= x1 || y0 >= y1 {
		return nil, fmt.Errorf("qrcore: invalid region [%d,%d)x[%d,%d): %w", x0, x1, y0, y1, ErrInvalidInput)
	}
	source := NewRGBALuminanceSource(pixels, w, h)
	return decodeSource(cropLuminance(source, x0, x1, y0, y1), maxVersion, sink)
}

// maxDecodeImageDim bounds the longer side of an image.Image before
// DecodeImage samples it. A camera frame or scanned page routinely arrives
// far larger than any plausible symbol needs to be read reliably; scanning
// it at full resolution costs detector time proportional to its area for
// no gain once modules are comfortably above the sampler's minimum size.
const maxDecodeImageDim = 1600

// DecodeImage is like Decode, but for callers that already hold a decoded
// image.Image rather than a raw RGBA pixel buffer. Oversized images are
// downsampled first; see maxDecodeImageDim.
func DecodeImage(img image.Image, sink Sink) (*DecodeResult, error) {
	return decodeSource(NewScaledImageLuminanceSource(img, maxDecodeImageDim), 0, sink)
}

func decodeSource(regionSource LuminanceSource, maxVersion int, sink Sink) (*DecodeResult, error) {
	sink = sinkOrNoop(sink)

	var bin Binarizer = binarizer.NewHybrid(regionSource)
	bm, err := bin.BlackMatrix()
	if err != nil {
		return nil, fmt.Errorf("qrcore: %w", ErrSamplingFailed)
	}

	det := detector.NewDetector(bm)
	detResult, err := det.Detect(false)
	if err != nil {
		if errors.Is(err, transform.ErrNotFound) {
			return nil, fmt.Errorf("qrcore: %w", ErrSamplingFailed)
		}
		return nil, fmt.Errorf("qrcore: %w", ErrFinderNotFound)
	}

	if maxVersion > 0 {
		if v, verr := decoder.GetProvisionalVersionForDimension(detResult.Dimension); verr == nil && v.Number > maxVersion {
			return nil, fmt.Errorf("qrcore: symbol version %d exceeds max %d: %w", v.Number, maxVersion, ErrSamplingFailed)
		}
	}

	sink.Note(FinderFound{X: detResult.TopLeft.X, Y: detResult.TopLeft.Y, ModuleSize: detResult.ModuleSize})
	if detResult.AlignmentSearchIterations > 1 {
		sink.Warn(AlignmentSearchWidened{Radius: detResult.AlignmentSearchRadius})
	}

	// Snapshot the sampled matrix before decoding unmasks it in place.
	// UnmaskBitMatrix flips every cell the mask formula touches, function
	// patterns included, so the timing pattern is only readable from this
	// pre-decode copy; MaskChosen's penalty is likewise scored against the
	// matrix as sampled, the same view the symbol's own encoder scored
	// when it picked this mask.
	sampled := detResult.Bits.Clone()
	sampledPenalty := decoder.MaskPenalty(sampled)

	dec := decoder.NewDecoder()
	decResult, err := dec.Decode(detResult.Bits)
	if err != nil {
		return nil, classifyDecodeError(err)
	}
	sink.Note(MaskChosen{Index: decResult.Mask, Penalty: sampledPenalty})
	if !decResult.FormatInfoAgreed {
		sink.Warn(FormatInfoFailed{Location: "top-left vs top-right/bottom-left"})
	}

	for i, blockErrors := range decResult.PerBlockErrors {
		if blockErrors > 0 {
			sink.Warn(BlockCorrected{BlockIndex: i, ErrorCount: blockErrors})
		}
	}

	result := &DecodeResult{
		Text:            decResult.Text,
		Version:         decResult.Version.Number,
		ECLevel:         ecLevelFromDecoder(decResult.ECLevel),
		Mask:            decResult.Mask,
		ErrorsCorrected: decResult.ErrorsCorrected,
		PerBlockErrors:  decResult.PerBlockErrors,
	}
	gradeResult(result, decResult, detResult, sampled)
	return result, nil
}

func classifyDecodeError(err error) error {
	switch {
	case errors.Is(err, decoder.ErrUncorrectable):
		return fmt.Errorf("qrcore: %w", ErrUncorrectable)
	case errors.Is(err, decoder.ErrFormatInfoUnreadable):
		return fmt.Errorf("qrcore: %w", ErrFormatInfoUnreadable)
	case errors.Is(err, decoder.ErrVersionInfoUnreadable):
		return fmt.Errorf("qrcore: %w", ErrVersionInfoUnreadable)
	default:
		return fmt.Errorf("qrcore: %w", ErrDecodingMismatch)
	}
}
