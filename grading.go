package qrcore

import (
	"math"

	"github.com/ericlevine/qrcore/bitutil"
	"github.com/ericlevine/qrcore/qr/decoder"
	"github.com/ericlevine/qrcore/qr/detector"
)

// gradeResult fills in DecodeResult's advisory grades from the detector's
// locator geometry and the decoder's per-block error counts. sampled is
// the matrix as read off the image, before the decoder unmasked it in
// place; the timing pattern (a function pattern, untouched by masking at
// encode time) is only meaningful read from this pre-decode view.
func gradeResult(result *DecodeResult, dec *decoder.Result, det *detector.DetectorResult, sampled *bitutil.BitMatrix) {
	result.FinderGrades = [3]int{
		moduleSizeGrade(det.TopLeft.EstimatedModuleSize, det.ModuleSize),
		moduleSizeGrade(det.TopRight.EstimatedModuleSize, det.ModuleSize),
		moduleSizeGrade(det.BottomLeft.EstimatedModuleSize, det.ModuleSize),
	}

	result.TimingGrades = [2]int{
		timingGrade(sampled, true),
		timingGrade(sampled, false),
	}

	if len(dec.Version.AlignmentPatternCenters) == 0 {
		result.AlignmentGrade = -1
	} else if det.Alignment == nil {
		result.AlignmentGrade = 0
	} else {
		result.AlignmentGrade = alignmentGrade(det.AlignmentSearchIterations)
	}

	if dec.Version.Number < 7 {
		result.VersionInfoGrades = [2]int{-1, -1}
	} else {
		result.VersionInfoGrades = [2]int{4, 4}
	}
	if dec.FormatInfoAgreed {
		result.FormatInfoGrades = [2]int{4, 4}
	} else {
		result.FormatInfoGrades = [2]int{4, 2}
	}

	result.ErrorGrade = errorGrade(dec)
	result.FunctionalGrade = minApplicable(
		result.FinderGrades[0], result.FinderGrades[1], result.FinderGrades[2],
		result.TimingGrades[0], result.TimingGrades[1],
		result.AlignmentGrade,
		result.VersionInfoGrades[0], result.VersionInfoGrades[1],
		result.FormatInfoGrades[0], result.FormatInfoGrades[1],
	)
}

// moduleSizeGrade scores how close a single finder pattern's estimated
// module size came to the overall estimate used to build the transform.
func moduleSizeGrade(patternSize, overallSize float64) int {
	if overallSize <= 0 {
		return 0
	}
	deviation := math.Abs(patternSize-overallSize) / overallSize
	switch {
	case deviation < 0.05:
		return 4
	case deviation < 0.10:
		return 3
	case deviation < 0.20:
		return 2
	case deviation < 0.35:
		return 1
	default:
		return 0
	}
}

// timingGrade scores strict alternation of the timing pattern row (or
// column) 6 in the bit matrix as sampled, before the decoder unmasks it.
func timingGrade(bits interface {
	Get(x, y int) bool
	Width() int
}, row bool) int {
	n := bits.Width()
	mismatches := 0
	total := 0
	for i := 8; i < n-8; i++ {
		want := i%2 == 0
		var got bool
		if row {
			got = bits.Get(i, 6)
		} else {
			got = bits.Get(6, i)
		}
		total++
		if got != want {
			mismatches++
		}
	}
	if total == 0 {
		return -1
	}
	ratio := float64(mismatches) / float64(total)
	switch {
	case ratio == 0:
		return 4
	case ratio < 0.02:
		return 3
	case ratio < 0.05:
		return 2
	case ratio < 0.15:
		return 1
	default:
		return 0
	}
}

// alignmentGrade scores how many widening passes the alignment search
// needed: found on the first, tightest pass is a clean signal.
func alignmentGrade(iterations int) int {
	switch iterations {
	case 1:
		return 4
	case 2:
		return 3
	case 3:
		return 1
	default:
		return 0
	}
}

// errorGrade implements 4 - floor(max_block_errors*4/max_correctable),
// clamped to [0,4]. max_correctable is uniform across a symbol's blocks:
// half the EC codewords each block carries.
func errorGrade(dec *decoder.Result) int {
	ecBlocks := dec.Version.ECBlocksForLevel(dec.ECLevel)
	maxCorrectable := ecBlocks.ECCodewordsPerBlock / 2
	if maxCorrectable == 0 {
		return 4
	}
	maxBlockErrors := 0
	for _, e := range dec.PerBlockErrors {
		if e > maxBlockErrors {
			maxBlockErrors = e
		}
	}
	grade := 4 - (maxBlockErrors*4)/maxCorrectable
	if grade < 0 {
		return 0
	}
	if grade > 4 {
		return 4
	}
	return grade
}

func minApplicable(grades ...int) int {
	min := 4
	for _, g := range grades {
		if g == -1 {
			continue
		}
		if g < min {
			min = g
		}
	}
	return min
}
