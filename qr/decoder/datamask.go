package decoder

import "github.com/ericlevine/qrcore/bitutil"

// DataMaskFunc reports whether the module at (row, col) should be flipped
// by this mask pattern.
type DataMaskFunc func(row, col int) bool

// DataMasks contains the 8 QR code data mask patterns, written from their
// literal standard formulas rather than algebraically-simplified forms, so
// there is no risk of a subtle transcription error hiding behind an
// equivalence argument.
var DataMasks = [8]DataMaskFunc{
	func(r, c int) bool { return (r+c)%2 == 0 },
	func(r, c int) bool { return r%2 == 0 },
	func(r, c int) bool { return c%3 == 0 },
	func(r, c int) bool { return (r+c)%3 == 0 },
	func(r, c int) bool { return (r/2+c/3)%2 == 0 },
	func(r, c int) bool { return (r*c)%2+(r*c)%3 == 0 },
	func(r, c int) bool { return ((r*c)%2+(r*c)%3)%2 == 0 },
	func(r, c int) bool { return ((r+c)%2+(r*c)%3)%2 == 0 },
}

// UnmaskBitMatrix applies data mask unmasking to a BitMatrix. It is its
// own inverse (XOR), so the same function serves masking during encode.
func UnmaskBitMatrix(bits *bitutil.BitMatrix, dimension int, maskIndex int) {
	mask := DataMasks[maskIndex]
	for i := 0; i < dimension; i++ {
		for j := 0; j < dimension; j++ {
			if mask(i, j) {
				bits.Flip(j, i)
			}
		}
	}
}

const (
	penaltyN1 = 3
	penaltyN2 = 3
	penaltyN3 = 40
	penaltyN4 = 10
)

// MaskPenalty scores a fully-populated (post-mask) symbol matrix against
// the four QR penalty rules and returns the sum.
func MaskPenalty(m *bitutil.BitMatrix) int {
	return penaltyRule1(m) + penaltyRule2(m) + penaltyRule3(m) + penaltyRule4(m)
}

// penaltyRule1 charges runs of >=5 same-color modules in any row or column.
func penaltyRule1(m *bitutil.BitMatrix) int {
	n := m.Width()
	total := 0
	total += runPenalty(n, func(i, j int) bool { return m.Get(j, i) })
	total += runPenalty(n, func(i, j int) bool { return m.Get(i, j) })
	return total
}

func runPenalty(n int, get func(i, j int) bool) int {
	total := 0
	for i := 0; i < n; i++ {
		runLen := 1
		last := get(i, 0)
		for j := 1; j < n; j++ {
			v := get(i, j)
			if v == last {
				runLen++
				continue
			}
			if runLen >= 5 {
				total += penaltyN1 + (runLen - 5)
			}
			runLen = 1
			last = v
		}
		if runLen >= 5 {
			total += penaltyN1 + (runLen - 5)
		}
	}
	return total
}

// penaltyRule2 charges every 2x2 block of same-color modules.
func penaltyRule2(m *bitutil.BitMatrix) int {
	n := m.Width()
	total := 0
	for i := 0; i < n-1; i++ {
		for j := 0; j < n-1; j++ {
			v := m.Get(j, i)
			if v == m.Get(j+1, i) && v == m.Get(j, i+1) && v == m.Get(j+1, i+1) {
				total += penaltyN2
			}
		}
	}
	return total
}

// finderLikePattern is the 1:1:3:1:1 dark/light ratio (as a run of 7 cells:
// dark,light,dark*3,light,dark) preceded or followed by >=4 light modules.
var finderLikePattern = []bool{true, false, true, true, true, false, true}

// penaltyRule3 charges 1:1:3:1:1 finder-like patterns with a >=4-module
// light margin on either side, scanned along rows and columns.
func penaltyRule3(m *bitutil.BitMatrix) int {
	n := m.Width()
	total := 0
	total += finderPenaltyScan(n, func(i, j int) bool { return m.Get(j, i) })
	total += finderPenaltyScan(n, func(i, j int) bool { return m.Get(i, j) })
	return total
}

func finderPenaltyScan(n int, get func(i, j int) bool) int {
	total := 0
	patLen := len(finderLikePattern)
	for i := 0; i < n; i++ {
		for j := 0; j+patLen <= n; j++ {
			if !matchesAt(n, i, j, get) {
				continue
			}
			lightBefore := 0
			for k := j - 1; k >= 0 && !get(i, k); k-- {
				lightBefore++
			}
			lightAfter := 0
			for k := j + patLen; k < n && !get(i, k); k++ {
				lightAfter++
			}
			if lightBefore >= 4 || lightAfter >= 4 {
				total += penaltyN3
			}
		}
	}
	return total
}

func matchesAt(n, i, j int, get func(i, j int) bool) bool {
	for k, want := range finderLikePattern {
		if get(i, j+k) != want {
			return false
		}
	}
	return true
}

// penaltyRule4 charges deviation of the dark/light ratio from 50%, in
// steps of 5%, using truncating integer division throughout so the result
// matches the standard's floor-based convention exactly.
func penaltyRule4(m *bitutil.BitMatrix) int {
	n := m.Width()
	total := n * n
	dark := 0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if m.Get(j, i) {
				dark++
			}
		}
	}
	deviation := dark*2 - total
	if deviation < 0 {
		deviation = -deviation
	}
	return penaltyN4 * ((deviation * 10) / total)
}
