// Package reedsolomon implements the Reed-Solomon error correction used by
// QR codewords: GF(2^8) arithmetic under the field's primitive polynomial
// x^8 + x^4 + x^3 + x^2 + 1, generator base 0. QR is the only symbology
// this module reads or writes, so the field is fixed rather than a
// caller-selectable parameter the way a multi-symbology reader would need.
package reedsolomon

const (
	fieldSize     = 256
	primitive     = 0x011D // x^8 + x^4 + x^3 + x^2 + 1
	generatorBase = 0
)

var (
	expTable [fieldSize]int
	logTable [fieldSize]int
	zeroPoly *gfPoly
	onePoly  *gfPoly
)

func init() {
	x := 1
	for i := 0; i < fieldSize; i++ {
		expTable[i] = x
		x *= 2
		if x >= fieldSize {
			x ^= primitive
			x &= fieldSize - 1
		}
	}
	for i := 0; i < fieldSize-1; i++ {
		logTable[expTable[i]] = i
	}
	zeroPoly = newGFPoly([]int{0})
	onePoly = newGFPoly([]int{1})
}

// addOrSubtract computes a XOR b (addition and subtraction are the same in GF(2^n)).
func addOrSubtract(a, b int) int {
	return a ^ b
}

// exp returns 2^a in the field.
func exp(a int) int {
	return expTable[a]
}

// log returns log2(a) in the field.
func log(a int) int {
	if a == 0 {
		panic("reedsolomon: log(0)")
	}
	return logTable[a]
}

// inverse returns the multiplicative inverse of a.
func inverse(a int) int {
	if a == 0 {
		panic("reedsolomon: inverse(0)")
	}
	return expTable[fieldSize-logTable[a]-1]
}

// multiply returns a * b in the field.
func multiply(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	return expTable[(logTable[a]+logTable[b])%(fieldSize-1)]
}

// buildMonomial returns coefficient * x^degree.
func buildMonomial(degree, coefficient int) *gfPoly {
	if degree < 0 {
		panic("reedsolomon: negative degree")
	}
	if coefficient == 0 {
		return zeroPoly
	}
	coefficients := make([]int, degree+1)
	coefficients[0] = coefficient
	return newGFPoly(coefficients)
}
