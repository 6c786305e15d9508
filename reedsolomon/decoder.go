package reedsolomon

import "errors"

// ErrReedSolomon indicates a Reed-Solomon decoding failure: more errors in
// a block than its parity codewords can locate and correct.
var ErrReedSolomon = errors.New("reedsolomon: decoding error")

// Decoder performs Reed-Solomon error correction decoding over the QR field.
type Decoder struct{}

// NewDecoder creates a new Decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode corrects errors in received in-place and returns the number of
// errors corrected. twoS is the number of error-correction codewords.
func (d *Decoder) Decode(received []int, twoS int) (int, error) {
	poly := newGFPoly(received)
	syndromeCoefficients := make([]int, twoS)
	noError := true
	for i := 0; i < twoS; i++ {
		eval := poly.EvaluateAt(exp(i + generatorBase))
		syndromeCoefficients[twoS-1-i] = eval
		if eval != 0 {
			noError = false
		}
	}
	if noError {
		return 0, nil
	}

	syndrome := newGFPoly(syndromeCoefficients)
	sigmaOmega, err := d.runEuclideanAlgorithm(buildMonomial(twoS, 1), syndrome, twoS)
	if err != nil {
		return 0, err
	}
	sigma := sigmaOmega[0]
	omega := sigmaOmega[1]
	errorLocations, err := d.findErrorLocations(sigma)
	if err != nil {
		return 0, err
	}
	errorMagnitudes := d.findErrorMagnitudes(omega, errorLocations)
	for i := 0; i < len(errorLocations); i++ {
		position := len(received) - 1 - log(errorLocations[i])
		if position < 0 {
			return 0, ErrReedSolomon
		}
		received[position] = addOrSubtract(received[position], errorMagnitudes[i])
	}
	// A correction that leaves any syndrome nonzero did not produce a codeword.
	corrected := newGFPoly(received)
	for i := 0; i < twoS; i++ {
		if corrected.EvaluateAt(exp(i+generatorBase)) != 0 {
			return 0, ErrReedSolomon
		}
	}
	return len(errorLocations), nil
}

func (d *Decoder) runEuclideanAlgorithm(a, b *gfPoly, R int) ([2]*gfPoly, error) {
	if a.Degree() < b.Degree() {
		a, b = b, a
	}

	rLast := a
	r := b
	tLast := zeroPoly
	t := onePoly

	for 2*r.Degree() >= R {
		rLastLast := rLast
		tLastLast := tLast
		rLast = r
		tLast = t

		if rLast.IsZero() {
			return [2]*gfPoly{}, ErrReedSolomon
		}
		r = rLastLast
		q := zeroPoly
		denominatorLeadingTerm := rLast.GetCoefficient(rLast.Degree())
		dltInverse := inverse(denominatorLeadingTerm)
		for r.Degree() >= rLast.Degree() && !r.IsZero() {
			degreeDiff := r.Degree() - rLast.Degree()
			scale := multiply(r.GetCoefficient(r.Degree()), dltInverse)
			q = q.AddOrSubtractPoly(buildMonomial(degreeDiff, scale))
			r = r.AddOrSubtractPoly(rLast.MultiplyByMonomial(degreeDiff, scale))
		}

		t = q.MultiplyPoly(tLast).AddOrSubtractPoly(tLastLast)

		if r.Degree() >= rLast.Degree() {
			return [2]*gfPoly{}, ErrReedSolomon
		}
	}

	sigmaTildeAtZero := t.GetCoefficient(0)
	if sigmaTildeAtZero == 0 {
		return [2]*gfPoly{}, ErrReedSolomon
	}

	inv := inverse(sigmaTildeAtZero)
	sigma := t.MultiplyScalar(inv)
	omega := r.MultiplyScalar(inv)
	return [2]*gfPoly{sigma, omega}, nil
}

func (d *Decoder) findErrorLocations(errorLocator *gfPoly) ([]int, error) {
	numErrors := errorLocator.Degree()
	if numErrors == 1 {
		return []int{errorLocator.GetCoefficient(1)}, nil
	}
	result := make([]int, 0, numErrors)
	for i := 1; i < fieldSize && len(result) < numErrors; i++ {
		if errorLocator.EvaluateAt(i) == 0 {
			result = append(result, inverse(i))
		}
	}
	if len(result) != numErrors {
		return nil, ErrReedSolomon
	}
	return result, nil
}

func (d *Decoder) findErrorMagnitudes(errorEvaluator *gfPoly, errorLocations []int) []int {
	s := len(errorLocations)
	result := make([]int, s)
	for i := 0; i < s; i++ {
		xiInverse := inverse(errorLocations[i])
		denominator := 1
		for j := 0; j < s; j++ {
			if i != j {
				term := multiply(errorLocations[j], xiInverse)
				termPlus1 := term | 1
				if term&1 != 0 {
					termPlus1 = term &^ 1
				}
				denominator = multiply(denominator, termPlus1)
			}
		}
		result[i] = multiply(errorEvaluator.EvaluateAt(xiInverse), inverse(denominator))
		if generatorBase != 0 {
			result[i] = multiply(result[i], xiInverse)
		}
	}
	return result
}
