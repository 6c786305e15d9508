package reedsolomon

// gfPoly represents a polynomial over the QR Reed-Solomon field. Instances
// are immutable. Coefficients are ordered from highest-degree to
// lowest-degree.
type gfPoly struct {
	coefficients []int
}

func newGFPoly(coefficients []int) *gfPoly {
	if len(coefficients) == 0 {
		panic("reedsolomon: empty coefficients")
	}
	if len(coefficients) > 1 && coefficients[0] == 0 {
		firstNonZero := 1
		for firstNonZero < len(coefficients) && coefficients[firstNonZero] == 0 {
			firstNonZero++
		}
		if firstNonZero == len(coefficients) {
			coefficients = []int{0}
		} else {
			newCoeff := make([]int, len(coefficients)-firstNonZero)
			copy(newCoeff, coefficients[firstNonZero:])
			coefficients = newCoeff
		}
	}
	return &gfPoly{coefficients: coefficients}
}

// Coefficients returns the polynomial coefficients.
func (p *gfPoly) Coefficients() []int {
	return p.coefficients
}

// Degree returns the degree of this polynomial.
func (p *gfPoly) Degree() int {
	return len(p.coefficients) - 1
}

// IsZero returns true if this is the zero polynomial.
func (p *gfPoly) IsZero() bool {
	return p.coefficients[0] == 0
}

// GetCoefficient returns the coefficient of x^degree.
func (p *gfPoly) GetCoefficient(degree int) int {
	return p.coefficients[len(p.coefficients)-1-degree]
}

// EvaluateAt evaluates this polynomial at a.
func (p *gfPoly) EvaluateAt(a int) int {
	if a == 0 {
		return p.GetCoefficient(0)
	}
	if a == 1 {
		result := 0
		for _, c := range p.coefficients {
			result = addOrSubtract(result, c)
		}
		return result
	}
	result := p.coefficients[0]
	for i := 1; i < len(p.coefficients); i++ {
		result = addOrSubtract(multiply(a, result), p.coefficients[i])
	}
	return result
}

// AddOrSubtractPoly adds (or subtracts) another polynomial.
func (p *gfPoly) AddOrSubtractPoly(other *gfPoly) *gfPoly {
	if p.IsZero() {
		return other
	}
	if other.IsZero() {
		return p
	}

	smallerCoeff := p.coefficients
	largerCoeff := other.coefficients
	if len(smallerCoeff) > len(largerCoeff) {
		smallerCoeff, largerCoeff = largerCoeff, smallerCoeff
	}

	sumDiff := make([]int, len(largerCoeff))
	lengthDiff := len(largerCoeff) - len(smallerCoeff)
	copy(sumDiff, largerCoeff[:lengthDiff])

	for i := lengthDiff; i < len(largerCoeff); i++ {
		sumDiff[i] = addOrSubtract(smallerCoeff[i-lengthDiff], largerCoeff[i])
	}

	return newGFPoly(sumDiff)
}

// MultiplyPoly multiplies by another polynomial.
func (p *gfPoly) MultiplyPoly(other *gfPoly) *gfPoly {
	if p.IsZero() || other.IsZero() {
		return zeroPoly
	}
	aCoeff := p.coefficients
	bCoeff := other.coefficients
	product := make([]int, len(aCoeff)+len(bCoeff)-1)
	for i, ac := range aCoeff {
		for j, bc := range bCoeff {
			product[i+j] = addOrSubtract(product[i+j], multiply(ac, bc))
		}
	}
	return newGFPoly(product)
}

// MultiplyScalar multiplies by a scalar.
func (p *gfPoly) MultiplyScalar(scalar int) *gfPoly {
	if scalar == 0 {
		return zeroPoly
	}
	if scalar == 1 {
		return p
	}
	product := make([]int, len(p.coefficients))
	for i, c := range p.coefficients {
		product[i] = multiply(c, scalar)
	}
	return newGFPoly(product)
}

// MultiplyByMonomial multiplies by coefficient * x^degree.
func (p *gfPoly) MultiplyByMonomial(degree, coefficient int) *gfPoly {
	if degree < 0 {
		panic("reedsolomon: negative degree")
	}
	if coefficient == 0 {
		return zeroPoly
	}
	product := make([]int, len(p.coefficients)+degree)
	for i, c := range p.coefficients {
		product[i] = multiply(c, coefficient)
	}
	return newGFPoly(product)
}

// Divide divides by another polynomial, returning [quotient, remainder].
func (p *gfPoly) Divide(other *gfPoly) [2]*gfPoly {
	if other.IsZero() {
		panic("reedsolomon: divide by zero")
	}

	quotient := zeroPoly
	remainder := p

	denominatorLeadingTerm := other.GetCoefficient(other.Degree())
	inverseDLT := inverse(denominatorLeadingTerm)

	for remainder.Degree() >= other.Degree() && !remainder.IsZero() {
		degreeDiff := remainder.Degree() - other.Degree()
		scale := multiply(remainder.GetCoefficient(remainder.Degree()), inverseDLT)
		term := other.MultiplyByMonomial(degreeDiff, scale)
		iterQuot := buildMonomial(degreeDiff, scale)
		quotient = quotient.AddOrSubtractPoly(iterQuot)
		remainder = remainder.AddOrSubtractPoly(term)
	}

	return [2]*gfPoly{quotient, remainder}
}
