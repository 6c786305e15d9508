package reedsolomon

import "testing"

func TestEncodeDecodeQR(t *testing.T) {
	dataSize := 10
	ecSize := 7
	toEncode := make([]int, dataSize+ecSize)
	for i := 0; i < dataSize; i++ {
		toEncode[i] = i + 1
	}

	enc := NewEncoder()
	enc.Encode(toEncode, ecSize)

	for i := 0; i < dataSize; i++ {
		if toEncode[i] != i+1 {
			t.Errorf("data[%d] = %d, want %d", i, toEncode[i], i+1)
		}
	}

	received := make([]int, len(toEncode))
	copy(received, toEncode)
	received[0] = 0
	received[3] = 200
	received[6] = 100

	dec := NewDecoder()
	corrected, err := dec.Decode(received, ecSize)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if corrected != 3 {
		t.Errorf("corrected = %d, want 3", corrected)
	}

	for i := 0; i < dataSize; i++ {
		if received[i] != toEncode[i] {
			t.Errorf("after correction, data[%d] = %d, want %d", i, received[i], toEncode[i])
		}
	}
}

func TestDecodeNoErrors(t *testing.T) {
	dataSize := 5
	ecSize := 4
	toEncode := make([]int, dataSize+ecSize)
	for i := 0; i < dataSize; i++ {
		toEncode[i] = (i + 1) * 10
	}

	enc := NewEncoder()
	enc.Encode(toEncode, ecSize)

	dec := NewDecoder()
	corrected, err := dec.Decode(toEncode, ecSize)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if corrected != 0 {
		t.Errorf("corrected = %d, want 0 (no errors)", corrected)
	}
}

func TestDecodeTooManyErrors(t *testing.T) {
	dataSize := 5
	ecSize := 4
	toEncode := make([]int, dataSize+ecSize)
	for i := 0; i < dataSize; i++ {
		toEncode[i] = (i + 1) * 10
	}

	enc := NewEncoder()
	enc.Encode(toEncode, ecSize)

	received := make([]int, len(toEncode))
	copy(received, toEncode)
	received[0] = 0
	received[1] = 0
	received[2] = 0 // 3 errors, ecSize/2 = 2

	dec := NewDecoder()
	if _, err := dec.Decode(received, ecSize); err == nil {
		t.Error("expected error for too many errors")
	}
}

// TestFieldRoundTrip exercises the QR field's fixed exp/log/inverse tables
// directly, without going through polynomial encode/decode.
func TestFieldRoundTrip(t *testing.T) {
	for a := 1; a < fieldSize; a++ {
		inv := inverse(a)
		if multiply(a, inv) != 1 {
			t.Errorf("a=%d: a*inverse(a) = %d, want 1", a, multiply(a, inv))
		}
		if exp(log(a)) != a {
			t.Errorf("a=%d: exp(log(a)) = %d, want %d", a, exp(log(a)), a)
		}
	}

	if addOrSubtract(42, 42) != 0 {
		t.Error("a XOR a should be 0")
	}
	if multiply(0, 100) != 0 || multiply(100, 0) != 0 {
		t.Error("multiply by 0 should be 0")
	}
}

func TestGFPoly(t *testing.T) {
	if !zeroPoly.IsZero() {
		t.Error("zeroPoly should be zero")
	}
	if onePoly.IsZero() {
		t.Error("onePoly should not be zero")
	}
	if onePoly.Degree() != 0 {
		t.Errorf("onePoly degree = %d, want 0", onePoly.Degree())
	}

	// p(x) = 2x + 3
	p := newGFPoly([]int{2, 3})
	if p.EvaluateAt(0) != 3 {
		t.Errorf("p(0) = %d, want 3", p.EvaluateAt(0))
	}

	if doubled := p.MultiplyScalar(1); doubled != p {
		t.Error("multiply by 1 should return same polynomial")
	}
}

func TestBuildMonomial(t *testing.T) {
	m := buildMonomial(3, 5)
	if m.Degree() != 3 {
		t.Errorf("degree = %d, want 3", m.Degree())
	}
	if m.GetCoefficient(3) != 5 {
		t.Errorf("coefficient = %d, want 5", m.GetCoefficient(3))
	}
	if got := buildMonomial(2, 0); got != zeroPoly {
		t.Error("zero coefficient monomial should be zeroPoly")
	}
}
