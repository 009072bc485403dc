package decoder

// Test-only Reed-Solomon encoding: builds a valid parity suffix for a data
// codeword sequence so the property tests below can corrupt a known-good
// codeword array and assert the decoder recovers it. This mirrors the
// generator-polynomial construction every PDF417 encoder uses, but exists
// solely to produce fixtures for TestErrorCorrection*; it is not part of
// the package's public surface.

import "testing"

func buildGenerator(field *ModulusGF, degree int) *ModulusPoly {
	generator := field.One()
	for i := 1; i <= degree; i++ {
		term := NewModulusPoly(field, []int{1, field.Subtract(0, field.Exp(i))})
		generator = generator.Multiply(term)
	}
	return generator
}

func polyRemainder(field *ModulusGF, a, b *ModulusPoly) *ModulusPoly {
	r := a
	for r.Degree() >= b.Degree() && !r.IsZero() {
		degreeDiff := r.Degree() - b.Degree()
		scale := field.Multiply(r.GetCoefficient(r.Degree()), field.Inverse(b.GetCoefficient(b.Degree())))
		r = r.Subtract(b.MultiplyByMonomial(degreeDiff, scale))
	}
	return r
}

// encodeWithParity appends numEC valid error-correction codewords to data.
func encodeWithParity(data []int, numEC int) []int {
	field := PDF417GF
	generator := buildGenerator(field, numEC)
	dataPoly := NewModulusPoly(field, append([]int{}, data...))
	shifted := dataPoly.MultiplyByMonomial(numEC, 1)
	remainder := polyRemainder(field, shifted, generator)

	parity := make([]int, numEC)
	rc := remainder.Coefficients()
	// rc holds the remainder's coefficients high-to-low, with leading zeros
	// stripped; right-align into a fixed-width numEC slice and negate.
	offset := numEC - len(rc)
	for i, c := range rc {
		parity[offset+i] = field.Subtract(0, c)
	}

	return append(append([]int{}, data...), parity...)
}

func TestErrorCorrectionNoErrors(t *testing.T) {
	data := []int{1, 100, 200, 300, 400, 500}
	codewords := encodeWithParity(data, 8)

	ec := NewErrorCorrection()
	corrected, err := ec.Decode(append([]int{}, codewords...), 8, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if corrected != 0 {
		t.Errorf("corrected = %d, want 0 for an uncorrupted codeword array", corrected)
	}
}

func TestErrorCorrectionWithinBudgetRecovers(t *testing.T) {
	data := []int{1, 100, 200, 300, 400, 500}
	numEC := 8
	original := encodeWithParity(data, numEC)

	corrupted := append([]int{}, original...)
	// Corrupt R/2 = 4 positions.
	corrupted[0] = (corrupted[0] + 17) % 929
	corrupted[2] = (corrupted[2] + 91) % 929
	corrupted[5] = (corrupted[5] + 3) % 929
	corrupted[7] = (corrupted[7] + 400) % 929

	ec := NewErrorCorrection()
	corrected, err := ec.Decode(corrupted, numEC, nil)
	if err != nil {
		t.Fatalf("expected recovery within budget, got error: %v", err)
	}
	if corrected != 4 {
		t.Errorf("corrected = %d, want 4", corrected)
	}
	for i := range original {
		if corrupted[i] != original[i] {
			t.Errorf("codeword[%d] = %d after correction, want %d", i, corrupted[i], original[i])
		}
	}
}

func TestErrorCorrectionBeyondBudgetFails(t *testing.T) {
	data := []int{1, 100, 200, 300, 400, 500}
	numEC := 4 // budget is R/2 = 2 errors
	original := encodeWithParity(data, numEC)

	corrupted := append([]int{}, original...)
	corrupted[0] = (corrupted[0] + 17) % 929
	corrupted[2] = (corrupted[2] + 91) % 929
	corrupted[5] = (corrupted[5] + 3) % 929

	ec := NewErrorCorrection()
	if _, err := ec.Decode(corrupted, numEC, nil); err == nil {
		t.Error("expected failure decoding a codeword array with more errors than the budget allows")
	}
}
