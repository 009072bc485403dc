package decoder

import "testing"

func TestModulusPolyEvaluateAtZeroIsLastCoefficient(t *testing.T) {
	p := NewModulusPoly(PDF417GF, []int{5, 3, 7})
	if got := p.EvaluateAt(0); got != p.LastCoefficient() {
		t.Errorf("evaluateAt(0) = %d, want lastCoefficient() = %d", got, p.LastCoefficient())
	}
}

func TestModulusPolyMultiplyByOneIsIdentity(t *testing.T) {
	p := NewModulusPoly(PDF417GF, []int{5, 3, 7})
	one := PDF417GF.One()
	got := p.Multiply(one)
	if !coefficientsEqual(got.Coefficients(), p.Coefficients()) {
		t.Errorf("p*1 = %v, want %v", got.Coefficients(), p.Coefficients())
	}
}

func TestModulusPolySubtractSelfIsZero(t *testing.T) {
	p := NewModulusPoly(PDF417GF, []int{5, 3, 7})
	got := p.Subtract(p)
	if !got.IsZero() {
		t.Errorf("p-p = %v, want zero polynomial", got.Coefficients())
	}
}

func TestModulusPolyAddThenSubtractIsIdentity(t *testing.T) {
	p := NewModulusPoly(PDF417GF, []int{5, 3, 7})
	q := NewModulusPoly(PDF417GF, []int{1, 2})
	got := p.Add(q).Subtract(q)
	if !coefficientsEqual(got.Coefficients(), p.Coefficients()) {
		t.Errorf("(p+q)-q = %v, want %v", got.Coefficients(), p.Coefficients())
	}
}

func TestModulusPolyLeadingCoefficient(t *testing.T) {
	p := NewModulusPoly(PDF417GF, []int{5, 3, 7})
	if p.LeadingCoefficient() != 5 {
		t.Errorf("leadingCoefficient() = %d, want 5", p.LeadingCoefficient())
	}
}

func coefficientsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
