package decoder

import "testing"

func TestScanBorderSignaturesMatchesStartPattern(t *testing.T) {
	// Gaps engineered so the six normalized window ratios equal the start
	// signature [9,2,2,2,2,2] exactly, with no rounding ambiguity.
	positions := []int{0, 16, 17, 19, 20, 22, 23, 25, 34}
	var startCols, stopCols []*BorderColumn
	scanBorderSignatures(positions, 5, &startCols, &stopCols)

	if len(startCols) != 1 {
		t.Fatalf("startCols = %d columns, want 1", len(startCols))
	}
	if len(stopCols) != 0 {
		t.Fatalf("stopCols = %d columns, want 0", len(stopCols))
	}
	got := startCols[0].Symbols[0]
	want := BorderSymbol{X1: 0, Y: 5, X2: 34}
	if got != want {
		t.Errorf("symbol = %+v, want %+v", got, want)
	}
}

func TestScanBorderSignaturesMatchesStopPattern(t *testing.T) {
	// Gaps engineered so the six ratios equal the stop signature
	// [8,2,4,4,2,2] exactly.
	positions := []int{0, 14, 15, 17, 22, 24, 25, 27, 34}
	var startCols, stopCols []*BorderColumn
	scanBorderSignatures(positions, 7, &startCols, &stopCols)

	if len(stopCols) != 1 {
		t.Fatalf("stopCols = %d columns, want 1", len(stopCols))
	}
	if len(startCols) != 0 {
		t.Fatalf("startCols = %d columns, want 0", len(startCols))
	}
	got := stopCols[0].Symbols[0]
	want := BorderSymbol{X1: 0, Y: 7, X2: 34}
	if got != want {
		t.Errorf("symbol = %+v, want %+v", got, want)
	}
}

func TestBorderColumnFitsAndAppendToColumn(t *testing.T) {
	var cols []*BorderColumn
	appendToColumn(&cols, BorderSymbol{X1: 10, Y: 0, X2: 20})
	appendToColumn(&cols, BorderSymbol{X1: 11, Y: 5, X2: 21}) // close enough: same column
	appendToColumn(&cols, BorderSymbol{X1: 200, Y: 5, X2: 210}) // far away: new column

	if len(cols) != 2 {
		t.Fatalf("columns = %d, want 2", len(cols))
	}
	if len(cols[0].Symbols) != 2 {
		t.Errorf("first column has %d symbols, want 2", len(cols[0].Symbols))
	}
	if len(cols[1].Symbols) != 1 {
		t.Errorf("second column has %d symbols, want 1", len(cols[1].Symbols))
	}
}

func TestFitBorderPatternVerticalColumn(t *testing.T) {
	col := &BorderColumn{Symbols: []BorderSymbol{
		{X1: 100, Y: 0, X2: 108},
		{X1: 100, Y: 10, X2: 108},
		{X1: 100, Y: 20, X2: 108},
	}}

	pattern := fitBorderPattern(col, false)

	if pattern.CenterX != 108 {
		t.Errorf("CenterX = %v, want 108", pattern.CenterX)
	}
	if pattern.CenterY != 10 {
		t.Errorf("CenterY = %v, want 10 (no shift: a vertical column has sinTheta == 0)", pattern.CenterY)
	}
	if pattern.DirX != 0 {
		t.Errorf("DirX = %v, want 0 (perfectly vertical)", pattern.DirX)
	}
	if pattern.DirY != 1000 {
		t.Errorf("DirY = %v, want 1000", pattern.DirY)
	}
	if pattern.AverageSymbolWidth != 8 {
		t.Errorf("AverageSymbolWidth = %v, want 8", pattern.AverageSymbolWidth)
	}
	if got := pattern.xAt(100); got != 108 {
		t.Errorf("xAt(100) = %v, want 108 for a vertical line", got)
	}
}
