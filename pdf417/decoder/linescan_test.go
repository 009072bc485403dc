package decoder

import (
	"testing"

	"github.com/sparkfish/pdf417decoder/bitutil"
)

func rowMatrix(row []bool) *bitutil.BitMatrix {
	return bitutil.ParseBoolMatrix([][]bool{row})
}

func TestScanLineBasicTransitions(t *testing.T) {
	// white,white,black,black,white,black,white,white
	row := []bool{false, false, true, true, false, true, false, false}
	got := scanLine(rowMatrix(row), 0)
	want := []int{2, 4, 5, 6}
	if !intsEqual(got, want) {
		t.Errorf("scanLine = %v, want %v", got, want)
	}
}

func TestScanLineAllWhiteReturnsNil(t *testing.T) {
	row := []bool{false, false, false, false}
	got := scanLine(rowMatrix(row), 0)
	if got != nil {
		t.Errorf("scanLine = %v, want nil", got)
	}
}

func TestScanLineDropsTrailingUnterminatedBlackRun(t *testing.T) {
	// Ends mid-bar: the final black run never closes with a white pixel.
	row := []bool{false, true, true, false, true, true, true}
	got := scanLine(rowMatrix(row), 0)
	// Transitions at 1 (white->black), 3 (black->white), 4 (white->black);
	// the run starting at 4 never closes, so it is dropped.
	want := []int{1, 3}
	if !intsEqual(got, want) {
		t.Errorf("scanLine = %v, want %v", got, want)
	}
}

func TestUsableBarPositions(t *testing.T) {
	if usableBarPositions([]int{1, 2, 3}) {
		t.Error("3 positions should not be usable")
	}
	nine := []int{0, 1, 2, 3, 4, 5, 6, 7, 8}
	if !usableBarPositions(nine) {
		t.Error("9 positions should be usable")
	}
}

func intsEqual(a, b []int) bool {
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
