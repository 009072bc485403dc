package decoder

import (
	"testing"

	"github.com/sparkfish/pdf417decoder/bitutil"
)

// drawRun sets a horizontal run of black pixels [x, x+width) on row y.
func drawRun(image *bitutil.BitMatrix, x, y, width int) {
	if width <= 0 {
		return
	}
	image.SetRegion(x, y, width, 1)
}

// TestSampleAtVectorRecoversRenderedCodeword renders one concrete codeword
// as an actual 8-bar pixel pattern (4 bars, 4 spaces, each a real pixel run,
// not a hand-picked width array) and confirms sampleAtVector recovers the
// same (cluster<<10)|value pair the generated symbol table assigns it. The
// bar-pair widths below are [2,2,2,3,4,4]: the lexicographically-smallest
// 6-tuple summing to 17 modules whose mode checksum selects cluster 0,
// which generateClusterPatterns therefore assigns value 0 — this is the
// same derivation the table itself performs, worked by hand once here and
// rendered as real pixels rather than asserted against a literal.
func TestSampleAtVectorRecoversRenderedCodeword(t *testing.T) {
	const modulePx = 4
	// Segment widths in modules (B,W,B,W,B,W,B,W): 1,1,1,1,2,2,2,7 - these
	// sum to 17 and their overlapping pairwise sums reproduce [2,2,2,3,4,4].
	segments := []int{1, 1, 1, 1, 2, 2, 2, 7}

	const marginPx = 10
	x := marginPx
	image := bitutil.NewBitMatrixWithSize(marginPx+17*modulePx+marginPx, 1)
	black := true
	for _, s := range segments {
		widthPx := s * modulePx
		if black {
			drawRun(image, x, 0, widthPx)
		}
		x += widthPx
		black = !black
	}
	// One more black pixel closes the 8th transition the sampler expects.
	drawRun(image, x, 0, 1)

	avgWidth := float64(17 * modulePx)
	maxError := maxSymbolErrorFactor * avgWidth
	got := sampleAtVector(image, float64(marginPx-5), 0, 1, 0, avgWidth, maxError)
	if got == invalidCodeword {
		t.Fatal("sampleAtVector rejected a codeword rendered from its own declared widths")
	}
	if got != 0 {
		t.Errorf("sampleAtVector = %d, want 0 (cluster 0, value 0)", got)
	}
}

// renderSignatureRow draws border_test.go's own hand-verified start-signature
// transition sequence as real pixel runs, instead of a literal position
// slice, so detectBorders is exercised against an actual multi-row image
// rather than only the lower-level scanBorderSignatures helper.
func renderSignatureRow(image *bitutil.BitMatrix, y int) {
	// Positions [0,16,17,19,20,22,23,25,34], closed by a trailing white run
	// so scanLine does not drop the final black run as unterminated.
	drawRun(image, 0, y, 16) // black [0,15]
	drawRun(image, 17, y, 2) // black [17,18]
	drawRun(image, 20, y, 2) // black [20,21]
	drawRun(image, 23, y, 2) // black [23,24]
	drawRun(image, 34, y, 6) // black [34,39]
}

func TestDetectBordersFindsRenderedStartColumn(t *testing.T) {
	const rows = 20
	image := bitutil.NewBitMatrixWithSize(45, rows)
	for y := 0; y < rows; y++ {
		renderSignatureRow(image, y)
	}

	startCols, stopCols := detectBorders(image)
	if len(stopCols) != 0 {
		t.Fatalf("stopCols = %d columns, want 0", len(stopCols))
	}
	if len(startCols) != 1 {
		t.Fatalf("startCols = %d columns, want 1", len(startCols))
	}
	if got := len(startCols[0].Symbols); got < minColumnSymbols {
		t.Errorf("startCols[0] has %d symbols, want at least %d", got, minColumnSymbols)
	}
	first := startCols[0].Symbols[0]
	if first.X1 != 0 || first.X2 != 34 {
		t.Errorf("first symbol = %+v, want X1=0 X2=34", first)
	}
}
