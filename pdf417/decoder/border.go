package decoder

import (
	"math"

	"github.com/sparkfish/pdf417decoder/bitutil"
)

// startSignature and stopSignature are the normalized two-bar-window widths
// of the PDF417 start (8,1,1,1,1,1) and stop (7,1,1,3,1,1,1,2) patterns,
// expressed as the six sums used by the sliding-window detector.
var (
	startSignature = [6]int{9, 2, 2, 2, 2, 2}
	stopSignature  = [6]int{8, 2, 4, 4, 2, 2}
)

// BorderSymbol is a single row's match of an 8-bar border signature: the
// left edge, the row it was found on, and the right edge.
type BorderSymbol struct {
	X1  int
	Y   int
	X2  int
}

// BorderColumn is a vertically continuous run of BorderSymbol matches that
// plausibly belong to the same border line.
type BorderColumn struct {
	Symbols []BorderSymbol
}

const (
	minColumnSymbols  = 18
	maxColumnDeltaY   = 18
	maxColumnDeltaX   = 5
)

// fits reports whether sym continues col (see BorderColumn invariants).
func (col *BorderColumn) fits(sym BorderSymbol) bool {
	last := col.Symbols[len(col.Symbols)-1]
	return absInt(sym.Y-last.Y) < maxColumnDeltaY &&
		absInt(sym.X1-last.X1) < maxColumnDeltaX &&
		absInt(sym.X2-last.X2) < maxColumnDeltaX
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// roundHalfAwayFromZero implements the half-away-from-zero rounding the
// border and transform math relies on throughout.
func roundHalfAwayFromZero(v float64) int {
	if v >= 0 {
		return int(math.Floor(v + 0.5))
	}
	return int(math.Ceil(v - 0.5))
}

// matchSignature slides an 8-bar window across positions and reports any
// rows whose normalized widths match the start or stop signature, appending
// a BorderSymbol to the first BorderColumn it fits, or seeding a new one.
func scanBorderSignatures(positions []int, y int, startCols, stopCols *[]*BorderColumn) {
	n := len(positions)
	for i := 0; i+8 < n; i++ {
		w := positions[i+8] - positions[i]
		if w <= 0 {
			continue
		}
		var r [6]int
		for k := 0; k < 6; k++ {
			r[k] = roundHalfAwayFromZero(float64(34*(positions[i+k+2]-positions[i+k])+w) / float64(2*w))
		}
		sym := BorderSymbol{X1: positions[i], Y: y, X2: positions[i+8]}
		if r == startSignature {
			appendToColumn(startCols, sym)
		}
		if r == stopSignature {
			appendToColumn(stopCols, sym)
		}
	}
}

func appendToColumn(cols *[]*BorderColumn, sym BorderSymbol) {
	for _, col := range *cols {
		if col.fits(sym) {
			col.Symbols = append(col.Symbols, sym)
			return
		}
	}
	*cols = append(*cols, &BorderColumn{Symbols: []BorderSymbol{sym}})
}

// detectBorders scans every row of image for start and stop border
// signatures and returns the columns that accumulated at least the minimum
// number of vertically continuous symbols.
func detectBorders(image *bitutil.BitMatrix) ([]*BorderColumn, []*BorderColumn) {
	var startCols, stopCols []*BorderColumn
	for y := 0; y < image.Height(); y++ {
		positions := scanLine(image, y)
		if !usableBarPositions(positions) {
			continue
		}
		scanBorderSignatures(positions, y, &startCols, &stopCols)
	}
	return filterColumns(startCols), filterColumns(stopCols)
}

func filterColumns(cols []*BorderColumn) []*BorderColumn {
	var kept []*BorderColumn
	for _, c := range cols {
		if len(c.Symbols) >= minColumnSymbols {
			kept = append(kept, c)
		}
	}
	return kept
}

// BorderPattern is the fitted line for one BorderColumn: a center point, a
// normalized direction with dy == 1000, the line's length, and the average
// symbol width measured along the line.
type BorderPattern struct {
	CenterX, CenterY     float64
	DirX, DirY           float64
	Length               float64
	AverageSymbolWidth   float64
}

// fitBorderPattern fits a BorderPattern to col. stopPattern selects which
// edge of each symbol anchors the fit: the right edge (X2) for a start
// column, the left edge (X1) for a stop column.
func fitBorderPattern(col *BorderColumn, stopPattern bool) *BorderPattern {
	n := len(col.Symbols)
	var sumX, sumY, sumWidth float64
	for _, s := range col.Symbols {
		if stopPattern {
			sumX += float64(s.X1)
		} else {
			sumX += float64(s.X2)
		}
		sumY += float64(s.Y)
		sumWidth += float64(s.X2 - s.X1)
	}
	cx := sumX / float64(n)
	cy := sumY / float64(n)
	horizontalWidth := sumWidth / float64(n)

	var sx, sy float64
	for _, s := range col.Symbols {
		var ax float64
		if stopPattern {
			ax = float64(s.X1)
		} else {
			ax = float64(s.X2)
		}
		dx := ax - cx
		dy := float64(s.Y) - cy
		sx += dx * dy
		sy += dy * dy
	}

	length := math.Sqrt(sx*sx + sy*sy)
	var cosTheta, sinTheta float64
	if length != 0 {
		cosTheta = sy / length
		sinTheta = sx / length
	} else {
		cosTheta = 1
	}

	averageSymbolWidth := cosTheta * horizontalWidth

	// Shift the anchored center half a symbol width along the line's own
	// direction: start columns are anchored on the trailing edge and need to
	// move forward into the symbol; stop columns are anchored on the leading
	// edge and need to move back. centerAdj is that half-width projected onto
	// the line direction; its sinTheta/cosTheta components give the x/y shift,
	// so a vertical column (sinTheta == 0) gets no shift at all.
	centerAdj := 0.5 * sinTheta * horizontalWidth
	shiftX := roundHalfAwayFromZero(centerAdj * sinTheta)
	shiftY := roundHalfAwayFromZero(centerAdj * cosTheta)
	if stopPattern {
		cx += float64(shiftX)
		cy += float64(shiftY)
	} else {
		cx -= float64(shiftX)
		cy -= float64(shiftY)
	}

	dirY := 1000.0
	dirX := 0.0
	if sy != 0 {
		dirX = 1000 * sx / sy
	}

	return &BorderPattern{
		CenterX:            cx,
		CenterY:            cy,
		DirX:               dirX,
		DirY:               dirY,
		Length:             length,
		AverageSymbolWidth: averageSymbolWidth,
	}
}

// xAt returns the line's x coordinate at image row y.
func (b *BorderPattern) xAt(y float64) float64 {
	return b.CenterX + b.DirX*(y-b.CenterY)/b.DirY
}
