package decoder

import "github.com/sparkfish/pdf417decoder/bitutil"

// scanLine returns the ordered x-positions of every color transition in row
// y of image, starting with the first black pixel encountered.
//
// The sequence always begins on a black bar. If the row ends mid-bar (the
// last pixel scanned is black with no terminating white run), that trailing
// position is dropped rather than emitted as a boundary: a row that runs out
// of image before the bar closes contributes no usable width for that bar.
func scanLine(image *bitutil.BitMatrix, y int) []int {
	width := image.Width()
	var positions []int

	x := 0
	for x < width && !image.Get(x, y) {
		x++
	}
	if x >= width {
		return nil
	}

	black := true
	positions = append(positions, x)
	x++
	for x < width {
		if image.Get(x, y) != black {
			positions = append(positions, x)
			black = !black
		}
		x++
	}
	if black {
		// A pending black run never closed with a trailing white transition.
		positions = positions[:len(positions)-1]
	}
	return positions
}

// usableBarPositions reports whether a scanned row carries at least 8 full
// bars (9 boundary positions), the minimum needed to hold a border signature.
func usableBarPositions(positions []int) bool {
	return len(positions) >= 9
}
