package decoder

import "github.com/sparkfish/pdf417decoder/bitutil"

// indControlRows, indControlEC, and indControlColumns are the three bits of
// the indicator-control mask; each must be contributed exactly once across
// both row-indicator columns before a transform can be solved.
const (
	indControlRows    = 1 << 0
	indControlEC      = 1 << 1
	indControlColumns = 1 << 2
	indControlDone    = indControlRows | indControlEC | indControlColumns
)

// maxConsecutiveInvalid bounds how many unreadable samples in a row end an
// indicator walk in one direction.
const maxConsecutiveInvalid = 20

// cornerPoint is a grid coordinate paired with the image pixel position its
// first stable sample was found at.
type cornerPoint struct {
	gridX, gridY   float64
	imageX, imageY float64
}

// indicatorState accumulates geometry decoded from a barcode's row
// indicators: the number of data rows, data columns, and the
// error-correction codeword count, plus the four grid/image corner
// correspondences needed to solve the projective transform.
type indicatorState struct {
	dataRows       int
	dataColumns    int
	ecCodewords    int
	control        int
	topLeft        *cornerPoint
	bottomLeft     *cornerPoint
	topRight       *cornerPoint
	bottomRight    *cornerPoint
}

func (s *indicatorState) complete() bool {
	return s.control == indControlDone &&
		s.topLeft != nil && s.bottomLeft != nil &&
		s.topRight != nil && s.bottomRight != nil
}

// apply folds one confirmed-stable indicator codeword into
// state, per the cluster-specific field rules. Each cluster's bit is only
// ever set once: once a cluster has already contributed, later hits for
// that same cluster (from the other row-indicator column, or a second
// stable run on the same column) are ignored, matching the single-write
// semantics of the field they gate. Returns the bit it contributed to the
// control mask, or 0 if the cluster had already contributed.
func (s *indicatorState) apply(packed int) int {
	cluster := packed >> 10
	info := (packed & 0x3ff) % 30
	switch cluster {
	case 0:
		if s.control&indControlRows != 0 {
			return 0
		}
		s.dataRows += 3*info + 1
		return indControlRows
	case 1:
		if s.control&indControlEC != 0 {
			return 0
		}
		s.ecCodewords = 1 << (info/3 + 1)
		s.dataRows += info % 3
		return indControlEC
	case 2:
		if s.control&indControlColumns != 0 {
			return 0
		}
		s.dataColumns = info + 1
		return indControlColumns
	}
	return 0
}

// readRowIndicators walks the left and right border lines, sampling
// candidate row-indicator codewords above and below the border center and
// accumulating geometry until the control mask is complete or both walks
// run out of valid codewords.
func readRowIndicators(image *bitutil.BitMatrix, area *BarcodeArea) (*indicatorState, bool) {
	state := &indicatorState{}

	leftDX, leftDY := area.Left.DirY, -area.Left.DirX
	rightDX, rightDY := -area.Right.DirY, area.Right.DirX

	walkSide(image, area, area.Left, leftDX, leftDY, state, true)
	walkSide(image, area, area.Right, rightDX, rightDY, state, false)

	return state, state.complete()
}

// walkSide samples row-indicator codewords up and down from a border's
// center, recording the first stable codeword seen at the top and the
// bottom of the walk as corner correspondences.
func walkSide(image *bitutil.BitMatrix, area *BarcodeArea, border *BorderPattern, dx, dy float64, state *indicatorState, left bool) {
	avgWidth := area.AverageSymbolWidth
	maxError := area.MaxSymbolError

	type hit struct {
		y, x float64
		cw   int
	}
	var hits []hit

	// Upward walk (decreasing y) and downward walk (increasing y), each
	// stopping after maxConsecutiveInvalid consecutive unreadable samples.
	// Every sample is collected first; confirmedStableIndices then picks out
	// which of them are worth keeping, so the repeat-detection rule lives in
	// one place and can be exercised without a real image.
	for _, step := range []int{-1, 1} {
		var cws []int
		var ys, xs []float64
		invalid := 0
		y := border.CenterY
		for invalid < maxConsecutiveInvalid {
			y += float64(step)
			x := border.xAt(y)
			cw := sampleAtVector(image, x, y, dx, dy, avgWidth, maxError)
			if cw == invalidCodeword {
				invalid++
			} else {
				invalid = 0
			}
			cws = append(cws, cw)
			ys = append(ys, y)
			xs = append(xs, x)
		}
		for _, idx := range confirmedStableIndices(cws) {
			hits = append(hits, hit{y: ys[idx], x: xs[idx], cw: cws[idx]})
		}
	}

	if len(hits) == 0 {
		return
	}

	top, bottom := hits[0], hits[0]
	for _, h := range hits {
		bit := state.apply(h.cw)
		state.control |= bit
		if h.y < top.y {
			top = h
		}
		if h.y > bottom.y {
			bottom = h
		}
	}

	rowOf := func(cw int) float64 {
		return float64(3*((cw&0x3ff)/30) + cw>>10)
	}

	column := -1.0
	if !left {
		column = float64(state.dataColumns)
	}

	topCorner := &cornerPoint{gridX: column, gridY: rowOf(top.cw), imageX: top.x, imageY: top.y}
	bottomCorner := &cornerPoint{gridX: column, gridY: rowOf(bottom.cw), imageX: bottom.x, imageY: bottom.y}

	if left {
		state.topLeft, state.bottomLeft = topCorner, bottomCorner
	} else {
		state.topRight, state.bottomRight = topCorner, bottomCorner
	}
}

// confirmedStableIndices returns, in walk order, the index of each sample in
// cws that is the first confirmation of a repeating codeword: a value equal
// to the one immediately before it, where that earlier value had not itself
// already been confirmed. invalidCodeword never confirms and always resets
// the run, so a single stray read between two stable rows does not bridge
// them into one.
func confirmedStableIndices(cws []int) []int {
	var idx []int
	confirmed := false
	for i := 1; i < len(cws); i++ {
		if cws[i] == invalidCodeword {
			confirmed = false
			continue
		}
		if cws[i] == cws[i-1] {
			if !confirmed {
				idx = append(idx, i)
				confirmed = true
			}
		} else {
			confirmed = false
		}
	}
	return idx
}
