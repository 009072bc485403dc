package decoder

import (
	"math"

	"github.com/sparkfish/pdf417decoder/bitutil"
)

// invalidCodeword is returned by the sampler whenever a grid cell cannot be
// classified into a codeword.
const invalidCodeword = -1

// yPerturbations are the vertical pixel retries attempted for data cells
// whose first sample lands in the wrong cluster, each paired with a
// compensating x shift that follows the cell's left edge so the retry still
// starts near the same grid column.
var yPerturbations = [6]int{1, -1, 2, -2, 3, -3}

// unitStep reduces (dx,dy) to a step vector whose dominant component has
// magnitude 1, so walking the line one step at a time advances by roughly
// one pixel along its long axis.
func unitStep(dx, dy float64) (float64, float64) {
	m := math.Max(math.Abs(dx), math.Abs(dy))
	if m == 0 {
		return 0, 0
	}
	return dx / m, dy / m
}

func pixelAt(image *bitutil.BitMatrix, x, y float64) (black bool, inBounds bool) {
	ix, iy := roundHalfAwayFromZero(x), roundHalfAwayFromZero(y)
	if ix < 0 || ix >= image.Width() || iy < 0 || iy >= image.Height() {
		return false, false
	}
	return image.Get(ix, iy), true
}

// whiteToBlackAnchor finds the black pixel at the start of a bar, walking
// backward from a black start pixel or forward from a white one, so the
// scan always begins on a white-to-black boundary.
func whiteToBlackAnchor(image *bitutil.BitMatrix, x, y, dx, dy float64) (ax, ay float64, ok bool) {
	sx, sy := unitStep(dx, dy)
	black, inBounds := pixelAt(image, x, y)
	if !inBounds {
		return 0, 0, false
	}
	if black {
		px, py := x, y
		for {
			nx, ny := px-sx, py-sy
			b, in := pixelAt(image, nx, ny)
			if !in {
				return 0, 0, false
			}
			if !b {
				return px, py, true
			}
			px, py = nx, ny
		}
	}
	px, py := x, y
	for {
		nx, ny := px+sx, py+sy
		b, in := pixelAt(image, nx, ny)
		if !in {
			return 0, 0, false
		}
		if b {
			return nx, ny, true
		}
		px, py = nx, ny
	}
}

// maxScanSteps bounds the walk along a single codeword's scan line; it is
// generous relative to any plausible module width.
const maxScanSteps = 4096

// scanTransitions walks forward from the anchor along (dx,dy), recording
// the (x,y) position of each of the 8 color transitions following it.
func scanTransitions(image *bitutil.BitMatrix, ax, ay, dx, dy float64) ([8][2]float64, bool) {
	sx, sy := unitStep(dx, dy)
	var points [8][2]float64
	found := 0
	lastBlack, inBounds := pixelAt(image, ax, ay)
	if !inBounds {
		return points, false
	}
	px, py := ax, ay
	for step := 0; step < maxScanSteps && found < 8; step++ {
		px += sx
		py += sy
		black, in := pixelAt(image, px, py)
		if !in {
			return points, false
		}
		if black != lastBlack {
			points[found] = [2]float64{px, py}
			found++
			lastBlack = black
		}
	}
	return points, found == 8
}

// sampleCodeword samples the grid cell whose scan line starts at (gridX,
// gridY) under transform t, returning the packed (cluster<<10)|value
// codeword, or invalidCodeword if the cell does not classify.
func sampleCodeword(image *bitutil.BitMatrix, t *Transform, gridX, gridY, avgWidth, maxError float64) int {
	x0, y0 := t.Apply(gridX, gridY)
	x1, y1 := t.Apply(gridX+1, gridY)
	return sampleAtVector(image, x0, y0, x1-x0, y1-y0, avgWidth, maxError)
}

// sampleAtVector samples one codeword starting at image point (x0,y0) and
// scanning along (dx,dy), the same classification the grid sampler uses,
// but addressed directly by pixel coordinates rather than through a grid
// transform. The row indicator reader uses this directly, since it must
// read codewords before any transform has been solved.
func sampleAtVector(image *bitutil.BitMatrix, x0, y0, dx, dy, avgWidth, maxError float64) int {
	ax, ay, ok := whiteToBlackAnchor(image, x0, y0, dx, dy)
	if !ok {
		return invalidCodeword
	}

	transitions, ok := scanTransitions(image, ax, ay, dx, dy)
	if !ok {
		return invalidCodeword
	}

	// P[0] is the anchor, P[1..8] are the recorded transitions.
	var p [9][2]float64
	p[0] = [2]float64{ax, ay}
	copy(p[1:], transitions[:])

	l := math.Hypot(p[8][0]-p[0][0], p[8][1]-p[0][1])
	if math.Abs(l-avgWidth) > maxError || l == 0 {
		return invalidCodeword
	}

	var w [6]int
	for b := 0; b < 6; b++ {
		ddx := p[b+2][0] - p[b][0]
		ddy := p[b+2][1] - p[b][1]
		width := roundHalfAwayFromZero(float64(ModulesInCodeword) * math.Hypot(ddx, ddy) / l)
		if width < 2 || width > 9 {
			return invalidCodeword
		}
		w[b] = width
	}

	mode := (9 + w[0] - w[1] + w[4] - w[5]) % 9
	if mode != 0 && mode != 3 && mode != 6 {
		return invalidCodeword
	}

	var packedWidths uint32
	for _, width := range w {
		packedWidths = (packedWidths << 3) | uint32(width-2)
	}

	return lookupSymbol(packedWidths)
}

// sampleDataCodeword samples a data-grid cell, requiring the result's
// cluster to equal row%3. If the first sample lands in the wrong cluster
// (or is invalid), it retries at vertically perturbed starting points
// before declaring an erasure (represented as invalidCodeword).
func sampleDataCodeword(image *bitutil.BitMatrix, t *Transform, gridX, gridY float64, row int, avgWidth, maxError float64) int {
	want := row % 3
	if v := sampleCodeword(image, t, gridX, gridY, avgWidth, maxError); v != invalidCodeword && (v>>10) == want {
		return v
	}
	x0, y0 := t.Apply(gridX, gridY)
	x1, y1 := t.Apply(gridX+1, gridY)
	xr, yr := t.Apply(gridX, gridY+1)
	for _, dyShift := range yPerturbations {
		sy := float64(dyShift)
		sx := 0.0
		if yr != y0 {
			sx = sy * (xr - x0) / (yr - y0)
		}
		v := sampleAtVector(image, x0+sx, y0+sy, x1-x0, y1-y0, avgWidth, maxError)
		if v != invalidCodeword && (v>>10) == want {
			return v
		}
	}
	return invalidCodeword
}
