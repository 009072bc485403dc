package decoder

import "errors"

// ErrTransformSingular is returned when the homography's linear system has
// no usable pivot in some column after exhausting every candidate row.
var ErrTransformSingular = errors.New("pdf417: transform matrix is singular")

// Transform holds the eight homography coefficients mapping barcode grid
// coordinates (X,Y) to image coordinates (x,y):
//
//	x = (a*X + b*Y + c) / (g*X + h*Y + 1)
//	y = (d*X + e*Y + f) / (g*X + h*Y + 1)
type Transform struct {
	A, B, C, D, E, F, G, H float64
}

// corner is one grid-point/image-point correspondence used to solve for the
// homography.
type corner struct {
	gridX, gridY   float64
	imageX, imageY float64
}

// solveTransform builds the 8x9 linear system for the four corner
// correspondences and solves it by Gaussian elimination, pivoting by adding
// a later row when the natural pivot is zero.
func solveTransform(corners [4]corner) (*Transform, error) {
	// Each corner contributes two rows: one for x, one for y.
	var m [8][9]float64
	for i, c := range corners {
		X, Y, x, y := c.gridX, c.gridY, c.imageX, c.imageY
		row0 := 2 * i
		row1 := row0 + 1
		m[row0] = [9]float64{X, Y, 1, 0, 0, 0, -x * X, -x * Y, x}
		m[row1] = [9]float64{0, 0, 0, X, Y, 1, -y * X, -y * Y, y}
	}

	if err := gaussianEliminate(&m); err != nil {
		return nil, err
	}
	coeffs := backSubstitute(&m)
	return &Transform{
		A: coeffs[0], B: coeffs[1], C: coeffs[2],
		D: coeffs[3], E: coeffs[4], F: coeffs[5],
		G: coeffs[6], H: coeffs[7],
	}, nil
}

// gaussianEliminate reduces m to upper-triangular form in place. When a
// pivot is zero, it looks for a later row with a non-zero entry in that
// column and adds it into the pivot row; failing to find one is a singular
// matrix.
func gaussianEliminate(m *[8][9]float64) error {
	const n = 8
	for col := 0; col < n; col++ {
		if m[col][col] == 0 {
			found := false
			for r := col + 1; r < n; r++ {
				if m[r][col] != 0 {
					for k := 0; k < 9; k++ {
						m[col][k] += m[r][k]
					}
					found = true
					break
				}
			}
			if !found {
				return ErrTransformSingular
			}
		}
		for r := col + 1; r < n; r++ {
			if m[r][col] == 0 {
				continue
			}
			factor := m[r][col] / m[col][col]
			for k := col; k < 9; k++ {
				m[r][k] -= factor * m[col][k]
			}
		}
	}
	return nil
}

// backSubstitute solves the upper-triangular system produced by
// gaussianEliminate for the 8 unknowns.
func backSubstitute(m *[8][9]float64) [8]float64 {
	const n = 8
	var x [8]float64
	for row := n - 1; row >= 0; row-- {
		sum := m[row][8]
		for col := row + 1; col < n; col++ {
			sum -= m[row][col] * x[col]
		}
		x[row] = sum / m[row][row]
	}
	return x
}

// Apply maps grid coordinates (X,Y) to image coordinates (x,y).
func (t *Transform) Apply(x, y float64) (float64, float64) {
	denom := t.G*x + t.H*y + 1
	return (t.A*x + t.B*y + t.C) / denom, (t.D*x + t.E*y + t.F) / denom
}
