package decoder

import "math"

// BarcodeArea pairs a start border with a compatible stop border into one
// candidate symbol region.
type BarcodeArea struct {
	Left, Right        *BorderPattern
	AverageSymbolWidth float64
	MaxSymbolError     float64
}

const maxSymbolErrorFactor = 0.08

// matchAreas pairs every start border with every stop border that satisfies
// the geometric invariants of a barcode region, returning one BarcodeArea
// per compatible pair.
func matchAreas(startCols, stopCols []*BorderColumn) []*BarcodeArea {
	var areas []*BarcodeArea
	for _, sc := range startCols {
		start := fitBorderPattern(sc, false)
		if !isNearVertical(start) {
			continue
		}
		for _, pc := range stopCols {
			stop := fitBorderPattern(pc, true)
			if !isNearVertical(stop) {
				continue
			}
			if stop.CenterX <= start.CenterX {
				continue
			}
			if !perpendicularEnough(start, stop) {
				continue
			}
			avg := (start.AverageSymbolWidth + stop.AverageSymbolWidth) / 2
			areas = append(areas, &BarcodeArea{
				Left:               start,
				Right:              stop,
				AverageSymbolWidth: avg,
				MaxSymbolError:     maxSymbolErrorFactor * avg,
			})
		}
	}
	return areas
}

// isNearVertical requires a border's slope to stay under 45 degrees from
// vertical (dy > |dx|).
func isNearVertical(b *BorderPattern) bool {
	return b.DirY > math.Abs(b.DirX)
}

// perpendicularEnough requires the connector between the two border centers
// to sit within roughly six degrees of perpendicular to each border.
func perpendicularEnough(start, stop *BorderPattern) bool {
	cx := stop.CenterX - start.CenterX
	cy := stop.CenterY - start.CenterY
	cl := math.Sqrt(cx*cx + cy*cy)
	if cl == 0 {
		return false
	}
	for _, b := range []*BorderPattern{start, stop} {
		bl := math.Sqrt(b.DirX*b.DirX + b.DirY*b.DirY)
		if bl == 0 {
			return false
		}
		cosAngle := (cx*b.DirX + cy*b.DirY) / (cl * bl)
		if math.Abs(cosAngle) > 0.1 {
			return false
		}
	}
	return true
}

// leftX returns the left border's x coordinate at image row y.
func (a *BarcodeArea) leftX(y float64) float64 { return a.Left.xAt(y) }

// rightX returns the right border's x coordinate at image row y.
func (a *BarcodeArea) rightX(y float64) float64 { return a.Right.xAt(y) }
