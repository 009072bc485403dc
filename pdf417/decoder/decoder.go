package decoder

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding/charmap"

	"github.com/sparkfish/pdf417decoder/bitutil"
	"github.com/sparkfish/pdf417decoder/charset"
)

// BarcodeInfo is the decoded result of one PDF417 symbol.
type BarcodeInfo struct {
	Data                  []byte
	CharacterSet          string
	GLI                   GLI
	DataColumns           int
	DataRows              int
	ErrorCorrectionLength int
	ErrorsCorrected       int
}

// Decode locates every PDF417 symbol in image and decodes each one,
// retrying once against a 180-degree rotation of the image if the first
// pass finds nothing.
func Decode(image *bitutil.BitMatrix) []*BarcodeInfo {
	results := decodePass(image)
	if len(results) == 0 {
		rotated := image.Clone()
		rotated.Rotate180()
		results = decodePass(rotated)
	}
	return results
}

// decodePass runs one full border-detect/match/decode sweep over image,
// top to bottom, continuing past any candidate that fails.
func decodePass(image *bitutil.BitMatrix) []*BarcodeInfo {
	startCols, stopCols := detectBorders(image)
	if len(startCols) == 0 || len(stopCols) == 0 {
		log.Debug().Err(ErrNoBorders).Msg("decode pass")
		return nil
	}
	areas := matchAreas(startCols, stopCols)
	if len(areas) == 0 {
		log.Debug().Err(ErrNoMatchedArea).Msg("decode pass")
		return nil
	}

	var results []*BarcodeInfo
	for _, area := range areas {
		info, err := decodeArea(image, area)
		if err != nil {
			log.Debug().Err(err).Msg("candidate area rejected")
			continue
		}
		results = append(results, info)
	}
	return results
}

// decodeArea decodes a single candidate barcode area: row indicators,
// transform, codeword grid, error correction, and the mode interpreter.
func decodeArea(image *bitutil.BitMatrix, area *BarcodeArea) (*BarcodeInfo, error) {
	state, ok := readRowIndicators(image, area)
	if !ok {
		return nil, ErrIndicatorsIncomplete
	}
	if state.dataRows < MinRowsInBarcode || state.dataRows > MaxRowsInBarcode || state.dataColumns < 1 {
		return nil, ErrIndicatorsIncomplete
	}

	t, err := solveTransform([4]corner{
		{gridX: state.topLeft.gridX, gridY: state.topLeft.gridY, imageX: state.topLeft.imageX, imageY: state.topLeft.imageY},
		{gridX: state.bottomLeft.gridX, gridY: state.bottomLeft.gridY, imageX: state.bottomLeft.imageX, imageY: state.bottomLeft.imageY},
		{gridX: state.topRight.gridX, gridY: state.topRight.gridY, imageX: state.topRight.imageX, imageY: state.topRight.imageY},
		{gridX: state.bottomRight.gridX, gridY: state.bottomRight.gridY, imageX: state.bottomRight.imageX, imageY: state.bottomRight.imageY},
	})
	if err != nil {
		return nil, ErrTransformSingular
	}

	grid, erased := sampleGrid(image, t, area, state)
	if len(erased) > state.ecCodewords/2 {
		return nil, ErrTooManyErasures
	}

	ec := NewErrorCorrection()
	corrected, err := ec.Decode(grid, state.ecCodewords, erased)
	if err != nil {
		return nil, ErrRSUnrecoverable
	}

	payload, gli, err := decodePayload(grid)
	if err != nil {
		return nil, err
	}

	return &BarcodeInfo{
		Data:                  payload,
		CharacterSet:          gliCharacterSetLabel(gli),
		GLI:                   gli,
		DataColumns:           state.dataColumns,
		DataRows:              state.dataRows,
		ErrorCorrectionLength: state.ecCodewords,
		ErrorsCorrected:       corrected,
	}, nil
}

// sampleGrid samples every (row,col) cell of the barcode into a row-major
// codeword array, recording the index of any cell that did not classify so
// the caller can hand those positions to error correction as erasures.
func sampleGrid(image *bitutil.BitMatrix, t *Transform, area *BarcodeArea, state *indicatorState) ([]int, []int) {
	n := state.dataRows * state.dataColumns
	grid := make([]int, n)
	var erased []int
	for row := 0; row < state.dataRows; row++ {
		for col := 0; col < state.dataColumns; col++ {
			idx := row*state.dataColumns + col
			v := sampleDataCodeword(image, t, float64(col), float64(row), row, area.AverageSymbolWidth, area.MaxSymbolError)
			if v == invalidCodeword {
				erased = append(erased, idx)
				grid[idx] = 0
				continue
			}
			grid[idx] = v & 0x3ff
		}
	}
	return grid, erased
}

// gliCharacterSetLabel derives the "ISO-8859-N" label a 927 GLI codeword
// names, clamping to the subset of code pages PDF417 actually permits and
// falling back to ISO-8859-1.
func gliCharacterSetLabel(gli GLI) string {
	if gli.CharacterSet == nil {
		return "ISO-8859-1"
	}
	n := *gli.CharacterSet - 2
	switch n {
	case 1, 2, 3, 4, 5, 6, 7, 8, 9, 13, 15:
	default:
		n = 1
	}
	return fmt.Sprintf("ISO-8859-%d", n)
}

// DecodeWithCharacterSet decodes raw payload bytes using the 8-bit code
// page named by label (e.g. "ISO-8859-1"), falling back to Latin-1 if the
// label is not one charset recognizes.
func DecodeWithCharacterSet(data []byte, label string) string {
	eci := charset.GetECIByName(isoLabelToGoName(label))
	enc := charmap.ISO8859_1
	if eci != nil {
		if m, ok := isoEncodings[eci.GoName]; ok {
			enc = m
		}
	}
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return string(data)
	}
	return string(out)
}

func isoLabelToGoName(label string) string {
	n := strings.TrimPrefix(label, "ISO-8859-")
	if n == label {
		return label
	}
	return "ISO8859_" + n
}

var isoEncodings = map[string]*charmap.Charmap{
	"ISO8859_1":  charmap.ISO8859_1,
	"ISO8859_2":  charmap.ISO8859_2,
	"ISO8859_3":  charmap.ISO8859_3,
	"ISO8859_4":  charmap.ISO8859_4,
	"ISO8859_5":  charmap.ISO8859_5,
	"ISO8859_6":  charmap.ISO8859_6,
	"ISO8859_7":  charmap.ISO8859_7,
	"ISO8859_8":  charmap.ISO8859_8,
	"ISO8859_9":  charmap.ISO8859_9,
	"ISO8859_13": charmap.ISO8859_13,
	"ISO8859_15": charmap.ISO8859_15,
}
