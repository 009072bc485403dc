package decoder

// Structural constants shared by the border, transform, codeword, and
// Reed-Solomon stages.
const (
	NumberOfCodewords    = 929
	ModulesInCodeword    = 17
	MinRowsInBarcode     = 3
	MaxRowsInBarcode     = 90
	MaxColumnsInBarcode  = 30
)
