package decoder

import "errors"

// Failure kinds returned by the decode pipeline. Each aborts the current
// barcode candidate; the caller moves on to the next BarcodeArea rather
// than treating these as fatal.
var (
	ErrNoBorders            = errors.New("pdf417: no start/stop border columns found")
	ErrNoMatchedArea        = errors.New("pdf417: no border pair forms a valid barcode area")
	ErrIndicatorsIncomplete = errors.New("pdf417: row indicators did not resolve all geometry")
	ErrTooManyErasures      = errors.New("pdf417: more unreadable codewords than error correction can cover")
	ErrRSUnrecoverable      = errors.New("pdf417: error correction could not recover the codeword array")
)
