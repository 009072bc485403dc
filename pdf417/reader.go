package pdf417

import (
	"fmt"

	pdf417decoder "github.com/sparkfish/pdf417decoder"
	"github.com/sparkfish/pdf417decoder/pdf417/decoder"
)

// PDF417Reader decodes PDF417 barcodes from binary images.
type PDF417Reader struct{}

// NewPDF417Reader creates a new PDF417 reader.
func NewPDF417Reader() *PDF417Reader {
	return &PDF417Reader{}
}

// Decode locates and decodes a PDF417 barcode in the given image.
func (r *PDF417Reader) Decode(image *pdf417decoder.BinaryBitmap, opts *pdf417decoder.DecodeOptions) (*pdf417decoder.Result, error) {
	results, err := r.decode(image, opts)
	if err != nil {
		return nil, err
	}
	return results[0], nil
}

// DecodeMultiple locates and decodes all PDF417 barcodes in the given image.
func (r *PDF417Reader) DecodeMultiple(image *pdf417decoder.BinaryBitmap, opts *pdf417decoder.DecodeOptions) ([]*pdf417decoder.Result, error) {
	return r.decode(image, opts)
}

func (r *PDF417Reader) decode(image *pdf417decoder.BinaryBitmap, opts *pdf417decoder.DecodeOptions) ([]*pdf417decoder.Result, error) {
	matrix, err := image.BlackMatrix()
	if err != nil {
		return nil, err
	}

	infos := decoder.Decode(matrix)
	log.Debug().Int("count", len(infos)).Int("width", matrix.Width()).Int("height", matrix.Height()).Msg("pdf417 decode pass complete")
	if len(infos) == 0 {
		return nil, pdf417decoder.ErrNotFound
	}

	var charsetLabel string
	if opts != nil && opts.CharacterSet != "" {
		charsetLabel = opts.CharacterSet
	}

	results := make([]*pdf417decoder.Result, 0, len(infos))
	for _, info := range infos {
		label := charsetLabel
		if label == "" {
			label = info.CharacterSet
		}
		text := decoder.DecodeWithCharacterSet(info.Data, label)

		result := pdf417decoder.NewResult(
			text,
			info.Data,
			[]pdf417decoder.ResultPoint{},
			pdf417decoder.FormatPDF417,
		)

		result.PutMetadata(pdf417decoder.MetadataErrorsCorrected, info.ErrorsCorrected)
		result.PutMetadata(pdf417decoder.MetadataPDF417ExtraMetadata, info.GLI)
		result.PutMetadata(pdf417decoder.MetadataSymbologyIdentifier, fmt.Sprintf("]L%d", symbologyModifier(info)))

		results = append(results, result)
	}

	return results, nil
}

// symbologyModifier reports the AIM symbology identifier modifier digit for
// info: 2 when a Global Label Identifier was present, 0 otherwise.
func symbologyModifier(info *decoder.BarcodeInfo) int {
	if info.GLI.UserDefined != nil || info.GLI.GeneralPurpose != nil || info.GLI.CharacterSet != nil {
		return 2
	}
	return 0
}

// Reset resets internal state.
func (r *PDF417Reader) Reset() {}
