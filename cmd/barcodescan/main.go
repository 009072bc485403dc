package main

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	pdf417decoder "github.com/sparkfish/pdf417decoder"
	"github.com/sparkfish/pdf417decoder/binarizer"
	"github.com/sparkfish/pdf417decoder/pdf417"
)

func main() {
	var tryHarder, pure, verbose bool
	var charset string

	root := &cobra.Command{
		Use:   "barcodescan <image-file> [image-file...]",
		Short: "Detect and decode PDF417 barcodes in image files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				pdf417.SetLogLevel(zerolog.DebugLevel)
			}

			exitCode := 0
			for _, path := range args {
				results, err := scanFile(path, tryHarder, pure, charset)
				if err != nil {
					fmt.Fprintf(os.Stderr, "%s: error: %v\n", path, err)
					exitCode = 1
					continue
				}
				if len(results) == 0 {
					fmt.Fprintf(os.Stderr, "%s: no barcodes found\n", path)
					exitCode = 1
					continue
				}
				for _, r := range results {
					if len(args) > 1 {
						fmt.Printf("%s: ", path)
					}
					fmt.Printf("[%s] %s\n", r.Format, r.Text)
				}
			}
			if exitCode != 0 {
				os.Exit(exitCode)
			}
			return nil
		},
	}

	root.Flags().BoolVar(&tryHarder, "try-harder", false, "spend more time looking for barcodes (the PDF417 reader does not use this hint)")
	root.Flags().BoolVar(&pure, "pure", false, "hint that the image is a clean barcode render with minimal border (the PDF417 reader does not use this hint)")
	root.Flags().StringVar(&charset, "charset", "", "character set to decode payload bytes with (e.g. ISO-8859-1)")
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "log candidate-level decode diagnostics")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func scanFile(path string, tryHarder, pure bool, charset string) ([]*pdf417decoder.Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	source := pdf417decoder.NewImageLuminanceSource(img)
	opts := &pdf417decoder.DecodeOptions{
		TryHarder:    tryHarder,
		PureBarcode:  pure,
		CharacterSet: charset,
	}

	// Run the GlobalHistogram binarizer first (fast, works well for clean
	// images), then the Hybrid binarizer (local adaptive thresholding, better
	// for photographs with uneven lighting). Both always run; their results
	// are merged, dropping repeated texts.
	bitmaps := []*pdf417decoder.BinaryBitmap{
		pdf417decoder.NewBinaryBitmap(binarizer.NewGlobalHistogram(source)),
		pdf417decoder.NewBinaryBitmap(binarizer.NewHybrid(source)),
	}

	reader := pdf417.NewPDF417Reader()

	var results []*pdf417decoder.Result
	seen := map[string]bool{}

	for _, bitmap := range bitmaps {
		found, err := tryDecode(reader, bitmap, opts)
		if err != nil {
			continue
		}
		for _, result := range found {
			key := result.Text
			if seen[key] {
				continue
			}
			seen[key] = true
			results = append(results, result)
		}
	}

	return results, nil
}

// tryDecode calls reader.DecodeMultiple but recovers from panics that the
// decoder may raise on malformed input, converting them to errors.
func tryDecode(reader *pdf417.PDF417Reader, bitmap *pdf417decoder.BinaryBitmap, opts *pdf417decoder.DecodeOptions) (results []*pdf417decoder.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			results = nil
			err = fmt.Errorf("decoder panic: %v", r)
		}
	}()
	return reader.DecodeMultiple(bitmap, opts)
}
