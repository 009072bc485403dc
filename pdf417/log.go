package pdf417

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/sparkfish/pdf417decoder/pdf417/decoder"
)

// log is the package-level logger for candidate-level decode diagnostics.
// It is silent by default (zerolog.Disabled); callers that want visibility
// into why a candidate area was rejected can raise the level with SetLogLevel.
var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.Disabled).With().Timestamp().Logger()

// SetLogLevel adjusts the verbosity of candidate-level decode diagnostics.
// Pass zerolog.DebugLevel to see every rejected BarcodeArea and why. The
// level is applied to this package's logger and to the decoder package's.
func SetLogLevel(level zerolog.Level) {
	log = log.Level(level)
	decoder.SetLogLevel(level)
}
