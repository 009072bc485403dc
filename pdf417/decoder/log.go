package decoder

import (
	"os"

	"github.com/rs/zerolog"
)

// log is the package-level logger for pipeline-stage decode diagnostics. It
// is silent by default; raise its level to see why a page or candidate area
// was rejected.
var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.Disabled).With().Timestamp().Logger()

// SetLogLevel adjusts the verbosity of pipeline-stage decode diagnostics.
func SetLogLevel(level zerolog.Level) {
	log = log.Level(level)
}
