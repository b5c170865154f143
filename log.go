package marionette

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var pkgLogger *zerolog.Logger

// SetLogger replaces the logger used for advisory warnings and debug events.
// Until it is called, the zerolog global logger is used.
func SetLogger(l zerolog.Logger) {
	pkgLogger = &l
}

func logger() *zerolog.Logger {
	if pkgLogger != nil {
		return pkgLogger
	}
	return &log.Logger
}
