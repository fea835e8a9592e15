// Package loggingtest provides loggers for tests.
package loggingtest

import (
	"testing"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/testr"

	"github.com/katalvlaran/lvsignal/logging"
)

// New returns a logger that writes through t.Log at every verbosity.
func New(t *testing.T) logr.Logger {
	return testr.NewWithOptions(t, testr.Options{Verbosity: logging.TRACE})
}
