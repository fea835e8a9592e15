package loggingtest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvsignal/logging"
	"github.com/katalvlaran/lvsignal/logging/loggingtest"
)

func TestNew(t *testing.T) {
	logger := loggingtest.New(t)
	logging.Output(logger, logging.Trace, "visible under go test -v")
	assert.True(t, logger.V(logging.TRACE).Enabled())
}
