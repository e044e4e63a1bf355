package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestInitialize_ValidLevels(t *testing.T) {
	originalLog := Log
	defer func() { Log = originalLog }()

	levels := []string{"debug", "info", "warn", "error"}

	for _, lvl := range levels {
		for _, enc := range []string{"json", "console", ""} {
			t.Run(lvl+"/"+enc, func(t *testing.T) {
				err := Initialize(lvl, enc)
				assert.NoError(t, err, "expected no error for level %s", lvl)
				assert.NotNil(t, Log)
				assert.IsType(t, &zap.SugaredLogger{}, Log)

				assert.NotPanics(t, func() {
					Log.Debugw("test log", "level", lvl)
				})
			})
		}
	}
}

func TestInitialize_InvalidLevel(t *testing.T) {
	originalLog := Log
	defer func() { Log = originalLog }()

	err := Initialize("not-a-level", "json")
	assert.Error(t, err, "expected error for invalid log level")
	assert.Same(t, originalLog, Log)
}

func TestInitialize_InvalidEncoding(t *testing.T) {
	originalLog := Log
	defer func() { Log = originalLog }()

	err := Initialize("info", "xml")
	assert.Error(t, err)
	assert.Same(t, originalLog, Log)
}

func TestLog_NopBeforeInitialize(t *testing.T) {
	assert.NotNil(t, Log)
	assert.IsType(t, &zap.SugaredLogger{}, Log)

	assert.NotPanics(t, func() {
		Log.Infow("nop logger test")
		Sync()
	})
}
