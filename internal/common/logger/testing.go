package logger

import (
	"testing"

	"go.uber.org/zap/zaptest"
)

// NewTestLogger returns a Logger that writes through t.Log.
func NewTestLogger(t *testing.T) Logger {
	return NewZapAdapter(zaptest.NewLogger(t))
}
