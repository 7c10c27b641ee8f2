package fingerprint

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var logger atomic.Pointer[zap.Logger]

// Logger returns the logger that receives the debug traces of Encode and
// Compute: the canonical submission data and the ABI encoding. Nothing is
// logged until SetLogger installs a logger.
func Logger() *zap.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return zap.NewNop()
}

// SetLogger routes the encoding traces to l. A nil l silences them again.
// Safe to call concurrently with Encode and Compute.
func SetLogger(l *zap.Logger) {
	logger.Store(l)
}
