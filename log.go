package nalloc

import "go.uber.org/zap"

// logger is package-global so arenas created through NewArenaManager don't
// need a logger threaded through every call. It defaults to a no-op so
// importing this package is silent unless a caller opts in.
var logger = zap.NewNop()

// SetLogger installs l as the logger used for diagnostic messages (arena
// creation, reset, and release-failure warnings). Passing nil restores the
// no-op default. Not safe to call concurrently with arena operations; call
// it once during startup before creating an ArenaManager.
func SetLogger(l *zap.Logger) {
	if l == nil {
		logger = zap.NewNop()
		return
	}
	logger = l
}
