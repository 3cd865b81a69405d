package retained

import (
	"log/slog"
	"os"
)

// Debug output for layout requests, focus changes and load warnings. Off
// unless TRELLIS_DEBUG is set or SetVerbose(true) is called.
var logLevel = new(slog.LevelVar)

var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

func init() {
	logLevel.Set(slog.LevelWarn)
	if os.Getenv("TRELLIS_DEBUG") != "" {
		logLevel.Set(slog.LevelDebug)
	}
}

// SetVerbose toggles debug logging for the package.
func SetVerbose(on bool) {
	if on {
		logLevel.Set(slog.LevelDebug)
	} else {
		logLevel.Set(slog.LevelWarn)
	}
}

// Verbose reports whether debug logging is on.
func Verbose() bool {
	return logLevel.Level() <= slog.LevelDebug
}

// SetLogger routes package output through l. A nil logger restores the
// stderr text handler.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	}
	logger = l
}

func debugLog(msg string, args ...any) {
	logger.Debug(msg, args...)
}
