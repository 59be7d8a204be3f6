package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

type Logger struct {
	*slog.Logger
}

// BuildLogger creates a JSON logger writing to w. A nil writer logs to stderr, which keeps stdout free for command
// output such as extracted messages.
func BuildLogger(w io.Writer, level slog.Level) *Logger {
	if w == nil {
		w = os.Stderr
	}
	return &Logger{Logger: slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))}
}

func BuildLoggerFromCtx(base *Logger, ctx *gin.Context) *Logger {
	return &Logger{Logger: base.With("path", ctx.Request.URL.Path, "method", ctx.Request.Method)}
}

func (l *Logger) WithError(err error) *Logger {
	modifiedLogger := Logger{Logger: l.With("error", err.Error())}
	return &modifiedLogger
}

func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q, options are debug, info, warn, error", level)
}
