package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

type SetupParams struct {
	Level string
	// "json" or "text"
	Format string
	// Empty means stdout only. Otherwise logs go to a rotated file and to stdout.
	FileName string
}

// Setup builds the process logger and installs it as slog default.
func Setup(params SetupParams) *slog.Logger {
	var out io.Writer = os.Stdout
	if params.FileName != "" {
		if !strings.HasSuffix(params.FileName, ".log") {
			params.FileName += ".log"
		}
		out = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   params.FileName,
			MaxSize:    50, // megabytes
			MaxBackups: 10,
			Compress:   true,
		})
	}
	logger := slog.New(NewHandler(out, params.Format, ParseLevel(params.Level)))
	slog.SetDefault(logger)
	return logger
}

func NewHandler(w io.Writer, format string, level slog.Level) slog.Handler {
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(format, "text") {
		return slog.NewTextHandler(w, opts)
	}
	return slog.NewJSONHandler(w, opts)
}

func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
