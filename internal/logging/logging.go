// Package logging builds the process logger: JSON lines on stdout, plus a
// rotated file when a path is configured.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

type Options struct {
	Level string
	File  string
}

// New returns the logger and a closer for the file sink (a no-op without one).
func New(o Options) (*slog.Logger, func() error) {
	var w io.Writer = os.Stdout
	closer := func() error { return nil }

	if o.File != "" {
		fw := &lumberjack.Logger{
			Filename:   o.File,
			MaxSize:    50, // MB
			MaxBackups: 5,
			MaxAge:     14,
			Compress:   true,
		}
		w = io.MultiWriter(os.Stdout, fw)
		closer = fw.Close
	}

	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: ParseLevel(o.Level)})
	return slog.New(h), closer
}

func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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
