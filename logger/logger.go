// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package logger builds the slog handler used by the installer.
package logger

import (
	"io"
	"log/slog"
	"os"
)

const (
	ModeDev    = "dev"
	ModeProd   = "prod"
	ModeSilent = "silent"
)

// New returns a logger for the given mode.
// dev: text to stderr at debug; prod: JSON to stdout at info; silent: discard.
func New(mode string) *slog.Logger {
	return slog.New(buildHandler(mode, os.Stderr, os.Stdout))
}

func buildHandler(mode string, devOut, prodOut io.Writer) slog.Handler {
	switch mode {
	case ModeProd:
		return slog.NewJSONHandler(prodOut, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	case ModeSilent:
		return slog.NewTextHandler(io.Discard, nil)
	default:
		return slog.NewTextHandler(devOut, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
	}
}
