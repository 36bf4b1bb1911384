package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/incentive-ledger/internal/config"
)

// NewLogger creates a *slog.Logger from cfg on stderr and installs it as the
// default logger.
//
// Format "json" is for production; "text" adds source locations for local
// runs. Level is one of debug, info, warn, error (case-insensitive) and
// defaults to info. Every line carries the app name and build version.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := newLogger(os.Stderr, cfg)
	slog.SetDefault(logger)
	return logger
}

func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:       parseLevel(cfg.Level),
		AddSource:   strings.EqualFold(cfg.Format, "text"),
		ReplaceAttr: redact,
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler).With(
		slog.String("app", "incentive-ledger"),
		slog.String("version", Version),
	)
}

// Credentials are dropped entirely; a doctor's card number keeps its last
// four digits so support can still match a payout.
func redact(_ []string, a slog.Attr) slog.Attr {
	switch strings.ToLower(a.Key) {
	case "password", "password_hash", "token", "access_token", "authorization":
		return slog.String(a.Key, "[REDACTED]")
	case "card_number":
		s := a.Value.String()
		if len(s) <= 4 {
			return slog.String(a.Key, "****")
		}
		return slog.String(a.Key, "****"+s[len(s)-4:])
	}
	return a
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
