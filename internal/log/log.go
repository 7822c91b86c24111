// Package log provides logging utilities.
package log

import (
	"context"
	"io"
	"log/slog"
	"time"

	"braces.dev/errtrace"
	"github.com/golang-cz/devslog"
	"github.com/phsym/console-slog"
	slogformatter "github.com/samber/slog-formatter"

	"github.com/ghettovoice/mediatype"
	"github.com/ghettovoice/mediatype/internal/errorutil"
	"github.com/ghettovoice/mediatype/internal/util"
)

// Format is a log output format.
type Format string

const (
	// FormatConsole is a human friendly single line format.
	FormatConsole Format = "console"
	// FormatDev is a verbose multi line format for development.
	FormatDev Format = "dev"
	// FormatNone disables logging.
	FormatNone Format = "none"
)

// ParseFormat parses a log format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(util.LCase(util.TrimSP(s))); f {
	case FormatConsole, FormatDev, FormatNone:
		return f, nil
	case "":
		return FormatConsole, nil
	default:
		return "", errtrace.Wrap(errorutil.NewInvalidArgumentError("unknown log format %q", s))
	}
}

// ParseLevel parses a slog level name, e.g. "debug" or "warn+2".
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if util.TrimSP(s) == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(util.TrimSP(s))); err != nil {
		return 0, errtrace.Wrap(errorutil.NewInvalidArgumentError(err))
	}
	return lvl, nil
}

var newHandler = slogformatter.NewFormatterHandler(
	slogformatter.ErrorFormatter("error"),
	slogformatter.FormatByType(func(err *mediatype.InvalidMediaTypeError) slog.Value {
		attrs := []slog.Attr{slog.String("input", err.Input)}
		if cause := err.Unwrap(); cause != nil {
			attrs = append(attrs, slog.String("reason", cause.Error()))
		}
		return slog.GroupValue(attrs...)
	}),
	slogformatter.FormatByType(func(mt mediatype.MediaType) slog.Value {
		return slog.GroupValue(
			slog.String("essence", mt.Essence()),
			slog.Int("params", mt.Params().Len()),
		)
	}),
)

// Options configures a logger built with [New].
type Options struct {
	Format  Format
	Level   slog.Leveler
	NoColor bool
}

// New creates a logger writing to w.
func New(w io.Writer, opts *Options) *slog.Logger {
	if opts == nil {
		opts = &Options{}
	}
	lvl := opts.Level
	if lvl == nil {
		lvl = slog.LevelInfo
	}

	switch opts.Format {
	case FormatNone:
		return Noop
	case FormatDev:
		return slog.New(newHandler(
			devslog.NewHandler(w, &devslog.Options{
				HandlerOptions: &slog.HandlerOptions{
					AddSource: true,
					Level:     lvl,
				},
				SortKeys:   true,
				TimeFormat: time.RFC3339Nano,
			}),
		))
	default:
		return slog.New(newHandler(
			console.NewHandler(w, &console.HandlerOptions{
				Level:      lvl,
				TimeFormat: time.RFC3339,
				NoColor:    opts.NoColor,
			}),
		))
	}
}

type noopHandler struct{}

func (noopHandler) Enabled(context.Context, slog.Level) bool { return false }

func (noopHandler) Handle(context.Context, slog.Record) error { return nil }

func (h noopHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h noopHandler) WithGroup(string) slog.Handler { return h }

// Noop is a noop logger.
var Noop = slog.New(noopHandler{})
