// Command mediatype parses, canonicalizes and classifies media types.
//
// Usage:
//
//	mediatype parse [flags] [media-type...]
//	mediatype check --is <class> [flags] media-type...
//
// Inputs are read from stdin, one per line, when none are given as arguments.
package main

import (
	"cmp"
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"

	"braces.dev/errtrace"
	"github.com/spf13/cobra"

	"github.com/ghettovoice/mediatype/internal/log"
)

var version = "dev"

func getVersion() string {
	if version != "dev" {
		return version
	}
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		return bi.Main.Version
	}
	return version
}

const (
	envLogFormat = "MEDIATYPE_LOG_FORMAT"
	envLogLevel  = "MEDIATYPE_LOG_LEVEL"
)

type app struct {
	logFormat string
	logLevel  string
	noColor   bool
	logger    *slog.Logger
}

func (a *app) setupLogger(cmd *cobra.Command) error {
	format, err := log.ParseFormat(a.logFormat)
	if err != nil {
		return errtrace.Wrap(err)
	}
	lvl, err := log.ParseLevel(a.logLevel)
	if err != nil {
		return errtrace.Wrap(err)
	}
	a.logger = log.New(cmd.ErrOrStderr(), &log.Options{
		Format:  format,
		Level:   lvl,
		NoColor: a.noColor,
	})
	return nil
}

func newRootCmd() *cobra.Command {
	a := &app{logger: log.Noop}

	root := &cobra.Command{
		Use:   "mediatype",
		Short: "Parse, canonicalize and classify Internet media types",
		Long: `Parse, canonicalize and classify Internet media types (RFC 2045, RFC 6838).

Type and subtype are validated strictly, malformed parameters are skipped.
Valid inputs are rendered in canonical form: lowercase, without spaces,
with parameter values quoted where needed.

Examples:
  mediatype parse "Text/HTML; Charset=UTF-8"
  mediatype parse --output json application/vnd.api+json
  curl -sI https://example.com | sed -n 's/^content-type: //Ip' | mediatype parse
  mediatype check --is html text/html`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return errtrace.Wrap(a.setupLogger(cmd))
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.logFormat, "log-format", cmp.Or(os.Getenv(envLogFormat), string(log.FormatConsole)),
		"Log format: console, dev or none (env "+envLogFormat+")")
	pf.StringVar(&a.logLevel, "log-level", cmp.Or(os.Getenv(envLogLevel), "info"),
		"Log level: debug, info, warn or error (env "+envLogLevel+")")
	pf.BoolVar(&a.noColor, "no-color", false, "Disable colored log output")

	root.AddCommand(newParseCmd(a), newCheckCmd(a))
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
