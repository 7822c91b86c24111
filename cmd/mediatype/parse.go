package main

import (
	"bufio"
	"errors"
	"io"
	"log/slog"
	"runtime"
	"strings"

	"braces.dev/errtrace"
	"github.com/spf13/cobra"

	"github.com/ghettovoice/mediatype"
	"github.com/ghettovoice/mediatype/internal/errorutil"
	"github.com/ghettovoice/mediatype/internal/util"
)

const errRejectedInputs errorutil.Error = "some inputs were rejected"

type parseOptions struct {
	output string
	jobs   int
	strict bool
}

func newParseCmd(a *app) *cobra.Command {
	opts := &parseOptions{}

	cmd := &cobra.Command{
		Use:   "parse [media-type...]",
		Short: "Parse media types and print them in canonical form",
		Long: `Parse media types and print them in canonical form.

When no arguments are given the inputs are read from stdin, one per line.
Blank lines are skipped. Rejected inputs are reported and logged as warnings.

Output formats:
  text  one canonical media type (or error) per line
  json  array of parse reports with components, parameters and classes
  yaml  same as json, in YAML`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return errtrace.Wrap(runParse(cmd, a, opts, args))
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", string(outputText), "Output format: text, json or yaml")
	cmd.Flags().IntVarP(&opts.jobs, "jobs", "j", runtime.GOMAXPROCS(0), "Number of inputs parsed concurrently")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Exit with an error if any input is rejected")

	return cmd
}

func runParse(cmd *cobra.Command, a *app, opts *parseOptions, args []string) error {
	format, err := parseOutputFormat(opts.output)
	if err != nil {
		return errtrace.Wrap(err)
	}

	inputs := args
	if len(inputs) == 0 {
		if inputs, err = readLines(cmd.InOrStdin()); err != nil {
			return errtrace.Wrap(err)
		}
	}

	reports, err := parseAll(cmd.Context(), inputs, opts.jobs)
	if err != nil {
		return errtrace.Wrap(err)
	}

	rejected := logRejected(a.logger, reports)
	a.logger.Debug("inputs parsed",
		slog.Int("total", len(reports)),
		slog.Int("rejected", rejected),
		slog.Int("jobs", opts.jobs),
	)

	if err := writeReports(cmd.OutOrStdout(), format, reports); err != nil {
		return errtrace.Wrap(err)
	}
	if opts.strict && rejected > 0 {
		return errtrace.Wrap(errorutil.NewWrapperError(errRejectedInputs, "%d of %d", rejected, len(reports)))
	}
	return nil
}

func logRejected(logger *slog.Logger, reports []report) int {
	var n int
	for _, r := range reports {
		if r.err == nil {
			continue
		}
		n++
		var ierr *mediatype.InvalidMediaTypeError
		if errors.As(r.err, &ierr) {
			logger.Warn("media type rejected", slog.Any("rejected", ierr))
		} else {
			logger.Warn("media type rejected", slog.Any("error", r.err))
		}
	}
	return n
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := strings.TrimRight(sc.Text(), "\r"); util.TrimSP(line) != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return lines, nil
}
