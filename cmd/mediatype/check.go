package main

import (
	"fmt"
	"log/slog"
	"strings"

	"braces.dev/errtrace"
	"github.com/spf13/cobra"

	"github.com/ghettovoice/mediatype/internal/errorutil"
	"github.com/ghettovoice/mediatype/internal/util"
)

const errCheckFailed errorutil.Error = "check failed"

func newCheckCmd(a *app) *cobra.Command {
	var is []string

	cmd := &cobra.Command{
		Use:   "check --is <class> media-type...",
		Short: "Check that media types belong to the given classes",
		Long: `Check that every media type is valid and belongs to all requested classes.

Classes: ` + strings.Join(classNames(), ", ") + `

Prints "ok" or "fail" with the failed classes per input, exits with an error
if any input fails.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return errtrace.Wrap(runCheck(cmd, a, is, args))
		},
	}

	cmd.Flags().StringSliceVar(&is, "is", nil, "Required classes, comma separated or repeated")
	_ = cmd.MarkFlagRequired("is")

	return cmd
}

func runCheck(cmd *cobra.Command, a *app, is, args []string) error {
	want := make([]class, 0, len(is))
	for _, name := range is {
		c, ok := lookupClass(util.LCase(util.TrimSP(name)))
		if !ok {
			return errtrace.Wrap(errorutil.NewInvalidArgumentError("unknown class %q, expected one of %s",
				name, strings.Join(classNames(), ", ")))
		}
		want = append(want, c)
	}

	reports, err := parseAll(cmd.Context(), args, 0)
	if err != nil {
		return errtrace.Wrap(err)
	}
	logRejected(a.logger, reports)

	out := cmd.OutOrStdout()
	var failed int
	for _, r := range reports {
		var missing []string
		if r.Valid {
			for _, c := range want {
				if !c.is(r.mt) {
					missing = append(missing, c.name)
				}
			}
		}

		switch {
		case !r.Valid:
			failed++
			_, err = fmt.Fprintf(out, "fail\t%s\t%s\n", r.Input, r.Error)
		case len(missing) > 0:
			failed++
			a.logger.Info("class check failed", slog.Any("media_type", r.mt), slog.Any("missing", missing))
			_, err = fmt.Fprintf(out, "fail\t%s\tnot %s\n", r.Input, strings.Join(missing, ", "))
		default:
			_, err = fmt.Fprintf(out, "ok\t%s\n", r.Input)
		}
		if err != nil {
			return errtrace.Wrap(err)
		}
	}

	if failed > 0 {
		return errtrace.Wrap(errorutil.NewWrapperError(errCheckFailed, "%d of %d", failed, len(reports)))
	}
	return nil
}
