package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"braces.dev/errtrace"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/ghettovoice/mediatype"
	"github.com/ghettovoice/mediatype/internal/errorutil"
	"github.com/ghettovoice/mediatype/internal/ioutil"
)

type class struct {
	name string
	is   func(mediatype.MediaType) bool
}

var classes = []class{
	{"suffix", mediatype.MediaType.HasSuffix},
	{"html", mediatype.MediaType.IsHTML},
	{"xml", mediatype.MediaType.IsXML},
	{"javascript", mediatype.MediaType.IsJavaScript},
	{"vendor", mediatype.MediaType.IsVendor},
	{"personal", mediatype.MediaType.IsPersonal},
	{"experimental", mediatype.MediaType.IsExperimental},
	{"wildcard", mediatype.MediaType.IsWildcard},
}

func lookupClass(name string) (class, bool) {
	for _, c := range classes {
		if c.name == name {
			return c, true
		}
	}
	return class{}, false
}

func classNames() []string {
	names := make([]string, len(classes))
	for i, c := range classes {
		names[i] = c.name
	}
	return names
}

type report struct {
	Input     string            `json:"input" yaml:"input"`
	Valid     bool              `json:"valid" yaml:"valid"`
	Error     string            `json:"error,omitempty" yaml:"error,omitempty"`
	MediaType string            `json:"media_type,omitempty" yaml:"media_type,omitempty"`
	Type      string            `json:"type,omitempty" yaml:"type,omitempty"`
	Subtype   string            `json:"subtype,omitempty" yaml:"subtype,omitempty"`
	Suffix    string            `json:"suffix,omitempty" yaml:"suffix,omitempty"`
	Essence   string            `json:"essence,omitempty" yaml:"essence,omitempty"`
	Facets    []string          `json:"facets,omitempty" yaml:"facets,omitempty"`
	Params    []mediatype.Param `json:"params,omitempty" yaml:"params,omitempty"`
	Classes   []string          `json:"classes,omitempty" yaml:"classes,omitempty"`

	mt  mediatype.MediaType
	err error
}

func newReport(in string) report {
	r := report{Input: in}
	r.mt, r.err = mediatype.Parse(in)
	if r.err != nil {
		r.Error = r.err.Error()
		return r
	}

	r.Valid = true
	r.MediaType = r.mt.String()
	r.Type = r.mt.Type()
	r.Subtype = r.mt.Subtype()
	r.Suffix = r.mt.Suffix()
	r.Essence = r.mt.Essence()
	r.Facets = r.mt.Facets()
	r.Params = r.mt.Params().Slice()
	for _, c := range classes {
		if c.is(r.mt) {
			r.Classes = append(r.Classes, c.name)
		}
	}
	return r
}

// parseAll parses inputs on at most jobs goroutines.
// Reports are returned in input order.
func parseAll(ctx context.Context, inputs []string, jobs int) ([]report, error) {
	reports := make([]report, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	if jobs > 0 {
		g.SetLimit(jobs)
	}
	for i, in := range inputs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return errtrace.Wrap(err)
			}
			reports[i] = newReport(in)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errtrace.Wrap(err)
	}
	if err := ctx.Err(); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return reports, nil
}

type outputFormat string

const (
	outputText outputFormat = "text"
	outputJSON outputFormat = "json"
	outputYAML outputFormat = "yaml"
)

func parseOutputFormat(s string) (outputFormat, error) {
	switch f := outputFormat(s); f {
	case outputText, outputJSON, outputYAML:
		return f, nil
	default:
		return "", errtrace.Wrap(errorutil.NewInvalidArgumentError("unknown output format %q", s))
	}
}

func writeReports(w io.Writer, format outputFormat, reports []report) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errtrace.Wrap(enc.Encode(reports))
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(reports); err != nil {
			return errtrace.Wrap(err)
		}
		return errtrace.Wrap(enc.Close())
	default:
		cw := ioutil.GetCountingWriter(w)
		defer ioutil.FreeCountingWriter(cw)
		for _, r := range reports {
			if r.Valid {
				fmt.Fprintln(cw, r.MediaType)
			} else {
				fmt.Fprintf(cw, "error: %s\n", r.Error)
			}
		}
		_, err := cw.Result()
		return errtrace.Wrap(err)
	}
}
