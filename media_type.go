package mediatype

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/mediatype/internal/grammar"
	"github.com/ghettovoice/mediatype/internal/ioutil"
	"github.com/ghettovoice/mediatype/internal/util"
)

// MediaType is a parsed media type, e.g. text/html;charset=utf-8.
//
// A MediaType is immutable and is safe for concurrent use. Valid values are
// created only by [Parse] and its variants. The zero value is an empty placeholder
// that renders as the empty string.
type MediaType struct {
	typ     string
	subtype string
	suffix  string
	facets  []string
	essence string
	params  Params
}

// Type returns the top-level type, e.g. "application" or "*".
func (mt MediaType) Type() string { return mt.typ }

// Subtype returns the subtype without the structured syntax suffix,
// e.g. "vnd.api" for "application/vnd.api+json".
func (mt MediaType) Subtype() string { return mt.subtype }

// Suffix returns the structured syntax suffix, e.g. "json" for "application/vnd.api+json".
// It returns the empty string when there is no suffix.
func (mt MediaType) Suffix() string { return mt.suffix }

// Facets returns the dot-separated segments of the subtype,
// e.g. ["vnd", "api"] for "application/vnd.api+json".
func (mt MediaType) Facets() []string { return slices.Clone(mt.facets) }

// Essence returns the media type without parameters, e.g. "application/vnd.api+json".
func (mt MediaType) Essence() string { return mt.essence }

// Params returns the media type parameters.
func (mt MediaType) Params() Params { return mt.params }

// IsZero checks whether the media type is the zero value.
func (mt MediaType) IsZero() bool {
	return mt.typ == "" &&
		mt.subtype == "" &&
		mt.params.Len() == 0
}

// String returns the canonical form of the media type.
func (mt MediaType) String() string {
	if mt.params.Len() == 0 {
		return mt.essence
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	mt.renderTo(ioutil.NewCountingWriter(sb))
	return sb.String()
}

// RenderTo writes the canonical form of the media type to w.
func (mt MediaType) RenderTo(w io.Writer) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	mt.renderTo(cw)
	return errtrace.Wrap2(cw.Result())
}

func (mt MediaType) renderTo(cw *ioutil.CountingWriter) {
	cw.WriteStrings(mt.essence)
	mt.params.renderTo(cw)
}

func (mt MediaType) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, mt.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(mt.String()))
		return
	default:
		if !f.Flag('+') && !f.Flag('#') {
			fmt.Fprint(f, mt.String())
			return
		}

		type mediaType struct {
			Type    string
			Subtype string
			Suffix  string
			Facets  []string
			Essence string
			Params  []Param
		}
		fmt.Fprintf(f, fmt.FormatString(f, verb), mediaType{
			Type:    mt.typ,
			Subtype: mt.subtype,
			Suffix:  mt.suffix,
			Facets:  mt.facets,
			Essence: mt.essence,
			Params:  mt.params.list,
		})
		return
	}
}

// Equal reports whether val is a MediaType or *MediaType with the same canonical form.
// Parameter order is significant.
func (mt MediaType) Equal(val any) bool {
	var other MediaType
	switch v := val.(type) {
	case MediaType:
		other = v
	case *MediaType:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}

	return mt.essence == other.essence && mt.params.Equal(other.params)
}

// IsWildcard checks whether the type or the subtype is the wildcard "*".
func (mt MediaType) IsWildcard() bool {
	return mt.typ == grammar.Wildcard || mt.subtype == grammar.Wildcard
}

func (mt MediaType) MarshalText() ([]byte, error) {
	return []byte(mt.String()), nil
}

func (mt *MediaType) UnmarshalText(data []byte) error {
	v, err := Parse(data)
	if err != nil {
		*mt = MediaType{}
		return errtrace.Wrap(err)
	}
	*mt = v
	return nil
}

// MarshalJSON encodes the media type as a JSON string of its canonical form.
// The zero value is encoded as null.
func (mt MediaType) MarshalJSON() ([]byte, error) {
	if mt.IsZero() {
		return []byte("null"), nil
	}
	return errtrace.Wrap2(json.Marshal(mt.String()))
}

func (mt *MediaType) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*mt = MediaType{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*mt = MediaType{}
		return errtrace.Wrap(err)
	}
	return errtrace.Wrap(mt.UnmarshalText([]byte(s)))
}

// LogValue implements [slog.LogValuer].
func (mt MediaType) LogValue() slog.Value {
	return slog.StringValue(mt.String())
}
