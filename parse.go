package mediatype

import (
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/mediatype/internal/constraints"
	"github.com/ghettovoice/mediatype/internal/grammar"
	"github.com/ghettovoice/mediatype/internal/util"
)

// Parse parses a media type from the given input s (string or []byte).
//
// The input is trimmed and lowercased as a whole before parsing, so parameter values
// are lowercased too. Type and subtype are validated strictly, on failure
// an [*InvalidMediaTypeError] is returned. Malformed parameters are silently skipped.
func Parse[T constraints.Byteseq](s T) (MediaType, error) {
	mt, err := parse(string(s))
	if err != nil {
		return MediaType{}, errtrace.Wrap(newInvalidMediaTypeError(string(s), err))
	}
	return mt, nil
}

// TryParse is like [Parse] but reports failure with a boolean.
func TryParse[T constraints.Byteseq](s T) (MediaType, bool) {
	mt, err := parse(string(s))
	return mt, err == nil
}

// MustParse is like [Parse] but panics if the input is not a valid media type.
func MustParse[T constraints.Byteseq](s T) MediaType {
	return util.Must2(Parse(s))
}

func parse(s string) (MediaType, error) {
	s = util.LCase(util.TrimSP(s))
	if len(s) == 0 {
		return MediaType{}, errtrace.Wrap(grammar.ErrEmptyInput)
	}

	typ, rest, ok := strings.Cut(s, "/")
	if !ok {
		return MediaType{}, errtrace.Wrap(grammar.ErrMissingSlash)
	}

	subtype, params, hasParams := strings.Cut(rest, ";")
	if hasParams {
		subtype = util.TrimSP(subtype)
	}

	if !grammar.IsType(typ) {
		return MediaType{}, errtrace.Wrap(grammar.ErrInvalidType)
	}
	if !grammar.IsSubtype(subtype) {
		return MediaType{}, errtrace.Wrap(grammar.ErrInvalidSubtype)
	}
	if typ == grammar.Wildcard && subtype != grammar.Wildcard {
		return MediaType{}, errtrace.Wrap(grammar.ErrWildcardMismatch)
	}

	mt := MediaType{typ: typ}
	mt.setSubtype(subtype)
	if hasParams {
		mt.params = parseParams(params)
	}
	return mt, nil
}

// setSubtype splits the full subtype into base and suffix and builds facets and essence.
// A trailing '+' is a part of the base subtype.
func (mt *MediaType) setSubtype(subtype string) {
	if i := strings.IndexByte(subtype, '+'); i >= 0 && i < len(subtype)-1 {
		mt.subtype, mt.suffix = subtype[:i], subtype[i+1:]
	} else {
		mt.subtype = subtype
	}
	mt.facets = strings.Split(mt.subtype, ".")

	if mt.suffix == "" {
		mt.essence = mt.typ + "/" + mt.subtype
	} else {
		mt.essence = mt.typ + "/" + mt.subtype + "+" + mt.suffix
	}
}
