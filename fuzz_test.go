package mediatype_test

import (
	"strings"
	"testing"

	"github.com/ghettovoice/mediatype"
)

func FuzzParse(f *testing.F) {
	for _, s := range validMediaTypes {
		f.Add(s)
	}
	for _, c := range invalidMediaTypes {
		f.Add(c.input)
	}
	f.Add(`text/plain;a="x;y";b= c ;;d`)
	f.Add("text/plain;foo;bar;a=b;c=d")

	f.Fuzz(func(t *testing.T, in string) {
		mt, err := mediatype.Parse(in)
		if err != nil {
			if !mt.IsZero() {
				t.Fatalf("mediatype.Parse(%q) returned non-zero value with error %v", in, err)
			}
			return
		}

		if mt.Type() == "*" && mt.Subtype() != "*" {
			t.Fatalf("mediatype.Parse(%q) wildcard type with subtype %q", in, mt.Subtype())
		}
		if len(mt.Facets()) == 0 {
			t.Fatalf("mediatype.Parse(%q) has no facets", in)
		}

		// an unquoted value with '"' renders as an escaped quoted string
		// that the lenient scanner cannot read back
		for _, v := range mt.Params().All() {
			if strings.Contains(v, `"`) {
				return
			}
		}

		s1 := mt.String()
		mt2, err := mediatype.Parse(s1)
		if err != nil {
			t.Fatalf("mediatype.Parse(%q) of canonical form error = %v", s1, err)
		}
		if s2 := mt2.String(); s2 != s1 {
			t.Fatalf("canonical form is not stable: %q -> %q", s1, s2)
		}
		if !mt2.Equal(mt) {
			t.Fatalf("reparsed %q is not equal to %q", s1, in)
		}
	})
}
