package util_test

import (
	"errors"
	"testing"

	"github.com/ghettovoice/mediatype/internal/util"
)

func TestLCase(t *testing.T) {
	t.Parallel()

	type name string

	cases := []struct {
		in   name
		want name
	}{
		{"Text/HTML", "text/html"},
		{"APPLİCATION", "appli\u0307cation"},
		{"TEXT/PLAİN", "text/plai\u0307n"},
		{"Ârvore", "ârvore"},
		{"A\xffB", "a\xffb"},
	}

	for _, c := range cases {
		if got := util.LCase(c.in); got != c.want {
			t.Errorf("util.LCase(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestTrimSP(t *testing.T) {
	t.Parallel()

	if got, want := util.TrimSP(" \t text/plain \n"), "text/plain"; got != want {
		t.Errorf("util.TrimSP() = %q, want %q", got, want)
	}
}

func TestStringBuilderPool(t *testing.T) {
	t.Parallel()

	sb := util.GetStringBuilder()
	sb.WriteString("text/plain")
	util.FreeStringBuilder(sb)

	sb = util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	if sb.Len() != 0 {
		t.Errorf("pooled builder len = %d, want 0", sb.Len())
	}
}

func TestMust2(t *testing.T) {
	t.Parallel()

	if got := util.Must2(42, nil); got != 42 {
		t.Errorf("util.Must2(42, nil) = %v, want 42", got)
	}

	defer func() {
		if r := recover(); r == nil {
			t.Errorf("util.Must2(0, err) did not panic")
		}
	}()
	util.Must2(0, errors.New("boom"))
}
