package errorutil_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ghettovoice/mediatype/internal/errorutil"
)

const errSentinel errorutil.Error = "sentinel"

type grammarErr string

func (e grammarErr) Error() string { return string(e) }

func (grammarErr) Grammar() bool { return true }

func TestNewWrapperError(t *testing.T) {
	t.Parallel()

	cause := errors.New("cause")

	cases := []struct {
		name    string
		args    []any
		wantMsg string
		wantIs  []error
	}{
		{"no args", nil, "sentinel", []error{errSentinel}},
		{"error arg", []any{cause}, "sentinel: cause", []error{errSentinel, cause}},
		{"wrapped error arg", []any{fmt.Errorf("x: %w", errSentinel)}, "x: sentinel", []error{errSentinel}},
		{"string arg", []any{"bad input"}, "sentinel: bad input", []error{errSentinel}},
		{"format args", []any{"bad %q", "text/"}, `sentinel: bad "text/"`, []error{errSentinel}},
		{"unknown arg", []any{42}, "sentinel", []error{errSentinel}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			err := errorutil.NewWrapperError(errSentinel, c.args...)
			if got := err.Error(); got != c.wantMsg {
				t.Errorf("err.Error() = %q, want %q", got, c.wantMsg)
			}
			for _, target := range c.wantIs {
				if !errors.Is(err, target) {
					t.Errorf("errors.Is(err, %v) = false, want true", target)
				}
			}
		})
	}
}

func TestNewInvalidArgumentError(t *testing.T) {
	t.Parallel()

	err := errorutil.NewInvalidArgumentError("unsupported output %q", "xml")
	if !errors.Is(err, errorutil.ErrInvalidArgument) {
		t.Errorf("errors.Is(err, ErrInvalidArgument) = false, want true")
	}
	if got, want := err.Error(), `invalid argument: unsupported output "xml"`; got != want {
		t.Errorf("err.Error() = %q, want %q", got, want)
	}
}

func TestIsGrammarErr(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"plain", errors.New("plain"), false},
		{"grammar", grammarErr("bad"), true},
		{"wrapped grammar", fmt.Errorf("wrap: %w", grammarErr("bad")), true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := errorutil.IsGrammarErr(c.err); got != c.want {
				t.Errorf("errorutil.IsGrammarErr(%v) = %v, want %v", c.err, got, c.want)
			}
		})
	}
}
