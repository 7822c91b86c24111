package mediatype_test

import (
	"errors"
	"testing"

	"github.com/ghettovoice/mediatype"
	"github.com/ghettovoice/mediatype/internal/errorutil"
	"github.com/ghettovoice/mediatype/internal/grammar"
)

func TestInvalidMediaTypeError(t *testing.T) {
	t.Parallel()

	_, err := mediatype.Parse("*/plain")

	if got, want := err.Error(), `invalid media type: "*/plain": wildcard type requires wildcard subtype`; got != want {
		t.Errorf("err.Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, mediatype.ErrInvalidMediaType) {
		t.Errorf("errors.Is(err, ErrInvalidMediaType) = false, want true")
	}
	if !errors.Is(err, grammar.ErrWildcardMismatch) {
		t.Errorf("errors.Is(err, grammar.ErrWildcardMismatch) = false, want true")
	}
	if errors.Is(err, grammar.ErrInvalidType) {
		t.Errorf("errors.Is(err, grammar.ErrInvalidType) = true, want false")
	}
	if !errorutil.IsGrammarErr(err) {
		t.Errorf("errorutil.IsGrammarErr(err) = false, want true")
	}
}

func TestInvalidMediaTypeError_Nil(t *testing.T) {
	t.Parallel()

	var err *mediatype.InvalidMediaTypeError
	if got := err.Error(); got != "<nil>" {
		t.Errorf("nil err.Error() = %q, want \"<nil>\"", got)
	}
	if err.Unwrap() != nil {
		t.Errorf("nil err.Unwrap() = %v, want nil", err.Unwrap())
	}
	if err.Grammar() {
		t.Errorf("nil err.Grammar() = true, want false")
	}
}
