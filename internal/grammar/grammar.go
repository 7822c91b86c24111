// Package grammar holds the character classes and vocabularies of the
// media type grammar.
package grammar

//go:generate go tool errtrace -w .

import "github.com/ghettovoice/mediatype/internal/util"

type Error string

func (e Error) Error() string { return string(e) }

func (Error) Grammar() bool { return true }

const (
	ErrEmptyInput       Error = "empty input"
	ErrMissingSlash     Error = "missing type/subtype separator"
	ErrInvalidType      Error = "invalid type"
	ErrInvalidSubtype   Error = "invalid subtype"
	ErrWildcardMismatch Error = "wildcard type requires wildcard subtype"
)

// Wildcard matches any type or subtype.
const Wildcard = "*"

// MaxSubtypeLen is the maximum length of a subtype including its suffix.
const MaxSubtypeLen = 127

// ReservedSubtype is reserved for documentation (RFC 4735) and never valid.
const ReservedSubtype = "example"

var types = map[string]struct{}{
	Wildcard:      {},
	"application": {},
	"audio":       {},
	"font":        {},
	"image":       {},
	"haptics":     {},
	"message":     {},
	"model":       {},
	"multipart":   {},
	"text":        {},
	"video":       {},
}

// IsType reports whether s is one of the registered lowercase top-level types or the wildcard.
func IsType(s string) bool {
	_, ok := types[s]
	return ok
}

var subtypeChars = func() (tbl [256]bool) {
	for c := byte('a'); c <= 'z'; c++ {
		tbl[c] = true
	}
	for c := byte('0'); c <= '9'; c++ {
		tbl[c] = true
	}
	for _, c := range []byte("!#$%^&*_-+{}|'.`~") {
		tbl[c] = true
	}
	return tbl
}()

// IsSubtypeChar reports whether c may appear in a lowercase subtype.
func IsSubtypeChar(c byte) bool { return subtypeChars[c] }

// IsSubtype reports whether s is a valid lowercase subtype: non-empty,
// at most [MaxSubtypeLen] bytes, not [ReservedSubtype] and made only of subtype characters.
func IsSubtype(s string) bool {
	if len(s) == 0 || len(s) > MaxSubtypeLen || s == ReservedSubtype {
		return false
	}
	for i := range len(s) {
		if !IsSubtypeChar(s[i]) {
			return false
		}
	}
	return true
}

// IsParamName reports whether every byte of s is a lowercase letter, a digit or '-'.
// The empty string passes, emptiness is handled by the parameter scanner.
func IsParamName(s string) bool {
	for i := range len(s) {
		if c := s[i]; !util.IsASCIILower(c) && !util.IsASCIIDigit(c) && c != '-' {
			return false
		}
	}
	return true
}

// IsParamValue reports whether s contains no control characters.
func IsParamValue(s string) bool {
	for i := range len(s) {
		if c := s[i]; c < 0x20 || c == 0x7f {
			return false
		}
	}
	return true
}

// NeedsQuote reports whether a parameter value must be rendered as a quoted string.
func NeedsQuote(s string) bool {
	if len(s) == 0 {
		return true
	}
	for i := range len(s) {
		if c := s[i]; !util.IsASCIILower(c) && !util.IsASCIIDigit(c) && c != '-' && c != '\'' {
			return true
		}
	}
	return false
}

// Quote wraps s in double quotes escaping inner double quotes with a backslash.
// Backslashes are written as is.
func Quote(s string) string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for i := range len(s) {
		if s[i] == '"' {
			sb.WriteByte('\\')
		}
		sb.WriteByte(s[i])
	}
	sb.WriteByte('"')
	return sb.String()
}
