package util

import (
	"strings"
	"sync"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// LCase lowercases s with the full Unicode case mapping,
// e.g. 'İ' becomes "i\u0307" and never plain ASCII 'i'.
func LCase[T ~string](s T) T {
	for i := range len(s) {
		if s[i] >= utf8.RuneSelf {
			return T(cases.Lower(language.Und).String(string(s)))
		}
	}
	return T(strings.ToLower(string(s)))
}

func TrimSP[T ~string](s T) T { return T(strings.TrimSpace(string(s))) }

// IsASCIILower reports whether c is in the range 'a'..'z'.
func IsASCIILower(c byte) bool { return 'a' <= c && c <= 'z' }

// IsASCIIDigit reports whether c is in the range '0'..'9'.
func IsASCIIDigit(c byte) bool { return '0' <= c && c <= '9' }

var strBldrPool = &sync.Pool{
	New: func() any {
		sb := new(strings.Builder)
		sb.Grow(128)
		return sb
	},
}

func GetStringBuilder() *strings.Builder {
	return strBldrPool.Get().(*strings.Builder) //nolint:forcetypeassert
}

func FreeStringBuilder(sb *strings.Builder) {
	sb.Reset()
	strBldrPool.Put(sb)
}
