package mediatype

import (
	"iter"
	"slices"

	"github.com/ghettovoice/mediatype/internal/grammar"
	"github.com/ghettovoice/mediatype/internal/ioutil"
	"github.com/ghettovoice/mediatype/internal/util"
)

// Param is a single media type parameter.
type Param struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// Params is an ordered read-only collection of media type parameters.
// Names are unique and lowercase, iteration follows the order in which
// the parameters appeared in the parsed input.
// The zero value is an empty collection.
type Params struct {
	list []Param
	idx  map[string]int
}

// Len returns the number of parameters.
func (ps Params) Len() int { return len(ps.list) }

// Get returns the value of the parameter with the given name.
// The name is matched case-insensitively.
func (ps Params) Get(name string) (string, bool) {
	i, ok := ps.idx[util.LCase(name)]
	if !ok {
		return "", false
	}
	return ps.list[i].Value, true
}

// Has checks whether a parameter with the given name is present.
func (ps Params) Has(name string) bool {
	_, ok := ps.idx[util.LCase(name)]
	return ok
}

// Names returns parameter names in order.
func (ps Params) Names() []string {
	names := make([]string, len(ps.list))
	for i := range ps.list {
		names[i] = ps.list[i].Name
	}
	return names
}

// All returns an iterator over name/value pairs in order.
func (ps Params) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, p := range ps.list {
			if !yield(p.Name, p.Value) {
				return
			}
		}
	}
}

// Slice returns a copy of the parameters in order.
func (ps Params) Slice() []Param { return slices.Clone(ps.list) }

// Equal reports whether both collections hold the same parameters in the same order.
func (ps Params) Equal(other Params) bool { return slices.Equal(ps.list, other.list) }

func (ps *Params) add(name, value string) {
	if ps.idx == nil {
		ps.idx = make(map[string]int, 2)
	}
	ps.idx[name] = len(ps.list)
	ps.list = append(ps.list, Param{Name: name, Value: value})
}

var charsetUTF8 = func() (ps Params) {
	ps.add("charset", "utf-8")
	return ps
}()

// parseParams scans the parameter list that follows the first ';' of the media type.
// Malformed, duplicate and invalid parameters are skipped, parsing never fails.
func parseParams(s string) Params {
	if util.TrimSP(s) == "charset=utf-8" {
		return charsetUTF8
	}
	return scanParams(s)
}

func scanParams(s string) Params {
	var (
		ps Params
		n  = len(s)
		i  = 0
	)
	for i < n {
		for i < n && (s[i] == ' ' || s[i] == ';') {
			i++
		}
		if i >= n {
			break
		}

		keyStart := i
		for i < n && s[i] != '=' && s[i] != ';' {
			i++
		}
		if i >= n {
			break
		}
		if s[i] == ';' {
			// bare token without '=', the key starts after it
			keyStart = i + 1
			for i < n && s[i] != '=' {
				i++
			}
		}

		key := util.TrimSP(s[keyStart:i])
		if len(key) == 0 || i >= n {
			break
		}
		i++ // '='

		for i < n && s[i] == ' ' {
			i++
		}
		if i >= n {
			break
		}

		var val string
		if s[i] == '"' {
			i++
			valStart := i
			for i < n && s[i] != '"' {
				i++
			}
			val = s[valStart:i]
			if i < n {
				i++
			}
		} else {
			valStart := i
			for i < n && s[i] != ';' {
				i++
			}
			val = util.TrimSP(s[valStart:i])
		}

		if ps.Has(key) || !grammar.IsParamName(key) || !grammar.IsParamValue(val) {
			continue
		}
		ps.add(key, val)
	}
	return ps
}

// renderTo writes every parameter as ";name=value".
func (ps Params) renderTo(cw *ioutil.CountingWriter) {
	for _, p := range ps.list {
		val := p.Value
		if grammar.NeedsQuote(val) {
			val = grammar.Quote(val)
		}
		cw.WriteStrings(";", p.Name, "=", val)
	}
}
