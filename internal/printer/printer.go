// Package printer renders mal values back to source text (spec §4.2),
// round-tripping with the reader in readable mode.
//
// Grounded on internal/interp/builtins_core.go's writer-argument idiom for
// the output-writing builtins (prn/println); the rendering rules
// themselves are spec-defined, since the teacher's own printer targets an
// entirely different (Pascal-family) syntax.
package printer

import (
	"strings"

	"github.com/cwbudde/go-mal/internal/value"
)

// PrStr renders v as text. When readably is true, strings are emitted as
// double-quoted, escaped literals (the inverse of the reader's unescape);
// when false, strings are emitted raw.
func PrStr(v value.Value, readably bool) string {
	switch vv := v.(type) {
	case value.Nil:
		return "nil"
	case *value.Boolean:
		return vv.String()
	case *value.Integer:
		return vv.String()
	case *value.String:
		if vv.IsKeyword() {
			return ":" + vv.KeywordName()
		}
		if readably {
			return quoteString(vv.Value)
		}
		return vv.Value
	case *value.Symbol:
		return vv.Name
	case *value.List:
		return wrapSeq("(", vv.Elements, ")", readably)
	case *value.Vector:
		return wrapSeq("[", vv.Elements, "]", readably)
	case *value.HashMap:
		return prStrHashMap(vv, readably)
	case *value.Error:
		return "error: " + vv.Message
	case *value.Builtin:
		return "#<builtin fn>"
	case *value.Closure:
		return "#<function>"
	default:
		return v.String()
	}
}

func wrapSeq(open string, elems []value.Value, close string, readably bool) string {
	parts := make([]string, len(elems))
	for i, e := range elems {
		parts[i] = PrStr(e, readably)
	}
	return open + strings.Join(parts, " ") + close
}

func prStrHashMap(h *value.HashMap, readably bool) string {
	parts := make([]string, 0, len(h.Keys)*2)
	for _, k := range h.Keys {
		parts = append(parts, PrStr(keyValue(k), readably), PrStr(h.Values[k], readably))
	}
	return "{" + strings.Join(parts, " ") + "}"
}

func keyValue(k string) value.Value {
	return &value.String{Value: k}
}

// quoteString is the inverse of the reader's unescape: '\' -> "\\\\",
// '"' -> "\\\"", newline -> "\\n".
func quoteString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString("\\\\")
		case '"':
			b.WriteString("\\\"")
		case '\n':
			b.WriteString("\\n")
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// Str concatenates the non-readable print of each value with no separator
// (mal's `str` builtin).
func Str(vs []value.Value) string {
	var b strings.Builder
	for _, v := range vs {
		b.WriteString(PrStr(v, false))
	}
	return b.String()
}

// PrStrJoin concatenates the readable print of each value, space-separated
// (mal's `pr-str` builtin).
func PrStrJoin(vs []value.Value) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = PrStr(v, true)
	}
	return strings.Join(parts, " ")
}
