package builtins

// RegisterJSONExtras installs a non-core, explicitly optional pair of
// builtins — json-str and json-parse — that bridge mal values to and from
// JSON text. Neither is part of the minimum namespace of spec §4.5; callers
// that want them call this after New. Kept in a separate registration
// function so the core namespace is unaffected whether or not it's called
// (SPEC_FULL.md §11).
//
// Grounded on the DWScript ParseJSON/ToJSON naming convention of the json.go
// file this package once held (since removed, see DESIGN.md) for the
// builtin-pair shape, using
// github.com/tidwall/gjson and github.com/tidwall/sjson directly, since the
// teacher's go.mod carries both only as transitive (indirect) dependencies
// with no direct call site in the retrieved pack to adapt from.

import (
	"strconv"

	"github.com/cwbudde/go-mal/internal/env"
	"github.com/cwbudde/go-mal/internal/value"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// RegisterJSONExtras binds json-str and json-parse into e.
func RegisterJSONExtras(e *env.Environment) {
	e.Define("json-str", &value.Builtin{Name: "json-str", Fn: biJSONStr})
	e.Define("json-parse", &value.Builtin{Name: "json-parse", Fn: biJSONParse})
}

// biJSONStr converts a mal value into a JSON text Value, building the
// document incrementally with sjson.Set so that nested lists/vectors/hash
// maps become JSON arrays/objects.
func biJSONStr(args []value.Value) value.Value {
	if len(args) != 1 {
		return value.NewError("missing operands")
	}
	out, err := jsonEncode(args[0])
	if err != nil {
		return value.NewError("json-str: %s", err.Error())
	}
	return &value.String{Value: out}
}

func jsonEncode(v value.Value) (string, error) {
	switch vv := v.(type) {
	case value.Nil:
		return "null", nil
	case *value.Boolean:
		if vv.Value {
			return "true", nil
		}
		return "false", nil
	case *value.Integer:
		return strconv.FormatInt(vv.Value, 10), nil
	case *value.String:
		if vv.IsKeyword() {
			return jsonScalarString(":" + vv.KeywordName())
		}
		return jsonScalarString(vv.Value)
	case value.Seq:
		doc := "[]"
		for _, item := range vv.Items() {
			encoded, err := jsonEncode(item)
			if err != nil {
				return "", err
			}
			doc, err = sjson.SetRaw(doc, "-1", encoded)
			if err != nil {
				return "", err
			}
		}
		return doc, nil
	case *value.HashMap:
		doc := "{}"
		for _, k := range vv.Keys {
			encoded, err := jsonEncode(vv.Values[k])
			if err != nil {
				return "", err
			}
			var err2 error
			doc, err2 = sjson.SetRaw(doc, jsonKeyPath(k), encoded)
			if err2 != nil {
				return "", err2
			}
		}
		return doc, nil
	default:
		return jsonScalarString(v.String())
	}
}

// jsonScalarString produces a correctly quoted/escaped JSON string literal
// by round-tripping through sjson (to escape) and gjson (to extract the raw
// encoded field), rather than hand-rolling JSON string escaping.
func jsonScalarString(s string) (string, error) {
	doc, err := sjson.Set("{}", "v", s)
	if err != nil {
		return "", err
	}
	return gjson.Get(doc, "v").Raw, nil
}

func jsonKeyPath(k string) string {
	s := &value.String{Value: k}
	if s.IsKeyword() {
		return s.KeywordName()
	}
	return k
}

// biJSONParse parses a JSON text Value into a mal value tree (objects
// become HashMaps keyed by string, arrays become Lists).
func biJSONParse(args []value.Value) value.Value {
	if len(args) != 1 {
		return value.NewError("missing operands")
	}
	s, ok := args[0].(*value.String)
	if !ok {
		return value.NewError("expected string operand")
	}
	if !gjson.Valid(s.Value) {
		return value.NewError("json-parse: invalid JSON")
	}
	return jsonDecode(gjson.Parse(s.Value))
}

func jsonDecode(r gjson.Result) value.Value {
	switch r.Type {
	case gjson.Null:
		return value.NilValue
	case gjson.True:
		return value.True
	case gjson.False:
		return value.False
	case gjson.Number:
		return &value.Integer{Value: int64(r.Num)}
	case gjson.String:
		return &value.String{Value: r.Str}
	default:
		if r.IsArray() {
			var elems []value.Value
			r.ForEach(func(_, v gjson.Result) bool {
				elems = append(elems, jsonDecode(v))
				return true
			})
			return &value.List{Elements: elems}
		}
		if r.IsObject() {
			hm := value.NewHashMap()
			r.ForEach(func(k, v gjson.Result) bool {
				hm.Set(k.Str, jsonDecode(v))
				return true
			})
			return hm
		}
		return value.NilValue
	}
}
