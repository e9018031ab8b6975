package eval

import (
	"github.com/cwbudde/go-mal/internal/env"
	"github.com/cwbudde/go-mal/internal/value"
)

// specialFormFn implements one special form. elems is the whole source
// list including the leading symbol, e.g. for (def! x 1), elems is
// [def!, x, 1].
type specialFormFn func(elems []value.Value, e *env.Environment) value.Value

var specialForms = map[string]specialFormFn{
	"def!": evalDef,
	"let*": evalLet,
	"do":   evalDo,
	"if":   evalIf,
	"fn*":  evalFn,
}

// evalDef implements (def! S E): spec §4.4's special-form table.
func evalDef(elems []value.Value, e *env.Environment) value.Value {
	if len(elems) != 3 {
		return value.NewError("missing operands")
	}
	sym, ok := elems[1].(*value.Symbol)
	if !ok {
		return value.NewError("def! expects a symbol")
	}
	val := Eval(elems[2], e)
	if value.IsError(val) {
		return val
	}
	e.Define(sym.Name, val)
	return val
}

// evalLet implements (let* BINDINGS BODY).
func evalLet(elems []value.Value, e *env.Environment) value.Value {
	if len(elems) != 3 {
		return value.NewError("missing operands")
	}

	bindings, ok := elems[1].(value.Seq)
	if !ok {
		return value.NewError("let* bindings expect a list")
	}
	pairs := bindings.Items()
	if len(pairs)%2 != 0 {
		return value.NewError("let* bindings need an even number of arguments")
	}

	child := env.NewEnclosed(e)
	for i := 0; i < len(pairs); i += 2 {
		sym, ok := pairs[i].(*value.Symbol)
		if !ok {
			return value.NewError("def! expects a symbol")
		}
		val := Eval(pairs[i+1], child)
		if value.IsError(val) {
			return val
		}
		child.Define(sym.Name, val)
	}

	return Eval(elems[2], child)
}

// evalDo implements (do E1 E2 ... En): evaluate each in order, return the
// last.
func evalDo(elems []value.Value, e *env.Environment) value.Value {
	if len(elems) < 2 {
		return value.NewError("missing operands")
	}
	body := elems[1:]
	var result value.Value = value.NilValue
	for _, form := range body {
		result = Eval(form, e)
		if value.IsError(result) {
			return result
		}
	}
	return result
}

// evalIf implements (if C T) / (if C T F).
func evalIf(elems []value.Value, e *env.Environment) value.Value {
	if len(elems) != 3 && len(elems) != 4 {
		return value.NewError("missing operands")
	}
	cond := Eval(elems[1], e)
	if value.IsError(cond) {
		return cond
	}
	if value.IsTruthy(cond) {
		return Eval(elems[2], e)
	}
	if len(elems) == 4 {
		return Eval(elems[3], e)
	}
	return value.NilValue
}

// evalFn implements (fn* PARAMS BODY): build a Closure capturing e.
func evalFn(elems []value.Value, e *env.Environment) value.Value {
	if len(elems) != 3 {
		return value.NewError("missing operands")
	}
	paramSeq, ok := elems[1].(value.Seq)
	if !ok {
		return value.NewError("fn* parameters expect a list")
	}

	params, rest, err := splitParams(paramSeq.Items())
	if err != nil {
		return err
	}

	return &value.Closure{Params: params, Rest: rest, Body: elems[2], Env: e}
}

// splitParams validates and splits a parameter list: at most one "&",
// which must sit at position len-2 (spec §3 invariant 3), returning the
// required positional names and the rest name ("" if none).
func splitParams(items []value.Value) (params []string, rest string, errVal *value.Error) {
	names := make([]string, len(items))
	for i, item := range items {
		sym, ok := item.(*value.Symbol)
		if !ok {
			return nil, "", value.NewError("fn* parameters expect symbols")
		}
		names[i] = sym.Name
	}

	for i, n := range names {
		if n == "&" {
			if i != len(names)-2 {
				return nil, "", value.NewError("fn* expects '&' immediately before the rest parameter")
			}
			return names[:i], names[i+1], nil
		}
	}
	return names, "", nil
}
