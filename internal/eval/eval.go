// Package eval implements mal's evaluator: special-form dispatch, ordinary
// application, and the eval_ast element-wise evaluation rule (spec §4.4).
//
// Grounded on internal/interp/interpreter.go's Eval dispatch switch and its
// evalBlockStatement/evalIdentifier idiom of returning early the moment an
// Error-typed Value appears, adapted from DWScript's statement-oriented
// dispatch to mal's single-expression dispatch.
package eval

import (
	"github.com/cwbudde/go-mal/internal/env"
	"github.com/cwbudde/go-mal/internal/value"
)

// Eval is the top-level entry point: eval(ast, env) -> value (spec §4.4).
func Eval(ast value.Value, e *env.Environment) value.Value {
	switch v := ast.(type) {
	case *value.Error:
		return v

	case *value.List:
		if len(v.Elements) == 0 {
			return v
		}
		if sym, ok := v.Elements[0].(*value.Symbol); ok {
			if fn, ok := specialForms[sym.Name]; ok {
				return fn(v.Elements, e)
			}
		}
		return applyList(v, e)

	default:
		return evalAST(ast, e)
	}
}

// evalAST implements the Symbol/List/Vector/HashMap/Other rules of spec
// §4.4's "Dispatch by the variant of ast" table, used both as Eval's default
// path for non-list input and by applyList to evaluate an application's
// elements without the head-is-special-form check.
func evalAST(ast value.Value, e *env.Environment) value.Value {
	switch v := ast.(type) {
	case *value.Symbol:
		val, ok := e.Get(v.Name)
		if !ok {
			return value.NewError("%s not found", v.Name)
		}
		return val

	case *value.List:
		elems, err := evalSeq(v.Elements, e)
		if err != nil {
			return err
		}
		return &value.List{Elements: elems}

	case *value.Vector:
		elems, err := evalSeq(v.Elements, e)
		if err != nil {
			return err
		}
		return &value.Vector{Elements: elems}

	case *value.HashMap:
		out := value.NewHashMap()
		for _, k := range v.Keys {
			val := Eval(v.Values[k], e)
			if value.IsError(val) {
				return val
			}
			out.Set(k, val)
		}
		return out

	default:
		return ast
	}
}

// evalSeq evaluates each element in order, short-circuiting on the first
// Error. Already-evaluated elements are simply dropped on the error path:
// the Go rendering has nothing to release (see DESIGN.md), which is what
// spec §5's "release already-evaluated elements before propagation"
// clause reduces to once ownership is GC-backed.
func evalSeq(elems []value.Value, e *env.Environment) ([]value.Value, *value.Error) {
	out := make([]value.Value, 0, len(elems))
	for _, el := range elems {
		v := Eval(el, e)
		if errVal, ok := v.(*value.Error); ok {
			return nil, errVal
		}
		out = append(out, v)
	}
	return out, nil
}

// applyList evaluates the list element-wise, then applies the head to the
// tail (the "otherwise" branch of spec §4.4, and all of §4.4's
// "Application" section).
func applyList(list *value.List, e *env.Environment) value.Value {
	evaluated := evalAST(list, e)
	if value.IsError(evaluated) {
		return evaluated
	}
	evList := evaluated.(*value.List)
	head, args := evList.Elements[0], evList.Elements[1:]
	return Apply(head, args)
}

// Apply invokes a callable value (Builtin or Closure) with args. Exported
// so internal/repl and internal/builtins (for higher-order builtins, were
// any added) can apply closures without reaching into eval's internals.
func Apply(head value.Value, args []value.Value) value.Value {
	switch fn := head.(type) {
	case *value.Builtin:
		return fn.Fn(args)

	case *value.Closure:
		childEnv, err := fn.Env.NewChildWithBinds(fn.Params, fn.Rest, args)
		if err != nil {
			return err
		}
		return Eval(fn.Body, childEnv.(*env.Environment))

	default:
		return value.NewError("trying to apply something else than a function")
	}
}
