// Package builtins supplies mal's native procedure namespace (spec §4.5):
// arithmetic, comparisons, list utilities, printing, and equality.
//
// Grounded on internal/interp/builtins_core.go's writer-argument handling
// for the output builtins (prn/println); see DESIGN.md for the disposition
// of this package's original DWScript-specific builtin files.
package builtins

import (
	"io"

	"github.com/cwbudde/go-mal/internal/env"
	"github.com/cwbudde/go-mal/internal/eval"
	"github.com/cwbudde/go-mal/internal/printer"
	"github.com/cwbudde/go-mal/internal/reader"
	"github.com/cwbudde/go-mal/internal/value"
)

// bootstrap is evaluated once against the root environment after the
// native table is installed, per spec §1: "The initial bootstrap snippet
// ... is part of the environment initialization contract."
const bootstrap = `(def! not (fn* (a) (if a false true)))`

// New builds a root environment with the core namespace installed and the
// bootstrap form evaluated. out is where prn/println write.
func New(out io.Writer) *env.Environment {
	e := env.New()
	for name, fn := range core(out) {
		e.Define(name, &value.Builtin{Name: name, Fn: fn})
	}

	if form, err := reader.ReadString(bootstrap); err == nil && form != nil {
		eval.Eval(form, e)
	}
	return e
}

func core(out io.Writer) map[string]value.BuiltinFn {
	fns := map[string]value.BuiltinFn{
		"+": arith(func(a, b int64) int64 { return a + b }),
		"-": arith(func(a, b int64) int64 { return a - b }),
		"*": arith(func(a, b int64) int64 { return a * b }),
		"/": func(args []value.Value) value.Value {
			if len(args) == 2 {
				if d, ok := args[1].(*value.Integer); ok && d.Value == 0 {
					return value.NewError("division by zero")
				}
			}
			return arith(func(a, b int64) int64 { return a / b })(args)
		},

		"<":  compare(func(a, b int64) bool { return a < b }),
		"<=": compare(func(a, b int64) bool { return a <= b }),
		">":  compare(func(a, b int64) bool { return a > b }),
		">=": compare(func(a, b int64) bool { return a >= b }),

		"list":   biList,
		"list?":  biListPred,
		"empty?": biEmptyPred,
		"count":  biCount,
		"=":      biEquals,

		"pr-str":  biPrStr,
		"str":     biStr,
		"prn":     biPrn(out),
		"println": biPrintln(out),
	}
	return fns
}

func arith(op func(a, b int64) int64) value.BuiltinFn {
	return func(args []value.Value) value.Value {
		a, b, errVal := twoInts(args)
		if errVal != nil {
			return errVal
		}
		return &value.Integer{Value: op(a, b)}
	}
}

func compare(op func(a, b int64) bool) value.BuiltinFn {
	return func(args []value.Value) value.Value {
		a, b, errVal := twoInts(args)
		if errVal != nil {
			return errVal
		}
		return value.BoolOf(op(a, b))
	}
}

func twoInts(args []value.Value) (int64, int64, *value.Error) {
	if len(args) != 2 {
		return 0, 0, value.NewError("missing operands")
	}
	a, ok := args[0].(*value.Integer)
	if !ok {
		return 0, 0, value.NewError("expected integer operand")
	}
	b, ok := args[1].(*value.Integer)
	if !ok {
		return 0, 0, value.NewError("expected integer operand")
	}
	return a.Value, b.Value, nil
}

func biList(args []value.Value) value.Value {
	return &value.List{Elements: append([]value.Value{}, args...)}
}

func biListPred(args []value.Value) value.Value {
	if len(args) != 1 {
		return value.NewError("missing operands")
	}
	_, ok := args[0].(*value.List)
	return value.BoolOf(ok)
}

func biEmptyPred(args []value.Value) value.Value {
	if len(args) != 1 {
		return value.NewError("missing operands")
	}
	seq, ok := args[0].(value.Seq)
	if !ok {
		return value.NewError("expected a list or vector")
	}
	return value.BoolOf(len(seq.Items()) == 0)
}

func biCount(args []value.Value) value.Value {
	if len(args) != 1 {
		return value.NewError("missing operands")
	}
	if _, ok := args[0].(value.Nil); ok {
		return &value.Integer{Value: 0}
	}
	seq, ok := args[0].(value.Seq)
	if !ok {
		return value.NewError("expected a list or vector")
	}
	return &value.Integer{Value: int64(len(seq.Items()))}
}

func biEquals(args []value.Value) value.Value {
	if len(args) != 2 {
		return value.NewError("missing operands")
	}
	return value.BoolOf(value.Equal(args[0], args[1]))
}

func biPrStr(args []value.Value) value.Value {
	return &value.String{Value: printer.PrStrJoin(args)}
}

func biStr(args []value.Value) value.Value {
	return &value.String{Value: printer.Str(args)}
}

func biPrn(out io.Writer) value.BuiltinFn {
	return func(args []value.Value) value.Value {
		io.WriteString(out, printer.PrStrJoin(args))
		io.WriteString(out, "\n")
		return value.NilValue
	}
}

func biPrintln(out io.Writer) value.BuiltinFn {
	return func(args []value.Value) value.Value {
		parts := make([]string, len(args))
		for i, a := range args {
			parts[i] = printer.PrStr(a, false)
		}
		for i, p := range parts {
			if i > 0 {
				io.WriteString(out, " ")
			}
			io.WriteString(out, p)
		}
		io.WriteString(out, "\n")
		return value.NilValue
	}
}
