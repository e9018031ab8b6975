package eval

import (
	"bytes"
	"testing"

	"github.com/cwbudde/go-mal/internal/builtins"
	"github.com/cwbudde/go-mal/internal/env"
	"github.com/cwbudde/go-mal/internal/printer"
	"github.com/cwbudde/go-mal/internal/reader"
	"github.com/cwbudde/go-mal/internal/value"
)

func evalString(t *testing.T, e *env.Environment, input string) value.Value {
	t.Helper()
	ast, err := reader.ReadString(input)
	if err != nil {
		t.Fatalf("ReadString(%q) failed: %s", input, err.Error())
	}
	return Eval(ast, e)
}

func evalToString(t *testing.T, e *env.Environment, input string) string {
	t.Helper()
	return printer.PrStr(evalString(t, e, input), true)
}

func newTestEnv() *env.Environment {
	var buf bytes.Buffer
	return builtins.New(&buf)
}

func TestEvalArithmetic(t *testing.T) {
	e := newTestEnv()
	cases := map[string]string{
		"(+ 1 2)":       "3",
		"(* 2 (+ 1 2))": "6",
		"(- 10 4)":      "6",
		"(/ 10 2)":      "5",
	}
	for input, want := range cases {
		if got := evalToString(t, e, input); got != want {
			t.Errorf("eval(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestEvalDef(t *testing.T) {
	e := newTestEnv()
	evalString(t, e, "(def! x 3)")
	if got := evalToString(t, e, "x"); got != "3" {
		t.Errorf("x after def! = %q, want 3", got)
	}
}

func TestEvalLetShadowing(t *testing.T) {
	e := newTestEnv()
	evalString(t, e, "(def! x 1)")
	if got := evalToString(t, e, "(let* (x 2) x)"); got != "2" {
		t.Errorf("let* should shadow within its body, got %q", got)
	}
	if got := evalToString(t, e, "x"); got != "1" {
		t.Errorf("let* binding must not leak to the enclosing scope, got %q", got)
	}
}

func TestEvalLetSequentialBindings(t *testing.T) {
	e := newTestEnv()
	got := evalToString(t, e, "(let* (x 1 y (+ x 1)) (+ x y))")
	if got != "3" {
		t.Errorf("let* bindings should see earlier bindings in the same let*, got %q", got)
	}
}

func TestEvalDo(t *testing.T) {
	e := newTestEnv()
	got := evalToString(t, e, "(do 1 2 3)")
	if got != "3" {
		t.Errorf("do should return the value of its last form, got %q", got)
	}
}

func TestEvalIf(t *testing.T) {
	e := newTestEnv()
	if got := evalToString(t, e, "(if true 1 2)"); got != "1" {
		t.Errorf("(if true 1 2) = %q, want 1", got)
	}
	if got := evalToString(t, e, "(if false 1 2)"); got != "2" {
		t.Errorf("(if false 1 2) = %q, want 2", got)
	}
	if got := evalToString(t, e, "(if false 1)"); got != "nil" {
		t.Errorf("(if false 1) with no else = %q, want nil", got)
	}
	if got := evalToString(t, e, "(if 0 1 2)"); got != "1" {
		t.Errorf("0 must be truthy in mal, (if 0 1 2) = %q, want 1", got)
	}
}

func TestEvalFnApplication(t *testing.T) {
	e := newTestEnv()
	evalString(t, e, "(def! double (fn* (a) (* a 2)))")
	if got := evalToString(t, e, "(double 21)"); got != "42" {
		t.Errorf("(double 21) = %q, want 42", got)
	}
}

func TestEvalFnVariadic(t *testing.T) {
	e := newTestEnv()
	evalString(t, e, "(def! f (fn* (a & b) b))")
	if got := evalToString(t, e, "(f 1 2 3)"); got != "(2 3)" {
		t.Errorf("(f 1 2 3) = %q, want (2 3)", got)
	}

	evalString(t, e, "(def! g (fn* (& b) b))")
	if got := evalToString(t, e, "(g)"); got != "()" {
		t.Errorf("(g) = %q, want ()", got)
	}
}

func TestEvalClosureCapture(t *testing.T) {
	e := newTestEnv()
	evalString(t, e, "(def! adder (fn* (a) (fn* (b) (+ a b))))")
	evalString(t, e, "(def! add5 (adder 5))")
	if got := evalToString(t, e, "(add5 10)"); got != "15" {
		t.Errorf("(add5 10) = %q, want 15", got)
	}
}

func TestEvalUndefinedSymbolError(t *testing.T) {
	e := newTestEnv()
	v := evalString(t, e, "undefined-thing")
	if !value.IsError(v) {
		t.Fatalf("expected an error evaluating an undefined symbol, got %#v", v)
	}
}

func TestEvalApplyNonFunctionError(t *testing.T) {
	e := newTestEnv()
	v := evalString(t, e, "(1 2 3)")
	if !value.IsError(v) {
		t.Fatalf("applying a non-function must be an error, got %#v", v)
	}
}

func TestEvalArityErrorPropagates(t *testing.T) {
	e := newTestEnv()
	evalString(t, e, "(def! f (fn* (a b) a))")
	v := evalString(t, e, "(f 1)")
	if !value.IsError(v) {
		t.Fatalf("calling f with the wrong arity must be an error, got %#v", v)
	}
}

func TestEvalEmptyListIsSelfEvaluating(t *testing.T) {
	e := newTestEnv()
	if got := evalToString(t, e, "()"); got != "()" {
		t.Errorf("empty list should evaluate to itself, got %q", got)
	}
}

func TestEvalVectorElementsEvaluated(t *testing.T) {
	e := newTestEnv()
	if got := evalToString(t, e, "[1 (+ 1 1) 3]"); got != "[1 2 3]" {
		t.Errorf("vector elements must be evaluated in order, got %q", got)
	}
}
