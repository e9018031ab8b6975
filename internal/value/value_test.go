package value

import "testing"

func TestBoolOf(t *testing.T) {
	if BoolOf(true) != True {
		t.Errorf("BoolOf(true) should return the shared True instance")
	}
	if BoolOf(false) != False {
		t.Errorf("BoolOf(false) should return the shared False instance")
	}
}

func TestKeywordRoundtrip(t *testing.T) {
	kw := NewKeyword("foo")
	if !kw.IsKeyword() {
		t.Fatalf("NewKeyword result should report IsKeyword() == true")
	}
	if got := kw.KeywordName(); got != "foo" {
		t.Errorf("KeywordName() = %q, want %q", got, "foo")
	}

	plain := &String{Value: "foo"}
	if plain.IsKeyword() {
		t.Errorf("a plain string must not be mistaken for a keyword")
	}
}

func TestIsTruthy(t *testing.T) {
	cases := []struct {
		name string
		v    Value
		want bool
	}{
		{"nil", NilValue, false},
		{"false", False, false},
		{"true", True, true},
		{"zero integer", &Integer{Value: 0}, true},
		{"empty string", &String{Value: ""}, true},
		{"empty list", &List{}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := IsTruthy(c.v); got != c.want {
				t.Errorf("IsTruthy(%v) = %v, want %v", c.v, got, c.want)
			}
		})
	}
}

func TestEqualCrossesListAndVector(t *testing.T) {
	list := &List{Elements: []Value{&Integer{Value: 1}, &Integer{Value: 2}}}
	vec := &Vector{Elements: []Value{&Integer{Value: 1}, &Integer{Value: 2}}}
	if !Equal(list, vec) {
		t.Errorf("a List and Vector with equal elements must compare equal")
	}

	other := &List{Elements: []Value{&Integer{Value: 1}, &Integer{Value: 3}}}
	if Equal(list, other) {
		t.Errorf("lists with different elements must not compare equal")
	}
}

func TestEqualHashMap(t *testing.T) {
	a := NewHashMap()
	a.Set("k", &Integer{Value: 1})
	b := NewHashMap()
	b.Set("k", &Integer{Value: 1})
	if !Equal(a, b) {
		t.Errorf("hash maps with the same keys/values must compare equal")
	}

	c := NewHashMap()
	c.Set("k", &Integer{Value: 2})
	if Equal(a, c) {
		t.Errorf("hash maps with different values must not compare equal")
	}
}

func TestEqualFunctionsNeverEqual(t *testing.T) {
	b1 := &Builtin{Name: "f"}
	b2 := &Builtin{Name: "f"}
	if Equal(b1, b1) || Equal(b1, b2) {
		t.Errorf("builtin functions must never compare equal, even to themselves")
	}
}

func TestErrorIsError(t *testing.T) {
	e := NewError("boom %d", 1)
	if !IsError(e) {
		t.Errorf("IsError must report true for an *Error value")
	}
	if IsError(&Integer{Value: 1}) {
		t.Errorf("IsError must report false for a non-Error value")
	}
	if e.String() != "error: boom 1" {
		t.Errorf("Error.String() = %q, want %q", e.String(), "error: boom 1")
	}
}
