// Package value defines the tagged-union runtime value type for the mal
// interpreter: nil, booleans, integers, strings, keywords, symbols, lists,
// vectors, hash maps, errors, builtins, and closures.
package value

import "fmt"

// KeywordMarker is the non-printable prefix that distinguishes a keyword
// from an ordinary string at the representation level. Keywords are never
// a distinct Go type; they are strings that begin with this rune.
const KeywordMarker = 'ʞ'

// Value is implemented by every mal runtime value.
type Value interface {
	// Type returns a short, stable tag naming the variant (e.g. "integer",
	// "list"). Used for type tests and error messages.
	Type() string

	// String renders the value for printing. Callers needing readable vs.
	// non-readable rendering go through the printer package, not this
	// method directly; String gives the non-readable form.
	String() string
}

// Nil is the sole unit value.
type Nil struct{}

func (Nil) Type() string   { return "nil" }
func (Nil) String() string { return "nil" }

// NilValue is the single shared Nil instance; mal's nil is never allocated
// per-occurrence since it carries no data.
var NilValue = Nil{}

// Boolean is mal's true/false.
type Boolean struct {
	Value bool
}

func (b *Boolean) Type() string { return "boolean" }
func (b *Boolean) String() string {
	if b.Value {
		return "true"
	}
	return "false"
}

// True and False are the two shared Boolean instances.
var (
	True  = &Boolean{Value: true}
	False = &Boolean{Value: false}
)

// BoolOf returns the shared True or False instance for a Go bool.
func BoolOf(b bool) *Boolean {
	if b {
		return True
	}
	return False
}

// Integer is a signed 64-bit integer.
type Integer struct {
	Value int64
}

func (i *Integer) Type() string   { return "integer" }
func (i *Integer) String() string { return fmt.Sprintf("%d", i.Value) }

// String is an owned Unicode string, opaque to the evaluator.
type String struct {
	Value string
}

func (s *String) Type() string   { return "string" }
func (s *String) String() string { return s.Value }

// IsKeyword reports whether s carries the keyword marker prefix.
func (s *String) IsKeyword() bool {
	return len(s.Value) > 0 && []rune(s.Value)[0] == KeywordMarker
}

// NewKeyword builds a keyword value (a marker-prefixed String) from a bare
// name, i.e. the part after the leading ':'.
func NewKeyword(name string) *String {
	return &String{Value: string(KeywordMarker) + name}
}

// KeywordName strips the marker prefix, returning the bare name. Only
// meaningful when IsKeyword() is true.
func (s *String) KeywordName() string {
	r := []rune(s.Value)
	return string(r[1:])
}

// Symbol is an identifier looked up in the environment.
type Symbol struct {
	Name string
}

func (s *Symbol) Type() string   { return "symbol" }
func (s *Symbol) String() string { return s.Name }

// Seq is the common shape of List and Vector: an ordered sequence of
// values. Application (the head-applies-to-tail rule) is specific to List.
type Seq interface {
	Value
	Items() []Value
}

// List is the ordered application form.
type List struct {
	Elements []Value
}

func (l *List) Type() string   { return "list" }
func (l *List) Items() []Value { return l.Elements }
func (l *List) String() string { return joinSeq("(", l.Elements, ")") }

// Vector is an ordered sequence that is never applied.
type Vector struct {
	Elements []Value
}

func (v *Vector) Type() string   { return "vector" }
func (v *Vector) Items() []Value { return v.Elements }
func (v *Vector) String() string { return joinSeq("[", v.Elements, "]") }

func joinSeq(open string, elems []Value, close string) string {
	out := open
	for i, e := range elems {
		if i > 0 {
			out += " "
		}
		out += e.String()
	}
	return out + close
}

// HashMap maps string/keyword keys to values. Key order is not significant;
// Keys preserves insertion order only so that printing is deterministic
// within a single process run.
type HashMap struct {
	Keys   []string
	Values map[string]Value
}

// NewHashMap builds an empty hash map ready for Set.
func NewHashMap() *HashMap {
	return &HashMap{Values: make(map[string]Value)}
}

func (h *HashMap) Type() string { return "hash-map" }

// Set inserts or overwrites a key, preserving first-insertion order.
func (h *HashMap) Set(key string, val Value) {
	if _, exists := h.Values[key]; !exists {
		h.Keys = append(h.Keys, key)
	}
	h.Values[key] = val
}

func (h *HashMap) String() string {
	out := "{"
	for i, k := range h.Keys {
		if i > 0 {
			out += " "
		}
		out += keyString(k) + " " + h.Values[k].String()
	}
	return out + "}"
}

func keyString(k string) string {
	r := []rune(k)
	if len(r) > 0 && r[0] == KeywordMarker {
		return ":" + string(r[1:])
	}
	return k
}

// Error is a first-class error sentinel that flows through evaluation like
// any other value.
type Error struct {
	Message string
}

func (e *Error) Type() string   { return "error" }
func (e *Error) String() string { return "error: " + e.Message }

// NewError builds an Error value from a formatted message.
func NewError(format string, args ...any) *Error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}

// BuiltinFn is the signature every native procedure implements.
type BuiltinFn func(args []Value) Value

// Builtin wraps a native Go function as a callable mal value.
type Builtin struct {
	Name string
	Fn   BuiltinFn
}

func (b *Builtin) Type() string   { return "builtin" }
func (b *Builtin) String() string { return "#<builtin fn>" }

// Env is the minimal interface Closure needs from an environment, avoiding
// an import cycle between value and env.
type Env interface {
	NewChildWithBinds(params []string, rest string, args []Value) (Env, *Error)
}

// Closure is a user-defined procedure.
type Closure struct {
	Params []string // positional parameter names, "&"-rest already stripped
	Rest   string    // rest-parameter name, "" if the closure takes no &-rest
	Body   Value
	Env    Env
}

func (c *Closure) Type() string   { return "closure" }
func (c *Closure) String() string { return "#<function>" }

// IsError reports whether v is an Error value, the short-circuit test used
// throughout the evaluator.
func IsError(v Value) bool {
	_, ok := v.(*Error)
	return ok
}

// IsTruthy implements mal's truthiness: everything except nil and false is
// truthy (notably, the integer 0 is truthy).
func IsTruthy(v Value) bool {
	switch vv := v.(type) {
	case Nil:
		return false
	case *Boolean:
		return vv.Value
	default:
		return true
	}
}

// Equal implements mal's structural equality (spec §4.5): Nil=Nil; scalars
// by value; List/Vector compare element-wise and cross-compare; HashMap by
// keys and values; functions never equal anything.
func Equal(a, b Value) bool {
	aSeq, aIsSeq := a.(Seq)
	bSeq, bIsSeq := b.(Seq)
	if aIsSeq && bIsSeq {
		return equalSeq(aSeq.Items(), bSeq.Items())
	}

	switch av := a.(type) {
	case Nil:
		_, ok := b.(Nil)
		return ok
	case *Boolean:
		bv, ok := b.(*Boolean)
		return ok && av.Value == bv.Value
	case *Integer:
		bv, ok := b.(*Integer)
		return ok && av.Value == bv.Value
	case *String:
		bv, ok := b.(*String)
		return ok && av.Value == bv.Value
	case *Symbol:
		bv, ok := b.(*Symbol)
		return ok && av.Name == bv.Name
	case *Error:
		bv, ok := b.(*Error)
		return ok && av.Message == bv.Message
	case *HashMap:
		bv, ok := b.(*HashMap)
		if !ok || len(av.Keys) != len(bv.Keys) {
			return false
		}
		for k, v := range av.Values {
			ov, exists := bv.Values[k]
			if !exists || !Equal(v, ov) {
				return false
			}
		}
		return true
	default:
		// Builtin and Closure never equal anything, including themselves.
		return false
	}
}

func equalSeq(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
