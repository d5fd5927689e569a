// Package value holds the loosely typed values stored in the timectl document.
//
// Every value is one of a closed set of kinds. Mappings keep insertion order so
// that a document read from disk and written back keeps its keys where the user
// put them.
package value

import (
	"fmt"
	"strconv"
)

type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindMap
	KindSeq
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindInt:
		return "integer"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindMap:
		return "mapping"
	case KindSeq:
		return "sequence"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Value is a tagged variant. The zero Value is null.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	m    *Map
	seq  []Value
}

func Null() Value { return Value{} }
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }
func Int(i int64) Value { return Value{kind: KindInt, i: i} }
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }
func String(s string) Value { return Value{kind: KindString, s: s} }
func FromMap(m *Map) Value { return Value{kind: KindMap, m: m} }
func Seq(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{kind: KindSeq, seq: items}
}

func (v Value) Kind() Kind { return v.kind }
func (v Value) IsNull() bool { return v.kind == KindNull }
func (v Value) IsMap() bool { return v.kind == KindMap }

func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }
func (v Value) AsInt() (int64, bool) { return v.i, v.kind == KindInt }
func (v Value) AsFloat() (float64, bool) { return v.f, v.kind == KindFloat }
func (v Value) AsString() (string, bool) { return v.s, v.kind == KindString }
func (v Value) AsMap() (*Map, bool) { return v.m, v.kind == KindMap && v.m != nil }
func (v Value) AsSeq() ([]Value, bool) { return v.seq, v.kind == KindSeq }

// Clone returns a deep copy. Scalars are copied by value.
func (v Value) Clone() Value {
	switch v.kind {
	case KindMap:
		return FromMap(v.m.Clone())
	case KindSeq:
		out := make([]Value, len(v.seq))
		for i, item := range v.seq {
			out[i] = item.Clone()
		}
		return Value{kind: KindSeq, seq: out}
	}
	return v
}

// Equal reports structural equality. Mapping order is significant.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == other.b
	case KindInt:
		return v.i == other.i
	case KindFloat:
		return v.f == other.f
	case KindString:
		return v.s == other.s
	case KindMap:
		return v.m.Equal(other.m)
	case KindSeq:
		if len(v.seq) != len(other.seq) {
			return false
		}
		for i := range v.seq {
			if !v.seq[i].Equal(other.seq[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// String renders scalars the way a user typed them. Containers render as JSON.
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return formatFloat(v.f)
	case KindString:
		return v.s
	}
	data, err := v.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("<%s>", v.kind)
	}
	return string(data)
}

func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	for _, c := range s {
		if c == '.' || c == 'e' || c == 'E' || c == 'N' || c == 'I' {
			return s
		}
	}
	return s + ".0"
}
