package models

import (
	"fmt"
	"strconv"
	"strings"
)

// ValueKind enumerates the normalized value shapes the comparison understands.
type ValueKind int

const (
	KindNone ValueKind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindList
)

// Value is the canonical, comparable form of a setting value. Both the
// authoritative default and a locally parsed literal are reduced to a Value
// before equality is decided.
type Value struct {
	Kind  ValueKind
	Bool  bool
	Int   int64
	Float float64
	Str   string
	List  []Value
}

func NoneValue() Value           { return Value{Kind: KindNone} }
func BoolValue(b bool) Value     { return Value{Kind: KindBool, Bool: b} }
func IntValue(i int64) Value     { return Value{Kind: KindInt, Int: i} }
func FloatValue(f float64) Value { return Value{Kind: KindFloat, Float: f} }
func StringValue(s string) Value { return Value{Kind: KindString, Str: s} }
func ListValue(vs []Value) Value { return Value{Kind: KindList, List: vs} }

// Equal reports whether two normalized values are the same. Ints and floats
// compare across kinds, matching the host dialect where 1 == 1.0.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		if v.Kind == KindInt && o.Kind == KindFloat {
			return float64(v.Int) == o.Float
		}
		if v.Kind == KindFloat && o.Kind == KindInt {
			return v.Float == float64(o.Int)
		}
		return false
	}
	switch v.Kind {
	case KindNone:
		return true
	case KindBool:
		return v.Bool == o.Bool
	case KindInt:
		return v.Int == o.Int
	case KindFloat:
		return v.Float == o.Float
	case KindString:
		return v.Str == o.Str
	case KindList:
		if len(v.List) != len(o.List) {
			return false
		}
		for i := range v.List {
			if !v.List[i].Equal(o.List[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// String renders the value the way the host's config dialect would spell it,
// for display in the report.
func (v Value) String() string {
	switch v.Kind {
	case KindNone:
		return "None"
	case KindBool:
		if v.Bool {
			return "True"
		}
		return "False"
	case KindInt:
		return strconv.FormatInt(v.Int, 10)
	case KindFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case KindString:
		s := strings.ReplaceAll(v.Str, `\`, `\\`)
		s = strings.ReplaceAll(s, `'`, `\'`)
		return "'" + s + "'"
	case KindList:
		elems := make([]string, len(v.List))
		for i, e := range v.List {
			elems[i] = e.String()
		}
		return "[" + strings.Join(elems, ", ") + "]"
	}
	return ""
}

// ValueFromYAML converts a YAML-typed default (as decoded from the settings
// manifest) into a Value. Defaults that have no literal equivalent, such as
// mappings, yield ErrUnresolvable and the comparison is reported as
// unverifiable.
func ValueFromYAML(v interface{}) (Value, error) {
	switch t := v.(type) {
	case nil:
		return NoneValue(), nil
	case bool:
		return BoolValue(t), nil
	case int:
		return IntValue(int64(t)), nil
	case int64:
		return IntValue(t), nil
	case uint64:
		return IntValue(int64(t)), nil
	case float32:
		return FloatValue(float64(t)), nil
	case float64:
		return FloatValue(t), nil
	case string:
		return StringValue(t), nil
	case []interface{}:
		elems := make([]Value, 0, len(t))
		for _, e := range t {
			ev, err := ValueFromYAML(e)
			if err != nil {
				return Value{}, err
			}
			elems = append(elems, ev)
		}
		return ListValue(elems), nil
	default:
		return Value{}, fmt.Errorf("%w: default of type %T", ErrUnresolvable, v)
	}
}
