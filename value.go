package params

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies the basic shape of a parameter value.
type Kind uint8

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBool
	KindEnum
	KindSeq
)

// String returns the kind's name for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindEnum:
		return "enum"
	case KindSeq:
		return "sequence"
	}
	return "unknown"
}

// Type tags a parameter's declared type. Sequences carry their element kind,
// enumerations their name table. A parameter's Type is fixed at its first
// definition; redefining a name with a different Type fails with
// ErrRedefinition.
type Type struct {
	kind Kind
	elem Kind
	enum *EnumTable
}

// Scalar type tags.
var (
	TString = Type{kind: KindString}
	TInt    = Type{kind: KindInt}
	TFloat  = Type{kind: KindFloat}
	TBool   = Type{kind: KindBool}
)

// SeqOf returns the type tag for a homogeneous sequence of elem. Only scalar
// element types are supported; Define rejects anything else.
func SeqOf(elem Type) Type {
	return Type{kind: KindSeq, elem: elem.kind}
}

// Kind returns the type's basic kind.
func (t Type) Kind() Kind { return t.kind }

// String returns a readable form of the type for diagnostics.
func (t Type) String() string {
	switch t.kind {
	case KindSeq:
		return "sequence of " + t.elem.String()
	case KindEnum:
		if t.enum != nil {
			return "enum{" + strings.Join(t.enum.names, ",") + "}"
		}
		return "enum"
	}
	return t.kind.String()
}

// equal reports type identity. Two enum types are equal only when they share
// the same name table.
func (t Type) equal(o Type) bool {
	return t.kind == o.kind && t.elem == o.elem && t.enum == o.enum
}

// valid checks that a type tag is usable as a declared parameter type.
func (t Type) valid() error {
	switch t.kind {
	case KindEnum:
		if t.enum == nil {
			return fmt.Errorf("params: enum type without a name table")
		}
	case KindSeq:
		switch t.elem {
		case KindString, KindInt, KindFloat, KindBool:
		default:
			return fmt.Errorf("params: unsupported sequence element type %s", t.elem)
		}
	}
	return nil
}

// EnumTable maps enumeration names to their backing integers. The backing
// integer of a name is its position in the declaration order.
type EnumTable struct {
	names []string
	index map[string]int
}

// EnumOf declares an enumeration with the given names. Name resolution on
// read is case-sensitive.
func EnumOf(names ...string) *EnumTable {
	t := &EnumTable{
		names: append([]string(nil), names...),
		index: make(map[string]int, len(names)),
	}
	for i, n := range names {
		t.index[n] = i
	}
	return t
}

// Type returns the type tag for parameters of this enumeration.
func (t *EnumTable) Type() Type { return Type{kind: KindEnum, enum: t} }

// Names returns the declared names in order.
func (t *EnumTable) Names() []string { return append([]string(nil), t.names...) }

// Value resolves a name to its backing integer.
func (t *EnumTable) Value(name string) (int, bool) {
	v, ok := t.index[name]
	return v, ok
}

// Name returns the name backed by v.
func (t *EnumTable) Name(v int) (string, bool) {
	if v < 0 || v >= len(t.names) {
		return "", false
	}
	return t.names[v], true
}

// formatValue serializes a Go value to the canonical text of typ. It is used
// for defaults at definition time and for Set overrides.
func formatValue(typ Type, v any) (string, error) {
	if typ.kind == KindSeq {
		return formatSeq(typ, v)
	}
	return formatScalar(typ.kind, typ.enum, v)
}

func formatScalar(kind Kind, enum *EnumTable, v any) (string, error) {
	switch kind {
	case KindString:
		if s, ok := v.(string); ok {
			return s, nil
		}
		return fmt.Sprint(v), nil

	case KindInt:
		switch n := v.(type) {
		case int:
			return strconv.FormatInt(int64(n), 10), nil
		case int8:
			return strconv.FormatInt(int64(n), 10), nil
		case int16:
			return strconv.FormatInt(int64(n), 10), nil
		case int32:
			return strconv.FormatInt(int64(n), 10), nil
		case int64:
			return strconv.FormatInt(n, 10), nil
		case uint:
			return strconv.FormatUint(uint64(n), 10), nil
		case uint64:
			return strconv.FormatUint(n, 10), nil
		case string:
			if _, err := strconv.ParseInt(n, 10, 64); err != nil {
				return "", fmt.Errorf("%w: %q is not an int", ErrConvert, n)
			}
			return n, nil
		}

	case KindFloat:
		switch n := v.(type) {
		case float64:
			return strconv.FormatFloat(n, 'g', -1, 64), nil
		case float32:
			return strconv.FormatFloat(float64(n), 'g', -1, 32), nil
		case int:
			return strconv.FormatInt(int64(n), 10), nil
		case int64:
			return strconv.FormatInt(n, 10), nil
		case string:
			if _, err := strconv.ParseFloat(n, 64); err != nil {
				return "", fmt.Errorf("%w: %q is not a float", ErrConvert, n)
			}
			return n, nil
		}

	case KindBool:
		switch b := v.(type) {
		case bool:
			return strconv.FormatBool(b), nil
		case string:
			if _, err := strconv.ParseBool(b); err != nil {
				return "", fmt.Errorf("%w: %q is not a bool", ErrConvert, b)
			}
			return b, nil
		}

	case KindEnum:
		switch e := v.(type) {
		case string:
			if _, ok := enum.Value(e); !ok {
				return "", fmt.Errorf("%w: %q is not a name of %s", ErrConvert, e, Type{kind: KindEnum, enum: enum})
			}
			return e, nil
		case int:
			name, ok := enum.Name(e)
			if !ok {
				return "", fmt.Errorf("%w: %d is not a value of %s", ErrConvert, e, Type{kind: KindEnum, enum: enum})
			}
			return name, nil
		}
	}
	return "", fmt.Errorf("%w: cannot serialize %T as %s", ErrConvert, v, kind)
}

func formatSeq(typ Type, v any) (string, error) {
	var elems []any
	switch s := v.(type) {
	case string:
		// Already in joined textual form.
		return s, nil
	case []string:
		for _, e := range s {
			elems = append(elems, e)
		}
	case []int:
		for _, e := range s {
			elems = append(elems, e)
		}
	case []int64:
		for _, e := range s {
			elems = append(elems, e)
		}
	case []float64:
		for _, e := range s {
			elems = append(elems, e)
		}
	case []bool:
		for _, e := range s {
			elems = append(elems, e)
		}
	case []any:
		elems = s
	default:
		return "", fmt.Errorf("%w: cannot serialize %T as %s", ErrConvert, v, typ)
	}

	parts := make([]string, len(elems))
	for i, e := range elems {
		text, err := formatScalar(typ.elem, nil, e)
		if err != nil {
			return "", err
		}
		parts[i] = text
	}
	return strings.Join(parts, ","), nil
}
