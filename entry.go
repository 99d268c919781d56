package params

import "fmt"

// cell is the shared storage for one logical parameter: its declared type,
// its current textual value, its default, and the flag-layer state. All
// names of an alias group reference the same cell.
type cell struct {
	typ  Type
	raw  *string // textual value from the command line or the parameter file
	def  *string // canonical default text supplied at definition time
	set  bool    // raw was written by command-line parsing, not file merge
	diag string  // flag-layer syntax diagnostic; non-empty poisons every read
}

// Entry is a named parameter bound to one cell. One Entry exists per alias
// group; every name of the group resolves to it, so reading any alias
// observes the same value.
type Entry struct {
	name    string   // first name given at definition
	aliases []string // additional names, in definition order
	descr   string
	cell    *cell
}

// Name returns the primary name, the first name given at definition.
func (e *Entry) Name() string { return e.name }

// Aliases returns the additional names bound to this parameter.
func (e *Entry) Aliases() []string { return append([]string(nil), e.aliases...) }

// Description returns the user-facing description.
func (e *Entry) Description() string { return e.descr }

// Type returns the declared type.
func (e *Entry) Type() Type { return e.cell.typ }

// IsSet reports whether an explicit command-line value was parsed for this
// parameter. File-sourced and default values leave it false.
func (e *Entry) IsSet() bool { return e.cell.set }

// Optional reports whether a default was supplied at any point in the
// parameter's definition history.
func (e *Entry) Optional() bool { return e.cell.def != nil }

// Default returns the canonical default text, if any.
func (e *Entry) Default() (string, bool) {
	if e.cell.def == nil {
		return "", false
	}
	return *e.cell.def, true
}

// text resolves the parameter's textual value in precedence order: parsed or
// file-merged value first, then the default. A flag-layer syntax error or a
// missing value on a non-optional parameter fails with ErrValue.
func (e *Entry) text() (string, error) {
	if e.cell.diag != "" {
		return "", fmt.Errorf("%w: parameter %q: %s", ErrValue, e.name, e.cell.diag)
	}
	if e.cell.raw != nil {
		return *e.cell.raw, nil
	}
	if e.cell.def != nil {
		return *e.cell.def, nil
	}
	return "", fmt.Errorf("%w: no value provided for non-optional parameter %q", ErrValue, e.name)
}

// Set overrides the parameter's value after parsing. The value is serialized
// to the declared type's canonical text, stored as the current value, and any
// prior flag-layer error is cleared.
func (e *Entry) Set(v any) error {
	text, err := formatValue(e.cell.typ, v)
	if err != nil {
		return fmt.Errorf("parameter %q: %w", e.name, err)
	}
	e.cell.raw = &text
	e.cell.set = true
	e.cell.diag = ""
	return nil
}

// String returns the textual value. It never fails conversion: any parameter
// with a concrete value can be read as a string.
func (e *Entry) String() (string, error) { return e.text() }

// Int64 converts the textual value to an int64.
func (e *Entry) Int64() (int64, error) {
	text, err := e.text()
	if err != nil {
		return 0, err
	}
	return toInt64(text)
}

// Int converts the textual value to an int.
func (e *Entry) Int() (int, error) {
	v, err := e.Int64()
	return int(v), err
}

// Float64 converts the textual value to a float64.
func (e *Entry) Float64() (float64, error) {
	text, err := e.text()
	if err != nil {
		return 0, err
	}
	return toFloat64(text)
}

// Bool converts the textual value to a bool.
func (e *Entry) Bool() (bool, error) {
	text, err := e.text()
	if err != nil {
		return false, err
	}
	return toBool(text)
}

// Enum resolves the textual value against the parameter's enumeration table
// and returns the backing integer. The parameter must be declared as an
// enumeration.
func (e *Entry) Enum() (int, error) {
	if e.cell.typ.kind != KindEnum {
		return 0, fmt.Errorf("%w: parameter %q is not an enumeration", ErrConvert, e.name)
	}
	text, err := e.text()
	if err != nil {
		return 0, err
	}
	return toEnum(e.cell.typ.enum, text)
}

// Strings splits the textual value on "," into trimmed elements.
func (e *Entry) Strings() ([]string, error) {
	text, err := e.text()
	if err != nil {
		return nil, err
	}
	return toStrings(text), nil
}

// Int64s converts the textual value to a sequence of int64. Any element that
// fails to convert fails the whole read.
func (e *Entry) Int64s() ([]int64, error) {
	text, err := e.text()
	if err != nil {
		return nil, err
	}
	return toInt64s(text)
}

// Float64s converts the textual value to a sequence of float64.
func (e *Entry) Float64s() ([]float64, error) {
	text, err := e.text()
	if err != nil {
		return nil, err
	}
	return toFloat64s(text)
}

// Bools converts the textual value to a sequence of bool.
func (e *Entry) Bools() ([]bool, error) {
	text, err := e.text()
	if err != nil {
		return nil, err
	}
	return toBools(text)
}

// concrete returns the value converted to the parameter's own declared type.
// It reports ok=false when the parameter has no value at all.
func (e *Entry) concrete() (any, bool, error) {
	if _, err := e.text(); err != nil {
		if e.cell.diag == "" {
			return nil, false, nil // simply unset
		}
		return nil, false, err
	}
	var (
		v   any
		err error
	)
	switch e.cell.typ.kind {
	case KindString:
		v, err = e.String()
	case KindInt:
		v, err = e.Int64()
	case KindFloat:
		v, err = e.Float64()
	case KindBool:
		v, err = e.Bool()
	case KindEnum:
		v, err = e.Enum()
	case KindSeq:
		switch e.cell.typ.elem {
		case KindInt:
			v, err = e.Int64s()
		case KindFloat:
			v, err = e.Float64s()
		case KindBool:
			v, err = e.Bools()
		default:
			v, err = e.Strings()
		}
	}
	if err != nil {
		return nil, false, err
	}
	return v, true, nil
}
