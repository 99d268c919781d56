package params

import "fmt"

// View is a read-only accessor over a registry. Unlike Params.Get it never
// triggers an implicit Build, so code holding a View cannot cause file I/O
// as a side effect of a value read; accessing a registry that has not been
// built yet fails with ErrNotBuilt instead.
type View struct {
	p *Params
}

// View returns a read-only accessor bound to the registry.
func (p *Params) View() *View { return &View{p: p} }

// Get resolves a name without building.
func (v *View) Get(name string) (*Entry, error) {
	if v.p.strict && !v.p.parsed {
		return nil, fmt.Errorf("%w: call Parse first", ErrNotParsed)
	}
	if !v.p.built {
		return nil, fmt.Errorf("%w: call Build first", ErrNotBuilt)
	}
	e, ok := v.p.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: parameter %q", ErrNotFound, name)
	}
	return e, nil
}

// String retrieves a parameter's textual value.
func (v *View) String(name string) (string, error) {
	e, err := v.Get(name)
	if err != nil {
		return "", err
	}
	return e.String()
}

// Int64 retrieves a parameter converted to int64.
func (v *View) Int64(name string) (int64, error) {
	e, err := v.Get(name)
	if err != nil {
		return 0, err
	}
	return e.Int64()
}

// Int retrieves a parameter converted to int.
func (v *View) Int(name string) (int, error) {
	e, err := v.Get(name)
	if err != nil {
		return 0, err
	}
	return e.Int()
}

// Float64 retrieves a parameter converted to float64.
func (v *View) Float64(name string) (float64, error) {
	e, err := v.Get(name)
	if err != nil {
		return 0, err
	}
	return e.Float64()
}

// Bool retrieves a parameter converted to bool.
func (v *View) Bool(name string) (bool, error) {
	e, err := v.Get(name)
	if err != nil {
		return false, err
	}
	return e.Bool()
}

// Enum retrieves an enumeration parameter's backing integer.
func (v *View) Enum(name string) (int, error) {
	e, err := v.Get(name)
	if err != nil {
		return 0, err
	}
	return e.Enum()
}

// Strings retrieves a parameter as a sequence of strings.
func (v *View) Strings(name string) ([]string, error) {
	e, err := v.Get(name)
	if err != nil {
		return nil, err
	}
	return e.Strings()
}

// Int64s retrieves a parameter as a sequence of int64.
func (v *View) Int64s(name string) ([]int64, error) {
	e, err := v.Get(name)
	if err != nil {
		return nil, err
	}
	return e.Int64s()
}

// Float64s retrieves a parameter as a sequence of float64.
func (v *View) Float64s(name string) ([]float64, error) {
	e, err := v.Get(name)
	if err != nil {
		return nil, err
	}
	return e.Float64s()
}
