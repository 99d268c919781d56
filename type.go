package params

// Typed convenience accessors. Each resolves the name through Get, so the
// strict guard, the implicit build, and the conversion rules all apply.

// String retrieves a parameter's textual value.
func (p *Params) String(name string) (string, error) {
	e, err := p.Get(name)
	if err != nil {
		return "", err
	}
	return e.String()
}

// Int64 retrieves a parameter converted to int64.
func (p *Params) Int64(name string) (int64, error) {
	e, err := p.Get(name)
	if err != nil {
		return 0, err
	}
	return e.Int64()
}

// Int retrieves a parameter converted to int.
func (p *Params) Int(name string) (int, error) {
	e, err := p.Get(name)
	if err != nil {
		return 0, err
	}
	return e.Int()
}

// Float64 retrieves a parameter converted to float64.
func (p *Params) Float64(name string) (float64, error) {
	e, err := p.Get(name)
	if err != nil {
		return 0, err
	}
	return e.Float64()
}

// Bool retrieves a parameter converted to bool.
func (p *Params) Bool(name string) (bool, error) {
	e, err := p.Get(name)
	if err != nil {
		return false, err
	}
	return e.Bool()
}

// Enum retrieves an enumeration parameter's backing integer.
func (p *Params) Enum(name string) (int, error) {
	e, err := p.Get(name)
	if err != nil {
		return 0, err
	}
	return e.Enum()
}

// Strings retrieves a parameter as a sequence of strings.
func (p *Params) Strings(name string) ([]string, error) {
	e, err := p.Get(name)
	if err != nil {
		return nil, err
	}
	return e.Strings()
}

// Int64s retrieves a parameter as a sequence of int64.
func (p *Params) Int64s(name string) ([]int64, error) {
	e, err := p.Get(name)
	if err != nil {
		return nil, err
	}
	return e.Int64s()
}

// Float64s retrieves a parameter as a sequence of float64.
func (p *Params) Float64s(name string) ([]float64, error) {
	e, err := p.Get(name)
	if err != nil {
		return nil, err
	}
	return e.Float64s()
}
