package params

import (
	"fmt"
	"os"
)

// ValidatorFunc validates a parsed and built registry. It runs after Build
// and should return an error when a value combination is unacceptable.
type ValidatorFunc func(p *Params) error

// Builder provides a fluent interface for declaring and parsing parameters
// in one chain.
type Builder struct {
	p          *Params
	argv       []string
	line       string
	err        error
	validators []ValidatorFunc
}

// NewBuilder creates a builder. Unless WithArgs or WithCommandLine is used,
// Build parses os.Args.
func NewBuilder() *Builder {
	return &Builder{p: New("")}
}

// WithDescription sets the registry's user-facing description.
func (b *Builder) WithDescription(description string) *Builder {
	b.p.description = description
	return b
}

// WithStrict toggles the lifecycle-ordering guard.
func (b *Builder) WithStrict(strict bool) *Builder {
	b.p.strict = strict
	return b
}

// Define declares a parameter without a default.
func (b *Builder) Define(typ Type, name, description string) *Builder {
	if b.err == nil {
		b.err = b.p.Define(typ, name, description)
	}
	return b
}

// DefineDefault declares a parameter with a default value.
func (b *Builder) DefineDefault(typ Type, name, description string, def any) *Builder {
	if b.err == nil {
		b.err = b.p.DefineDefault(typ, name, description, def)
	}
	return b
}

// WithArgs sets the argv-style token list to parse; the first element must
// be the program name.
func (b *Builder) WithArgs(argv []string) *Builder {
	b.argv = argv
	return b
}

// WithCommandLine sets a single textual command line to tokenize and parse.
func (b *Builder) WithCommandLine(line string) *Builder {
	b.line = line
	return b
}

// WithValidator appends a validation function, run after a successful parse.
// Validators are skipped when the command line requested help.
func (b *Builder) WithValidator(fn ValidatorFunc) *Builder {
	b.validators = append(b.validators, fn)
	return b
}

// Build parses the configured command line and returns the registry ready
// for reading. On help request the registry is returned with HelpRequested
// set and no validators run.
func (b *Builder) Build() (*Params, error) {
	if b.err != nil {
		return nil, b.err
	}

	argv := b.argv
	if b.line != "" {
		tokens, err := Tokenize(b.line)
		if err != nil {
			return nil, err
		}
		argv = tokens
	}
	if argv == nil {
		argv = os.Args
	}

	ok, err := b.p.Parse(argv)
	if err != nil {
		return nil, err
	}
	if !ok {
		return b.p, nil
	}

	for _, validate := range b.validators {
		if err := validate(b.p); err != nil {
			return nil, fmt.Errorf("validation failed: %w", err)
		}
	}
	return b.p, nil
}

// MustBuild is like Build but panics on error.
func (b *Builder) MustBuild() *Params {
	p, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("params initialization failed: %v", err))
	}
	return p
}
