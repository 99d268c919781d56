package params

import (
	"fmt"
	"sort"
	"strings"
)

// Options configure a Params registry.
type Options struct {
	// Strict enables the lifecycle-ordering guard: any access, print, or
	// help request before the first successful Parse fails with
	// ErrNotParsed. New enables it; disable it only when the guard's cost
	// matters, never for correctness.
	Strict bool
}

// Params is the parameter registry. It owns every defined parameter, the
// name index, and the parse/build lifecycle. The registry is not safe for
// concurrent mutation; see the package documentation.
type Params struct {
	description string
	strict      bool

	index   map[string]*Entry
	entries []*Entry // distinct entries, one per alias group, definition order

	tokens []string // retained token list from the last Parse, program name first
	parsed bool
	built  bool
	help   bool

	filePath string // parameter file path bound from the first positional
}

// New creates a registry with the given user-facing description and strict
// lifecycle checking enabled.
func New(description string) *Params {
	return NewWithOptions(description, Options{Strict: true})
}

// NewWithOptions creates a registry with explicit options.
func NewWithOptions(description string, opts Options) *Params {
	return &Params{
		description: description,
		strict:      opts.Strict,
		index:       make(map[string]*Entry),
	}
}

// Description returns the registry's user-facing description.
func (p *Params) Description() string { return p.description }

// Define declares a parameter of the given type with no default. The name
// may contain several comma-separated names; the first is the primary name
// and the rest are aliases bound to the same value. Define may be called in
// any lifecycle state and any number of times; see the redefinition rules in
// the package documentation.
func (p *Params) Define(typ Type, name, description string) error {
	return p.define(typ, name, description, nil)
}

// DefineDefault declares a parameter with a default value. The default is
// serialized to the declared type's canonical text. Supplying a default for
// an already-defined parameter makes the whole alias group optional; a later
// Define without a default never takes optionality away.
func (p *Params) DefineDefault(typ Type, name, description string, def any) error {
	text, err := formatValue(typ, def)
	if err != nil {
		return fmt.Errorf("default for %q: %w", name, err)
	}
	return p.define(typ, name, description, &text)
}

func (p *Params) define(typ Type, name, description string, def *string) error {
	if err := typ.valid(); err != nil {
		return err
	}
	names, err := splitNames(name)
	if err != nil {
		return err
	}

	// Partition into new and existing names. Every existing name must carry
	// the requested type and resolve to the same entry, otherwise the call
	// would silently change a type or collapse two parameters into one.
	var existing *Entry
	for _, n := range names {
		e, ok := p.index[n]
		if !ok {
			continue
		}
		if !e.cell.typ.equal(typ) {
			return fmt.Errorf("%w: parameter %q already defined as %s, redefined as %s",
				ErrRedefinition, n, e.cell.typ, typ)
		}
		if existing != nil && existing != e {
			return fmt.Errorf("%w: names %q resolve to two distinct parameters %q and %q",
				ErrRedefinition, name, existing.name, e.name)
		}
		existing = e
	}

	if existing == nil {
		e := &Entry{
			name:    names[0],
			aliases: names[1:],
			descr:   description,
			cell:    &cell{typ: typ, def: def},
		}
		p.entries = append(p.entries, e)
		for _, n := range names {
			p.index[n] = e
		}
	} else {
		if def != nil {
			existing.cell.def = def
		}
		existing.descr = description
		for _, n := range names {
			if _, ok := p.index[n]; !ok {
				existing.aliases = append(existing.aliases, n)
				p.index[n] = existing
			}
		}
	}

	p.built = false
	return nil
}

// splitNames splits a definition name on "," into the primary name and its
// aliases. An empty name, or an empty name inside the list, is ErrName. A
// name repeated within one definition counts once.
func splitNames(name string) ([]string, error) {
	parts := strings.Split(name, ",")
	names := make([]string, 0, len(parts))
	seen := make(map[string]bool, len(parts))
	for _, part := range parts {
		n := strings.TrimSpace(part)
		if n == "" {
			return nil, fmt.Errorf("%w: in definition %q", ErrName, name)
		}
		if seen[n] {
			continue
		}
		seen[n] = true
		names = append(names, n)
	}
	return names, nil
}

// Parse consumes an argv-style token list whose first element is the program
// name, retains it, and runs Build. It returns false when the command line
// requested help with -?; the caller should then print help and stop instead
// of reading values.
func (p *Params) Parse(argv []string) (bool, error) {
	if len(argv) == 0 {
		return false, fmt.Errorf("%w: empty argument list", ErrParse)
	}
	p.tokens = append([]string(nil), argv...)
	p.built = false
	helpRequested, err := p.Build()
	if err != nil {
		return false, err
	}
	p.parsed = true
	return !helpRequested, nil
}

// ParseString tokenizes a single command line and parses it. The first token
// must be the program name.
func (p *Params) ParseString(line string) (bool, error) {
	tokens, err := Tokenize(line)
	if err != nil {
		return false, err
	}
	return p.Parse(tokens)
}

// Build finalizes the registry for reading: it re-binds raw command-line
// values from the retained tokens against the current name index, then
// merges parameter-file values into every parameter the command line left
// unset. Build is idempotent and is re-run automatically after Define calls.
// It returns true without merging when the command line requested help.
func (p *Params) Build() (bool, error) {
	var res scanResult
	if len(p.tokens) > 1 {
		res = scanTokens(p.tokens[1:])
	} else {
		res = scanResult{raw: map[string]string{}, diag: map[string]string{}}
	}

	p.filePath = ""
	if len(res.positional) > 0 {
		p.filePath = res.positional[0]
	}

	p.help = res.help
	if res.help {
		return true, nil
	}

	p.bind(res)

	if p.filePath != "" {
		if err := p.mergeFile(p.filePath); err != nil {
			return false, err
		}
	}

	p.built = true
	return false, nil
}

// bind writes scanned raw values into the cells of currently defined
// parameters. Any name of an alias group satisfies the group.
func (p *Params) bind(res scanResult) {
	for _, e := range p.entries {
		for _, n := range append([]string{e.name}, e.aliases...) {
			if v, ok := res.raw[n]; ok {
				value := v
				e.cell.raw = &value
				e.cell.set = true
				e.cell.diag = ""
				break
			}
			if d, ok := res.diag[n]; ok && !e.cell.set {
				e.cell.diag = d
			}
		}
	}
}

// Get resolves a name to its parameter entry, building first if needed. In
// strict mode any access before the first Parse fails with ErrNotParsed; an
// unknown name fails with ErrNotFound.
func (p *Params) Get(name string) (*Entry, error) {
	if err := p.ready(); err != nil {
		return nil, err
	}
	e, ok := p.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: parameter %q", ErrNotFound, name)
	}
	return e, nil
}

// ready applies the strict lifecycle guard and triggers the implicit build.
func (p *Params) ready() error {
	if p.strict && !p.parsed {
		return fmt.Errorf("%w: call Parse first", ErrNotParsed)
	}
	if !p.built {
		if _, err := p.Build(); err != nil {
			return err
		}
	}
	return nil
}

// HelpRequested reports whether the last parsed command line contained -?.
func (p *Params) HelpRequested() bool { return p.help }

// FilePath returns the parameter file path bound from the first positional
// argument, if any.
func (p *Params) FilePath() string { return p.filePath }

// Entries returns the distinct parameters, one per alias group, in
// definition order.
func (p *Params) Entries() []*Entry {
	return append([]*Entry(nil), p.entries...)
}

// Len returns the number of distinct parameters.
func (p *Params) Len() int { return len(p.entries) }

// Names returns every registered name, primary names and aliases alike,
// sorted.
func (p *Params) Names() []string {
	names := make([]string, 0, len(p.index))
	for n := range p.index {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
