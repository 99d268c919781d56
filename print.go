package params

import (
	"fmt"
	"io"
	"strings"
)

// Print writes the description and every parameter's current value to w.
// Parameters with no value at all are shown as <unset>. The strict
// not-parsed guard and the implicit build apply as for reads.
func (p *Params) Print(w io.Writer) error {
	if err := p.ready(); err != nil {
		return err
	}
	fmt.Fprintln(w, p.description)
	for _, e := range p.entries {
		text, err := e.text()
		if err != nil {
			text = "<unset>"
		}
		fmt.Fprintf(w, "%s = %s\n", e.name, text)
	}
	return nil
}

// Help writes the description and every parameter's names, description, and
// default to w.
func (p *Params) Help(w io.Writer) error {
	if err := p.ready(); err != nil {
		return err
	}
	fmt.Fprintln(w, p.description)
	fmt.Fprintln(w, "Usage: program [parameter file] [--name value ...]")
	for _, e := range p.entries {
		names := append([]string{e.name}, e.aliases...)
		line := "  --" + strings.Join(names, ", --")
		if e.descr != "" {
			line += "\t" + e.descr
		}
		if e.cell.def != nil {
			line += fmt.Sprintf(" (default: %s)", *e.cell.def)
		}
		fmt.Fprintln(w, line)
	}
	return nil
}
