package params

import (
	"fmt"
	"strings"
)

// scanResult is the raw outcome of one pass over the command-line tokens
// after the program name: textual values keyed by the name they were given
// under, per-name syntax diagnostics, positional arguments, and whether help
// was requested.
type scanResult struct {
	raw        map[string]string
	diag       map[string]string
	positional []string
	help       bool
}

// scanTokens walks the tokens once, left to right. Every "--name value",
// "--name=value", and "-alias value" records a raw value under that name,
// whether or not the name is currently defined; undefined names are simply
// never read back unless a later definition binds them. A named argument
// with no following value token records a diagnostic instead. Tokens that do
// not introduce a name are positional; the first positional is the parameter
// file path.
func scanTokens(args []string) scanResult {
	res := scanResult{
		raw:  make(map[string]string),
		diag: make(map[string]string),
	}
	for i := 0; i < len(args); i++ {
		tok := args[i]
		switch {
		case tok == "-?":
			res.help = true

		case isFlag(tok):
			name := strings.TrimLeft(tok, "-")
			if eq := strings.IndexByte(name, '='); eq >= 0 {
				res.raw[name[:eq]] = name[eq+1:]
				continue
			}
			if i+1 < len(args) && !isFlag(args[i+1]) {
				res.raw[name] = args[i+1]
				i++
				continue
			}
			res.diag[name] = fmt.Sprintf("missing value for argument %q", tok)

		default:
			res.positional = append(res.positional, tok)
		}
	}
	return res
}

// isFlag reports whether tok introduces a named argument. A dash followed by
// a digit or a dot is a negative number and counts as a value.
func isFlag(tok string) bool {
	if len(tok) < 2 || tok[0] != '-' {
		return false
	}
	rest := strings.TrimLeft(tok, "-")
	if rest == "" {
		return false
	}
	c := rest[0]
	if c >= '0' && c <= '9' {
		return false
	}
	return c != '.'
}
