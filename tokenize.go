package params

import (
	"fmt"
	"strings"
)

// Tokenize splits a textual command line into tokens. The first token is the
// program name. Runs of spaces inside matching single or double quotes are
// preserved verbatim; the enclosing quote characters are stripped and quote
// characters of the other kind inside a quoted span are literal. An unmatched
// quote at end of input fails with ErrParse.
func Tokenize(line string) ([]string, error) {
	var (
		tokens   []string
		cur      strings.Builder
		inToken  bool
		inSingle bool
		inDouble bool
	)
	for _, r := range line {
		switch {
		case r == '\'' && !inDouble:
			inSingle = !inSingle
			inToken = true
		case r == '"' && !inSingle:
			inDouble = !inDouble
			inToken = true
		case r == ' ' && !inSingle && !inDouble:
			if inToken {
				tokens = append(tokens, cur.String())
				cur.Reset()
				inToken = false
			}
		default:
			cur.WriteRune(r)
			inToken = true
		}
	}
	if inSingle || inDouble {
		return nil, fmt.Errorf("%w: unmatched quote in arguments string", ErrParse)
	}
	if inToken {
		tokens = append(tokens, cur.String())
	}
	if len(tokens) == 0 {
		return nil, fmt.Errorf("%w: empty command line", ErrParse)
	}
	return tokens, nil
}
