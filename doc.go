// Package params provides a typed parameter registry that unifies command-line
// arguments and an optional parameter file into a single named-value store
// with deferred, type-safe access.
//
// Parameters are declared with Define or DefineDefault, may carry several
// comma-separated names bound to one shared value, and are filled in two
// steps: Parse records raw command-line values, Build merges file values into
// parameters the command line left unset. Values are kept textually and
// converted on read, so a parameter declared as an int can still be read as a
// string, and any textual value can be read as a sequence or enumeration.
//
// Precedence (highest to lowest):
//  1. Explicit command-line value (--name value, --name=value, -alias value)
//  2. Parameter file (first positional argument; INI, TOML, or YAML)
//  3. Default supplied at definition time
//
// Quick start:
//
//	p := params.New("my solver")
//	p.Define(params.TInt, "n", "number of iterations")
//	p.DefineDefault(params.TFloat, "mixing,m", "mixing weight", 0.5)
//	ok, err := p.ParseString(`solver input.ini --n 100`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !ok {
//	    p.Help(os.Stdout) // -? was given
//	    return
//	}
//	n, _ := p.Int64("n")
//	m, _ := p.Float64("m")
//
// The registry is single-threaded: Define, Parse, Build, and Set must not be
// called concurrently. A fully built registry that receives no further writes
// is safe to share between goroutines for reads.
package params
