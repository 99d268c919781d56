package params_test

import (
	"fmt"

	"params"
)

func Example() {
	p := params.New("quantum solver")
	p.Define(params.TInt, "n", "number of iterations")
	p.DefineDefault(params.TFloat, "mixing,m", "mixing weight", 0.5)
	p.Define(params.SeqOf(params.TString), "orbitals", "orbital labels")

	ok, err := p.ParseString("solver --n 100 --orbitals=s,p,d")
	if err != nil || !ok {
		return
	}

	n, _ := p.Int64("n")
	m, _ := p.Float64("m")
	orbitals, _ := p.Strings("orbitals")
	fmt.Println(n, m, orbitals)
	// Output: 100 0.5 [s p d]
}

func ExampleEnumTable() {
	grid := params.EnumOf("COARSE", "MEDIUM", "FINE")

	p := params.New("mesh generator")
	p.DefineDefault(grid.Type(), "resolution", "mesh resolution", "MEDIUM")

	if ok, err := p.ParseString("mesh --resolution FINE"); err != nil || !ok {
		return
	}

	r, _ := p.Enum("resolution")
	name, _ := grid.Name(r)
	fmt.Println(r, name)
	// Output: 2 FINE
}
