package params

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrint(t *testing.T) {
	p := New("DESCR")
	require.NoError(t, p.DefineDefault(TInt, "b", "B value", 5))
	require.NoError(t, p.Define(TInt, "c", "C value"))
	_, err := p.ParseString("test --b 9")
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, p.Print(&buf))

	out := buf.String()
	assert.Contains(t, out, "DESCR")
	assert.Contains(t, out, "b = 9")
	assert.Contains(t, out, "c = <unset>")
}

func TestHelpOutput(t *testing.T) {
	p := New("DESCR")
	require.NoError(t, p.DefineDefault(TInt, "b,beta", "B value", 5))
	_, err := p.ParseString("test")
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, p.Help(&buf))

	out := buf.String()
	assert.Contains(t, out, "DESCR")
	assert.Contains(t, out, "--b, --beta")
	assert.Contains(t, out, "B value")
	assert.Contains(t, out, "(default: 5)")
}

func TestPrintAndHelpWithNoParameters(t *testing.T) {
	p := New("DESCR")
	_, err := p.ParseString("test ")
	require.NoError(t, err)

	var buf strings.Builder
	assert.NoError(t, p.Print(&buf))
	assert.NoError(t, p.Help(&buf))
}
