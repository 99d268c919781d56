package params

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder(t *testing.T) {
	t.Run("Fluent", func(t *testing.T) {
		p, err := NewBuilder().
			WithDescription("solver").
			DefineDefault(TInt, "n,iterations", "iteration count", 3).
			DefineDefault(TFloat, "mixing", "mixing weight", 0.5).
			WithCommandLine("solver --n 7").
			Build()
		require.NoError(t, err)

		assert.Equal(t, "solver", p.Description())
		n, err := p.Int64("iterations")
		require.NoError(t, err)
		assert.Equal(t, int64(7), n)

		m, err := p.Float64("mixing")
		require.NoError(t, err)
		assert.Equal(t, 0.5, m)
	})

	t.Run("WithArgs", func(t *testing.T) {
		p, err := NewBuilder().
			Define(TString, "mode", "run mode").
			WithArgs([]string{"prog", "--mode", "fast"}).
			Build()
		require.NoError(t, err)

		mode, err := p.String("mode")
		require.NoError(t, err)
		assert.Equal(t, "fast", mode)
	})

	t.Run("DefineErrorSurfaces", func(t *testing.T) {
		_, err := NewBuilder().
			Define(TInt, "x", "value").
			Define(TFloat, "x", "redefined with another type").
			WithArgs([]string{"prog"}).
			Build()
		assert.ErrorIs(t, err, ErrRedefinition)
	})

	t.Run("ValidatorRuns", func(t *testing.T) {
		_, err := NewBuilder().
			DefineDefault(TInt, "n", "count", 0).
			WithArgs([]string{"prog"}).
			WithValidator(func(p *Params) error {
				n, err := p.Int64("n")
				if err != nil {
					return err
				}
				if n <= 0 {
					return fmt.Errorf("n must be positive, got %d", n)
				}
				return nil
			}).
			Build()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "n must be positive")
	})

	t.Run("ValidatorsSkippedOnHelp", func(t *testing.T) {
		p, err := NewBuilder().
			DefineDefault(TInt, "n", "count", 0).
			WithCommandLine("prog -?").
			WithValidator(func(p *Params) error {
				return fmt.Errorf("must not run")
			}).
			Build()
		require.NoError(t, err)
		assert.True(t, p.HelpRequested())
	})

	t.Run("MustBuildPanics", func(t *testing.T) {
		assert.Panics(t, func() {
			NewBuilder().
				Define(TInt, "", "empty name").
				WithArgs([]string{"prog"}).
				MustBuild()
		})
	})
}
