package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/notargets/godisloc/InputParameters"
	"github.com/notargets/godisloc/okada"
)

func TestRunRect(t *testing.T) {
	var (
		err error
	)
	fileInput := []byte(`
Title: Test Case
ShearModulus: 3.e10
PoissonRatio: 0.25
Patches:
  - [80, 50, 15, 45, 50, 440.58095043254673, 3940.114839963042, 0.01, 0.01, 0]
  - [80, 50, 15, 45, 50, 440.58095043254673, 3940.114839963042, 0.01, 0.01, 0]
Observations:
  - [454, 3943, 10]
  - [454, 3943, 0]
  - [454, 3943, 0]
`)
	var input InputParameters.InputParametersOkada
	require.NoError(t, input.Parse(fileInput))
	res, err := RunRect(&input, 2, 0, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, []okada.Flag{okada.FlagAboveSurface, okada.FlagAboveSurface}, res.Flags[0])
	assert.Equal(t, okada.FlagOK, res.PointFlag(1))
	assert.Equal(t, res.U[1], res.U[2])
	{ // Named flags
		var buf bytes.Buffer
		PrintResult(&buf, res, false)
		out := buf.String()
		for _, label := range []string{"U = ", "D = ", "S = ", "E = ", "flags = "} {
			assert.Contains(t, out, label)
		}
		assert.Contains(t, out, "[ABOVE_SURFACE ABOVE_SURFACE]")
		assert.Contains(t, out, "[OK OK]")
	}
	{ // Decimal flag codes
		var buf bytes.Buffer
		PrintResult(&buf, res, true)
		assert.Contains(t, buf.String(), "[1 1]\n[0 0]\n[0 0]\n")
	}
	{ // Invalid elastic constants are reported, not printed
		input.PoissonRatio = 0.5
		_, err = RunRect(&input, 1, 0, zap.NewNop())
		assert.ErrorIs(t, err, okada.ErrElasticConstants)
	}
	{ // Empty observation set
		var buf bytes.Buffer
		input.PoissonRatio, input.Observations = 0.25, nil
		res, err = RunRect(&input, 1, 0, zap.NewNop())
		require.NoError(t, err)
		PrintResult(&buf, res, true)
		assert.Contains(t, buf.String(), "U = \n[]\n")
	}
}

func TestNewLogger(t *testing.T) {
	for _, verbose := range []bool{false, true} {
		logger, err := NewLogger(verbose)
		require.NoError(t, err)
		assert.Equal(t, verbose, logger.Core().Enabled(zap.DebugLevel))
	}
}
