package transport

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"semitransport/pkg/fdint"
)

func TestComputeObservablesMatchesScalarModel(t *testing.T) {
	p := ModelParameters{
		TransportEdge:     0.1,
		ReducedFermiLevel: 0.5,
		Exponent:          1,
		Temperature:       300,
		SigmaE0:           2.5e4,
	}

	obs, err := ComputeObservables(p)
	require.NoError(t, err)

	seeb, err := Seebeck(p.ReducedFermiLevel, p.Exponent)
	require.NoError(t, err)
	cond, err := Conductivity(p.ReducedFermiLevel, p.Exponent, p.SigmaE0)
	require.NoError(t, err)

	assert.Equal(t, seeb, obs.Seebeck)
	assert.Equal(t, cond, obs.Conductivity)

	// pure evaluation: same parameters, same observables
	again, err := ComputeObservables(p)
	require.NoError(t, err)
	assert.Equal(t, obs, again)
}

func TestComputeObservablesRejectsBadParameters(t *testing.T) {
	var numErr *fdint.NumericalError

	for _, p := range []ModelParameters{
		{ReducedFermiLevel: 0, Exponent: 1, Temperature: 0, SigmaE0: 1e4},
		{ReducedFermiLevel: 0, Exponent: 1, Temperature: -50, SigmaE0: 1e4},
		{ReducedFermiLevel: 0, Exponent: -2, Temperature: 300, SigmaE0: 1e4},
	} {
		_, err := ComputeObservables(p)
		require.Error(t, err, "parameters %+v", p)
		assert.ErrorAs(t, err, &numErr)
	}
}

func TestIntegrals(t *testing.T) {
	p := ModelParameters{ReducedFermiLevel: 1.5, Exponent: 1, Temperature: 300}

	res, err := Integrals(p)
	require.NoError(t, err)

	f1, err := fdint.Fdk(1, p.ReducedFermiLevel)
	require.NoError(t, err)
	assert.Equal(t, f1, res.Fs)
	assert.InEpsilon(t, math.Log1p(math.Exp(p.ReducedFermiLevel)), res.Fsm1, 1e-8)
}

// For s=0 the Fsm1 slot holds the limit of s*F_{s-1}, the occupation
// factor, which reproduces the analytic s=0 conductivity branch.
func TestIntegralsExponentZeroLimit(t *testing.T) {
	p := ModelParameters{ReducedFermiLevel: -0.5, Exponent: 0, Temperature: 300, SigmaE0: 1e4}

	res, err := Integrals(p)
	require.NoError(t, err)

	cond, err := Conductivity(p.ReducedFermiLevel, 0, p.SigmaE0)
	require.NoError(t, err)
	assert.InEpsilon(t, cond, p.SigmaE0*res.Fsm1, 1e-12)
}
