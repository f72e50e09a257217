package transport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"

	"semitransport/internal/consts"
)

// Tabulated power-law transport function above a transport edge, on a grid
// dense and wide enough for the trapezoid rule.
func powerLawGrid(edge, s, sigma_E_0, T float64) (energy, sigma_E []float64) {
	energy = make([]float64, 4001)
	floats.Span(energy, edge, edge+1.0)
	sigma_E = PowerLawSigmaE(energy, edge, s, sigma_E_0, T)
	return energy, sigma_E
}

// Feeding the numeric model a power-law sigma_E must reproduce the closed
// power-law model: integration by parts turns the -df/dE weighting into
// s*F_{s-1} and the Seebeck ratio.
func TestNumericModelMatchesClosedForm(t *testing.T) {
	const (
		edge      = 0.1 // eV
		s         = 1.0
		sigma_E_0 = 2.0e4 // S/m
		T         = 300.0 // K
		cp        = 0.5
	)
	mu := edge + cp*consts.K*T/consts.E

	energy, sigma_E := powerLawGrid(edge, s, sigma_E_0, T)

	cond, err := NumericConductivity(energy, sigma_E, mu, T)
	require.NoError(t, err)
	wantCond, err := Conductivity(cp, s, sigma_E_0)
	require.NoError(t, err)
	assert.InEpsilon(t, wantCond, cond, 1e-3)

	seeb, err := NumericSeebeck(energy, sigma_E, mu, T)
	require.NoError(t, err)
	wantSeeb, err := Seebeck(cp, s)
	require.NoError(t, err)
	assert.InEpsilon(t, wantSeeb, seeb, 1e-3)
}

// The Fermi window integrates to the occupation at the lower grid edge
// when the grid spans the whole window.
func TestFermiWindowNormalization(t *testing.T) {
	const (
		T  = 300.0
		mu = 0.5 // eV
	)
	energy := make([]float64, 4001)
	floats.Span(energy, 0.0, 1.0)

	w := FermiWindow(energy, mu, T)
	got := integrate.Trapezoidal(energy, w)
	assert.InEpsilon(t, 1.0, got, 1e-6)
}

func TestNumericModelRejectsBadInput(t *testing.T) {
	energy := []float64{0.0, 0.1, 0.2}
	sigma_E := []float64{0.0, 1.0}

	_, err := NumericConductivity(energy, sigma_E, 0.1, 300)
	require.Error(t, err)

	_, err = NumericConductivity(energy[:1], sigma_E[:1], 0.1, 300)
	require.Error(t, err)

	_, err = NumericNu(energy, energy, 0.1, -10)
	require.Error(t, err)
}

func TestPowerLawSigmaEVanishesBelowEdge(t *testing.T) {
	energy := []float64{0.0, 0.05, 0.1, 0.15, 0.2}
	sigma_E := PowerLawSigmaE(energy, 0.1, 1, 1e4, 300)

	assert.Zero(t, sigma_E[0])
	assert.Zero(t, sigma_E[1])
	assert.Zero(t, sigma_E[2])
	assert.Greater(t, sigma_E[3], 0.0)
	assert.Greater(t, sigma_E[4], sigma_E[3])
}
