package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"semitransport/internal/consts"
	"semitransport/pkg/transport"
)

// modelPoint generates a consistent (Seebeck, conductivity) pair from the
// power-law model.
func modelPoint(t *testing.T, cp, s, sigma_E_0 float64) (float64, float64) {
	t.Helper()
	seeb, err := transport.Seebeck(cp, s)
	require.NoError(t, err)
	cond, err := transport.Conductivity(cp, s, sigma_E_0)
	require.NoError(t, err)
	return seeb, cond
}

func TestExtractTransportFunctionRoundTrip(t *testing.T) {
	const (
		s         = 1.0
		sigma_E_0 = 2.5e4
		T         = 300.0
	)
	for _, cp := range []float64{-1.0, 0.5, 2.0} {
		seeb, cond := modelPoint(t, cp, s, sigma_E_0)

		got, err := ExtractTransportFunction(seeb, cond, T, s)
		require.NoError(t, err)
		assert.InEpsilon(t, sigma_E_0, got, 1e-2, "cp %v", cp)
	}
}

func TestExtractEffectiveMassRoundTrip(t *testing.T) {
	const (
		mstar = 1.3
		T     = 300.0
		cp    = 0.2
	)
	seeb, err := transport.SphereSeebeck(cp)
	require.NoError(t, err)
	n, err := transport.SphereCarriers(cp, T, mstar*consts.ME)
	require.NoError(t, err)

	got, err := ExtractEffectiveMass(seeb, n, T)
	require.NoError(t, err)
	assert.InEpsilon(t, mstar, got, 1e-2)
}

// A doping series generated from a single transport function must come
// back with mean = min = max = sigma_E_0.
func TestJonkerAnalysisUniformSeries(t *testing.T) {
	const (
		s         = 1.0
		sigma_E_0 = 4.0e4
		T         = 350.0
	)
	cps := []float64{-1.0, 0.5, 2.0, 4.0}

	seebecks := make([]float64, len(cps))
	conductivities := make([]float64, len(cps))
	for i, cp := range cps {
		seebecks[i], conductivities[i] = modelPoint(t, cp, s, sigma_E_0)
	}

	mean, min, max, err := JonkerAnalysis(seebecks, conductivities, T, s)
	require.NoError(t, err)

	assert.InEpsilon(t, sigma_E_0, mean, 1e-2)
	assert.LessOrEqual(t, min, mean)
	assert.LessOrEqual(t, mean, max)
	assert.InEpsilon(t, sigma_E_0, min, 1e-2)
	assert.InEpsilon(t, sigma_E_0, max, 1e-2)
}

func TestJonkerAnalysisRejectsBadSeries(t *testing.T) {
	_, _, _, err := JonkerAnalysis([]float64{1e-4}, []float64{1e4, 2e4}, 300, 1)
	require.Error(t, err)

	_, _, _, err = JonkerAnalysis(nil, nil, 300, 1)
	require.Error(t, err)
}

func TestTemperatureAnalysisRecoversConstantPrefactor(t *testing.T) {
	const (
		s         = 1.0
		sigma_E_0 = 3.0e4
	)
	temperatures := []float64{300, 400, 500}
	cps := []float64{1.5, 1.0, 0.5}

	seebecks := make([]float64, len(cps))
	conductivities := make([]float64, len(cps))
	for i, cp := range cps {
		seebecks[i], conductivities[i] = modelPoint(t, cp, s, sigma_E_0)
	}

	trans_funcs, err := TemperatureAnalysis(seebecks, conductivities, temperatures, s)
	require.NoError(t, err)
	require.Len(t, trans_funcs, len(temperatures))
	for i, tf := range trans_funcs {
		assert.InEpsilon(t, sigma_E_0, tf, 1e-2, "point %d", i)
	}
}

func TestTemperatureAnalysisRejectsMismatchedSeries(t *testing.T) {
	_, err := TemperatureAnalysis([]float64{1e-4, 2e-4}, []float64{1e4, 2e4}, []float64{300}, 1)
	require.Error(t, err)
}

func TestJonkerCurveShape(t *testing.T) {
	cps := []float64{-2.0, 0.0, 2.0, 4.0}

	conductivities, seebecks, err := JonkerCurve(1, 1e4, cps)
	require.NoError(t, err)
	require.Len(t, conductivities, len(cps))
	require.Len(t, seebecks, len(cps))

	// along the locus conductivity rises while Seebeck falls
	for i := 1; i < len(cps); i++ {
		assert.Greater(t, conductivities[i], conductivities[i-1])
		assert.Less(t, seebecks[i], seebecks[i-1])
	}
}
