package analysis

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"semitransport/pkg/transport"
)

/*
JonkerAnalysis extracts the transport function across a doping series. A
Jonker analysis is typically applied to a series of samples with the same
electronic structure but different doping concentrations; the properties of
each sample should be measured at the same temperature.

    Args:
        seebecks: the Seebeck coefficients, V/K, [i]
        conductivities: electrical conductivities, S/m, [i]
        temperature: the absolute temperature, K
        s: assumption of the transport exponent (mechanism), unitless

    Returns:
        the average, minimum, and maximum transport function prefactor
        sigma_E_0 over the samples, S/m
*/
func JonkerAnalysis(seebecks, conductivities []float64, temperature, s float64) (mean, min, max float64, err error) {
	if len(seebecks) != len(conductivities) {
		return 0, 0, 0, fmt.Errorf("jonker analysis: %d Seebeck values against %d conductivities",
			len(seebecks), len(conductivities))
	}
	if len(seebecks) == 0 {
		return 0, 0, 0, fmt.Errorf("jonker analysis: no samples")
	}

	trans_funcs := make([]float64, len(seebecks))
	for i := range seebecks {
		tf, err := ExtractTransportFunction(seebecks[i], conductivities[i], temperature, s)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("sample %d: %w", i, err)
		}
		trans_funcs[i] = tf
	}
	return stat.Mean(trans_funcs, nil), floats.Min(trans_funcs), floats.Max(trans_funcs), nil
}

/*
TemperatureAnalysis extracts the transport function of a single sample
versus temperature. The temperature dependence of the transport function is
informative when checking for multi-band behavior or strange scattering
mechanisms.

    Args:
        seebecks: the Seebeck coefficients, V/K, [i]
        conductivities: electrical conductivities, S/m, [i]
        temperatures: the absolute temperatures, K, [i]
        s: assumption of the transport exponent (mechanism), unitless

    Returns:
        transport function prefactors sigma_E_0, S/m, [i]
*/
func TemperatureAnalysis(seebecks, conductivities, temperatures []float64, s float64) ([]float64, error) {
	if len(seebecks) != len(conductivities) || len(seebecks) != len(temperatures) {
		return nil, fmt.Errorf("temperature analysis: mismatched series lengths %d, %d, %d",
			len(seebecks), len(conductivities), len(temperatures))
	}

	trans_funcs := make([]float64, len(seebecks))
	for i := range seebecks {
		tf, err := ExtractTransportFunction(seebecks[i], conductivities[i], temperatures[i], s)
		if err != nil {
			return nil, fmt.Errorf("point %d (T = %v K): %w", i, temperatures[i], err)
		}
		trans_funcs[i] = tf
	}
	return trans_funcs, nil
}

/*
JonkerCurve tabulates the model Seebeck-conductivity locus over a range of
reduced chemical potentials, for plotting against a measured doping series.

    Args:
        s: the transport exponent, unitless
        sigma_E_0: the transport function prefactor, S/m
        cps: the reduced chemical potentials to evaluate, unitless, [i]

    Returns:
        conductivities (S/m) and Seebeck coefficients (V/K) along the locus
*/
func JonkerCurve(s, sigma_E_0 float64, cps []float64) ([]float64, []float64, error) {
	v := mat.NewVecDense(len(cps), cps)

	conds, err := transport.ConductivityVec(v, s, sigma_E_0)
	if err != nil {
		return nil, nil, fmt.Errorf("jonker curve: %w", err)
	}
	seebs, err := transport.SeebeckVec(v, s)
	if err != nil {
		return nil, nil, fmt.Errorf("jonker curve: %w", err)
	}
	return conds.RawVector().Data, seebs.RawVector().Data, nil
}
