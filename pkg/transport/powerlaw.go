// Package transport implements transport coefficients of semiconductors.
//
// The model assumes an underlying transport function (sigma_E) that is a
// power law in energy above the transport edge. The exponent (s) is
// indicative of the charge transport mechanism; s=1 corresponds to band
// transport limited by non-polar phonon scattering. The prefactor
// (sigma_E_0) indicates the quality of transport. Every coefficient is a
// function of the reduced chemical potential (cp), which is the chemical
// potential divided by Boltzmann's constant and temperature (mu/kT).
//
// More information on this model can be found at
// https://www.nature.com/articles/nmat4784
package transport

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"semitransport/internal/consts"
	"semitransport/pkg/fdint"
)

/*
Conductivity returns the electrical conductivity (S/m) of the power-law
transport model.

    Args:
        cp: reduced chemical potential, unitless
        s: energy exponent restricted to integer/half-integer, unitless
        sigma_E_0: powerlaw prefactor, S/m

    Returns:
        the electrical conductivity, S/m
*/
func Conductivity(cp, s, sigma_E_0 float64) (float64, error) {
	if s < 0 {
		return 0, &fdint.NumericalError{Op: "Conductivity", Detail: "exponent s must be non-negative"}
	}
	if s == 0 {
		// s=0 requires analytic simplification
		return sigma_E_0 / (1.0 + math.Exp(-cp)), nil
	}
	f, err := fdint.Fdk(s-1.0, cp)
	if err != nil {
		return 0, err
	}
	return sigma_E_0 * s * f, nil
}

/*
Seebeck returns the Seebeck coefficient (V/K) of the power-law transport
model.

    Args:
        cp: reduced chemical potential, unitless
        s: energy exponent restricted to integer/half-integer, unitless

    Returns:
        the Seebeck coefficient, V/K
*/
func Seebeck(cp, s float64) (float64, error) {
	if s < 0 {
		return 0, &fdint.NumericalError{Op: "Seebeck", Detail: "exponent s must be non-negative"}
	}
	if s == 0 {
		// s=0 requires analytic simplification
		f0, err := fdint.Fdk(0, cp)
		if err != nil {
			return 0, err
		}
		return consts.K / consts.E * ((1.0+math.Exp(-cp))*f0 - cp), nil
	}
	fs, err := fdint.Fdk(s, cp)
	if err != nil {
		return 0, err
	}
	fsm1, err := fdint.Fdk(s-1.0, cp)
	if err != nil {
		return 0, err
	}
	return consts.K / consts.E * ((s+1.0)*fs/s/fsm1 - cp), nil
}

// SeebeckVec evaluates the Seebeck coefficient over a vector of reduced
// chemical potentials, V/K, [i].
func SeebeckVec(cps mat.Vector, s float64) (*mat.VecDense, error) {
	out := mat.NewVecDense(cps.Len(), nil)
	for i := 0; i < cps.Len(); i++ {
		v, err := Seebeck(cps.AtVec(i), s)
		if err != nil {
			return nil, err
		}
		out.SetVec(i, v)
	}
	return out, nil
}

// ConductivityVec evaluates the electrical conductivity over a vector of
// reduced chemical potentials, S/m, [i].
func ConductivityVec(cps mat.Vector, s, sigma_E_0 float64) (*mat.VecDense, error) {
	out := mat.NewVecDense(cps.Len(), nil)
	for i := 0; i < cps.Len(); i++ {
		v, err := Conductivity(cps.AtVec(i), s, sigma_E_0)
		if err != nil {
			return nil, err
		}
		out.SetVec(i, v)
	}
	return out, nil
}
