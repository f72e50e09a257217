// Package analysis extracts transport model parameters from experimental
// Seebeck, conductivity, and carrier-density data.
package analysis

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/optimize"

	"semitransport/internal/consts"
	"semitransport/pkg/transport"
)

// minimizeScalar runs a one-dimensional Nelder-Mead minimization.
func minimizeScalar(objective func(float64) float64, x0 float64) (float64, error) {
	problem := optimize.Problem{
		Func: func(x []float64) float64 { return objective(x[0]) },
	}
	result, err := optimize.Minimize(problem, []float64{x0}, nil, &optimize.NelderMead{})
	if err != nil {
		return 0, err
	}
	return result.X[0], nil
}

// invertSeebeck finds the reduced chemical potential reproducing the
// magnitude of a measured Seebeck coefficient.
func invertSeebeck(seebeck, s float64) (float64, error) {
	cp, err := minimizeScalar(func(cp float64) float64 {
		v, err := transport.Seebeck(cp, s)
		if err != nil {
			return math.Inf(1)
		}
		return math.Abs(v - math.Abs(seebeck))
	}, 0.0)
	if err != nil {
		return 0, fmt.Errorf("inverting Seebeck: %w", err)
	}
	return cp, nil
}

/*
ExtractTransportFunction returns the transport function prefactor
(sigma_E_0) given Seebeck-conductivity data on a single sample. The
transport exponent (s) is typically 1 for deformation potential scattering
and band transport. The optimum is found by Nelder-Mead minimization.

    Args:
        seebeck: the Seebeck coefficient, V/K
        conductivity: electrical conductivity, S/m
        temperature: the absolute temperature, K
        s: assumption of the transport exponent (mechanism), unitless

    Returns:
        the transport function prefactor sigma_E_0, S/m
*/
func ExtractTransportFunction(seebeck, conductivity, temperature, s float64) (float64, error) {
	cp, err := invertSeebeck(seebeck, s)
	if err != nil {
		return 0, err
	}

	// conductivity is linear in sigma_E_0; the relative-error objective
	// keeps the convergence test meaningful at S/m scales
	sigma_E_0, err := minimizeScalar(func(sigma_E_0 float64) float64 {
		c, err := transport.Conductivity(cp, s, sigma_E_0)
		if err != nil {
			return math.Inf(1)
		}
		return math.Abs(c/conductivity - 1.0)
	}, conductivity)
	if err != nil {
		return 0, fmt.Errorf("extracting transport function: %w", err)
	}
	return sigma_E_0, nil
}

/*
ExtractEffectiveMass returns the equivalent mass of a spherical pocket with
a specific carrier density and Seebeck coefficient. The transport exponent
is implicitly 1 in this analysis, which indicates deformation potential
scattering.

    Args:
        seebeck: the Seebeck coefficient, V/K
        carrier_density: the carrier density, 1/m^3
        temperature: the absolute temperature, K

    Returns:
        the effective mass m*, in units of the electron mass
*/
func ExtractEffectiveMass(seebeck, carrier_density, temperature float64) (float64, error) {
	cp, err := minimizeScalar(func(cp float64) float64 {
		v, err := transport.SphereSeebeck(cp)
		if err != nil {
			return math.Inf(1)
		}
		return math.Abs(v - math.Abs(seebeck))
	}, 0.0)
	if err != nil {
		return 0, fmt.Errorf("inverting Seebeck: %w", err)
	}

	mstar, err := minimizeScalar(func(mstar float64) float64 {
		n, err := transport.SphereCarriers(cp, temperature, mstar*consts.ME)
		if err != nil {
			return math.Inf(1)
		}
		return math.Abs(n/carrier_density - 1.0)
	}, 1.0)
	if err != nil {
		return 0, fmt.Errorf("extracting effective mass: %w", err)
	}
	return mstar, nil
}
