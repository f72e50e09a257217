package transport

import (
	"math"

	"semitransport/internal/consts"
	"semitransport/pkg/fdint"
)

// Band-resolved coefficients for a spherical (3D parabolic) band pocket.

/*
SphereDOS returns the density of states (1/Jm3).

    Args:
        mstar: the effective mass in units of the electron mass, unitless
        energy: the energy above the band edge, J
*/
func SphereDOS(mstar, energy float64) float64 {
	return math.Pow(2.0*mstar*consts.ME, 1.5) * math.Sqrt(energy) /
		(2.0 * consts.PI * consts.PI * math.Pow(consts.HBAR, 3.0))
}

/*
SphereCarriers returns the carrier concentration (1/m3).

    Args:
        cp: reduced chemical potential, unitless
        T: the absolute temperature, K
        mstar: the effective mass, kg
*/
func SphereCarriers(cp, T, mstar float64) (float64, error) {
	f, err := fdint.Fdk(0.5, cp)
	if err != nil {
		return 0, err
	}
	return f * 4.0 * consts.PI *
		math.Pow(2.0*mstar*consts.K*T/(consts.H*consts.H), 1.5), nil
}

/*
SphereConductivity returns the electrical conductivity (S/m).

    Args:
        cp: reduced chemical potential, unitless
        T: the absolute temperature, K
        tau_0: the scattering time prefactor, s
        mstar: the effective mass, kg
*/
func SphereConductivity(cp, T, tau_0, mstar float64) (float64, error) {
	f, err := fdint.Fdk(0, cp)
	if err != nil {
		return 0, err
	}
	return tau_0 * f * 8.0 * consts.PI * math.Sqrt(mstar) * consts.E * consts.E *
		math.Pow(2.0*consts.K*T, 1.5) / 3.0 / math.Pow(consts.H, 3.0), nil
}

// SphereSeebeck returns the Seebeck coefficient (V/K). The transport
// exponent is implicitly 1, deformation potential scattering.
func SphereSeebeck(cp float64) (float64, error) {
	f1, err := fdint.Fdk(1, cp)
	if err != nil {
		return 0, err
	}
	f0, err := fdint.Fdk(0, cp)
	if err != nil {
		return 0, err
	}
	return consts.K / consts.E * (2.0*f1/f0 - cp), nil
}
