package transport

import (
	"semitransport/internal/consts"
	"semitransport/pkg/fdint"
)

// Band-resolved coefficients for a cylindrical (quasi-1D) band pocket of
// length l along the non-dispersive direction.

/*
CylinderDOS returns the density of states (1/Jm3).

    Args:
        mstar: the effective mass in units of the electron mass, unitless
        l: the pocket length, 1/m
*/
func CylinderDOS(mstar, l float64) float64 {
	return l * mstar * consts.ME /
		(4.0 * consts.PI * consts.PI * consts.HBAR * consts.HBAR)
}

/*
CylinderCarriers returns the carrier concentration (1/m3).

    Args:
        cp: reduced chemical potential, unitless
        T: the absolute temperature, K
        mstar: the effective mass, kg
        l: the pocket length, 1/m
*/
func CylinderCarriers(cp, T, mstar, l float64) (float64, error) {
	f, err := fdint.Fdk(0, cp)
	if err != nil {
		return 0, err
	}
	return f * l * mstar / 2.0 / (consts.PI * consts.PI) /
		(consts.HBAR * consts.HBAR) * consts.K * T, nil
}

/*
CylinderConductivity returns the electrical conductivity (S/m).

    Args:
        cp: reduced chemical potential, unitless
        T: the absolute temperature, K
        tau_0: the scattering time prefactor, s
        l: the pocket length, 1/m
*/
func CylinderConductivity(cp, T, tau_0, l float64) (float64, error) {
	f, err := fdint.Fdk(0, cp)
	if err != nil {
		return 0, err
	}
	return consts.E * consts.E * l / 2.0 / (consts.PI * consts.PI) /
		(consts.HBAR * consts.HBAR) * consts.K * T * tau_0 * f, nil
}

// CylinderSeebeck returns the Seebeck coefficient (V/K). The pocket
// geometry leaves the Seebeck expression identical to the spherical case.
func CylinderSeebeck(cp float64) (float64, error) {
	return SphereSeebeck(cp)
}
