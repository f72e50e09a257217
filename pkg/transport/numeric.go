package transport

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"

	"semitransport/internal/consts"
	"semitransport/pkg/fdint"
)

// The numeric model integrates an arbitrary tabulated sigma_E function
// against the Fermi window -df/dE instead of assuming a power law. It is
// used to cross-check the closed-form model and to evaluate transport
// functions that are not power laws.

/*
FermiWindow returns the Fermi window -df/dE evaluated on an energy grid
(1/eV). The window selects the carriers within a few kT of the chemical
potential.

    Args:
        energy: the energy grid, eV
        mu: the electron chemical potential, eV
        T: the absolute temperature, K

    Returns:
        -df/dE on the grid, 1/eV, [i]
*/
func FermiWindow(energy []float64, mu, T float64) []float64 {
	beta := consts.E / (consts.K * T) // 1/eV

	w := make([]float64, len(energy))
	for i, e := range energy {
		t := beta * (e - mu)
		if t > 300.0 {
			// exp(t) overflows; the window is exponentially small anyway
			w[i] = beta * math.Exp(-t)
			continue
		}
		x := math.Exp(t)
		w[i] = beta * x / ((x + 1.0) * (x + 1.0))
	}
	return w
}

/*
NumericConductivity returns the electrical conductivity (S/m) by
trapezoidal integration of a tabulated transport function.

    Args:
        energy: the x-points for sigma_E v.s. energy, eV
        sigma_E: the y-points for sigma_E v.s. energy, S/m
        mu: the electron chemical potential, eV
        T: the absolute temperature, K

    Returns:
        the electrical conductivity, S/m
*/
func NumericConductivity(energy, sigma_E []float64, mu, T float64) (float64, error) {
	if err := checkGrid(energy, sigma_E, T); err != nil {
		return 0, err
	}
	y := make([]float64, len(energy))
	floats.MulTo(y, sigma_E, FermiWindow(energy, mu, T))
	return integrate.Trapezoidal(energy, y), nil
}

/*
NumericNu returns the transport coefficient for a temperature gradient.

    Args:
        energy: the x-points for sigma_E v.s. energy, eV
        sigma_E: the y-points for sigma_E v.s. energy, S/m
        mu: the electron chemical potential, eV
        T: the absolute temperature, K

    Returns:
        the thermoelectric transport coefficient, S/m * V/K
*/
func NumericNu(energy, sigma_E []float64, mu, T float64) (float64, error) {
	if err := checkGrid(energy, sigma_E, T); err != nil {
		return 0, err
	}
	beta := consts.E / (consts.K * T) // 1/eV

	w := FermiWindow(energy, mu, T)
	y := make([]float64, len(energy))
	for i := range y {
		y[i] = consts.K / consts.E * sigma_E[i] * w[i] * (energy[i] - mu) * beta
	}
	return integrate.Trapezoidal(energy, y), nil
}

/*
NumericSeebeck returns the Seebeck coefficient (V/K) of a tabulated
transport function, the ratio of NumericNu to NumericConductivity.

    Args:
        energy: the x-points for sigma_E v.s. energy, eV
        sigma_E: the y-points for sigma_E v.s. energy, S/m
        mu: the electron chemical potential, eV
        T: the absolute temperature, K

    Returns:
        the Seebeck coefficient, V/K
*/
func NumericSeebeck(energy, sigma_E []float64, mu, T float64) (float64, error) {
	nu, err := NumericNu(energy, sigma_E, mu, T)
	if err != nil {
		return 0, err
	}
	cond, err := NumericConductivity(energy, sigma_E, mu, T)
	if err != nil {
		return 0, err
	}
	return nu / cond, nil
}

/*
PowerLawSigmaE tabulates the power-law transport function on an energy
grid. The function vanishes below the transport edge.

    Args:
        energy: the energy grid, eV
        edge: the transport edge energy, eV
        s: the transport function exponent, unitless
        sigma_E_0: the transport function prefactor, S/m
        T: the absolute temperature, K

    Returns:
        sigma_E on the grid, S/m, [i]
*/
func PowerLawSigmaE(energy []float64, edge, s, sigma_E_0, T float64) []float64 {
	kT := consts.K * T / consts.E // eV

	sigma_E := make([]float64, len(energy))
	for i, e := range energy {
		if e <= edge {
			continue
		}
		sigma_E[i] = sigma_E_0 * math.Pow((e-edge)/kT, s)
	}
	return sigma_E
}

func checkGrid(energy, sigma_E []float64, T float64) error {
	if len(energy) != len(sigma_E) {
		return &fdint.NumericalError{
			Op:     "numeric model",
			Detail: fmt.Sprintf("energy and sigma_E grids differ in length, %d and %d", len(energy), len(sigma_E)),
		}
	}
	if len(energy) < 2 {
		return &fdint.NumericalError{Op: "numeric model", Detail: "energy grid needs at least two points"}
	}
	if !(T > 0) {
		return &fdint.NumericalError{
			Op:     "numeric model",
			Detail: fmt.Sprintf("temperature must be positive, got %v K", T),
		}
	}
	return nil
}
