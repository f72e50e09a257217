// Package fdint computes reduced Fermi-Dirac integrals by numerical
// quadrature. The integrals are the building blocks of the transport
// coefficient model; more information on the model can be found at
// https://www.nature.com/articles/nmat4784
package fdint

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

// NumericalError reports a quadrature that failed to converge or model
// parameters outside the numerically valid range.
type NumericalError struct {
	Op     string
	Detail string
}

func (e *NumericalError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Detail)
}

const (
	// relative agreement required between successive quadrature refinements
	tolerance = 1e-10

	// node counts for the Gauss-Legendre rule, doubled until convergence
	nodesInit = 64
	nodesMax  = 8192

	// integration cutoff above the larger of eta and zero, in units of kT.
	// the Fermi factor at the cutoff is below 3e-20.
	tailWidth = 45.0
)

/*
Fdk returns the reduced Fermi-Dirac integral of order k

	F_k(eta) = integral_0^inf e^k / (1 + exp(e - eta)) de

    Args:
        k: order of the integral, k >= -1/2, unitless. the transport model
           uses integer and half-integer orders
        eta: reduced chemical potential (mu/kT), unitless

    Returns:
        the value of the integral, unitless
*/
func Fdk(k, eta float64) (float64, error) {
	if k < -0.5 {
		return 0, &NumericalError{
			Op:     "Fdk",
			Detail: fmt.Sprintf("order %v below -1/2 is not integrable by this rule", k),
		}
	}

	// the substitution e = u^2 removes the endpoint singularity of e^k at
	// e = 0 for every order k >= -1/2
	f := func(u float64) float64 {
		return 2.0 * math.Pow(u, 2.0*k+1.0) / (1.0 + math.Exp(u*u-eta))
	}
	upper := math.Sqrt(math.Max(eta, 0.0) + tailWidth)

	prev := quad.Fixed(f, 0, upper, nodesInit, nil, 0)
	for n := 2 * nodesInit; n <= nodesMax; n *= 2 {
		cur := quad.Fixed(f, 0, upper, n, nil, 0)
		if math.Abs(cur-prev) <= tolerance*math.Max(math.Abs(cur), 1.0) {
			return cur, nil
		}
		prev = cur
	}

	return 0, &NumericalError{
		Op:     "Fdk",
		Detail: fmt.Sprintf("quadrature did not converge for order %v at eta %v", k, eta),
	}
}
