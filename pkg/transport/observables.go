package transport

import (
	"fmt"
	"math"

	"semitransport/pkg/fdint"
)

// ModelParameters is one parameter set of the power-law transport model.
type ModelParameters struct {
	TransportEdge     float64 // transport edge energy, eV
	ReducedFermiLevel float64 // (E_F - E_transport)/kT, unitless
	Exponent          float64 // transport function exponent s, unitless
	Temperature       float64 // absolute temperature, K
	SigmaE0           float64 // transport function prefactor, S/m
}

// TransportIntegralResult holds the reduced Fermi-Dirac integrals evaluated
// for one parameter set.
type TransportIntegralResult struct {
	Fs   float64 // F_s(cp)
	Fsm1 float64 // F_{s-1}(cp); for s=0 the s->0 limit of s*F_{s-1}, the Fermi occupation factor
}

// ObservableSet holds the transport observables derived from one parameter
// set.
type ObservableSet struct {
	Seebeck      float64 // V/K
	Conductivity float64 // S/m
}

// Validate reports parameter values outside the physically valid range.
func (p ModelParameters) Validate() error {
	if !(p.Temperature > 0) {
		return &fdint.NumericalError{
			Op:     "ModelParameters",
			Detail: fmt.Sprintf("temperature must be positive, got %v K", p.Temperature),
		}
	}
	if p.Exponent < 0 {
		return &fdint.NumericalError{
			Op:     "ModelParameters",
			Detail: fmt.Sprintf("exponent s must be non-negative, got %v", p.Exponent),
		}
	}
	return nil
}

/*
Integrals evaluates the reduced Fermi-Dirac integrals the observables are
built from.

    Args:
        p: model parameters; only the reduced Fermi level and exponent enter

    Returns:
        the integral set for this parameter set
*/
func Integrals(p ModelParameters) (TransportIntegralResult, error) {
	if err := p.Validate(); err != nil {
		return TransportIntegralResult{}, err
	}

	cp, s := p.ReducedFermiLevel, p.Exponent
	fs, err := fdint.Fdk(s, cp)
	if err != nil {
		return TransportIntegralResult{}, err
	}
	if s == 0 {
		return TransportIntegralResult{Fs: fs, Fsm1: 1.0 / (1.0 + math.Exp(-cp))}, nil
	}
	fsm1, err := fdint.Fdk(s-1.0, cp)
	if err != nil {
		return TransportIntegralResult{}, err
	}
	return TransportIntegralResult{Fs: fs, Fsm1: fsm1}, nil
}

/*
ComputeObservables derives the Seebeck coefficient and electrical
conductivity from one parameter set. The evaluation is a pure function of
the parameters; the s=1 case reduces to the acoustic-phonon-limited result
(k/e)*(2*F_1/F_0 - cp).

    Args:
        p: model parameters

    Returns:
        the observable set for this parameter set
*/
func ComputeObservables(p ModelParameters) (ObservableSet, error) {
	if err := p.Validate(); err != nil {
		return ObservableSet{}, err
	}

	seeb, err := Seebeck(p.ReducedFermiLevel, p.Exponent)
	if err != nil {
		return ObservableSet{}, err
	}
	cond, err := Conductivity(p.ReducedFermiLevel, p.Exponent, p.SigmaE0)
	if err != nil {
		return ObservableSet{}, err
	}
	return ObservableSet{Seebeck: seeb, Conductivity: cond}, nil
}
