// Package zeta computes the zeta calibration factor of fission-track dating
// and its propagated uncertainty.
//
// The calibration uses a standard of independently known age t:
//
//	ζ = (exp(λ·t) − 1) / (λ · (ρs/ρi) · g · ρd)
//
// with the one-sigma uncertainty propagated from Poisson counting statistics
// and the standard's age uncertainty:
//
//	σ(ζ) = ζ · sqrt(1/Ns + 1/Ni + 1/Nd + (σt/t)²)
//
// Compute is a pure function. It does not check whether the standard is
// calibrated for the mineral and does not reject degenerate numbers; callers
// run Input.Validate and registry.CheckCompatibility first.
package zeta

import (
	"math"

	"zeta/internal/registry"
)

// Default constants.
const (
	DefaultDecayConstant            = 1.55125e-10 // λ of 238U [yr^-1]
	DefaultDecayConstantUncertainty = 0.00333e-10 // σ(λ) [yr^-1]
	DefaultGeometryFactor           = 0.5         // external detector method
)

// yearsPerMa converts between years and millions of years.
const yearsPerMa = 1e6

// Input is the argument set of one calibration.
type Input struct {
	Standard string // standard code, e.g. "DUR"
	Mineral  string // mineral code, e.g. "Ap"

	DecayConstant            float64 // λ [yr^-1], > 0
	DecayConstantUncertainty float64 // σ(λ) [yr^-1], accepted but not propagated
	GeometryFactor           float64 // g, in (0, 1]

	NS int // spontaneous track count
	NI int // induced track count
	ND int // dosimeter track count

	RhoS float64 // spontaneous track density [cm^-2]
	RhoI float64 // induced track density [cm^-2]
	RhoD float64 // dosimeter track density [cm^-2]
}

// Result is the outcome of one calibration. Zeta and SigmaZeta are in Ma·cm².
type Result struct {
	Zeta                 float64 `json:"zeta"`
	SigmaZeta            float64 `json:"sigma_zeta"`
	RelativeSigmaPercent float64 `json:"relative_sigma_percent"`
}

// Compute returns the zeta factor for in using the age of in.Standard.
// The only error is an UnknownStandardError from the registry; division by
// zero and other degenerate inputs surface as Inf or NaN in the result.
func Compute(in Input) (Result, error) {
	std, err := registry.LookupStandard(in.Standard)
	if err != nil {
		return Result{}, err
	}

	ageYr := std.AgeMa * yearsPerMa

	// Years·cm² until the final rescale.
	zeta := (math.Exp(in.DecayConstant*ageYr) - 1) /
		(in.DecayConstant * (in.RhoS / in.RhoI) * in.GeometryFactor * in.RhoD)

	// σ(λ) is not part of the propagation.
	sigma := zeta * math.Sqrt(
		1/float64(in.NS)+
			1/float64(in.NI)+
			1/float64(in.ND)+
			math.Pow(std.AgeUncertaintyMa/std.AgeMa, 2),
	)

	rel := 100 * sigma / zeta

	return Result{
		Zeta:                 zeta / yearsPerMa,
		SigmaZeta:            sigma / yearsPerMa,
		RelativeSigmaPercent: rel,
	}, nil
}
