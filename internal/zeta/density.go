package zeta

import (
	"zeta/internal/errors"
)

// densityScale expresses counted densities in units of 10^6 tracks/cm²,
// the unit the desktop form displays.
const densityScale = 1e6

// Densities holds track densities derived from counts over counted areas.
type Densities struct {
	RhoS       float64 // Ns / area_s, in 10^6 cm^-2
	RhoI       float64 // Ni / area_i, in 10^6 cm^-2
	CountRatio float64 // Ns / Ni
	RhoRatio   float64 // ρs / ρi
}

// DeriveDensities computes spontaneous and induced densities from track
// counts and the areas they were counted over (cm²).
//
// Only the ratio ρs/ρi enters the zeta equation, so the 10^6 scale of the
// returned densities cancels in Compute.
func DeriveDensities(ns int, nsArea float64, ni int, niArea float64) (Densities, error) {
	if ns <= 0 {
		return Densities{}, errors.NewValidationError("Ns", "track count must be a positive integer")
	}
	if ni <= 0 {
		return Densities{}, errors.NewValidationError("Ni", "track count must be a positive integer")
	}
	if !positive(nsArea) {
		return Densities{}, errors.NewValidationError("Ns area", "counted area must be a positive number")
	}
	if !positive(niArea) {
		return Densities{}, errors.NewValidationError("Ni area", "counted area must be a positive number")
	}

	rhoS := (float64(ns) / nsArea) / densityScale
	rhoI := (float64(ni) / niArea) / densityScale
	return Densities{
		RhoS:       rhoS,
		RhoI:       rhoI,
		CountRatio: float64(ns) / float64(ni),
		RhoRatio:   rhoS / rhoI,
	}, nil
}
