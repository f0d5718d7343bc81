package zeta

import (
	"fmt"
	"math"

	"zeta/internal/errors"
	"zeta/internal/registry"
)

// Validate checks the preconditions Compute relies on, in the order a user
// fills the form: decay constant and geometry factor, then counts and
// densities, then the standard/mineral pairing.
// Returns nil if valid, a ValidationError for rejected numbers, or the
// registry error for unknown or incompatible codes.
func (in Input) Validate() error {
	if !positive(in.DecayConstant) {
		return errors.NewValidationError("lambda", "decay constant must be a positive number")
	}
	if !finite(in.DecayConstantUncertainty) || in.DecayConstantUncertainty < 0 {
		return errors.NewValidationError("lambda_err", "decay constant uncertainty must be zero or positive")
	}
	if !finite(in.GeometryFactor) || in.GeometryFactor <= 0 || in.GeometryFactor > 1 {
		return errors.NewValidationError("g", "geometric factor must be in the interval (0, 1]")
	}

	counts := []struct {
		field string
		n     int
	}{
		{"Nd", in.ND},
		{"Ns", in.NS},
		{"Ni", in.NI},
	}
	for _, c := range counts {
		if c.n <= 0 {
			return errors.NewValidationError(c.field, "track count must be a positive integer")
		}
	}

	densities := []struct {
		field string
		rho   float64
	}{
		{"rho_d", in.RhoD},
		{"rho_s", in.RhoS},
		{"rho_i", in.RhoI},
	}
	for _, d := range densities {
		if !positive(d.rho) {
			return errors.NewValidationError(d.field, "track density must be a positive number")
		}
	}

	return registry.CheckCompatibility(in.Standard, in.Mineral)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func positive(v float64) bool {
	return finite(v) && v > 0
}

// InputBuilder provides a fluent interface for building Input.
// Constants start at their defaults.
type InputBuilder struct {
	in Input
}

// NewInputBuilder creates a new builder with default constants.
func NewInputBuilder() *InputBuilder {
	return &InputBuilder{in: Input{
		DecayConstant:            DefaultDecayConstant,
		DecayConstantUncertainty: DefaultDecayConstantUncertainty,
		GeometryFactor:           DefaultGeometryFactor,
	}}
}

// WithStandard sets the standard code.
func (b *InputBuilder) WithStandard(code string) *InputBuilder {
	b.in.Standard = code
	return b
}

// WithMineral sets the mineral code.
func (b *InputBuilder) WithMineral(code string) *InputBuilder {
	b.in.Mineral = code
	return b
}

// WithDecayConstant overrides λ and its uncertainty.
func (b *InputBuilder) WithDecayConstant(lambda, sigma float64) *InputBuilder {
	b.in.DecayConstant = lambda
	b.in.DecayConstantUncertainty = sigma
	return b
}

// WithGeometryFactor overrides g.
func (b *InputBuilder) WithGeometryFactor(g float64) *InputBuilder {
	b.in.GeometryFactor = g
	return b
}

// WithCounts sets the spontaneous, induced and dosimeter track counts.
func (b *InputBuilder) WithCounts(ns, ni, nd int) *InputBuilder {
	b.in.NS = ns
	b.in.NI = ni
	b.in.ND = nd
	return b
}

// WithDensities sets the spontaneous, induced and dosimeter track densities.
func (b *InputBuilder) WithDensities(rhoS, rhoI, rhoD float64) *InputBuilder {
	b.in.RhoS = rhoS
	b.in.RhoI = rhoI
	b.in.RhoD = rhoD
	return b
}

// Build validates and returns the Input.
func (b *InputBuilder) Build() (Input, error) {
	if err := b.in.Validate(); err != nil {
		return Input{}, err
	}
	return b.in, nil
}

// BuildUnchecked returns the Input without validation.
func (b *InputBuilder) BuildUnchecked() Input {
	return b.in
}

// String summarizes the input for log lines.
func (in Input) String() string {
	return fmt.Sprintf("%s/%s λ=%g g=%g Ns=%d Ni=%d Nd=%d ρs=%g ρi=%g ρd=%g",
		in.Standard, in.Mineral, in.DecayConstant, in.GeometryFactor,
		in.NS, in.NI, in.ND, in.RhoS, in.RhoI, in.RhoD)
}
