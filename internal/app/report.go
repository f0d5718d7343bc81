package app

import (
	"encoding/json"
	"fmt"

	"zeta/internal/registry"
	"zeta/internal/util"
	"zeta/internal/zeta"
)

// Report is the outcome of one calibration together with what it was
// computed from.
type Report struct {
	Standard registry.StandardRecord
	Mineral  registry.MineralRecord
	Input    zeta.Input
	Derived  *zeta.Densities // nil when densities were given directly
	Result   zeta.Result

	RegistryDigest string // registry.Digest at the time of the run
}

// Lines renders the report as console lines, results with two decimals.
func (r *Report) Lines() []string {
	lines := []string{
		fmt.Sprintf("Standard used: %s, %s ± %s %s",
			r.Standard.Name,
			util.Decimal(r.Standard.AgeMa),
			util.Decimal(r.Standard.AgeUncertaintyMa),
			util.UnitAge),
		fmt.Sprintf("Mineral: %s", r.Mineral.Name),
	}
	if r.Derived != nil {
		lines = append(lines,
			fmt.Sprintf("Spontaneous density: %s x 10^6 cm^-2", util.Fixed6(r.Derived.RhoS)),
			fmt.Sprintf("Induced density: %s x 10^6 cm^-2", util.Fixed6(r.Derived.RhoI)),
			fmt.Sprintf("Ns/Ni: %s", util.Fixed6(r.Derived.CountRatio)),
			fmt.Sprintf("ρs/ρi: %s", util.Fixed6(r.Derived.RhoRatio)),
		)
	}
	return append(lines,
		fmt.Sprintf("Zeta (user equation): %s %s", util.Fixed2(r.Result.Zeta), util.UnitZeta),
		fmt.Sprintf("Uncertainty of Zeta: %s %s", util.Fixed2(r.Result.SigmaZeta), util.UnitZeta),
		fmt.Sprintf("Relative uncertainty: %s %s", util.Fixed2(r.Result.RelativeSigmaPercent), util.UnitPercent),
	)
}

type jsonStandard struct {
	Code             string  `json:"code"`
	Name             string  `json:"name"`
	AgeMa            float64 `json:"age_ma"`
	AgeUncertaintyMa float64 `json:"age_uncertainty_ma"`
}

type jsonInput struct {
	DecayConstant            float64 `json:"lambda"`
	DecayConstantUncertainty float64 `json:"lambda_err"`
	GeometryFactor           float64 `json:"g"`
	NS                       int     `json:"ns"`
	NI                       int     `json:"ni"`
	ND                       int     `json:"nd"`
	RhoS                     float64 `json:"rho_s"`
	RhoI                     float64 `json:"rho_i"`
	RhoD                     float64 `json:"rho_d"`
}

type jsonDerived struct {
	RhoS       float64 `json:"rho_s"`
	RhoI       float64 `json:"rho_i"`
	CountRatio float64 `json:"ns_ni_ratio"`
	RhoRatio   float64 `json:"rho_ratio"`
}

type jsonReport struct {
	Standard       jsonStandard `json:"standard"`
	Mineral        string       `json:"mineral"`
	Input          jsonInput    `json:"input"`
	Derived        *jsonDerived `json:"derived,omitempty"`
	Result         zeta.Result  `json:"result"`
	RegistryDigest string       `json:"registry_digest"`
}

// MarshalJSON encodes the report with snake_case keys. Non-finite results
// cannot be encoded and produce an error.
func (r *Report) MarshalJSON() ([]byte, error) {
	out := jsonReport{
		Standard: jsonStandard{
			Code:             r.Standard.Code,
			Name:             r.Standard.Name,
			AgeMa:            r.Standard.AgeMa,
			AgeUncertaintyMa: r.Standard.AgeUncertaintyMa,
		},
		Mineral: r.Mineral.Code,
		Input: jsonInput{
			DecayConstant:            r.Input.DecayConstant,
			DecayConstantUncertainty: r.Input.DecayConstantUncertainty,
			GeometryFactor:           r.Input.GeometryFactor,
			NS:                       r.Input.NS,
			NI:                       r.Input.NI,
			ND:                       r.Input.ND,
			RhoS:                     r.Input.RhoS,
			RhoI:                     r.Input.RhoI,
			RhoD:                     r.Input.RhoD,
		},
		Result:         r.Result,
		RegistryDigest: r.RegistryDigest,
	}
	if r.Derived != nil {
		out.Derived = &jsonDerived{
			RhoS:       r.Derived.RhoS,
			RhoI:       r.Derived.RhoI,
			CountRatio: r.Derived.CountRatio,
			RhoRatio:   r.Derived.RhoRatio,
		}
	}
	return json.Marshal(out)
}
