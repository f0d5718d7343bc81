package app

import (
	"zeta/internal/log"
	"zeta/internal/registry"
	"zeta/internal/zeta"
)

// Calibrate runs one calibration: it resolves the standard and mineral,
// derives densities when the request carries counted areas, validates the
// input (including standard/mineral compatibility) and computes zeta.
func Calibrate(req Request) (*Report, error) {
	std, err := registry.ResolveStandard(req.Standard)
	if err != nil {
		log.Warn("calibration rejected", log.String("standard", req.Standard), log.Err(err))
		return nil, err
	}
	mineral, err := registry.ResolveMineral(req.Mineral)
	if err != nil {
		log.Warn("calibration rejected", log.String("mineral", req.Mineral), log.Err(err))
		return nil, err
	}

	rhoS, rhoI := req.RhoS, req.RhoI
	var derived *zeta.Densities
	if req.FromAreas {
		d, err := zeta.DeriveDensities(req.NS, req.NSArea, req.NI, req.NIArea)
		if err != nil {
			log.Warn("calibration rejected", log.Err(err))
			return nil, err
		}
		derived = &d
		rhoS, rhoI = d.RhoS, d.RhoI
		log.Debug("densities derived",
			log.Float64("rho_s", d.RhoS),
			log.Float64("rho_i", d.RhoI),
			log.Float64("ratio", d.RhoRatio))
	}

	b := zeta.NewInputBuilder().
		WithStandard(std.Code).
		WithMineral(mineral.Code).
		WithDecayConstant(req.Settings.DecayConstant, req.Settings.DecayConstantUncertainty).
		WithGeometryFactor(req.Settings.GeometryFactor).
		WithCounts(req.NS, req.NI, req.ND).
		WithDensities(rhoS, rhoI, req.RhoD)
	in, err := b.Build()
	if err != nil {
		log.Warn("calibration rejected", log.String("input", b.BuildUnchecked().String()), log.Err(err))
		return nil, err
	}

	res, err := zeta.Compute(in)
	if err != nil {
		log.Error("calibration failed", log.Err(err))
		return nil, err
	}

	log.Info("calibration computed",
		log.String("standard", std.Code),
		log.String("mineral", mineral.Code),
		log.Bool("from_areas", req.FromAreas),
		log.Float64("zeta", res.Zeta),
		log.Float64("sigma", res.SigmaZeta))

	return &Report{
		Standard:       std,
		Mineral:        mineral,
		Input:          in,
		Derived:        derived,
		Result:         res,
		RegistryDigest: registry.Digest(),
	}, nil
}
