package registry

import (
	"zeta/internal/errors"
)

// LookupStandard returns the standard registered under code.
// Codes are matched exactly; use ResolveStandard for user-typed queries.
func LookupStandard(code string) (StandardRecord, error) {
	i, ok := standardIndex[code]
	if !ok {
		return StandardRecord{}, errors.NewUnknownStandardError(code)
	}
	return standards[i], nil
}

// LookupMineral returns the mineral registered under code.
func LookupMineral(code string) (MineralRecord, error) {
	i, ok := mineralIndex[code]
	if !ok {
		return MineralRecord{}, errors.NewUnknownMineralError(code)
	}
	return minerals[i], nil
}

// Standards returns all standards in presentation order.
func Standards() []StandardRecord {
	out := make([]StandardRecord, len(standards))
	copy(out, standards[:])
	return out
}

// Minerals returns all minerals in presentation order.
func Minerals() []MineralRecord {
	out := make([]MineralRecord, len(minerals))
	copy(out, minerals[:])
	return out
}

// StandardsFor returns the standards calibrated for the mineral code,
// in presentation order.
func StandardsFor(mineral string) ([]StandardRecord, error) {
	if _, err := LookupMineral(mineral); err != nil {
		return nil, err
	}
	var out []StandardRecord
	for _, s := range standards {
		if s.AppliesTo(mineral) {
			out = append(out, s)
		}
	}
	return out, nil
}

// CheckCompatibility fails with an IncompatibleStandardMineralError when the
// standard is not calibrated for the mineral. Unknown codes yield the
// corresponding lookup error.
func CheckCompatibility(standard, mineral string) error {
	s, err := LookupStandard(standard)
	if err != nil {
		return err
	}
	m, err := LookupMineral(mineral)
	if err != nil {
		return err
	}
	if !s.AppliesTo(m.Code) {
		return errors.NewIncompatibleError(s.Code, s.Name, m.Code, m.Name)
	}
	return nil
}
