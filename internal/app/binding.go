package app

import (
	"fyne.io/fyne/v2/data/binding"

	"zeta/internal/util"
)

// BoundForm provides Fyne data bindings for the editable form entries.
type BoundForm struct {
	Mineral  binding.String
	Standard binding.String

	Lambda    binding.String
	LambdaErr binding.String
	G         binding.String

	ND     binding.String
	RhoD   binding.String
	NS     binding.String
	NSArea binding.String
	NI     binding.String
	NIArea binding.String
}

// NewBoundForm creates empty form bindings.
func NewBoundForm() *BoundForm {
	return &BoundForm{
		Mineral:   binding.NewString(),
		Standard:  binding.NewString(),
		Lambda:    binding.NewString(),
		LambdaErr: binding.NewString(),
		G:         binding.NewString(),
		ND:        binding.NewString(),
		RhoD:      binding.NewString(),
		NS:        binding.NewString(),
		NSArea:    binding.NewString(),
		NI:        binding.NewString(),
		NIArea:    binding.NewString(),
	}
}

// BoundResult provides Fyne data bindings for the read-only derived and
// result entries, already formatted for display.
type BoundResult struct {
	RhoS       binding.String
	RhoI       binding.String
	CountRatio binding.String
	RhoRatio   binding.String

	Zeta          binding.String
	SigmaZeta     binding.String
	RelativeSigma binding.String

	// Status text shown under the form
	Status binding.String
}

// NewBoundResult creates result bindings with the ready status.
func NewBoundResult() *BoundResult {
	b := &BoundResult{
		RhoS:          binding.NewString(),
		RhoI:          binding.NewString(),
		CountRatio:    binding.NewString(),
		RhoRatio:      binding.NewString(),
		Zeta:          binding.NewString(),
		SigmaZeta:     binding.NewString(),
		RelativeSigma: binding.NewString(),
		Status:        binding.NewString(),
	}
	_ = b.Status.Set(StatusReady)
	return b
}

// Bindings groups all data bindings of the desktop window.
type Bindings struct {
	Form   *BoundForm
	Result *BoundResult
}

// NewBindings creates a Bindings with all bindings initialized.
func NewBindings() *Bindings {
	return &Bindings{
		Form:   NewBoundForm(),
		Result: NewBoundResult(),
	}
}

// SyncFromState copies the form, the last report and the status from s to
// the bindings. Call this after Calculate, Clear or Reset.
func (b *Bindings) SyncFromState(s *State) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f := s.Form
	_ = b.Form.Mineral.Set(f.Mineral)
	_ = b.Form.Standard.Set(f.Standard)
	_ = b.Form.Lambda.Set(f.Lambda)
	_ = b.Form.LambdaErr.Set(f.LambdaErr)
	_ = b.Form.G.Set(f.G)
	_ = b.Form.ND.Set(f.ND)
	_ = b.Form.RhoD.Set(f.RhoD)
	_ = b.Form.NS.Set(f.NS)
	_ = b.Form.NSArea.Set(f.NSArea)
	_ = b.Form.NI.Set(f.NI)
	_ = b.Form.NIArea.Set(f.NIArea)

	b.setReport(s.Report)
	_ = b.Result.Status.Set(s.Status)
}

func (b *Bindings) setReport(r *Report) {
	if r == nil {
		for _, v := range []binding.String{
			b.Result.RhoS, b.Result.RhoI, b.Result.CountRatio, b.Result.RhoRatio,
			b.Result.Zeta, b.Result.SigmaZeta, b.Result.RelativeSigma,
		} {
			_ = v.Set("")
		}
		return
	}

	if d := r.Derived; d != nil {
		_ = b.Result.RhoS.Set(util.Fixed6(d.RhoS))
		_ = b.Result.RhoI.Set(util.Fixed6(d.RhoI))
		_ = b.Result.CountRatio.Set(util.Fixed6(d.CountRatio))
		_ = b.Result.RhoRatio.Set(util.Fixed6(d.RhoRatio))
	}
	_ = b.Result.Zeta.Set(util.Fixed2(r.Result.Zeta))
	_ = b.Result.SigmaZeta.Set(util.Fixed2(r.Result.SigmaZeta))
	_ = b.Result.RelativeSigma.Set(util.Fixed2(r.Result.RelativeSigmaPercent))
}

// SyncToState copies the entered form text from the bindings to s.
// Call this before Calculate.
func (b *Bindings) SyncToState(s *State) {
	var f Form
	f.Mineral, _ = b.Form.Mineral.Get()
	f.Standard, _ = b.Form.Standard.Get()
	f.Lambda, _ = b.Form.Lambda.Get()
	f.LambdaErr, _ = b.Form.LambdaErr.Get()
	f.G, _ = b.Form.G.Get()
	f.ND, _ = b.Form.ND.Get()
	f.RhoD, _ = b.Form.RhoD.Get()
	f.NS, _ = b.Form.NS.Get()
	f.NSArea, _ = b.Form.NSArea.Get()
	f.NI, _ = b.Form.NI.Get()
	f.NIArea, _ = b.Form.NIArea.Get()
	s.SetForm(f)
}
