package form

// Handler carries the per-variant behaviour hooks. Validate inspects the
// instance and adds messages to errs; it must not assume errs carries state
// from a previous pass. Execute commits the variant's side effect and is only
// invoked after the whole form tree has been found valid; errors it returns
// propagate untranslated to the caller of Run.
type Handler interface {
	Validate(f *Form, errs *Errors)
	Execute(f *Form) error
}

// NopHandler provides no-op hook implementations. Embed it to override only
// one side of the contract.
type NopHandler struct{}

func (NopHandler) Validate(*Form, *Errors) {}

func (NopHandler) Execute(*Form) error { return nil }

// Hooks adapts plain functions to the Handler interface. Nil functions
// behave as no-ops.
type Hooks struct {
	OnValidate func(f *Form, errs *Errors)
	OnExecute  func(f *Form) error
}

func (h Hooks) Validate(f *Form, errs *Errors) {
	if h.OnValidate != nil {
		h.OnValidate(f, errs)
	}
}

func (h Hooks) Execute(f *Form) error {
	if h.OnExecute != nil {
		return h.OnExecute(f)
	}
	return nil
}
