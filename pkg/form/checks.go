package form

import (
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	checkOnce      sync.Once
	checkValidator *validator.Validate
)

func ruleValidator() *validator.Validate {
	checkOnce.Do(func() {
		checkValidator = validator.New()
	})
	return checkValidator
}

// applyChecks evaluates the declared field rules in declaration order. A
// field absent from the extracted mapping only fails rules that include
// "required"; other rules have nothing to evaluate against.
func (f *Form) applyChecks(errs *Errors) {
	for _, check := range f.variant.schema.checks {
		value, present := f.fields[check.field]
		if !present || value == nil {
			if ruleRequires(check.rule) {
				errs.Add(check.message)
			}
			continue
		}
		if err := ruleValidator().Var(value, check.rule); err != nil {
			errs.Add(check.message)
		}
	}
}

func ruleRequires(rule string) bool {
	for _, part := range strings.Split(rule, ",") {
		if strings.TrimSpace(part) == "required" {
			return true
		}
	}
	return false
}
