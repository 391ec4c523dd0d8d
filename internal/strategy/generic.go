package strategy

import (
	"github.com/nominafacil/nomina-validator/constants"
	"github.com/nominafacil/nomina-validator/internal/entity"
)

// Generic is the fallback strategy when no employer keyword matches.
type Generic struct{}

func (Generic) Name() string { return "Convenio genérico" }

func (Generic) RequiredConcepts() []string {
	return []string{constants.SalarioBase}
}

func (Generic) DeductionRates() DeductionRates {
	return baseDeductionRates()
}

func (Generic) ValidateCustomRules(entity.PayrollRecord) []string {
	return nil
}
