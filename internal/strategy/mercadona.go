package strategy

import (
	"github.com/shopspring/decimal"

	"github.com/nominafacil/nomina-validator/constants"
	"github.com/nominafacil/nomina-validator/internal/entity"
)

// customary Mercadona pay count: 12 monthly + 3 extra
var expectedPagas = decimal.NewFromInt(15)

// Mercadona payslips carry three extra pays (15 yearly) unless prorated.
type Mercadona struct{}

func (Mercadona) Name() string { return "Mercadona" }

func (Mercadona) RequiredConcepts() []string {
	return []string{
		constants.SalarioBase,
		constants.ValorAntiguedad,
		constants.LiquidoTotal,
	}
}

func (Mercadona) DeductionRates() DeductionRates {
	return baseDeductionRates()
}

func (Mercadona) ValidateCustomRules(record entity.PayrollRecord) []string {
	var warnings []string

	if pagas, ok := record.Decimal(constants.Pagas); ok {
		if !pagas.Equal(expectedPagas) && !record.Has(constants.Prorrateo) {
			warnings = append(warnings,
				"Mercadona suele tener 3 pagas extras (15 anuales). Verifica tu configuración de pagas.")
		}
	}

	return warnings
}
