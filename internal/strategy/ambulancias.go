package strategy

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/nominafacil/nomina-validator/constants"
	"github.com/nominafacil/nomina-validator/internal/entity"
)

// above this, dietas are unlikely to stay within the tax-exempt range
var dietasSoftCap = decimal.NewFromInt(500)

// Ambulancias covers Ambulancias M.Pasquau (transporte sanitario).
type Ambulancias struct{}

func (Ambulancias) Name() string { return "Ambulancias M.Pasquau" }

func (Ambulancias) RequiredConcepts() []string {
	return []string{
		constants.SalarioBase,
		constants.PlusConvenio,
		constants.Dietas,
		constants.ValorAntiguedad,
		constants.ValorNocturnidad,
	}
}

func (Ambulancias) DeductionRates() DeductionRates {
	return baseDeductionRates()
}

func (Ambulancias) ValidateCustomRules(record entity.PayrollRecord) []string {
	var warnings []string

	if dietas, ok := record.Decimal(constants.Dietas); ok && dietas.GreaterThan(dietasSoftCap) {
		warnings = append(warnings, fmt.Sprintf(
			"Las dietas (%s€) parecen inusualmente altas (>%s€). Verificar si están exentas.",
			dietas.StringFixed(2), dietasSoftCap.StringFixed(0)))
	}

	// ambulance crews almost always accrue night hours
	if !record.Has(constants.ValorNocturnidad) && !record.Has(constants.HorasNocturnas) {
		warnings = append(warnings,
			"No se ha detectado Nocturnidad. ¿El conductor no realizó guardias nocturnas?")
	}

	return warnings
}
