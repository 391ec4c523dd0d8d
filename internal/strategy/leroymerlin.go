package strategy

import (
	"github.com/nominafacil/nomina-validator/constants"
	"github.com/nominafacil/nomina-validator/internal/entity"
)

// LeroyMerlin (grandes almacenes) adds the quarterly "Prima de Progreso",
// a collective-objectives incentive that is not guaranteed.
type LeroyMerlin struct{}

func (LeroyMerlin) Name() string { return "Leroy Merlin" }

func (LeroyMerlin) RequiredConcepts() []string {
	return []string{
		constants.SalarioBase,
		constants.ValorAntiguedad,
		constants.Incentivos,
		constants.LiquidoTotal,
	}
}

func (LeroyMerlin) DeductionRates() DeductionRates {
	return baseDeductionRates()
}

func (LeroyMerlin) ValidateCustomRules(record entity.PayrollRecord) []string {
	var warnings []string

	incentivos, ok := record.Decimal(constants.Incentivos)
	if !ok || incentivos.IsZero() {
		warnings = append(warnings,
			`No se detecta "Prima de Progreso". Este plus depende de objetivos colectivos de tu tienda/sección y es trimestral.`)
	}

	return warnings
}
