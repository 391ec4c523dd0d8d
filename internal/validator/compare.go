package validator

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/nominafacil/nomina-validator/constants"
	"github.com/nominafacil/nomina-validator/internal/entity"
)

// compare builds the theoretical-vs-real verdict for one concept. The
// tolerance is inclusive: a shortfall of exactly the tolerance is still
// CORRECT. Any real above theoretical is CORRECT regardless of magnitude —
// workers are never penalized for being overpaid.
func compare(concept string, real, theoretical, tolerance decimal.Decimal) entity.ComparisonResult {
	diff := real.Sub(theoretical).Round(2)

	var status constants.ComparisonStatus
	var message string
	switch {
	case diff.Abs().LessThanOrEqual(tolerance):
		status = constants.StatusCorrect
		message = "Coincide con lo estipulado en el convenio."
	case diff.IsPositive():
		status = constants.StatusCorrect
		message = fmt.Sprintf("¡Bien! Cobras %s€ más de lo mínimo exigido.", diff.StringFixed(2))
	default:
		status = constants.StatusReview
		message = fmt.Sprintf("Atención: Cobras %s€ menos de lo que deberías.", diff.Abs().StringFixed(2))
	}

	return entity.ComparisonResult{
		Concept:     concept,
		Real:        real,
		Theoretical: theoretical,
		Difference:  diff,
		Status:      status,
		Message:     message,
	}
}
