// Package calc computes theoretical entitlements from convenio parameters.
// All functions are pure; amounts use decimal arithmetic throughout.
package calc

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nominafacil/nomina-validator/constants"
	"github.com/nominafacil/nomina-validator/internal/convenio"
)

// hoursPerDay × daysPerYear approximation used for years-of-service math
const hoursPerYear = 24 * 365.25

// TheoreticalBaseSalary resolves the monthly salary floor for a category:
// the company-specific schedule when the convenio has one, else the
// category's minimo, else the universal "empleado" floor.
func TheoreticalBaseSalary(cv *convenio.Definition, categoria string) decimal.Decimal {
	if det, ok := cv.DetallesSalariales[categoria]; ok {
		return det.SalarioBase
	}
	if floor, ok := cv.SalarioMinimo[categoria]; ok {
		return floor
	}
	return cv.SalarioMinimo[string(constants.Empleado)]
}

// SeniorityEntitlement is the outcome of the antigüedad accrual.
type SeniorityEntitlement struct {
	Value       decimal.Decimal
	Years       int
	Quinquenios int
	Explanation string
}

// TheoreticalSeniority computes the quinquenio supplement: whole 5-year
// periods between startDate and asOf, each worth porcentajeBase of the
// theoretical base salary. Convenios without a seniority rule yield a zero
// entitlement and no explanation.
func TheoreticalSeniority(cv *convenio.Definition, categoria string, startDate, asOf time.Time) SeniorityEntitlement {
	if cv.ReglasAntiguedad == nil || cv.ReglasAntiguedad.Tipo != convenio.SeniorityTypeQuinquenio {
		return SeniorityEntitlement{}
	}

	years := asOf.Sub(startDate).Hours() / hoursPerYear
	if years < 0 {
		years = 0
	}
	quinquenios := int(years / 5)

	base := TheoreticalBaseSalary(cv, categoria)
	perPeriod := base.Mul(cv.ReglasAntiguedad.PorcentajeBase)
	pct := cv.ReglasAntiguedad.PorcentajeBase.Mul(decimal.NewFromInt(100))

	return SeniorityEntitlement{
		Value:       perPeriod.Mul(decimal.NewFromInt(int64(quinquenios))).Round(2),
		Years:       int(years),
		Quinquenios: quinquenios,
		Explanation: fmt.Sprintf("%d quinquenios (%s%% de base c/u)", quinquenios, pct.String()),
	}
}

// TheoreticalNightShift prices the reported night hours. The second return
// is false when the convenio defines no night-shift rule; the concept is
// then skipped entirely.
func TheoreticalNightShift(cv *convenio.Definition, hours decimal.Decimal) (decimal.Decimal, bool) {
	if cv.ReglasNocturnidad == nil {
		return decimal.Zero, false
	}
	return hours.Mul(cv.ReglasNocturnidad.ValorHora).Round(2), true
}

// tax brackets: upper bound (exclusive) → flat rate on the whole amount
var taxBrackets = []struct {
	upTo decimal.Decimal
	rate decimal.Decimal
}{
	{decimal.NewFromInt(12450), decimal.NewFromFloat(0.19)},
	{decimal.NewFromInt(20200), decimal.NewFromFloat(0.24)},
	{decimal.NewFromInt(35200), decimal.NewFromFloat(0.30)},
	{decimal.NewFromInt(60000), decimal.NewFromFloat(0.37)},
}

var topRate = decimal.NewFromFloat(0.45)

// ProgressiveIncomeTax estimates IRPF withholding. The bracket rate applies
// to the whole amount, not marginally; callers must treat the result as an
// approximation, not a tax-authority figure.
func ProgressiveIncomeTax(gross decimal.Decimal) decimal.Decimal {
	for _, b := range taxBrackets {
		if gross.LessThan(b.upTo) {
			return gross.Mul(b.rate).Round(2)
		}
	}
	return gross.Mul(topRate).Round(2)
}

// standard full-time month used to derive an hourly rate
var monthlyHours = decimal.NewFromInt(160)

// OvertimeHourValue prices one overtime hour: the normal hourly rate times
// the convenio's multiplier. Returns zero when the convenio defines none.
func OvertimeHourValue(base decimal.Decimal, cv *convenio.Definition) decimal.Decimal {
	if cv.IncrementoHoraExtra.IsZero() {
		return decimal.Zero
	}
	return base.Div(monthlyHours).Mul(cv.IncrementoHoraExtra).Round(2)
}
