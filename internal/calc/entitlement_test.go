package calc

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nominafacil/nomina-validator/internal/convenio"
)

func fixtureConvenio() *convenio.Definition {
	return &convenio.Definition{
		Nombre: "Convenio de prueba",
		SalarioMinimo: map[string]decimal.Decimal{
			"empleado": decimal.NewFromFloat(1100.00),
			"tecnico":  decimal.NewFromFloat(1350.00),
		},
		DetallesSalariales: map[string]convenio.SalaryDetail{
			"tes_conductor": {
				SalarioBase:  decimal.NewFromFloat(1239.63),
				PlusConvenio: decimal.NewFromFloat(165.70),
			},
		},
		ReglasAntiguedad: &convenio.SeniorityRule{
			Tipo:           convenio.SeniorityTypeQuinquenio,
			PorcentajeBase: decimal.NewFromFloat(0.05),
		},
		ReglasNocturnidad: &convenio.NightShiftRule{
			ValorHora: decimal.NewFromFloat(2.05),
		},
		IncrementoHoraExtra: decimal.NewFromFloat(1.75),
	}
}

func TestTheoreticalBaseSalary(t *testing.T) {
	cv := fixtureConvenio()

	// company schedule takes precedence
	assert.Equal(t, "1239.63", TheoreticalBaseSalary(cv, "tes_conductor").StringFixed(2))
	// category floor when no schedule entry
	assert.Equal(t, "1350.00", TheoreticalBaseSalary(cv, "tecnico").StringFixed(2))
	// unknown category falls back to the empleado floor
	assert.Equal(t, "1100.00", TheoreticalBaseSalary(cv, "aprendiz").StringFixed(2))
}

func TestTheoreticalSeniority(t *testing.T) {
	cv := fixtureConvenio()
	asOf := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

	t.Run("ten years of service", func(t *testing.T) {
		start := time.Date(2015, time.January, 1, 0, 0, 0, 0, time.UTC)
		ent := TheoreticalSeniority(cv, "empleado", start, asOf)

		assert.Equal(t, 10, ent.Years)
		assert.Equal(t, 2, ent.Quinquenios)
		// 2 × (5% of 1100.00)
		assert.Equal(t, "110.00", ent.Value.StringFixed(2))
		assert.Equal(t, "2 quinquenios (5% de base c/u)", ent.Explanation)
	})

	t.Run("under five years accrues nothing", func(t *testing.T) {
		start := time.Date(2021, time.June, 15, 0, 0, 0, 0, time.UTC)
		ent := TheoreticalSeniority(cv, "empleado", start, asOf)

		assert.Equal(t, 0, ent.Quinquenios)
		assert.True(t, ent.Value.IsZero())
	})

	t.Run("future start date clamps to zero", func(t *testing.T) {
		start := asOf.AddDate(1, 0, 0)
		ent := TheoreticalSeniority(cv, "empleado", start, asOf)

		assert.Equal(t, 0, ent.Years)
		assert.True(t, ent.Value.IsZero())
	})

	t.Run("no seniority rule", func(t *testing.T) {
		bare := &convenio.Definition{
			Nombre:        "Sin antigüedad",
			SalarioMinimo: map[string]decimal.Decimal{"empleado": decimal.NewFromFloat(1100.00)},
		}
		ent := TheoreticalSeniority(bare, "empleado", time.Time{}, asOf)

		assert.True(t, ent.Value.IsZero())
		assert.Empty(t, ent.Explanation)
	})
}

func TestTheoreticalNightShift(t *testing.T) {
	cv := fixtureConvenio()

	value, ok := TheoreticalNightShift(cv, decimal.NewFromInt(20))
	require.True(t, ok)
	assert.Equal(t, "41.00", value.StringFixed(2))

	bare := &convenio.Definition{Nombre: "Sin nocturnidad"}
	_, ok = TheoreticalNightShift(bare, decimal.NewFromInt(20))
	assert.False(t, ok)
}

func TestProgressiveIncomeTax(t *testing.T) {
	tests := []struct {
		gross string
		want  string
	}{
		{"10000", "1900.00"},  // 19%
		{"12450", "2988.00"},  // bracket bound belongs to the next rate
		{"15000", "3600.00"},  // 24%
		{"25000", "7500.00"},  // 30%
		{"40000", "14800.00"}, // 37%
		{"70000", "31500.00"}, // 45%
	}
	for _, tt := range tests {
		gross, err := decimal.NewFromString(tt.gross)
		require.NoError(t, err)
		assert.Equal(t, tt.want, ProgressiveIncomeTax(gross).StringFixed(2), "gross %s", tt.gross)
	}
}

func TestOvertimeHourValue(t *testing.T) {
	cv := fixtureConvenio()

	// 1239.63 / 160 × 1.75
	base := decimal.NewFromFloat(1239.63)
	assert.Equal(t, "13.56", OvertimeHourValue(base, cv).StringFixed(2))

	bare := &convenio.Definition{Nombre: "Sin horas extra"}
	assert.True(t, OvertimeHourValue(base, bare).IsZero())
}
