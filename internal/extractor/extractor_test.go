package extractor

import (
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nominafacil/nomina-validator/constants"
)

func testExtractor(t *testing.T) *Extractor {
	t.Helper()
	return New(decimal.Zero, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestExtractFields_SpanishAmounts(t *testing.T) {
	e := testExtractor(t)

	text := `NÓMINA MARZO 2024
Salario Base: 1.253,26€
Plus Convenio: 165,70
Antigüedad: 50,00
Horas Extras: 84,30
Plus Nocturnidad: 41,00
Horas Nocturnas: 20
Dietas: 120,00
Total Devengado: 1.714,26
Total Deducciones: 280,45
Retención IRPF: 230,10
Líquido Total: 1.433,81`

	record := e.ExtractFields(text)

	want := map[string]string{
		constants.SalarioBase:      "1253.26",
		constants.PlusConvenio:     "165.70",
		constants.ValorAntiguedad:  "50.00",
		constants.HorasExtras:      "84.30",
		constants.ValorNocturnidad: "41.00",
		constants.HorasNocturnas:   "20.00",
		constants.Dietas:           "120.00",
		constants.TotalDevengado:   "1714.26",
		constants.TotalDeducciones: "280.45",
		constants.IRPF:             "230.10",
		constants.LiquidoTotal:     "1433.81",
	}
	for key, value := range want {
		assert.Equal(t, value, record[key], "field %s", key)
	}
}

func TestExtractFields_NoFabrication(t *testing.T) {
	e := testExtractor(t)

	assert.Empty(t, e.ExtractFields(""))

	record := e.ExtractFields("Texto sin importes reconocibles")
	assert.NotContains(t, record, constants.SalarioBase)
	assert.NotContains(t, record, constants.Categoria)
}

func TestExtractFields_CeilingRecovery(t *testing.T) {
	e := testExtractor(t)

	// OCR dropped the decimal point; the amount is recovered, not discarded.
	record := e.ExtractFields("Salario Base: 125026")
	assert.Equal(t, "1250.26", record[constants.SalarioBase])
}

func TestExtractFields_YearGluedToAmount(t *testing.T) {
	e := testExtractor(t)

	// OCR glued a date's year to the amount; the scan must stop at the
	// year instead of absorbing its digits into the salary.
	record := e.ExtractFields("Salario Base: 1250 2020")
	assert.Equal(t, "1250.00", record[constants.SalarioBase])

	record = e.ExtractFields("Salario Base: 1.250 2020")
	assert.Equal(t, "1250.00", record[constants.SalarioBase])

	// a non-year 4-digit token is dropped the same way, never joined
	record = e.ExtractFields("Salario Base: 1250 3000")
	assert.Equal(t, "1250.00", record[constants.SalarioBase])
}

func TestExtractFields_CategoryDetection(t *testing.T) {
	e := testExtractor(t)

	tests := []struct {
		text string
		want constants.Category
	}{
		{"Categoría: TES CONDUCTOR", constants.TESConductor},
		{"Puesto: Conductor de ambulancia", constants.TESConductor},
		{"Categoría: Camillero", constants.TESCamillero},
		{"Cargo: GERENTE de zona", constants.Directivo},
		{"Técnico de mantenimiento", constants.Tecnico},
		{"Categoría profesional: EMPLEADO", constants.Empleado},
		{"Categoría: empleado", constants.Empleado},
	}
	for _, tt := range tests {
		record := e.ExtractFields(tt.text)
		assert.Equal(t, string(tt.want), record[constants.Categoria], "text %q", tt.text)
	}
}

func TestExtractFields_EmpleadoBoilerplateIgnored(t *testing.T) {
	e := testExtractor(t)

	// "empleado" in header boilerplate is not a category statement
	record := e.ExtractFields("Datos del empleado\nSalario Base: 1.200,00")
	assert.NotContains(t, record, constants.Categoria)
	assert.Equal(t, "1200.00", record[constants.SalarioBase])
}

func TestExtractFields_CompanyOverride(t *testing.T) {
	e := testExtractor(t)

	text := `AMBULANCIAS M.PASQUAU S.L.
Trabajador: TES CONDUCTOR
Salario Base Mes: 1.239,63
Plus Convenio: 165,70
Dieta Completa: 95,50
Nocturnidad: 38,40
Nº Horas Noct. 18`

	record := e.ExtractFields(text)

	require.Equal(t, "Ambulancias M.Pasquau", record[constants.Empresa])
	assert.Equal(t, "1239.63", record[constants.SalarioBase])
	assert.Equal(t, "165.70", record[constants.PlusConvenio])
	assert.Equal(t, "95.50", record[constants.Dietas])
	assert.Equal(t, "38.40", record[constants.ValorNocturnidad])
	// the company layout labels hours "Nº Horas Noct."; only the override
	// pattern set knows that spelling
	assert.Equal(t, "18.00", record[constants.HorasNocturnas])
	assert.Equal(t, string(constants.TESConductor), record[constants.Categoria])
}

func TestExtractFields_MercadonaProfile(t *testing.T) {
	e := testExtractor(t)

	text := `MERCADONA S.A.
Sueldo Base: 1.328,00
Prima por Objetivos: 210,00
Total Devengos: 1.538,00`

	record := e.ExtractFields(text)

	assert.Equal(t, "Mercadona", record[constants.Empresa])
	assert.Equal(t, "1328.00", record[constants.SalarioBase])
	assert.Equal(t, "210.00", record[constants.Incentivos])
	assert.Equal(t, "1538.00", record[constants.TotalDevengado])
}

func TestExtractFields_AliasPriority(t *testing.T) {
	e := testExtractor(t)

	// the exact label wins over the loose "base" alias further down the text
	text := "Base IRPF: 900,00\nSalario Base: 1.500,00"
	record := e.ExtractFields(text)
	assert.Equal(t, "1500.00", record[constants.SalarioBase])
}
