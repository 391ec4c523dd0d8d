package constants

// Concept keys of the payroll working record. The vocabulary is fixed:
// unknown keys in declared data are ignored, never stored.
const (
	SalarioBase         = "salarioBase"
	PlusConvenio        = "plusConvenio"
	ValorAntiguedad     = "valorAntiguedad"
	ValorNocturnidad    = "valorNocturnidad"
	HorasNocturnas      = "horasNocturnas"
	HorasExtras         = "horasExtras"
	Dietas              = "dietas"
	TotalDevengado      = "totalDevengado"
	TotalDeducciones    = "totalDeducciones"
	IRPF                = "irpf"
	LiquidoTotal        = "liquidoTotal"
	Incentivos          = "incentivos"
	Pagas               = "pagas"
	Prorrateo           = "prorrateo"
	Categoria           = "categoria"
	Convenio            = "convenio"
	Empresa             = "empresa"
	AntiguedadStartDate = "antiguedadStartDate"
)

var knownConcepts = map[string]struct{}{
	SalarioBase:         {},
	PlusConvenio:        {},
	ValorAntiguedad:     {},
	ValorNocturnidad:    {},
	HorasNocturnas:      {},
	HorasExtras:         {},
	Dietas:              {},
	TotalDevengado:      {},
	TotalDeducciones:    {},
	IRPF:                {},
	LiquidoTotal:        {},
	Incentivos:          {},
	Pagas:               {},
	Prorrateo:           {},
	Categoria:           {},
	Convenio:            {},
	Empresa:             {},
	AntiguedadStartDate: {},
}

// IsKnownConcept reports whether key belongs to the record vocabulary.
func IsKnownConcept(key string) bool {
	_, ok := knownConcepts[key]
	return ok
}

// AccruedConcepts are the earning concepts summed when the payslip does not
// declare a total devengado of its own. Order matters for reporting.
var AccruedConcepts = []string{SalarioBase, PlusConvenio, ValorAntiguedad, ValorNocturnidad}
