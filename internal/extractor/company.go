package extractor

import (
	"regexp"

	"github.com/nominafacil/nomina-validator/constants"
)

// companyProfile is a known employer payslip layout: a signature that
// identifies it in the raw text and a higher-precision pattern set tried
// before the generic pass.
type companyProfile struct {
	Name      string
	Signature *regexp.Regexp
	Patterns  []FieldPatterns
}

var companyProfiles = []companyProfile{
	{
		Name:      "Ambulancias M.Pasquau",
		Signature: regexp.MustCompile(`(?i)ambulancias|pasquau`),
		Patterns: []FieldPatterns{
			// Pasquau slips label the base "Salario Base Mes" and print the
			// plus on its own line right below it.
			{Key: constants.SalarioBase, Patterns: []*regexp.Regexp{moneyPattern(`salario\s*base\s*mes`, `salario\s*base`)}},
			{Key: constants.PlusConvenio, Patterns: []*regexp.Regexp{moneyPattern(`plus\s*convenio`)}},
			{Key: constants.Dietas, Patterns: []*regexp.Regexp{moneyPattern(`dieta\s*completa`, `media\s*dieta`, `dietas?`)}},
			{Key: constants.ValorNocturnidad, Patterns: []*regexp.Regexp{moneyPattern(`nocturnidad`)}},
			{Key: constants.HorasNocturnas, Patterns: []*regexp.Regexp{countPattern(`n[ºo]\s*horas\s*noct\.?`, `horas\s*nocturnas?`)}},
		},
	},
	{
		Name:      "Mercadona",
		Signature: regexp.MustCompile(`(?i)mercadona`),
		Patterns: []FieldPatterns{
			{Key: constants.SalarioBase, Patterns: []*regexp.Regexp{moneyPattern(`sueldo\s*base`, `salario\s*base`)}},
			{Key: constants.Incentivos, Patterns: []*regexp.Regexp{moneyPattern(`prima\s*(?:por\s*)?objetivos`)}},
			{Key: constants.TotalDevengado, Patterns: []*regexp.Regexp{moneyPattern(`total\s*devengos?`, `total\s*devengado`)}},
		},
	},
	{
		Name:      "Leroy Merlin",
		Signature: regexp.MustCompile(`(?i)leroy\s*merlin`),
		Patterns: []FieldPatterns{
			{Key: constants.SalarioBase, Patterns: []*regexp.Regexp{moneyPattern(`salario\s*base`)}},
			{Key: constants.Incentivos, Patterns: []*regexp.Regexp{moneyPattern(`prima\s*(?:de\s*)?progreso`, `incentivo\s*ventas`, `participaci[oó]n\s*(?:en\s*)?beneficios`)}},
		},
	},
}

// detectCompany returns the first profile whose signature appears in text.
func detectCompany(text string) *companyProfile {
	for i := range companyProfiles {
		if companyProfiles[i].Signature.MatchString(text) {
			return &companyProfiles[i]
		}
	}
	return nil
}
