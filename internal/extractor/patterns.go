package extractor

import (
	"regexp"
	"strings"

	"github.com/nominafacil/nomina-validator/constants"
)

// moneyToken matches a Spanish-formatted amount: optional thousand groups
// separated by '.', ',' or space, optional decimals. Thousand groups end on
// a word boundary so a following fourth digit is never split off, and an
// adjacent calendar year is captured whole — the normalizer truncates the
// scan there instead of joining the year into the amount.
const moneyToken = `(\d+(?:[., ]\d{3}\b)*(?: (?:19|20)\d{2})?(?:[.,]\d{1,2})?)`

// countToken matches small integer counts (hours, pay periods).
const countToken = `(\d{1,3})`

// labelGap bounds the lookahead between a label and its number so a match
// never drags in an amount from an unrelated nearby label.
const labelGap = `[^0-9\n]{0,20}?`

// FieldPatterns is the ordered pattern list for one concept key. Patterns
// are tried in order; the first normalizable, non-discarded value wins.
type FieldPatterns struct {
	Key      string
	Patterns []*regexp.Regexp
}

func moneyPattern(labels ...string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)(?:` + strings.Join(labels, "|") + `)` + labelGap + moneyToken)
}

func countPattern(labels ...string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)(?:` + strings.Join(labels, "|") + `)` + labelGap + countToken)
}

// genericPatterns is the static per-field pattern table for the generic
// pass. Alias order encodes priority: exact labels first, loose ones last.
var genericPatterns = []FieldPatterns{
	{
		Key: constants.SalarioBase,
		Patterns: []*regexp.Regexp{
			moneyPattern(`salario\s*base`, `sueldo\s*base`),
			moneyPattern(`b\.\s*contingencias`),
			moneyPattern(`\bbase\b`),
		},
	},
	{
		Key: constants.PlusConvenio,
		Patterns: []*regexp.Regexp{
			moneyPattern(`plus\s*(?:de\s*)?convenio`),
		},
	},
	{
		Key: constants.ValorAntiguedad,
		Patterns: []*regexp.Regexp{
			moneyPattern(`antig[üu]edad`, `plus\s*antig[üu]edad`),
			moneyPattern(`antig\.`, `\banti\b`),
			moneyPattern(`trienios?`, `quinquenios?`),
		},
	},
	{
		Key: constants.HorasExtras,
		Patterns: []*regexp.Regexp{
			moneyPattern(`horas\s*extras?`),
			moneyPattern(`h\.\s*extras?`),
		},
	},
	{
		Key: constants.ValorNocturnidad,
		Patterns: []*regexp.Regexp{
			moneyPattern(`plus\s*nocturn(?:o|idad)`),
			moneyPattern(`nocturnidad`),
		},
	},
	{
		Key: constants.HorasNocturnas,
		Patterns: []*regexp.Regexp{
			countPattern(`horas\s*nocturnas?`),
			countPattern(`h\.\s*noct\.?`),
		},
	},
	{
		Key: constants.Dietas,
		Patterns: []*regexp.Regexp{
			moneyPattern(`dietas?`),
			moneyPattern(`media\s*dieta`),
		},
	},
	{
		Key: constants.Incentivos,
		Patterns: []*regexp.Regexp{
			moneyPattern(`prima\s*(?:de\s*)?progreso`, `incentivo\s*ventas`),
			moneyPattern(`prima\s*trimestral`, `participaci[oó]n\s*(?:en\s*)?beneficios`),
		},
	},
	{
		Key: constants.TotalDevengado,
		Patterns: []*regexp.Regexp{
			moneyPattern(`total\s*devengado`, `t\.\s*devengado`),
			moneyPattern(`\bdevengos?\b`),
		},
	},
	{
		Key: constants.TotalDeducciones,
		Patterns: []*regexp.Regexp{
			moneyPattern(`total\s*(?:a\s*)?deducciones?`, `a\s*deducir`),
		},
	},
	{
		Key: constants.IRPF,
		Patterns: []*regexp.Regexp{
			moneyPattern(`irpf`, `retenci[oó]n\s*irpf`),
		},
	},
	{
		Key: constants.LiquidoTotal,
		Patterns: []*regexp.Regexp{
			moneyPattern(`l[ií]quido\s*total`, `l[ií]quido\s*a\s*percibir`),
			moneyPattern(`neto\s*a\s*percibir`),
		},
	},
}
