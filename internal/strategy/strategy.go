package strategy

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/nominafacil/nomina-validator/internal/entity"
)

// DeductionRates are employee social-security contribution percentages.
type DeductionRates struct {
	ContingenciasComunes decimal.Decimal `json:"contingenciasComunes"`
	MEI                  decimal.Decimal `json:"mei"`
	FormacionProfesional decimal.Decimal `json:"formacionProfesional"`
	Desempleo            decimal.Decimal `json:"desempleo"`
}

// Total sums the rates, still as a percentage.
func (r DeductionRates) Total() decimal.Decimal {
	return r.ContingenciasComunes.Add(r.MEI).Add(r.FormacionProfesional).Add(r.Desempleo)
}

// standard employee contribution rates, shared by every current convenio
func baseDeductionRates() DeductionRates {
	return DeductionRates{
		ContingenciasComunes: decimal.NewFromFloat(4.70),
		MEI:                  decimal.NewFromFloat(0.13),
		FormacionProfesional: decimal.NewFromFloat(0.10),
		Desempleo:            decimal.NewFromFloat(1.55),
	}
}

// ConvenioStrategy carries the employer-specific rule set applied during
// validation. Implementations must be stateless.
type ConvenioStrategy interface {
	Name() string
	// RequiredConcepts lists the concept keys this convenio expects to see
	// on every payslip.
	RequiredConcepts() []string
	DeductionRates() DeductionRates
	// ValidateCustomRules returns human-readable warnings; it never fails
	// the validation.
	ValidateCustomRules(record entity.PayrollRecord) []string
}

type registration struct {
	keywords []string
	strategy ConvenioStrategy
}

// Registry resolves an employer name to its convenio strategy.
type Registry struct {
	registrations []registration
	generic       ConvenioStrategy
}

// NewRegistry returns a registry with every known strategy registered.
func NewRegistry() *Registry {
	return &Registry{
		registrations: []registration{
			{[]string{"ambulancias", "pasquau"}, Ambulancias{}},
			{[]string{"mercadona"}, Mercadona{}},
			{[]string{"leroy", "merlin"}, LeroyMerlin{}},
		},
		generic: Generic{},
	}
}

// Resolve selects exactly one strategy by case-insensitive substring match
// against the employer name. Unknown or empty names get the generic
// strategy; strategies are never merged.
func (r *Registry) Resolve(employerName string) ConvenioStrategy {
	if employerName == "" {
		return r.generic
	}
	name := strings.ToLower(employerName)
	for _, reg := range r.registrations {
		for _, kw := range reg.keywords {
			if strings.Contains(name, kw) {
				return reg.strategy
			}
		}
	}
	return r.generic
}
