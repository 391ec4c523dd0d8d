package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nominafacil/nomina-validator/constants"
)

// ComparisonResult holds one theoretical-vs-real comparison for a concept.
type ComparisonResult struct {
	Concept     string                     `json:"concept"`
	Real        decimal.Decimal            `json:"real"`
	Theoretical decimal.Decimal            `json:"theoretical"`
	Difference  decimal.Decimal            `json:"difference"`
	Status      constants.ComparisonStatus `json:"status"`
	Message     string                     `json:"message"`
}

// SeniorityDetail extends a comparison with the accrual explanation.
type SeniorityDetail struct {
	ComparisonResult
	Years       int    `json:"years"`
	Calculation string `json:"calculation"`
}

// NightShiftDetail extends a comparison with the reported hours.
type NightShiftDetail struct {
	ComparisonResult
	Hours       decimal.Decimal `json:"hours"`
	Calculation string          `json:"calculation"`
}

// OvertimeDetail reports the overtime amount next to the per-hour rate the
// convenio mandates, so the worker can check the hours behind the figure.
type OvertimeDetail struct {
	Real      decimal.Decimal `json:"real"`
	HourValue decimal.Decimal `json:"hour_value"`
	Info      string          `json:"info"`
}

// AllowanceDetail reports subsistence allowances (dietas) for visibility.
// There is no universal legal floor, so no comparison is made.
type AllowanceDetail struct {
	Real decimal.Decimal `json:"real"`
	Info string          `json:"info"`
}

// SummaryDetail holds the estimated totals of the payslip.
type SummaryDetail struct {
	TotalDevengado          decimal.Decimal `json:"total_devengado"`
	SeguridadSocialEstimada decimal.Decimal `json:"seguridad_social_estimada"`
	IRPFEstimado            decimal.Decimal `json:"irpf_estimado"`
	LiquidoEstimado         decimal.Decimal `json:"liquido_estimado"`
}

// ValidationReport is the final outcome of a validation call. IsValid is
// true iff Errors is empty; warnings never affect validity.
type ValidationReport struct {
	ID              uuid.UUID      `json:"id"`
	IsValid         bool           `json:"isValid"`
	Errors          []string       `json:"errors"`
	Warnings        []string       `json:"warnings"`
	Details         map[string]any `json:"details"`
	ConvenioApplied string         `json:"convenioApplied"`
	GeneratedAt     time.Time      `json:"generatedAt"`
}
