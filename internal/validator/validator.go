// Package validator orchestrates extraction, convenio resolution and
// entitlement comparisons into a single validation report.
package validator

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nominafacil/nomina-validator/constants"
	"github.com/nominafacil/nomina-validator/internal/calc"
	"github.com/nominafacil/nomina-validator/internal/common"
	"github.com/nominafacil/nomina-validator/internal/convenio"
	"github.com/nominafacil/nomina-validator/internal/entity"
	"github.com/nominafacil/nomina-validator/internal/extractor"
	"github.com/nominafacil/nomina-validator/internal/strategy"
)

// accepted layouts for the seniority start date
var dateLayouts = []string{"2006-01-02", "02/01/2006", "02-01-2006"}

// Engine runs payslip validations against an immutable convenio dataset.
// It holds no per-call state; concurrent Validate calls are safe.
type Engine struct {
	Dataset   convenio.Dataset
	Registry  *strategy.Registry
	Extractor *extractor.Extractor
	Cfg       common.EngineConfig
	Logger    *slog.Logger
	Now       func() time.Time
}

// NewEngine wires an engine from its collaborators. A nil dataset is a
// programming error and is rejected immediately.
func NewEngine(dataset convenio.Dataset, cfg common.EngineConfig, logger *slog.Logger) (*Engine, error) {
	if len(dataset) == 0 {
		return nil, common.NewAppError("ENGINE_MISCONFIGURED", "convenio dataset is required", common.ErrMisconfigured)
	}
	if dataset.Resolve("") == nil {
		return nil, common.NewAppError("ENGINE_MISCONFIGURED", "dataset lacks the general convenio", common.ErrInvalidDataset)
	}
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.BaseTolerance.IsZero() {
		cfg.BaseTolerance = common.DefaultBaseTolerance
	}
	if cfg.SeniorityTolerance.IsZero() {
		cfg.SeniorityTolerance = common.DefaultSeniorityTolerance
	}
	if cfg.NightShiftTolerance.IsZero() {
		cfg.NightShiftTolerance = common.DefaultNightShiftTolerance
	}
	return &Engine{
		Dataset:   dataset,
		Registry:  strategy.NewRegistry(),
		Extractor: extractor.New(cfg.SalaryCeiling, logger),
		Cfg:       cfg,
		Logger:    logger,
		Now:       time.Now,
	}, nil
}

// ExtractFields exposes the raw field map for callers that want a
// review-before-validating step.
func (e *Engine) ExtractFields(text string) entity.PayrollRecord {
	return e.Extractor.ExtractFields(text)
}

// Validate runs the full pipeline: extract, merge declared data (declared
// wins), resolve convenio and strategy, compare each concept, aggregate.
// The returned error is non-nil only for a mis-constructed engine; every
// business condition is reported inside the ValidationReport.
func (e *Engine) Validate(extractedText string, declaredData map[string]string) (*entity.ValidationReport, error) {
	if len(e.Dataset) == 0 || e.Registry == nil || e.Extractor == nil {
		return nil, common.NewAppError("ENGINE_MISCONFIGURED", "engine not built with NewEngine", common.ErrMisconfigured)
	}

	report := &entity.ValidationReport{
		ID:          uuid.New(),
		Errors:      []string{},
		Warnings:    []string{},
		Details:     map[string]any{},
		GeneratedAt: e.now(),
	}

	auto := e.Extractor.ExtractFields(extractedText)
	record := entity.Merge(auto, declaredData)

	convenioKey := record[constants.Convenio]
	if convenioKey == "" {
		convenioKey = convenio.DetectFromEmployer(record[constants.Empresa])
	}
	cv := e.Dataset.Resolve(convenioKey)
	strat := e.Registry.Resolve(record[constants.Empresa])

	e.Logger.Info("validate.start",
		"report_id", report.ID,
		"text_bytes", len(extractedText),
		"extracted_fields", len(auto),
		"declared_fields", len(declaredData),
		"convenio", convenioKey,
		"strategy", strat.Name(),
	)

	// declared data may carry a free-form label ("Técnico de taller")
	// instead of a category code
	categoria := record[constants.Categoria]
	if cat, ok := constants.Canonicalize(categoria); ok {
		categoria = string(cat)
	}
	e.checkBaseSalary(record, cv, categoria, report)
	e.checkSeniority(record, cv, categoria, report)
	e.checkNightShift(record, cv, report)
	e.checkOvertime(record, cv, categoria, report)
	e.checkAllowances(record, report)

	report.Warnings = append(report.Warnings, strat.ValidateCustomRules(record)...)
	for _, concept := range strat.RequiredConcepts() {
		if !record.Has(concept) {
			report.Warnings = append(report.Warnings, fmt.Sprintf(
				"No se ha detectado el concepto %q, requerido por el convenio %s.", concept, strat.Name()))
		}
	}

	e.summarize(record, strat, report)

	report.IsValid = len(report.Errors) == 0
	report.ConvenioApplied = cv.Nombre

	e.Logger.Info("validate.ok",
		"report_id", report.ID,
		"is_valid", report.IsValid,
		"errors", len(report.Errors),
		"warnings", len(report.Warnings),
	)
	return report, nil
}

// checkBaseSalary compares salario base (and, on company-specific salary
// schedules, plus convenio) against the convenio floor. Shortfalls beyond
// tolerance are hard errors.
func (e *Engine) checkBaseSalary(record entity.PayrollRecord, cv *convenio.Definition, categoria string, report *entity.ValidationReport) {
	real := record.DecimalOr(constants.SalarioBase, decimal.Zero)
	teorico := calc.TheoreticalBaseSalary(cv, categoria)

	if det, ok := cv.DetallesSalariales[categoria]; ok {
		plusReal := record.DecimalOr(constants.PlusConvenio, decimal.Zero)
		plusComp := compare("Plus Convenio", plusReal, det.PlusConvenio, e.Cfg.BaseTolerance)
		report.Details["plus_convenio"] = plusComp
		if plusComp.Status == constants.StatusReview {
			report.Errors = append(report.Errors, fmt.Sprintf(
				"El Plus Convenio (%s€) es inferior al estipulado (%s€).",
				plusReal.StringFixed(2), det.PlusConvenio.StringFixed(2)))
		}
	}

	comp := compare("Salario Base", real, teorico, e.Cfg.BaseTolerance)
	report.Details["salario_base_comparativa"] = comp
	if comp.Status == constants.StatusReview {
		report.Errors = append(report.Errors, fmt.Sprintf(
			"El Salario Base (%s€) es inferior al convenio (%s€).",
			real.StringFixed(2), teorico.StringFixed(2)))
	}
}

// checkSeniority evaluates antigüedad when a start date and a seniority
// rule exist. Shortfalls are soft warnings: seniority proof is less certain
// than base salary. Malformed dates skip the concept, never abort.
func (e *Engine) checkSeniority(record entity.PayrollRecord, cv *convenio.Definition, categoria string, report *entity.ValidationReport) {
	if !record.Has(constants.AntiguedadStartDate) || cv.ReglasAntiguedad == nil {
		return
	}

	start, ok := parseDate(record[constants.AntiguedadStartDate])
	if !ok {
		e.Logger.Warn("validate.seniority_skip", "start_date", record[constants.AntiguedadStartDate], "reason", "unparseable date")
		return
	}

	sen := calc.TheoreticalSeniority(cv, categoria, start, e.now())
	real := record.DecimalOr(constants.ValorAntiguedad, decimal.Zero)
	comp := compare("Antigüedad", real, sen.Value, e.Cfg.SeniorityTolerance)

	report.Details["antiguedad"] = entity.SeniorityDetail{
		ComparisonResult: comp,
		Years:            sen.Years,
		Calculation:      sen.Explanation,
	}
	if comp.Status == constants.StatusReview {
		report.Warnings = append(report.Warnings, fmt.Sprintf(
			"La antigüedad percibida (%s€) parece menor a la teórica (%s€).",
			real.StringFixed(2), sen.Value.StringFixed(2)))
	}
}

// checkNightShift evaluates nocturnidad when hours and a rate exist.
// Informational only: the status lands in the details, nothing is pushed to
// errors or warnings.
func (e *Engine) checkNightShift(record entity.PayrollRecord, cv *convenio.Definition, report *entity.ValidationReport) {
	hours, ok := record.Decimal(constants.HorasNocturnas)
	if !ok {
		return
	}
	teorico, ok := calc.TheoreticalNightShift(cv, hours)
	if !ok {
		return
	}

	real := record.DecimalOr(constants.ValorNocturnidad, decimal.Zero)
	comp := compare("Nocturnidad", real, teorico, e.Cfg.NightShiftTolerance)

	report.Details["nocturnidad"] = entity.NightShiftDetail{
		ComparisonResult: comp,
		Hours:            hours,
		Calculation: fmt.Sprintf("%sh x %s€/h",
			hours.StringFixed(2), cv.ReglasNocturnidad.ValorHora.String()),
	}
}

// checkOvertime surfaces the convenio's mandated overtime hourly rate next
// to the amount paid. The payslip carries an amount, not an hour count, so
// no comparison is possible; the rate lets the worker divide for themselves.
func (e *Engine) checkOvertime(record entity.PayrollRecord, cv *convenio.Definition, categoria string, report *entity.ValidationReport) {
	amount, ok := record.Decimal(constants.HorasExtras)
	if !ok {
		return
	}
	hourValue := calc.OvertimeHourValue(calc.TheoreticalBaseSalary(cv, categoria), cv)
	if hourValue.IsZero() {
		return
	}
	report.Details["horas_extras"] = entity.OvertimeDetail{
		Real:      amount,
		HourValue: hourValue,
		Info: fmt.Sprintf("El convenio valora la hora extra en %s€. Divide el importe para comprobar las horas pagadas.",
			hourValue.StringFixed(2)),
	}
}

// checkAllowances surfaces dietas for visibility. No theoretical floor
// exists, so no comparison is made.
func (e *Engine) checkAllowances(record entity.PayrollRecord, report *entity.ValidationReport) {
	dietas, ok := record.Decimal(constants.Dietas)
	if !ok {
		return
	}
	report.Details["dietas"] = entity.AllowanceDetail{
		Real: dietas,
		Info: "Verificar según días de desplazamiento: las dietas deben corresponder a días reales fuera del centro.",
	}
}

// summarize estimates totals and net pay. Every summary figure requires its
// inputs to be actually present; nothing is derived from assumed zeros.
func (e *Engine) summarize(record entity.PayrollRecord, strat strategy.ConvenioStrategy, report *entity.ValidationReport) {
	total, ok := record.Decimal(constants.TotalDevengado)
	if !ok {
		// sum only the accrual concepts the payslip actually carries
		sum := decimal.Zero
		present := false
		for _, key := range constants.AccruedConcepts {
			if v, has := record.Decimal(key); has {
				sum = sum.Add(v)
				present = true
			}
		}
		if !present {
			return
		}
		total = sum
	}

	rates := strat.DeductionRates()
	ss := total.Mul(rates.Total()).Div(decimal.NewFromInt(100)).Round(2)
	irpf := calc.ProgressiveIncomeTax(total)

	report.Details["calculos_finales"] = entity.SummaryDetail{
		TotalDevengado:          total.Round(2),
		SeguridadSocialEstimada: ss,
		IRPFEstimado:            irpf,
		LiquidoEstimado:         total.Sub(ss).Sub(irpf).Round(2),
	}
}

func (e *Engine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
