package extractor

import (
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/nominafacil/nomina-validator/constants"
	"github.com/nominafacil/nomina-validator/internal/entity"
	"github.com/nominafacil/nomina-validator/internal/numeric"
)

// Extractor scans free-form payslip text with the static pattern tables and
// delegates numeric cleanup to the normalizer. Safe for concurrent use.
type Extractor struct {
	Norm   *numeric.Normalizer
	Logger *slog.Logger
}

func New(ceiling decimal.Decimal, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{
		Norm:   numeric.NewNormalizer(ceiling, logger),
		Logger: logger,
	}
}

// ExtractFields returns the partial record recognized in text. Unmatched
// fields are absent from the map, never defaulted to zero.
func (e *Extractor) ExtractFields(text string) entity.PayrollRecord {
	record := entity.PayrollRecord{}
	if text == "" {
		return record
	}

	if profile := detectCompany(text); profile != nil {
		e.Logger.Debug("extract.company_override", "company", profile.Name)
		e.runPass(text, profile.Patterns, record)
		if !record.Has(constants.Empresa) {
			record[constants.Empresa] = profile.Name
		}
	}

	e.runPass(text, genericPatterns, record)

	if cat, ok := detectCategory(text); ok {
		record[constants.Categoria] = string(cat)
	}

	e.Logger.Info("extract.ok", "fields", len(record))
	return record
}

// runPass tries each field's patterns in order; fields already resolved by
// an earlier pass are not reattempted.
func (e *Extractor) runPass(text string, table []FieldPatterns, record entity.PayrollRecord) {
	for _, fp := range table {
		if record.Has(fp.Key) {
			continue
		}
		for _, re := range fp.Patterns {
			m := re.FindStringSubmatch(text)
			if m == nil {
				continue
			}
			field, ok := e.Norm.Normalize(m[1], fp.Key)
			if !ok {
				// discarded candidate; try the next alias
				continue
			}
			record[fp.Key] = numeric.Canonical(field.CanonicalValue)
			e.Logger.Debug("extract.field",
				"key", fp.Key, "raw", m[1],
				"value", record[fp.Key], "confidence", field.Confidence,
			)
			break
		}
	}
}
