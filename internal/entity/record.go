package entity

import (
	"github.com/shopspring/decimal"

	"github.com/nominafacil/nomina-validator/constants"
)

// PayrollRecord is the merged working record of a validation: concept key →
// canonical string value. Monetary values carry two decimals ("1253.26").
// A missing key means "no data", which downstream code must keep distinct
// from a zero value.
type PayrollRecord map[string]string

// Has reports whether the concept is present with a non-empty value.
func (r PayrollRecord) Has(key string) bool {
	v, ok := r[key]
	return ok && v != ""
}

// Decimal parses the concept as a decimal amount. The second return is false
// when the key is absent or its value does not parse; callers treat that as
// a concept-skip, never as zero.
func (r PayrollRecord) Decimal(key string) (decimal.Decimal, bool) {
	v, ok := r[key]
	if !ok || v == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// DecimalOr parses the concept, falling back to def when absent or malformed.
func (r PayrollRecord) DecimalOr(key string, def decimal.Decimal) decimal.Decimal {
	if d, ok := r.Decimal(key); ok {
		return d
	}
	return def
}

// Merge overlays declared data on top of auto-extracted data. Declared values
// win on key collision; keys outside the fixed vocabulary and empty declared
// values are dropped.
func Merge(auto PayrollRecord, declared map[string]string) PayrollRecord {
	merged := make(PayrollRecord, len(auto)+len(declared))
	for k, v := range auto {
		if v != "" {
			merged[k] = v
		}
	}
	for k, v := range declared {
		if !constants.IsKnownConcept(k) || v == "" {
			continue
		}
		merged[k] = v
	}
	return merged
}

// ExtractedField is one candidate numeric match produced by the extractor.
type ExtractedField struct {
	Key            string               `json:"key"`
	RawText        string               `json:"raw_text"`
	CanonicalValue decimal.Decimal      `json:"canonical_value"`
	Confidence     constants.Confidence `json:"confidence"`
}
