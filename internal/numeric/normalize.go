package numeric

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/nominafacil/nomina-validator/constants"
	"github.com/nominafacil/nomina-validator/internal/entity"
)

// DefaultSalaryCeiling is the plausibility cap for a monthly salary amount.
// OCR concatenations (amount glued to a date) typically blow past it.
var DefaultSalaryCeiling = decimal.NewFromInt(20000)

var (
	reKeep     = regexp.MustCompile(`[^0-9., ]`)
	reDigits   = regexp.MustCompile(`[^0-9]`)
	reThousand = regexp.MustCompile(`^\d{3}(?:[.,]\d+)?$`)
	reYear     = regexp.MustCompile(`^(?:19|20)\d{2}$`)
)

// Normalizer converts raw numeric-looking substrings (Spanish separators,
// stray spaces, OCR noise) into canonical decimal values. It is
// deterministic and side-effect-free apart from logging.
type Normalizer struct {
	Ceiling decimal.Decimal
	Logger  *slog.Logger
}

func NewNormalizer(ceiling decimal.Decimal, logger *slog.Logger) *Normalizer {
	if ceiling.IsZero() {
		ceiling = DefaultSalaryCeiling
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Normalizer{Ceiling: ceiling, Logger: logger}
}

// fields whose magnitude is checked against the monthly-salary ceiling
var ceilingHints = map[string]struct{}{
	constants.SalarioBase:    {},
	constants.TotalDevengado: {},
}

// Normalize parses raw into a canonical decimal for the hinted field. The
// second return is false when the token is unusable; the returned field then
// carries ConfidenceDiscarded and must not enter the record.
func (n *Normalizer) Normalize(raw, fieldHint string) (entity.ExtractedField, bool) {
	field := entity.ExtractedField{Key: fieldHint, RawText: raw, Confidence: constants.ConfidenceDiscarded}

	s := strings.TrimSpace(reKeep.ReplaceAllString(raw, ""))
	if s == "" {
		n.Logger.Debug("numeric.discard", "field", fieldHint, "raw", raw, "reason", "empty after strip")
		return field, false
	}

	s = joinSpacedGroups(s)
	s = resolveSeparators(s)

	value, err := decimal.NewFromString(s)
	if err != nil {
		n.Logger.Warn("numeric.discard", "field", fieldHint, "raw", raw, "cleaned", s, "err", err)
		return field, false
	}

	confidence := constants.ConfidenceHigh
	if _, hinted := ceilingHints[fieldHint]; hinted && value.GreaterThan(n.Ceiling) {
		recovered, ok := n.recover(s)
		if !ok {
			n.Logger.Warn("numeric.discard", "field", fieldHint, "raw", raw, "value", value, "reason", "exceeds ceiling")
			return field, false
		}
		n.Logger.Debug("numeric.recovered", "field", fieldHint, "raw", raw, "from", value, "to", recovered)
		value = recovered
		confidence = constants.ConfidenceRecovered
	}

	field.CanonicalValue = value
	field.Confidence = confidence
	return field, true
}

// Canonical renders a normalized value in its fixed-point form: exactly two
// decimals, so re-normalizing the string yields the same value.
func Canonical(v decimal.Decimal) string {
	return v.StringFixed(2)
}

// joinSpacedGroups removes spaces acting as thousands separators (a space
// followed by a group of exactly 3 digits) and cuts the scan at a token that
// looks like a calendar year; anything else after a space is OCR garbage and
// is dropped.
func joinSpacedGroups(s string) string {
	tokens := strings.Fields(s)
	if len(tokens) <= 1 {
		return strings.ReplaceAll(s, " ", "")
	}
	out := tokens[0]
	for _, tok := range tokens[1:] {
		if reYear.MatchString(tok) {
			break
		}
		if !reThousand.MatchString(tok) {
			break
		}
		out += tok
	}
	return out
}

// resolveSeparators applies the Spanish convention to '.' and ','.
func resolveSeparators(s string) string {
	hasComma := strings.Contains(s, ",")
	hasDot := strings.Contains(s, ".")

	switch {
	case hasComma && hasDot:
		// comma is decimal, dots are thousands
		s = strings.ReplaceAll(s, ".", "")
		i := strings.LastIndex(s, ",")
		s = strings.ReplaceAll(s[:i], ",", "") + "." + s[i+1:]
	case hasComma:
		// decimal unless more than 2 digits follow
		i := strings.LastIndex(s, ",")
		if strings.Count(s, ",") == 1 && len(s)-i-1 <= 2 {
			s = s[:i] + "." + s[i+1:]
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case hasDot:
		// decimal only when a single dot leaves exactly 2 trailing digits
		i := strings.LastIndex(s, ".")
		if strings.Count(s, ".") != 1 || len(s)-i-1 != 2 {
			s = strings.ReplaceAll(s, ".", "")
		}
	}
	return s
}

// recover re-reads an implausible amount as if OCR dropped the decimal
// point: reinsert it two digits from the end and re-check the ceiling.
func (n *Normalizer) recover(cleaned string) (decimal.Decimal, bool) {
	digits := reDigits.ReplaceAllString(cleaned, "")
	if len(digits) < 5 {
		return decimal.Zero, false
	}
	v, err := decimal.NewFromString(digits[:len(digits)-2] + "." + digits[len(digits)-2:])
	if err != nil || v.GreaterThan(n.Ceiling) {
		return decimal.Zero, false
	}
	return v, true
}
