package numeric

import (
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nominafacil/nomina-validator/constants"
)

func testNormalizer(t *testing.T) *Normalizer {
	t.Helper()
	return NewNormalizer(decimal.Zero, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestNormalize_SeparatorDisambiguation(t *testing.T) {
	n := testNormalizer(t)

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"spanish thousands and decimal", "1.253,26", "1253.26"},
		{"currency noise stripped", "1.253,26€", "1253.26"},
		{"comma decimal only", "1200,50", "1200.50"},
		{"comma as thousands", "12,345", "12345.00"},
		{"single dot two decimals", "10.55", "10.55"},
		{"single dot three digits is thousands", "1.200", "1200.00"},
		{"multiple dots are thousands", "1.200.300", "1200300.00"},
		{"space as thousands separator", "1 200,50", "1200.50"},
		{"space with plain group", "1 250", "1250.00"},
		{"integer untouched", "1500", "1500.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field, ok := n.Normalize(tt.raw, constants.Dietas)
			require.True(t, ok, "expected %q to normalize", tt.raw)
			assert.Equal(t, tt.want, Canonical(field.CanonicalValue))
			assert.Equal(t, constants.ConfidenceHigh, field.Confidence)
		})
	}
}

func TestNormalize_YearGuard(t *testing.T) {
	n := testNormalizer(t)

	// OCR glued the amount to an adjacent date: the year token ends the scan.
	field, ok := n.Normalize("1250 2020", constants.Dietas)
	require.True(t, ok)
	assert.Equal(t, "1250.00", Canonical(field.CanonicalValue))

	// non-year trailing garbage is dropped too
	field, ok = n.Normalize("1250 77", constants.Dietas)
	require.True(t, ok)
	assert.Equal(t, "1250.00", Canonical(field.CanonicalValue))
}

func TestNormalize_Discards(t *testing.T) {
	n := testNormalizer(t)

	for _, raw := range []string{"", "   ", "€", "sin datos"} {
		_, ok := n.Normalize(raw, constants.SalarioBase)
		assert.False(t, ok, "expected %q to be discarded", raw)
	}
}

func TestNormalize_CeilingRecovery(t *testing.T) {
	n := testNormalizer(t)

	// "125026" lost its decimal point in OCR; recovery reinserts it two
	// digits from the end.
	field, ok := n.Normalize("125026", constants.SalarioBase)
	require.True(t, ok)
	assert.Equal(t, "1250.26", Canonical(field.CanonicalValue))
	assert.Equal(t, constants.ConfidenceRecovered, field.Confidence)

	// still implausible after recovery → discarded
	_, ok = n.Normalize("12502020", constants.SalarioBase)
	assert.False(t, ok)

	// unhinted fields are not ceiling-checked
	field, ok = n.Normalize("125026", constants.Dietas)
	require.True(t, ok)
	assert.Equal(t, "125026.00", Canonical(field.CanonicalValue))
	assert.Equal(t, constants.ConfidenceHigh, field.Confidence)
}

func TestNormalize_CanonicalFormIsFixedPoint(t *testing.T) {
	n := testNormalizer(t)

	for _, raw := range []string{"1.253,26", "1 200,50", "1250,2", "10.55", "1500"} {
		first, ok := n.Normalize(raw, constants.SalarioBase)
		require.True(t, ok)

		second, ok := n.Normalize(Canonical(first.CanonicalValue), constants.SalarioBase)
		require.True(t, ok)
		assert.True(t, first.CanonicalValue.Equal(second.CanonicalValue),
			"canonical form of %q is not a fixed point: %s vs %s", raw, first.CanonicalValue, second.CanonicalValue)
	}
}

func TestNormalize_Deterministic(t *testing.T) {
	n := testNormalizer(t)

	a, okA := n.Normalize("1.934,75", constants.TotalDevengado)
	b, okB := n.Normalize("1.934,75", constants.TotalDevengado)
	require.True(t, okA)
	require.True(t, okB)
	assert.Equal(t, a, b)
}
