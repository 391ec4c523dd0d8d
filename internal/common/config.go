package common

import (
	"os"

	"github.com/shopspring/decimal"
)

// Config holds all engine configuration
type Config struct {
	Engine EngineConfig
}

// Default engine tunables, applied wherever a config value is left zero.
var (
	DefaultSalaryCeiling       = decimal.NewFromInt(20000)
	DefaultBaseTolerance       = decimal.NewFromInt(1)
	DefaultSeniorityTolerance  = decimal.NewFromInt(5)
	DefaultNightShiftTolerance = decimal.NewFromInt(2)
)

// EngineConfig holds the validation engine's tunables. All values have
// working defaults; env vars override them.
type EngineConfig struct {
	// SalaryCeiling caps plausible monthly salary amounts during extraction.
	SalaryCeiling decimal.Decimal
	// BaseTolerance is the inclusive comparison tolerance for base salary
	// and plus convenio.
	BaseTolerance decimal.Decimal
	// SeniorityTolerance is wider: real payslips round antigüedad.
	SeniorityTolerance decimal.Decimal
	// NightShiftTolerance applies to the informational nocturnidad check.
	NightShiftTolerance decimal.Decimal
	// DatasetPath optionally points at a convenios JSON file; empty means
	// the embedded dataset.
	DatasetPath string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Engine: EngineConfig{
			SalaryCeiling:       getEnvAsDecimal("SALARY_CEILING", DefaultSalaryCeiling),
			BaseTolerance:       getEnvAsDecimal("BASE_TOLERANCE", DefaultBaseTolerance),
			SeniorityTolerance:  getEnvAsDecimal("SENIORITY_TOLERANCE", DefaultSeniorityTolerance),
			NightShiftTolerance: getEnvAsDecimal("NIGHTSHIFT_TOLERANCE", DefaultNightShiftTolerance),
			DatasetPath:         getEnv("CONVENIOS_PATH", ""),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsDecimal(key string, defaultValue decimal.Decimal) decimal.Decimal {
	if value := os.Getenv(key); value != "" {
		if d, err := decimal.NewFromString(value); err == nil {
			return d
		}
	}
	return defaultValue
}

// ValidateConfig validates the loaded configuration
func (c *Config) Validate() error {
	if !c.Engine.SalaryCeiling.IsPositive() {
		return NewAppError("CONFIG_ERROR", "SALARY_CEILING must be positive", ErrInvalidInput)
	}
	for _, tol := range []decimal.Decimal{c.Engine.BaseTolerance, c.Engine.SeniorityTolerance, c.Engine.NightShiftTolerance} {
		if tol.IsNegative() {
			return NewAppError("CONFIG_ERROR", "tolerances must not be negative", ErrInvalidInput)
		}
	}
	return nil
}
