package convenio

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/nominafacil/nomina-validator/internal/common"
)

// SeniorityTypeQuinquenio is the only accrual scheme currently modeled:
// whole 5-year periods, each worth a percentage of the base salary.
const SeniorityTypeQuinquenio = "quinquenio"

// GeneralKey is the fallback convenio applied when nothing more specific
// matches.
const GeneralKey = "general"

// SalaryDetail is a company-specific salary schedule entry: the convenio
// mandates both a base and a fixed plus for the category.
type SalaryDetail struct {
	SalarioBase  decimal.Decimal `json:"salarioBase"`
	PlusConvenio decimal.Decimal `json:"plusConvenio"`
}

// SeniorityRule describes how the antigüedad supplement accrues.
type SeniorityRule struct {
	Tipo           string          `json:"tipo"`
	PorcentajeBase decimal.Decimal `json:"porcentajeBase"`
}

// NightShiftRule prices night hours.
type NightShiftRule struct {
	ValorHora decimal.Decimal `json:"valorHora"`
}

// Definition is one collective-bargaining agreement. Loaded once at process
// start; read-only for this engine.
type Definition struct {
	Nombre              string                     `json:"nombre"`
	SalarioMinimo       map[string]decimal.Decimal `json:"salarioMinimo"`
	DetallesSalariales  map[string]SalaryDetail    `json:"detallesSalariales,omitempty"`
	ReglasAntiguedad    *SeniorityRule             `json:"reglasAntiguedad,omitempty"`
	ReglasNocturnidad   *NightShiftRule            `json:"reglasNocturnidad,omitempty"`
	IncrementoHoraExtra decimal.Decimal            `json:"incrementoHoraExtra,omitempty"`
}

// Dataset maps a convenio key to its definition.
type Dataset map[string]*Definition

// Resolve returns the definition for key, falling back to the general
// convenio for unknown or empty keys.
func (d Dataset) Resolve(key string) *Definition {
	if key != "" {
		if def, ok := d[key]; ok {
			return def
		}
	}
	return d[GeneralKey]
}

//go:embed data/convenios.json
var defaultJSON []byte

var (
	defaultOnce    sync.Once
	defaultDataset Dataset
)

// Default returns the embedded convenio dataset.
func Default() Dataset {
	defaultOnce.Do(func() {
		ds, err := parse(defaultJSON)
		if err != nil {
			panic(fmt.Sprintf("embedded convenio dataset is invalid: %v", err))
		}
		defaultDataset = ds
	})
	return defaultDataset
}

// LoadDataset parses and schema-validates a convenio dataset supplied by the
// embedding application.
func LoadDataset(r io.Reader) (Dataset, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, common.WrapError(err, "read convenio dataset")
	}
	return parse(raw)
}

func parse(raw []byte) (Dataset, error) {
	if err := validateAgainstSchema(buildDatasetJSONSchema(), raw); err != nil {
		return nil, common.NewAppError("DATASET_INVALID", "convenio dataset rejected by schema", err)
	}
	var ds Dataset
	if err := json.Unmarshal(raw, &ds); err != nil {
		return nil, common.WrapError(err, "decode convenio dataset")
	}
	if _, ok := ds[GeneralKey]; !ok {
		return nil, common.NewAppError("DATASET_INVALID", fmt.Sprintf("dataset must define the %q convenio", GeneralKey), common.ErrInvalidInput)
	}
	return ds, nil
}
