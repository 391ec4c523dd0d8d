package constants

import (
	"strings"
)

// Category is a normalized professional category code used to look up
// convenio salary floors.
type Category string

const (
	Empleado             Category = "empleado"
	Tecnico              Category = "tecnico"
	MandoIntermedio      Category = "mando_intermedio"
	Directivo            Category = "directivo"
	TESConductor         Category = "tes_conductor"
	TESAyudanteCamillero Category = "tes_ayudante_camillero"
	TESCamillero         Category = "tes_camillero"
)

var allCategories = []Category{
	Empleado,
	Tecnico,
	MandoIntermedio,
	Directivo,
	TESConductor,
	TESAyudanteCamillero,
	TESCamillero,
}

// Canonicalize maps a free-form category label (as typed by a user or read
// off a payslip) to a category code. The second return is false when no
// mapping exists; callers must not default it.
func Canonicalize(input string) (Category, bool) {
	if input == "" {
		return "", false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))

	// compound labels first
	if strings.Contains(normalized, "tes") && strings.Contains(normalized, "conductor") {
		return TESConductor, true
	}
	if strings.Contains(normalized, "tes") && (strings.Contains(normalized, "ayudante") || strings.Contains(normalized, "camillero")) {
		return TESAyudanteCamillero, true
	}

	synonyms := []struct {
		kw  string
		cat Category
	}{
		{"camillero", TESCamillero},
		{"conductor", TESConductor},
		{"director", Directivo},
		{"gerente", Directivo},
		{"encargado", MandoIntermedio},
		{"supervisor", MandoIntermedio},
		{"mando", MandoIntermedio},
		{"técnico", Tecnico},
		{"tecnico", Tecnico},
		{"empleado", Empleado},
	}
	for _, s := range synonyms {
		if strings.Contains(normalized, s.kw) {
			return s.cat, true
		}
	}

	for _, cat := range allCategories {
		if normalized == string(cat) {
			return cat, true
		}
	}

	return "", false
}
