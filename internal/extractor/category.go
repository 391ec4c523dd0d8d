package extractor

import (
	"regexp"
	"strings"

	"github.com/nominafacil/nomina-validator/constants"
)

// profession keyword → category, most specific first
var categoryKeywords = []struct {
	keyword  string
	category constants.Category
}{
	{"TES CONDUCTOR", constants.TESConductor},
	{"TES AYUDANTE", constants.TESAyudanteCamillero},
	{"CAMILLERO", constants.TESCamillero},
	{"CONDUCTOR", constants.TESConductor},
	{"GERENTE", constants.Directivo},
	{"DIRECTOR", constants.Directivo},
	{"ENCARGADO", constants.MandoIntermedio},
	{"SUPERVISOR", constants.MandoIntermedio},
	{"MANDO INTERMEDIO", constants.MandoIntermedio},
	{"TÉCNICO", constants.Tecnico},
	{"TECNICO", constants.Tecnico},
}

// "empleado" alone is payslip boilerplate ("Datos del empleado"); it only
// counts as a category when a category label introduces it.
var reEmpleadoCategory = regexp.MustCompile(`(?i)categor[ií]a[^\n]{0,30}?\bempleado\b`)

// detectCategory scans the text for profession keywords. Returns false when
// nothing matches; the engine never fabricates a category.
func detectCategory(text string) (constants.Category, bool) {
	upper := strings.ToUpper(text)
	for _, ck := range categoryKeywords {
		if strings.Contains(upper, ck.keyword) {
			return ck.category, true
		}
	}
	if reEmpleadoCategory.MatchString(text) {
		return constants.Empleado, true
	}
	return "", false
}
