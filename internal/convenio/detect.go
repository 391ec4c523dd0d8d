package convenio

import "strings"

// sector keyword → convenio key, most specific first
var detectionRules = []struct {
	keywords []string
	key      string
}{
	{[]string{"ambulancia", "pasquau", "transporte sanitario"}, "transporte_sanitario_andalucia"},
	{[]string{"mercadona"}, "mercadona"},
	{[]string{"leroy", "merlin"}, "leroy_merlin"},
	{[]string{"hotel", "restaurante", "hosteleria", "hostelería"}, "hosteleria"},
	{[]string{"comercio", "tienda", "supermercado"}, "comercio"},
	{[]string{"construccion", "construcción", "obras", "edificacion", "edificación"}, "construccion"},
}

// DetectFromEmployer maps an employer name to the convenio key that governs
// it. Unknown or empty names fall back to the general convenio.
func DetectFromEmployer(employerName string) string {
	if employerName == "" {
		return GeneralKey
	}
	name := strings.ToLower(employerName)
	for _, rule := range detectionRules {
		for _, kw := range rule.keywords {
			if strings.Contains(name, kw) {
				return rule.key
			}
		}
	}
	return GeneralKey
}
