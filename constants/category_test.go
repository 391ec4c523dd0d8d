package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		input string
		want  Category
		ok    bool
	}{
		{"empleado", Empleado, true},
		{"  EMPLEADO  ", Empleado, true},
		{"Técnico de taller", Tecnico, true},
		{"tecnico", Tecnico, true},
		{"Gerente de zona", Directivo, true},
		{"Encargado", MandoIntermedio, true},
		{"TES Conductor", TESConductor, true},
		{"Conductor", TESConductor, true},
		{"TES Ayudante", TESAyudanteCamillero, true},
		{"Camillero", TESCamillero, true},
		{"tes_ayudante_camillero", TESAyudanteCamillero, true},
		{"astronauta", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := Canonicalize(tt.input)
		assert.Equal(t, tt.ok, ok, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestIsKnownConcept(t *testing.T) {
	assert.True(t, IsKnownConcept(SalarioBase))
	assert.True(t, IsKnownConcept(AntiguedadStartDate))
	assert.False(t, IsKnownConcept("campoInventado"))
	assert.False(t, IsKnownConcept(""))
}
