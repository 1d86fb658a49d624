package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Expelliarmus", "expelliarmus"},
		{"EXPELLIARMUS", "expelliarmus"},
		{"Piedra de la Resurrección", "piedra_de_la_resurreccion"},
		{"  Varita   de  Saúco  ", "varita_de_sauco"},
		{"piedra_de_la_resurreccion", "piedra_de_la_resurreccion"},
		{"Wingardium Leviosa", "wingardium_leviosa"},
		{"ñoño", "nono"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.input), "input %q", tt.input)
	}
}

func TestResolver(t *testing.T) {
	r := NewResolver()
	r.Register("resurrection_stone", "La Piedra de la Resurrección")
	r.Register("expelliarmus", "Expelliarmus")

	id, ok := r.Resolve("la piedra de la resurreccion")
	assert.True(t, ok)
	assert.Equal(t, "resurrection_stone", id)

	id, ok = r.Resolve("EXPELLIARMUS")
	assert.True(t, ok)
	assert.Equal(t, "expelliarmus", id)

	// IDs resolve too
	id, ok = r.Resolve("resurrection_stone")
	assert.True(t, ok)
	assert.Equal(t, "resurrection_stone", id)

	_, ok = r.Resolve("avada kedavra")
	assert.False(t, ok)
}

func TestRegisterLaterWins(t *testing.T) {
	r := NewResolver()
	r.Register("old_id", "Lumos")
	r.Register("new_id", "Lumos")

	id, ok := r.Resolve("lumos")
	assert.True(t, ok)
	assert.Equal(t, "new_id", id)
}
