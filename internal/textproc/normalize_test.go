package textproc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"simple words", "contrato de compraventa", []string{"contrato", "de", "compraventa"}},
		{"punctuation boundaries", "año-2020, folio: 12.", []string{"año", "2020", "folio", "12"}},
		{"empty", "", nil},
		{"only separators", " ,.;- ", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.in)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStem(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"contrato", "contrat"},
		{"contratos", "contrat"},
		{"casa", "cas"},
		{"casas", "cas"},
		{"administración", "administr"},
		{"administraciones", "administr"},
		{"rápidamente", "rapid"},
		{"arrendamiento", "arrend"},
		{"enero", "ener"},
		{"sol", "sol"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Stem(tt.in))
		})
	}
}

func TestStemSingularPluralAgree(t *testing.T) {
	pairs := [][2]string{
		{"documento", "documentos"},
		{"notaría", "notarías"},
		{"escritura", "escrituras"},
		{"vendedor", "vendedores"},
	}
	for _, p := range pairs {
		assert.Equal(t, Stem(p[0]), Stem(p[1]), "%s vs %s", p[0], p[1])
	}
}

func TestNormalize(t *testing.T) {
	t.Run("drops stopwords and stems", func(t *testing.T) {
		got := Normalize("El contrato de arrendamiento fue firmado")
		assert.Equal(t, "contrat arrend firmad", got)
	})

	t.Run("preserves token order", func(t *testing.T) {
		got := Normalize("venta casa playa")
		assert.Equal(t, "vent cas play", got)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Equal(t, "", Normalize(""))
	})

	t.Run("all stopwords", func(t *testing.T) {
		assert.Equal(t, "", Normalize("el la de los y"))
	})

	t.Run("case-insensitive stopword filtering", func(t *testing.T) {
		assert.Equal(t, "", Normalize("EL LA DE"))
	})

	t.Run("keeps digits", func(t *testing.T) {
		got := Normalize("folio 12345")
		assert.Contains(t, got, "12345")
	})
}

// Every output token must be outside the stopword set and purely
// alphanumeric, for any input.
func TestNormalizeProperties(t *testing.T) {
	inputs := []string{
		"El día primero de marzo, el vendedor entregó la finca.",
		"ESCRITURA PÚBLICA No. 123 — compraventa!!",
		"y o u e a",
		"contrato\n\tde\farrendamiento",
	}
	for _, in := range inputs {
		out := Normalize(in)
		if out == "" {
			continue
		}
		for _, tok := range strings.Fields(out) {
			require.False(t, IsStopWord(tok), "stopword %q leaked from %q", tok, in)
			require.True(t, isAlphanumeric(tok), "non-alphanumeric token %q from %q", tok, in)
		}
	}
}
