package services

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain ascii", "report.pdf", "report.pdf"},
		{"uppercase folded", "Annual Report", "annual_report"},
		{"turkish lowercase", "çğıöşü", "cgiosu"},
		{"turkish uppercase", "ÇĞİÖŞÜ", "cgiosu"},
		{"turkish word", "İstanbul Fotoğrafı", "istanbul_fotografi"},
		{"spaces collapse", "a   b", "a_b"},
		{"mixed separators collapse", "a -_  b", "a_b"},
		{"underscore runs", "a___b", "a_b"},
		{"combining marks stripped", "café menü", "cafe_menu"},
		{"empty", "", ""},
		{"already normalized", "istanbul_fotografi", "istanbul_fotografi"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, normalizeName(tt.in))
		})
	}
}

// applying the slugifier to its own output must be a no-op
func TestNormalizeName_Idempotent(t *testing.T) {
	inputs := []string{
		"Annual Report",
		"İstanbul Fotoğrafı",
		"café menü",
		"a -_  b",
		"UPPER lower MiXeD",
	}

	for _, in := range inputs {
		once := normalizeName(in)
		require.Equal(t, once, normalizeName(once), "input %q", in)
	}
}
