package tenant

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Studio Bela Vista", "studio-bela-vista"},
		{"  Barbearia do Zé!  ", "barbearia-do-z"},
		{"ACME", "acme"},
		{"--a--b--", "a-b"},
		{"!!!", "tenant"},
		{"", "tenant"},
		{"Cut & Color 24h", "cut-color-24h"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, Slugify(tt.in), "Slugify(%q)", tt.in)
	}
}
