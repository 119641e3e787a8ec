package matricule

import (
	"strings"
	"testing"

	"staffauth/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_Format(t *testing.T) {
	gen := NewGenerator(&config.Config{Auth: &config.AuthConfig{MatriculePrefix: "STF"}})

	matricule := gen.Generate()

	parts := strings.SplitN(matricule, "-", 2)
	require.Len(t, parts, 2)
	assert.Equal(t, "STF", parts[0])
	assert.Len(t, parts[1], 8)
	assert.Equal(t, strings.ToUpper(parts[1]), parts[1])
}

func TestGenerator_CustomPrefix(t *testing.T) {
	gen := NewGenerator(&config.Config{Auth: &config.AuthConfig{MatriculePrefix: "EMP"}})

	assert.True(t, strings.HasPrefix(gen.Generate(), "EMP-"))
}

func TestGenerator_Uniqueness(t *testing.T) {
	gen := NewGenerator(&config.Config{Auth: &config.AuthConfig{MatriculePrefix: "STF"}})

	seen := make(map[string]struct{})
	for range 1000 {
		matricule := gen.Generate()
		_, dup := seen[matricule]
		require.False(t, dup, "duplicate matricule %s", matricule)
		seen[matricule] = struct{}{}
	}
}
