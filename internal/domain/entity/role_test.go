package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	for _, known := range []string{"employee", "manager", "admin"} {
		role, ok := ParseRole(known)
		assert.True(t, ok, known)
		assert.Equal(t, known, role.String())
		assert.True(t, role.IsValid())
	}

	for _, unknown := range []string{"", "intern", "EMPLOYEE", "Manager"} {
		_, ok := ParseRole(unknown)
		assert.False(t, ok, unknown)
	}
}
