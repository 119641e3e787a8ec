package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToken_Valid(t *testing.T) {
	tests := []struct {
		name    string
		expired bool
		revoked bool
		want    bool
	}{
		{name: "fresh token", expired: false, revoked: false, want: true},
		{name: "expired only", expired: true, revoked: false, want: false},
		{name: "revoked only", expired: false, revoked: true, want: false},
		{name: "rotated away", expired: true, revoked: true, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := &Token{Expired: tt.expired, Revoked: tt.revoked}
			assert.Equal(t, tt.want, token.Valid())
		})
	}
}
