package server_test

import (
	"testing"

	"site-cms/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Prefix(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		want   string
	}{
		{"Default", "/api", "/api"},
		{"Trailing Slash", "/api/", "/api"},
		{"Missing Leading Slash", "api/v1", "/api/v1"},
		{"Root", "/", ""},
		{"Empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{APIPrefix: tt.prefix}
			assert.Equal(t, tt.want, c.Prefix())
		})
	}
}
