package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Andi Saputra", "Andi Saputra"},
		{"  Andi Saputra  ", "Andi Saputra"},
		{"Andi    Saputra", "Andi Saputra"},
		{" Andi \t Saputra ", "Andi Saputra"},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeName(tt.in))
	}
}
