package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeMobile(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"plain ten digits", "3001234567", "3001234567", true},
		{"spaced with plus prefix", "+57 320 555 8899", "3205558899", true},
		{"country prefix without plus", "573225553344", "3225553344", true},
		{"zero zero prefix", "00573225553344", "3225553344", true},
		{"prefix 057", "0573001234567", "3001234567", true},
		{"dashed local format", "311-519-2748", "3115192748", true},
		{"too short", "123", "", false},
		{"too long", "30012345678", "", false},
		{"landline", "6015551234", "", false},
		{"cedula length", "1020304050", "", false},
		{"prefix but not mobile", "5760155512", "", false},
		{"no digits at all", "sin numero", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeMobile(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDigits(t *testing.T) {
	assert.Equal(t, "573205558899", Digits("+57 320-555 88.99"))
	assert.Equal(t, "", Digits("sin dígitos"))
	assert.Equal(t, "1020304050", Digits("c.c. 1.020.304.050"))
}
