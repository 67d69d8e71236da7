package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeRUTCheckDigit(t *testing.T) {
	cases := []struct {
		body string
		want string
	}{
		{"12345678", "5"},
		{"7654321", "6"},
		{"11111111", "1"},
		{"22222222", "2"},
		{"20347878", "K"},
		{"11111117", "0"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ComputeRUTCheckDigit(tc.body), "cuerpo %s", tc.body)
	}
}

func TestValidateRUT(t *testing.T) {
	// válidos en distintos formatos de entrada
	assert.True(t, ValidateRUT("12345678-5"))
	assert.True(t, ValidateRUT("12.345.678-5"))
	assert.True(t, ValidateRUT("123456785"))
	assert.True(t, ValidateRUT("20347878-k"))
	assert.True(t, ValidateRUT("20.347.878-K"))

	// dígito verificador incorrecto
	assert.False(t, ValidateRUT("12345678-4"))
	assert.False(t, ValidateRUT("20347878-1"))

	// letras intercaladas en el cuerpo: no deben descartarse al normalizar
	assert.False(t, ValidateRUT("12A345678-5"))
	assert.False(t, ValidateRUT("1234X5678-5"))

	// entradas degeneradas
	assert.False(t, ValidateRUT(""))
	assert.False(t, ValidateRUT("-"))
	assert.False(t, ValidateRUT("K"))
	assert.False(t, ValidateRUT("KK-K"))
}

func TestFormatRUT(t *testing.T) {
	assert.Equal(t, "12345678-5", FormatRUT("12.345.678-5"))
	assert.Equal(t, "20347878-K", FormatRUT("20347878k"))
}
