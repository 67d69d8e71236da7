package helper

import (
	"strconv"
	"strings"
	"unicode"
)

// Validación de RUT chileno (módulo 11). Se usa para usuarios, empresas y
// el maestro guía de la evaluación final.

// NormalizeRUT quita puntos, guión y espacios, en mayúsculas. Conserva
// cualquier letra: una letra que no sea el dígito verificador 'K' debe
// llegar al chequeo de cuerpo numérico y rechazarse ahí, no desaparecer.
func NormalizeRUT(rut string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(rut) {
		if unicode.IsDigit(r) || unicode.IsLetter(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ComputeRUTCheckDigit calcula el dígito verificador del cuerpo numérico:
// suma ponderada con factores 2..7 cíclicos desde el dígito menos
// significativo; 11-(suma%11) se mapea a "0" si 11, "K" si 10.
func ComputeRUTCheckDigit(body string) string {
	sum := 0
	factor := 2
	for i := len(body) - 1; i >= 0; i-- {
		sum += int(body[i]-'0') * factor
		factor++
		if factor > 7 {
			factor = 2
		}
	}
	switch dv := 11 - (sum % 11); dv {
	case 11:
		return "0"
	case 10:
		return "K"
	default:
		return strconv.Itoa(dv)
	}
}

// ValidateRUT verifica cuerpo numérico + dígito verificador.
func ValidateRUT(rut string) bool {
	clean := NormalizeRUT(rut)
	if len(clean) < 2 {
		return false
	}
	body, dv := clean[:len(clean)-1], string(clean[len(clean)-1])
	for i := 0; i < len(body); i++ {
		if body[i] < '0' || body[i] > '9' {
			return false
		}
	}
	return ComputeRUTCheckDigit(body) == dv
}

// FormatRUT normaliza a la forma canónica NNNNNNNN-D para almacenar.
func FormatRUT(rut string) string {
	clean := NormalizeRUT(rut)
	if len(clean) < 2 {
		return clean
	}
	return clean[:len(clean)-1] + "-" + clean[len(clean)-1:]
}
