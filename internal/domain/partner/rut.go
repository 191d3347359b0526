package partner

import "strings"

// NormalizeRUT strips dots and whitespace and uppercases the verifier digit,
// so "12.345.678-k" and "12345678-K" store identically.
func NormalizeRUT(rut string) string {
	rut = strings.TrimSpace(rut)
	rut = strings.ReplaceAll(rut, ".", "")
	return strings.ToUpper(rut)
}

// IsPlausibleRUT checks the shape of a Chilean RUT: digits, a dash, one
// verifier character (digit or K). The check-digit algorithm is deliberately
// not enforced; operators routinely hold RUTs that fail it on paper.
func IsPlausibleRUT(rut string) bool {
	rut = NormalizeRUT(rut)
	dash := strings.LastIndexByte(rut, '-')
	if dash < 1 || dash != len(rut)-2 {
		return false
	}
	body, verifier := rut[:dash], rut[dash+1]
	if len(body) < 7 || len(body) > 9 {
		return false
	}
	for i := 0; i < len(body); i++ {
		if body[i] < '0' || body[i] > '9' {
			return false
		}
	}
	return (verifier >= '0' && verifier <= '9') || verifier == 'K'
}
