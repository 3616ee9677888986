package barcode

import (
	"strings"
	"unicode"
)

// Normalize cleans up a scanned code: camera scanners occasionally emit
// surrounding whitespace or control characters, and SKUs are stored upper
// case.
func Normalize(raw string) string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)

	return strings.ToUpper(cleaned)
}

// IsValidEAN13 reports whether code is a 13-digit EAN with a correct check
// digit.
func IsValidEAN13(code string) bool {
	if len(code) != 13 {
		return false
	}

	sum := 0
	for i, r := range code {
		if r < '0' || r > '9' {
			return false
		}
		digit := int(r - '0')
		if i == 12 {
			check := (10 - sum%10) % 10
			return digit == check
		}
		if i%2 == 1 {
			digit *= 3
		}
		sum += digit
	}

	return false
}
