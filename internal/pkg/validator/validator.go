package validator

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var b strings.Builder
	for i, err := range v {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(err.Field)
		b.WriteString(": ")
		b.WriteString(err.Message)
	}
	return b.String()
}

// ToMap flattens the errors into field -> message pairs for the response
// envelope.
func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v))
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty reports whether s contains nothing but whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsValidDate parses s as "YYYY-MM-DD".
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// RUT validation (Chilean national id), with módulo 11 check digit.
// Accepts "12.345.678-5" or "12345678-5"; dígito verificador may be K.
var rutRegex = regexp.MustCompile(`^\d{7,8}-[\dK]$`)

func IsValidRUT(rut string) bool {
	normalized := NormalizeRUT(rut)
	if !rutRegex.MatchString(normalized) {
		return false
	}

	parts := strings.Split(normalized, "-")
	body, dv := parts[0], parts[1]

	sum := 0
	factor := 2
	for i := len(body) - 1; i >= 0; i-- {
		digit, _ := strconv.Atoi(string(body[i]))
		sum += digit * factor
		factor++
		if factor > 7 {
			factor = 2
		}
	}

	expected := 11 - sum%11
	switch expected {
	case 11:
		return dv == "0"
	case 10:
		return dv == "K"
	}
	return dv == strconv.Itoa(expected)
}

// NormalizeRUT strips thousand separators and uppercases the check digit so
// the same RUT always compares equal.
func NormalizeRUT(rut string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(rut), ".", ""))
}

// Coordinate validation

func IsValidLatitude(lat float64) bool {
	return lat >= -90 && lat <= 90
}

func IsValidLongitude(lon float64) bool {
	return lon >= -180 && lon <= 180
}

// IsInSlice reports whether value appears in slice, case sensitively.
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}
