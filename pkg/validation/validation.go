// Package validation holds the pure input validators shared by the auth,
// listing, checkout and payment flows. All functions are total over strings
// and never panic.
package validation

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	nameRe       = regexp.MustCompile(`^[A-Za-z][A-Za-z\s'-]{1,49}$`)
	emailRe      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]{2,}$`)
	priceRe      = regexp.MustCompile(`^(?:0|[1-9]\d*)(?:\.\d{1,2})?$`)
	phoneCharsRe = regexp.MustCompile(`^[\d\s\-+()]+$`)
	zipRe        = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9\s-]{2,9}$`)
	nonDigitRe   = regexp.MustCompile(`\D`)
	expiryRe     = regexp.MustCompile(`^(0[1-9]|1[0-2])/(\d{2})$`)
	letterRe     = regexp.MustCompile(`[A-Za-z]`)
	digitRe      = regexp.MustCompile(`\d`)
)

// SanitizeText collapses internal whitespace runs to single spaces and trims
// the ends.
func SanitizeText(value string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(value, " "))
}

// NormalizeEmail sanitizes then lowercases.
func NormalizeEmail(value string) string {
	return strings.ToLower(SanitizeText(value))
}

// IsValidName reports whether the sanitized value starts with a letter, is
// 2-50 characters long, and contains only letters, spaces, hyphens and
// apostrophes.
func IsValidName(value string) bool {
	return nameRe.MatchString(SanitizeText(value))
}

// IsValidEmail checks local@domain.tld shape with a TLD of at least 2 chars.
func IsValidEmail(value string) bool {
	return emailRe.MatchString(NormalizeEmail(value))
}

// IsStrongPassword requires 8-64 characters with at least one letter and one
// digit.
func IsStrongPassword(value string) bool {
	if len(value) < 8 || len(value) > 64 {
		return false
	}
	return letterRe.MatchString(value) && digitRe.MatchString(value)
}

// IsValidPrice accepts a non-negative decimal with at most two fraction
// digits and no leading zeros.
func IsValidPrice(value string) bool {
	return priceRe.MatchString(strings.TrimSpace(value))
}

// ToPriceNumber parses a price string as a plain number. Returns 0 for
// anything unparseable; validate with IsValidPrice first.
func ToPriceNumber(value string) float64 {
	n, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0
	}
	return n
}

func digitsOnly(value string) string {
	return nonDigitRe.ReplaceAllString(value, "")
}

// IsValidPhone accepts digits, spaces, hyphens, parens and plus, with 10-15
// digits once everything else is stripped.
func IsValidPhone(value string) bool {
	trimmed := strings.TrimSpace(value)
	if !phoneCharsRe.MatchString(trimmed) {
		return false
	}
	digits := digitsOnly(trimmed)
	return len(digits) >= 10 && len(digits) <= 15
}

// IsValidZip treats empty as valid (the field is optional); otherwise the
// value must be 3-10 alphanumeric/space/hyphen characters starting with an
// alphanumeric.
func IsValidZip(value string) bool {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return true
	}
	return zipRe.MatchString(trimmed)
}

// IsValidCardNumber runs the Luhn checksum over the digits of the value,
// which must be 12-19 digits long once separators are stripped.
func IsValidCardNumber(value string) bool {
	digits := digitsOnly(value)
	if len(digits) < 12 || len(digits) > 19 {
		return false
	}

	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		n := int(digits[i] - '0')
		if double {
			n *= 2
			if n > 9 {
				n -= 9
			}
		}
		sum += n
		double = !double
	}

	return sum%10 == 0
}

// IsValidExpiry checks MM/YY format against the current calendar month.
func IsValidExpiry(value string) bool {
	return IsValidExpiryAt(value, time.Now())
}

// IsValidExpiryAt is IsValidExpiry with an explicit clock.
func IsValidExpiryAt(value string, now time.Time) bool {
	match := expiryRe.FindStringSubmatch(strings.TrimSpace(value))
	if match == nil {
		return false
	}

	month, _ := strconv.Atoi(match[1])
	year, _ := strconv.Atoi(match[2])
	year += 2000

	currentYear, currentMonth := now.Year(), int(now.Month())
	return year > currentYear || (year == currentYear && month >= currentMonth)
}
