package validation

import (
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeText(t *testing.T) {
	assert.Equal(t, "hello world", SanitizeText("  hello   world  "))
	assert.Equal(t, "a b c", SanitizeText("a\tb\n c"))
	assert.Equal(t, "", SanitizeText("   "))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "user@example.com", NormalizeEmail("  User@Example.COM "))
}

func TestIsValidName(t *testing.T) {
	cases := []struct {
		value string
		want  bool
	}{
		{"Jo", true},
		{"J", false},
		{"O'Brien-Smith", true},
		{"Mary Jane", true},
		{"1Bob", false},
		{"Bob!", false},
		{"", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, IsValidName(tc.value), "name %q", tc.value)
	}
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("user@example.com"))
	assert.True(t, IsValidEmail(" User@Example.CO "))
	assert.False(t, IsValidEmail("user@example.c"))
	assert.False(t, IsValidEmail("user@example"))
	assert.False(t, IsValidEmail("userexample.com"))
	assert.False(t, IsValidEmail("us er@example.com"))
}

func TestIsStrongPassword(t *testing.T) {
	assert.True(t, IsStrongPassword("abcdefg1"))
	assert.False(t, IsStrongPassword("abcdefgh"))
	assert.False(t, IsStrongPassword("12345678"))
	assert.False(t, IsStrongPassword("ab1"))
}

func TestPriceRoundTrip(t *testing.T) {
	cases := []struct {
		value string
		want  float64
	}{
		{"0", 0},
		{"10", 10},
		{"10.99", 10.99},
		{"123.4", 123.4},
	}
	for _, tc := range cases {
		assert.True(t, IsValidPrice(tc.value), "price %q", tc.value)
		got := ToPriceNumber(tc.value)
		assert.Equal(t, tc.want, got)

		// Re-stringifying an accepted price yields another accepted price.
		assert.True(t, IsValidPrice(strconv.FormatFloat(got, 'f', -1, 64)))
	}

	assert.False(t, IsValidPrice("-1"))
	assert.False(t, IsValidPrice("01"))
	assert.False(t, IsValidPrice("1.234"))
	assert.False(t, IsValidPrice("abc"))
}

func TestIsValidPhone(t *testing.T) {
	assert.True(t, IsValidPhone("+1 (416) 555-0123"))
	assert.True(t, IsValidPhone("4165550123"))
	assert.False(t, IsValidPhone("555-0123"))
	assert.False(t, IsValidPhone("416555012345678901"))
	assert.False(t, IsValidPhone("416.555.0123"))
}

func TestIsValidZip(t *testing.T) {
	assert.True(t, IsValidZip(""))
	assert.True(t, IsValidZip("M5V 2T6"))
	assert.True(t, IsValidZip("90210"))
	assert.False(t, IsValidZip("ab"))
	assert.False(t, IsValidZip("-M5V"))
	assert.False(t, IsValidZip("12345678901"))
}

func TestIsValidCardNumberLuhn(t *testing.T) {
	assert.True(t, IsValidCardNumber("4242424242424242"))
	assert.False(t, IsValidCardNumber("4242424242424241"))
	assert.True(t, IsValidCardNumber("4242 4242 4242 4242"))
	assert.False(t, IsValidCardNumber("42424242424"))   // 11 digits
	assert.False(t, IsValidCardNumber("424242424242424242424")) // 21 digits
}

func TestLuhnExhaustiveCheckDigit(t *testing.T) {
	// For a fixed prefix exactly one check digit satisfies Luhn.
	prefix := "424242424242424"
	valid := 0
	for d := 0; d < 10; d++ {
		if IsValidCardNumber(fmt.Sprintf("%s%d", prefix, d)) {
			valid++
		}
	}
	assert.Equal(t, 1, valid)
}

func TestIsValidExpiryAt(t *testing.T) {
	now := time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC)

	assert.False(t, IsValidExpiryAt("01/20", now))
	assert.True(t, IsValidExpiryAt("08/26", now))
	assert.True(t, IsValidExpiryAt("12/26", now))
	assert.False(t, IsValidExpiryAt("07/26", now))
	assert.True(t, IsValidExpiryAt("01/30", now))
	assert.False(t, IsValidExpiryAt("13/30", now))
	assert.False(t, IsValidExpiryAt("00/30", now))
	assert.False(t, IsValidExpiryAt("1/30", now))
	assert.False(t, IsValidExpiryAt("01-30", now))
}
