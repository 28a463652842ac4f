package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("a"))
	assert.False(t, IsEmpty(" a "))
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"user@example.com",
		"first.last@sub.domain.co.id",
		"user+tag@example.org",
	}
	for _, email := range valid {
		assert.True(t, IsValidEmail(email), email)
	}

	invalid := []string{
		"",
		"plainaddress",
		"@missing-local.com",
		"user@",
		"user@domain",
	}
	for _, email := range invalid {
		assert.False(t, IsValidEmail(email), email)
	}
}

func TestIsValidSerialID(t *testing.T) {
	assert.True(t, IsValidSerialID("04A1B2C3"))
	assert.True(t, IsValidSerialID("CARD-0012"))
	assert.True(t, IsValidSerialID("ab12cd34")) // case-insensitive
	assert.False(t, IsValidSerialID("ab"))      // too short
	assert.False(t, IsValidSerialID("has space"))
	assert.False(t, IsValidSerialID(""))
}

func TestIsValidDate(t *testing.T) {
	d, ok := IsValidDate("2025-03-14")
	assert.True(t, ok)
	assert.Equal(t, 2025, d.Year())

	_, ok = IsValidDate("14-03-2025")
	assert.False(t, ok)

	_, ok = IsValidDate("2025-13-01")
	assert.False(t, ok)
}

func TestIsValidPhoneNumber(t *testing.T) {
	assert.True(t, IsValidPhoneNumber("081234567890"))
	assert.True(t, IsValidPhoneNumber("+62 812-3456-7890"))
	assert.True(t, IsValidPhoneNumber("6281234567890"))
	assert.False(t, IsValidPhoneNumber("12345"))
	assert.False(t, IsValidPhoneNumber("07123456789"))
}

func TestIsInSlice(t *testing.T) {
	roles := []string{"admin", "operator"}
	assert.True(t, IsInSlice("admin", roles))
	assert.False(t, IsInSlice("owner", roles))
	assert.False(t, IsInSlice("", roles))
}
