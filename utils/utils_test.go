package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTrackingID(t *testing.T) {
	pattern := regexp.MustCompile(`^TRK\d{8}$`)
	for i := 0; i < 100; i++ {
		assert.Regexp(t, pattern, GenerateTrackingID())
	}
}

func TestGenerateInvoiceNumber(t *testing.T) {
	n := GenerateInvoiceNumber()
	assert.Len(t, n, 9)
	assert.Equal(t, "INV", n[:3])
}

func TestGenerateTicketNumber(t *testing.T) {
	n := GenerateTicketNumber()
	assert.Len(t, n, 9)
	assert.Equal(t, "TKT", n[:3])
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	assert.True(t, CheckPassword(hash, "secret123"))
	assert.False(t, CheckPassword(hash, "wrong"))
}
