package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeToken(t *testing.T) {
	createdAt := time.Date(2025, 5, 15, 14, 30, 45, 123456789, time.UTC)

	token := EncodeToken("2025-05-15", createdAt)
	assert.NotEmpty(t, token, "Token should not be empty")

	decodedDate, decodedCreatedAt, err := DecodeToken(token)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.Equal(t, "2025-05-15", decodedDate, "Submission date should match after decode")
	assert.Equal(t, createdAt, decodedCreatedAt, "Created at time should match after decode")
}

func TestDecodeTokenError(t *testing.T) {
	// Invalid base64
	_, _, err := DecodeToken("this is not base64!")
	assert.Error(t, err, "Should return an error for invalid base64")
	assert.Contains(t, err.Error(), "base64 decode", "Error should mention base64 decoding")

	// Missing separator
	_, _, err = DecodeToken("MjAyNS0wNS0xNQ==") // "2025-05-15" without separator
	assert.Error(t, err, "Should return an error for invalid token format")
	assert.Contains(t, err.Error(), "split", "Error should mention splitting issue")

	// Invalid created_at component
	_, _, err = DecodeToken("MjAyNS0wNS0xNXxub3RhdGltZQ==") // "2025-05-15|notatime"
	assert.Error(t, err, "Should return an error for invalid time format")
	assert.Contains(t, err.Error(), "created_at parse", "Error should mention time parsing issue")
}
