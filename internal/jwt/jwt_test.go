package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignAndValidate(t *testing.T) {
	secret = []byte("test-secret")

	signed, err := Sign("conn-123")
	assert.NoError(t, err)
	assert.NotEmpty(t, signed)

	connID, err := ValidConnectionID(signed)
	assert.NoError(t, err)
	assert.Equal(t, "conn-123", connID)
}

func TestValidConnectionID_badToken(t *testing.T) {
	secret = []byte("test-secret")

	_, err := ValidConnectionID("not-a-token")
	assert.Error(t, err)

	signed, err := Sign("conn-123")
	assert.NoError(t, err)

	secret = []byte("a-different-secret")
	_, err = ValidConnectionID(signed)
	assert.Error(t, err)
}
