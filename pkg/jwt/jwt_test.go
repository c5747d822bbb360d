package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goitom/finance-api/pkg/jwt"
)

const testSecret = "test-secret-0123456789"

func TestGenerateAndParse_RoundTrip(t *testing.T) {
	token, err := jwt.Generate(testSecret, "user-1", "jan@example.nl", "goitom-finance", 60)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, email, err := jwt.Parse(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, "jan@example.nl", email)
}

func TestGenerate_EmptySecret(t *testing.T) {
	_, err := jwt.Generate("", "user-1", "jan@example.nl", "goitom-finance", 60)
	assert.Error(t, err)
}

func TestParse_WrongSecret(t *testing.T) {
	token, err := jwt.Generate(testSecret, "user-1", "jan@example.nl", "goitom-finance", 60)
	require.NoError(t, err)

	_, _, err = jwt.Parse("another-secret", token)
	assert.Error(t, err)
}

func TestParse_ExpiredToken(t *testing.T) {
	token, err := jwt.Generate(testSecret, "user-1", "jan@example.nl", "goitom-finance", -5)
	require.NoError(t, err)

	_, _, err = jwt.Parse(testSecret, token)
	assert.Error(t, err, "expired tokens must be rejected")
}
