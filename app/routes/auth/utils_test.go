package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"personal-management/app/config"
)

func TestMain(m *testing.M) {
	config.AppConfig = &config.Config{JWTSecret: "test-secret"}
	m.Run()
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("changeme")
	require.NoError(t, err)
	assert.NotEqual(t, "changeme", hash)

	assert.True(t, CheckPasswordHash("changeme", hash))
	assert.False(t, CheckPasswordHash("wrong-password", hash))
}

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT(1, "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, 1, claims.UserID)
	assert.Equal(t, "admin", claims.Username)
	assert.NotEmpty(t, claims.ID)
}

func TestValidateJWT_RejectsGarbage(t *testing.T) {
	_, err := ValidateJWT("not-a-token")
	assert.Error(t, err)
}

func TestValidateJWT_RejectsWrongSecret(t *testing.T) {
	token, err := GenerateJWT(1, "admin")
	require.NoError(t, err)

	config.AppConfig.JWTSecret = "rotated-secret"
	defer func() { config.AppConfig.JWTSecret = "test-secret" }()

	_, err = ValidateJWT(token)
	assert.Error(t, err)
}
