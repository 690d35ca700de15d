package utils_test

import (
	"testing"

	"bananina-api/config"
	"bananina-api/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	config.AppConfig = &config.Config{
		JWTSecret: "test-secret",
		JWTExpiry: "1h",
	}
}

func TestTokenRoundTrip(t *testing.T) {
	token, err := utils.GenerateToken(7, "dewi@example.com", "customer")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := utils.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, "dewi@example.com", claims.Email)
	assert.Equal(t, "customer", claims.Role)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, err := utils.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	token, err := utils.GenerateToken(7, "dewi@example.com", "customer")
	require.NoError(t, err)

	config.AppConfig.JWTSecret = "different-secret"
	defer func() { config.AppConfig.JWTSecret = "test-secret" }()

	_, err = utils.ValidateToken(token)
	assert.Error(t, err)
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "nike-air-max-90", utils.Slugify("Nike Air Max 90"))
	assert.Equal(t, "leather-tote", utils.Slugify("  Leather   Tote  "))
	assert.NotEmpty(t, utils.Slugify("!!!"))
}
