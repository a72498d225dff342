package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	userID := uuid.Must(uuid.NewV7())
	token, err := GenerateJWT(userID, "ada@example.com", "Ada")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.Equal(t, "Ada", claims.Name)
	assert.Equal(t, "weardeck-api", claims.Issuer)
}

func TestValidateJWTRejectsTampering(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateJWT(uuid.Must(uuid.NewV7()), "ada@example.com", "Ada")
	require.NoError(t, err)

	_, err = ValidateJWT(token + "x")
	assert.Error(t, err)

	t.Setenv("JWT_SECRET", "other-secret")
	_, err = ValidateJWT(token)
	assert.Error(t, err)
}

func TestGenerateJWTRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := GenerateJWT(uuid.Must(uuid.NewV7()), "ada@example.com", "Ada")
	assert.Error(t, err)
}

func TestAdminSessionToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateAdminSessionToken("root")
	require.NoError(t, err)

	claims, err := ValidateAdminSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, "root", claims.Username)
	assert.Equal(t, "admin", claims.Role)
}

func TestAdminValidationRejectsUserToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	// A user JWT carries no role claim; the admin check must refuse it.
	userToken, err := GenerateJWT(uuid.Must(uuid.NewV7()), "ada@example.com", "Ada")
	require.NoError(t, err)

	_, err = ValidateAdminSessionToken(userToken)
	assert.Error(t, err)
}
