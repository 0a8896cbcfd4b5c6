package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/victoreduardo21/drb-operacao/internal/pkg/models"
)

func getTestConfig() models.JWTConfig {
	return models.JWTConfig{
		Secret:     "test-secret-key-for-jwt-signing",
		Expiration: 60,
		Issuer:     "drb-operacao-test",
	}
}

var testUser = models.User{
	ID:    "u-admin",
	Name:  "Administrador Operacional",
	Email: "admin@drblogistica.com",
	Role:  "Gerente",
}

func TestGenerateAndValidateToken(t *testing.T) {
	cfg := getTestConfig()

	token, expiresAt, err := GenerateToken(testUser, cfg)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := ValidateToken(token, cfg.Secret)
	require.NoError(t, err)
	assert.Equal(t, "u-admin", claims.UserID)
	assert.Equal(t, "admin@drblogistica.com", claims.Email)
	assert.Equal(t, "Gerente", claims.Role)
	assert.Equal(t, "drb-operacao-test", claims.Issuer)
}

func TestValidateToken_Failures(t *testing.T) {
	cfg := getTestConfig()
	valid, _, err := GenerateToken(testUser, cfg)
	require.NoError(t, err)

	expiredCfg := cfg
	expiredCfg.Expiration = -5
	expired, _, err := GenerateToken(testUser, expiredCfg)
	require.NoError(t, err)

	noUser, _, err := GenerateToken(models.User{Role: "Gerente"}, cfg)
	require.NoError(t, err)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: "u-admin"})
	noneToken, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		secret string
	}{
		{"wrong secret", valid, "other-secret"},
		{"expired", expired, cfg.Secret},
		{"malformed", "not.a.token", cfg.Secret},
		{"empty", "", cfg.Secret},
		{"missing user id", noUser, cfg.Secret},
		{"alg none", noneToken, cfg.Secret},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := ValidateToken(tt.token, tt.secret)
			assert.ErrorIs(t, err, ErrInvalidToken)
			assert.Nil(t, claims)
		})
	}
}
