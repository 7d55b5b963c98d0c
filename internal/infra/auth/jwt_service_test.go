package auth

import (
	"testing"
	"time"

	"medvantage/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(ttl time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.JWT = "test_jwt_secret_key_very_long_for_testing"
	cfg.SecretKey.TokenTTL = ttl

	return cfg
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc, err := NewJWTService(testConfig(7 * 24 * time.Hour))
	require.NoError(t, err)
	require.NotNil(t, svc)

	token, err := svc.Generate("a@x.com")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Email)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestJWTService_MalformedToken(t *testing.T) {
	svc, err := NewJWTService(testConfig(time.Hour))
	require.NoError(t, err)

	claims, err := svc.Validate("clearly-not-a-jwt-token")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc, err := NewJWTService(testConfig(-time.Minute))
	require.NoError(t, err)

	token, err := svc.Generate("a@x.com")
	require.NoError(t, err)

	claims, err := svc.Validate(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_WrongSecret(t *testing.T) {
	svc, err := NewJWTService(testConfig(time.Hour))
	require.NoError(t, err)

	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "a@x.com",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := forged.SignedString([]byte("some-other-secret"))
	require.NoError(t, err)

	claims, err := svc.Validate(signed)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_RejectsUnexpectedSigningMethod(t *testing.T) {
	svc, err := NewJWTService(testConfig(time.Hour))
	require.NoError(t, err)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": "a@x.com",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	claims, err := svc.Validate(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_EmptySecret(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.TokenTTL = time.Hour

	svc, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}
