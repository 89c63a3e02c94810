package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smarttasks/config"
)

func testTokenService() *TokenService {
	return NewTokenService(config.AuthConfig{
		Secret:        "0123456789abcdef0123456789abcdef",
		Issuer:        "smarttasks",
		Audience:      "smarttasks-api",
		TokenLifetime: time.Hour,
	})
}

func TestTokenService_RoundTrip(t *testing.T) {
	tokens := testTokenService()
	token, err := tokens.Issue("user-1")
	require.NoError(t, err)

	subject, err := tokens.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", subject)

	claims := &jwt.RegisteredClaims{}
	_, _, err = jwt.NewParser().ParseUnverified(token, claims)
	require.NoError(t, err)
	assert.NotEmpty(t, claims.ID)
	assert.Equal(t, "smarttasks", claims.Issuer)
	assert.Equal(t, jwt.ClaimStrings{"smarttasks-api"}, claims.Audience)
	assert.Equal(t, time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestTokenService_UniqueIDs(t *testing.T) {
	tokens := testTokenService()
	a, err := tokens.Issue("user-1")
	require.NoError(t, err)
	b, err := tokens.Issue("user-1")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestTokenService_Expired(t *testing.T) {
	tokens := testTokenService()
	issued := time.Now().Add(-2 * time.Hour)
	tokens.now = func() time.Time { return issued }
	token, err := tokens.Issue("user-1")
	require.NoError(t, err)

	tokens.now = time.Now
	_, err = tokens.Parse(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestTokenService_Rejects(t *testing.T) {
	tokens := testTokenService()
	token, err := tokens.Issue("user-1")
	require.NoError(t, err)

	t.Run("WrongSecret", func(t *testing.T) {
		other := testTokenService()
		other.secret = []byte("ffffffffffffffffffffffffffffffff")
		_, err := other.Parse(token)
		assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
	})

	t.Run("WrongAudience", func(t *testing.T) {
		other := testTokenService()
		other.audience = "someone-else"
		_, err := other.Parse(token)
		assert.ErrorIs(t, err, jwt.ErrTokenInvalidAudience)
	})

	t.Run("WrongIssuer", func(t *testing.T) {
		other := testTokenService()
		other.issuer = "elsewhere"
		_, err := other.Parse(token)
		assert.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)
	})

	t.Run("NoneAlgorithm", func(t *testing.T) {
		unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
			Subject:   "user-1",
			Issuer:    "smarttasks",
			Audience:  jwt.ClaimStrings{"smarttasks-api"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		})
		forged, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = tokens.Parse(forged)
		assert.Error(t, err)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := tokens.Parse("not.a.token")
		assert.Error(t, err)
	})
}
