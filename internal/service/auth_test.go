package service

import (
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/core"
	"storefront/internal/database/mongodb/model"
	"storefront/internal/telemetry"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func newTestAuthService() *AuthService {
	conf := &config.Configuration{}
	conf.JWT.Secret = "test-secret"
	conf.JWT.Issuer = "storefront"
	conf.JWT.AccessTTL = 900
	conf.JWT.RefreshTTL = 86400

	return &AuthService{
		logger: zap.NewNop(),
		trace:  &telemetry.Trace{},
		config: conf,
	}
}

func testUser() *model.User {
	return &model.User{
		ID:    primitive.NewObjectID(),
		Email: "merchant@example.com",
		Role:  core.RoleMerchant,
	}
}

func TestIssueTokensRoundTrip(t *testing.T) {
	s := newTestAuthService()
	user := testUser()

	tokens, err := s.issueTokens(user)
	require.NoError(t, err)
	require.NotEmpty(t, tokens.AccessToken)
	require.NotEmpty(t, tokens.RefreshToken)
	assert.Equal(t, int64(900), tokens.ExpiresIn)
	assert.NotEqual(t, tokens.AccessToken, tokens.RefreshToken)

	claims, err := s.ParseToken(tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID.Hex(), claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, core.RoleMerchant, claims.Role)
	assert.Equal(t, "storefront", claims.Issuer)
	assert.NotEmpty(t, claims.ID)
}

func TestParseTokenRejectsTampered(t *testing.T) {
	s := newTestAuthService()
	tokens, err := s.issueTokens(testUser())
	require.NoError(t, err)

	_, err = s.ParseToken(tokens.AccessToken + "x")
	assert.Error(t, err)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	s := newTestAuthService()
	tokens, err := s.issueTokens(testUser())
	require.NoError(t, err)

	other := newTestAuthService()
	other.config.JWT.Secret = "another-secret"
	_, err = other.ParseToken(tokens.AccessToken)
	assert.Error(t, err)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	s := newTestAuthService()
	s.config.JWT.AccessTTL = -60

	tokens, err := s.issueTokens(testUser())
	require.NoError(t, err)

	_, err = s.ParseToken(tokens.AccessToken)
	assert.Error(t, err)
}

func TestParseTokenRejectsNonHMAC(t *testing.T) {
	s := newTestAuthService()

	token := jwt.NewWithClaims(jwt.SigningMethodNone, &core.Claims{
		UserID: primitive.NewObjectID().Hex(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = s.ParseToken(signed)
	assert.Error(t, err)
}
