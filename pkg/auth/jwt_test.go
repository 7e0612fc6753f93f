package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonhub/booking-api/internal/model"
)

func testService() JWTService {
	return NewJWTService(Config{
		Secret:        "test-access-secret",
		RefreshSecret: "test-refresh-secret",
		Expiry:        time.Hour,
		RefreshExpiry: 24 * time.Hour,
	})
}

func testUser(role model.Role) *model.User {
	return &model.User{
		Base:  model.Base{ID: uuid.New()},
		Email: "user@example.com",
		Role:  role,
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	svc := testService()
	user := testUser(model.RoleOwner)

	token, err := svc.GenerateAccessToken(user)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, model.RoleOwner, claims.Role)
}

func TestRoleClaimSurvivesJSONNumberDecoding(t *testing.T) {
	// The jwt library decodes numeric claims as float64; the role must come
	// back as the same numeric role for every defined value.
	svc := testService()

	for _, role := range []model.Role{model.RoleAdmin, model.RoleOwner, model.RoleStaff, model.RoleUser} {
		token, err := svc.GenerateAccessToken(testUser(role))
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, role, claims.Role)
	}
}

func TestRefreshTokenNotValidAsAccess(t *testing.T) {
	svc := testService()

	refresh, err := svc.GenerateRefreshToken(testUser(model.RoleUser))
	require.NoError(t, err)

	_, err = svc.ValidateToken(refresh)
	assert.Error(t, err)

	claims, err := svc.ValidateRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, model.RoleUser, claims.Role)
}

func TestValidateRejectsForgedToken(t *testing.T) {
	svc := testService()
	other := NewJWTService(Config{Secret: "different-secret", RefreshSecret: "x"})

	forged, err := other.GenerateAccessToken(testUser(model.RoleAdmin))
	require.NoError(t, err)

	_, err = svc.ValidateToken(forged)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateRejectsGarbage(t *testing.T) {
	svc := testService()

	_, err := svc.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
