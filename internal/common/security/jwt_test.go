package security

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"care_connect/internal/domain/model"
)

const testSecret = "test-secret"

func decodeClaims(t *testing.T, tokenString string) jwt.MapClaims {
	t.Helper()
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		require.IsType(t, &jwt.SigningMethodHMAC{}, token.Method)
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	return claims
}

func TestIssueToken(t *testing.T) {
	issuer := NewTokenIssuer([]byte(testSecret), time.Hour)

	tokenString, err := issuer.IssueToken(42, model.RoleAdmin)
	require.NoError(t, err)

	claims := decodeClaims(t, tokenString)

	userID, err := GetUserIDFromClaims(claims)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)

	role, err := GetUserRoleFromClaims(claims)
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, role)

	assert.NotEmpty(t, claims["jti"])

	exp, ok := claims["exp"].(float64)
	require.True(t, ok)
	assert.InDelta(t, time.Now().Add(time.Hour).Unix(), int64(exp), 5)
}

func TestIssueTokenUniqueJTI(t *testing.T) {
	issuer := NewTokenIssuer([]byte(testSecret), time.Hour)

	first, err := issuer.IssueToken(1, model.RoleUser)
	require.NoError(t, err)
	second, err := issuer.IssueToken(1, model.RoleUser)
	require.NoError(t, err)

	assert.NotEqual(t, decodeClaims(t, first)["jti"], decodeClaims(t, second)["jti"])
}

func TestGetUserIDFromClaims(t *testing.T) {
	tests := []struct {
		name          string
		claims        jwt.MapClaims
		expected      int64
		expectedError bool
	}{
		{name: "float64", claims: jwt.MapClaims{"user_id": float64(7)}, expected: 7},
		{name: "int64", claims: jwt.MapClaims{"user_id": int64(9)}, expected: 9},
		{name: "missing", claims: jwt.MapClaims{}, expectedError: true},
		{name: "wrong type", claims: jwt.MapClaims{"user_id": "7"}, expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := GetUserIDFromClaims(tt.claims)
			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, id)
			}
		})
	}
}

func TestGetUserRoleFromClaims(t *testing.T) {
	role, err := GetUserRoleFromClaims(jwt.MapClaims{"role": "approved"})
	require.NoError(t, err)
	assert.Equal(t, model.RoleApproved, role)

	_, err = GetUserRoleFromClaims(jwt.MapClaims{"role": "not-a-role"})
	assert.Error(t, err)

	_, err = GetUserRoleFromClaims(jwt.MapClaims{})
	assert.Error(t, err)
}
