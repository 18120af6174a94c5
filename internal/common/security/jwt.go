package security

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"care_connect/internal/domain/model"
)

// TokenIssuer signs and verifies the bearer credentials handed out at
// login. Signing key and token lifetime are explicit construction-time
// parameters; there is no library-default expiry.
type TokenIssuer struct {
	tokenAuth *jwtauth.JWTAuth
	expiry    time.Duration
}

func NewTokenIssuer(secret []byte, expiry time.Duration) *TokenIssuer {
	return &TokenIssuer{
		tokenAuth: jwtauth.New("HS256", secret, nil),
		expiry:    expiry,
	}
}

// JWTAuth exposes the underlying verifier for router middleware wiring.
func (ti *TokenIssuer) JWTAuth() *jwtauth.JWTAuth {
	return ti.tokenAuth
}

// IssueToken mints a signed token carrying the user's id and role.
// Each token gets a unique jti so individual credentials remain
// distinguishable in logs.
func (ti *TokenIssuer) IssueToken(userID int64, role model.Role) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    string(role),
		"jti":     uuid.NewString(),
		"iat":     now.Unix(),
		"exp":     now.Add(ti.expiry).Unix(),
	}
	_, tokenString, err := ti.tokenAuth.Encode(claims)
	return tokenString, err
}

// GetUserIDFromClaims extracts the caller's id. Decoded JSON numbers
// arrive as float64 or json.Number depending on the parser path.
func GetUserIDFromClaims(claims jwt.MapClaims) (int64, error) {
	switch v := claims["user_id"].(type) {
	case float64:
		return int64(v), nil
	case int64:
		return v, nil
	case json.Number:
		return v.Int64()
	default:
		return 0, errors.New("user_id claim is missing or not a number")
	}
}

func GetUserRoleFromClaims(claims jwt.MapClaims) (model.Role, error) {
	raw, ok := claims["role"].(string)
	if !ok {
		return "", errors.New("role claim is missing or not a string")
	}
	role, err := model.ParseRole(raw)
	if err != nil {
		return "", err
	}
	return role, nil
}
