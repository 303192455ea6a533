package identity

import (
	"github.com/datarium/datarium/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// sessionSecret signs locally issued session tokens. Authentication is a
// device-local mock, so the key is fixed: the token only needs to be a
// deterministic function of the user id, not a security credential.
var sessionSecret = []byte("datarium-local-session")

// Claims carries the single custom claim of a session token.
type Claims struct {
	jwt.RegisteredClaims
	UserID string
}

// SessionToken derives the session token for a user id. The token carries no
// time-based claims, so the same id always yields the same token.
func SessionToken(userID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{UserID: userID})

	tokenString, err := token.SignedString(sessionSecret)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// UserIDFromToken parses a session token and returns the user id it was
// derived from.
func UserIDFromToken(tokenString string) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return sessionSecret, nil
	})
	if err != nil {
		return "", err
	}

	if !token.Valid {
		return "", common.ErrUnauthorized
	}

	return claims.UserID, nil
}
