package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for any token that fails verification:
// malformed, expired, or carrying a bad signature. Callers must not be able
// to distinguish which check failed.
var ErrInvalidToken = errors.New("invalid token")

// Claims embeds the registered JWT claims; Subject carries the username.
type Claims struct {
	jwt.RegisteredClaims
}

// GenerateToken mints an HS256 token for the given username with the given
// validity duration.
func GenerateToken(username string, secretKey []byte, validity time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validity)),
		},
	})

	return token.SignedString(secretKey)
}

// SubjectFromToken verifies the token's signature and expiry and returns the
// embedded subject. Any verification failure yields ErrInvalidToken.
func SubjectFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secretKey, nil
	})
	if err != nil || !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}
