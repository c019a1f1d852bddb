package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Tokens are short-lived; clients re-request one from /jwt when it expires.
const tokenTTL = time.Hour

// SignClaims signs the caller-supplied claims as an HS256 token with a one
// hour expiry. The claims are expected to carry the user's email.
func SignClaims(claims map[string]interface{}, secret []byte) (string, error) {
	if len(secret) == 0 {
		return "", errors.New("ACCESS_TOKEN_SECRET is not configured")
	}

	mapClaims := jwt.MapClaims{}
	for k, v := range claims {
		mapClaims[k] = v
	}
	mapClaims["exp"] = jwt.NewNumericDate(time.Now().Add(tokenTTL))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, mapClaims)
	return token.SignedString(secret)
}

// ParseToken validates a token string and returns its claims.
func ParseToken(tokenStr string, secret []byte) (jwt.MapClaims, error) {
	if len(secret) == 0 {
		return nil, errors.New("ACCESS_TOKEN_SECRET is not configured")
	}

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
