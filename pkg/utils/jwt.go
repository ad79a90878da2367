package utils

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var sessionKey = []byte(os.Getenv("SESSION_SECRET"))

// SessionClaims carries the shop domain the token was issued for in the
// "dest" claim, mirroring the hosting platform's session token shape.
type SessionClaims struct {
	Shop string `json:"dest"`
	jwt.RegisteredClaims
}

func CreateSessionToken(shop string) (string, error) {
	claims := &SessionClaims{
		Shop: shop,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute * 60)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(sessionKey)
}

func ValidateSessionToken(tokenString string, key []byte) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return key, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, ErrUnauthorized
	}
	return claims, nil
}

func SessionKey() []byte {
	return sessionKey
}
