package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// Claims mirrors what the auth provider puts in its ID tokens.
type Claims struct {
	UID     string `json:"uid"`
	Email   string `json:"email,omitempty"`
	Name    string `json:"name,omitempty"`
	Picture string `json:"picture,omitempty"`
	Vendor  bool   `json:"vendor,omitempty"`
	jwt.RegisteredClaims
}

// ParseToken verifies an HMAC signed token and returns the identity it carries.
func ParseToken(tokenStr, secret string) (Identity, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return Identity{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims := token.Claims.(*Claims)
	uid := claims.UID
	if uid == "" {
		uid = claims.Subject
	}
	if uid == "" {
		return Identity{}, fmt.Errorf("%w: no uid claim", ErrInvalidToken)
	}

	return Identity{
		UID:         uid,
		Email:       claims.Email,
		DisplayName: claims.Name,
		PhotoURL:    claims.Picture,
		Vendor:      claims.Vendor,
	}, nil
}

// SignToken issues a token for id. Used by local tooling and tests; production
// tokens come from the auth provider.
func SignToken(id Identity, secret string, ttl time.Duration) (string, error) {
	claims := Claims{
		UID:     id.UID,
		Email:   id.Email,
		Name:    id.DisplayName,
		Picture: id.PhotoURL,
		Vendor:  id.Vendor,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.UID,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
