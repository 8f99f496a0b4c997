// Package auth issues and verifies the HS256 access and refresh tokens.
package auth

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/accountkeeper/internal/common"
)

// Kind tells access tokens and refresh tokens apart. It is carried in the
// "typ" claim so one kind can never be accepted as the other.
type Kind string

const (
	KindAccess  Kind = "access"
	KindRefresh Kind = "refresh"
)

// Claims carries the principal id and the token kind next to the registered
// claims (exp, iat, jti).
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"uid"`
	Kind   Kind   `json:"typ"`
}

// GenerateToken signs a token of the given kind for userID that expires ttl
// from now.
func GenerateToken(kind Kind, userID string, secret []byte, ttl time.Duration) (string, error) {
	return generateToken(kind, userID, secret, ttl, time.Now())
}

func generateToken(kind Kind, userID string, secret []byte, ttl time.Duration, now time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID: userID,
		Kind:   kind,
	})

	signed, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ParseToken verifies tokenString and returns its principal id. Failures are
// reported as common.ErrTokenMalformed, common.ErrTokenSignatureInvalid or
// common.ErrTokenExpired. A token of another kind is malformed.
func ParseToken(kind Kind, tokenString string, secret []byte) (string, error) {
	return parseToken(kind, tokenString, secret, time.Now)
}

func parseToken(kind Kind, tokenString string, secret []byte, now func() time.Time) (string, error) {
	if err := verifySignature(tokenString, secret); err != nil {
		return "", err
	}

	claims := &Claims{}

	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (any, error) { return secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithStrictDecoding(),
		jwt.WithTimeFunc(now),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return "", common.ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return "", common.ErrTokenSignatureInvalid
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", common.ErrTokenExpired
		default:
			return "", fmt.Errorf("%w: %v", common.ErrTokenMalformed, err)
		}
	}

	if claims.Kind != kind || claims.UserID == "" {
		return "", common.ErrTokenMalformed
	}

	return claims.UserID, nil
}

// verifySignature checks the HS256 MAC over the raw header and claims
// segments before anything is decoded, so a modified token is reported as a
// bad signature whichever segment changed. The signature must be canonical
// unpadded base64url.
func verifySignature(tokenString string, secret []byte) error {
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return common.ErrTokenMalformed
	}

	sig, err := base64.RawURLEncoding.Strict().DecodeString(parts[2])
	if err != nil {
		return common.ErrTokenSignatureInvalid
	}
	if err := jwt.SigningMethodHS256.Verify(parts[0]+"."+parts[1], sig, secret); err != nil {
		return common.ErrTokenSignatureInvalid
	}
	return nil
}
