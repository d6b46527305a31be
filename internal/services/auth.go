package services

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

type TokenClaims struct {
	UID   string
	Email string
}

// TokenVerifier validates an identity token issued by the external identity
// provider. Interview operations never depend on it; it guards the
// orchestration boundary only.
type TokenVerifier interface {
	Verify(token string) (*TokenClaims, error)
}

type jwtVerifier struct {
	secret []byte
}

func NewJWTVerifier(secret string) TokenVerifier {
	return &jwtVerifier{secret: []byte(secret)}
}

func (v *jwtVerifier) Verify(tokenString string) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	result := &TokenClaims{}
	if uid, ok := claims["uid"].(string); ok {
		result.UID = uid
	} else if sub, err := claims.GetSubject(); err == nil {
		result.UID = sub
	}
	if email, ok := claims["email"].(string); ok {
		result.Email = email
	}

	return result, nil
}

// ReferralValidator checks invitation codes against the configured set.
type ReferralValidator struct {
	codes map[string]struct{}
}

func NewReferralValidator(codes []string) *ReferralValidator {
	set := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		set[code] = struct{}{}
	}
	return &ReferralValidator{codes: set}
}

func (v *ReferralValidator) Validate(code string) bool {
	_, ok := v.codes[code]
	return ok
}
