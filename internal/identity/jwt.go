package identity

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTVerifier validates HS256 tokens signed with a shared secret. It exists
// for local and staging deployments where no Firebase project is wired up;
// the claims contract matches what the Firebase verifier extracts.
type JWTVerifier struct {
	secret []byte
}

// Claims defines the token payload the verifier accepts.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

func NewJWTVerifier(secret string) *JWTVerifier {
	return &JWTVerifier{secret: []byte(secret)}
}

func (v *JWTVerifier) Verify(ctx context.Context, token string) (*Identity, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, unauthenticated("unexpected signing method")
		}
		return v.secret, nil
	})
	if err != nil {
		return nil, unauthenticated("token validation failed")
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, unauthenticated("invalid token claims")
	}
	if claims.Email == "" {
		return nil, unauthenticated("token carries no email claim")
	}
	return &Identity{Email: strings.ToLower(claims.Email)}, nil
}

// MintToken signs a token for the given email. Used by local tooling and
// tests; production tokens come from the identity provider.
func (v *JWTVerifier) MintToken(email string, ttl time.Duration) (string, error) {
	claims := Claims{
		Email: strings.ToLower(email),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "bloodlink-local",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(v.secret)
}
