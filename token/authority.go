// token/authority.go
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	gw_errors "github.com/edusphere/integration/errors"
	"github.com/edusphere/integration/model"
)

// DefaultTTL is applied when Issue is called with a non-positive ttl.
const DefaultTTL = 30 * time.Minute

// IAuthority defines the interface for token operations
type IAuthority interface {
	Issue(claims model.Claims, ttl time.Duration) (string, error)
	Verify(tokenString string) (*model.Claims, error)
}

// Authority issues and verifies signed, time-bounded claims tokens. It is
// fully stateless: the symmetric secret is the only state, shared process-wide
// and read-only, so any instance holding it can issue and verify
// independently.
type Authority struct {
	secret     []byte
	defaultTTL time.Duration
}

var _ IAuthority = &Authority{}

// NewAuthority creates an Authority with the given signing secret and default
// token lifetime. A non-positive defaultTTL falls back to 30 minutes.
func NewAuthority(secret string, defaultTTL time.Duration) *Authority {
	if defaultTTL <= 0 {
		defaultTTL = DefaultTTL
	}
	return &Authority{secret: []byte(secret), defaultTTL: defaultTTL}
}

// Issue serializes the claims plus a computed expiry into an HS256-signed
// token. At least one of Subject/ServiceName must be set. An omitted (zero)
// ttl falls back to the default; a negative ttl is honored as-is and yields
// an already-expired token.
func (a *Authority) Issue(claims model.Claims, ttl time.Duration) (string, error) {
	if claims.Subject == "" && claims.ServiceName == "" {
		return "", gw_errors.ErrMissingIdentity
	}
	if ttl == 0 {
		ttl = a.defaultTTL
	}

	payload := jwt.MapClaims{
		"exp": jwt.NewNumericDate(time.Now().Add(ttl)),
	}
	if claims.Subject != "" {
		payload["sub"] = claims.Subject
	}
	if claims.ServiceName != "" {
		payload["service"] = claims.ServiceName
	}
	if len(claims.Scopes) > 0 {
		payload["scopes"] = claims.Scopes
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, payload).SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify validates the signature and expiry and reconstructs the Claims. Any
// structural or cryptographic failure maps onto the auth error taxonomy; no
// server-side state is consulted.
func (a *Authority) Verify(tokenString string) (*model.Claims, error) {
	parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, gw_errors.ErrTokenExpired
		}
		return nil, gw_errors.ErrInvalidToken
	}

	payload, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return nil, gw_errors.ErrInvalidToken
	}

	claims := &model.Claims{
		Subject:     claimString(payload, "sub"),
		ServiceName: claimString(payload, "service"),
		Scopes:      claimStringSlice(payload, "scopes"),
	}
	if claims.Subject == "" && claims.ServiceName == "" {
		return nil, gw_errors.ErrMissingIdentity
	}
	if exp, err := payload.GetExpirationTime(); err == nil && exp != nil {
		claims.ExpiresAt = exp.Time
	}
	return claims, nil
}

func claimString(payload jwt.MapClaims, key string) string {
	if v, ok := payload[key].(string); ok {
		return v
	}
	return ""
}

func claimStringSlice(payload jwt.MapClaims, key string) []string {
	raw, ok := payload[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
