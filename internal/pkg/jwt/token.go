package jwt

import (
	"crypto/rsa"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v4"

	"github.com/gasline/gasline/internal/pkg/errs"
	"github.com/gasline/gasline/internal/pkg/models"
)

// TokenClaims is the verified view of an IAM-issued bearer token.
type TokenClaims struct {
	Subject  string
	Username string
	Roles    []string
}

// Verifier validates bearer tokens against the realm key material.
type Verifier struct {
	cfg       models.JWTConfig
	clientID  string
	publicKey *rsa.PublicKey
}

// NewVerifier builds a verifier from config. The realm RSA public key is
// parsed once; when absent, HS256 with the shared secret is the only
// accepted algorithm.
func NewVerifier(cfg models.JWTConfig, clientID string) (*Verifier, error) {
	v := &Verifier{cfg: cfg, clientID: clientID}

	if cfg.PublicKey != "" {
		key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(cfg.PublicKey))
		if err != nil {
			return nil, fmt.Errorf("failed to parse realm public key: %w", err)
		}
		v.publicKey = key
	}

	return v, nil
}

// Verify parses and validates a bearer token, returning its claims.
// Signature algorithms RS256 and HS256 are accepted; audience and issuer
// must match the configured realm.
func (v *Verifier) Verify(tokenString string) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		switch token.Method.(type) {
		case *jwt.SigningMethodRSA:
			if v.publicKey == nil {
				return nil, fmt.Errorf("realm public key not configured")
			}
			return v.publicKey, nil
		case *jwt.SigningMethodHMAC:
			if v.cfg.Secret == "" {
				return nil, fmt.Errorf("jwt secret not configured")
			}
			return []byte(v.cfg.Secret), nil
		default:
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
	})
	if err != nil {
		var validationErr *jwt.ValidationError
		if errors.As(err, &validationErr) && validationErr.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, errs.ExpiredToken("token has expired")
		}
		return nil, errs.Operation("failed to verify token", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errs.Unauthorized("invalid token")
	}

	if v.cfg.Audience != "" && !claims.VerifyAudience(v.cfg.Audience, true) {
		return nil, errs.Unauthorized("invalid token audience")
	}
	if v.cfg.Issuer != "" && !claims.VerifyIssuer(v.cfg.Issuer, true) {
		return nil, errs.Unauthorized("invalid token issuer")
	}

	result := &TokenClaims{}
	if sub, ok := claims["sub"].(string); ok {
		result.Subject = sub
	}
	if username, ok := claims["preferred_username"].(string); ok {
		result.Username = username
	}
	result.Roles = extractRoles(claims, v.clientID)

	return result, nil
}

// extractRoles pulls the client roles from resource_access.<client_id>.roles.
func extractRoles(claims jwt.MapClaims, clientID string) []string {
	resourceAccess, ok := claims["resource_access"].(map[string]interface{})
	if !ok {
		return nil
	}
	client, ok := resourceAccess[clientID].(map[string]interface{})
	if !ok {
		return nil
	}
	rawRoles, ok := client["roles"].([]interface{})
	if !ok {
		return nil
	}

	roles := make([]string, 0, len(rawRoles))
	for _, r := range rawRoles {
		if role, ok := r.(string); ok {
			roles = append(roles, role)
		}
	}
	return roles
}
