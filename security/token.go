package security

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the JWT claims accepted as bearer tokens.
type Claims struct {
	jwt.RegisteredClaims
	Roles []string `json:"roles,omitempty"`
}

// TokenAuthenticator verifies HMAC-signed bearer tokens.
type TokenAuthenticator struct {
	secret []byte
	issuer string
}

// NewTokenAuthenticator creates an authenticator for tokens signed with
// secret. A non-empty issuer is enforced against the "iss" claim.
func NewTokenAuthenticator(secret []byte, issuer string) *TokenAuthenticator {
	return &TokenAuthenticator{secret: secret, issuer: issuer}
}

// Authenticate verifies token and maps its claims to an Account.
func (a *TokenAuthenticator) Authenticate(token string) (*Account, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"}),
		jwt.WithExpirationRequired(),
	}
	if a.issuer != "" {
		opts = append(opts, jwt.WithIssuer(a.issuer))
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return a.secret, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !parsed.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, ErrMissingSubject
	}

	return &Account{
		Identifier:      claims.Subject,
		Roles:           claims.Roles,
		AuthenticatedBy: "bearer",
	}, nil
}
