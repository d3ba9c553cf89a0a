package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"confcompanion/internal/domain"
)

// ErrInvalidToken is returned for tokens that fail parsing, signature or claim checks.
var ErrInvalidToken = errors.New("invalid token")

type jwtClaims struct {
	jwt.RegisteredClaims
	Email      string `json:"email,omitempty"`
	GivenName  string `json:"given_name,omitempty"`
	FamilyName string `json:"family_name,omitempty"`
	Picture    string `json:"picture,omitempty"`
}

type jwtIssuer struct {
	secret []byte
	issuer string
}

// NewJWTIssuer returns a TokenIssuer that signs JWTs with HS256 using the given secret.
func NewJWTIssuer(secret, issuer string) domain.TokenIssuer {
	return &jwtIssuer{secret: []byte(secret), issuer: issuer}
}

func (i *jwtIssuer) Issue(identity domain.IdentityClaims, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := jwtClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.Subject,
			Issuer:    i.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
		Email:      identity.Email,
		GivenName:  identity.FirstName,
		FamilyName: identity.LastName,
		Picture:    identity.ProfileImageURL,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

type jwtVerifier struct {
	secret []byte
	parser *jwt.Parser
}

// NewJWTVerifier returns a TokenVerifier for HS256 tokens signed with secret.
// A non-empty issuer is required to match the token's iss claim.
func NewJWTVerifier(secret, issuer string) domain.TokenVerifier {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	return &jwtVerifier{secret: []byte(secret), parser: jwt.NewParser(opts...)}
}

func (v *jwtVerifier) Verify(tokenString string) (*domain.IdentityClaims, error) {
	claims := &jwtClaims{}
	_, err := v.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}
	return &domain.IdentityClaims{
		Subject:         claims.Subject,
		Email:           claims.Email,
		FirstName:       claims.GivenName,
		LastName:        claims.FamilyName,
		ProfileImageURL: claims.Picture,
	}, nil
}
