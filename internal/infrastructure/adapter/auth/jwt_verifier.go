package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	errs "github.com/amirhossein-jamali/petavatar-credits/internal/domain/error"
	coreport "github.com/amirhossein-jamali/petavatar-credits/internal/domain/port/core"
)

// Config holds the token validation settings
type Config struct {
	Secret   string
	Issuer   string // optional
	Audience string // optional
}

// JWTVerifier implements the IdentityVerifier port for HS256 bearer tokens issued by
// the identity provider. The "sub" claim is the user id.
type JWTVerifier struct {
	config Config
	parser *jwt.Parser
	logger coreport.Logger
}

// NewJWTVerifier creates a verifier for tokens signed with the shared secret
func NewJWTVerifier(config Config, logger coreport.Logger) *JWTVerifier {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if config.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(config.Issuer))
	}
	if config.Audience != "" {
		opts = append(opts, jwt.WithAudience(config.Audience))
	}

	return &JWTVerifier{
		config: config,
		parser: jwt.NewParser(opts...),
		logger: logger,
	}
}

// Verify validates the credential and returns the caller identity
func (v *JWTVerifier) Verify(_ context.Context, credential string) (*coreport.Identity, error) {
	credential = strings.TrimSpace(credential)
	if credential == "" {
		return nil, errs.ErrUnauthorized
	}

	claims := jwt.MapClaims{}
	_, err := v.parser.ParseWithClaims(credential, claims, func(token *jwt.Token) (any, error) {
		return []byte(v.config.Secret), nil
	})
	if err != nil {
		v.logger.Debug("Rejected bearer token", map[string]any{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrUnauthorized, err.Error())
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return nil, fmt.Errorf("%w: token has no subject", errs.ErrUnauthorized)
	}

	identity := &coreport.Identity{UserID: subject}
	if email, ok := claims["email"].(string); ok {
		identity.Email = email
	}
	return identity, nil
}
