package core

import "context"

// Identity is the authenticated caller as reported by the identity provider
type Identity struct {
	UserID string
	Email  string
}

// IdentityVerifier turns an opaque bearer credential into an Identity.
//
// Possible errors:
//   - errs.ErrUnauthorized: the credential is missing, malformed, expired or carries no subject
type IdentityVerifier interface {
	Verify(ctx context.Context, credential string) (*Identity, error)
}
