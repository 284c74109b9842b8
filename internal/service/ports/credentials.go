package ports

import "context"

// CredentialProvider yields the bearer token of the signed-in user, or an
// empty string for anonymous submissions.
type CredentialProvider interface {
	CurrentToken(ctx context.Context) (string, error)
}
