//go:generate go tool github.com/maxbrunsfeld/counterfeiter/v6 -generate

package ports

import (
	"context"

	"github.com/hashicorp/vault/api"
)

//counterfeiter:generate -o ../mocks/secrets_repository.go . SecretsRepository

type (
	// SecretsRepository is the subset of the Vault client the config loader uses.
	SecretsRepository interface {
		// SetToken replaces the client token after an approle login.
		SetToken(v string)
		// GetSecrets reads a KV path; a nil secret means nothing is stored there.
		GetSecrets(ctx context.Context, path string) (*api.Secret, error)
		// WriteWithContext is used for auth logins.
		WriteWithContext(ctx context.Context, path string, data map[string]any) (*api.Secret, error)
	}
)
