package connections

import (
	"context"
	"errors"
	"fmt"

	"github.com/c2fo/ftpmover"
)

// StaticProvider is a fixed map of connection id to Credentials.
type StaticProvider map[string]ftpmover.Credentials

// Credentials implements ftpmover.CredentialProvider.
func (p StaticProvider) Credentials(_ context.Context, connID string) (ftpmover.Credentials, error) {
	c, ok := p[connID]
	if !ok {
		return ftpmover.Credentials{}, fmt.Errorf("%w: %q", ErrNotFound, connID)
	}
	return c, nil
}

// ChainProvider asks each provider in turn and returns the first result that is not ErrNotFound.
type ChainProvider []ftpmover.CredentialProvider

// Credentials implements ftpmover.CredentialProvider.
func (p ChainProvider) Credentials(ctx context.Context, connID string) (ftpmover.Credentials, error) {
	for _, provider := range p {
		c, err := provider.Credentials(ctx, connID)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		return c, err
	}
	return ftpmover.Credentials{}, fmt.Errorf("%w: %q", ErrNotFound, connID)
}
