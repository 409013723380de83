package connections

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/c2fo/ftpmover"
)

// DefaultEnvPrefix is prepended to the upper-cased connection id to form the variable name, ie:
// FTPMOVER_CONN_PARTNER_FTP for connection id "partner_ftp".
const DefaultEnvPrefix = "FTPMOVER_CONN_"

// EnvProvider resolves connections from environment variables holding connection URIs.
type EnvProvider struct {
	prefix string
	lookup func(string) (string, bool)
}

// NewEnvProvider returns an EnvProvider reading variables named DefaultEnvPrefix + ID.
func NewEnvProvider() *EnvProvider {
	return &EnvProvider{prefix: DefaultEnvPrefix, lookup: os.LookupEnv}
}

// NewEnvProviderWithPrefix is like NewEnvProvider with a different variable prefix, ie: "AIRFLOW_CONN_".
func NewEnvProviderWithPrefix(prefix string) *EnvProvider {
	return &EnvProvider{prefix: prefix, lookup: os.LookupEnv}
}

// VarName returns the environment variable consulted for connID.
func (p *EnvProvider) VarName(connID string) string {
	return p.prefix + envKey(connID)
}

// Credentials implements ftpmover.CredentialProvider.
func (p *EnvProvider) Credentials(_ context.Context, connID string) (ftpmover.Credentials, error) {
	name := p.VarName(connID)
	val, ok := p.lookup(name)
	if !ok || val == "" {
		return ftpmover.Credentials{}, fmt.Errorf("%w: %s is not set", ErrNotFound, name)
	}
	creds, err := ParseURI(val)
	if err != nil {
		return ftpmover.Credentials{}, fmt.Errorf("%s: %w", name, err)
	}
	return creds, nil
}

// envKey upper-cases id and replaces anything outside [A-Z0-9_] with an underscore.
func envKey(id string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r - 'a' + 'A'
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		default:
			return '_'
		}
	}, id)
}
