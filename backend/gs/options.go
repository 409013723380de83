package gs

import (
	"context"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/mitchellh/go-homedir"
	"google.golang.org/api/impersonate"
	"google.golang.org/api/option"
)

// Options holds Google Cloud Storage-specific options.
type Options struct {
	APIKey                string   `json:"apiKey,omitempty"`
	CredentialFile        string   `json:"credentialFilePath,omitempty"` // env var FTPMOVER_GCS_CREDENTIALS_FILE
	Endpoint              string   `json:"endpoint,omitempty"`
	Scopes                []string `json:"scopes,omitempty"`
	WithoutAuthentication bool     `json:"withoutAuthentication,omitempty"`

	// ImpersonateServiceAccount is the service account the client acts as. Its short-lived tokens are minted with the
	// credentials selected above, or Application Default Credentials when none are.
	ImpersonateServiceAccount string `json:"impersonateServiceAccount,omitempty"`
	// Delegates are the service accounts between the base credentials and ImpersonateServiceAccount. Each one must
	// grant roles/iam.serviceAccountTokenCreator to the next.
	Delegates []string `json:"delegates,omitempty"`

	// ChunkSize is the upload chunk size in bytes. 0 keeps the storage client default.
	ChunkSize int `json:"chunkSize,omitempty"`
}

// NewOptions creates a new Options struct by populating values from environment variables.
//
// Env Vars:
//
//	*FTPMOVER_GCS_CREDENTIALS_FILE
//	*FTPMOVER_GCS_IMPERSONATION_CHAIN - comma separated, see SetImpersonationChain
func NewOptions() Options {
	opts := Options{
		CredentialFile: os.Getenv("FTPMOVER_GCS_CREDENTIALS_FILE"),
	}
	opts.SetImpersonationChain(SplitImpersonationChain(os.Getenv("FTPMOVER_GCS_IMPERSONATION_CHAIN"))...)
	return opts
}

// SetImpersonationChain sets ImpersonateServiceAccount to the last account of chain and Delegates to the ones before
// it. The first account must grant the token creator role to the base credentials. An empty chain clears both.
func (o *Options) SetImpersonationChain(chain ...string) {
	o.ImpersonateServiceAccount = ""
	o.Delegates = nil
	if len(chain) == 0 {
		return
	}
	o.ImpersonateServiceAccount = chain[len(chain)-1]
	if len(chain) > 1 {
		o.Delegates = append([]string(nil), chain[:len(chain)-1]...)
	}
}

// SplitImpersonationChain splits a comma separated list of service accounts, dropping blanks.
func SplitImpersonationChain(chain string) []string {
	var accounts []string
	for _, a := range strings.Split(chain, ",") {
		if a = strings.TrimSpace(a); a != "" {
			accounts = append(accounts, a)
		}
	}
	return accounts
}

// clientOptions returns the storage client options for opts. With impersonation the authentication options only
// serve to mint the impersonated tokens.
func clientOptions(ctx context.Context, opts Options) ([]option.ClientOption, error) {
	clientOpts := parseClientOptions(opts)
	if opts.ImpersonateServiceAccount == "" {
		return clientOpts, nil
	}

	scopes := opts.Scopes
	if len(scopes) == 0 {
		scopes = []string{storage.ScopeReadWrite}
	}
	ts, err := impersonate.CredentialsTokenSource(ctx, impersonate.CredentialsConfig{
		TargetPrincipal: opts.ImpersonateServiceAccount,
		Scopes:          scopes,
		Delegates:       opts.Delegates,
	}, authOptions(opts)...)
	if err != nil {
		return nil, err
	}

	clientOpts = []option.ClientOption{option.WithTokenSource(ts)}
	if opts.Endpoint != "" {
		clientOpts = append(clientOpts, option.WithEndpoint(opts.Endpoint))
	}
	return clientOpts, nil
}

func parseClientOptions(opts Options) []option.ClientOption {
	googleClientOpts := authOptions(opts)

	if opts.Endpoint != "" {
		googleClientOpts = append(googleClientOpts, option.WithEndpoint(opts.Endpoint))
	}
	if len(opts.Scopes) > 0 {
		googleClientOpts = append(googleClientOpts, option.WithScopes(opts.Scopes...))
	}
	return googleClientOpts
}

func authOptions(opts Options) []option.ClientOption {
	// only one way to authenticate applies
	switch {
	case opts.APIKey != "":
		return []option.ClientOption{option.WithAPIKey(opts.APIKey)}
	case opts.CredentialFile != "":
		file, err := homedir.Expand(opts.CredentialFile)
		if err != nil {
			file = opts.CredentialFile
		}
		return []option.ClientOption{option.WithCredentialsFile(file)} //nolint:staticcheck // file comes from operator config
	case opts.WithoutAuthentication:
		return []option.ClientOption{option.WithoutAuthentication()}
	}
	return []option.ClientOption{}
}
