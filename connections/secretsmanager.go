package connections

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/smithy-go"

	"github.com/c2fo/ftpmover"
	"github.com/c2fo/ftpmover/options"
)

// DefaultSecretPrefix is prepended to the connection id to form the secret name, ie:
// ftpmover/connections/partner_ftp
const DefaultSecretPrefix = "ftpmover/connections/"

const (
	resourceNotFoundException = "ResourceNotFoundException"

	errSecretEmpty = ftpmover.Error("secret has no value")
)

// SecretsManagerAPI is the subset of the Secrets Manager client used by SecretsManagerProvider.
type SecretsManagerAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput,
		optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// SecretsManagerProvider resolves connections from AWS Secrets Manager. A secret holds either a connection URI or a
// JSON document:
//
//	{"host": "ftp.example.com", "login": "user", "password": "pass", "port": 21}
type SecretsManagerProvider struct {
	api    SecretsManagerAPI
	prefix string
	region string
	logger *slog.Logger
}

// NewSecretsManagerProvider returns a provider using the default AWS config chain unless WithSecretsManagerAPI is
// given.
func NewSecretsManagerProvider(ctx context.Context, opts ...options.NewOption[SecretsManagerProvider]) (*SecretsManagerProvider, error) {
	p := &SecretsManagerProvider{
		prefix: DefaultSecretPrefix,
		logger: slog.New(slog.DiscardHandler),
	}
	options.ApplyOptions(p, opts...)

	if p.api == nil {
		var loadOpts []func(*config.LoadOptions) error
		if p.region != "" {
			loadOpts = append(loadOpts, config.WithRegion(p.region))
		}
		cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
		if err != nil {
			return nil, fmt.Errorf("failed to load AWS config: %w", err)
		}
		p.api = secretsmanager.NewFromConfig(cfg)
	}
	return p, nil
}

// SecretName returns the secret consulted for connID.
func (p *SecretsManagerProvider) SecretName(connID string) string {
	return p.prefix + connID
}

// Credentials implements ftpmover.CredentialProvider. A missing secret is reported as ErrNotFound.
func (p *SecretsManagerProvider) Credentials(ctx context.Context, connID string) (ftpmover.Credentials, error) {
	name := p.SecretName(connID)
	p.logger.DebugContext(ctx, "retrieving connection secret", "secret_name", name)

	out, err := p.api.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{SecretId: aws.String(name)})
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) && apiErr.ErrorCode() == resourceNotFoundException {
			return ftpmover.Credentials{}, fmt.Errorf("%w: secret %s", ErrNotFound, name)
		}
		p.logger.ErrorContext(ctx, "failed to retrieve connection secret", "secret_name", name, "error", err)
		return ftpmover.Credentials{}, fmt.Errorf("unable to retrieve secret %s: %w", name, err)
	}

	var value string
	switch {
	case out.SecretString != nil:
		value = *out.SecretString
	case out.SecretBinary != nil:
		value = string(out.SecretBinary)
	}
	creds, err := parseSecret(value)
	if err != nil {
		return ftpmover.Credentials{}, fmt.Errorf("secret %s: %w", name, err)
	}
	return creds, nil
}

type jsonConnection struct {
	Host     string      `json:"host"`
	Login    string      `json:"login"`
	Password string      `json:"password"`
	Port     json.Number `json:"port,omitempty"`
}

func parseSecret(value string) (ftpmover.Credentials, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return ftpmover.Credentials{}, errSecretEmpty
	}
	if !strings.HasPrefix(value, "{") {
		return ParseURI(value)
	}

	var c jsonConnection
	if err := json.Unmarshal([]byte(value), &c); err != nil {
		return ftpmover.Credentials{}, fmt.Errorf("unable to parse connection json: %w", err)
	}
	if c.Host == "" {
		return ftpmover.Credentials{}, errNoHost
	}
	host := c.Host
	if c.Port != "" {
		port, err := strconv.ParseUint(c.Port.String(), 10, 16)
		if err != nil {
			return ftpmover.Credentials{}, fmt.Errorf("invalid port %q: %w", c.Port, err)
		}
		host = net.JoinHostPort(c.Host, strconv.FormatUint(port, 10))
	}
	return ftpmover.Credentials{Host: host, Username: c.Login, Password: c.Password}, nil
}
