package connections

import (
	"log/slog"

	"github.com/c2fo/ftpmover/options"
)

const (
	optionNameSecretsManagerAPI = "secretsManagerAPI"
	optionNameSecretPrefix      = "secretPrefix"
	optionNameRegion            = "region"
	optionNameLogger            = "logger"
)

// WithSecretsManagerAPI sets the Secrets Manager client, ie: a client built for LocalStack or a fake in tests.
func WithSecretsManagerAPI(api SecretsManagerAPI) options.NewOption[SecretsManagerProvider] {
	return options.OptionFunc[SecretsManagerProvider]{
		Name: optionNameSecretsManagerAPI,
		Fn:   func(p *SecretsManagerProvider) { p.api = api },
	}
}

// WithSecretPrefix replaces DefaultSecretPrefix. An empty prefix uses the connection id as the secret name.
func WithSecretPrefix(prefix string) options.NewOption[SecretsManagerProvider] {
	return options.OptionFunc[SecretsManagerProvider]{
		Name: optionNameSecretPrefix,
		Fn:   func(p *SecretsManagerProvider) { p.prefix = prefix },
	}
}

// WithRegion sets the AWS region used when the client is built from the default config chain.
func WithRegion(region string) options.NewOption[SecretsManagerProvider] {
	return options.OptionFunc[SecretsManagerProvider]{
		Name: optionNameRegion,
		Fn:   func(p *SecretsManagerProvider) { p.region = region },
	}
}

// WithLogger sets the logger. Secret values are never logged.
func WithLogger(logger *slog.Logger) options.NewOption[SecretsManagerProvider] {
	return options.OptionFunc[SecretsManagerProvider]{
		Name: optionNameLogger,
		Fn: func(p *SecretsManagerProvider) {
			if logger != nil {
				p.logger = logger
			}
		},
	}
}
