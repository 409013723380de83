package azure

import "github.com/c2fo/ftpmover/options"

const (
	optionNameClient  = "client"
	optionNameOptions = "options"
)

// WithClient returns clientOpt implementation of NewOption
//
// WithClient is used to explicitly specify a Client to use for the bucket.
// The client is used to interact with the Azure service.
func WithClient(c Client) options.NewOption[Bucket] {
	return &clientOpt{
		client: c,
	}
}

type clientOpt struct {
	client Client
}

func (ct *clientOpt) Apply(b *Bucket) {
	b.client = ct.client
}

func (ct *clientOpt) NewOptionName() string {
	return optionNameClient
}

// WithOptions returns optionsOpt implementation of NewOption
//
// WithOptions is used to specify options for the bucket.
// The options are used to build the client and to size uploads.
func WithOptions(opts Options) options.NewOption[Bucket] {
	return &optionsOpt{
		options: opts,
	}
}

type optionsOpt struct {
	options Options
}

func (o *optionsOpt) Apply(b *Bucket) {
	b.options = &o.options
}

func (o *optionsOpt) NewOptionName() string {
	return optionNameOptions
}
