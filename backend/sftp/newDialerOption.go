package sftp

import "github.com/c2fo/ftpmover/options"

const optionNameOptions = "options"

// WithOptions returns optionsOpt implementation of NewOption
//
// WithOptions is used to specify key, known_hosts and algorithm settings for the SSH connection.
func WithOptions(opts Options) options.NewOption[Dialer] {
	return &optionsOpt{
		options: opts,
	}
}

type optionsOpt struct {
	options Options
}

func (o *optionsOpt) Apply(d *Dialer) {
	d.options = o.options
}

func (o *optionsOpt) NewOptionName() string {
	return optionNameOptions
}
