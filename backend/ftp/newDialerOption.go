package ftp

import (
	"log/slog"

	"github.com/c2fo/ftpmover/options"
)

const (
	optionNameOptions    = "options"
	optionNameLogger     = "logger"
	optionNameBufferSize = "bufferSize"
)

// WithOptions returns optionsOpt implementation of NewOption
//
// WithOptions is used to specify dial options for the FTP connection.
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

// WithLogger returns loggerOpt implementation of NewOption
//
// WithLogger is used to log session lifecycle events. Sessions log nothing by default.
func WithLogger(logger *slog.Logger) options.NewOption[Connection] {
	return &loggerOpt{
		logger: logger,
	}
}

type loggerOpt struct {
	logger *slog.Logger
}

func (l *loggerOpt) Apply(c *Connection) {
	if l.logger != nil {
		c.s.logger = l.logger
	}
}

func (l *loggerOpt) NewOptionName() string {
	return optionNameLogger
}

// WithBufferSize returns bufferSizeOpt implementation of NewOption
//
// WithBufferSize sets the size in bytes of the buffer used to stream each retrieved file. Sizes less than or equal
// to 0 mean utils.CopyMinBufferSize.
func WithBufferSize(size int) options.NewOption[Connection] {
	return &bufferSizeOpt{
		size: size,
	}
}

type bufferSizeOpt struct {
	size int
}

func (b *bufferSizeOpt) Apply(c *Connection) {
	c.s.bufferSize = b.size
}

func (b *bufferSizeOpt) NewOptionName() string {
	return optionNameBufferSize
}
