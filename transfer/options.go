package transfer

import (
	"log/slog"

	"github.com/c2fo/ftpmover/backend/ftp"
	"github.com/c2fo/ftpmover/backend/ftp/types"
	"github.com/c2fo/ftpmover/options"
)

const (
	optionNameLogger         = "logger"
	optionNameDialer         = "dialer"
	optionNameBufferSize     = "bufferSize"
	optionNameSessionOptions = "sessionOptions"
)

// WithLogger returns loggerOpt implementation of NewOption
//
// WithLogger sets the logger for pipeline and session events.
func WithLogger(logger *slog.Logger) options.NewOption[Pipeline] {
	return &loggerOpt{logger: logger}
}

type loggerOpt struct {
	logger *slog.Logger
}

func (l *loggerOpt) Apply(p *Pipeline) {
	if l.logger != nil {
		p.logger = l.logger
	}
}

func (l *loggerOpt) NewOptionName() string {
	return optionNameLogger
}

// WithDialer returns dialerOpt implementation of NewOption
//
// WithDialer sets the transport sessions are opened with, ie: an *sftp.Dialer or an FTPS-configured *ftp.Dialer.
func WithDialer(dialer types.Dialer) options.NewOption[Pipeline] {
	return &dialerOpt{dialer: dialer}
}

type dialerOpt struct {
	dialer types.Dialer
}

func (d *dialerOpt) Apply(p *Pipeline) {
	p.dialer = d.dialer
}

func (d *dialerOpt) NewOptionName() string {
	return optionNameDialer
}

// WithBufferSize returns bufferSizeOpt implementation of NewOption
//
// WithBufferSize sets the streaming buffer size in bytes. Sizes less than or equal to 0 mean utils.CopyMinBufferSize.
func WithBufferSize(size int) options.NewOption[Pipeline] {
	return &bufferSizeOpt{size: size}
}

type bufferSizeOpt struct {
	size int
}

func (b *bufferSizeOpt) Apply(p *Pipeline) {
	p.bufferSize = b.size
}

func (b *bufferSizeOpt) NewOptionName() string {
	return optionNameBufferSize
}

// WithSessionOptions returns sessionOptionsOpt implementation of NewOption
//
// WithSessionOptions passes extra options to every session the pipeline opens. They are applied after the pipeline's
// own logger and buffer size.
func WithSessionOptions(opts ...options.NewOption[ftp.Connection]) options.NewOption[Pipeline] {
	return &sessionOptionsOpt{opts: opts}
}

type sessionOptionsOpt struct {
	opts []options.NewOption[ftp.Connection]
}

func (s *sessionOptionsOpt) Apply(p *Pipeline) {
	p.sessionOpts = append(p.sessionOpts, s.opts...)
}

func (s *sessionOptionsOpt) NewOptionName() string {
	return optionNameSessionOptions
}
