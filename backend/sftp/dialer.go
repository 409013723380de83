package sftp

import (
	"context"
	"net"
	"time"

	"github.com/c2fo/ftpmover/backend/ftp/types"
	"github.com/c2fo/ftpmover/options"
)

// Scheme is the connection URI scheme served by this package.
const Scheme = "sftp"

// Dialer implements types.Dialer for SFTP servers. Dial opens the TCP connection only. The SSH handshake happens in
// the client's Login, so a bad password or host key surfaces as an authentication failure.
type Dialer struct {
	options Options
}

// NewDialer initializer for Dialer struct.
func NewDialer(opts ...options.NewOption[Dialer]) *Dialer {
	d := &Dialer{}
	options.ApplyOptions(d, opts...)
	return d
}

// Dial connects to host, which is host or host:port. Port 22 is used when none is given. The connection is bound to
// ctx: once ctx is done its pending and future reads and writes fail.
func (d *Dialer) Dial(ctx context.Context, host string) (types.Client, error) {
	addr, err := hostPort(host)
	if err != nil {
		return nil, err
	}

	nd := &net.Dialer{Timeout: d.options.DialTimeout}
	conn, err := nd.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, err
	}
	stop := context.AfterFunc(ctx, func() {
		_ = conn.SetDeadline(time.Now())
	})
	return &client{ctx: ctx, conn: conn, stop: stop, addr: addr, options: d.options}, nil
}
