package ftp

import (
	"context"
	"crypto/tls"
	"io"
	"net"
	"strings"
	"sync"
	"time"

	_ftp "github.com/jlaffaye/ftp"

	"github.com/c2fo/ftpmover"
	"github.com/c2fo/ftpmover/backend/ftp/types"
	"github.com/c2fo/ftpmover/options"
	"github.com/c2fo/ftpmover/utils"
)

const errUnknownProtocol = ftpmover.Error("want FTP, FTPS or FTPES")

// Dialer implements types.Dialer on top of github.com/jlaffaye/ftp.
type Dialer struct {
	options Options
}

// NewDialer initializer for Dialer struct. Without WithOptions the settings come from NewOptions.
func NewDialer(opts ...options.NewOption[Dialer]) *Dialer {
	d := &Dialer{options: NewOptions()}
	options.ApplyOptions(d, opts...)
	return d
}

// Dial connects to host, which is host or host:port. Port 21 is used when none is given (990 for FTPS). Login is left
// to the returned client.
//
// Every connection of the session, control and data, is bound to ctx: once ctx is done their pending and future
// reads and writes fail. An unknown protocol is a *ftpmover.InvalidConfigError.
func (d *Dialer) Dial(ctx context.Context, host string) (types.Client, error) {
	auth, err := utils.NewAuthority(host)
	if err != nil {
		return nil, err
	}

	conns := &ctxDialer{
		ctx:    ctx,
		dialer: net.Dialer{Timeout: d.options.DialTimeout},
	}
	if conns.dialer.Timeout <= 0 {
		conns.dialer.Timeout = _ftp.DefaultDialTimeout
	}

	// always bind connections to ctx, disable EPSV if opt is true
	dialOptions := []_ftp.DialOption{
		_ftp.DialWithDialFunc(conns.dial),
		_ftp.DialWithDisabledEPSV(d.options.DisableEPSV),
	}

	switch strings.ToUpper(d.options.Protocol) {
	case "", ProtocolFTP:
	case ProtocolFTPS:
		conns.tlsConfig = d.options.tlsConfig(auth.Host())
		conns.implicitTLS = true
	case ProtocolFTPES:
		conns.tlsConfig = d.options.tlsConfig(auth.Host())
		// the library upgrades the control connection after AUTH TLS
		dialOptions = append(dialOptions, _ftp.DialWithExplicitTLS(conns.tlsConfig))
	default:
		return nil, &ftpmover.InvalidConfigError{Field: "ftp protocol", Value: d.options.Protocol, Err: errUnknownProtocol}
	}

	if d.options.DebugWriter != nil {
		dialOptions = append(dialOptions, _ftp.DialWithDebugOutput(d.options.DebugWriter))
	}

	c, err := _ftp.Dial(auth.HostPortWithDefault(d.options.port()), dialOptions...)
	if err != nil {
		conns.release()
		return nil, err
	}
	return &serverConn{ServerConn: c, release: conns.release}, nil
}

// ctxDialer opens the connections of one session. jlaffaye hands TLS over to a custom dial func, so TLS is applied
// here: on every connection for implicit TLS, on data connections only for explicit TLS.
type ctxDialer struct {
	ctx         context.Context
	dialer      net.Dialer
	tlsConfig   *tls.Config
	implicitTLS bool

	mu     sync.Mutex
	dialed int
	stops  []func() bool
}

func (d *ctxDialer) dial(network, address string) (net.Conn, error) {
	conn, err := d.dialer.DialContext(d.ctx, network, address)
	if err != nil {
		return nil, err
	}

	d.mu.Lock()
	control := d.dialed == 0
	d.dialed++
	d.stops = append(d.stops, context.AfterFunc(d.ctx, func() {
		_ = conn.SetDeadline(time.Now())
	}))
	d.mu.Unlock()

	if d.tlsConfig != nil && (d.implicitTLS || !control) {
		return tls.Client(conn, d.tlsConfig), nil
	}
	return conn, nil
}

// release unbinds every connection from the context.
func (d *ctxDialer) release() {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, stop := range d.stops {
		stop()
	}
	d.stops = nil
}

// serverConn adapts *_ftp.ServerConn to types.Client.
type serverConn struct {
	*_ftp.ServerConn
	release func()
}

// Retr issues a RETR FTP command. The returned reader must be closed to read the server's transfer-complete reply.
func (c *serverConn) Retr(path string) (io.ReadCloser, error) {
	resp, err := c.ServerConn.Retr(path)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Quit sends QUIT and closes the control connection.
func (c *serverConn) Quit() error {
	defer c.release()
	return c.ServerConn.Quit()
}
