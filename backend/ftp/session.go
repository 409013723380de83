package ftp

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/c2fo/ftpmover"
	"github.com/c2fo/ftpmover/backend/ftp/types"
	"github.com/c2fo/ftpmover/options"
	"github.com/c2fo/ftpmover/utils"
)

// State is the lifecycle stage of a session.
type State int

const (
	// StateDisconnected - no transport connection exists yet
	StateDisconnected State = iota
	// StateConnected - the control connection is open but not logged in
	StateConnected
	// StateAuthenticated - logged in
	StateAuthenticated
	// StateDirectorySet - the working directory has been entered; listing, retrieving and deleting are allowed
	StateDirectorySet
	// StateTransferring - a retrieve is in progress
	StateTransferring
	// StateClosed - the connection has been terminated
	StateClosed
)

// String returns the string representation of the State.
func (s State) String() string {
	switch s {
	case StateDisconnected:
		return "Disconnected"
	case StateConnected:
		return "Connected"
	case StateAuthenticated:
		return "Authenticated"
	case StateDirectorySet:
		return "DirectorySet"
	case StateTransferring:
		return "Transferring"
	case StateClosed:
		return "Closed"
	default:
		return "Unknown"
	}
}

// session is the state shared by the stage handles of one FTP session.
type session struct {
	client     types.Client
	host       string
	state      State
	logger     *slog.Logger
	bufferSize int
}

// close terminates the transport at most once. Errors are logged and dropped: by the time a session is closed the
// outcome of the run is already decided.
func (s *session) close(ctx context.Context) {
	if s.state == StateClosed || s.client == nil {
		s.state = StateClosed
		return
	}
	s.state = StateClosed
	if err := s.client.Quit(); err != nil {
		s.logger.DebugContext(ctx, "error closing ftp connection", "host", s.host, "error", err)
	}
}

// Connection is a session that is connected but not yet logged in.
type Connection struct {
	s *session
}

// Authenticated is a session that is logged in but has no working directory set yet.
type Authenticated struct {
	s *session
}

// Session is a logged-in session with its working directory set. It is not safe for concurrent use and must not be
// reused after Close.
type Session struct {
	s *session
}

// Connect opens a connection to host using dialer. On failure a *ftpmover.ConnectionError is returned and nothing
// needs closing. A dialer that rejects its own settings fails with a *ftpmover.InvalidConfigError instead.
func Connect(ctx context.Context, dialer types.Dialer, host string, opts ...options.NewOption[Connection]) (*Connection, error) {
	c := &Connection{s: &session{
		host:   host,
		state:  StateDisconnected,
		logger: slog.New(slog.DiscardHandler),
	}}
	options.ApplyOptions(c, opts...)

	client, err := dialer.Dial(ctx, host)
	if err != nil {
		var cfgErr *ftpmover.InvalidConfigError
		if errors.As(err, &cfgErr) {
			return nil, err
		}
		return nil, &ftpmover.ConnectionError{Host: host, Err: utils.WrapConnectError(err)}
	}
	c.s.client = client
	c.s.state = StateConnected
	c.s.logger.InfoContext(ctx, "connected to host", "host", host)
	return c, nil
}

// State returns the current session state.
func (c *Connection) State() State { return c.s.state }

// Close terminates the connection. It never fails.
func (c *Connection) Close() { c.s.close(context.Background()) }

// Authenticate logs in. On failure the connection is closed and a *ftpmover.AuthError is returned.
func (c *Connection) Authenticate(ctx context.Context, username, password string) (*Authenticated, error) {
	if c.s.state != StateConnected {
		return nil, &ftpmover.AuthError{Host: c.s.host, User: username, Err: c.s.invalidState(StateConnected)}
	}
	if err := c.s.client.Login(username, password); err != nil {
		c.s.close(ctx)
		return nil, &ftpmover.AuthError{Host: c.s.host, User: username, Err: utils.WrapLoginError(err)}
	}
	c.s.state = StateAuthenticated
	c.s.logger.InfoContext(ctx, "logged in", "host", c.s.host, "user", username)
	return &Authenticated{s: c.s}, nil
}

// State returns the current session state.
func (a *Authenticated) State() State { return a.s.state }

// Close terminates the connection. It never fails.
func (a *Authenticated) Close() { a.s.close(context.Background()) }

// ChangeDirectory enters dir. An empty dir means the login directory. On failure the connection is closed and a
// *ftpmover.NavigationError is returned.
func (a *Authenticated) ChangeDirectory(ctx context.Context, dir string) (*Session, error) {
	if a.s.state != StateAuthenticated {
		return nil, &ftpmover.NavigationError{Path: dir, Err: a.s.invalidState(StateAuthenticated)}
	}
	target := dir
	if target == "" {
		target = "."
	}
	if err := a.s.client.ChangeDir(target); err != nil {
		a.s.close(ctx)
		return nil, &ftpmover.NavigationError{Path: dir, Err: err}
	}
	a.s.state = StateDirectorySet
	a.s.logger.InfoContext(ctx, "changed to folder", "host", a.s.host, "folder", dir)
	return &Session{s: a.s}, nil
}

// State returns the current session state.
func (s *Session) State() State { return s.s.state }

// Close terminates the connection. It never fails and is a no-op when already closed.
func (s *Session) Close() { s.s.close(context.Background()) }

// List returns the names matching pattern in the working directory, in the order the server reports them. The whole
// listing is read before returning. No match is not an error. On failure the connection is closed and a
// *ftpmover.ListError is returned.
func (s *Session) List(ctx context.Context, pattern string) ([]string, error) {
	if s.s.state != StateDirectorySet {
		return nil, &ftpmover.ListError{Pattern: pattern, Err: s.s.invalidState(StateDirectorySet)}
	}
	names, err := s.s.client.NameList(pattern)
	if err != nil {
		s.s.close(ctx)
		return nil, &ftpmover.ListError{Pattern: pattern, Err: utils.WrapListError(err)}
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}

// Retrieve streams the remote file name into sink through a fixed-size buffer. sink is not closed. On failure the
// connection is closed and a *ftpmover.TransferError is returned; whatever reached sink stays there.
func (s *Session) Retrieve(ctx context.Context, name string, sink io.Writer) error {
	if s.s.state != StateDirectorySet {
		return &ftpmover.TransferError{Name: name, Err: s.s.invalidState(StateDirectorySet)}
	}
	s.s.state = StateTransferring

	r, err := s.s.client.Retr(name)
	if err != nil {
		s.s.close(ctx)
		return &ftpmover.TransferError{Name: name, Err: utils.WrapOpenError(err)}
	}

	_, err = utils.CopyBuffered(sink, r, s.s.bufferSize)
	// closing the response reads the server's transfer status, so it is checked even after a good copy
	closeErr := r.Close()
	switch {
	case err != nil:
		s.s.close(ctx)
		return &ftpmover.TransferError{Name: name, Err: utils.WrapReadError(err)}
	case closeErr != nil:
		s.s.close(ctx)
		return &ftpmover.TransferError{Name: name, Err: utils.WrapCloseError(closeErr)}
	}

	s.s.state = StateDirectorySet
	s.s.logger.DebugContext(ctx, "retrieved", "host", s.s.host, "name", name)
	return nil
}

// Delete removes the remote file name. The connection is left open on failure and a *ftpmover.DeleteError is
// returned; the caller decides whether the session continues.
func (s *Session) Delete(ctx context.Context, name string) error {
	if s.s.state != StateDirectorySet {
		return &ftpmover.DeleteError{Name: name, Err: s.s.invalidState(StateDirectorySet)}
	}
	if err := s.s.client.Delete(name); err != nil {
		return &ftpmover.DeleteError{Name: name, Err: err}
	}
	s.s.logger.DebugContext(ctx, "deleted", "host", s.s.host, "name", name)
	return nil
}

func (s *session) invalidState(want State) error {
	return &StateError{Want: want, Got: s.state}
}
