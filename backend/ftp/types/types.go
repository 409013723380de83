// Package types holds the interfaces shared by the FTP session and its transports.
package types

import (
	"context"
	"io"
)

// Client is the subset of FTP commands a transfer session issues. It is satisfied by the jlaffaye/ftp adapter in
// backend/ftp and by the SFTP adapter in backend/sftp, and is an interface to make it easier to test.
type Client interface {
	Login(user string, password string) error
	ChangeDir(path string) error
	NameList(path string) ([]string, error) // NLST
	Retr(path string) (io.ReadCloser, error)
	Delete(path string) error
	Quit() error
}

// Dialer opens an unauthenticated Client to host (host or host:port).
type Dialer interface {
	Dial(ctx context.Context, host string) (Client, error)
}

// DialerFunc is an adapter to allow ordinary functions to be used as a Dialer.
type DialerFunc func(ctx context.Context, host string) (Client, error)

// Dial calls f(ctx, host).
func (f DialerFunc) Dial(ctx context.Context, host string) (Client, error) {
	return f(ctx, host)
}
