// Package ftpmover transfers files matching a single-wildcard path pattern from an FTP server
// into an object-storage bucket, optionally deleting the sources afterwards.
package ftpmover

import (
	"context"
	"fmt"
	"io"
)

// WriteSink is a sequential byte destination for one storage object. Close finalizes the object.
type WriteSink interface {
	io.WriteCloser

	// Abort discards the object instead of finalizing it and releases the sink. cause is passed on to the upload
	// where the storage client takes one. An error means the object may have been committed anyway. Only the first
	// of Close and Abort has any effect.
	Abort(cause error) error
}

// Bucket represents a handle to an object-storage bucket (or container) that objects can be written to.
// A Bucket is a read-only shared input and must be safe to share across concurrent transfer runs.
type Bucket interface {
	fmt.Stringer

	// OpenWriteStream returns a WriteSink for the object at key. Bytes are streamed as they are written. Nothing is
	// visible at key until the sink is closed, and an aborted sink leaves no object behind.
	OpenWriteStream(ctx context.Context, key string) (WriteSink, error)

	// Name returns the bucket name, ie: "mybucket"
	Name() string

	// Scheme returns the uri scheme of the storage system, ie: gs, s3, az, mem
	Scheme() string
}

// Credentials holds what is needed to open and authenticate an FTP session.
type Credentials struct {
	// Host is host or host:port
	Host     string
	Username string
	Password string
}

// String returns the credentials without the password so they may be logged.
func (c Credentials) String() string {
	return fmt.Sprintf("%s@%s", c.Username, c.Host)
}

// CredentialProvider resolves an FTP connection identifier into Credentials.
type CredentialProvider interface {
	Credentials(ctx context.Context, connID string) (Credentials, error)
}

// CredentialProviderFunc is an adapter to allow ordinary functions to be used as a CredentialProvider.
type CredentialProviderFunc func(ctx context.Context, connID string) (Credentials, error)

// Credentials calls f(ctx, connID).
func (f CredentialProviderFunc) Credentials(ctx context.Context, connID string) (Credentials, error) {
	return f(ctx, connID)
}
