package testcontainers

import (
	"context"
	"testing"

	"github.com/c2fo/ftpmover"
	"github.com/c2fo/ftpmover/backend/ftp/types"
)

// source is a running FTP or SFTP server that files can be seeded into.
type source struct {
	name   string
	dir    string
	creds  ftpmover.Credentials
	dialer types.Dialer
	put    func(t *testing.T, name, content string)
	exists func(t *testing.T, name string) bool
}

// destination is a running storage service with a bucket ready to receive objects.
type destination struct {
	name   string
	bucket ftpmover.Bucket
	read   func(ctx context.Context, key string) ([]byte, error)
}
