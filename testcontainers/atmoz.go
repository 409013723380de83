package testcontainers

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"testing"
	"time"

	_sftp "github.com/pkg/sftp"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"golang.org/x/crypto/ssh"

	"github.com/c2fo/ftpmover"
	"github.com/c2fo/ftpmover/backend/sftp"
)

const (
	atmozPort     = "22/tcp"
	atmozUsername = "dummy"
	atmozPassword = "dummy"
	atmozDir      = "upload"
)

func startAtmoz(t *testing.T) *source {
	ctx := context.Background()
	is := require.New(t)

	req := testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Name:       "ftpmover-atmoz-sftp",
			Image:      "atmoz/sftp:alpine",
			Env:        map[string]string{"SFTP_USERS": fmt.Sprintf("%s:%s:::%s", atmozUsername, atmozPassword, atmozDir)},
			WaitingFor: wait.ForListeningPort(atmozPort),
		},
		Started: true,
	}
	ctr, err := testcontainers.GenericContainer(ctx, req)
	testcontainers.CleanupContainer(t, ctr)
	is.NoError(err)

	host, err := ctr.Host(ctx)
	is.NoError(err)

	port, err := ctr.MappedPort(ctx, atmozPort)
	is.NoError(err)

	addr := fmt.Sprintf("%s:%s", host, port.Port())
	withClient := func(t *testing.T, fn func(c *_sftp.Client) error) {
		conn, err := ssh.Dial("tcp", addr, &ssh.ClientConfig{
			User:            atmozUsername,
			Auth:            []ssh.AuthMethod{ssh.Password(atmozPassword)},
			HostKeyCallback: ssh.InsecureIgnoreHostKey(), //nolint:gosec
			Timeout:         10 * time.Second,
		})
		require.NoError(t, err)
		defer func() { _ = conn.Close() }()
		c, err := _sftp.NewClient(conn)
		require.NoError(t, err)
		defer func() { _ = c.Close() }()
		require.NoError(t, fn(c))
	}

	return &source{
		name:  "sftp",
		dir:   atmozDir,
		creds: ftpmover.Credentials{Host: addr, Username: atmozUsername, Password: atmozPassword},
		dialer: sftp.NewDialer(sftp.WithOptions(sftp.Options{
			KnownHostsCallback: ssh.InsecureIgnoreHostKey(), //nolint:gosec
			DialTimeout:        10 * time.Second,
		})),
		put: func(t *testing.T, name, content string) {
			withClient(t, func(c *_sftp.Client) error {
				f, err := c.Create(path.Join(atmozDir, name))
				if err != nil {
					return err
				}
				if _, err := f.Write([]byte(content)); err != nil {
					_ = f.Close()
					return err
				}
				return f.Close()
			})
		},
		exists: func(t *testing.T, name string) bool {
			var found bool
			withClient(t, func(c *_sftp.Client) error {
				_, err := c.Stat(path.Join(atmozDir, name))
				if errors.Is(err, fs.ErrNotExist) {
					return nil
				}
				found = err == nil
				return err
			})
			return found
		},
	}
}
