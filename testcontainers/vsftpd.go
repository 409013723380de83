package testcontainers

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"testing"
	"time"

	_ftp "github.com/jlaffaye/ftp"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/c2fo/ftpmover"
	"github.com/c2fo/ftpmover/backend/ftp"
)

const (
	vsftpdPort     = "21/tcp"
	vsftpdUsername = "admin"
	vsftpdPassword = "dummy"
)

func startVSFTPD(t *testing.T) *source {
	ctx := context.Background()
	is := require.New(t)

	req := testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Name:         "ftpmover-vsftpd",
			Image:        "fauria/vsftpd:latest",
			ExposedPorts: []string{"21", "21100-21110:21100-21110"},
			Env:          map[string]string{"FTP_PASS": vsftpdPassword},
			WaitingFor:   wait.ForListeningPort(vsftpdPort),
		},
		Started: true,
	}
	ctr, err := testcontainers.GenericContainer(ctx, req)
	testcontainers.CleanupContainer(t, ctr)
	is.NoError(err)

	host, err := ctr.Host(ctx)
	is.NoError(err)

	port, err := ctr.MappedPort(ctx, vsftpdPort)
	is.NoError(err)

	addr := fmt.Sprintf("%s:%s", host, port.Port())
	withConn := func(t *testing.T, fn func(c *_ftp.ServerConn) error) {
		c, err := _ftp.Dial(addr, _ftp.DialWithTimeout(10*time.Second))
		require.NoError(t, err)
		defer func() { _ = c.Quit() }()
		require.NoError(t, c.Login(vsftpdUsername, vsftpdPassword))
		require.NoError(t, fn(c))
	}

	return &source{
		name:   "ftp",
		creds:  ftpmover.Credentials{Host: addr, Username: vsftpdUsername, Password: vsftpdPassword},
		dialer: ftp.NewDialer(ftp.WithOptions(ftp.Options{DialTimeout: 10 * time.Second})),
		put: func(t *testing.T, name, content string) {
			withConn(t, func(c *_ftp.ServerConn) error { return c.Stor(name, strings.NewReader(content)) })
		},
		exists: func(t *testing.T, name string) bool {
			var found bool
			withConn(t, func(c *_ftp.ServerConn) error {
				names, err := c.NameList(".")
				found = slices.Contains(names, name)
				return err
			})
			return found
		},
	}
}
