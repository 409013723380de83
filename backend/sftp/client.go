package sftp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"path"
	"time"

	_sftp "github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
)

type sftpErr string

func (e sftpErr) Error() string { return string(e) }

const errNotLoggedIn = sftpErr("sftp client is not logged in")

// client implements types.Client over an SSH connection. Paths are resolved against cwd, which starts empty so
// relative paths go to the server's login directory.
type client struct {
	ctx     context.Context
	conn    net.Conn
	stop    func() bool
	addr    string
	options Options

	ssh  *ssh.Client
	sftp *_sftp.Client
	cwd  string
}

// Login performs the SSH handshake as user, offering password and any configured key, then starts the sftp
// subsystem.
func (c *client) Login(user, password string) error {
	cfg, err := clientConfig(user, password, c.options)
	if err != nil {
		return err
	}

	if c.options.DialTimeout > 0 {
		if err := c.conn.SetDeadline(time.Now().Add(c.options.DialTimeout)); err != nil {
			return err
		}
	}
	sshConn, chans, reqs, err := ssh.NewClientConn(c.conn, c.addr, cfg)
	if err != nil {
		return err
	}
	if c.options.DialTimeout > 0 {
		if err := c.conn.SetDeadline(time.Time{}); err != nil {
			_ = sshConn.Close()
			return err
		}
		// the handshake deadline must not clear one set by a done context
		if c.ctx != nil && c.ctx.Err() != nil {
			_ = c.conn.SetDeadline(time.Now())
		}
	}
	c.ssh = ssh.NewClient(sshConn, chans, reqs)

	sc, err := _sftp.NewClient(c.ssh)
	if err != nil {
		return err
	}
	c.sftp = sc
	return nil
}

// ChangeDir sets the directory later names are resolved against. It fails unless dir exists and is a directory.
func (c *client) ChangeDir(dir string) error {
	if c.sftp == nil {
		return errNotLoggedIn
	}
	p := c.resolve(dir)
	fi, err := c.sftp.Stat(p)
	if err != nil {
		return err
	}
	if !fi.IsDir() {
		return fmt.Errorf("%s: not a directory", p)
	}
	c.cwd = p
	return nil
}

// NameList returns the base names in the current directory matching the glob pattern, sorted by name.
func (c *client) NameList(pattern string) ([]string, error) {
	if c.sftp == nil {
		return nil, errNotLoggedIn
	}
	matches, err := c.sftp.Glob(c.resolve(pattern))
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, path.Base(m))
	}
	return names, nil
}

// Retr opens name for reading.
func (c *client) Retr(name string) (io.ReadCloser, error) {
	if c.sftp == nil {
		return nil, errNotLoggedIn
	}
	return c.sftp.Open(c.resolve(name))
}

// Delete removes name.
func (c *client) Delete(name string) error {
	if c.sftp == nil {
		return errNotLoggedIn
	}
	return c.sftp.Remove(c.resolve(name))
}

// Quit closes the sftp subsystem and the SSH connection beneath it.
func (c *client) Quit() error {
	if c.stop != nil {
		defer c.stop()
	}
	var errs []error
	if c.sftp != nil {
		errs = append(errs, c.sftp.Close())
	}
	switch {
	case c.ssh != nil:
		errs = append(errs, c.ssh.Close())
	case c.conn != nil:
		errs = append(errs, c.conn.Close())
	}
	return errors.Join(errs...)
}

func (c *client) resolve(name string) string {
	if path.IsAbs(name) {
		return path.Clean(name)
	}
	return path.Join(c.cwd, name)
}
