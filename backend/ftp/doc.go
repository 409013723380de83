/*
Package ftp - FTP session implementation for ftpmover.

# Usage

A session is opened in stages. Each stage returns the handle for the next one, so operations can only be issued in
order:

	conn, err := ftp.Connect(ctx, ftp.NewDialer(), "ftp.acme.com:21")
	if err != nil {
		return err // *ftpmover.ConnectionError, nothing to close
	}

	authed, err := conn.Authenticate(ctx, "bob", "s3cr3t")
	if err != nil {
		return err // *ftpmover.AuthError, connection already closed
	}

	sess, err := authed.ChangeDirectory(ctx, "/outgoing")
	if err != nil {
		return err // *ftpmover.NavigationError, connection already closed
	}
	defer sess.Close()

	names, err := sess.List(ctx, "report_2024*")
	...
	err = sess.Retrieve(ctx, names[0], w)

Every failing stage closes the connection itself, except Delete which leaves the session open. Close never fails and
may be called more than once.

The connections opened by Dialer are bound to the ctx given to Connect: once it is done, a stalled command or
transfer fails instead of waiting on the server.

# Options

Without WithOptions, dial settings come from the FTPMOVER_FTP_PROTOCOL and FTPMOVER_FTP_DISABLE_EPSV env vars (see
NewOptions). Dial options are set with WithOptions:

	d := ftp.NewDialer(
		ftp.WithOptions(
			ftp.Options{
				DisableEPSV: true,
				Protocol:    ftp.ProtocolFTPES,
				DialTimeout: 15 * time.Second,
				DebugWriter: os.Stdout,
			},
		),
	)

Sessions take WithLogger and WithBufferSize:

	conn, err := ftp.Connect(ctx, d, host, ftp.WithLogger(logger), ftp.WithBufferSize(1<<20))

# Protocols

  - FTP (default) - plain text control and data connections, port 21
  - FTPS - implicit TLS, port 990
  - FTPES - explicit TLS via AUTH TLS, port 21

Any other protocol fails Dial with a *ftpmover.InvalidConfigError.

Anything implementing types.Dialer may be passed to Connect. backend/sftp provides one for SFTP servers.
*/
package ftp
