/*
Package sftp - SFTP transport for ftpmover sessions.

Dialer implements types.Dialer, so an SFTP server can be read with the same staged session as an FTP server:

	d := sftp.NewDialer(
		sftp.WithOptions(
			sftp.Options{
				KeyFilePath:    "~/.ssh/id_rsa",
				KeyPassphrase:  "s3cr3t",
				KnownHostsFile: "/etc/ftpmover/known_hosts",
			},
		),
	)
	conn, err := ftp.Connect(ctx, d, "sftp.acme.com")

Dial only opens the TCP connection. The SSH handshake happens when the session authenticates: the password from the
credential is offered along with the key file, if any. Listing uses sftp glob matching in place of NLST and returns
base names sorted by name.

# Authentication

Key file and passphrase come from Options or from the FTPMOVER_SFTP_KEYFILE and FTPMOVER_SFTP_KEYFILE_PASSPHRASE env
vars. A leading ~ in the key path is expanded.

# Known Hosts

Host keys are checked, in order, with:

  - Options.KnownHostsCallback
  - Options.KnownHostsString, a single known_hosts or authorized_keys line
  - Options.KnownHostsFile
  - the file named by FTPMOVER_SFTP_KNOWN_HOSTS_FILE
  - no check at all when FTPMOVER_SFTP_INSECURE_KNOWN_HOSTS is set
  - ~/.ssh/known_hosts and /etc/ssh/ssh_known_hosts
*/
package sftp
