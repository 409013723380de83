package sftp

import (
	"errors"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/mitchellh/go-homedir"
	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/knownhosts"

	"github.com/c2fo/ftpmover/utils"
)

const (
	systemWideKnownHosts = "/etc/ssh/ssh_known_hosts"
	defaultPort          = 22

	envKeyFile           = "FTPMOVER_SFTP_KEYFILE"
	envKeyFilePassphrase = "FTPMOVER_SFTP_KEYFILE_PASSPHRASE"
	envKnownHostsFile    = "FTPMOVER_SFTP_KNOWN_HOSTS_FILE"
	envInsecureKnownHost = "FTPMOVER_SFTP_INSECURE_KNOWN_HOSTS"
)

// Options holds sftp-specific dial options. The password always comes from the session's Login call.
type Options struct {
	KeyFilePath        string              `json:"keyFilePath,omitempty"`    // env var FTPMOVER_SFTP_KEYFILE
	KeyPassphrase      string              `json:"keyPassphrase,omitempty"`  // env var FTPMOVER_SFTP_KEYFILE_PASSPHRASE
	KnownHostsFile     string              `json:"knownHostsFile,omitempty"` // env var FTPMOVER_SFTP_KNOWN_HOSTS_FILE
	KnownHostsString   string              `json:"knownHostsString,omitempty"`
	KnownHostsCallback ssh.HostKeyCallback `json:"-"` // env var FTPMOVER_SFTP_INSECURE_KNOWN_HOSTS
	HostKeyAlgorithms  []string            `json:"hostKeyAlgorithms,omitempty"`
	Ciphers            []string            `json:"ciphers,omitempty"`
	KeyExchanges       []string            `json:"keyExchanges,omitempty"`
	MACs               []string            `json:"macs,omitempty"`
	DialTimeout        time.Duration       `json:"dialTimeout,omitempty"`
}

var defaultSSHConfig = &ssh.ClientConfig{
	HostKeyAlgorithms: []string{
		"rsa-sha2-256-cert-v01@openssh.com",
		"rsa-sha2-512-cert-v01@openssh.com",
		"ecdsa-sha2-nistp256-cert-v01@openssh.com",
		"ssh-ed25519-cert-v01@openssh.com",
		"ecdsa-sha2-nistp256",
		"ssh-ed25519",
		"rsa-sha2-512",
		"rsa-sha2-256",
		"ssh-rsa",
	},
	Config: ssh.Config{
		Ciphers: []string{
			"aes128-gcm@openssh.com",
			"aes256-gcm@openssh.com",
			"chacha20-poly1305@openssh.com",
			"aes128-ctr",
			"aes192-ctr",
			"aes256-ctr",
		},
		MACs: []string{
			"hmac-sha2-256-etm@openssh.com",
			"hmac-sha2-512-etm@openssh.com",
			"hmac-sha2-256",
			"hmac-sha2-512",
		},
		KeyExchanges: []string{
			"curve25519-sha256",
			"curve25519-sha256@libssh.org",
			"ecdh-sha2-nistp256",
			"ecdh-sha2-nistp384",
			"ecdh-sha2-nistp521",
			"diffie-hellman-group14-sha256",
		},
	},
}

// getSSHConfig returns the algorithm settings, any unset list falling back to defaultSSHConfig.
func getSSHConfig(opts Options) *ssh.ClientConfig {
	cfg := &ssh.ClientConfig{
		HostKeyAlgorithms: defaultSSHConfig.HostKeyAlgorithms,
		Config:            defaultSSHConfig.Config,
	}
	if len(opts.HostKeyAlgorithms) > 0 {
		cfg.HostKeyAlgorithms = opts.HostKeyAlgorithms
	}
	if len(opts.Ciphers) > 0 {
		cfg.Ciphers = opts.Ciphers
	}
	if len(opts.MACs) > 0 {
		cfg.MACs = opts.MACs
	}
	if len(opts.KeyExchanges) > 0 {
		cfg.KeyExchanges = opts.KeyExchanges
	}
	return cfg
}

// clientConfig builds the complete ssh client config for a login.
func clientConfig(user, password string, opts Options) (*ssh.ClientConfig, error) {
	authMethods, err := getAuthMethods(password, opts)
	if err != nil {
		return nil, err
	}

	// get callback for handling known_hosts man-in-the-middle checks
	hostKeyCallback, err := getHostKeyCallback(opts)
	if err != nil {
		return nil, err
	}

	cfg := getSSHConfig(opts)
	cfg.User = user
	cfg.Auth = authMethods
	cfg.HostKeyCallback = hostKeyCallback
	cfg.Timeout = opts.DialTimeout
	return cfg, nil
}

// getHostKeyCallback gets host key callback for all known_hosts files
func getHostKeyCallback(opts Options) (ssh.HostKeyCallback, error) {
	var knownHostsFiles []string
	switch {
	// use explicit callback in Options
	case opts.KnownHostsCallback != nil:
		return opts.KnownHostsCallback, nil

	case opts.KnownHostsString != "":
		hostKey, _, _, _, err := ssh.ParseAuthorizedKey([]byte(opts.KnownHostsString))
		if err != nil {
			return nil, err
		}
		return ssh.FixedHostKey(hostKey), nil

	case opts.KnownHostsFile != "":
		// check first to prevent auto-vivification of file
		found, err := foundFile(opts.KnownHostsFile)
		if err != nil {
			return nil, err
		}
		if found {
			knownHostsFiles = append(knownHostsFiles, opts.KnownHostsFile)
			break
		}
		// use env var if explicit file wasn't found
		fallthrough

	case os.Getenv(envKnownHostsFile) != "":
		found, err := foundFile(os.Getenv(envKnownHostsFile))
		if err != nil {
			return nil, err
		}
		if found {
			knownHostsFiles = append(knownHostsFiles, os.Getenv(envKnownHostsFile))
			break
		}
		fallthrough

	case os.Getenv(envInsecureKnownHost) != "":
		return ssh.InsecureIgnoreHostKey(), nil //nolint:gosec // opt-in via env var

	// use user/system-wide known_hosts paths (as defined by OpenSSH https://man.openbsd.org/ssh)
	default:
		var err error
		knownHostsFiles, err = findHomeSystemKnownHosts(knownHostsFiles)
		if err != nil {
			return nil, err
		}
	}

	return knownhosts.New(knownHostsFiles...)
}

func findHomeSystemKnownHosts(knownHostsFiles []string) ([]string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return nil, err
	}
	homeKnownHostsPath := path.Join(home, ".ssh/known_hosts")

	found, err := foundFile(homeKnownHostsPath)
	if err != nil {
		return nil, err
	}
	if found {
		knownHostsFiles = append(knownHostsFiles, homeKnownHostsPath)
	}

	// SSH doesn't exist natively on Windows and each implementation keeps known_hosts somewhere else
	if runtime.GOOS != "windows" {
		found, err := foundFile(systemWideKnownHosts)
		if err != nil {
			return nil, err
		}
		if found {
			knownHostsFiles = append(knownHostsFiles, systemWideKnownHosts)
		}
	}
	return knownHostsFiles, nil
}

func foundFile(file string) (bool, error) {
	if _, err := os.Stat(file); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func getAuthMethods(password string, opts Options) ([]ssh.AuthMethod, error) {
	auth := make([]ssh.AuthMethod, 0)

	if password != "" {
		auth = append(auth, ssh.Password(password))
	}

	// setup key-based auth from env, if any
	keyfile := os.Getenv(envKeyFile)
	if opts.KeyFilePath != "" {
		keyfile = opts.KeyFilePath
	}
	if keyfile != "" {
		passphrase := os.Getenv(envKeyFilePassphrase)
		if opts.KeyPassphrase != "" {
			passphrase = opts.KeyPassphrase
		}

		secretKey, err := getKeyFile(keyfile, passphrase)
		if err != nil {
			return nil, err
		}
		auth = append(auth, ssh.PublicKeys(secretKey))
	}

	return auth, nil
}

func getKeyFile(file, passphrase string) (ssh.Signer, error) {
	expanded, err := homedir.Expand(file)
	if err != nil {
		return nil, err
	}
	buf, err := os.ReadFile(expanded) //nolint:gosec // path comes from configuration
	if err != nil {
		return nil, err
	}
	if passphrase != "" {
		return ssh.ParsePrivateKeyWithPassphrase(buf, []byte(passphrase))
	}
	return ssh.ParsePrivateKey(buf)
}

// hostPort returns host with the default sftp port added when none is given.
func hostPort(host string) (string, error) {
	auth, err := utils.NewAuthority(host)
	if err != nil {
		return "", err
	}
	return auth.HostPortWithDefault(defaultPort), nil
}
