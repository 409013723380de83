package ftp

import (
	"crypto/tls"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	// ProtocolFTP is plain, unencrypted FTP (default)
	ProtocolFTP = "FTP"
	// ProtocolFTPS is implicit TLS FTP, usually on port 990
	ProtocolFTPS = "FTPS"
	// ProtocolFTPES is explicit TLS FTP (AUTH TLS on the command port)
	ProtocolFTPES = "FTPES"

	defaultPort         = 21
	defaultImplicitPort = 990
)

// Options holds ftp-specific dial options.
type Options struct {
	Protocol               string        // FTP[default], FTPS or FTPES
	DisableEPSV            bool          // use PASV for data connections
	DialTimeout            time.Duration // bounds each TCP connect; defaults to jlaffaye's DefaultDialTimeout
	DebugWriter            io.Writer     // receives the raw control connection traffic
	InsecureSkipVerify     bool          // skip server certificate verification for FTPS and FTPES
	IncludeInsecureCiphers bool
	TLSConfig              *tls.Config // overrides every TLS setting above when set
}

// NewOptions creates a new Options struct by populating values from environment variables.
//
// Env Vars:
//
//	*FTPMOVER_FTP_PROTOCOL
//	*FTPMOVER_FTP_DISABLE_EPSV
func NewOptions() Options {
	opts := Options{
		Protocol: os.Getenv("FTPMOVER_FTP_PROTOCOL"),
	}
	if v, err := strconv.ParseBool(os.Getenv("FTPMOVER_FTP_DISABLE_EPSV")); err == nil {
		opts.DisableEPSV = v
	}
	return opts
}

func (o Options) port() uint16 {
	if strings.EqualFold(o.Protocol, ProtocolFTPS) {
		return defaultImplicitPort
	}
	return defaultPort
}

func (o Options) tlsConfig(serverName string) *tls.Config {
	if o.TLSConfig != nil {
		return o.TLSConfig
	}
	cfg := &tls.Config{
		MinVersion:         tls.VersionTLS12,
		ServerName:         serverName,
		InsecureSkipVerify: o.InsecureSkipVerify, //nolint:gosec // opt-in
		ClientSessionCache: tls.NewLRUClientSessionCache(0),
	}
	if o.IncludeInsecureCiphers {
		for _, suite := range tls.InsecureCipherSuites() {
			cfg.CipherSuites = append(cfg.CipherSuites, suite.ID)
		}
		for _, suite := range tls.CipherSuites() {
			cfg.CipherSuites = append(cfg.CipherSuites, suite.ID)
		}
	}
	return cfg
}
