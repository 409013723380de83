package transfer

import (
	"github.com/c2fo/ftpmover"
	"github.com/c2fo/ftpmover/options"
	"github.com/c2fo/ftpmover/utils"
)

const (
	errEmptyConnectionID = ftpmover.Error("connection id may not be empty")
	errEmptyPattern      = ftpmover.Error("source path has no file name pattern")
	errZeroConfig        = ftpmover.Error("config was not built with NewConfig")
)

// Config describes one transfer. It is built and normalized once by NewConfig and cannot be changed afterwards.
type Config struct {
	connectionID      string
	sourceRemoteDir   string
	sourceFilePattern string
	destinationBucket string
	destinationPrefix string
	moveObject        bool

	rawDestinationPath string
	built              bool
}

// NewConfig returns a normalized Config.
//
// sourcePath is a remote path whose last segment is a file name or a name with one trailing wildcard, ie:
// "outgoing/report_2024*". The rest is the remote directory; a sourcePath without a slash uses the login directory.
// destinationBucket may carry a "gs://" prefix and surrounding slashes.
//
// It returns a *ftpmover.InvalidConfigError, before any I/O, when connectionID is empty, sourcePath has no file name
// or the bucket name is empty after normalization.
func NewConfig(connectionID, sourcePath, destinationBucket string, opts ...options.NewOption[Config]) (Config, error) {
	if connectionID == "" {
		return Config{}, &ftpmover.InvalidConfigError{Field: "connection id", Err: errEmptyConnectionID}
	}

	remoteDir, pattern := utils.SplitSourcePath(sourcePath)
	if pattern == "" {
		return Config{}, &ftpmover.InvalidConfigError{Field: "source path", Value: sourcePath, Err: errEmptyPattern}
	}

	bucket, err := utils.NormalizeBucketName(destinationBucket)
	if err != nil {
		return Config{}, err
	}

	c := Config{
		connectionID:      connectionID,
		sourceRemoteDir:   remoteDir,
		sourceFilePattern: pattern,
		destinationBucket: bucket,
	}
	options.ApplyOptions(&c, opts...)
	c.destinationPrefix = utils.NormalizeDestinationPrefix(c.rawDestinationPath)
	c.built = true
	return c, nil
}

// ConnectionID returns the identifier resolved into FTP credentials.
func (c Config) ConnectionID() string { return c.connectionID }

// SourceRemoteDir returns the remote directory to enter. Empty means the login directory.
func (c Config) SourceRemoteDir() string { return c.sourceRemoteDir }

// SourceFilePattern returns the name pattern passed to the server listing.
func (c Config) SourceFilePattern() string { return c.sourceFilePattern }

// DestinationBucket returns the bucket name with no scheme or slashes.
func (c Config) DestinationBucket() string { return c.destinationBucket }

// DestinationPrefix returns the object key prefix with no leading or trailing slash. Empty means the bucket root.
func (c Config) DestinationPrefix() string { return c.destinationPrefix }

// MoveObject reports whether each remote file is deleted after it is transferred.
func (c Config) MoveObject() bool { return c.moveObject }

// DestinationKey returns the object key for a listed remote file name.
func (c Config) DestinationKey(name string) string {
	return utils.DestinationKey(c.destinationPrefix, name)
}

// WithDestinationPath sets the object key prefix. Leading and trailing slashes are dropped.
func WithDestinationPath(path string) options.NewOption[Config] {
	return options.OptionFunc[Config]{
		Name: "destinationPath",
		Fn:   func(c *Config) { c.rawDestinationPath = path },
	}
}

// WithMoveObject deletes each remote file once it has been written to the bucket.
func WithMoveObject(move bool) options.NewOption[Config] {
	return options.OptionFunc[Config]{
		Name: "moveObject",
		Fn:   func(c *Config) { c.moveObject = move },
	}
}
