package transfer

import (
	"context"
	"errors"
	"log/slog"

	"github.com/c2fo/ftpmover"
	"github.com/c2fo/ftpmover/backend/ftp"
	"github.com/c2fo/ftpmover/backend/ftp/types"
	"github.com/c2fo/ftpmover/options"
	"github.com/c2fo/ftpmover/utils"
)

// Pipeline runs transfers. A Pipeline holds no per-run state and may run several transfers concurrently; each run
// opens its own FTP session.
type Pipeline struct {
	dialer      types.Dialer
	logger      *slog.Logger
	bufferSize  int
	sessionOpts []options.NewOption[ftp.Connection]
}

// Result lists what a run did, in order.
type Result struct {
	// Transferred holds the object keys written
	Transferred []string
	// Deleted holds the remote names deleted in move mode
	Deleted []string
}

// NewPipeline returns a Pipeline that dials plain FTP and logs nothing unless configured otherwise.
func NewPipeline(opts ...options.NewOption[Pipeline]) *Pipeline {
	p := &Pipeline{
		logger: slog.New(slog.DiscardHandler),
	}
	options.ApplyOptions(p, opts...)
	if p.dialer == nil {
		p.dialer = ftp.NewDialer()
	}
	return p
}

// Execute transfers every remote file matching cfg's pattern into bucket, in the order the server lists them. See
// ExecuteWithResult.
func (p *Pipeline) Execute(ctx context.Context, cfg Config, provider ftpmover.CredentialProvider, bucket ftpmover.Bucket) error {
	_, err := p.ExecuteWithResult(ctx, cfg, provider, bucket)
	return err
}

// ExecuteWithResult is like Execute and also reports the keys written and the files deleted.
//
// Each file is streamed into its own write stream, which is finalized before the next file starts. A file that fails
// mid-stream has its write stream aborted, so no partial object is published. In move mode a file is deleted only
// after its object was finalized. The first failure closes the session and ends the run; files handled before it stay
// transferred (and deleted). No match is not an error and opens no write stream.
func (p *Pipeline) ExecuteWithResult(ctx context.Context, cfg Config, provider ftpmover.CredentialProvider,
	bucket ftpmover.Bucket) (Result, error) {
	var res Result
	if !cfg.built {
		return res, &ftpmover.InvalidConfigError{Field: "config", Err: errZeroConfig}
	}

	creds, err := provider.Credentials(ctx, cfg.ConnectionID())
	if err != nil {
		return res, &ftpmover.InvalidConfigError{Field: "connection id", Value: cfg.ConnectionID(), Err: err}
	}

	sess, err := p.open(ctx, cfg, creds)
	if err != nil {
		return res, err
	}
	defer sess.Close()

	names, err := sess.List(ctx, cfg.SourceFilePattern())
	if err != nil {
		return res, err
	}
	if len(names) == 0 {
		p.logger.InfoContext(ctx, "no files matched", "folder", cfg.SourceRemoteDir(), "pattern", cfg.SourceFilePattern())
		return res, nil
	}
	p.logger.InfoContext(ctx, "files matched", "folder", cfg.SourceRemoteDir(), "pattern", cfg.SourceFilePattern(),
		"count", len(names))

	for _, name := range names {
		key := cfg.DestinationKey(name)
		if err := ctx.Err(); err != nil {
			return res, &ftpmover.TransferError{Name: name, Key: key, Err: err}
		}

		p.logger.InfoContext(ctx, "file will be saved to", "bucket", bucket.Name(), "key", key)
		if err := p.transfer(ctx, sess, bucket, name, key); err != nil {
			return res, err
		}
		res.Transferred = append(res.Transferred, key)

		if cfg.MoveObject() {
			p.logger.InfoContext(ctx, "deleting", "name", name)
			if err := sess.Delete(ctx, name); err != nil {
				return res, err
			}
			res.Deleted = append(res.Deleted, name)
		}
	}
	return res, nil
}

// open walks a new session up to its working directory. Each stage closes the session itself when it fails.
func (p *Pipeline) open(ctx context.Context, cfg Config, creds ftpmover.Credentials) (*ftp.Session, error) {
	opts := append([]options.NewOption[ftp.Connection]{
		ftp.WithLogger(p.logger),
		ftp.WithBufferSize(p.bufferSize),
	}, p.sessionOpts...)

	conn, err := ftp.Connect(ctx, p.dialer, creds.Host, opts...)
	if err != nil {
		return nil, err
	}
	authed, err := conn.Authenticate(ctx, creds.Username, creds.Password)
	if err != nil {
		return nil, err
	}
	return authed.ChangeDirectory(ctx, cfg.SourceRemoteDir())
}

// transfer streams name into a new object at key. The write stream is released on every path: it is finalized after
// a good retrieve and aborted after a failed one. A failed finalize is a transfer failure.
func (p *Pipeline) transfer(ctx context.Context, sess *ftp.Session, bucket ftpmover.Bucket, name, key string) error {
	sink, err := bucket.OpenWriteStream(ctx, key)
	if err != nil {
		sess.Close()
		return &ftpmover.TransferError{Name: name, Key: key, Err: utils.WrapOpenError(err)}
	}

	p.logger.InfoContext(ctx, "downloading", "name", name)
	if err := sess.Retrieve(ctx, name, sink); err != nil {
		var te *ftpmover.TransferError
		if errors.As(err, &te) {
			te.Key = key
		}
		if abortErr := sink.Abort(err); abortErr != nil {
			p.logger.WarnContext(ctx, "partial object may remain", "bucket", bucket.Name(), "key", key,
				"error", abortErr)
		}
		return err
	}

	if err := sink.Close(); err != nil {
		sess.Close()
		return &ftpmover.TransferError{Name: name, Key: key, Err: utils.WrapCloseError(err)}
	}
	return nil
}
