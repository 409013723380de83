package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/fatih/color"
	"golang.org/x/sync/errgroup"

	"github.com/c2fo/ftpmover"
	"github.com/c2fo/ftpmover/backend"
	"github.com/c2fo/ftpmover/backend/ftp"
	"github.com/c2fo/ftpmover/backend/ftp/types"
	"github.com/c2fo/ftpmover/backend/gs"
	"github.com/c2fo/ftpmover/backend/mem"
	"github.com/c2fo/ftpmover/backend/sftp"
	"github.com/c2fo/ftpmover/transfer"
)

// runner runs jobs. Each job gets its own session, bucket handle and credential lookup.
type runner struct {
	provider   ftpmover.CredentialProvider
	logger     *slog.Logger
	ftpOptions ftp.Options
	sftpOpts   sftp.Options
	bufferSize int
	parallel   int
	timeout    time.Duration
	dryRun     bool
	// gsOptions, when set, replaces the environment defaults for gs buckets
	gsOptions *gs.Options

	// dialerFor and openBucket are replaced in tests
	dialerFor  func(protocol string) (types.Dialer, error)
	openBucket func(ctx context.Context, bucketURI string) (ftpmover.Bucket, error)
}

type jobResult struct {
	job     Job
	result  transfer.Result
	err     error
	elapsed time.Duration
}

func newRunner(provider ftpmover.CredentialProvider, logger *slog.Logger) *runner {
	r := &runner{
		provider:   provider,
		logger:     logger,
		parallel: 1,
	}
	r.dialerFor = r.dialer
	r.openBucket = r.open
	return r
}

// open opens the bucket at bucketURI. A bucket without a scheme is a gs bucket.
func (r *runner) open(ctx context.Context, bucketURI string) (ftpmover.Bucket, error) {
	if scheme, _ := splitScheme(bucketURI); r.gsOptions != nil && (scheme == "" || scheme == gs.Scheme) {
		return gs.NewBucket(ctx, bucketURI, gs.WithOptions(*r.gsOptions))
	}
	return backend.Open(ctx, bucketURI)
}

// dialer returns the transport for protocol: ftp, ftps, ftpes or sftp. An empty protocol means the --protocol
// setting, and plain ftp when that is empty too.
func (r *runner) dialer(protocol string) (types.Dialer, error) {
	if protocol == "" {
		protocol = r.ftpOptions.Protocol
	}
	switch strings.ToUpper(protocol) {
	case "", ftp.ProtocolFTP, ftp.ProtocolFTPS, ftp.ProtocolFTPES:
		opts := r.ftpOptions
		opts.Protocol = strings.ToUpper(protocol)
		return ftp.NewDialer(ftp.WithOptions(opts)), nil
	case strings.ToUpper(sftp.Scheme):
		return sftp.NewDialer(sftp.WithOptions(r.sftpOpts)), nil
	default:
		return nil, &ftpmover.InvalidConfigError{Field: "protocol", Value: protocol,
			Err: ftpmover.Error("want ftp, ftps, ftpes or sftp")}
	}
}

// runAll runs jobs with at most r.parallel at once. A failed job does not stop the others. Results are in job order.
func (r *runner) runAll(ctx context.Context, jobs []Job) []jobResult {
	results := make([]jobResult, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	limit := r.parallel
	if limit < 1 {
		limit = 1
	}
	g.SetLimit(limit)

	for i, job := range jobs {
		g.Go(func() error {
			start := time.Now()
			res, err := r.run(ctx, job)
			results[i] = jobResult{job: job, result: res, err: err, elapsed: time.Since(start)}
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func (r *runner) run(ctx context.Context, job Job) (transfer.Result, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}
	logger := r.logger.With("job", job.Name)

	bucketURI, destPrefix := splitDestination(job.Destination)
	if job.DestinationPath != "" {
		destPrefix = job.DestinationPath
	}
	_, bucketName := splitScheme(bucketURI)

	cfg, err := transfer.NewConfig(job.Connection, job.Source, bucketName,
		transfer.WithDestinationPath(destPrefix),
		transfer.WithMoveObject(job.MoveObject()),
	)
	if err != nil {
		return transfer.Result{}, err
	}

	dialer, err := r.dialerFor(job.Protocol)
	if err != nil {
		return transfer.Result{}, err
	}

	var bucket ftpmover.Bucket
	if r.dryRun {
		bucket, err = mem.NewBucket(cfg.DestinationBucket())
	} else {
		bucket, err = r.openBucket(ctx, bucketURI)
	}
	if err != nil {
		return transfer.Result{}, err
	}
	if c, ok := bucket.(io.Closer); ok {
		defer func() {
			if err := c.Close(); err != nil {
				logger.DebugContext(ctx, "error closing bucket", "bucket", bucket.String(), "error", err)
			}
		}()
	}

	logger.InfoContext(ctx, "starting transfer", "connection", cfg.ConnectionID(), "source", job.Source,
		"bucket", bucket.String(), "prefix", cfg.DestinationPrefix(), "move", cfg.MoveObject())

	pipeline := transfer.NewPipeline(
		transfer.WithDialer(dialer),
		transfer.WithLogger(logger),
		transfer.WithBufferSize(r.bufferSize),
	)
	return pipeline.ExecuteWithResult(ctx, cfg, r.provider, bucket)
}

func splitScheme(uri string) (scheme, rest string) {
	if i := strings.Index(uri, "://"); i >= 0 {
		return uri[:i], uri[i+3:]
	}
	return "", uri
}

// printSummary writes one line per job and returns the number of failed jobs.
func printSummary(w io.Writer, results []jobResult) int {
	ok := color.New(color.FgGreen, color.Bold)
	fail := color.New(color.FgRed, color.Bold)
	faint := color.New(color.Faint)

	failed := 0
	for _, r := range results {
		if r.err != nil {
			failed++
			_, _ = fail.Fprint(w, "FAIL")
			_, _ = fmt.Fprintf(w, " %s: %d transferred before error: %v", r.job.Name, len(r.result.Transferred), r.err)
		} else {
			_, _ = ok.Fprint(w, "OK  ")
			_, _ = fmt.Fprintf(w, " %s: %d transferred, %d deleted", r.job.Name, len(r.result.Transferred),
				len(r.result.Deleted))
		}
		_, _ = faint.Fprintf(w, " (%s)\n", r.elapsed.Round(time.Millisecond))
	}
	return failed
}
