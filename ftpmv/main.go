package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli"

	"github.com/c2fo/ftpmover"
	_ "github.com/c2fo/ftpmover/backend/all" // register every destination backend
	"github.com/c2fo/ftpmover/backend/ftp"
	"github.com/c2fo/ftpmover/backend/gs"
	"github.com/c2fo/ftpmover/connections"
)

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "ftpmv"
	app.Usage = "Copies or moves files matching a pattern from an FTP server into object storage"
	app.UsageText = "ftpmv [options] <source path> <destination>\n   ftpmv [options] --job jobs.yaml\n\n" +
		"   ftpmv --conn partner_ftp --move 'outgoing/report_2024*' gs://landing/partner/reports"
	app.Writer = stdout
	app.ErrWriter = stderr
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:   "conn, c",
			Usage:  "connection id resolved into FTP credentials",
			EnvVar: "FTPMOVER_CONNECTION",
		},
		cli.StringFlag{
			Name:  "dest-path",
			Usage: "object key prefix, overrides any path in the destination",
		},
		cli.BoolFlag{
			Name:  "move",
			Usage: "delete each remote file after it is stored",
		},
		cli.StringFlag{
			Name:  "job, j",
			Usage: "yaml job file to run instead of the positional arguments",
		},
		cli.IntFlag{
			Name:  "parallel, p",
			Usage: "number of jobs run at once",
			Value: 1,
		},
		cli.DurationFlag{
			Name:  "timeout",
			Usage: "per-job timeout, 0 for none",
		},
		cli.StringFlag{
			Name:   "protocol",
			Usage:  "ftp, ftps (implicit TLS), ftpes (explicit TLS) or sftp",
			EnvVar: "FTPMOVER_FTP_PROTOCOL",
		},
		cli.BoolFlag{
			Name:   "disable-epsv",
			Usage:  "use PASV instead of EPSV",
			EnvVar: "FTPMOVER_FTP_DISABLE_EPSV",
		},
		cli.BoolFlag{
			Name:  "insecure-skip-verify",
			Usage: "do not verify FTPS server certificates",
		},
		cli.DurationFlag{
			Name:  "dial-timeout",
			Usage: "timeout for opening the FTP or SFTP connection",
		},
		cli.IntFlag{
			Name:  "buffer-size",
			Usage: "streaming buffer size in bytes",
		},
		cli.StringFlag{
			Name:   "gcp-credentials-file",
			Usage:  "service account key file for gs buckets, application default credentials when empty",
			EnvVar: "FTPMOVER_GCS_CREDENTIALS_FILE",
		},
		cli.StringFlag{
			Name:   "impersonate",
			Usage:  "comma separated service accounts; gs writes run as the last one, the others are delegates",
			EnvVar: "FTPMOVER_GCS_IMPERSONATION_CHAIN",
		},
		cli.StringFlag{
			Name:   "secrets-prefix",
			Usage:  "look connections up in AWS Secrets Manager under this prefix before the environment",
			EnvVar: "FTPMOVER_SECRETS_PREFIX",
		},
		cli.StringFlag{
			Name:   "aws-region",
			Usage:  "aws region for Secrets Manager",
			EnvVar: "AWS_REGION",
		},
		cli.BoolFlag{
			Name:  "dry-run",
			Usage: "read every matching file but write to memory and never delete",
		},
		cli.StringFlag{
			Name:   "log-format",
			Usage:  "text or json",
			Value:  "text",
			EnvVar: "FTPMOVER_LOG_FORMAT",
		},
		cli.StringFlag{
			Name:   "log-level",
			Usage:  "debug, info, warn or error",
			Value:  "info",
			EnvVar: "FTPMOVER_LOG_LEVEL",
		},
	}
	app.Action = func(c *cli.Context) error {
		jobs, err := jobsFromContext(c)
		if err != nil {
			return err
		}

		logger, err := newLogger(stderr, c.String("log-format"), c.String("log-level"))
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		provider, err := providerFromContext(ctx, c)
		if err != nil {
			return err
		}

		r := newRunner(provider, logger)
		r.parallel = c.Int("parallel")
		r.timeout = c.Duration("timeout")
		r.bufferSize = c.Int("buffer-size")
		r.dryRun = c.Bool("dry-run")
		r.ftpOptions = ftp.Options{
			Protocol:           c.String("protocol"),
			DisableEPSV:        c.Bool("disable-epsv"),
			InsecureSkipVerify: c.Bool("insecure-skip-verify"),
			DialTimeout:        c.Duration("dial-timeout"),
		}
		r.sftpOpts.DialTimeout = c.Duration("dial-timeout")
		r.gsOptions = gsOptionsFromContext(c)
		if r.dryRun {
			for i := range jobs {
				jobs[i].Move = nil
			}
		}

		results := r.runAll(ctx, jobs)
		if failed := printSummary(stdout, results); failed > 0 {
			return fmt.Errorf("%d of %d jobs failed", failed, len(results))
		}
		return nil
	}
	return app
}

// jobsFromContext returns the jobs of --job, or the one job described by the arguments and flags.
func jobsFromContext(c *cli.Context) ([]Job, error) {
	if path := c.String("job"); path != "" {
		if c.NArg() > 0 {
			return nil, errors.New("ftpmv takes no arguments with --job")
		}
		return LoadJobs(path)
	}

	if c.NArg() != 2 || c.Args().Get(0) == "" || c.Args().Get(1) == "" {
		return nil, errors.New("ftpmv requires 2 non-empty arguments: <source path> <destination>")
	}
	job := Job{
		Name:            "ftpmv",
		Connection:      c.String("conn"),
		Source:          c.Args().Get(0),
		Destination:     c.Args().Get(1),
		DestinationPath: c.String("dest-path"),
		Protocol:        c.String("protocol"),
	}
	if c.Bool("move") {
		move := true
		job.Move = &move
	}
	if err := job.validate(); err != nil {
		return nil, err
	}
	return []Job{job}, nil
}

// gsOptionsFromContext returns the gs settings of the flags, or nil when none is set.
func gsOptionsFromContext(c *cli.Context) *gs.Options {
	file, chain := c.String("gcp-credentials-file"), c.String("impersonate")
	if file == "" && chain == "" {
		return nil
	}
	opts := gs.Options{CredentialFile: file}
	opts.SetImpersonationChain(gs.SplitImpersonationChain(chain)...)
	return &opts
}

func providerFromContext(ctx context.Context, c *cli.Context) (ftpmover.CredentialProvider, error) {
	env := connections.NewEnvProvider()
	prefix := c.String("secrets-prefix")
	if prefix == "" {
		return env, nil
	}
	sm, err := connections.NewSecretsManagerProvider(ctx,
		connections.WithSecretPrefix(prefix),
		connections.WithRegion(c.String("aws-region")),
	)
	if err != nil {
		return nil, err
	}
	return connections.ChainProvider{sm, env}, nil
}
