/*
Package ftpmover copies (or moves) files from an FTP server into object storage.

# Overview

A transfer takes a source path whose last segment may end in a single wildcard, ie:

	/outgoing/reports/daily_2024*

lists the matching names on the FTP server and streams each of them, one at a time, into an object in a bucket.
Nothing is buffered beyond a fixed-size copy buffer, so file size is bounded only by the storage backend.

	cfg, err := transfer.NewConfig("my_ftp", "/outgoing/reports/daily_2024*", "gs://landing-bucket/",
		transfer.WithDestinationPath("/ftp/reports/"),
		transfer.WithMoveObject(true),
	)
	if err != nil {
		return err
	}

	bucket, err := gs.NewBucket(ctx, cfg.DestinationBucket())
	if err != nil {
		return err
	}

	err = transfer.NewPipeline().Execute(ctx, cfg, connections.NewEnvProvider(), bucket)

The objects above end up at gs://landing-bucket/ftp/reports/daily_2024...

# Failure

A run is fail-fast. The first stage that fails ends the run with one typed error (see errors.go): ConnectionError,
AuthError, NavigationError, ListError, TransferError or DeleteError, plus InvalidConfigError for bad input found
before any network activity. Each type matches its sentinel with errors.Is, ie:

	if errors.Is(err, ftpmover.ErrTransfer) {
		...
	}

Nothing is rolled back. Objects written and sources deleted by earlier iterations stay as they are.

# Backends

Storage backends live under backend/ (gs, s3, azure, mem) and register themselves by scheme with the backend package.
FTP transports live under backend/ftp (plain FTP, FTPS, FTPES) and backend/sftp.
*/
package ftpmover
