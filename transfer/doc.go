/*
Package transfer moves files from an FTP directory into an object-storage bucket.

A run resolves the connection's credentials, opens one session, lists the files matching the configured pattern and
streams each of them, in listing order, into an object named prefix + "/" + file name. In move mode each remote file
is deleted right after its object is written. The first failure ends the run with one of the typed errors in package
ftpmover:

	cfg, err := transfer.NewConfig("partner_ftp", "outgoing/report_2024*", "gs://landing-bucket",
		transfer.WithDestinationPath("/partner/reports/"),
		transfer.WithMoveObject(true),
	)
	if err != nil {
		return err // *ftpmover.InvalidConfigError
	}

	bucket, err := backend.Open(ctx, "gs://landing-bucket")
	...
	err = transfer.NewPipeline(transfer.WithLogger(logger)).Execute(ctx, cfg, connections.NewEnvProvider(), bucket)
	switch {
	case errors.Is(err, ftpmover.ErrAuth):
		...
	case errors.Is(err, ftpmover.ErrTransfer):
		...
	}

Files transferred before a failure are not rolled back.
*/
package transfer
