/*
Package gs Google Cloud Storage destination for ftpmover.

# Usage

	bucket, err := gs.NewBucket(ctx, "gs://landing-bucket/")
	if err != nil {
		return err
	}
	defer bucket.Close()

	err = transfer.NewPipeline().Execute(ctx, cfg, provider, bucket)

To pass in client options:

	bucket, err := gs.NewBucket(ctx, "landing-bucket",
		gs.WithOptions(
			gs.Options{
				CredentialFile: "~/.gcloud/account.json",
				Scopes:         []string{storage.ScopeReadWrite},
				ChunkSize:      8 << 20,
			},
		),
	)

Or a specific client, for instance a no-auth client:

	client, _ := storage.NewClient(ctx, option.WithoutAuthentication())
	bucket, err := gs.NewBucket(ctx, "landing-bucket", gs.WithClient(client))

# Authentication

Authentication, by default, occurs automatically when the bucket is created. It looks for credentials in the
following places, preferring the first location found:

 1. A JSON file whose path is specified by the GOOGLE_APPLICATION_CREDENTIALS environment variable
 2. A JSON file in a location known to the gcloud command-line tool.
    On Windows, this is %APPDATA%/gcloud/application_default_credentials.json.
    On other systems, $HOME/.config/gcloud/application_default_credentials.json.
 3. On Google Compute Engine, it fetches credentials from the metadata server.

Objects are written with resumable uploads of ChunkSize chunks. Nothing is visible in the bucket until the writer
returned by OpenWriteStream is closed. Abort cancels the upload instead, so a transfer that fails mid-stream leaves
no partial object behind.
*/
package gs
