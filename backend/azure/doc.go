/*
Package azure Microsoft Azure Blob Storage destination for ftpmover.

# Usage

	bucket, err := azure.NewBucket("az://landing")
	if err != nil {
		return err
	}
	err = transfer.NewPipeline().Execute(ctx, cfg, provider, bucket)

To pass in client options:

	bucket, err := azure.NewBucket("landing",
		azure.WithOptions(
			azure.Options{
				AccountName: "...",
				AccountKey:  "...",
				BlockSize:   4 << 20,
			},
		),
	)

To pass a specific client, for instance a mock client:

	bucket, err := azure.NewBucket("landing", azure.WithClient(mockClient))

# Authentication

Without WithOptions, settings come from the FTPMOVER_AZURE_* env vars (see NewOptions). Credentials are picked, in
order, from:

 1. ConnectionString
 2. TenantID, ClientID and ClientSecret, as a service principal
 3. AccountName and AccountKey, as a shared key
 4. Anonymous access

Blobs are written with UploadStream as block blobs. Nothing is visible until the block list is committed when the
writer returned by OpenWriteStream is closed.
*/
package azure
