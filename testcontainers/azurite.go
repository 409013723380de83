package testcontainers

import (
	"context"
	"io"
	"net/url"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/azure/azurite"

	"github.com/c2fo/ftpmover/backend/azure"
)

func startAzurite(t *testing.T) *destination {
	ctx := context.Background()
	is := require.New(t)

	ctr, err := azurite.Run(ctx, "mcr.microsoft.com/azure-storage/azurite:latest",
		testcontainers.WithName("ftpmover-azurite"),
		azurite.WithEnabledServices(azurite.BlobService),
	)
	testcontainers.CleanupContainer(t, ctr)
	is.NoError(err)

	ep, err := ctr.BlobServiceURL(ctx)
	is.NoError(err)

	cred, err := azblob.NewSharedKeyCredential(azurite.AccountName, azurite.AccountKey)
	is.NoError(err)

	u, err := url.JoinPath(ep, azurite.AccountName)
	is.NoError(err)

	cli, err := azblob.NewClientWithSharedKeyCredential(u, cred, nil)
	is.NoError(err)

	_, err = cli.CreateContainer(ctx, "azurite", nil)
	is.NoError(err)

	bucket, err := azure.NewBucket("az://azurite", azure.WithClient(cli))
	is.NoError(err)

	return &destination{
		name:   "az",
		bucket: bucket,
		read: func(ctx context.Context, key string) ([]byte, error) {
			res, err := cli.DownloadStream(ctx, "azurite", key, nil)
			if err != nil {
				return nil, err
			}
			defer func() { _ = res.Body.Close() }()
			return io.ReadAll(res.Body)
		},
	}
}
