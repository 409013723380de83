package azure

import (
	"context"
	"fmt"
	"io"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
)

// The Client interface contains the Azure Blob Storage call used to write objects. This interface is here so we can
// write mocks over the actual functionality. *azblob.Client satisfies it.
type Client interface {
	UploadStream(ctx context.Context, containerName, blobName string, body io.Reader,
		o *azblob.UploadStreamOptions) (azblob.UploadStreamResponse, error)
}

// newClient initializes an *azblob.Client from opts.
func newClient(opts *Options) (*azblob.Client, error) {
	if opts.ConnectionString != "" {
		return azblob.NewClientFromConnectionString(opts.ConnectionString, nil)
	}

	credential, err := opts.Credential()
	if err != nil {
		return nil, err
	}

	switch cred := credential.(type) {
	case azcore.TokenCredential:
		return azblob.NewClient(opts.serviceURL(), cred, nil)
	case *azblob.SharedKeyCredential:
		return azblob.NewClientWithSharedKeyCredential(opts.serviceURL(), cred, nil)
	case nil:
		return azblob.NewClientWithNoCredential(opts.serviceURL(), nil)
	default:
		return nil, fmt.Errorf("unsupported azure credential type %T", credential)
	}
}
