package azure

import (
	"context"
	"io"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"

	"github.com/c2fo/ftpmover"
	"github.com/c2fo/ftpmover/backend"
	"github.com/c2fo/ftpmover/options"
	"github.com/c2fo/ftpmover/utils"
)

// Scheme defines the storage type.
const Scheme = "az"

const errEmptyKey = ftpmover.Error("blob name may not be empty")

// Bucket implements ftpmover.Bucket for an Azure Blob Storage container.
type Bucket struct {
	client    Client
	container string
	options   *Options
}

// NewBucket returns a Bucket for the container name, which may be given as "mycontainer" or "az://mycontainer/".
// Without WithOptions the settings come from NewOptions; without WithClient a client is built from them.
func NewBucket(name string, opts ...options.NewOption[Bucket]) (*Bucket, error) {
	container, err := utils.NormalizeBucketName(strings.TrimPrefix(name, Scheme+"://"))
	if err != nil {
		return nil, err
	}

	b := &Bucket{container: container}
	options.ApplyOptions(b, opts...)
	if b.options == nil {
		b.options = NewOptions()
	}

	if b.client == nil {
		client, err := newClient(b.options)
		if err != nil {
			return nil, err
		}
		b.client = client
	}
	return b, nil
}

// OpenWriteStream starts a block blob upload of key and returns a writer feeding it. Close commits the block list and
// returns the upload's error.
func (b *Bucket) OpenWriteStream(ctx context.Context, key string) (ftpmover.WriteSink, error) {
	if key == "" {
		return nil, errEmptyKey
	}

	uploadOpts := &azblob.UploadStreamOptions{
		BlockSize:   b.options.BlockSize,
		Concurrency: b.options.Concurrency,
	}
	return utils.NewUploadPipe(func(r io.Reader) error {
		_, err := b.client.UploadStream(ctx, b.container, key, r, uploadOpts)
		return err
	}), nil
}

// Name returns the container name.
func (b *Bucket) Name() string {
	return b.container
}

// Scheme returns "az".
func (b *Bucket) Scheme() string {
	return Scheme
}

// String returns the container URI, ie: az://mycontainer
func (b *Bucket) String() string {
	return Scheme + "://" + b.container
}

func init() {
	backend.Register(Scheme, func(_ context.Context, name string) (ftpmover.Bucket, error) {
		return NewBucket(name)
	})
}
