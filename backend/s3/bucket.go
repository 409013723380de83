package s3

import (
	"context"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/c2fo/ftpmover"
	"github.com/c2fo/ftpmover/backend"
	"github.com/c2fo/ftpmover/options"
	"github.com/c2fo/ftpmover/utils"
)

// Scheme defines the storage type.
const Scheme = "s3"

const errEmptyKey = ftpmover.Error("object key may not be empty")

// Bucket implements ftpmover.Bucket for an S3 bucket. Objects are streamed with manager.Uploader, so large files go
// up as multipart uploads without being buffered whole.
type Bucket struct {
	client  Client
	name    string
	options Options
}

// NewBucket returns a Bucket for name, which may be given as "mybucket" or "s3://mybucket/". A client is created from
// Options and the default AWS config chain unless one is passed with WithClient.
func NewBucket(ctx context.Context, name string, opts ...options.NewOption[Bucket]) (*Bucket, error) {
	bucketName, err := utils.NormalizeBucketName(strings.TrimPrefix(name, Scheme+"://"))
	if err != nil {
		return nil, err
	}

	b := &Bucket{name: bucketName}
	options.ApplyOptions(b, opts...)

	if b.client == nil {
		client, err := getClient(ctx, b.options)
		if err != nil {
			return nil, err
		}
		b.client = client
	}
	return b, nil
}

// OpenWriteStream starts an upload of key and returns a writer feeding it. Close completes the upload and returns its
// error.
func (b *Bucket) OpenWriteStream(ctx context.Context, key string) (ftpmover.WriteSink, error) {
	if key == "" {
		return nil, errEmptyKey
	}

	uploader := manager.NewUploader(b.client, func(u *manager.Uploader) {
		if b.options.UploadPartitionSize > 0 {
			u.PartSize = b.options.UploadPartitionSize
		}
		if b.options.UploadConcurrency > 0 {
			u.Concurrency = b.options.UploadConcurrency
		}
	})

	input := b.uploadInput(key)
	return utils.NewUploadPipe(func(r io.Reader) error {
		input.Body = r
		_, err := uploader.Upload(ctx, input)
		return err
	}), nil
}

func (b *Bucket) uploadInput(key string) *s3.PutObjectInput {
	input := &s3.PutObjectInput{
		Bucket: aws.String(b.name),
		Key:    aws.String(key),
	}
	if b.options.ACL != "" {
		input.ACL = b.options.ACL
	}
	if !b.options.DisableServerSideEncryption {
		input.ServerSideEncryption = types.ServerSideEncryptionAes256
	}
	return input
}

// Name returns the bucket name.
func (b *Bucket) Name() string {
	return b.name
}

// Scheme returns "s3".
func (b *Bucket) Scheme() string {
	return Scheme
}

// String returns the bucket URI, ie: s3://mybucket
func (b *Bucket) String() string {
	return Scheme + "://" + b.name
}

func init() {
	backend.Register(Scheme, func(ctx context.Context, name string) (ftpmover.Bucket, error) {
		return NewBucket(ctx, name)
	})
}
