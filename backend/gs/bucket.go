package gs

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"path"
	"sync"

	"cloud.google.com/go/storage"

	"github.com/c2fo/ftpmover"
	"github.com/c2fo/ftpmover/backend"
	"github.com/c2fo/ftpmover/options"
	"github.com/c2fo/ftpmover/utils"
)

// Scheme defines the storage type.
const Scheme = "gs"

const errEmptyKey = ftpmover.Error("object key may not be empty")

// Bucket implements ftpmover.Bucket for a GCS bucket.
type Bucket struct {
	client     *storage.Client
	ownsClient bool
	name       string
	options    Options
}

// NewBucket returns a Bucket for name, which may be given as "mybucket" or "gs://mybucket/". A storage client is
// created from Options unless one is passed with WithClient. Without WithOptions the settings come from NewOptions.
func NewBucket(ctx context.Context, name string, opts ...options.NewOption[Bucket]) (*Bucket, error) {
	bucketName, err := utils.NormalizeBucketName(name)
	if err != nil {
		return nil, err
	}

	b := &Bucket{name: bucketName, options: NewOptions()}
	options.ApplyOptions(b, opts...)

	if b.client == nil {
		clientOpts, err := clientOptions(ctx, b.options)
		if err != nil {
			return nil, fmt.Errorf("unable to create gcs credentials: %w", err)
		}
		client, err := storage.NewClient(ctx, clientOpts...)
		if err != nil {
			return nil, fmt.Errorf("unable to create gcs client: %w", err)
		}
		b.client = client
		b.ownsClient = true
	}
	return b, nil
}

// OpenWriteStream returns a writer for key. The object is created when the writer is closed; aborting the writer
// cancels the upload so no object is created.
func (b *Bucket) OpenWriteStream(ctx context.Context, key string) (ftpmover.WriteSink, error) {
	if key == "" {
		return nil, errEmptyKey
	}
	ctx, cancel := context.WithCancelCause(ctx)
	w := b.client.Bucket(b.name).Object(key).NewWriter(ctx)
	if b.options.ChunkSize > 0 {
		w.ChunkSize = b.options.ChunkSize
	}
	if ct := mime.TypeByExtension(path.Ext(key)); ct != "" {
		w.ContentType = ct
	}
	return &objectWriter{Writer: w, cancel: cancel}, nil
}

// objectWriter is a storage.Writer whose upload can be abandoned.
type objectWriter struct {
	*storage.Writer
	cancel context.CancelCauseFunc
	once   sync.Once
	err    error
}

// Close finalizes the object. Later calls return the same result.
func (w *objectWriter) Close() error {
	w.once.Do(func() {
		w.err = w.Writer.Close()
		w.cancel(nil)
	})
	return w.err
}

// Abort cancels the upload and waits for the writer to stop. Canceling the writer's context is how the storage
// client discards an object that has not been finalized.
func (w *objectWriter) Abort(cause error) error {
	w.once.Do(func() {
		w.cancel(cause)
		w.err = w.Writer.Close()
	})
	if w.err == nil {
		return utils.ErrAbortCommitted
	}
	return nil
}

// Name returns the bucket name.
func (b *Bucket) Name() string {
	return b.name
}

// Scheme returns "gs".
func (b *Bucket) Scheme() string {
	return Scheme
}

// String returns the bucket URI, ie: gs://mybucket
func (b *Bucket) String() string {
	return Scheme + "://" + b.name
}

// Close releases the storage client if NewBucket created it.
func (b *Bucket) Close() error {
	if !b.ownsClient {
		return nil
	}
	if err := b.client.Close(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func init() {
	backend.Register(Scheme, func(ctx context.Context, name string) (ftpmover.Bucket, error) {
		return NewBucket(ctx, name)
	})
}
