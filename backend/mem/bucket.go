package mem

import (
	"bytes"
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/c2fo/ftpmover"
	"github.com/c2fo/ftpmover/backend"
	"github.com/c2fo/ftpmover/options"
	"github.com/c2fo/ftpmover/utils"
)

// Scheme defines the storage type.
const Scheme = "mem"

const (
	errEmptyKey     = ftpmover.Error("object key may not be empty")
	errWriterClosed = ftpmover.Error("write to closed mem object")
)

// Bucket implements ftpmover.Bucket in memory. Objects become visible when their writer is closed. It is safe for
// concurrent use.
type Bucket struct {
	mu      sync.Mutex
	name    string
	objects map[string][]byte
	opened  []string
	closed  []string
	aborted []string

	openErrs  map[string]error
	writeErrs map[string]error
	closeErrs map[string]error
}

// NewBucket returns an empty Bucket. name may be given as "mybucket" or "mem://mybucket/".
func NewBucket(name string, opts ...options.NewOption[Bucket]) (*Bucket, error) {
	bucketName, err := utils.NormalizeBucketName(strings.TrimPrefix(name, Scheme+"://"))
	if err != nil {
		return nil, err
	}
	b := &Bucket{
		name:      bucketName,
		objects:   map[string][]byte{},
		openErrs:  map[string]error{},
		writeErrs: map[string]error{},
		closeErrs: map[string]error{},
	}
	options.ApplyOptions(b, opts...)
	return b, nil
}

// OpenWriteStream returns a writer for key. Any earlier object at key is replaced once the writer is closed.
func (b *Bucket) OpenWriteStream(_ context.Context, key string) (ftpmover.WriteSink, error) {
	if key == "" {
		return nil, errEmptyKey
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if err, ok := b.openErrs[key]; ok {
		return nil, err
	}
	b.opened = append(b.opened, key)
	return &writer{bucket: b, key: key, writeErr: b.writeErrs[key], closeErr: b.closeErrs[key]}, nil
}

// Object returns a copy of the committed contents of key.
func (b *Bucket) Object(key string) ([]byte, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	data, ok := b.objects[key]
	if !ok {
		return nil, false
	}
	return bytes.Clone(data), true
}

// Keys returns the committed object keys, sorted.
func (b *Bucket) Keys() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	keys := make([]string, 0, len(b.objects))
	for k := range b.objects {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Opened returns the keys passed to OpenWriteStream, in call order.
func (b *Bucket) Opened() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.opened...)
}

// Closed returns the keys whose writers were closed, in close order, whether or not the close failed.
func (b *Bucket) Closed() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.closed...)
}

// Aborted returns the keys whose writers were aborted, in abort order.
func (b *Bucket) Aborted() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.aborted...)
}

// Name returns the bucket name.
func (b *Bucket) Name() string {
	return b.name
}

// Scheme returns "mem".
func (b *Bucket) Scheme() string {
	return Scheme
}

// String returns the bucket URI, ie: mem://mybucket
func (b *Bucket) String() string {
	return Scheme + "://" + b.name
}

type writer struct {
	bucket    *Bucket
	key       string
	buf       bytes.Buffer
	closed    bool
	committed bool
	writeErr  error
	closeErr  error
}

func (w *writer) Write(p []byte) (int, error) {
	if w.closed {
		return 0, errWriterClosed
	}
	if w.writeErr != nil {
		return 0, w.writeErr
	}
	return w.buf.Write(p)
}

// Close commits the object unless a close error was injected for its key. Only the first call has any effect.
func (w *writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	w.bucket.mu.Lock()
	defer w.bucket.mu.Unlock()
	w.bucket.closed = append(w.bucket.closed, w.key)
	if w.closeErr != nil {
		return w.closeErr
	}
	w.bucket.objects[w.key] = w.buf.Bytes()
	w.committed = true
	return nil
}

// Abort drops what was written. It reports utils.ErrAbortCommitted when an earlier Close committed the object.
func (w *writer) Abort(error) error {
	if w.closed {
		if w.committed {
			return utils.ErrAbortCommitted
		}
		return nil
	}
	w.closed = true

	w.bucket.mu.Lock()
	defer w.bucket.mu.Unlock()
	w.bucket.aborted = append(w.bucket.aborted, w.key)
	return nil
}

func init() {
	backend.Register(Scheme, func(_ context.Context, name string) (ftpmover.Bucket, error) {
		return NewBucket(name)
	})
}
