package mem

import "github.com/c2fo/ftpmover/options"

const (
	optionNameOpenError  = "openError"
	optionNameWriteError = "writeError"
	optionNameCloseError = "closeError"
	optionNameObject     = "object"
)

// WithOpenError makes OpenWriteStream fail with err for key.
func WithOpenError(key string, err error) options.NewOption[Bucket] {
	return &failOpt{name: optionNameOpenError, key: key, err: err, target: func(b *Bucket) map[string]error { return b.openErrs }}
}

// WithWriteError makes every Write to key's writer fail with err.
func WithWriteError(key string, err error) options.NewOption[Bucket] {
	return &failOpt{name: optionNameWriteError, key: key, err: err, target: func(b *Bucket) map[string]error { return b.writeErrs }}
}

// WithCloseError makes closing key's writer fail with err. The object is not committed.
func WithCloseError(key string, err error) options.NewOption[Bucket] {
	return &failOpt{name: optionNameCloseError, key: key, err: err, target: func(b *Bucket) map[string]error { return b.closeErrs }}
}

type failOpt struct {
	name   string
	key    string
	err    error
	target func(*Bucket) map[string]error
}

func (f *failOpt) Apply(b *Bucket) {
	f.target(b)[f.key] = f.err
}

func (f *failOpt) NewOptionName() string {
	return f.name
}

// WithObject returns objectOpt implementation of NewOption
//
// WithObject seeds the bucket with an existing object.
func WithObject(key string, data []byte) options.NewOption[Bucket] {
	return &objectOpt{key: key, data: data}
}

type objectOpt struct {
	key  string
	data []byte
}

func (o *objectOpt) Apply(b *Bucket) {
	b.objects[o.key] = o.data
}

func (o *objectOpt) NewOptionName() string {
	return optionNameObject
}
