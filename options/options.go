// Package options provides the generic functional option used by ftpmover constructors.
package options

// NewOption is implemented by every option accepted by a constructor for type T, ie:
//
//	bucket, err := gs.NewBucket(ctx, "landing", gs.WithClient(client))
//	pipeline := transfer.NewPipeline(transfer.WithLogger(logger))
type NewOption[T any] interface {
	Apply(*T)
	NewOptionName() string
}

// ApplyOptions applies each non-nil option to t, in order.
func ApplyOptions[T any](t *T, opts ...NewOption[T]) {
	for _, o := range opts {
		if o != nil {
			o.Apply(t)
		}
	}
}

// OptionFunc adapts a plain function to NewOption. name is reported by NewOptionName.
type OptionFunc[T any] struct {
	Name string
	Fn   func(*T)
}

// Apply calls Fn.
func (o OptionFunc[T]) Apply(t *T) { o.Fn(t) }

// NewOptionName returns Name.
func (o OptionFunc[T]) NewOptionName() string { return o.Name }
