package backend

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/c2fo/ftpmover"
)

// DefaultScheme is used by Open when the destination has no scheme.
const DefaultScheme = "gs"

// Opener returns a Bucket for name. name may still carry its scheme prefix, ie: "gs://mybucket/".
type Opener func(ctx context.Context, name string) (ftpmover.Bucket, error)

var mmu sync.RWMutex
var m map[string]Opener

// Register a new bucket opener in backend map
func Register(scheme string, o Opener) {
	mmu.Lock()
	m[scheme] = o
	mmu.Unlock()
}

// Unregister unregisters a bucket opener from backend map
func Unregister(scheme string) {
	mmu.Lock()
	delete(m, scheme)
	mmu.Unlock()
}

// UnregisterAll unregisters all bucket openers from backend map
func UnregisterAll() {
	// mainly for tests
	mmu.Lock()
	m = make(map[string]Opener)
	mmu.Unlock()
}

// Backend returns the bucket opener registered for scheme, or nil
func Backend(scheme string) Opener {
	mmu.RLock()
	defer mmu.RUnlock()
	return m[scheme]
}

// RegisteredBackends returns an array of registered schemes
func RegisteredBackends() []string {
	var f []string
	mmu.RLock()
	for k := range m {
		f = append(f, k)
	}
	mmu.RUnlock()
	sort.Strings(f)
	return f
}

// Open returns a Bucket for a destination such as "s3://mybucket" or "mybucket". A destination without a scheme is
// opened with DefaultScheme.
func Open(ctx context.Context, destination string) (ftpmover.Bucket, error) {
	scheme := DefaultScheme
	if i := strings.Index(destination, "://"); i >= 0 {
		scheme = destination[:i]
	}
	o := Backend(scheme)
	if o == nil {
		return nil, &ftpmover.InvalidConfigError{
			Field: "destination bucket",
			Value: destination,
			Err:   ftpmover.Error("no backend registered for scheme " + scheme),
		}
	}
	return o(ctx, destination)
}

func init() {
	m = make(map[string]Opener)
}
