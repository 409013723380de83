/*
Package backend provides a means of allowing destination buckets to self-register on load via an init() call to
backend.Register("some scheme", opener)

In this way, a caller can simply load the backends it needs (and ONLY those) and open destinations by URI:

	package main

	// import backend and each backend you intend to use
	import(
	    "github.com/c2fo/ftpmover/backend"
	    _ "github.com/c2fo/ftpmover/backend/gs"
	    _ "github.com/c2fo/ftpmover/backend/s3"
	)

	func main() {
	    bucket, err := backend.Open(ctx, "s3://landing-bucket")
	    if err != nil {
	        panic(err)
	    }
	    ...
	}

Import github.com/c2fo/ftpmover/backend/all to register every bundled backend.

Development

To add a destination, create a package with a type that implements ftpmover.Bucket and register an Opener for its
scheme:

	func init() {
	    backend.Register("exfs", func(ctx context.Context, name string) (ftpmover.Bucket, error) {
	        return NewBucket(ctx, name)
	    })
	}
*/
package backend
