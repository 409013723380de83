/*
Package mem in-memory destination for ftpmover.

It is used for dry runs from the ftpmv command and as a recording destination in tests:

	bucket, _ := mem.NewBucket("mem://landing",
		mem.WithCloseError("in/b.csv", errors.New("finalize failed")),
	)
	err := transfer.NewPipeline().Execute(ctx, cfg, provider, bucket)

	bucket.Opened() // keys in the order their streams were opened
	bucket.Keys()   // keys that were committed
*/
package mem
