package s3

import (
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
)

// Client is the subset of the S3 API used to upload objects. *s3.Client satisfies it.
type Client interface {
	manager.UploadAPIClient
}
