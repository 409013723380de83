package testcontainers

import (
	"context"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/localstack"

	"github.com/c2fo/ftpmover/backend/s3"
)

const (
	localStackPort   = "4566/tcp"
	localStackRegion = "dummy"
	localStackKey    = "dummy"
	localStackSecret = "dummy"
)

func startLocalStack(t *testing.T) *destination {
	ctx := context.Background()
	is := require.New(t)

	ctr, err := localstack.Run(ctx, "localstack/localstack:latest", testcontainers.WithName("ftpmover-localstack"))
	testcontainers.CleanupContainer(t, ctr)
	is.NoError(err)

	ep, err := ctr.PortEndpoint(ctx, localStackPort, "http")
	is.NoError(err)

	cfg, err := config.LoadDefaultConfig(ctx)
	is.NoError(err)

	cli := awss3.NewFromConfig(cfg, func(opts *awss3.Options) {
		opts.Region = localStackRegion
		opts.UsePathStyle = true
		opts.BaseEndpoint = aws.String(ep)
		opts.Credentials = credentials.NewStaticCredentialsProvider(localStackKey, localStackSecret, "")
	})
	_, err = cli.CreateBucket(ctx, &awss3.CreateBucketInput{Bucket: aws.String("localstack")})
	is.NoError(err)

	bucket, err := s3.NewBucket(ctx, "s3://localstack", s3.WithClient(cli))
	is.NoError(err)

	return &destination{
		name:   "s3-localstack",
		bucket: bucket,
		read:   s3Reader(cli, "localstack"),
	}
}

func s3Reader(cli *awss3.Client, bucket string) func(context.Context, string) ([]byte, error) {
	return func(ctx context.Context, key string) ([]byte, error) {
		out, err := cli.GetObject(ctx, &awss3.GetObjectInput{Bucket: aws.String(bucket), Key: aws.String(key)})
		if err != nil {
			return nil, err
		}
		defer func() { _ = out.Body.Close() }()
		return io.ReadAll(out.Body)
	}
}
