package testcontainers

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/minio"

	"github.com/c2fo/ftpmover/backend/s3"
)

const minioRegion = "dummy"

func startMinio(t *testing.T) *destination {
	ctx := context.Background()
	is := require.New(t)

	ctr, err := minio.Run(ctx, "minio/minio:latest", testcontainers.WithName("ftpmover-minio"))
	testcontainers.CleanupContainer(t, ctr)
	is.NoError(err)

	ep, err := ctr.ConnectionString(ctx)
	is.NoError(err)

	cfg, err := config.LoadDefaultConfig(ctx)
	is.NoError(err)

	cli := awss3.NewFromConfig(cfg, func(opts *awss3.Options) {
		opts.Region = minioRegion
		opts.UsePathStyle = true
		opts.BaseEndpoint = aws.String("http://" + ep)
		opts.Credentials = credentials.NewStaticCredentialsProvider(ctr.Username, ctr.Password, "")
	})
	_, err = cli.CreateBucket(ctx, &awss3.CreateBucketInput{Bucket: aws.String("miniobucket")})
	is.NoError(err)

	bucket, err := s3.NewBucket(ctx, "miniobucket", s3.WithClient(cli),
		s3.WithOptions(s3.Options{DisableServerSideEncryption: true}))
	is.NoError(err)

	return &destination{
		name:   "s3-minio",
		bucket: bucket,
		read:   s3Reader(cli, "miniobucket"),
	}
}
