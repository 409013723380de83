package utils

import (
	"io"
	"strings"

	"github.com/c2fo/ftpmover"
)

const (
	// GCSScheme is the scheme marker that may prefix a destination bucket name
	GCSScheme = "gs://"
	// ErrEmptyBucket is returned when a bucket name normalizes to an empty string
	ErrEmptyBucket = ftpmover.Error("bucket name is empty after normalization")
	// CopyMinBufferSize min buffer size used in CopyBuffered in bytes
	CopyMinBufferSize = 262144
)

// RemoveTrailingSlash removes trailing slash, if any
func RemoveTrailingSlash(path string) string {
	return strings.TrimRight(path, "/")
}

// RemoveLeadingSlash removes leading slash, if any
func RemoveLeadingSlash(path string) string {
	return strings.TrimLeft(path, "/")
}

// NormalizeDestinationPrefix returns the object key prefix for raw, with no leading or trailing slash. An empty raw
// means the bucket root.
//
//	"/ftp/in/"  : "ftp/in"
//	"ftp/in//"  : "ftp/in"
//	"//ftp/in"  : "ftp/in"
//	"///"       : ""
func NormalizeDestinationPrefix(raw string) string {
	return RemoveLeadingSlash(RemoveTrailingSlash(raw))
}

// NormalizeBucketName strips a leading "gs://" and any leading or trailing slashes from raw. It returns an
// InvalidConfigError if nothing is left.
func NormalizeBucketName(raw string) (string, error) {
	bucket := strings.TrimPrefix(raw, GCSScheme)
	bucket = strings.Trim(bucket, "/")
	if bucket == "" {
		return "", &ftpmover.InvalidConfigError{Field: "destination bucket", Value: raw, Err: ErrEmptyBucket}
	}
	return bucket, nil
}

// SplitSourcePath splits a source path into the remote directory and the file name pattern (its last segment).
// remoteDir is empty when source has no slash, meaning the session's current working directory.
//
// The pattern is passed to the server's name listing as is. It may hold one wildcard and only as its last character,
// ie: "report_2024*" but not "report*.csv". This is not checked here.
func SplitSourcePath(source string) (remoteDir, filePattern string) {
	segments := strings.Split(source, "/")
	return strings.Join(segments[:len(segments)-1], "/"), segments[len(segments)-1]
}

// DestinationKey returns the object key for a listed remote file name under prefix.
func DestinationKey(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "/" + name
}

// CopyBuffered is a wrapper around io.CopyBuffer which ensures that even empty source files (reader) will get written
// as an empty object. It guarantees a Write() call on the writer.
// bufferSize is in bytes and if is less than or equal to 0 will result in a buffer of size CopyMinBufferSize bytes.
// It returns the number of bytes copied.
func CopyBuffered(writer io.Writer, reader io.Reader, bufferSize int) (int64, error) {
	if bufferSize <= 0 {
		bufferSize = CopyMinBufferSize
	}

	// hide any ReaderFrom/WriterTo so the bounded buffer is always the one used
	size, err := io.CopyBuffer(writerOnly{writer}, readerOnly{reader}, make([]byte, bufferSize))
	if err != nil {
		return size, err
	}
	if size == 0 {
		if _, err := writer.Write([]byte{}); err != nil {
			return 0, err
		}
	}
	return size, nil
}

type writerOnly struct {
	io.Writer
}

type readerOnly struct {
	io.Reader
}
