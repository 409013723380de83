package gs

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/fsouza/fake-gcs-server/fakestorage"
	"github.com/stretchr/testify/suite"

	"github.com/c2fo/ftpmover"
	"github.com/c2fo/ftpmover/utils"
)

type bucketTestSuite struct {
	suite.Suite
	server *fakestorage.Server
}

func TestBucket(t *testing.T) {
	suite.Run(t, new(bucketTestSuite))
}

func (s *bucketTestSuite) SetupTest() {
	s.server = fakestorage.NewServer([]fakestorage.Object{})
	s.server.CreateBucketWithOpts(fakestorage.CreateBucketOpts{Name: "landing"})
}

func (s *bucketTestSuite) TearDownTest() {
	s.server.Stop()
}

func (s *bucketTestSuite) TestNewBucket() {
	tests := []struct {
		description string
		name        string
		expected    string
	}{
		{description: "plain name", name: "landing", expected: "landing"},
		{description: "gs scheme and trailing slash", name: "gs://landing/", expected: "landing"},
		{description: "surrounding slashes", name: "/landing//", expected: "landing"},
	}
	for _, tc := range tests {
		s.Run(tc.description, func() {
			b, err := NewBucket(context.Background(), tc.name, WithClient(s.server.Client()))
			s.Require().NoError(err)
			s.Equal(tc.expected, b.Name())
			s.Equal("gs", b.Scheme())
			s.Equal("gs://"+tc.expected, b.String())
			s.NoError(b.Close(), "a passed-in client is left open")
		})
	}

	_, err := NewBucket(context.Background(), "gs:///", WithClient(s.server.Client()))
	s.ErrorIs(err, ftpmover.ErrInvalidConfig)
}

func (s *bucketTestSuite) TestOpenWriteStream() {
	ctx := context.Background()
	b, err := NewBucket(ctx, "gs://landing", WithClient(s.server.Client()), WithOptions(Options{ChunkSize: 256 * 1024}))
	s.Require().NoError(err)

	contents := "id,amount\n1,100\n"
	w, err := b.OpenWriteStream(ctx, "ftp/in/a.csv")
	s.Require().NoError(err)
	_, err = io.Copy(w, strings.NewReader(contents))
	s.Require().NoError(err)
	s.Require().NoError(w.Close())

	obj, err := s.server.GetObject("landing", "ftp/in/a.csv")
	s.Require().NoError(err)
	s.Equal(contents, string(obj.Content))
}

func (s *bucketTestSuite) TestOpenWriteStream_EmptyObject() {
	ctx := context.Background()
	b, err := NewBucket(ctx, "landing", WithClient(s.server.Client()))
	s.Require().NoError(err)

	w, err := b.OpenWriteStream(ctx, "empty.json")
	s.Require().NoError(err)
	s.Require().NoError(w.Close())

	obj, err := s.server.GetObject("landing", "empty.json")
	s.Require().NoError(err)
	s.Empty(obj.Content)
	s.Equal("application/json", obj.ContentType)
}

func (s *bucketTestSuite) TestOpenWriteStream_EmptyKey() {
	b, err := NewBucket(context.Background(), "landing", WithClient(s.server.Client()))
	s.Require().NoError(err)

	w, err := b.OpenWriteStream(context.Background(), "")
	s.Nil(w)
	s.ErrorIs(err, errEmptyKey)
}

func (s *bucketTestSuite) TestNothingVisibleBeforeClose() {
	ctx := context.Background()
	b, err := NewBucket(ctx, "landing", WithClient(s.server.Client()))
	s.Require().NoError(err)

	w, err := b.OpenWriteStream(ctx, "partial.csv")
	s.Require().NoError(err)
	_, err = w.Write([]byte("half"))
	s.Require().NoError(err)

	_, err = s.server.GetObject("landing", "partial.csv")
	s.Error(err, "object is not created until the writer is closed")
	s.Require().NoError(w.Close())
}

func (s *bucketTestSuite) TestAbort() {
	ctx := context.Background()
	b, err := NewBucket(ctx, "landing", WithClient(s.server.Client()))
	s.Require().NoError(err)

	w, err := b.OpenWriteStream(ctx, "in/report_1.csv")
	s.Require().NoError(err)
	_, err = w.Write([]byte("id,amount\n1,1"))
	s.Require().NoError(err)

	s.NoError(w.Abort(errors.New("connection reset by peer")))
	_, err = s.server.GetObject("landing", "in/report_1.csv")
	s.Error(err, "an aborted upload leaves no object")
	s.Error(w.Close(), "close after abort does not finalize")
	s.NoError(w.Abort(nil))
}

func (s *bucketTestSuite) TestAbort_AfterClose() {
	ctx := context.Background()
	b, err := NewBucket(ctx, "landing", WithClient(s.server.Client()))
	s.Require().NoError(err)

	w, err := b.OpenWriteStream(ctx, "done.csv")
	s.Require().NoError(err)
	s.Require().NoError(w.Close())
	s.ErrorIs(w.Abort(errors.New("late")), utils.ErrAbortCommitted)
}
