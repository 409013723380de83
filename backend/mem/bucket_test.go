package mem

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/c2fo/ftpmover"
	"github.com/c2fo/ftpmover/backend"
	"github.com/c2fo/ftpmover/utils"
)

type bucketTestSuite struct {
	suite.Suite
}

func TestBucket(t *testing.T) {
	suite.Run(t, new(bucketTestSuite))
}

func (s *bucketTestSuite) TestNewBucket() {
	b, err := NewBucket("mem://landing/")
	s.Require().NoError(err)
	s.Equal("landing", b.Name())
	s.Equal("mem", b.Scheme())
	s.Equal("mem://landing", b.String())
	s.Empty(b.Keys())

	_, err = NewBucket("mem:///")
	s.ErrorIs(err, ftpmover.ErrInvalidConfig)
}

func (s *bucketTestSuite) TestRegistered() {
	b, err := backend.Open(context.Background(), "mem://landing")
	s.Require().NoError(err)
	s.IsType((*Bucket)(nil), b)
	s.Equal("landing", b.Name())
}

func (s *bucketTestSuite) TestWriteAndCommit() {
	ctx := context.Background()
	b, err := NewBucket("landing", WithObject("old.csv", []byte("old")))
	s.Require().NoError(err)

	w, err := b.OpenWriteStream(ctx, "in/a.csv")
	s.Require().NoError(err)
	_, err = io.Copy(w, strings.NewReader("hello"))
	s.Require().NoError(err)

	_, ok := b.Object("in/a.csv")
	s.False(ok, "not visible before close")

	s.Require().NoError(w.Close())
	s.NoError(w.Close(), "second close does nothing")

	data, ok := b.Object("in/a.csv")
	s.True(ok)
	s.Equal("hello", string(data))
	s.Equal([]string{"in/a.csv", "old.csv"}, b.Keys())
	s.Equal([]string{"in/a.csv"}, b.Opened())
	s.Equal([]string{"in/a.csv"}, b.Closed())

	_, err = w.Write([]byte("more"))
	s.ErrorIs(err, errWriterClosed)
}

func (s *bucketTestSuite) TestAbort() {
	ctx := context.Background()
	b, err := NewBucket("landing", WithObject("in/a.csv", []byte("old")))
	s.Require().NoError(err)

	w, err := b.OpenWriteStream(ctx, "in/a.csv")
	s.Require().NoError(err)
	_, err = w.Write([]byte("trunc"))
	s.Require().NoError(err)

	s.NoError(w.Abort(errors.New("connection reset by peer")))
	s.NoError(w.Close(), "close after abort does nothing")
	data, ok := b.Object("in/a.csv")
	s.True(ok)
	s.Equal("old", string(data), "an aborted write leaves the earlier object alone")
	s.Equal([]string{"in/a.csv"}, b.Aborted())
	s.Empty(b.Closed())

	w, err = b.OpenWriteStream(ctx, "in/b.csv")
	s.Require().NoError(err)
	s.Require().NoError(w.Close())
	s.ErrorIs(w.Abort(nil), utils.ErrAbortCommitted)
	s.Equal([]string{"in/a.csv"}, b.Aborted())
}

func (s *bucketTestSuite) TestEmptyObject() {
	b, err := NewBucket("landing")
	s.Require().NoError(err)
	w, err := b.OpenWriteStream(context.Background(), "empty.csv")
	s.Require().NoError(err)
	s.Require().NoError(w.Close())

	data, ok := b.Object("empty.csv")
	s.True(ok)
	s.Empty(data)
}

func (s *bucketTestSuite) TestInjectedErrors() {
	openErr := errors.New("permission denied")
	writeErr := errors.New("quota exceeded")
	closeErr := errors.New("finalize failed")

	b, err := NewBucket("landing",
		WithOpenError("a.csv", openErr),
		WithWriteError("b.csv", writeErr),
		WithCloseError("c.csv", closeErr),
	)
	s.Require().NoError(err)
	ctx := context.Background()

	w, err := b.OpenWriteStream(ctx, "a.csv")
	s.Nil(w)
	s.ErrorIs(err, openErr)

	w, err = b.OpenWriteStream(ctx, "b.csv")
	s.Require().NoError(err)
	_, err = w.Write([]byte("x"))
	s.ErrorIs(err, writeErr)
	s.NoError(w.Close())

	w, err = b.OpenWriteStream(ctx, "c.csv")
	s.Require().NoError(err)
	_, err = w.Write([]byte("x"))
	s.NoError(err)
	s.ErrorIs(w.Close(), closeErr)

	_, ok := b.Object("c.csv")
	s.False(ok, "failed close does not commit")
	s.Equal([]string{"b.csv", "c.csv"}, b.Opened(), "failed opens are not recorded")
	s.Equal([]string{"b.csv", "c.csv"}, b.Closed())

	_, err = b.OpenWriteStream(ctx, "")
	s.ErrorIs(err, errEmptyKey)
}

func (s *bucketTestSuite) TestConcurrentWriters() {
	b, err := NewBucket("landing")
	s.Require().NoError(err)

	var wg sync.WaitGroup
	for _, key := range []string{"a", "b", "c", "d"} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w, err := b.OpenWriteStream(context.Background(), key)
			if err != nil {
				return
			}
			_, _ = w.Write([]byte(key))
			_ = w.Close()
		}()
	}
	wg.Wait()
	s.Equal([]string{"a", "b", "c", "d"}, b.Keys())
}
