package backend

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/c2fo/ftpmover"
	"github.com/c2fo/ftpmover/mocks"
)

/**********************************
 ************TESTS*****************
 **********************************/

type testSuite struct {
	suite.Suite
}

func (s *testSuite) TearDownTest() {
	UnregisterAll()
}

func (s *testSuite) TestBackend() {
	m1 := mocks.NewBucket(s.T())
	Register("mock", func(context.Context, string) (ftpmover.Bucket, error) { return m1, nil })

	// register a new backend
	Register("new mock", func(context.Context, string) (ftpmover.Bucket, error) { return nil, nil })

	// register another backend
	Register("newest mock", func(context.Context, string) (ftpmover.Bucket, error) { return nil, nil })

	// get backend
	o := Backend("mock")
	s.Require().NotNil(o)
	b, err := o(context.Background(), "mock://bucket")
	s.NoError(err)
	s.Same(m1, b)

	s.Nil(Backend("unknown"))

	// check all RegisteredBackends names
	s.Equal([]string{"mock", "new mock", "newest mock"}, RegisteredBackends())

	// Unregister a backend
	Unregister("newest mock")
	s.Len(RegisteredBackends(), 2, "found 2 backends")

	// Unregister all backends
	UnregisterAll()
	s.Empty(RegisteredBackends(), "found 0 backends")
}

func (s *testSuite) TestOpen() {
	var gotName, gotScheme string
	opener := func(scheme string) Opener {
		return func(_ context.Context, name string) (ftpmover.Bucket, error) {
			gotScheme, gotName = scheme, name
			return mocks.NewBucket(s.T()), nil
		}
	}
	Register("gs", opener("gs"))
	Register("s3", opener("s3"))

	tests := []struct {
		description string
		destination string
		scheme      string
		name        string
		err         error
	}{
		{
			description: "scheme selects backend",
			destination: "s3://landing/",
			scheme:      "s3",
			name:        "s3://landing/",
		},
		{
			description: "no scheme opens gs",
			destination: "landing",
			scheme:      "gs",
			name:        "landing",
		},
		{
			description: "unregistered scheme is a config error",
			destination: "dropbox://landing",
			err:         ftpmover.ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		s.Run(tt.description, func() {
			gotName, gotScheme = "", ""
			b, err := Open(context.Background(), tt.destination)
			if tt.err != nil {
				s.ErrorIs(err, tt.err)
				s.Nil(b)
				return
			}
			s.NoError(err)
			s.NotNil(b)
			s.Equal(tt.scheme, gotScheme)
			s.Equal(tt.name, gotName)
		})
	}
}

func (s *testSuite) TestOpen_OpenerError() {
	openErr := errors.New("no credentials")
	Register("gs", func(context.Context, string) (ftpmover.Bucket, error) { return nil, openErr })

	_, err := Open(context.Background(), "gs://landing")
	s.ErrorIs(err, openErr)
}

func TestBackend(t *testing.T) {
	suite.Run(t, new(testSuite))
}
