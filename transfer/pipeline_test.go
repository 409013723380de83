package transfer

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/fsouza/fake-gcs-server/fakestorage"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/c2fo/ftpmover"
	"github.com/c2fo/ftpmover/backend/ftp/mocks"
	"github.com/c2fo/ftpmover/backend/gs"
	"github.com/c2fo/ftpmover/backend/mem"
	"github.com/c2fo/ftpmover/connections"
	rootmocks "github.com/c2fo/ftpmover/mocks"
	"github.com/c2fo/ftpmover/utils"
)

type pipelineTestSuite struct {
	suite.Suite
	client   *mocks.Client
	dialer   *mocks.Dialer
	provider connections.StaticProvider
	logs     *bytes.Buffer
	pipeline *Pipeline
}

func TestPipeline(t *testing.T) {
	suite.Run(t, new(pipelineTestSuite))
}

func (s *pipelineTestSuite) SetupTest() {
	s.client = mocks.NewClient(s.T())
	s.dialer = mocks.NewDialer(s.T())
	s.provider = connections.StaticProvider{
		"partner_ftp": {Host: "ftp.partner.com", Username: "loader", Password: "pw"},
	}
	s.logs = &bytes.Buffer{}
	s.pipeline = NewPipeline(
		WithDialer(s.dialer),
		WithLogger(slog.New(slog.NewTextHandler(s.logs, &slog.HandlerOptions{Level: slog.LevelDebug}))),
		WithBufferSize(4),
	)
}

// expectSession sets up a session that lists names in dir. Quit is expected exactly once.
func (s *pipelineTestSuite) expectSession(dir string, names ...string) {
	s.dialer.EXPECT().Dial(mock.Anything, "ftp.partner.com").Return(s.client, nil).Once()
	s.client.EXPECT().Login("loader", "pw").Return(nil).Once()
	s.client.EXPECT().ChangeDir(dir).Return(nil).Once()
	s.client.EXPECT().NameList("report_*").Return(names, nil).Once()
	s.client.EXPECT().Quit().Return(nil).Once()
}

func (s *pipelineTestSuite) expectRetr(name, content string) {
	s.client.EXPECT().Retr(name).Return(io.NopCloser(strings.NewReader(content)), nil).Once()
}

func (s *pipelineTestSuite) config() Config {
	cfg, err := NewConfig("partner_ftp", "outgoing/report_*", "gs://landing/", WithDestinationPath("/in/"))
	s.Require().NoError(err)
	return cfg
}

func (s *pipelineTestSuite) newBucket() *mem.Bucket {
	b, err := mem.NewBucket("landing")
	s.Require().NoError(err)
	return b
}

func (s *pipelineTestSuite) TestExecute_KeysInListingOrder() {
	s.expectSession("outgoing", "report_b.csv", "report_a.csv")
	s.expectRetr("report_b.csv", "b-content")
	s.expectRetr("report_a.csv", "a-content-longer-than-buffer")
	bucket := s.newBucket()

	res, err := s.pipeline.ExecuteWithResult(context.Background(), s.config(), s.provider, bucket)
	s.Require().NoError(err)

	s.Equal([]string{"in/report_b.csv", "in/report_a.csv"}, bucket.Opened(), "server order, no sorting")
	s.Equal([]string{"in/report_b.csv", "in/report_a.csv"}, bucket.Closed(), "each stream closed once")
	s.Equal([]string{"in/report_b.csv", "in/report_a.csv"}, res.Transferred)
	s.Empty(res.Deleted, "copy mode deletes nothing")

	data, ok := bucket.Object("in/report_a.csv")
	s.True(ok)
	s.Equal("a-content-longer-than-buffer", string(data))

	s.Contains(s.logs.String(), "file will be saved to")
	s.Contains(s.logs.String(), "key=in/report_b.csv")
	s.Contains(s.logs.String(), "downloading")
	s.NotContains(s.logs.String(), "pw", "password is never logged")
}

func (s *pipelineTestSuite) TestExecute_ZeroMatches() {
	s.expectSession("outgoing")
	bucket := s.newBucket()

	err := s.pipeline.Execute(context.Background(), s.config(), s.provider, bucket)
	s.NoError(err)
	s.Empty(bucket.Opened(), "no write stream opened")
	s.Contains(s.logs.String(), "no files matched")
}

func (s *pipelineTestSuite) TestExecute_EmptyFile() {
	s.expectSession("outgoing", "report_empty.csv")
	s.expectRetr("report_empty.csv", "")
	bucket := s.newBucket()

	s.Require().NoError(s.pipeline.Execute(context.Background(), s.config(), s.provider, bucket))
	data, ok := bucket.Object("in/report_empty.csv")
	s.True(ok, "empty source still produces an object")
	s.Empty(data)
}

func (s *pipelineTestSuite) TestExecute_MoveDeletesAfterFinalize() {
	s.expectSession("outgoing", "report_1.csv", "report_2.csv")
	s.expectRetr("report_1.csv", "one")
	s.expectRetr("report_2.csv", "two")
	bucket := s.newBucket()

	for _, name := range []string{"report_1.csv", "report_2.csv"} {
		key := "in/" + name
		s.client.EXPECT().Delete(name).Run(func(string) {
			_, ok := bucket.Object(key)
			s.True(ok, "object finalized before its source is deleted")
		}).Return(nil).Once()
	}

	cfg, err := NewConfig("partner_ftp", "outgoing/report_*", "landing",
		WithDestinationPath("in"), WithMoveObject(true))
	s.Require().NoError(err)

	res, err := s.pipeline.ExecuteWithResult(context.Background(), cfg, s.provider, bucket)
	s.Require().NoError(err)
	s.Equal([]string{"report_1.csv", "report_2.csv"}, res.Deleted)
	s.Contains(s.logs.String(), "deleting")
}

func (s *pipelineTestSuite) TestExecute_DeleteFailureAborts() {
	s.expectSession("outgoing", "report_1.csv", "report_2.csv")
	s.expectRetr("report_1.csv", "one")
	deleteErr := errors.New("550 Permission denied")
	s.client.EXPECT().Delete("report_1.csv").Return(deleteErr).Once()
	bucket := s.newBucket()

	cfg, err := NewConfig("partner_ftp", "outgoing/report_*", "landing", WithDestinationPath("in"), WithMoveObject(true))
	s.Require().NoError(err)

	res, err := s.pipeline.ExecuteWithResult(context.Background(), cfg, s.provider, bucket)
	s.ErrorIs(err, ftpmover.ErrDelete)
	s.ErrorIs(err, deleteErr)
	var delErr *ftpmover.DeleteError
	s.Require().ErrorAs(err, &delErr)
	s.Equal("report_1.csv", delErr.Name)

	s.Equal([]string{"in/report_1.csv"}, bucket.Opened(), "second file never started")
	s.Equal([]string{"in/report_1.csv"}, res.Transferred, "first object stays")
	s.Empty(res.Deleted)
	// Quit is expected exactly once by expectSession
}

func (s *pipelineTestSuite) TestExecute_MidStreamFailureStops() {
	s.expectSession("outgoing", "report_1.csv", "report_2.csv", "report_3.csv")
	s.expectRetr("report_1.csv", "one")
	readErr := errors.New("connection reset by peer")
	s.client.EXPECT().Retr("report_2.csv").
		Return(io.NopCloser(io.MultiReader(strings.NewReader("partial"), iotest.ErrReader(readErr))), nil).Once()
	bucket := s.newBucket()

	res, err := s.pipeline.ExecuteWithResult(context.Background(), s.config(), s.provider, bucket)
	s.ErrorIs(err, ftpmover.ErrTransfer)
	s.ErrorIs(err, readErr)

	var te *ftpmover.TransferError
	s.Require().ErrorAs(err, &te)
	s.Equal("report_2.csv", te.Name)
	s.Equal("in/report_2.csv", te.Key)

	s.Equal([]string{"in/report_1.csv", "in/report_2.csv"}, bucket.Opened(), "third file never started")
	s.Equal([]string{"in/report_1.csv"}, bucket.Closed(), "only the good stream is finalized")
	s.Equal([]string{"in/report_2.csv"}, bucket.Aborted(), "failed stream is aborted")
	_, committed := bucket.Object("in/report_2.csv")
	s.False(committed, "no truncated object")
	s.Equal([]string{"in/report_1.csv"}, bucket.Keys())
	s.Equal([]string{"in/report_1.csv"}, res.Transferred)
}

func (s *pipelineTestSuite) TestExecute_MidStreamFailureGCS() {
	server := fakestorage.NewServer([]fakestorage.Object{})
	defer server.Stop()
	server.CreateBucketWithOpts(fakestorage.CreateBucketOpts{Name: "landing"})
	bucket, err := gs.NewBucket(context.Background(), "landing", gs.WithClient(server.Client()))
	s.Require().NoError(err)

	s.expectSession("outgoing", "report_1.csv")
	readErr := errors.New("connection reset by peer")
	s.client.EXPECT().Retr("report_1.csv").
		Return(io.NopCloser(io.MultiReader(strings.NewReader("id,amount\n1,1"), iotest.ErrReader(readErr))), nil).
		Once()

	err = s.pipeline.Execute(context.Background(), s.config(), s.provider, bucket)
	s.ErrorIs(err, ftpmover.ErrTransfer)
	s.ErrorIs(err, readErr)

	_, err = server.GetObject("landing", "in/report_1.csv")
	s.Error(err, "truncated object is not published")
}

func (s *pipelineTestSuite) TestExecute_SinkLifecycle() {
	s.Run("finalized once after a good retrieve", func() {
		s.SetupTest()
		s.expectSession("outgoing", "report_1.csv")
		s.expectRetr("report_1.csv", "one")
		sink := rootmocks.NewWriteSink(s.T())
		sink.EXPECT().Write([]byte("one")).Return(3, nil).Once()
		sink.EXPECT().Close().Return(nil).Once()
		bucket := rootmocks.NewBucket(s.T())
		bucket.EXPECT().Name().Return("landing").Maybe()
		bucket.EXPECT().OpenWriteStream(mock.Anything, "in/report_1.csv").Return(sink, nil).Once()

		s.Require().NoError(s.pipeline.Execute(context.Background(), s.config(), s.provider, bucket))
	})

	s.Run("aborted with the retrieve error", func() {
		s.SetupTest()
		s.expectSession("outgoing", "report_1.csv")
		readErr := errors.New("connection reset by peer")
		s.client.EXPECT().Retr("report_1.csv").Return(io.NopCloser(iotest.ErrReader(readErr)), nil).Once()
		sink := rootmocks.NewWriteSink(s.T())
		sink.EXPECT().Abort(mock.MatchedBy(func(err error) bool { return errors.Is(err, readErr) })).
			Return(utils.ErrAbortCommitted).Once()
		bucket := rootmocks.NewBucket(s.T())
		bucket.EXPECT().Name().Return("landing").Maybe()
		bucket.EXPECT().OpenWriteStream(mock.Anything, "in/report_1.csv").Return(sink, nil).Once()

		// Close is not expected on the mock sink
		err := s.pipeline.Execute(context.Background(), s.config(), s.provider, bucket)
		s.ErrorIs(err, readErr)
		s.Contains(s.logs.String(), "partial object may remain")
	})
}

func (s *pipelineTestSuite) TestExecute_RetrRefused() {
	s.expectSession("outgoing", "report_1.csv")
	retrErr := errors.New("550 No such file")
	s.client.EXPECT().Retr("report_1.csv").Return(nil, retrErr).Once()
	bucket := s.newBucket()

	err := s.pipeline.Execute(context.Background(), s.config(), s.provider, bucket)
	s.ErrorIs(err, ftpmover.ErrTransfer)
	s.ErrorIs(err, retrErr)
	s.Empty(bucket.Closed())
	s.Equal([]string{"in/report_1.csv"}, bucket.Aborted())
	s.Empty(bucket.Keys())
}

func (s *pipelineTestSuite) TestExecute_FinalizeFailure() {
	s.expectSession("outgoing", "report_1.csv", "report_2.csv")
	s.expectRetr("report_1.csv", "one")
	finalizeErr := errors.New("precondition failed")
	bucket, err := mem.NewBucket("landing", mem.WithCloseError("in/report_1.csv", finalizeErr))
	s.Require().NoError(err)

	err = s.pipeline.Execute(context.Background(), s.config(), s.provider, bucket)
	s.ErrorIs(err, ftpmover.ErrTransfer)
	s.ErrorIs(err, finalizeErr)
	var te *ftpmover.TransferError
	s.Require().ErrorAs(err, &te)
	s.Equal("in/report_1.csv", te.Key)
	s.Equal([]string{"in/report_1.csv"}, bucket.Opened())
}

func (s *pipelineTestSuite) TestExecute_FinalizeFailureSkipsDelete() {
	s.expectSession("outgoing", "report_1.csv")
	s.expectRetr("report_1.csv", "one")
	bucket, err := mem.NewBucket("landing", mem.WithCloseError("in/report_1.csv", errors.New("finalize")))
	s.Require().NoError(err)

	cfg, err := NewConfig("partner_ftp", "outgoing/report_*", "landing", WithDestinationPath("in"), WithMoveObject(true))
	s.Require().NoError(err)

	// Delete is not expected on the mock client
	err = s.pipeline.Execute(context.Background(), cfg, s.provider, bucket)
	s.ErrorIs(err, ftpmover.ErrTransfer)
}

func (s *pipelineTestSuite) TestExecute_OpenStreamFailure() {
	s.expectSession("outgoing", "report_1.csv")
	openErr := errors.New("403 forbidden")
	bucket, err := mem.NewBucket("landing", mem.WithOpenError("in/report_1.csv", openErr))
	s.Require().NoError(err)

	// Retr is not expected on the mock client
	err = s.pipeline.Execute(context.Background(), s.config(), s.provider, bucket)
	s.ErrorIs(err, ftpmover.ErrTransfer)
	s.ErrorIs(err, openErr)
}

func (s *pipelineTestSuite) TestExecute_ListFailure() {
	s.dialer.EXPECT().Dial(mock.Anything, "ftp.partner.com").Return(s.client, nil).Once()
	s.client.EXPECT().Login("loader", "pw").Return(nil).Once()
	s.client.EXPECT().ChangeDir("outgoing").Return(nil).Once()
	listErr := errors.New("425 Can't open data connection")
	s.client.EXPECT().NameList("report_*").Return(nil, listErr).Once()
	s.client.EXPECT().Quit().Return(nil).Once()

	err := s.pipeline.Execute(context.Background(), s.config(), s.provider, s.newBucket())
	s.ErrorIs(err, ftpmover.ErrList)
	s.ErrorIs(err, listErr)
}

func (s *pipelineTestSuite) TestExecute_SessionFailures() {
	s.Run("connection", func() {
		s.SetupTest()
		dialErr := errors.New("no route to host")
		s.dialer.EXPECT().Dial(mock.Anything, "ftp.partner.com").Return(nil, dialErr).Once()

		err := s.pipeline.Execute(context.Background(), s.config(), s.provider, s.newBucket())
		s.ErrorIs(err, ftpmover.ErrConnection)
		var connErr *ftpmover.ConnectionError
		s.Require().ErrorAs(err, &connErr)
		s.Equal("ftp.partner.com", connErr.Host)
	})

	s.Run("auth", func() {
		s.SetupTest()
		s.dialer.EXPECT().Dial(mock.Anything, "ftp.partner.com").Return(s.client, nil).Once()
		s.client.EXPECT().Login("loader", "pw").Return(errors.New("530 Login incorrect")).Once()
		s.client.EXPECT().Quit().Return(nil).Once()

		err := s.pipeline.Execute(context.Background(), s.config(), s.provider, s.newBucket())
		s.ErrorIs(err, ftpmover.ErrAuth)
	})

	s.Run("navigation", func() {
		s.SetupTest()
		s.dialer.EXPECT().Dial(mock.Anything, "ftp.partner.com").Return(s.client, nil).Once()
		s.client.EXPECT().Login("loader", "pw").Return(nil).Once()
		s.client.EXPECT().ChangeDir("outgoing").Return(errors.New("550 No such directory")).Once()
		s.client.EXPECT().Quit().Return(nil).Once()

		err := s.pipeline.Execute(context.Background(), s.config(), s.provider, s.newBucket())
		s.ErrorIs(err, ftpmover.ErrNavigation)
		var navErr *ftpmover.NavigationError
		s.Require().ErrorAs(err, &navErr)
		s.Equal("outgoing", navErr.Path)
	})
}

func (s *pipelineTestSuite) TestExecute_CredentialFailure() {
	provider := rootmocks.NewCredentialProvider(s.T())
	lookupErr := errors.New("secret not found")
	provider.EXPECT().Credentials(mock.Anything, "partner_ftp").Return(ftpmover.Credentials{}, lookupErr).Once()

	// the dialer is never called
	err := s.pipeline.Execute(context.Background(), s.config(), provider, s.newBucket())
	s.ErrorIs(err, ftpmover.ErrInvalidConfig)
	s.ErrorIs(err, lookupErr)
}

func (s *pipelineTestSuite) TestExecute_ZeroConfig() {
	err := s.pipeline.Execute(context.Background(), Config{}, s.provider, s.newBucket())
	s.ErrorIs(err, ftpmover.ErrInvalidConfig)
}

func (s *pipelineTestSuite) TestExecute_LoginDirectory() {
	s.dialer.EXPECT().Dial(mock.Anything, "ftp.partner.com").Return(s.client, nil).Once()
	s.client.EXPECT().Login("loader", "pw").Return(nil).Once()
	s.client.EXPECT().ChangeDir(".").Return(nil).Once()
	s.client.EXPECT().NameList("file.csv").Return([]string{"file.csv"}, nil).Once()
	s.client.EXPECT().Quit().Return(nil).Once()
	s.expectRetr("file.csv", "x")

	cfg, err := NewConfig("partner_ftp", "file.csv", "landing")
	s.Require().NoError(err)
	bucket := s.newBucket()

	s.Require().NoError(s.pipeline.Execute(context.Background(), cfg, s.provider, bucket))
	s.Equal([]string{"file.csv"}, bucket.Keys(), "no prefix writes to the bucket root")
}

func (s *pipelineTestSuite) TestExecute_CanceledBetweenFiles() {
	s.expectSession("outgoing", "report_1.csv", "report_2.csv")
	ctx, cancel := context.WithCancel(context.Background())
	s.client.EXPECT().Retr("report_1.csv").RunAndReturn(func(string) (io.ReadCloser, error) {
		cancel()
		return io.NopCloser(strings.NewReader("one")), nil
	}).Once()
	bucket := s.newBucket()

	err := s.pipeline.Execute(ctx, s.config(), s.provider, bucket)
	s.ErrorIs(err, ftpmover.ErrTransfer)
	s.ErrorIs(err, context.Canceled)
	s.Equal([]string{"in/report_1.csv"}, bucket.Keys())
}

func (s *pipelineTestSuite) TestExecute_GCS() {
	server := fakestorage.NewServer([]fakestorage.Object{})
	defer server.Stop()
	server.CreateBucketWithOpts(fakestorage.CreateBucketOpts{Name: "landing"})

	cfg := s.config()
	bucket, err := gs.NewBucket(context.Background(), cfg.DestinationBucket(), gs.WithClient(server.Client()))
	s.Require().NoError(err)

	s.expectSession("outgoing", "report_1.csv")
	s.expectRetr("report_1.csv", "id,amount\n1,100\n")

	s.Require().NoError(s.pipeline.Execute(context.Background(), cfg, s.provider, bucket))

	obj, err := server.GetObject("landing", "in/report_1.csv")
	s.Require().NoError(err)
	s.Equal("id,amount\n1,100\n", string(obj.Content))
}
