package utils

import (
	"io"
	"sync"

	"github.com/c2fo/ftpmover"
)

// ErrAbortCommitted is returned by Abort when the upload finished before it could be stopped.
const ErrAbortCommitted = ftpmover.Error("object was committed before the write could be aborted")

const errAborted = ftpmover.Error("write aborted")

// UploadFunc consumes an object's bytes from r until EOF. It must not commit the object when reading r fails.
type UploadFunc func(r io.Reader) error

// uploadPipe turns a pull-style upload into a WriteSink. upload runs in its own goroutine reading the pipe; Close
// ends the stream and returns the upload's result, Abort fails the stream so the upload gives up.
type uploadPipe struct {
	pw      *io.PipeWriter
	errChan chan error
	once    sync.Once
	err     error
}

// NewUploadPipe starts upload in a goroutine and returns a writer feeding it. Writes fail with the upload's error if
// it stops reading early. Close or Abort must be called to release the goroutine; both wait for the upload to finish.
func NewUploadPipe(upload UploadFunc) ftpmover.WriteSink {
	pr, pw := io.Pipe()
	errChan := make(chan error, 1)
	go func() {
		err := upload(pr)
		errChan <- err
		// unblock any pending write once nothing reads anymore
		if err != nil {
			_ = pr.CloseWithError(err)
			return
		}
		_ = pr.Close()
	}()
	return &uploadPipe{pw: pw, errChan: errChan}
}

func (u *uploadPipe) Write(p []byte) (int, error) {
	return u.pw.Write(p)
}

// Close signals EOF to the upload and returns its error. Later calls return the same result.
func (u *uploadPipe) Close() error {
	u.once.Do(func() {
		_ = u.pw.Close()
		u.err = <-u.errChan
	})
	return u.err
}

// Abort makes the upload's next read fail with cause and waits for it to give up. It returns ErrAbortCommitted if
// the upload succeeded regardless, or if the pipe was already closed successfully.
func (u *uploadPipe) Abort(cause error) error {
	if cause == nil {
		cause = errAborted
	}
	u.once.Do(func() {
		_ = u.pw.CloseWithError(cause)
		u.err = <-u.errChan
	})
	if u.err == nil {
		return ErrAbortCommitted
	}
	return nil
}
