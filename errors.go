package ftpmover

import "fmt"

// Error is a type that allows for error constants below
type Error string

// Error returns a string representation of the error
func (e Error) Error() string { return string(e) }

const (
	// ErrInvalidConfig - bucket, prefix, source or connection settings are unusable. Raised before any I/O.
	ErrInvalidConfig = Error("invalid transfer configuration")

	// ErrConnection - the transport connection to the FTP host could not be opened
	ErrConnection = Error("ftp connection failed")

	// ErrAuth - the FTP server rejected the login
	ErrAuth = Error("ftp login failed")

	// ErrNavigation - the remote directory does not exist or could not be entered
	ErrNavigation = Error("ftp change directory failed")

	// ErrList - the remote directory listing failed
	ErrList = Error("ftp listing failed")

	// ErrTransfer - streaming a remote file into its destination object failed
	ErrTransfer = Error("file transfer failed")

	// ErrDelete - the remote source file could not be deleted after transfer
	ErrDelete = Error("ftp delete failed")
)

// InvalidConfigError is returned when a transfer is configured with unusable values.
type InvalidConfigError struct {
	Field string
	Value string
	Err   error
}

func (e *InvalidConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s %q: %v", ErrInvalidConfig, e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("%s: %s %q", ErrInvalidConfig, e.Field, e.Value)
}

func (e *InvalidConfigError) Unwrap() error { return e.Err }

// Is reports ErrInvalidConfig as a match.
func (e *InvalidConfigError) Is(target error) bool { return target == ErrInvalidConfig }

// ConnectionError is returned when the connection to Host could not be established.
type ConnectionError struct {
	Host string
	Err  error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("error connecting to %s: %v", e.Host, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// Is reports ErrConnection as a match.
func (e *ConnectionError) Is(target error) bool { return target == ErrConnection }

// AuthError is returned when login to Host was refused.
type AuthError struct {
	Host string
	User string
	Err  error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("cannot login to %s as %s: %v", e.Host, e.User, e.Err)
}

func (e *AuthError) Unwrap() error { return e.Err }

// Is reports ErrAuth as a match.
func (e *AuthError) Is(target error) bool { return target == ErrAuth }

// NavigationError is returned when the remote directory Path could not be entered.
type NavigationError struct {
	Path string
	Err  error
}

func (e *NavigationError) Error() string {
	return fmt.Sprintf("error in folder %q: %v", e.Path, e.Err)
}

func (e *NavigationError) Unwrap() error { return e.Err }

// Is reports ErrNavigation as a match.
func (e *NavigationError) Is(target error) bool { return target == ErrNavigation }

// ListError is returned when listing Pattern failed.
type ListError struct {
	Pattern string
	Err     error
}

func (e *ListError) Error() string {
	return fmt.Sprintf("error listing %q: %v", e.Pattern, e.Err)
}

func (e *ListError) Unwrap() error { return e.Err }

// Is reports ErrList as a match.
func (e *ListError) Is(target error) bool { return target == ErrList }

// TransferError is returned when remote file Name could not be streamed into its destination object.
type TransferError struct {
	Name string
	Key  string
	Err  error
}

func (e *TransferError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("error reading file %s into %s: %v", e.Name, e.Key, e.Err)
	}
	return fmt.Sprintf("error reading file %s: %v", e.Name, e.Err)
}

func (e *TransferError) Unwrap() error { return e.Err }

// Is reports ErrTransfer as a match.
func (e *TransferError) Is(target error) bool { return target == ErrTransfer }

// DeleteError is returned when remote file Name could not be deleted.
type DeleteError struct {
	Name string
	Err  error
}

func (e *DeleteError) Error() string {
	return fmt.Sprintf("error deleting file %s: %v", e.Name, e.Err)
}

func (e *DeleteError) Unwrap() error { return e.Err }

// Is reports ErrDelete as a match.
func (e *DeleteError) Is(target error) bool { return target == ErrDelete }
