package utils

import "fmt"

// WrapConnectError returns a wrapped connect error
func WrapConnectError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("connect error: %w", err)
}

// WrapLoginError returns a wrapped login error
func WrapLoginError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("login error: %w", err)
}

// WrapListError returns a wrapped list error
func WrapListError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("list error: %w", err)
}

// WrapReadError returns a wrapped read error
func WrapReadError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("read error: %w", err)
}

// WrapWriteError returns a wrapped write error
func WrapWriteError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("write error: %w", err)
}

// WrapCloseError returns a wrapped close error
func WrapCloseError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("close error: %w", err)
}

// WrapOpenError returns a wrapped open error
func WrapOpenError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("open error: %w", err)
}
