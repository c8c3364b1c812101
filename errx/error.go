package errx

import (
	"context"
	"errors"
	"fmt"
	"net"
	"runtime/debug"
)

const DefaultErrCode = 500
const DefaultErrMessage = "Internal Server Error"

const (
	CodeInvalid     = 400
	CodeNotFound    = 404
	CodeUnavailable = 503
	CodeTimeout     = 504
)

type AppError struct {
	fatal   bool
	code    int
	message string
	stack   string
	basic   error
}

// New vals: string | int | error
func New(vals ...any) *AppError {
	err := &AppError{code: DefaultErrCode}

	for _, val := range vals {
		switch v := val.(type) {
		case int:
			err.code = v
		case string:
			err.message = v
		case error:
			err.basic = v
		}
	}

	// without a message the wrapped error speaks for itself
	switch {
	case err.message != "":
	case err.basic != nil:
		err.message = err.basic.Error()
	default:
		err.message = DefaultErrMessage
	}
	return err
}

func (e *AppError) Fatal() *AppError {
	e.fatal = true
	e.stack = string(debug.Stack())
	return e
}

func (e *AppError) IsFatal() bool {
	return e.fatal
}

func (e *AppError) Code() int {
	return e.code
}

func (e *AppError) WithCode(code int) *AppError {
	e.code = code
	return e
}

func (e *AppError) Error() string {
	return e.message
}

func (e *AppError) FullError() string {
	message := e.message
	if e.basic != nil {
		message = fmt.Sprintf("%s (%s)", message, e.basic.Error())
	}
	if e.stack != "" {
		message = fmt.Sprintf("%s\n%s", message, e.stack)
	}
	return message
}

func (e *AppError) IsBasic() bool {
	return e.basic != nil
}

func (e *AppError) Stack() string {
	return e.stack
}

func (e *AppError) Unwrap() error {
	return e.basic
}

func Wrap(err any) *AppError {
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	return New(err)
}

// Wrapf keeps err as the cause and prefixes its text with the formatted
// message. A nil err returns nil.
func Wrapf(err error, code int, format string, v ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, v...)
	return New(fmt.Sprintf("%s: %s", message, err), err, code)
}

// NetCode classifies connection failures: CodeTimeout for deadlines,
// CodeUnavailable for other network errors, DefaultErrCode otherwise.
func NetCode(err error) int {
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return CodeTimeout
	case errors.As(err, &netErr) && netErr.Timeout():
		return CodeTimeout
	case netErr != nil:
		return CodeUnavailable
	default:
		return DefaultErrCode
	}
}

func Sprintf(format string, v ...any) *AppError {
	return New(fmt.Sprintf(format, v...))
}

func NewX(vals ...any) *AppError {
	return New(vals...).Fatal()
}

func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// CodeOf returns the code of the first AppError in err's chain, 0 if none.
func CodeOf(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.code
	}
	return 0
}
