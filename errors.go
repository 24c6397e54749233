package wirehdr

import (
    "fmt"
    "runtime"
    "strings"

    "github.com/pkg/errors"
    "github.com/rs/zerolog"
)

// Unique identifier for categorizing errors on both library and caller sides
type ErrorCode string

const (
    // Common errors
    ErrUnknown  ErrorCode = "err_unknown_error"
    ErrInternal ErrorCode = "err_internal_error"

    // Encoding errors
    ErrBufferTooSmall  ErrorCode = "err_buffer_too_small"
    ErrInvalidEncoding ErrorCode = "err_invalid_encoding"

    // Serialization errors
    ErrUnsupportedFormat ErrorCode = "err_unsupported_format"

    // Transport errors
    ErrIncompatibleTransport ErrorCode = "err_incompatible_transport"
)

// Standardized error type with rich context for debugging
type WireError struct {
    Original error     // The underlying error being wrapped
    Code     ErrorCode // Caller-facing error code
    Message  string    // Human-readable error message

    // Debug information automatically captured
    file     string
    line     int
    function string
}

var predefinedErrors = map[ErrorCode]string{
    ErrUnknown:               "Unknown error",
    ErrInternal:              "Internal error",
    ErrBufferTooSmall:        "Destination buffer too small",
    ErrInvalidEncoding:       "Text is not representable in the target encoding",
    ErrUnsupportedFormat:     "Unsupported serialization format",
    ErrIncompatibleTransport: "Message type not supported by this transport",
}

func (e *WireError) Error() string {
    base := fmt.Sprintf("[wirehdr:%s] %s", e.Code, e.Message)
    if e.Original != nil {
        return fmt.Sprintf("%s: %v", base, e.Original)
    }
    return base
}

func (e *WireError) Unwrap() error {
    return e.Original
}

func New(code ErrorCode, msg string) *WireError {
    def, ok := predefinedErrors[code]
    if !ok {
        def = predefinedErrors[ErrUnknown]
    }

    if msg == "" {
        msg = def
    }

    err := &WireError{
        Code:    code,
        Message: msg,
    }

    // Automatically capture caller information for debugging
    if pc, file, line, ok := runtime.Caller(1); ok {
        err.file = file
        err.line = line
        if fn := runtime.FuncForPC(pc); fn != nil {
            err.function = fn.Name()
        }
    }

    return err
}

func Newf(code ErrorCode, format string, args ...interface{}) *WireError {
    return New(code, fmt.Sprintf(format, args...))
}

func Wrap(err error, code ErrorCode, msg string) *WireError {
    if err == nil {
        return nil
    }

    // If already a WireError, update its fields instead of creating new one
    if wireErr, ok := err.(*WireError); ok {
        if code != "" {
            wireErr.Code = code
        }

        if msg != "" {
            wireErr.Message = msg
        }

        if pc, file, line, ok := runtime.Caller(1); ok {
            wireErr.file = file
            wireErr.line = line
            if fn := runtime.FuncForPC(pc); fn != nil {
                wireErr.function = fn.Name()
            }
        }

        return wireErr
    }

    // Create a new WireError wrapping the original
    wireErr := New(code, msg)
    wireErr.Original = err

    if pc, file, line, ok := runtime.Caller(1); ok {
        wireErr.file = file
        wireErr.line = line
        if fn := runtime.FuncForPC(pc); fn != nil {
            wireErr.function = fn.Name()
        }
    }

    return wireErr
}

func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *WireError {
    return Wrap(err, code, fmt.Sprintf(format, args...))
}

func Is(err error, code ErrorCode) bool {
    if err == nil {
        return false
    }

    var wireErr *WireError
    if errors.As(err, &wireErr) {
        return wireErr.Code == code
    }

    return false
}

// Implements the safety rule of checking function preconditions and postconditions
func Assert(condition bool, code ErrorCode, message string) error {
    if !condition {
        return New(code, message)
    }
    return nil
}

func AssertWithError(condition bool, err error) error {
    if !condition {
        return err
    }
    return nil
}

// For critical assertions where failure indicates a programming error
func MustAssert(condition bool, message string) {
    if !condition {
        panic(New(ErrInternal, "Assertion failed: "+message))
    }
}

// Logs errors with appropriate context
func LogError(logger *zerolog.Logger, err error) {
    if err == nil || logger == nil {
        return
    }

    event := logger.Error().Err(err)

    // Add caller information based on error type
    if wireErr, ok := err.(*WireError); ok {
        shortFile := wireErr.file
        if idx := strings.LastIndex(shortFile, "/"); idx >= 0 {
            shortFile = shortFile[idx+1:]
        }

        event = event.
            Str("error_code", string(wireErr.Code)).
            Str("file", shortFile).
            Int("line", wireErr.line).
            Str("function", wireErr.function)
    } else if pc, file, line, ok := runtime.Caller(1); ok {
        shortFile := file
        if idx := strings.LastIndex(file, "/"); idx >= 0 {
            shortFile = file[idx+1:]
        }

        funcName := "unknown"
        if fn := runtime.FuncForPC(pc); fn != nil {
            funcName = fn.Name()
            if idx := strings.LastIndex(funcName, "."); idx >= 0 {
                funcName = funcName[idx+1:]
            }
        }

        event = event.Str("file", shortFile).Int("line", line).Str("function", funcName)
    }

    event.Msg("[wirehdr-error] Error occurred")
}
