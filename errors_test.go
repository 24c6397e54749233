package wirehdr

import (
    "bytes"
    "strings"
    "testing"

    "github.com/rs/zerolog"
)

func TestErrorCodes(t *testing.T) {
    err := New(ErrBufferTooSmall, "")
    if !Is(err, ErrBufferTooSmall) {
        t.Errorf("Is should match the error's own code")
    }
    if Is(err, ErrInvalidEncoding) {
        t.Errorf("Is should not match a different code")
    }
    if !strings.Contains(err.Error(), "err_buffer_too_small") {
        t.Errorf("Error string should carry the code, got %q", err.Error())
    }
    if err.Message != predefinedErrors[ErrBufferTooSmall] {
        t.Errorf("Empty message should fall back to the predefined one, got %q", err.Message)
    }
}

func TestWrapPreservesCode(t *testing.T) {
    inner := New(ErrInvalidEncoding, "bad byte")

    // Wrapping with an empty code keeps the original classification.
    wrapped := Wrap(inner, "", "header value not ASCII-representable")
    if !Is(wrapped, ErrInvalidEncoding) {
        t.Errorf("Wrap with empty code should preserve err_invalid_encoding")
    }
    if wrapped.Message != "header value not ASCII-representable" {
        t.Errorf("Wrap should replace the message, got %q", wrapped.Message)
    }

    if Wrap(nil, ErrInternal, "x") != nil {
        t.Errorf("Wrapping nil should stay nil")
    }
}

func TestLogErrorEmitsCode(t *testing.T) {
    var buf bytes.Buffer
    log := zerolog.New(&buf)

    LogError(&log, New(ErrUnsupportedFormat, ""))

    out := buf.String()
    if !strings.Contains(out, "err_unsupported_format") {
        t.Errorf("Log record should carry the error code, got %q", out)
    }
    if !strings.Contains(out, "errors_test.go") {
        t.Errorf("Log record should carry the capture site, got %q", out)
    }

    buf.Reset()
    LogError(&log, nil)
    if buf.Len() != 0 {
        t.Errorf("Nil errors should not be logged")
    }
}

func TestSetupWirehdrLogger(t *testing.T) {
    prev := GetLogger()
    defer SetupWirehdrLogger(prev)

    log := zerolog.New(zerolog.NewTestWriter(t))
    SetupWirehdrLogger(&log)
    if GetLogger() != &log {
        t.Errorf("SetupWirehdrLogger should install the given logger")
    }
}
