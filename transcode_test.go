package wirehdr

import (
    "bytes"
    "testing"
)

func TestTryEncodeASCIIExactBuffer(t *testing.T) {
    text := "Content-Length"
    dst := make([]byte, len(text))

    n, err := TryEncodeASCII(text, dst)
    if err != nil {
        t.Fatalf("Exact-size encode should succeed, got %v", err)
    }
    if n != len(text) {
        t.Errorf("Expected %d bytes written, got %d", len(text), n)
    }
    if string(dst) != text {
        t.Errorf("Destination should hold %q, got %q", text, dst)
    }
}

func TestTryEncodeASCIIBufferOneShort(t *testing.T) {
    text := "Content-Length"
    dst := make([]byte, len(text)-1)
    dst[0] = 0xEE // sentinel: a failed encode must not touch the destination

    n, err := TryEncodeASCII(text, dst)
    if !Is(err, ErrBufferTooSmall) {
        t.Fatalf("Expected err_buffer_too_small, got %v", err)
    }
    if n != 0 {
        t.Errorf("Failed encode should report 0 bytes written, got %d", n)
    }
    if dst[0] != 0xEE {
        t.Errorf("Failed encode modified the destination buffer: first byte is 0x%02x", dst[0])
    }
}

func TestTryEncodeASCIIRejectsNonASCII(t *testing.T) {
    dst := make([]byte, 64)
    dst[0] = 0xEE

    n, err := TryEncodeASCII("héllo", dst)
    if !Is(err, ErrInvalidEncoding) {
        t.Fatalf("Expected err_invalid_encoding, got %v", err)
    }
    if n != 0 {
        t.Errorf("Invalid encode should report 0 bytes written, got %d", n)
    }
    if dst[0] != 0xEE {
        t.Errorf("Invalid encode modified the destination buffer")
    }
}

func TestTryEncodeUTF8(t *testing.T) {
    text := "héllo" // 6 bytes of UTF-8
    dst := make([]byte, len(text))

    n, err := TryEncodeUTF8(text, dst)
    if err != nil {
        t.Fatalf("UTF-8 encode should succeed, got %v", err)
    }
    if n != len(text) {
        t.Errorf("Expected %d bytes written, got %d", len(text), n)
    }
    if !bytes.Equal(dst, []byte(text)) {
        t.Errorf("Destination should hold the UTF-8 bytes of %q", text)
    }

    short := make([]byte, len(text)-1)
    short[0] = 0xEE
    n, err = TryEncodeUTF8(text, short)
    if !Is(err, ErrBufferTooSmall) {
        t.Fatalf("Expected err_buffer_too_small, got %v", err)
    }
    if n != 0 {
        t.Errorf("Failed encode should report 0 bytes written, got %d", n)
    }
    if short[0] != 0xEE {
        t.Errorf("Failed encode modified the destination buffer")
    }
}

func TestTryDecodeASCIIRoundTrip(t *testing.T) {
    original := "application/json"
    buf := make([]byte, len(original))
    if _, err := TryEncodeASCII(original, buf); err != nil {
        t.Fatalf("Encode failed: %v", err)
    }

    decoded, err := TryDecodeASCII(buf)
    if err != nil {
        t.Fatalf("Decode failed: %v", err)
    }
    if decoded != original {
        t.Errorf("Round trip should yield %q, got %q", original, decoded)
    }
}

func TestTryDecodeASCIIRejectsHighBytes(t *testing.T) {
    _, err := TryDecodeASCII([]byte{'o', 'k', 0x80})
    if !Is(err, ErrInvalidEncoding) {
        t.Errorf("Expected err_invalid_encoding for byte 0x80, got %v", err)
    }
}
