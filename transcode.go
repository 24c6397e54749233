package wirehdr

import "unicode/utf8"

// Transcoding between Go text and wire byte encodings, writing directly into
// caller-supplied buffers. Callers size the destination once up front (Go
// strings already carry their UTF-8 byte length), so the hot path performs no
// allocation of its own. On any failure the destination is left untouched:
// callers never observe a partial write.

// TryEncodeUTF8 writes the UTF-8 encoding of text into dst and returns the
// number of bytes written. If dst cannot hold the full encoding it returns
// (0, err_buffer_too_small) without modifying dst.
func TryEncodeUTF8(text string, dst []byte) (int, error) {
	if len(dst) < len(text) {
		return 0, Newf(ErrBufferTooSmall, "utf8 encode needs %d bytes, destination has %d", len(text), len(dst))
	}
	return copy(dst, text), nil
}

// TryEncodeASCII writes the strict 7-bit ASCII encoding of text into dst.
// Any code point outside 0-127 fails with err_invalid_encoding; there is no
// replacement rule. Validation runs before the size check and before any
// write, same no-partial-output contract as TryEncodeUTF8.
func TryEncodeASCII(text string, dst []byte) (int, error) {
	for i := 0; i < len(text); i++ {
		if text[i] >= utf8.RuneSelf {
			return 0, Newf(ErrInvalidEncoding, "non-ASCII byte 0x%02x at offset %d", text[i], i)
		}
	}
	if len(dst) < len(text) {
		return 0, Newf(ErrBufferTooSmall, "ascii encode needs %d bytes, destination has %d", len(text), len(dst))
	}
	return copy(dst, text), nil
}

// TryDecodeASCII interprets b as strict ASCII and returns the corresponding
// string. Used for human-readable formatting, never on the construction path.
func TryDecodeASCII(b []byte) (string, error) {
	for i := 0; i < len(b); i++ {
		if b[i] >= utf8.RuneSelf {
			return "", Newf(ErrInvalidEncoding, "non-ASCII byte 0x%02x at offset %d", b[i], i)
		}
	}
	return string(b), nil
}
