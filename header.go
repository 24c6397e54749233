package wirehdr

import "bytes"

// Header is one HTTP header held as the exact bytes it occupies on the wire:
// <name>':'<value>'\r''\n' in a single contiguous buffer, sized once at
// construction and never mutated afterwards. Name and Value return borrowed
// slices into that buffer; they stay valid as long as the Header does.
//
// The encoder never inserts a space after the colon. Callers that want the
// conventional "Name: Value" spacing put the space in their value input, and
// the Value accessor trims it back out. Equality is over the raw wire bytes,
// so that leading space still makes two headers unequal.
//
// Name and value bytes must not themselves contain a colon if round-trip
// extraction through the accessors is required; construction does not check.
type Header struct {
	wire []byte
}

const headerOverhead = 3 // ':' + CRLF

// Serialization format selector for TryWrite. The wire buffer supports
// exactly one form; anything but FormatDefault is rejected.
type Format uint8

const FormatDefault Format = 0

// newHeaderRaw wraps a pre-built buffer that already satisfies the wire
// layout. Only the well-known builders hand-assemble buffers this way.
func newHeaderRaw(wire []byte) Header {
	return Header{wire: wire}
}

// NewHeaderBytes builds a header from raw wire bytes. No encoding validation:
// the caller guarantees both inputs are already valid wire bytes.
func NewHeaderBytes(name, value []byte) Header {
	wire := make([]byte, 0, len(name)+len(value)+headerOverhead)
	wire = append(wire, name...)
	wire = append(wire, ':')
	wire = append(wire, value...)
	wire = append(wire, '\r', '\n')
	return Header{wire: wire}
}

// NewHeaderBytesText builds a header from a raw name and a textual value.
// The value goes through the strict ASCII codec; a non-ASCII value fails the
// whole construction and no header is produced.
func NewHeaderBytesText(name []byte, value string) (Header, error) {
	wire := make([]byte, len(name)+len(value)+headerOverhead)
	n := copy(wire, name)
	wire[n] = ':'
	n++
	vn, err := TryEncodeASCII(value, wire[n:len(wire)-2])
	if err != nil {
		return Header{}, Wrap(err, "", "header value not ASCII-representable")
	}
	n += vn
	wire[n] = '\r'
	wire[n+1] = '\n'
	return Header{wire: wire}, nil
}

// NewHeader builds a header from textual name and value, both through the
// strict ASCII codec. Fails if either side is not ASCII-representable.
func NewHeader(name, value string) (Header, error) {
	wire := make([]byte, len(name)+len(value)+headerOverhead)
	n, err := TryEncodeASCII(name, wire[:len(name)])
	if err != nil {
		return Header{}, Wrap(err, "", "header name not ASCII-representable")
	}
	wire[n] = ':'
	n++
	vn, err := TryEncodeASCII(value, wire[n : len(wire)-2])
	if err != nil {
		return Header{}, Wrap(err, "", "header value not ASCII-representable")
	}
	n += vn
	wire[n] = '\r'
	wire[n+1] = '\n'
	return Header{wire: wire}, nil
}

// Name returns the name view: everything up to the separator colon, with
// ASCII spaces immediately before the colon trimmed by walking backward.
// Note the deliberate asymmetry with Value, which walks forward; the two can
// disagree when a name contains an embedded colon with spaces around it.
func (h Header) Name() []byte {
	i := bytes.IndexByte(h.wire, ':')
	if i < 0 {
		return nil
	}
	for i > 0 && h.wire[i-1] == ' ' {
		i--
	}
	return h.wire[:i]
}

// Value returns the value view: everything after the separator colon up to
// the trailing CRLF, skipping ASCII spaces forward from the colon.
func (h Header) Value() []byte {
	i := bytes.IndexByte(h.wire, ':')
	if i < 0 {
		return nil
	}
	i++
	for i < len(h.wire)-2 && h.wire[i] == ' ' {
		i++
	}
	return h.wire[i : len(h.wire)-2]
}

// Wire returns the full wire buffer as a borrowed, read-only view.
func (h Header) Wire() []byte {
	return h.wire
}

// Size is the number of bytes TryWrite needs in its destination.
func (h Header) Size() int {
	return len(h.wire)
}

// Empty reports whether h is the zero Header (failed or absent construction).
func (h Header) Empty() bool {
	return len(h.wire) == 0
}

// Equal reports exact wire-byte equality. Headers differing only in
// whitespace around the colon are unequal even when the accessors agree.
func (h Header) Equal(other Header) bool {
	return bytes.Equal(h.wire, other.wire)
}

// String renders the buffer minus the trailing CRLF as ASCII text, e.g.
// "Content-Length:42". A buffer holding non-ASCII bytes (possible only via
// the unvalidated byte constructors) is rendered as-is.
func (h Header) String() string {
	if len(h.wire) < headerOverhead {
		return ""
	}
	s, err := TryDecodeASCII(h.wire[:len(h.wire)-2])
	if err != nil {
		return string(h.wire[:len(h.wire)-2])
	}
	return s
}

// TryWrite copies the wire buffer whole into dst and returns the byte count.
// Only FormatDefault is supported; a too-small dst fails with zero bytes
// written and dst untouched.
func (h Header) TryWrite(dst []byte, f Format) (int, error) {
	if f != FormatDefault {
		return 0, Newf(ErrUnsupportedFormat, "format %d not supported by wire headers", f)
	}
	if len(dst) < len(h.wire) {
		return 0, Newf(ErrBufferTooSmall, "header needs %d bytes, destination has %d", len(h.wire), len(dst))
	}
	return copy(dst, h.wire), nil
}
