package wirehdr

import (
	"runtime"
	"strconv"

	"github.com/google/uuid"
)

// Pre-compiled common header names as byte slices for zero-allocation header construction
var (
	headerNameHostBytes             = []byte("Host")
	headerNameContentLengthBytes    = []byte("Content-Length")
	headerNameContentTypeBytes      = []byte("Content-Type")
	headerNameTransferEncodingBytes = []byte("Transfer-Encoding")
	headerNameUserAgentBytes        = []byte("User-Agent")
	headerNameAcceptBytes           = []byte("Accept")
	headerNameXRequestIDBytes       = []byte("X-Request-ID")

	// Common content types
	contentTypeJSONBytes        = []byte("application/json")
	contentTypeOctetStreamBytes = []byte("application/octet-stream")
)

// HeaderName constants for type-safe header operations
const (
	HeaderNameHost             = "Host"
	HeaderNameContentLength    = "Content-Length"
	HeaderNameContentType      = "Content-Type"
	HeaderNameTransferEncoding = "Transfer-Encoding"
	HeaderNameUserAgent        = "User-Agent"
	HeaderNameAccept           = "Accept"
	HeaderNameXRequestID       = "X-Request-ID"
)

// ContentType constants
const (
	ContentTypeJSON        = "application/json"
	ContentTypeOctetStream = "application/octet-stream"
)

// Prebuilt common headers, raw-assembled once at package load
var (
	HeaderContentTypeJSON        = newHeaderRaw([]byte("Content-Type:application/json\r\n"))
	HeaderContentTypeOctetStream = newHeaderRaw([]byte("Content-Type:application/octet-stream\r\n"))
)

// CreateContentLength builds a Content-Length header, decimal-formatting the
// length straight into the wire buffer.
func CreateContentLength(length int64) Header {
	wire := make([]byte, 0, len(headerNameContentLengthBytes)+20+headerOverhead)
	wire = append(wire, headerNameContentLengthBytes...)
	wire = append(wire, ':')
	wire = strconv.AppendInt(wire, length, 10)
	wire = append(wire, '\r', '\n')
	return newHeaderRaw(wire)
}

// CreateHost builds a Host header from raw host bytes.
func CreateHost(host []byte) Header {
	return NewHeaderBytes(headerNameHostBytes, host)
}

// CreateUserAgent builds a User-Agent header of the form
// "[applicationID ]sdkName/sdkVersion (GOOS; GOARCH)". Fails only when an
// input carries non-ASCII text.
func CreateUserAgent(sdkName, sdkVersion, applicationID string) (Header, error) {
	ua := sdkName + "/" + sdkVersion + " (" + runtime.GOOS + "; " + runtime.GOARCH + ")"
	if applicationID != "" {
		ua = applicationID + " " + ua
	}
	return NewHeaderBytesText(headerNameUserAgentBytes, ua)
}

// CreateRequestID builds an X-Request-ID header carrying a fresh UUID.
func CreateRequestID() Header {
	return NewHeaderBytes(headerNameXRequestIDBytes, []byte(uuid.NewString()))
}
