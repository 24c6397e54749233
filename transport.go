package wirehdr

import "github.com/google/uuid"

// Message is the seam between header construction and whatever moves the
// bytes. Implementations expose the headers to serialize and the body to
// attach; they do not own any pipeline behavior.
type Message interface {
	Headers() []Header
	Body() []byte
}

// Transport sends one message and reports the response status code.
type Transport interface {
	Send(m Message) (int, error)
}

// Request is the message a caller composes: an ordered header list plus an
// optional body, stamped with a UUID for correlation.
type Request struct {
	UUID    string
	headers []Header
	body    []byte
}

func NewRequest() *Request {
	return &Request{UUID: uuid.NewString()}
}

// AddHeader appends h to the request. Zero headers (failed constructions)
// are dropped rather than serialized as bare "\r\n" noise.
func (r *Request) AddHeader(h Header) {
	if h.Empty() {
		return
	}
	r.headers = append(r.headers, h)
}

func (r *Request) SetBody(body []byte) {
	r.body = body
}

func (r *Request) Headers() []Header {
	return r.headers
}

func (r *Request) Body() []byte {
	return r.body
}

// HeadersSize is the destination size TryWriteHeaders requires.
func (r *Request) HeadersSize() int {
	total := 0
	for _, h := range r.headers {
		total += h.Size()
	}
	return total
}

// TryWriteHeaders serializes every header verbatim into dst, in insertion
// order. Same contract as Header.TryWrite: all or nothing, dst untouched on
// failure.
func (r *Request) TryWriteHeaders(dst []byte) (int, error) {
	need := r.HeadersSize()
	if len(dst) < need {
		return 0, Newf(ErrBufferTooSmall, "header block needs %d bytes, destination has %d", need, len(dst))
	}
	n := 0
	for _, h := range r.headers {
		w, err := h.TryWrite(dst[n:], FormatDefault)
		if err != nil {
			return 0, err
		}
		n += w
	}
	return n, nil
}
