package wirehdr

import (
	"sync"

	"github.com/bytedance/sonic"
)

// Test doubles for exercising callers of Transport and the logging setup
// without a network or process-global log capture. Both are explicit,
// injected collaborators.

// ScriptedTransport replays a fixed ordered list of status codes, cycling
// modulo its length. It only accepts *Request messages; anything else is an
// immediate incompatible-transport failure.
type ScriptedTransport struct {
	codes []int
	next  int
	sent  []*Request
}

func NewScriptedTransport(codes ...int) *ScriptedTransport {
	return &ScriptedTransport{codes: codes}
}

func (t *ScriptedTransport) Send(m Message) (int, error) {
	req, ok := m.(*Request)
	if !ok || req == nil {
		return 0, Newf(ErrIncompatibleTransport, "scripted transport handles *Request, got %T", m)
	}
	if len(t.codes) == 0 {
		return 0, New(ErrInternal, "scripted transport has no status codes")
	}
	code := t.codes[t.next%len(t.codes)]
	t.next++
	t.sent = append(t.sent, req)
	return code, nil
}

// Sent returns the requests accepted so far, in order.
func (t *ScriptedTransport) Sent() []*Request {
	return t.sent
}

// CollectedRecord is one captured log event: its event name and the detail
// payload it carried.
type CollectedRecord struct {
	Event  string
	Detail string
}

// LogCollector is an io.Writer log sink for zerolog. Hand it to the logger
// under test (zerolog.New(collector)); it decodes each record and keeps the
// (event, detail) pairs whose "source" field matches the configured name.
// Records without a matching source, and non-JSON noise, are ignored.
type LogCollector struct {
	source string

	mu      sync.Mutex
	records []CollectedRecord
}

func NewLogCollector(source string) *LogCollector {
	return &LogCollector{source: source}
}

func (c *LogCollector) Write(p []byte) (int, error) {
	var rec struct {
		Source string `json:"source"`
		Event  string `json:"event"`
		Detail string `json:"detail"`
	}
	if err := sonic.Unmarshal(p, &rec); err != nil {
		return len(p), nil
	}
	if rec.Source != c.source {
		return len(p), nil
	}

	c.mu.Lock()
	c.records = append(c.records, CollectedRecord{Event: rec.Event, Detail: rec.Detail})
	c.mu.Unlock()
	return len(p), nil
}

// Records returns a copy of the captured pairs.
func (c *LogCollector) Records() []CollectedRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]CollectedRecord, len(c.records))
	copy(out, c.records)
	return out
}

func (c *LogCollector) Reset() {
	c.mu.Lock()
	c.records = nil
	c.mu.Unlock()
}
