package epperr

import (
	"fmt"
	"net"
)

// ConnectionError reports a failure to establish the TCP/TLS connection
// to the registry. The session remains disconnected; no partially open
// connection is left behind.
type ConnectionError struct {
	Addr string
	Err  error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("epp: connect %s: %v", e.Addr, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// Connection returns a new ConnectionError for the given address.
func Connection(addr string, err error) *ConnectionError {
	return &ConnectionError{Addr: addr, Err: err}
}

// TransportError reports a mid-session socket failure: connection
// reset, short read or write, or an I/O timeout. The session is dead;
// the caller must reconnect.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("epp: transport %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Timeout reports whether the transport failure was an I/O deadline
// expiry. Only then may the caller consider a retry, and only for
// idempotent commands.
func (e *TransportError) Timeout() bool {
	if ne, ok := e.Err.(net.Error); ok {
		return ne.Timeout()
	}
	return false
}

// Transport returns a new TransportError for the named I/O operation.
func Transport(op string, err error) *TransportError {
	return &TransportError{Op: op, Err: err}
}

// FrameError reports a malformed length header received from the peer.
// The connection must be closed; nothing after a bad header can be
// trusted.
type FrameError struct {
	Declared uint32
	Limit    int
	Message  string
}

func (e *FrameError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("epp: bad frame: %s (declared length %d)", e.Message, e.Declared)
	}
	return fmt.Sprintf("epp: bad frame: declared length %d exceeds limit %d", e.Declared, e.Limit)
}

// Frame returns a new FrameError.
func Frame(declared uint32, limit int, message string) *FrameError {
	return &FrameError{Declared: declared, Limit: limit, Message: message}
}

// ParseError reports response XML which is not well formed or lacks
// required structure. RawResponse carries the offending payload for
// diagnostics; session state is unchanged.
type ParseError struct {
	Message     string
	RawResponse []byte
	Err         error
}

func (e *ParseError) Error() string {
	msg := "epp: parse response"
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if len(e.RawResponse) > 0 {
		msg += fmt.Sprintf(" (raw response: %q)", e.RawResponse)
	}
	return msg
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse returns a new ParseError with the given message and options.
func Parse(message string, opts ...ParseOption) *ParseError {
	e := &ParseError{Message: message}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// EmptyResponseError reports a syntactically valid response carrying no
// result element at all. This is distinguished from ParseError because
// it indicates a registry-side defect rather than wire corruption.
type EmptyResponseError struct {
	RawResponse []byte
}

func (e *EmptyResponseError) Error() string {
	return "epp: response contains no result"
}

// EmptyResponse returns a new EmptyResponseError holding the raw payload.
func EmptyResponse(raw []byte) *EmptyResponseError {
	return &EmptyResponseError{RawResponse: raw}
}

// ProtocolSequenceError reports a violation of the request/response
// discipline: a clTRID echo mismatch, or a command issued in a session
// state which forbids it. This is an integration error and should not
// occur in correct usage.
type ProtocolSequenceError struct {
	Message string
}

func (e *ProtocolSequenceError) Error() string {
	return "epp: protocol sequence: " + e.Message
}

// Sequence returns a new ProtocolSequenceError.
func Sequence(format string, args ...interface{}) *ProtocolSequenceError {
	return &ProtocolSequenceError{Message: fmt.Sprintf(format, args...)}
}
