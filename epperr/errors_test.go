package epperr

import (
	"errors"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeNetError struct{ timeout bool }

func (e *fakeNetError) Error() string   { return "fake" }
func (e *fakeNetError) Timeout() bool   { return e.timeout }
func (e *fakeNetError) Temporary() bool { return false }

var _ net.Error = &fakeNetError{}

func TestTransportTimeout(t *testing.T) {
	ck := assert.New(t)
	ck.True(Transport("read", &fakeNetError{timeout: true}).Timeout())
	ck.False(Transport("read", &fakeNetError{}).Timeout())
	ck.False(Transport("read", errors.New("reset")).Timeout())
}

func TestUnwrap(t *testing.T) {
	ck := assert.New(t)
	cause := errors.New("boom")

	var ce *ConnectionError
	err := fmt.Errorf("dial: %w", Connection("epp.example:700", cause))
	ck.True(errors.As(err, &ce))
	ck.Equal(cause, ce.Err)
	ck.True(errors.Is(err, cause))

	var pe *ParseError
	err = Parse("missing trID", WithCause(cause), WithRawResponse([]byte("<epp/>")))
	ck.True(errors.As(err, &pe))
	ck.Equal([]byte("<epp/>"), pe.RawResponse)
	ck.True(errors.Is(err, cause))
}

func TestMessages(t *testing.T) {
	for _, tc := range []struct {
		err  error
		want string
	}{
		{Connection("host:700", errors.New("refused")), "epp: connect host:700: refused"},
		{Transport("write", errors.New("broken pipe")), "epp: transport write: broken pipe"},
		{Frame(2, 0, "declared length below header size"), "epp: bad frame: declared length below header size (declared length 2)"},
		{Frame(1 << 30, 1 << 24, ""), "epp: bad frame: declared length 1073741824 exceeds limit 16777216"},
		{EmptyResponse([]byte("<epp/>")), "epp: response contains no result"},
		{Sequence("clTRID mismatch: sent %q, got %q", "a-1", "a-2"), `epp: protocol sequence: clTRID mismatch: sent "a-1", got "a-2"`},
	} {
		assert.Equal(t, tc.want, tc.err.Error())
	}
}

func TestTransportTimeoutDeadline(t *testing.T) {
	// real deadline expiry must be reported as a timeout
	c1, c2 := net.Pipe()
	defer c1.Close()
	defer c2.Close()
	c1.SetReadDeadline(time.Now().Add(time.Millisecond))
	buf := make([]byte, 1)
	_, err := c1.Read(buf)
	te := Transport("read", err)
	assert.True(t, te.Timeout())
}
