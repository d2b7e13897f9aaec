package session

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/regkit/epp/codec"
	"github.com/regkit/epp/command"
	"github.com/regkit/epp/epperr"
	"github.com/regkit/epp/response"
	"github.com/regkit/epp/schema"
	"github.com/regkit/epp/transport"
)

// State is the lifecycle position of a client.
type State int

const (
	// Disconnected is the initial state; no connection exists.
	Disconnected State = iota
	// Connected means the greeting has been received but no registrar
	// is authenticated. Only login may be sent.
	Connected
	// Authenticated means login succeeded; any command but login may
	// be sent.
	Authenticated
	// Closed is terminal. The connection is released and the client
	// cannot be reused.
	Closed
)

func (s State) String() string {
	switch s {
	case Disconnected:
		return "disconnected"
	case Connected:
		return "connected"
	case Authenticated:
		return "authenticated"
	case Closed:
		return "closed"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Dialer opens the frame carrier for a session. The default dials the
// registry over TLS; tests substitute in-process pipes.
type Dialer func() (transport.Transport, error)

// Option configures a Client.
type Option func(*Client)

// WithLogger installs a diagnostic logger. Raw request and response
// frames are logged at debug level.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// WithDialer replaces the TLS dialer.
func WithDialer(dial Dialer) Option {
	return func(c *Client) { c.dial = dial }
}

// Client is an EPP session over a single connection. It enforces the
// command sequencing the protocol requires: greeting before login,
// login before anything else, logout last. Safe for concurrent use;
// commands are serialized over the half-duplex connection.
type Client struct {
	set    schema.Set
	enc    *codec.Encoder
	parser *response.Parser
	dial   Dialer
	log    zerolog.Logger

	mu       sync.Mutex
	state    State
	tr       transport.Transport
	greeting *response.Greeting

	trPrefix string
	trSeq    int
}

// NewClient returns a disconnected client for the registry described
// by cfg, speaking the namespaces of set.
func NewClient(cfg transport.Config, set schema.Set, opts ...Option) *Client {
	c := &Client{
		set:      set,
		enc:      codec.NewEncoder(set),
		parser:   response.NewParser(set),
		dial:     func() (transport.Transport, error) { return transport.Dial(cfg) },
		log:      zerolog.Nop(),
		trPrefix: uuid.NewString()[:8],
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the current lifecycle state.
func (c *Client) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Greeting returns the most recent greeting, nil before Connect.
func (c *Client) Greeting() *response.Greeting {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.greeting
}

// Connect opens the connection and reads the server greeting. On any
// failure the connection is released and the client stays
// disconnected, so Connect may be retried.
func (c *Client) Connect() (*response.Greeting, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != Disconnected {
		return nil, epperr.Sequence("connect in state %s", c.state)
	}

	tr, err := c.dial()
	if err != nil {
		return nil, err
	}
	raw, err := tr.ReadFrame()
	if err != nil {
		tr.Close()
		return nil, err
	}
	c.log.Debug().Str("frame", string(raw)).Msg("greeting received")

	greeting, err := c.parser.ParseGreeting(raw)
	if err != nil {
		tr.Close()
		return nil, err
	}
	c.tr = tr
	c.greeting = greeting
	c.state = Connected
	return greeting, nil
}

// Send puts one command on the wire and decodes its answer. A response
// with a failure code is returned as a response, not an error; errors
// mean the exchange itself broke. Login must be the first command of a
// session and transitions to Authenticated on success; logout releases
// the connection whatever the server answered.
func (c *Client) Send(cmd command.Command) (*response.Response, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, isLogin := cmd.(command.Login)
	switch c.state {
	case Connected:
		if !isLogin {
			return nil, epperr.Sequence("only login may be sent before authentication")
		}
	case Authenticated:
		if isLogin {
			return nil, epperr.Sequence("session is already authenticated")
		}
	default:
		return nil, epperr.Sequence("send in state %s", c.state)
	}

	d := cmd.Details(c.set)
	clTRID := c.nextTRID()

	var frame []byte
	var err error
	if d.ExtCommand {
		frame, err = c.enc.Extension(d.Payload, d.Spec, clTRID)
	} else {
		frame, err = c.enc.Command(d.Payload, d.Spec, d.Exts, clTRID)
	}
	if err != nil {
		return nil, err
	}

	// Logout is terminal once the frame goes out: the server drops the
	// connection whatever it answered, so the session ends even when
	// the reply cannot be decoded.
	if _, isLogout := cmd.(command.Logout); isLogout {
		defer c.release()
	}

	raw, err := c.exchange(frame)
	if err != nil {
		return nil, err
	}
	resp, err := c.parser.Parse(raw, d.Extract)
	if err != nil {
		return nil, err
	}
	if resp.ClTRID != clTRID {
		return nil, epperr.Sequence("clTRID mismatch: sent %q, response echoes %q", clTRID, resp.ClTRID)
	}

	if isLogin && resp.Success() {
		c.state = Authenticated
	}
	return resp, nil
}

// Hello asks for a fresh greeting without disturbing session state.
func (c *Client) Hello() (*response.Greeting, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != Connected && c.state != Authenticated {
		return nil, epperr.Sequence("hello in state %s", c.state)
	}

	frame, err := c.enc.Hello()
	if err != nil {
		return nil, err
	}
	raw, err := c.exchange(frame)
	if err != nil {
		return nil, err
	}
	greeting, err := c.parser.ParseGreeting(raw)
	if err != nil {
		return nil, err
	}
	c.greeting = greeting
	return greeting, nil
}

// Close releases the connection without a logout exchange. Idempotent;
// the client ends up Closed either way.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.tr == nil {
		c.state = Closed
		return nil
	}
	tr := c.tr
	c.release()
	return tr.Close()
}

// exchange writes one frame and reads the answer. A transport failure
// kills the session; the connection is released immediately.
func (c *Client) exchange(frame []byte) ([]byte, error) {
	c.log.Debug().Str("frame", string(frame)).Msg("command sent")
	if err := c.tr.WriteFrame(frame); err != nil {
		c.release()
		return nil, err
	}
	raw, err := c.tr.ReadFrame()
	if err != nil {
		c.release()
		return nil, err
	}
	c.log.Debug().Str("frame", string(raw)).Msg("response received")
	return raw, nil
}

// release drops the connection and makes the client terminal. Callers
// hold the mutex.
func (c *Client) release() {
	if c.tr != nil {
		c.tr.Close()
		c.tr = nil
	}
	c.state = Closed
}

// nextTRID returns a fresh client transaction id: a session-unique
// prefix plus a monotonic counter, so queued registry logs line up
// with client logs.
func (c *Client) nextTRID() string {
	c.trSeq++
	return fmt.Sprintf("%s-%04d", c.trPrefix, c.trSeq)
}
