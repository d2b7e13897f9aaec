package transport

import (
	"crypto/tls"
	"io"
	"net"
	"strconv"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/regkit/epp/epperr"
	"github.com/regkit/epp/framing"
)

// DefaultPort is the IANA registered EPP port.
const DefaultPort = 700

// DefaultTimeout bounds each blocking I/O call unless configured
// otherwise. A stalled registry must never hang the caller forever.
const DefaultTimeout = 30 * time.Second

// Transport is a carrier of discrete protocol frames. The session
// layer depends on this interface only, so tests and alternative
// carriers can stand in for the TLS connection.
type Transport interface {
	// ReadFrame blocks until one complete frame payload is read.
	ReadFrame() ([]byte, error)
	// WriteFrame writes one complete frame carrying payload.
	WriteFrame(payload []byte) error
	// Close releases the connection. It is idempotent.
	Close() error
}

// Config describes how to reach the registry.
type Config struct {
	// Host is the registry hostname.
	Host string
	// Port is the registry port. Zero selects DefaultPort.
	Port int
	// CertFile and KeyFile hold the client certificate and private
	// key for mutual TLS authentication.
	CertFile string
	KeyFile  string
	// Timeout bounds the TLS dial and each subsequent read or write.
	// Zero selects DefaultTimeout.
	Timeout time.Duration
	// FrameLimit is the maximum accepted total frame length. Zero
	// selects framing.DefaultLimit.
	FrameLimit int
	// InsecureSkipVerify disables server certificate and hostname
	// verification. Test registries frequently require this.
	InsecureSkipVerify bool
	// TLS, when non-nil, is used verbatim and the certificate and
	// verification fields above are ignored.
	TLS *tls.Config
}

// Addr returns the host:port address of the registry.
func (c Config) Addr() string {
	port := c.Port
	if port == 0 {
		port = DefaultPort
	}
	return net.JoinHostPort(c.Host, strconv.Itoa(port))
}

func (c Config) tlsConfig() (*tls.Config, error) {
	if c.TLS != nil {
		return c.TLS, nil
	}
	cfg := &tls.Config{
		ServerName:         c.Host,
		InsecureSkipVerify: c.InsecureSkipVerify,
	}
	if c.CertFile != "" || c.KeyFile != "" {
		cert, err := tls.LoadX509KeyPair(c.CertFile, c.KeyFile)
		if err != nil {
			return nil, errors.Wrap(err, "load client certificate")
		}
		cfg.Certificates = []tls.Certificate{cert}
	}
	return cfg, nil
}

// Dial opens the TLS connection to the registry described by cfg.
// Dial does not read the greeting; that is the session's job.
func Dial(cfg Config) (*Conn, error) {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	tlsCfg, err := cfg.tlsConfig()
	if err != nil {
		return nil, epperr.Connection(cfg.Addr(), err)
	}
	dialer := &net.Dialer{Timeout: timeout}
	conn, err := tls.DialWithDialer(dialer, "tcp", cfg.Addr(), tlsCfg)
	if err != nil {
		return nil, epperr.Connection(cfg.Addr(), err)
	}
	return NewConn(conn, timeout, cfg.FrameLimit), nil
}

// Conn frames traffic over a single network connection. Conn is not
// safe for concurrent use; the protocol is strictly half duplex with
// one outstanding request, so callers serialize access naturally.
type Conn struct {
	conn    net.Conn
	timeout time.Duration
	limit   int

	closeOnce sync.Once
	closeErr  error
}

// NewConn wraps an established network connection. timeout bounds each
// read or write call (zero selects DefaultTimeout, negative disables
// deadlines); limit caps the accepted frame length (zero selects
// framing.DefaultLimit).
func NewConn(conn net.Conn, timeout time.Duration, limit int) *Conn {
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	if limit == 0 {
		limit = framing.DefaultLimit
	}
	return &Conn{conn: conn, timeout: timeout, limit: limit}
}

// ReadFrame reads exactly one frame from the connection, looping over
// partial reads internally. A peer closing mid-frame is a transport
// error, never a short result.
func (c *Conn) ReadFrame() ([]byte, error) {
	if err := c.deadline(); err != nil {
		return nil, epperr.Transport("read", err)
	}
	var hdr [framing.HeaderLen]byte
	if _, err := io.ReadFull(c.conn, hdr[:]); err != nil {
		return nil, epperr.Transport("read header", err)
	}
	plen, err := framing.ParseHeader(hdr[:], c.limit)
	if err != nil {
		return nil, err
	}
	payload := make([]byte, plen)
	if _, err := io.ReadFull(c.conn, payload); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return nil, epperr.Transport("read payload", err)
	}
	return payload, nil
}

// WriteFrame writes header and payload as a single logical operation.
func (c *Conn) WriteFrame(payload []byte) error {
	if err := c.deadline(); err != nil {
		return epperr.Transport("write", err)
	}
	buf := framing.Append(make([]byte, 0, framing.HeaderLen+len(payload)), payload)
	if _, err := c.conn.Write(buf); err != nil {
		return epperr.Transport("write", err)
	}
	return nil
}

// Close releases the connection unconditionally. Further calls return
// the first result.
func (c *Conn) Close() error {
	c.closeOnce.Do(func() { c.closeErr = c.conn.Close() })
	return c.closeErr
}

func (c *Conn) deadline() error {
	if c.timeout < 0 {
		return nil
	}
	return c.conn.SetDeadline(time.Now().Add(c.timeout))
}
