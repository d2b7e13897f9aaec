package framing

import (
	"bufio"
	"encoding/binary"
	"io"

	"github.com/regkit/epp/epperr"
)

const (
	// HeaderLen is the size of the frame length header in bytes.
	HeaderLen = 4

	// DefaultLimit is the default maximum total frame length accepted
	// from the peer. Registry responses are small; anything near this
	// limit indicates a broken or hostile peer.
	DefaultLimit = 16 << 20
)

// Append appends the framed representation of payload to dst: a 4 byte
// big-endian length header counting itself plus the payload, followed
// by the payload.
func Append(dst, payload []byte) []byte {
	var hdr [HeaderLen]byte
	binary.BigEndian.PutUint32(hdr[:], uint32(HeaderLen+len(payload)))
	dst = append(dst, hdr[:]...)
	return append(dst, payload...)
}

// PutHeader writes the length header for a payload of n bytes into b.
// b must be at least HeaderLen bytes long.
func PutHeader(b []byte, n int) {
	binary.BigEndian.PutUint32(b, uint32(HeaderLen+n))
}

// ParseHeader decodes a frame length header and returns the payload
// length it declares. A declared total below HeaderLen or above limit
// is a frame error; the connection carrying it must be closed.
func ParseHeader(hdr []byte, limit int) (int, error) {
	if len(hdr) < HeaderLen {
		return 0, epperr.Frame(0, limit, "short length header")
	}
	total := binary.BigEndian.Uint32(hdr)
	if total < HeaderLen {
		return 0, epperr.Frame(total, limit, "declared length below header size")
	}
	if limit > 0 && total > uint32(limit) {
		return 0, epperr.Frame(total, limit, "")
	}
	return int(total) - HeaderLen, nil
}

// Split returns a bufio.SplitFunc decoding a stream of length-prefixed
// frames, yielding one token per frame payload.
//
// endOfFrame, if non-nil, is called once per decoded frame. Input
// terminating mid-frame yields io.ErrUnexpectedEOF. The Scanner buffer
// must be able to hold limit bytes.
func Split(limit int, endOfFrame func()) bufio.SplitFunc {
	return func(b []byte, atEOF bool) (advance int, token []byte, err error) {
		if len(b) < HeaderLen {
			if atEOF && len(b) > 0 {
				return 0, nil, io.ErrUnexpectedEOF
			}
			return 0, nil, nil
		}
		plen, err := ParseHeader(b, limit)
		if err != nil {
			return 0, nil, err
		}
		if len(b) < HeaderLen+plen {
			if atEOF {
				return 0, nil, io.ErrUnexpectedEOF
			}
			return 0, nil, nil
		}
		if endOfFrame != nil {
			endOfFrame()
		}
		token = b[HeaderLen : HeaderLen+plen]
		if token == nil {
			token = []byte{}
		}
		return HeaderLen + plen, token, nil
	}
}
