package client

import (
	"bufio"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/lemon-mint/frameio"
	"github.com/lemon-mint/lispy/packet"
	"github.com/valyala/bytebufferpool"
)

var (
	ErrNotFound = errors.New("client: key not found")
	ErrServer   = errors.New("client: server error")
)

// Conn is a single connection to a table server. Requests on one Conn
// are sent one at a time.
type Conn struct {
	mu sync.Mutex

	conn    net.Conn
	w       *bufio.Writer
	fr      frameio.FrameReader
	fw      frameio.FrameWriter
	timeout time.Duration
}

// Dial connects to addr. A non-zero timeout bounds the dial and every
// request.
func Dial(addr string, timeout time.Duration) (*Conn, error) {
	conn, err := net.DialTimeout("tcp", addr, timeout)
	if err != nil {
		return nil, err
	}
	return NewConn(conn, timeout), nil
}

// NewConn wraps an established connection.
func NewConn(conn net.Conn, timeout time.Duration) *Conn {
	c := &Conn{
		conn:    conn,
		w:       bufio.NewWriter(conn),
		timeout: timeout,
	}
	c.fr = frameio.NewFrameReader(bufio.NewReader(conn))
	c.fw = frameio.NewFrameWriter(c.w)
	return c
}

func (c *Conn) roundTrip(req *packet.Request) (packet.Response, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var resp packet.Response
	if c.timeout > 0 {
		if err := c.conn.SetDeadline(time.Now().Add(c.timeout)); err != nil {
			return resp, err
		}
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	buf.B = req.AppendTo(buf.B[:0])
	if err := c.fw.Write(buf.B); err != nil {
		return resp, fmt.Errorf("write %s: %w", req.Type, err)
	}
	if err := c.w.Flush(); err != nil {
		return resp, fmt.Errorf("write %s: %w", req.Type, err)
	}

	data, err := c.fr.Read()
	if err != nil {
		return resp, fmt.Errorf("read %s: %w", req.Type, err)
	}
	if err := resp.Unmarshal(data); err != nil {
		return resp, err
	}
	switch resp.Status {
	case packet.Status_OK:
		return resp, nil
	case packet.Status_NOT_FOUND:
		return resp, ErrNotFound
	}
	return resp, fmt.Errorf("%w: %s", ErrServer, resp.Error)
}

func (c *Conn) Ping() error {
	_, err := c.roundTrip(&packet.Request{Type: packet.Type_PING})
	return err
}

// Get returns the value bound to key, or ErrNotFound.
func (c *Conn) Get(key []byte) ([]byte, error) {
	resp, err := c.roundTrip(&packet.Request{Type: packet.Type_GET, Key: key})
	if err != nil {
		return nil, err
	}
	return resp.Value, nil
}

// Put binds key to value. With copyValue set the server stores a private
// copy of value; otherwise it keeps the decoded request buffer.
func (c *Conn) Put(key, value []byte, copyValue bool) error {
	_, err := c.roundTrip(&packet.Request{Type: packet.Type_PUT, Key: key, Value: value, Copy: copyValue})
	return err
}

func (c *Conn) Delete(key []byte) error {
	_, err := c.roundTrip(&packet.Request{Type: packet.Type_DEL, Key: key})
	return err
}

// Size returns the number of buckets in the server's table.
func (c *Conn) Size() (uint32, error) {
	resp, err := c.roundTrip(&packet.Request{Type: packet.Type_SIZE})
	if err != nil {
		return 0, err
	}
	return resp.Size, nil
}

func (c *Conn) Close() error {
	return c.conn.Close()
}
