// Package client talks to a lispy table server.
package client

import (
	"errors"
	"sync"
	"time"
)

// Client keeps one connection to endpoint and redials it after a
// transport failure.
type Client struct {
	endpoint string
	timeout  time.Duration

	mu   sync.Mutex
	conn *Conn
}

func NewClient(endpoint string, timeout time.Duration) *Client {
	return &Client{
		endpoint: endpoint,
		timeout:  timeout,
	}
}

func (c *Client) get() (*Conn, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn != nil {
		return c.conn, nil
	}
	conn, err := Dial(c.endpoint, c.timeout)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	return conn, nil
}

// do runs fn on the current connection. Transport errors drop the
// connection so the next call dials again.
func (c *Client) do(fn func(*Conn) error) error {
	conn, err := c.get()
	if err != nil {
		return err
	}
	err = fn(conn)
	if err == nil || errors.Is(err, ErrNotFound) || errors.Is(err, ErrServer) {
		return err
	}
	c.mu.Lock()
	if c.conn == conn {
		c.conn = nil
		conn.Close()
	}
	c.mu.Unlock()
	return err
}

func (c *Client) Ping() error {
	return c.do(func(conn *Conn) error { return conn.Ping() })
}

func (c *Client) Get(key string) (value []byte, err error) {
	err = c.do(func(conn *Conn) error {
		value, err = conn.Get([]byte(key))
		return err
	})
	return value, err
}

func (c *Client) Put(key string, value []byte, copyValue bool) error {
	return c.do(func(conn *Conn) error { return conn.Put([]byte(key), value, copyValue) })
}

func (c *Client) Delete(key string) error {
	return c.do(func(conn *Conn) error { return conn.Delete([]byte(key)) })
}

func (c *Client) Size() (size uint32, err error) {
	err = c.do(func(conn *Conn) error {
		size, err = conn.Size()
		return err
	})
	return size, err
}

func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn == nil {
		return nil
	}
	err := c.conn.Close()
	c.conn = nil
	return err
}
