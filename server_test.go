package lispy_test

import (
	"net"
	"testing"
	"time"

	"github.com/lemon-mint/lispy"
	"github.com/lemon-mint/lispy/client"
	"github.com/lemon-mint/lispy/fhash"
	"github.com/lemon-mint/lispy/magic"
	"github.com/lemon-mint/lispy/packet"
	"github.com/lemon-mint/lispy/slowtable"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newTable(t *testing.T, n uint8, opts ...slowtable.Option) *slowtable.Table {
	tab, err := slowtable.NewTable(fhash.New(magic.Uniform(1)), n, opts...)
	require.NoError(t, err)
	return tab
}

func TestHandle(t *testing.T) {
	s := lispy.NewServer(newTable(t, 2), 0)

	resp := s.Handle(&packet.Request{Type: packet.Type_PING})
	require.Equal(t, packet.Status_OK, resp.Status)

	resp = s.Handle(&packet.Request{Type: packet.Type_SIZE})
	require.Equal(t, uint32(4), resp.Size)

	resp = s.Handle(&packet.Request{Type: packet.Type_PUT, Key: []byte("a"), Value: []byte("1")})
	require.Equal(t, packet.Status_OK, resp.Status)
	resp = s.Handle(&packet.Request{Type: packet.Type_PUT, Key: []byte("b"), Value: []byte("2"), Copy: true})
	require.Equal(t, packet.Status_OK, resp.Status)

	resp = s.Handle(&packet.Request{Type: packet.Type_GET, Key: []byte("a")})
	require.Equal(t, packet.Status_OK, resp.Status)
	require.Equal(t, "1", string(resp.Value))

	resp = s.Handle(&packet.Request{Type: packet.Type_DEL, Key: []byte("a")})
	require.Equal(t, packet.Status_OK, resp.Status)

	resp = s.Handle(&packet.Request{Type: packet.Type_GET, Key: []byte("a")})
	require.Equal(t, packet.Status_NOT_FOUND, resp.Status)

	resp = s.Handle(&packet.Request{Type: packet.Type_GET, Key: []byte("b")})
	require.Equal(t, "2", string(resp.Value))

	resp = s.Handle(&packet.Request{Type: packet.Type(77)})
	require.Equal(t, packet.Status_ERROR, resp.Status)
	require.Contains(t, resp.Error, "Type(77)")
}

func TestGetCopiesOwnedValue(t *testing.T) {
	s := lispy.NewServer(newTable(t, 2), 0)
	s.Handle(&packet.Request{Type: packet.Type_PUT, Key: []byte("k"), Value: []byte("old"), Copy: true})

	got := s.Handle(&packet.Request{Type: packet.Type_GET, Key: []byte("k")}).Value
	s.Handle(&packet.Request{Type: packet.Type_PUT, Key: []byte("k"), Value: []byte("new"), Copy: true})

	require.Equal(t, "old", string(got))
}

func serve(t *testing.T, s *lispy.Server) string {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	s.Ln = ln

	done := make(chan error, 1)
	go func() { done <- s.Serve() }()
	t.Cleanup(func() {
		require.NoError(t, s.Close())
		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("Serve did not return after Close")
		}
	})
	return ln.Addr().String()
}

func TestServeRoundTrip(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	s := lispy.NewServer(newTable(t, 2), 8)
	s.Logger = zap.New(core)
	s.StatsInterval = 0
	addr := serve(t, s)

	c, err := client.Dial(addr, time.Second)
	require.NoError(t, err)
	defer c.Close()

	require.NoError(t, c.Ping())

	size, err := c.Size()
	require.NoError(t, err)
	require.Equal(t, uint32(4), size)

	require.NoError(t, c.Put([]byte("a"), []byte("1"), false))
	require.NoError(t, c.Put([]byte("b"), []byte("2"), true))

	v, err := c.Get([]byte("a"))
	require.NoError(t, err)
	require.Equal(t, "1", string(v))

	require.NoError(t, c.Delete([]byte("a")))
	_, err = c.Get([]byte("a"))
	require.ErrorIs(t, err, client.ErrNotFound)

	v, err = c.Get([]byte("b"))
	require.NoError(t, err)
	require.Equal(t, "2", string(v))

	require.Equal(t, 1, logs.FilterMessage("serving table").Len())
}

func TestClientRedials(t *testing.T) {
	s := lispy.NewServer(newTable(t, 4), 0)
	s.StatsInterval = 0
	addr := serve(t, s)

	c := client.NewClient(addr, time.Second)
	defer c.Close()

	require.NoError(t, c.Put("key", []byte("value"), true))
	v, err := c.Get("key")
	require.NoError(t, err)
	require.Equal(t, "value", string(v))

	_, err = c.Get("missing")
	require.ErrorIs(t, err, client.ErrNotFound)

	require.NoError(t, c.Close())
	require.NoError(t, c.Delete("key"))
	_, err = c.Get("key")
	require.ErrorIs(t, err, client.ErrNotFound)

	size, err := c.Size()
	require.NoError(t, err)
	require.Equal(t, uint32(16), size)
}

func TestStatsReport(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	s := lispy.NewServer(newTable(t, 1), 0)
	s.Logger = zap.New(core)
	s.StatsInterval = 10 * time.Millisecond
	addr := serve(t, s)

	c, err := client.Dial(addr, time.Second)
	require.NoError(t, err)
	defer c.Close()
	require.NoError(t, c.Ping())

	require.Eventually(t, func() bool {
		return logs.FilterMessage("stats").Len() > 0
	}, 5*time.Second, 10*time.Millisecond)
}

func TestCloseIdempotent(t *testing.T) {
	s := lispy.NewServer(newTable(t, 1), 0)
	s.StatsInterval = 0
	serve(t, s)
	require.NoError(t, s.Close())
}

func TestServeWithoutListener(t *testing.T) {
	s := lispy.NewServer(newTable(t, 1), 0)
	require.Error(t, s.Serve())
}

func TestConnectionLimit(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	s := lispy.NewServer(newTable(t, 1), 1)
	s.Logger = zap.New(core)
	s.StatsInterval = 0
	addr := serve(t, s)

	first, err := client.Dial(addr, time.Second)
	require.NoError(t, err)
	defer first.Close()
	require.NoError(t, first.Ping())

	second, err := client.Dial(addr, time.Second)
	require.NoError(t, err)
	defer second.Close()
	require.Error(t, second.Ping())
	require.Equal(t, 1, logs.FilterMessage("connection limit reached, dropping connection").Len())

	// the first connection is unaffected
	require.NoError(t, first.Ping())

	// once it goes away a new connection is served again
	require.NoError(t, first.Close())
	require.Eventually(t, func() bool {
		c, err := client.Dial(addr, time.Second)
		if err != nil {
			return false
		}
		defer c.Close()
		return c.Ping() == nil
	}, 5*time.Second, 20*time.Millisecond)
}
