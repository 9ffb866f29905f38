// Package lispy serves a slowtable.Table over TCP.
//
// Every connection carries frameio frames, each holding one
// packet.Request answered by one packet.Response. The table itself is
// single-threaded, so the server serializes every request behind one
// mutex.
package lispy

import (
	"context"
	"errors"
	"net"
	"sync"
	"time"

	"github.com/bytedance/gopkg/util/gopool"
	"github.com/lemon-mint/lispy/packet"
	"github.com/lemon-mint/lispy/slowtable"
	"go.uber.org/atomic"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const (
	DefaultConnTimeout   = time.Second * 15
	DefaultMaxConns      = 4096
	DefaultStatsInterval = time.Second * 10
)

type Server struct {
	Ln net.Listener

	// ConnTimeout bounds how long a connection may sit idle between
	// requests.
	ConnTimeout time.Duration

	// StatsInterval is how often request counters are logged. Zero
	// disables the report.
	StatsInterval time.Duration

	Logger *zap.Logger

	mu    sync.Mutex
	table *slowtable.Table

	pool     gopool.Pool
	maxConns int32

	connMu sync.Mutex
	conns  map[net.Conn]struct{}

	requests   atomic.Int64
	rpsCounter atomic.Int64
	clients    atomic.Int64
	closed     atomic.Bool

	statsStop chan struct{}
}

// NewServer returns a server for table accepting at most maxConns
// concurrent connections; connections past the limit are closed as soon
// as they are accepted. maxConns <= 0 selects DefaultMaxConns.
func NewServer(table *slowtable.Table, maxConns int32) *Server {
	if maxConns <= 0 {
		maxConns = DefaultMaxConns
	}
	s := &Server{
		table:         table,
		ConnTimeout:   DefaultConnTimeout,
		StatsInterval: DefaultStatsInterval,
		Logger:        zap.NewNop(),
		conns:         make(map[net.Conn]struct{}),
		statsStop:     make(chan struct{}),
		maxConns:      maxConns,
	}
	s.pool = gopool.NewPool("lispy", maxConns, gopool.NewConfig())
	s.pool.SetPanicHandler(func(_ context.Context, r interface{}) {
		s.Logger.Error("connection handler panicked", zap.Any("panic", r))
	})
	return s
}

// Serve accepts connections on s.Ln until Close is called.
func (s *Server) Serve() error {
	if s.Ln == nil {
		return errors.New("lispy: no listener")
	}
	s.Logger.Info("serving table",
		zap.Stringer("addr", s.Ln.Addr()),
		zap.Uint32("buckets", s.table.Size()),
		zap.Bool("fingerprint_only", s.table.FingerprintOnly()),
	)
	if s.StatsInterval > 0 {
		go s.stats()
	}

	for {
		conn, err := s.Ln.Accept()
		if err != nil {
			if s.closed.Load() {
				return nil
			}
			return err
		}
		if s.clients.Load() >= int64(s.maxConns) {
			s.Logger.Warn("connection limit reached, dropping connection",
				zap.Stringer("remote", conn.RemoteAddr()),
				zap.Int32("max_conns", s.maxConns),
			)
			conn.Close()
			continue
		}
		if !s.track(conn) {
			conn.Close()
			return nil
		}
		s.clients.Inc()
		s.pool.Go(func() {
			defer s.clients.Dec()
			defer s.untrack(conn)
			s.handleConn(conn)
		})
	}
}

// Close stops the listener and drops every open connection.
func (s *Server) Close() error {
	if !s.closed.CAS(false, true) {
		return nil
	}
	close(s.statsStop)

	var err error
	if s.Ln != nil {
		err = multierr.Append(err, s.Ln.Close())
	}
	s.connMu.Lock()
	for c := range s.conns {
		err = multierr.Append(err, c.Close())
		delete(s.conns, c)
	}
	s.connMu.Unlock()
	return err
}

func (s *Server) track(c net.Conn) bool {
	s.connMu.Lock()
	defer s.connMu.Unlock()
	if s.closed.Load() {
		return false
	}
	s.conns[c] = struct{}{}
	return true
}

func (s *Server) untrack(c net.Conn) {
	s.connMu.Lock()
	_, ok := s.conns[c]
	delete(s.conns, c)
	s.connMu.Unlock()
	if ok {
		c.Close()
	}
}

// Handle applies req to the table.
func (s *Server) Handle(req *packet.Request) packet.Response {
	s.requests.Inc()
	s.rpsCounter.Inc()

	s.mu.Lock()
	defer s.mu.Unlock()

	switch req.Type {
	case packet.Type_PING:
		return packet.Response{Status: packet.Status_OK}
	case packet.Type_GET:
		v, ok := s.table.Get(req.Key)
		if !ok {
			return packet.Response{Status: packet.Status_NOT_FOUND}
		}
		// owned values may be released once the lock is dropped
		return packet.Response{Status: packet.Status_OK, Value: append([]byte(nil), v...)}
	case packet.Type_PUT:
		copyLen := 0
		if req.Copy {
			copyLen = len(req.Value)
		}
		// req.Value was decoded into a fresh buffer nobody else holds,
		// so it can be borrowed for the lifetime of the binding.
		if err := s.table.Put(req.Key, req.Value, copyLen); err != nil {
			return packet.Response{Status: packet.Status_ERROR, Error: err.Error()}
		}
		return packet.Response{Status: packet.Status_OK}
	case packet.Type_DEL:
		s.table.Delete(req.Key)
		return packet.Response{Status: packet.Status_OK}
	case packet.Type_SIZE:
		return packet.Response{Status: packet.Status_OK, Size: s.table.Size()}
	}
	return packet.Response{Status: packet.Status_ERROR, Error: "unknown request type " + req.Type.String()}
}

func (s *Server) stats() {
	ticker := time.NewTicker(s.StatsInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			n := s.rpsCounter.Swap(0)
			s.Logger.Info("stats",
				zap.Float64("rps", float64(n)/s.StatsInterval.Seconds()),
				zap.Int64("requests", s.requests.Load()),
				zap.Int64("clients", s.clients.Load()),
			)
		case <-s.statsStop:
			return
		}
	}
}
