package lispy

import (
	"errors"
	"io"
	"net"
	"time"

	"github.com/lemon-mint/frameio"
	"github.com/lemon-mint/lispy/packet"
	"github.com/valyala/bytebufferpool"
	"go.uber.org/zap"
)

func (s *Server) handleConn(c net.Conn) {
	log := s.Logger.With(zap.Stringer("remote", c.RemoteAddr()))
	log.Debug("connection opened")
	defer log.Debug("connection closed")

	bufr := frameio.BufioPool.GetReader(c)
	bufw := frameio.BufioPool.GetWriter(c)
	defer frameio.BufioPool.PutReader(bufr)
	defer frameio.BufioPool.PutWriter(bufw)

	r, w := frameio.NewFrameReader(bufr), frameio.NewFrameWriter(bufw)
	buffer := bytebufferpool.Get()
	defer bytebufferpool.Put(buffer)

	var req packet.Request
	for {
		if s.ConnTimeout > 0 {
			if err := c.SetReadDeadline(time.Now().Add(s.ConnTimeout)); err != nil {
				connError(log, "SetReadDeadline", err)
				return
			}
		}
		data, err := r.Read()
		if err != nil {
			connError(log, "Read", err)
			return
		}
		if err := req.Unmarshal(data); err != nil {
			connError(log, "Unmarshal", err)
			return
		}

		resp := s.Handle(&req)
		if resp.Status == packet.Status_ERROR {
			log.Warn("request failed", zap.Stringer("type", req.Type), zap.String("error", resp.Error))
		}

		buffer.B = resp.AppendTo(buffer.B[:0])
		if s.ConnTimeout > 0 {
			if err := c.SetWriteDeadline(time.Now().Add(s.ConnTimeout)); err != nil {
				connError(log, "SetWriteDeadline", err)
				return
			}
		}
		if err := w.Write(buffer.B); err != nil {
			connError(log, "Write", err)
			return
		}
		if err := bufw.Flush(); err != nil {
			connError(log, "Flush", err)
			return
		}
	}
}

func connError(log *zap.Logger, op string, err error) {
	if errors.Is(err, io.EOF) || errors.Is(err, net.ErrClosed) {
		return
	}
	log.Warn("connection error", zap.String("op", op), zap.Error(err))
}
