package network

import (
	"errors"
	"net"

	"github.com/ratel-online/core/util/async"
)

type Tcp struct {
	addr    string
	handler *Handler
}

func NewTcpServer(addr string, handler *Handler) Tcp {
	return Tcp{addr: addr, handler: handler}
}

func (t Tcp) Serve() error {
	listener, err := net.Listen("tcp", t.addr)
	if err != nil {
		t.handler.logger.WithError(err).Error("tcp listen")
		return err
	}
	return t.ServeListener(listener)
}

// ServeListener accepts connections on listener until it is closed.
func (t Tcp) ServeListener(listener net.Listener) error {
	log := t.handler.logger.WithField("addr", listener.Addr().String())
	log.Info("Tcp server listening")
	for {
		conn, err := listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			log.WithError(err).Info("listener.Accept err")
			continue
		}
		async.Async(func() {
			if err := t.handler.handle(conn, conn.RemoteAddr().String()); err != nil {
				log.WithError(err).Error("session ended")
			}
		})
	}
}
