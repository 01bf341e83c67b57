package network

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/ratel-online/core/util/async"
)

type Websocket struct {
	addr    string
	handler *Handler
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func NewWebsocketServer(addr string, handler *Handler) Websocket {
	return Websocket{addr: addr, handler: handler}
}

func (w Websocket) Serve() error {
	w.handler.logger.WithField("addr", w.addr).Info("Websocket server listening")
	return http.ListenAndServe(w.addr, w.Mux())
}

// Mux routes /ws to the session handler.
func (w Websocket) Mux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", w.serveWs)
	return mux
}

func (w Websocket) serveWs(rw http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(rw, r, nil)
	if err != nil {
		w.handler.logger.WithError(err).Warn("websocket upgrade")
		return
	}
	async.Async(func() {
		if err := w.handler.handle(newWebsocketReadWriteCloser(conn), r.RemoteAddr); err != nil {
			w.handler.logger.WithError(err).Error("session ended")
		}
	})
}

// websocketReadWriteCloser turns text messages into input lines and every write into one
// text message.
type websocketReadWriteCloser struct {
	conn    *websocket.Conn
	pending bytes.Buffer
}

func newWebsocketReadWriteCloser(conn *websocket.Conn) *websocketReadWriteCloser {
	return &websocketReadWriteCloser{conn: conn}
}

func (w *websocketReadWriteCloser) Read(p []byte) (int, error) {
	for w.pending.Len() == 0 {
		_, data, err := w.conn.ReadMessage()
		var closed *websocket.CloseError
		if errors.As(err, &closed) {
			return 0, io.EOF
		}
		if err != nil {
			return 0, err
		}
		w.pending.Write(data)
		if len(data) == 0 || data[len(data)-1] != '\n' {
			w.pending.WriteByte('\n')
		}
	}
	return w.pending.Read(p)
}

func (w *websocketReadWriteCloser) Write(p []byte) (int, error) {
	if err := w.conn.WriteMessage(websocket.TextMessage, p); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (w *websocketReadWriteCloser) Close() error {
	return w.conn.Close()
}
