package network_test

import (
	"bufio"
	"net"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/ratel-online/uno/database"
	"github.com/ratel-online/uno/network"
	"github.com/ratel-online/uno/session"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func newHandler(t *testing.T) *network.Handler {
	color.SetEnabled(false)
	t.Cleanup(func() { color.SetEnabled(true) })
	logger, _ := test.NewNullLogger()
	return network.NewHandler(database.NewMemory(), logger, session.Settings{}, 1)
}

func readUntil(t *testing.T, reader *bufio.Reader, text string) string {
	seen := strings.Builder{}
	for !strings.Contains(seen.String(), text) {
		line, err := reader.ReadString('\n')
		require.NoError(t, err, seen.String())
		seen.WriteString(line)
	}
	return seen.String()
}

func TestTcp(t *testing.T) {
	handler := newHandler(t)
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	done := make(chan error, 1)
	go func() {
		done <- network.NewTcpServer("", handler).ServeListener(listener)
	}()

	conn, err := net.Dial("tcp", listener.Addr().String())
	require.NoError(t, err)
	require.NoError(t, conn.SetDeadline(time.Now().Add(10*time.Second)))
	reader := bufio.NewReader(conn)

	readUntil(t, reader, "What's your name?")
	require.Eventually(t, func() bool { return len(handler.Sessions()) == 1 }, time.Second, 10*time.Millisecond)
	_, err = conn.Write([]byte("Ann\n"))
	require.NoError(t, err)
	readUntil(t, reader, "1. Ann, 2. Watson (computer)")
	_, err = conn.Write([]byte("8\n"))
	require.NoError(t, err)
	readUntil(t, reader, "Bye!")
	require.NoError(t, conn.Close())

	require.Eventually(t, func() bool { return len(handler.Sessions()) == 0 }, time.Second, 10*time.Millisecond)
	require.NoError(t, listener.Close())
	require.NoError(t, <-done)
}

func TestWebsocket(t *testing.T) {
	handler := newHandler(t)
	server := httptest.NewServer(network.NewWebsocketServer("", handler).Mux())
	defer server.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(server.URL, "http")+"/ws", nil)
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(10*time.Second)))

	read := func(text string) {
		seen := strings.Builder{}
		for !strings.Contains(seen.String(), text) {
			_, data, err := conn.ReadMessage()
			require.NoError(t, err, seen.String())
			seen.Write(data)
		}
	}
	read("What's your name?")
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("Ann")))
	read("2. Watson (computer)")
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("8")))
	read("Bye!")
}
