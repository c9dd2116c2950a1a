package web

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thelolagemann/sm83/pkg/trace"
)

func dial(t *testing.T, h *Hub) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestHub_Broadcast(t *testing.T) {
	h := NewHub(nil)
	conn := dial(t, h)

	require.Eventually(t, func() bool { return h.Clients() == 1 }, time.Second, 5*time.Millisecond)

	h.Trace(trace.Event{Step: 7, PC: 0x0200, Opcode: 0xCD, Name: "CALL a16"})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)

	var e trace.Event
	require.NoError(t, json.Unmarshal(msg, &e))
	assert.Equal(t, trace.Event{Step: 7, PC: 0x0200, Opcode: 0xCD, Name: "CALL a16"}, e)
}

func TestHub_NoClients(t *testing.T) {
	h := NewHub(nil)
	assert.NotPanics(t, func() { h.Trace(trace.Event{}) })
	assert.Equal(t, 0, h.Clients())
}

func TestHub_Close(t *testing.T) {
	h := NewHub(nil)
	conn := dial(t, h)
	require.Eventually(t, func() bool { return h.Clients() == 1 }, time.Second, 5*time.Millisecond)

	h.Close()
	assert.Equal(t, 0, h.Clients())

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err := conn.ReadMessage()
	assert.Error(t, err)

	// tracing after close is a no-op
	assert.NotPanics(t, func() { h.Trace(trace.Event{}) })
}

func TestHub_Disconnect(t *testing.T) {
	h := NewHub(nil)
	conn := dial(t, h)
	require.Eventually(t, func() bool { return h.Clients() == 1 }, time.Second, 5*time.Millisecond)

	require.NoError(t, conn.Close())
	require.Eventually(t, func() bool { return h.Clients() == 0 }, time.Second, 5*time.Millisecond)
}
