package websocket

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/findjobsyria/api/internal/app/models"
	"github.com/gin-gonic/gin"
	gorilla "github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubPushToUser(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	go hub.Run()
	defer hub.Close()

	alice := newClient(hub, nil, "alice", zerolog.Nop())
	bob := newClient(hub, nil, "bob", zerolog.Nop())
	hub.register <- alice
	hub.register <- bob
	require.Eventually(t, func() bool { return hub.ClientCount("alice") == 1 && hub.ClientCount("bob") == 1 }, time.Second, 5*time.Millisecond)

	hub.PushToUser("alice", EventNotification, map[string]string{"title": "hi"})

	select {
	case data := <-alice.send:
		var ev Event
		require.NoError(t, json.Unmarshal(data, &ev))
		assert.Equal(t, EventNotification, ev.Type)
	case <-time.After(time.Second):
		t.Fatal("alice did not receive the event")
	}

	select {
	case <-bob.send:
		t.Fatal("bob must not receive alice's event")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHubPushWithoutClientsIsNoop(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	hub.PushToUser("nobody", EventMessage, "x")
	assert.Len(t, hub.deliver, 0)
}

func TestHubUnregister(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	go hub.Run()
	defer hub.Close()

	c := newClient(hub, nil, "alice", zerolog.Nop())
	hub.register <- c
	hub.unregister <- c

	require.Eventually(t, func() bool { return hub.ClientCount("alice") == 0 }, time.Second, 5*time.Millisecond)
	_, open := <-c.send
	assert.False(t, open)
}

func TestHandlerRejectsAnonymous(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hub := NewHub(zerolog.Nop())
	h := NewHandler(hub, func(*gin.Context) (models.Identity, bool) { return models.Identity{}, false }, zerolog.Nop())

	r := gin.New()
	r.GET("/ws", h.HandleConnection)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ws", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandlerDeliversEvents(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hub := NewHub(zerolog.Nop())
	go hub.Run()
	defer hub.Close()

	h := NewHandler(hub, func(*gin.Context) (models.Identity, bool) { return models.Identity{ID: "alice"}, true }, zerolog.Nop())
	r := gin.New()
	r.GET("/ws", h.HandleConnection)

	srv := httptest.NewServer(r)
	defer srv.Close()

	conn, _, err := gorilla.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/ws", nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.ClientCount("alice") == 1 }, time.Second, 5*time.Millisecond)
	hub.PushToUser("alice", EventMessage, map[string]string{"content": "مرحبا"})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var ev Event
	require.NoError(t, json.Unmarshal(data, &ev))
	assert.Equal(t, EventMessage, ev.Type)
	assert.Equal(t, "مرحبا", ev.Payload.(map[string]interface{})["content"])
}
