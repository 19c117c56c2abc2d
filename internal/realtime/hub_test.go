package realtime

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

func dialHub(t *testing.T, hub *Hub) (*websocket.Conn, func()) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/ws", hub.HandleWS)
	srv := httptest.NewServer(router)

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)

	return conn, func() {
		conn.Close()
		srv.Close()
	}
}

func TestHub_BroadcastReachesSubscriber(t *testing.T) {
	hub := NewHub()
	conn, teardown := dialHub(t, hub)
	defer teardown()

	require.Eventually(t, func() bool { return hub.Count() == 1 }, time.Second, 10*time.Millisecond)

	hub.Broadcast("bid_update", map[string]any{"lot_id": 1, "bid_amount": 2300.0})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var frame Event
	require.NoError(t, conn.ReadJSON(&frame))
	require.Equal(t, "bid_update", frame.Event)

	data, ok := frame.Data.(map[string]any)
	require.True(t, ok)
	require.Equal(t, 1.0, data["lot_id"])
	require.Equal(t, 2300.0, data["bid_amount"])
}

func TestHub_DisconnectedSubscriberIsDropped(t *testing.T) {
	hub := NewHub()
	conn, teardown := dialHub(t, hub)
	defer teardown()

	require.Eventually(t, func() bool { return hub.Count() == 1 }, time.Second, 10*time.Millisecond)

	conn.Close()
	require.Eventually(t, func() bool { return hub.Count() == 0 }, time.Second, 10*time.Millisecond)

	// Broadcasting with no subscribers is a harmless no-op.
	hub.Broadcast("bid_update", map[string]any{"lot_id": 2, "bid_amount": 2400.0})
}
