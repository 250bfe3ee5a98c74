package handlers

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Advik20-coder/agri-mitra-samarth/models"
)

// The pub/sub forwarder and the read loop both send frames over the same
// connection, which allows only one concurrent writer. The guarded wrapper
// must serialize them; an unguarded connection panics under this load.
func TestSafeConnSerializesConcurrentWrites(t *testing.T) {
	const frames = 32
	upgrader := websocket.Upgrader{}
	serverDone := make(chan struct{})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer close(serverDone)
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Error(err)
			return
		}
		wsc := newSafeConn(conn)

		var wg sync.WaitGroup
		for i := 0; i < frames; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				wsc.writeJSON(models.WSResponse{Type: "message", Text: strconv.Itoa(i)})
			}(i)
		}
		wg.Wait()
		conn.Close()
	}))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer client.Close()

	received := 0
	for {
		var resp models.WSResponse
		if err := client.ReadJSON(&resp); err != nil {
			break
		}
		assert.Equal(t, "message", resp.Type)
		received++
	}
	assert.Equal(t, frames, received)
	<-serverDone
}

func TestCheckOrigin(t *testing.T) {
	h := &WSHandler{allowedOrigins: map[string]bool{"https://agrimitra.example.com": true}}

	req := httptest.NewRequest(http.MethodGet, "/ws", nil)
	req.Header.Set("Origin", "https://agrimitra.example.com")
	assert.True(t, h.checkOrigin(req))

	req.Header.Set("Origin", "https://evil.example.com")
	assert.False(t, h.checkOrigin(req))

	// No Origin header means a non-browser client.
	req.Header.Del("Origin")
	assert.True(t, h.checkOrigin(req))

	// An empty allow-list admits everything.
	open := &WSHandler{allowedOrigins: map[string]bool{}}
	req.Header.Set("Origin", "https://anywhere.example.com")
	assert.True(t, open.checkOrigin(req))
}
