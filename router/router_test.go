package router

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Advik20-coder/agri-mitra-samarth/adapters"
	"github.com/Advik20-coder/agri-mitra-samarth/advisor"
	"github.com/Advik20-coder/agri-mitra-samarth/locale"
	"github.com/Advik20-coder/agri-mitra-samarth/metrics"
	"github.com/Advik20-coder/agri-mitra-samarth/models"
	"github.com/Advik20-coder/agri-mitra-samarth/session"
)

// unreachableClient returns a Redis client that fails fast. Persistence and
// publish errors are logged, not fatal, so the dispatch path still runs.
func unreachableClient() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
}

func newTestRouter(recorder *metrics.Recorder) *Router {
	rdb := unreachableClient()
	return New(rdb,
		session.NewManager(rdb, time.Hour, 50),
		locale.NewResolver(rdb, time.Hour, "hi", zap.NewNop()),
		advisor.New(), 0, recorder, zap.NewNop())
}

func streamMessage(t *testing.T, env models.MessageEnvelope) redis.XMessage {
	t.Helper()
	data, err := json.Marshal(env)
	require.NoError(t, err)
	return redis.XMessage{ID: "1-1", Values: map[string]interface{}{"envelope": string(data)}}
}

func recordedEvents(t *testing.T, path string) []metrics.Event {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var events []metrics.Event
	require.NoError(t, json.Unmarshal(data, &events))
	return events
}

func TestHandleMessageRecordsActualContentType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metrics.json")
	recorder := metrics.NewRecorder(true, path, time.Hour, zap.NewNop())
	r := newTestRouter(recorder)
	ctx := context.Background()

	r.handleMessage(ctx, streamMessage(t, adapters.NormalizeVoiceMessage("sess-1", "hi", "mitti kaisi hai")))
	r.handleMessage(ctx, streamMessage(t, adapters.NormalizeTextMessage("sess-1", "hi", "punjab yojna")))
	recorder.Stop()

	var got []interface{}
	for _, e := range recordedEvents(t, path) {
		if e.EventType == "message_received" {
			got = append(got, e.Details["contentType"])
		}
	}
	assert.Equal(t, []interface{}{"voice", "text"}, got)
}

func TestHandleMessageIgnoresMalformedEnvelope(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metrics.json")
	recorder := metrics.NewRecorder(true, path, time.Hour, zap.NewNop())
	r := newTestRouter(recorder)
	ctx := context.Background()

	r.handleMessage(ctx, redis.XMessage{ID: "1-1", Values: map[string]interface{}{"envelope": "{not json"}})
	r.handleMessage(ctx, redis.XMessage{ID: "1-2", Values: map[string]interface{}{}})
	recorder.Stop()

	assert.Empty(t, recordedEvents(t, path))
}
