package metrics

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRecorderFlushesOnStop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metrics.json")
	r := NewRecorder(true, path, time.Hour, zap.NewNop())

	r.SessionOpened("sess-1")
	r.MessageReceived("sess-1", "text")
	r.ResponseSent("sess-1", "soil", 12)
	r.LanguageChanged("sess-1", "pa")
	r.Stop()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var events []Event
	require.NoError(t, json.Unmarshal(data, &events))
	require.Len(t, events, 4)
	assert.Equal(t, "session_opened", events[0].EventType)
	assert.Equal(t, "response_sent", events[2].EventType)
	assert.Equal(t, "soil", events[2].Details["topic"])
}

func TestRecorderLoadsExistingEvents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metrics.json")

	first := NewRecorder(true, path, time.Hour, zap.NewNop())
	first.SessionOpened("sess-1")
	first.Stop()

	second := NewRecorder(true, path, time.Hour, zap.NewNop())
	second.SpeechError("sess-2", "no-speech")
	second.Stop()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var events []Event
	require.NoError(t, json.Unmarshal(data, &events))
	require.Len(t, events, 2)
	assert.Equal(t, "session_opened", events[0].EventType)
	assert.Equal(t, "speech_error", events[1].EventType)
}

func TestDisabledRecorderIsNoOp(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metrics.json")
	r := NewRecorder(false, path, time.Hour, zap.NewNop())
	r.SessionOpened("sess-1")
	r.Stop()

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
