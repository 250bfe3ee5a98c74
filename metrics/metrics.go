// Package metrics records advisory chat events and periodically flushes
// them to a JSON file.
package metrics

import (
	"encoding/json"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Event is a single recorded chat event.
type Event struct {
	Timestamp time.Time              `json:"timestamp"`
	SessionID string                 `json:"session_id"`
	EventType string                 `json:"event_type"`
	Details   map[string]interface{} `json:"details,omitempty"`
}

// Recorder collects events in memory and flushes them to filePath on a
// fixed interval and on Stop. When disabled every method is a no-op.
type Recorder struct {
	enabled  bool
	mu       sync.Mutex
	events   []Event
	filePath string
	ticker   *time.Ticker
	wg       sync.WaitGroup
	stopChan chan struct{}
	logger   *zap.Logger
}

func NewRecorder(enabled bool, filePath string, interval time.Duration, logger *zap.Logger) *Recorder {
	r := &Recorder{
		enabled:  enabled,
		filePath: filePath,
		stopChan: make(chan struct{}),
		logger:   logger,
	}

	if r.enabled {
		r.loadFromFile()
		r.ticker = time.NewTicker(interval)
		r.wg.Add(1)
		go r.run()
	}

	return r
}

func (r *Recorder) run() {
	defer r.wg.Done()
	for {
		select {
		case <-r.ticker.C:
			r.saveToFile()
		case <-r.stopChan:
			r.ticker.Stop()
			r.saveToFile()
			return
		}
	}
}

func (r *Recorder) record(sessionID, eventType string, details map[string]interface{}) {
	if !r.enabled {
		return
	}
	r.mu.Lock()
	r.events = append(r.events, Event{
		Timestamp: time.Now().UTC(),
		SessionID: sessionID,
		EventType: eventType,
		Details:   details,
	})
	r.mu.Unlock()
}

func (r *Recorder) SessionOpened(sessionID string) {
	r.record(sessionID, "session_opened", nil)
}

func (r *Recorder) MessageReceived(sessionID, contentType string) {
	r.record(sessionID, "message_received", map[string]interface{}{
		"contentType": contentType,
	})
}

func (r *Recorder) ResponseSent(sessionID, topic string, latencyMillis int64) {
	r.record(sessionID, "response_sent", map[string]interface{}{
		"topic":        topic,
		"responseTime": latencyMillis,
	})
}

func (r *Recorder) LanguageChanged(sessionID, code string) {
	r.record(sessionID, "language_changed", map[string]interface{}{
		"language": code,
	})
}

func (r *Recorder) SpeechError(sessionID, code string) {
	r.record(sessionID, "speech_error", map[string]interface{}{
		"code": code,
	})
}

func (r *Recorder) ImageAnalysis(sessionID, crop string) {
	r.record(sessionID, "image_analysis", map[string]interface{}{
		"crop": crop,
	})
}

func (r *Recorder) saveToFile() {
	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := os.OpenFile(r.filePath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		r.logger.Error("failed to open metrics file", zap.Error(err))
		return
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.events); err != nil {
		r.logger.Error("failed to write metrics file", zap.Error(err))
	}
}

func (r *Recorder) loadFromFile() {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(r.filePath)
	if err != nil {
		if !os.IsNotExist(err) {
			r.logger.Error("failed to read metrics file", zap.Error(err))
		}
		return
	}

	var existing []Event
	if err := json.Unmarshal(data, &existing); err != nil {
		r.logger.Error("failed to parse metrics file", zap.Error(err))
		return
	}
	r.events = existing
}

// Stop flushes pending events and terminates the background flusher.
func (r *Recorder) Stop() {
	if !r.enabled {
		return
	}
	close(r.stopChan)
	r.wg.Wait()
}
