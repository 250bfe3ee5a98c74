// Package session owns chat message history: a Redis-backed store shared by
// the advisor worker, and the per-widget controller state machine.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/Advik20-coder/agri-mitra-samarth/models"
)

const sessionPrefix = "session:"

// NewMessage builds a history entry with a fresh ID and UTC timestamp.
func NewMessage(role, content string) models.ChatMessage {
	return models.ChatMessage{
		ID:        uuid.New().String(),
		Role:      role,
		Content:   content,
		Timestamp: time.Now().UTC(),
	}
}

// Manager stores each session's message history as a JSON list in Redis,
// trimmed to the newest maxMessages entries.
type Manager struct {
	rdb         *redis.Client
	ttl         time.Duration
	maxMessages int
}

func NewManager(rdb *redis.Client, ttl time.Duration, maxMessages int) *Manager {
	return &Manager{rdb: rdb, ttl: ttl, maxMessages: maxMessages}
}

// History returns the stored messages for sessionID, oldest first. A missing
// key is an empty history, not an error.
func (m *Manager) History(ctx context.Context, sessionID string) ([]models.ChatMessage, error) {
	key := sessionPrefix + sessionID
	data, err := m.rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return []models.ChatMessage{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var history []models.ChatMessage
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return history, nil
}

// Save overwrites the history for sessionID, keeping only the newest
// maxMessages entries.
func (m *Manager) Save(ctx context.Context, sessionID string, history []models.ChatMessage) error {
	if len(history) > m.maxMessages {
		history = history[len(history)-m.maxMessages:]
	}

	data, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := m.rdb.Set(ctx, sessionPrefix+sessionID, data, m.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Append loads the history, appends msgs in order, and saves it back.
func (m *Manager) Append(ctx context.Context, sessionID string, msgs ...models.ChatMessage) error {
	history, err := m.History(ctx, sessionID)
	if err != nil {
		return err
	}
	history = append(history, msgs...)
	return m.Save(ctx, sessionID, history)
}

// Reset discards the stored history for sessionID.
func (m *Manager) Reset(ctx context.Context, sessionID string) error {
	if err := m.rdb.Del(ctx, sessionPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("failed to reset session: %w", err)
	}
	return nil
}
