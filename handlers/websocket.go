// Package handlers carries the widget-facing WebSocket endpoint.
package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Advik20-coder/agri-mitra-samarth/adapters"
	"github.com/Advik20-coder/agri-mitra-samarth/advisor"
	"github.com/Advik20-coder/agri-mitra-samarth/locale"
	"github.com/Advik20-coder/agri-mitra-samarth/metrics"
	"github.com/Advik20-coder/agri-mitra-samarth/models"
	"github.com/Advik20-coder/agri-mitra-samarth/session"
)

const streamKey = "msg:inbound"

// safeConn guards outbound frames with a mutex. The pub/sub forwarder
// goroutine and the read loop both write to the connection, and
// gorilla/websocket allows only one concurrent writer.
type safeConn struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func newSafeConn(conn *websocket.Conn) *safeConn {
	return &safeConn{conn: conn}
}

func (c *safeConn) writeJSON(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(v)
}

// WSHandler upgrades widget connections, forwards advisor replies from the
// session's pub/sub channel, and publishes normalized envelopes to the
// inbound stream.
type WSHandler struct {
	rdb            *redis.Client
	resolver       *locale.Resolver
	sessions       *session.Manager
	recorder       *metrics.Recorder
	allowedOrigins map[string]bool
	upgrader       websocket.Upgrader
	logger         *zap.Logger
}

func NewWSHandler(rdb *redis.Client, resolver *locale.Resolver, sessions *session.Manager,
	recorder *metrics.Recorder, allowedOrigins []string, logger *zap.Logger) *WSHandler {
	origins := make(map[string]bool)
	for _, o := range allowedOrigins {
		origins[o] = true
	}
	h := &WSHandler{
		rdb:            rdb,
		resolver:       resolver,
		sessions:       sessions,
		recorder:       recorder,
		allowedOrigins: origins,
		logger:         logger,
	}
	h.upgrader = websocket.Upgrader{CheckOrigin: h.checkOrigin}
	return h
}

func (h *WSHandler) checkOrigin(r *http.Request) bool {
	if len(h.allowedOrigins) == 0 {
		return true
	}
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true // allow non-browser clients
	}
	return h.allowedOrigins[origin]
}

func (h *WSHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()
	wsc := newSafeConn(conn)

	sessionID := r.URL.Query().Get("session_id")
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	lang := h.resolver.Active(ctx, sessionID)
	if err := wsc.writeJSON(models.WSResponse{
		Type:      "connected",
		SessionID: sessionID,
		Language:  lang,
	}); err != nil {
		h.logger.Warn("failed to send connected frame", zap.Error(err))
		return
	}

	pubsub := h.rdb.Subscribe(ctx, "response:"+sessionID)
	defer pubsub.Close()
	go h.forwardResponses(ctx, cancel, wsc, pubsub)

	h.replayHistory(ctx, wsc, sessionID)

	// Opening the widget triggers the welcome message for a fresh session.
	h.publishEnvelope(ctx, wsc, adapters.NormalizeOpen(sessionID, lang))

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Debug("websocket closed unexpectedly", zap.Error(err))
			}
			return
		}

		var incoming models.WSIncoming
		if err := json.Unmarshal(message, &incoming); err != nil {
			wsc.writeJSON(models.WSResponse{
				Type: "error",
				Text: "Invalid message format. Send JSON with a 'type' field.",
			})
			continue
		}

		h.handleFrame(ctx, wsc, sessionID, incoming)
	}
}

func (h *WSHandler) handleFrame(ctx context.Context, conn *safeConn, sessionID string, incoming models.WSIncoming) {
	lang := h.resolver.Active(ctx, sessionID)

	switch incoming.Type {
	case models.IncomingSetLanguage:
		h.resolver.SetActive(ctx, sessionID, incoming.Language)
		active := h.resolver.Active(ctx, sessionID)
		if active == incoming.Language {
			h.recorder.LanguageChanged(sessionID, active)
		}
		// Unknown codes keep the previous selection; the ack carries
		// whatever is actually active.
		conn.writeJSON(models.WSResponse{Type: "language", Language: active, SessionID: sessionID})

	case models.IncomingVoice:
		if incoming.Error != "" {
			h.recorder.SpeechError(sessionID, incoming.Error)
			conn.writeJSON(models.WSResponse{
				Type: "error",
				Text: advisor.SpeechErrorMessage(incoming.Error, lang),
			})
			return
		}
		if strings.TrimSpace(incoming.Text) == "" {
			return
		}
		h.publishEnvelope(ctx, conn, adapters.NormalizeVoiceMessage(sessionID, lang, incoming.Text))

	case models.IncomingText, "":
		if strings.TrimSpace(incoming.Text) == "" {
			return
		}
		h.publishEnvelope(ctx, conn, adapters.NormalizeTextMessage(sessionID, lang, incoming.Text))

	case models.IncomingImage:
		if incoming.Filename == "" {
			return
		}
		notice := advisor.ImageUploadNotice(incoming.Filename, lang)
		h.publishEnvelope(ctx, conn, adapters.NormalizeImageMessage(sessionID, lang, incoming.Filename, incoming.Crop, notice))

	default:
		conn.writeJSON(models.WSResponse{
			Type: "error",
			Text: "Unsupported frame type: " + incoming.Type,
		})
	}
}

func (h *WSHandler) publishEnvelope(ctx context.Context, conn *safeConn, envelope models.MessageEnvelope) {
	envelopeJSON, err := json.Marshal(envelope)
	if err != nil {
		h.logger.Error("failed to marshal envelope", zap.Error(err))
		return
	}
	if err := h.rdb.XAdd(ctx, &redis.XAddArgs{
		Stream: streamKey,
		Values: map[string]interface{}{"envelope": string(envelopeJSON)},
	}).Err(); err != nil {
		h.logger.Error("failed to publish to stream", zap.Error(err))
		conn.writeJSON(models.WSResponse{
			Type: "error",
			Text: "Sorry, I'm having trouble processing your message. Please try again.",
		})
	}
}

func (h *WSHandler) forwardResponses(ctx context.Context, cancel context.CancelFunc, conn *safeConn, pubsub *redis.PubSub) {
	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var resp models.WSResponse
			if err := json.Unmarshal([]byte(msg.Payload), &resp); err != nil {
				h.logger.Warn("failed to unmarshal response", zap.Error(err))
				continue
			}
			if err := conn.writeJSON(resp); err != nil {
				h.logger.Debug("failed to write to websocket", zap.Error(err))
				cancel()
				return
			}
		}
	}
}

// replayHistory resends a reconnecting session's stored messages so the
// widget can restore its transcript.
func (h *WSHandler) replayHistory(ctx context.Context, conn *safeConn, sessionID string) {
	history, err := h.sessions.History(ctx, sessionID)
	if err != nil {
		h.logger.Warn("failed to load history for replay", zap.Error(err))
		return
	}
	for _, msg := range history {
		frame := models.WSResponse{Type: "history", Text: msg.Content, SessionID: sessionID}
		if msg.Role == models.RoleUser {
			frame.Type = "history_user"
		}
		if err := conn.writeJSON(frame); err != nil {
			return
		}
	}
}
