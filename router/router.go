// Package router consumes inbound chat envelopes from the Redis stream,
// runs the advisory response selector, and publishes replies to each
// session's response channel.
package router

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Advik20-coder/agri-mitra-samarth/advisor"
	"github.com/Advik20-coder/agri-mitra-samarth/locale"
	"github.com/Advik20-coder/agri-mitra-samarth/metrics"
	"github.com/Advik20-coder/agri-mitra-samarth/models"
	"github.com/Advik20-coder/agri-mitra-samarth/session"
)

const (
	streamKey      = "msg:inbound"
	consumerGroup  = "advisor-group"
	consumerName   = "advisor-1"
	responsePrefix = "response:"
)

type Router struct {
	rdb      *redis.Client
	sessions *session.Manager
	resolver *locale.Resolver
	adv      *advisor.Advisor
	delay    time.Duration
	recorder *metrics.Recorder
	logger   *zap.Logger
}

func New(rdb *redis.Client, sessions *session.Manager, resolver *locale.Resolver,
	adv *advisor.Advisor, delay time.Duration, recorder *metrics.Recorder, logger *zap.Logger) *Router {
	return &Router{
		rdb:      rdb,
		sessions: sessions,
		resolver: resolver,
		adv:      adv,
		delay:    delay,
		recorder: recorder,
		logger:   logger,
	}
}

func (r *Router) EnsureConsumerGroup(ctx context.Context) error {
	err := r.rdb.XGroupCreateMkStream(ctx, streamKey, consumerGroup, "0").Err()
	if err != nil && !strings.Contains(err.Error(), "BUSYGROUP") {
		return err
	}
	return nil
}

// ConsumeLoop reads one envelope at a time from the consumer group and
// handles it. Sequential processing is the ordering guarantee: a user
// message is always in the history before its reply.
func (r *Router) ConsumeLoop(ctx context.Context) {
	r.logger.Info("starting consumer loop")
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		streams, err := r.rdb.XReadGroup(ctx, &redis.XReadGroupArgs{
			Group:    consumerGroup,
			Consumer: consumerName,
			Streams:  []string{streamKey, ">"},
			Count:    1,
			Block:    5 * time.Second,
		}).Result()

		if err == redis.Nil || (err != nil && ctx.Err() != nil) {
			continue
		}
		if err != nil {
			r.logger.Error("failed to read stream", zap.Error(err))
			time.Sleep(time.Second)
			continue
		}

		for _, stream := range streams {
			for _, msg := range stream.Messages {
				r.handleMessage(ctx, msg)
			}
		}
	}
}

func (r *Router) handleMessage(ctx context.Context, msg redis.XMessage) {
	defer r.rdb.XAck(ctx, streamKey, consumerGroup, msg.ID)

	envelopeJSON, ok := msg.Values["envelope"].(string)
	if !ok {
		r.logger.Warn("stream message missing envelope field", zap.String("id", msg.ID))
		return
	}

	var envelope models.MessageEnvelope
	if err := json.Unmarshal([]byte(envelopeJSON), &envelope); err != nil {
		r.logger.Warn("failed to unmarshal envelope", zap.Error(err))
		return
	}

	sessionID := envelope.SessionID
	lang := r.resolver.Active(ctx, sessionID)
	r.logger.Debug("processing message",
		zap.String("message_id", envelope.MessageID),
		zap.String("session_id", sessionID),
		zap.String("type", envelope.Content.Type),
		zap.String("language", lang))

	switch envelope.Content.Type {
	case models.ContentOpen:
		r.handleOpen(ctx, sessionID, lang)
	case models.ContentText, models.ContentVoice:
		r.handleQuestion(ctx, sessionID, lang, envelope.Content.Text, envelope.Content.Type)
	case models.ContentImage:
		r.handleImage(ctx, sessionID, lang, envelope.Content)
	default:
		r.logger.Warn("unknown content type", zap.String("type", envelope.Content.Type))
	}
}

// handleOpen inserts the localized welcome message on the first open of an
// empty session. Reopening an ongoing session is a no-op.
func (r *Router) handleOpen(ctx context.Context, sessionID, lang string) {
	history, err := r.sessions.History(ctx, sessionID)
	if err != nil {
		r.logger.Error("failed to load history", zap.Error(err))
		history = nil
	}
	if len(history) > 0 {
		return
	}

	welcome := advisor.Welcome(lang)
	r.appendAssistant(ctx, sessionID, welcome)
	r.publish(ctx, sessionID, models.WSResponse{
		Type:      "message",
		Text:      welcome,
		SessionID: sessionID,
	})
	r.recorder.SessionOpened(sessionID)
}

func (r *Router) handleQuestion(ctx context.Context, sessionID, lang, text, contentType string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	r.recorder.MessageReceived(sessionID, contentType)

	r.publish(ctx, sessionID, models.WSResponse{Type: "typing"})
	r.appendUser(ctx, sessionID, text)

	start := time.Now()
	reply, topic := r.adv.Reply(text, lang)
	if !r.think(ctx) {
		return
	}

	r.appendAssistant(ctx, sessionID, reply)
	r.publish(ctx, sessionID, models.WSResponse{
		Type:      "message",
		Text:      reply,
		SessionID: sessionID,
	})
	r.recorder.ResponseSent(sessionID, topic, time.Since(start).Milliseconds())
}

func (r *Router) handleImage(ctx context.Context, sessionID, lang string, content models.MessageContent) {
	r.recorder.MessageReceived(sessionID, models.ContentImage)

	r.publish(ctx, sessionID, models.WSResponse{Type: "typing"})
	if content.Text != "" {
		r.appendUser(ctx, sessionID, content.Text)
	}

	analysis := advisor.AnalyzeImage(content.Crop, content.Filename, lang)
	if !r.think(ctx) {
		return
	}

	r.appendAssistant(ctx, sessionID, analysis)
	r.publish(ctx, sessionID, models.WSResponse{
		Type:      "message",
		Text:      analysis,
		SessionID: sessionID,
	})
	r.recorder.ImageAnalysis(sessionID, content.Crop)
}

// think simulates response latency. Returns false when the context was
// canceled mid-delay.
func (r *Router) think(ctx context.Context) bool {
	if r.delay <= 0 {
		return true
	}
	select {
	case <-time.After(r.delay):
		return true
	case <-ctx.Done():
		return false
	}
}

func (r *Router) appendUser(ctx context.Context, sessionID, text string) {
	if err := r.sessions.Append(ctx, sessionID, session.NewMessage(models.RoleUser, text)); err != nil {
		r.logger.Error("failed to save user message", zap.Error(err))
	}
}

func (r *Router) appendAssistant(ctx context.Context, sessionID, text string) {
	if err := r.sessions.Append(ctx, sessionID, session.NewMessage(models.RoleAssistant, text)); err != nil {
		r.logger.Error("failed to save assistant message", zap.Error(err))
	}
}

func (r *Router) publish(ctx context.Context, sessionID string, resp models.WSResponse) {
	data, err := json.Marshal(resp)
	if err != nil {
		r.logger.Error("failed to marshal response", zap.Error(err))
		return
	}
	if err := r.rdb.Publish(ctx, responsePrefix+sessionID, string(data)).Err(); err != nil {
		r.logger.Error("failed to publish response", zap.Error(err))
	}
}
