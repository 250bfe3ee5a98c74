// Package adapters normalizes raw widget frames into message envelopes for
// the inbound stream.
package adapters

import (
	"time"

	"github.com/google/uuid"

	"github.com/Advik20-coder/agri-mitra-samarth/models"
)

func newEnvelope(sessionID, lang string, content models.MessageContent) models.MessageEnvelope {
	return models.MessageEnvelope{
		MessageID: uuid.New().String(),
		SessionID: sessionID,
		Channel:   "web",
		UserID:    "anonymous",
		Timestamp: time.Now().UTC(),
		Content:   content,
		Metadata: models.MessageMetadata{
			Language:     lang,
			PlatformData: map[string]interface{}{},
		},
	}
}

// NormalizeOpen marks a freshly opened widget session.
func NormalizeOpen(sessionID, lang string) models.MessageEnvelope {
	return newEnvelope(sessionID, lang, models.MessageContent{Type: models.ContentOpen})
}

// NormalizeTextMessage converts a typed chat message.
func NormalizeTextMessage(sessionID, lang, text string) models.MessageEnvelope {
	return newEnvelope(sessionID, lang, models.MessageContent{
		Type: models.ContentText,
		Text: text,
	})
}

// NormalizeVoiceMessage converts a speech transcript. The advisory path is
// identical to typed text; the type is kept for metrics.
func NormalizeVoiceMessage(sessionID, lang, transcript string) models.MessageEnvelope {
	return newEnvelope(sessionID, lang, models.MessageContent{
		Type: models.ContentVoice,
		Text: transcript,
	})
}

// NormalizeImageMessage converts an image upload. Text carries the localized
// upload notice shown as the user's message in the history.
func NormalizeImageMessage(sessionID, lang, filename, crop, notice string) models.MessageEnvelope {
	return newEnvelope(sessionID, lang, models.MessageContent{
		Type:     models.ContentImage,
		Text:     notice,
		Filename: filename,
		Crop:     crop,
	})
}
