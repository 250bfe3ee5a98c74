package adapters

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Advik20-coder/agri-mitra-samarth/models"
)

func TestNormalizeTextMessage(t *testing.T) {
	env := NormalizeTextMessage("sess-1", "hi", "मिट्टी की जानकारी")

	assert.Equal(t, "sess-1", env.SessionID)
	assert.Equal(t, "web", env.Channel)
	assert.Equal(t, models.ContentText, env.Content.Type)
	assert.Equal(t, "मिट्टी की जानकारी", env.Content.Text)
	assert.Equal(t, "hi", env.Metadata.Language)
	assert.False(t, env.Timestamp.IsZero())

	_, err := uuid.Parse(env.MessageID)
	require.NoError(t, err)
}

func TestNormalizeVoiceMessage(t *testing.T) {
	env := NormalizeVoiceMessage("sess-1", "pa", "ludhiana")
	assert.Equal(t, models.ContentVoice, env.Content.Type)
	assert.Equal(t, "ludhiana", env.Content.Text)
}

func TestNormalizeImageMessage(t *testing.T) {
	env := NormalizeImageMessage("sess-1", "en", "leaf.jpg", "wheat", "📸 Image uploaded: leaf.jpg")
	assert.Equal(t, models.ContentImage, env.Content.Type)
	assert.Equal(t, "leaf.jpg", env.Content.Filename)
	assert.Equal(t, "wheat", env.Content.Crop)
	assert.Equal(t, "📸 Image uploaded: leaf.jpg", env.Content.Text)
}

func TestNormalizeOpen(t *testing.T) {
	env := NormalizeOpen("sess-1", "en")
	assert.Equal(t, models.ContentOpen, env.Content.Type)
	assert.Empty(t, env.Content.Text)
}

func TestEnvelopeIDsAreUnique(t *testing.T) {
	a := NormalizeTextMessage("sess-1", "en", "soil")
	b := NormalizeTextMessage("sess-1", "en", "soil")
	assert.NotEqual(t, a.MessageID, b.MessageID)
}
