package models

import "time"

// Content types carried by a MessageEnvelope.
const (
	ContentText  = "text"
	ContentVoice = "voice"
	ContentImage = "image"
	ContentOpen  = "open"
)

type MessageContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
	// Image uploads only.
	Filename string `json:"filename,omitempty"`
	Crop     string `json:"crop,omitempty"`
}

type MessageMetadata struct {
	Language     string                 `json:"language"`
	PlatformData map[string]interface{} `json:"platform_data"`
}

type MessageEnvelope struct {
	MessageID string          `json:"message_id"`
	SessionID string          `json:"session_id"`
	Channel   string          `json:"channel"`
	UserID    string          `json:"user_id"`
	Timestamp time.Time       `json:"timestamp"`
	Content   MessageContent  `json:"content"`
	Metadata  MessageMetadata `json:"metadata"`
}

// ChatMessage is one entry in a session's history. Messages are append-only;
// the assistant reply for a user message always lands after it.
type ChatMessage struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"` // "user" or "assistant"
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// WSIncoming is a frame read from the widget socket.
type WSIncoming struct {
	Type string `json:"type"` // text | voice | image | set_language
	Text string `json:"text,omitempty"`
	// Voice frames: transcript in Text, or an error code from the
	// browser speech capture (not-allowed, no-speech, network, ...).
	Error string `json:"error,omitempty"`
	// Image frames.
	Filename string `json:"filename,omitempty"`
	Crop     string `json:"crop,omitempty"`
	// set_language frames.
	Language string `json:"language,omitempty"`
}

const (
	IncomingText        = "text"
	IncomingVoice       = "voice"
	IncomingImage       = "image"
	IncomingSetLanguage = "set_language"
)

// WSResponse is a frame written to the widget socket.
type WSResponse struct {
	Type      string `json:"type"` // connected | typing | message | language | error
	Text      string `json:"text,omitempty"`
	SessionID string `json:"session_id,omitempty"`
	Language  string `json:"language,omitempty"`
}
