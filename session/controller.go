package session

import (
	"strings"
	"sync"
	"time"

	"github.com/Advik20-coder/agri-mitra-samarth/advisor"
	"github.com/Advik20-coder/agri-mitra-samarth/locale"
	"github.com/Advik20-coder/agri-mitra-samarth/models"
)

// Controller states over one widget session.
type State int

const (
	StateIdle       State = iota // widget closed
	StateOpen                    // opened, no messages yet
	StateConversing              // welcome inserted / exchanging messages
)

// Controller is the state machine for one chat session. History is
// append-only and owned exclusively by this controller; it is discarded on
// Reset. The send path is serialized by a mutex so rapid sequential sends
// still interleave strictly user-then-assistant per pair.
type Controller struct {
	mu       sync.Mutex
	adv      *advisor.Advisor
	delay    time.Duration
	language string
	state    State
	messages []models.ChatMessage
}

func NewController(adv *advisor.Advisor, language string, delay time.Duration) *Controller {
	if !locale.Known(language) {
		language = locale.DefaultLanguage
	}
	return &Controller{adv: adv, delay: delay, language: language, state: StateIdle}
}

// Open transitions Idle → Open and auto-inserts the localized welcome
// message on the first open of an empty session. Reopening an ongoing
// session keeps its history.
func (c *Controller) Open() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateIdle {
		c.state = StateOpen
	}
	if len(c.messages) == 0 {
		c.append(models.RoleAssistant, advisor.Welcome(c.language))
		c.state = StateConversing
	}
}

// Send appends the user message, computes the advisor reply, and appends it
// after the thinking delay. Empty or whitespace-only input is silently
// rejected. Returns the reply text and whether a message was sent.
func (c *Controller) Send(text string) (string, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.append(models.RoleUser, trimmed)
	c.state = StateConversing

	reply := c.adv.Respond(trimmed, c.language)
	if c.delay > 0 {
		time.Sleep(c.delay)
	}
	c.append(models.RoleAssistant, reply)
	return reply, true
}

// SendVoice is Send for a speech transcript. The same whitespace guard
// applies, so an empty capture never produces a message.
func (c *Controller) SendVoice(transcript string) (string, bool) {
	return c.Send(transcript)
}

// SetLanguage switches the chat language for subsequent replies. Unknown
// codes are a no-op; the previous selection is retained.
func (c *Controller) SetLanguage(code string) {
	if !locale.Known(code) {
		return
	}
	c.mu.Lock()
	c.language = code
	c.mu.Unlock()
}

// Language returns the active chat language.
func (c *Controller) Language() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.language
}

// History returns a copy of the session messages, oldest first.
func (c *Controller) History() []models.ChatMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.ChatMessage, len(c.messages))
	copy(out, c.messages)
	return out
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Reset tears the session down: history is discarded and the controller
// returns to Idle.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = nil
	c.state = StateIdle
}

// append must be called with c.mu held.
func (c *Controller) append(role, content string) {
	c.messages = append(c.messages, NewMessage(role, content))
}
