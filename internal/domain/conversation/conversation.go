package conversation

import "github.com/google/uuid"

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one turn in a conversation. User messages are immutable once
// appended; the open assistant message's content grows while a reply streams.
type Message struct {
	ID      uuid.UUID `json:"id"`
	Role    Role      `json:"role"`
	Content string    `json:"content"`
}

// Conversation holds an ordered message sequence plus the streaming-append
// state: at most one assistant message is "open" for appending at a time.
// A user message always closes the open slot; the first chunk of a reply
// opens a new one. Not safe for concurrent use; callers serialise access.
type Conversation struct {
	messages []Message
	open     bool
}

func New() *Conversation {
	return &Conversation{}
}

// Seed appends an assistant message that is immediately closed, used for the
// initial greeting.
func (c *Conversation) Seed(content string) {
	c.messages = append(c.messages, Message{ID: uuid.New(), Role: RoleAssistant, Content: content})
	c.open = false
}

// AppendUser adds a user message and closes any open assistant slot.
func (c *Conversation) AppendUser(content string) Message {
	m := Message{ID: uuid.New(), Role: RoleUser, Content: content}
	c.messages = append(c.messages, m)
	c.open = false
	return m
}

// AppendChunk applies one streamed content fragment: it opens a new assistant
// message if none is open, otherwise appends to the open one. Fragments must
// be applied in arrival order.
func (c *Conversation) AppendChunk(chunk string) {
	if !c.open {
		c.messages = append(c.messages, Message{ID: uuid.New(), Role: RoleAssistant})
		c.open = true
	}
	c.messages[len(c.messages)-1].Content += chunk
}

// CloseOpen marks the streamed reply as complete.
func (c *Conversation) CloseOpen() {
	c.open = false
}

// DiscardOpenIfEmpty removes a zero-content open assistant message after a
// failed request so the history never shows an empty reply. Returns true if
// a message was removed.
func (c *Conversation) DiscardOpenIfEmpty() bool {
	if !c.open {
		return false
	}
	c.open = false
	last := len(c.messages) - 1
	if last >= 0 && c.messages[last].Role == RoleAssistant && c.messages[last].Content == "" {
		c.messages = c.messages[:last]
		return true
	}
	return false
}

// Messages returns a copy of the history in order.
func (c *Conversation) Messages() []Message {
	out := make([]Message, len(c.messages))
	copy(out, c.messages)
	return out
}

func (c *Conversation) Len() int {
	return len(c.messages)
}
