package store

import "realworlded-cli/internal/model"

// ChatStore holds the message transcript for the session currently open in
// chat. The transcript is append-only and order-significant; no dedup is
// attempted, so a server message whose id collides with a locally-echoed one
// simply appears twice.
type ChatStore struct {
	messages []model.Message
	typing   bool
}

func NewChatStore() *ChatStore { return &ChatStore{} }

// SetMessages replaces the transcript wholesale (page load).
func (s *ChatStore) SetMessages(list []model.Message) {
	s.messages = append([]model.Message(nil), list...)
}

func (s *ChatStore) AddMessage(m model.Message) {
	s.messages = append(s.messages, m)
}

// SetTyping flags that the backend is composing a reply. This is a coarse
// busy indicator around one request/response pair, not a streaming signal.
func (s *ChatStore) SetTyping(v bool) { s.typing = v }

func (s *ChatStore) Typing() bool { return s.typing }

// ClearMessages empties the transcript when a new chat context is entered.
func (s *ChatStore) ClearMessages() {
	s.messages = nil
	s.typing = false
}

// Messages returns a snapshot copy, in insertion order.
func (s *ChatStore) Messages() []model.Message {
	return append([]model.Message(nil), s.messages...)
}

func (s *ChatStore) Len() int { return len(s.messages) }
