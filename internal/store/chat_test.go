package store

import (
	"testing"

	"realworlded-cli/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestChatStoreAppendKeepsOrder(t *testing.T) {
	s := NewChatStore()
	s.AddMessage(model.Message{Role: model.RoleUser, Content: "hi"})
	s.AddMessage(model.Message{Role: model.RoleMentor, Content: "hello"})
	s.AddMessage(model.Message{Role: model.RoleUser, Content: "question"})

	got := s.Messages()
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, "hi", got[0].Content)
	assert.Equal(t, "hello", got[1].Content)
	assert.Equal(t, "question", got[2].Content)
}

func TestChatStoreNoDedupOnCollidingIDs(t *testing.T) {
	s := NewChatStore()
	s.AddMessage(model.Message{ID: 7, Content: "local echo"})
	s.AddMessage(model.Message{ID: 7, Content: "server copy"})

	assert.Equal(t, 2, s.Len())
}

func TestChatStoreClearResetsTyping(t *testing.T) {
	s := NewChatStore()
	s.AddMessage(model.Message{Content: "hi"})
	s.SetTyping(true)

	s.ClearMessages()

	assert.Zero(t, s.Len())
	assert.False(t, s.Typing())
}

func TestChatStoreMessagesIsASnapshot(t *testing.T) {
	s := NewChatStore()
	s.AddMessage(model.Message{Content: "hi"})

	got := s.Messages()
	got[0].Content = "mutated"

	assert.Equal(t, "hi", s.Messages()[0].Content)
}
