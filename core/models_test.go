package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIDFromContent(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		a := IDFromContent("hello world")
		b := IDFromContent("hello world")
		assert.Equal(t, a, b)
	})

	t.Run("distinct content distinct ids", func(t *testing.T) {
		a := IDFromContent("hello world")
		b := IDFromContent("hello world!")
		assert.NotEqual(t, a, b)
	})

	t.Run("empty content is valid", func(t *testing.T) {
		assert.NotPanics(t, func() { IDFromContent("") })
	})
}

func TestStatementContentID(t *testing.T) {
	base := Statement{Text: "hello", InResponseTo: "hi", Conversation: "training"}

	t.Run("same content same id", func(t *testing.T) {
		other := Statement{Text: "hello", InResponseTo: "hi", Conversation: "training"}
		assert.Equal(t, base.ContentID(), other.ContentID())
	})

	t.Run("in-response-to is part of identity", func(t *testing.T) {
		other := base
		other.InResponseTo = "hey"
		assert.NotEqual(t, base.ContentID(), other.ContentID())
	})

	t.Run("conversation is part of identity", func(t *testing.T) {
		other := base
		other.Conversation = "default"
		assert.NotEqual(t, base.ContentID(), other.ContentID())
	})

	t.Run("field boundaries are unambiguous", func(t *testing.T) {
		a := Statement{Text: "ab", InResponseTo: "c"}
		b := Statement{Text: "a", InResponseTo: "bc"}
		assert.NotEqual(t, a.ContentID(), b.ContentID())
	})
}
