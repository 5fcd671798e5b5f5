package storage

import (
	"testing"
	"time"

	"github.com/poiesic/retort/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatementSerialization(t *testing.T) {
	original := &core.Statement{
		Id:           core.IDFromContent("hello"),
		Text:         "hello there",
		InResponseTo: "hi",
		Conversation: "training",
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
		Tags:         []string{"greeting", "smalltalk"},
	}

	data := MarshalStatement(original)
	decoded, err := UnmarshalStatement(data)
	require.NoError(t, err)

	assert.Equal(t, original.Id, decoded.Id)
	assert.Equal(t, original.Text, decoded.Text)
	assert.Equal(t, original.InResponseTo, decoded.InResponseTo)
	assert.Equal(t, original.Conversation, decoded.Conversation)
	assert.True(t, original.CreatedAt.Equal(decoded.CreatedAt))
	assert.Equal(t, original.Tags, decoded.Tags)
}

func TestStatementSerialization_MinimalFields(t *testing.T) {
	original := &core.Statement{Text: "hello"}

	data := MarshalStatement(original)
	decoded, err := UnmarshalStatement(data)
	require.NoError(t, err)

	assert.Equal(t, "hello", decoded.Text)
	assert.Empty(t, decoded.InResponseTo)
	assert.Empty(t, decoded.Tags)
}

func TestUnmarshalStatement_TruncatedData(t *testing.T) {
	data := MarshalStatement(&core.Statement{Text: "hello there"})

	_, err := UnmarshalStatement(data[:3])
	assert.ErrorIs(t, err, ErrSerializationFailed)
}

func TestIDSerialization(t *testing.T) {
	id := core.IDFromContent("hello")
	decoded, err := UnmarshalID(MarshalID(id))
	require.NoError(t, err)
	assert.Equal(t, id, decoded)
}
