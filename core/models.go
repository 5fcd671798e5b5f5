package core

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated from statement content so that identical statements
// map to the same record.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Statement is a single unit of dialogue text known to the system.
// Statements are immutable values; identity is content-based, so two
// statements with the same Text, InResponseTo and Conversation are the
// same record.
type Statement struct {
	Id           ID
	Text         string
	InResponseTo string // Text of the statement this one was said in response to, if any
	Conversation string
	CreatedAt    time.Time
	Tags         []string
}

// contentKeySep separates the identity fields. It must not occur in
// normal dialogue text.
const contentKeySep = "\x1f"

// ContentKey returns the string the statement's content ID is derived from.
func (s *Statement) ContentKey() string {
	return s.Text + contentKeySep + s.InResponseTo + contentKeySep + s.Conversation
}

// ContentID returns the deterministic ID for the statement's content.
func (s *Statement) ContentID() ID {
	return IDFromContent(s.ContentKey())
}

// MatchResult pairs a statement with the similarity score it was given
// against a search input. Results are transient; they are created during
// a search and discarded once a response has been produced.
type MatchResult struct {
	Statement *Statement
	Score     float64 // Similarity in [0, 1]; 1 is an exact match
}
