package badger

import (
	"encoding/binary"
	"fmt"

	"github.com/poiesic/retort/core"
)

// Key prefixes for different data types
const (
	statementPrefix = "strec"
	responsePrefix  = "stresp"
)

// makeStatementKey generates a key for a statement by ID.
func makeStatementKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", statementPrefix, id))
}

// makeResponseKey generates a composite key for the response index.
// Format: prefix:promptID:statementID, where promptID is the content ID
// of the text being responded to. Written in BigEndian order so
// lexicographic sort groups all responses to one prompt together.
func makeResponseKey(promptID, statementID core.ID) []byte {
	prefix := responsePrefix + ":"
	prefixBytes := []byte(prefix)
	buf := make([]byte, len(prefixBytes)+16)
	offset := copy(buf, prefixBytes)
	binary.BigEndian.PutUint64(buf[offset:], uint64(promptID))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(statementID))
	return buf
}

// makePartialResponseKey generates a partial key for response queries.
// Format: prefix:promptID
func makePartialResponseKey(promptID core.ID) []byte {
	prefix := responsePrefix + ":"
	prefixBytes := []byte(prefix)
	buf := make([]byte, len(prefixBytes)+8)
	offset := copy(buf, prefixBytes)
	binary.BigEndian.PutUint64(buf[offset:], uint64(promptID))
	return buf
}

// statementIDFromResponseKey extracts the statement ID from a response
// index key.
func statementIDFromResponseKey(key []byte) core.ID {
	return core.ID(binary.BigEndian.Uint64(key[len(key)-8:]))
}
