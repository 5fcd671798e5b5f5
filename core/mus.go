package core

import (
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
)

// MUS serializers for the domain types. These define the storage wire
// format; changing field order here is a breaking change for existing
// databases.
var (
	IDMUS        = idMUS{}
	StatementMUS = statementMUS{}
)

type idMUS struct{}

func (idMUS) Marshal(id ID, bs []byte) int {
	return varint.Uint64.Marshal(uint64(id), bs)
}

func (idMUS) Unmarshal(bs []byte) (ID, int, error) {
	v, n, err := varint.Uint64.Unmarshal(bs)
	return ID(v), n, err
}

func (idMUS) Size(id ID) int {
	return varint.Uint64.Size(uint64(id))
}

func (idMUS) Skip(bs []byte) (int, error) {
	return varint.Uint64.Skip(bs)
}

type statementMUS struct{}

func (statementMUS) Marshal(s Statement, bs []byte) (n int) {
	n = IDMUS.Marshal(s.Id, bs)
	n += ord.String.Marshal(s.Text, bs[n:])
	n += ord.String.Marshal(s.InResponseTo, bs[n:])
	n += ord.String.Marshal(s.Conversation, bs[n:])
	n += varint.Int64.Marshal(s.CreatedAt.UTC().UnixMicro(), bs[n:])
	n += varint.Int.Marshal(len(s.Tags), bs[n:])
	for _, tag := range s.Tags {
		n += ord.String.Marshal(tag, bs[n:])
	}
	return n
}

func (statementMUS) Unmarshal(bs []byte) (s Statement, n int, err error) {
	var n1 int
	s.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	s.Text, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	s.InResponseTo, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	s.Conversation, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	var micros int64
	micros, n1, err = varint.Int64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	s.CreatedAt = time.UnixMicro(micros).UTC()
	var count int
	count, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	if count > 0 {
		s.Tags = make([]string, count)
		for i := range s.Tags {
			s.Tags[i], n1, err = ord.String.Unmarshal(bs[n:])
			n += n1
			if err != nil {
				return
			}
		}
	}
	return
}

func (statementMUS) Size(s Statement) (size int) {
	size = IDMUS.Size(s.Id)
	size += ord.String.Size(s.Text)
	size += ord.String.Size(s.InResponseTo)
	size += ord.String.Size(s.Conversation)
	size += varint.Int64.Size(s.CreatedAt.UTC().UnixMicro())
	size += varint.Int.Size(len(s.Tags))
	for _, tag := range s.Tags {
		size += ord.String.Size(tag)
	}
	return size
}
