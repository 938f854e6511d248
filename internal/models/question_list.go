package models

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// QuestionList is an insertion-ordered snapshot of every question, exposed to
// callers as a JSON object keyed by stringified question id. Ids stay numeric
// internally; the string conversion happens only when the list is serialized.
type QuestionList struct {
	ids   []uint32
	items map[uint32]Question
}

func NewQuestionList() *QuestionList {
	return &QuestionList{items: make(map[uint32]Question)}
}

// Append adds a question under the given id, keeping insertion order.
func (l *QuestionList) Append(id uint32, q Question) {
	if _, ok := l.items[id]; !ok {
		l.ids = append(l.ids, id)
	}
	l.items[id] = q
}

func (l *QuestionList) Len() int {
	return len(l.ids)
}

// Get returns the question stored under id.
func (l *QuestionList) Get(id uint32) (Question, bool) {
	q, ok := l.items[id]
	return q, ok
}

// IDs returns the question ids in insertion order.
func (l *QuestionList) IDs() []uint32 {
	out := make([]uint32, len(l.ids))
	copy(out, l.ids)
	return out
}

// MarshalJSON writes the list as a JSON object whose keys appear in
// insertion order rather than the lexical order encoding/json would use
// for a plain map.
func (l *QuestionList) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, id := range l.ids {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(strconv.FormatUint(uint64(id), 10))
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(l.items[id])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
