package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionListMarshalsInInsertionOrder(t *testing.T) {
	list := NewQuestionList()
	list.Append(2, Question{Content: "second", AuthorAccountID: "bob", Answers: []Answer{}})
	list.Append(10, Question{Content: "tenth", AuthorAccountID: "carol", Answers: []Answer{}})
	list.Append(1, Question{Content: "first", AuthorAccountID: "alice", Answers: []Answer{}})

	out, err := list.MarshalJSON()
	require.NoError(t, err)

	// Keys keep insertion order, not the lexical order a plain map would
	// give ("10" sorting before "2").
	assert.JSONEq(t, `{
		"2":  {"content": "second", "reward": 0, "author_account_id": "bob", "answers": []},
		"10": {"content": "tenth", "reward": 0, "author_account_id": "carol", "answers": []},
		"1":  {"content": "first", "reward": 0, "author_account_id": "alice", "answers": []}
	}`, string(out))
	assert.Regexp(t, `^\{"2":.*"10":.*"1":.*\}$`, string(out))
	assert.Equal(t, []uint32{2, 10, 1}, list.IDs())
}

func TestQuestionListAppendReplacesExisting(t *testing.T) {
	list := NewQuestionList()
	list.Append(1, Question{Content: "old"})
	list.Append(1, Question{Content: "new"})

	assert.Equal(t, 1, list.Len())
	q, ok := list.Get(1)
	require.True(t, ok)
	assert.Equal(t, "new", q.Content)
}
