package models

// Answer is a single answer posted on a question. IDs start at 1 and are
// unique only within the owning question.
type Answer struct {
	ID        uint32 `json:"id" mapstructure:"id"`
	Content   string `json:"content" mapstructure:"content"`
	AccountID string `json:"account_id" mapstructure:"account_id"`
	Reward    int64  `json:"reward" mapstructure:"reward"`
	IsCorrect bool   `json:"is_correct" mapstructure:"is_correct"`
}

// Question holds one posted question together with its answers in
// insertion order. Reward is the amount still payable to whichever answer
// the author eventually marks correct, denominated in the smallest token unit.
type Question struct {
	Content         string   `json:"content" mapstructure:"content"`
	Reward          int64    `json:"reward" mapstructure:"reward"`
	AuthorAccountID string   `json:"author_account_id" mapstructure:"author_account_id"`
	Answers         []Answer `json:"answers" mapstructure:"-"`
}

// LedgerState is the full persisted layout of the ledger: every stake, every
// question with its answers, and the id counter, exactly as the store writes it.
type LedgerState struct {
	Stakes         map[string]int64
	Questions      map[uint32]Question
	Order          []uint32
	NextQuestionID uint32
}
