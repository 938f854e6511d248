// Package ledger implements the escrow-and-reward state machine: questions
// backed by a staked deposit, answers, per-upvote micropayments, and the
// one-time correct-answer payout.
package ledger

import (
	"context"
	"fmt"

	"github.com/saxenaaman628/qa-escrow-ledger/internal/errs"
	"github.com/saxenaaman628/qa-escrow-ledger/internal/models"
)

const (
	// MinQuestionReward is the smallest deposit accepted when posting a question.
	MinQuestionReward int64 = 10
	// AnswerPrice is the fixed fee for posting an answer or an upvote.
	AnswerPrice int64 = 1
)

// Payouts transfers tokens out of the ledger's custody to an account's
// external balance. Supplied by the host; the ledger never validates
// payment authenticity itself.
type Payouts interface {
	Transfer(ctx context.Context, accountID string, amount int64) error
}

// Ledger owns all stakes and questions exclusively. It holds no locks:
// the host dispatcher presents each mutating call as an already-serialized
// transaction. Every operation validates all of its preconditions before
// the first mutation, so a failed call leaves the state untouched.
type Ledger struct {
	stakes         map[string]int64
	questions      map[uint32]*models.Question
	order          []uint32
	nextQuestionID uint32
	payouts        Payouts
}

// New returns an empty ledger using the given payout collaborator.
func New(payouts Payouts) *Ledger {
	return &Ledger{
		stakes:    make(map[string]int64),
		questions: make(map[uint32]*models.Question),
		payouts:   payouts,
	}
}

// Restore replaces the ledger's state with a persisted snapshot.
func (l *Ledger) Restore(state models.LedgerState) {
	l.stakes = make(map[string]int64, len(state.Stakes))
	for account, amount := range state.Stakes {
		l.stakes[account] = amount
	}
	l.questions = make(map[uint32]*models.Question, len(state.Questions))
	l.order = make([]uint32, 0, len(state.Order))
	for _, id := range state.Order {
		q, ok := state.Questions[id]
		if !ok {
			continue
		}
		copied := q
		copied.Answers = append([]models.Answer(nil), q.Answers...)
		l.questions[id] = &copied
		l.order = append(l.order, id)
	}
	l.nextQuestionID = state.NextQuestionID
}

// Snapshot returns a deep copy of the ledger's state for persistence.
func (l *Ledger) Snapshot() models.LedgerState {
	state := models.LedgerState{
		Stakes:         make(map[string]int64, len(l.stakes)),
		Questions:      make(map[uint32]models.Question, len(l.questions)),
		Order:          append([]uint32(nil), l.order...),
		NextQuestionID: l.nextQuestionID,
	}
	for account, amount := range l.stakes {
		state.Stakes[account] = amount
	}
	for id, q := range l.questions {
		copied := *q
		copied.Answers = append([]models.Answer(nil), q.Answers...)
		state.Questions[id] = copied
	}
	return state
}

// CreateQuestion posts a question whose reward equals the attached deposit.
// The deposit is taken into custody and credited to the caller's stake.
func (l *Ledger) CreateQuestion(content, callerID string, attached int64) (uint32, error) {
	if attached < MinQuestionReward {
		return 0, fmt.Errorf("%w: min question reward is %d", errs.ErrInsufficientDeposit, MinQuestionReward)
	}

	l.nextQuestionID++
	id := l.nextQuestionID
	l.questions[id] = &models.Question{
		Content:         content,
		Reward:          attached,
		AuthorAccountID: callerID,
		Answers:         []models.Answer{},
	}
	l.order = append(l.order, id)
	l.stakes[callerID] += attached
	return id, nil
}

// CreateAnswer appends an answer to a question for the fixed 1-unit fee.
// The fee is a pure cost of participation: it is not added to any stake or
// reward, so it never inflates the backing invariant.
func (l *Ledger) CreateAnswer(questionID uint32, content, callerID string, attached int64) (uint32, error) {
	question, ok := l.questions[questionID]
	if !ok {
		return 0, fmt.Errorf("%w: id %d", errs.ErrQuestionNotFound, questionID)
	}
	if attached != AnswerPrice {
		return 0, fmt.Errorf("%w: answering costs exactly %d", errs.ErrWrongAttachedAmount, AnswerPrice)
	}

	var answerID uint32 = 1
	if n := len(question.Answers); n > 0 {
		answerID = question.Answers[n-1].ID + 1
	}
	question.Answers = append(question.Answers, models.Answer{
		ID:        answerID,
		Content:   content,
		AccountID: callerID,
		Reward:    0,
		IsCorrect: false,
	})
	return answerID, nil
}

// UpvoteAnswer forwards the 1-unit attached amount to the answer's author
// and bumps the answer's reward tally. The tally counts every payout ever
// made to the answer; it is not money the ledger still holds. Upvoting your
// own answer, or an answer already marked correct, is allowed.
func (l *Ledger) UpvoteAnswer(ctx context.Context, questionID, answerID uint32, callerID string, attached int64) error {
	question, ok := l.questions[questionID]
	if !ok {
		return fmt.Errorf("%w: id %d", errs.ErrQuestionNotFound, questionID)
	}
	if attached != AnswerPrice {
		return fmt.Errorf("%w: upvoting costs exactly %d", errs.ErrWrongAttachedAmount, AnswerPrice)
	}
	answer := findAnswer(question, answerID)
	if answer == nil {
		return fmt.Errorf("%w: id %d on question %d", errs.ErrAnswerNotFound, answerID, questionID)
	}

	if err := l.payouts.Transfer(ctx, answer.AccountID, attached); err != nil {
		return fmt.Errorf("upvote payout: %w", err)
	}
	answer.Reward += attached
	return nil
}

// SetCorrectAnswer is the author-only, one-time resolution of a question:
// it marks the chosen answer correct, pays the question's full remaining
// reward to the answer's author out of the author's stake, and zeroes the
// question's reward so it can never be disbursed twice.
func (l *Ledger) SetCorrectAnswer(ctx context.Context, questionID, answerID uint32, callerID string) error {
	question, ok := l.questions[questionID]
	if !ok {
		return fmt.Errorf("%w: id %d", errs.ErrQuestionNotFound, questionID)
	}
	if question.AuthorAccountID != callerID {
		return errs.ErrUnauthorized
	}
	answer := findAnswer(question, answerID)
	if answer == nil {
		return fmt.Errorf("%w: id %d on question %d", errs.ErrAnswerNotFound, answerID, questionID)
	}
	if answer.AccountID == callerID {
		return errs.ErrSelfRewardForbidden
	}
	for i := range question.Answers {
		if question.Answers[i].IsCorrect {
			return errs.ErrAlreadyResolved
		}
	}
	reward := question.Reward
	if l.stakes[question.AuthorAccountID] < reward {
		return fmt.Errorf("%w: stake of %q is %d, owes %d",
			errs.ErrInvariantViolation, question.AuthorAccountID, l.stakes[question.AuthorAccountID], reward)
	}

	if err := l.payouts.Transfer(ctx, answer.AccountID, reward); err != nil {
		return fmt.Errorf("correct answer payout: %w", err)
	}
	answer.IsCorrect = true
	answer.Reward += reward
	l.stakes[question.AuthorAccountID] -= reward
	question.Reward = 0
	return nil
}

// ListQuestions returns an insertion-ordered snapshot of every question.
// It never mutates state; the returned copy is detached from the ledger.
func (l *Ledger) ListQuestions() *models.QuestionList {
	list := models.NewQuestionList()
	for _, id := range l.order {
		q := *l.questions[id]
		q.Answers = append([]models.Answer(nil), l.questions[id].Answers...)
		list.Append(id, q)
	}
	return list
}

// Stake reports the amount currently held in custody for an account.
func (l *Ledger) Stake(accountID string) int64 {
	return l.stakes[accountID]
}

// TotalStaked reports the sum of all stakes held in custody.
func (l *Ledger) TotalStaked() int64 {
	var total int64
	for _, amount := range l.stakes {
		total += amount
	}
	return total
}

func findAnswer(q *models.Question, answerID uint32) *models.Answer {
	for i := range q.Answers {
		if q.Answers[i].ID == answerID {
			return &q.Answers[i]
		}
	}
	return nil
}
