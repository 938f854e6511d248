package errs

import "errors"

var (
	// ErrInsufficientDeposit indicates the attached amount is below the minimum question reward.
	ErrInsufficientDeposit = errors.New("attached deposit is below the minimum question reward")
	// ErrWrongAttachedAmount indicates an answer or upvote call did not attach exactly the fixed fee.
	ErrWrongAttachedAmount = errors.New("wrong attached amount")
	// ErrQuestionNotFound indicates the referenced question does not exist.
	ErrQuestionNotFound = errors.New("question not found")
	// ErrAnswerNotFound indicates the referenced answer does not exist within the question.
	ErrAnswerNotFound = errors.New("answer not found")
	// ErrUnauthorized indicates the caller is not the author of the question.
	ErrUnauthorized = errors.New("caller is not the question author")
	// ErrSelfRewardForbidden indicates the author tried to mark their own answer as correct.
	ErrSelfRewardForbidden = errors.New("question author cannot reward own answer")
	// ErrAlreadyResolved indicates the question already has a correct answer.
	ErrAlreadyResolved = errors.New("question already has a correct answer")
	// ErrInvariantViolation indicates an internal bookkeeping fault: a stake would go negative.
	ErrInvariantViolation = errors.New("stake bookkeeping invariant violated")
)
