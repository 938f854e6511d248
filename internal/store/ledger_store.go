// Package store persists the full ledger snapshot to Redis: a stakes hash,
// a hash per question with its answers in an ordered list, the question id
// order, and the id counter.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/mitchellh/mapstructure"
	"github.com/redis/go-redis/v9"

	"github.com/saxenaaman628/qa-escrow-ledger/internal/models"
)

const (
	keyNextQuestionID = "ledger:next_question_id"
	keyQuestionOrder  = "ledger:questions"
	keyStakes         = "ledger:stakes"
)

func questionKey(id uint32) string {
	return fmt.Sprintf("ledger:question:%d", id)
}

func answersKey(id uint32) string {
	return fmt.Sprintf("ledger:question:%d:answers", id)
}

type LedgerStore struct {
	rdb *redis.Client
}

func NewLedgerStore(rdb *redis.Client) *LedgerStore {
	return &LedgerStore{rdb: rdb}
}

// Save writes the whole snapshot in one transactional pipeline, so a
// partially written snapshot is never visible.
func (s *LedgerStore) Save(ctx context.Context, state models.LedgerState) error {
	pipe := s.rdb.TxPipeline()

	pipe.Set(ctx, keyNextQuestionID, strconv.FormatUint(uint64(state.NextQuestionID), 10), 0)

	pipe.Del(ctx, keyQuestionOrder)
	if len(state.Order) > 0 {
		ids := make([]interface{}, 0, len(state.Order))
		for _, id := range state.Order {
			ids = append(ids, strconv.FormatUint(uint64(id), 10))
		}
		pipe.RPush(ctx, keyQuestionOrder, ids...)
	}

	pipe.Del(ctx, keyStakes)
	if len(state.Stakes) > 0 {
		stakes := make(map[string]interface{}, len(state.Stakes))
		for account, amount := range state.Stakes {
			stakes[account] = strconv.FormatInt(amount, 10)
		}
		pipe.HSet(ctx, keyStakes, stakes)
	}

	for _, id := range state.Order {
		question, ok := state.Questions[id]
		if !ok {
			continue
		}
		pipe.HSet(ctx, questionKey(id), encodeQuestion(question))
		pipe.Del(ctx, answersKey(id))
		if len(question.Answers) > 0 {
			encoded, err := encodeAnswers(question.Answers)
			if err != nil {
				return err
			}
			pipe.RPush(ctx, answersKey(id), encoded...)
		}
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("save ledger snapshot: %w", err)
	}
	return nil
}

// Load reads the snapshot back. An empty Redis yields an empty state.
func (s *LedgerStore) Load(ctx context.Context) (models.LedgerState, error) {
	state := models.LedgerState{
		Stakes:    make(map[string]int64),
		Questions: make(map[uint32]models.Question),
	}

	nextID, err := s.rdb.Get(ctx, keyNextQuestionID).Uint64()
	if err == redis.Nil {
		return state, nil
	}
	if err != nil {
		return state, fmt.Errorf("load id counter: %w", err)
	}
	state.NextQuestionID = uint32(nextID)

	stakes, err := s.rdb.HGetAll(ctx, keyStakes).Result()
	if err != nil {
		return state, fmt.Errorf("load stakes: %w", err)
	}
	for account, raw := range stakes {
		amount, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return state, fmt.Errorf("stake of %s: %w", account, err)
		}
		state.Stakes[account] = amount
	}

	ids, err := s.rdb.LRange(ctx, keyQuestionOrder, 0, -1).Result()
	if err != nil {
		return state, fmt.Errorf("load question order: %w", err)
	}
	for _, rawID := range ids {
		id64, err := strconv.ParseUint(rawID, 10, 32)
		if err != nil {
			return state, fmt.Errorf("question id %q: %w", rawID, err)
		}
		id := uint32(id64)

		data, err := s.rdb.HGetAll(ctx, questionKey(id)).Result()
		if err != nil || len(data) == 0 {
			return state, fmt.Errorf("load question %d: %w", id, err)
		}
		question, err := decodeQuestion(data)
		if err != nil {
			return state, fmt.Errorf("decode question %d: %w", id, err)
		}

		rawAnswers, err := s.rdb.LRange(ctx, answersKey(id), 0, -1).Result()
		if err != nil {
			return state, fmt.Errorf("load answers of %d: %w", id, err)
		}
		question.Answers, err = decodeAnswers(rawAnswers)
		if err != nil {
			return state, fmt.Errorf("decode answers of %d: %w", id, err)
		}

		state.Questions[id] = question
		state.Order = append(state.Order, id)
	}

	return state, nil
}

func encodeQuestion(q models.Question) map[string]interface{} {
	return map[string]interface{}{
		"content":           q.Content,
		"author_account_id": q.AuthorAccountID,
		"reward":            strconv.FormatInt(q.Reward, 10),
	}
}

// decodeQuestion maps a Redis hash onto a Question. Values arrive as
// strings, so the decoder runs weakly typed to recover the reward integer.
func decodeQuestion(data map[string]string) (models.Question, error) {
	var question models.Question
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &question,
	})
	if err != nil {
		return question, err
	}
	if err := decoder.Decode(data); err != nil {
		return question, err
	}
	question.Answers = []models.Answer{}
	return question, nil
}

func encodeAnswers(answers []models.Answer) ([]interface{}, error) {
	encoded := make([]interface{}, 0, len(answers))
	for _, answer := range answers {
		raw, err := json.Marshal(answer)
		if err != nil {
			return nil, err
		}
		encoded = append(encoded, raw)
	}
	return encoded, nil
}

func decodeAnswers(raw []string) ([]models.Answer, error) {
	answers := make([]models.Answer, 0, len(raw))
	for _, item := range raw {
		var answer models.Answer
		if err := json.Unmarshal([]byte(item), &answer); err != nil {
			return nil, err
		}
		answers = append(answers, answer)
	}
	return answers, nil
}
