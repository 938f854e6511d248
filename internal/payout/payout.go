// Package payout credits tokens paid out of the ledger's custody to an
// account's external balance. Balances live outside the ledger state:
// they only record where disbursed tokens went.
package payout

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const balancePrefix = "balance:"

type RedisPayouts struct {
	rdb *redis.Client
}

func NewRedisPayouts(rdb *redis.Client) *RedisPayouts {
	return &RedisPayouts{rdb: rdb}
}

// Transfer credits amount to the account's external balance.
func (p *RedisPayouts) Transfer(ctx context.Context, accountID string, amount int64) error {
	if err := p.rdb.IncrBy(ctx, balancePrefix+accountID, amount).Err(); err != nil {
		return fmt.Errorf("credit balance of %s: %w", accountID, err)
	}
	return nil
}

// Balance reads an account's external balance. Missing accounts read as 0.
func (p *RedisPayouts) Balance(ctx context.Context, accountID string) (int64, error) {
	val, err := p.rdb.Get(ctx, balancePrefix+accountID).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read balance of %s: %w", accountID, err)
	}
	return val, nil
}
