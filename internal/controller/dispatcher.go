package controller

import (
	"context"
	"fmt"
	"sync"

	"github.com/saxenaaman628/qa-escrow-ledger/internal/ledger"
	"github.com/saxenaaman628/qa-escrow-ledger/internal/logger"
	"github.com/saxenaaman628/qa-escrow-ledger/internal/metrics"
	"github.com/saxenaaman628/qa-escrow-ledger/internal/models"
)

// SnapshotStore persists ledger snapshots.
type SnapshotStore interface {
	Save(ctx context.Context, state models.LedgerState) error
	Load(ctx context.Context) (models.LedgerState, error)
}

// Dispatcher is the serializing host around the ledger: it presents every
// mutating call as a single isolated transaction, persists the snapshot
// after each successful mutation, and rolls the in-memory state back to
// the last durable snapshot when persistence fails.
type Dispatcher struct {
	mu     sync.Mutex
	ledger *ledger.Ledger
	store  SnapshotStore
	log    *logger.Logger
	m      *metrics.Metrics
}

func NewDispatcher(l *ledger.Ledger, store SnapshotStore, log *logger.Logger, m *metrics.Metrics) *Dispatcher {
	return &Dispatcher{ledger: l, store: store, log: log, m: m}
}

func (d *Dispatcher) CreateQuestion(ctx context.Context, content, callerID string, attached int64) (uint32, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	id, err := d.ledger.CreateQuestion(content, callerID, attached)
	if err != nil {
		return 0, err
	}
	if err := d.commit(ctx); err != nil {
		return 0, err
	}
	return id, nil
}

func (d *Dispatcher) CreateAnswer(ctx context.Context, questionID uint32, content, callerID string, attached int64) (uint32, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	id, err := d.ledger.CreateAnswer(questionID, content, callerID, attached)
	if err != nil {
		return 0, err
	}
	if err := d.commit(ctx); err != nil {
		return 0, err
	}
	return id, nil
}

func (d *Dispatcher) UpvoteAnswer(ctx context.Context, questionID, answerID uint32, callerID string, attached int64) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.ledger.UpvoteAnswer(ctx, questionID, answerID, callerID, attached); err != nil {
		return err
	}
	return d.commit(ctx)
}

func (d *Dispatcher) SetCorrectAnswer(ctx context.Context, questionID, answerID uint32, callerID string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.ledger.SetCorrectAnswer(ctx, questionID, answerID, callerID); err != nil {
		return err
	}
	return d.commit(ctx)
}

func (d *Dispatcher) ListQuestions() *models.QuestionList {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.ledger.ListQuestions()
}

func (d *Dispatcher) commit(ctx context.Context) error {
	if err := d.store.Save(ctx, d.ledger.Snapshot()); err != nil {
		state, loadErr := d.store.Load(ctx)
		if loadErr != nil {
			d.log.WithError(loadErr).Error("rollback reload failed, ledger state may diverge from store")
			return fmt.Errorf("persist ledger: %w", err)
		}
		d.ledger.Restore(state)
		return fmt.Errorf("persist ledger: %w", err)
	}
	list := d.ledger.ListQuestions()
	d.m.RecordLedgerTotals(d.ledger.TotalStaked(), list.Len())
	return nil
}
