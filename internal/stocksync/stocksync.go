// Package stocksync converges absolute stock levels through a collaborator
// which only supports relative mutation. Writing the difference instead of the
// target keeps repeated runs idempotent and every change auditable through the
// transaction history.
package stocksync

import (
	"context"
	"fmt"
)

//go:generate mockery --name StockKeeper --filename stockkeeper.go

// StockKeeper reads and mutates stock levels per variation and location.
type StockKeeper interface {
	// CurrentLevel returns the current total stock level.
	CurrentLevel(ctx context.Context, variationID, locationID int64) (int, error)
	// Receive adds qty to the stock level.
	Receive(ctx context.Context, variationID, locationID int64, qty int, note string) error
	// Sell removes qty from the stock level.
	Sell(ctx context.Context, variationID, locationID int64, qty int, note string) error
}

const (
	receiveNote = "partner import: add stock level"
	sellNote    = "partner import: remove stock level"
)

// Synchronizer sets absolute stock levels via signed transactions.
type Synchronizer struct {
	keeper StockKeeper
}

// NewSynchronizer returns new Synchronizer.
func NewSynchronizer(keeper StockKeeper) *Synchronizer {
	return &Synchronizer{keeper: keeper}
}

// SetLevel converges the stock level of variationID at locationID to target.
// A positive difference is received, a negative one is sold, an exact match
// emits no transaction.
func (s *Synchronizer) SetLevel(ctx context.Context, variationID, locationID int64, target int) error {
	current, err := s.keeper.CurrentLevel(ctx, variationID, locationID)
	if err != nil {
		return fmt.Errorf("can't read current stock level: %w", err)
	}

	diff := target - current
	switch {
	case diff > 0:
		if err := s.keeper.Receive(ctx, variationID, locationID, diff, receiveNote); err != nil {
			return fmt.Errorf("can't receive stock: %w", err)
		}
	case diff < 0:
		if err := s.keeper.Sell(ctx, variationID, locationID, -diff, sellNote); err != nil {
			return fmt.Errorf("can't sell stock: %w", err)
		}
	}

	return nil
}
