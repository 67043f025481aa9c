package stocksync_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shlomaa/distributors-import/internal/platform/catalogtesting"
	"github.com/shlomaa/distributors-import/internal/stocksync"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitSetLevel(t *testing.T) {
	tests := map[string]struct {
		current          int
		target           int
		wantTransactions []catalogtesting.Transaction
	}{
		"raise level": {
			current: 5,
			target:  8,
			wantTransactions: []catalogtesting.Transaction{
				{VariationID: 100, LocationID: 7, Qty: 3, Note: "partner import: add stock level"},
			},
		},
		"lower level": {
			current: 5,
			target:  2,
			wantTransactions: []catalogtesting.Transaction{
				{VariationID: 100, LocationID: 7, Qty: -3, Note: "partner import: remove stock level"},
			},
		},
		"level already converged": {
			current: 5,
			target:  5,
		},
		"from zero": {
			current: 0,
			target:  4,
			wantTransactions: []catalogtesting.Transaction{
				{VariationID: 100, LocationID: 7, Qty: 4, Note: "partner import: add stock level"},
			},
		},
		"to zero": {
			current: 4,
			target:  0,
			wantTransactions: []catalogtesting.Transaction{
				{VariationID: 100, LocationID: 7, Qty: -4, Note: "partner import: remove stock level"},
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			keeper := catalogtesting.NewFakeStockKeeper()
			keeper.SeedLevel(100, 7, tt.current)
			sync := stocksync.NewSynchronizer(keeper)

			err := sync.SetLevel(context.TODO(), 100, 7, tt.target)

			require.NoError(t, err)
			assert.Equal(t, tt.wantTransactions, keeper.Transactions)
			assert.Equal(t, tt.target, keeper.Level(100, 7), "level should converge to target")
		})
	}
}

func TestUnitSetLevelIdempotent(t *testing.T) {
	keeper := catalogtesting.NewFakeStockKeeper()
	keeper.SeedLevel(100, 7, 5)
	sync := stocksync.NewSynchronizer(keeper)

	require.NoError(t, sync.SetLevel(context.TODO(), 100, 7, 8))
	require.NoError(t, sync.SetLevel(context.TODO(), 100, 7, 8))

	assert.Len(t, keeper.Transactions, 1, "second run should not emit any transaction")
	assert.Equal(t, 8, keeper.Level(100, 7))
}

func TestUnitSetLevelReadError(t *testing.T) {
	keeper := &failingKeeper{err: errors.New("connection lost")}
	sync := stocksync.NewSynchronizer(keeper)

	err := sync.SetLevel(context.TODO(), 100, 7, 8)

	require.EqualError(t, err, "can't read current stock level: connection lost")
}

type failingKeeper struct {
	err error
}

func (f *failingKeeper) CurrentLevel(context.Context, int64, int64) (int, error) {
	return 0, f.err
}

func (f *failingKeeper) Receive(context.Context, int64, int64, int, string) error {
	return f.err
}

func (f *failingKeeper) Sell(context.Context, int64, int64, int, string) error {
	return f.err
}
