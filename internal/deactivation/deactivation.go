// Package deactivation disables a partner: every product of every partner
// store is unpublished, draft carts referencing those products are cleaned up
// including dependent kit items, and a statistics record is persisted.
package deactivation

import (
	"context"
	"fmt"
	"time"

	"github.com/shlomaa/distributors-import/internal/platform/models"
)

// Catalog is the subset of catalog storage the engine needs.
type Catalog interface {
	PartnerStores(ctx context.Context, partnerID int64) ([]*models.Store, error)
	ActiveProducts(ctx context.Context, storeID int64) ([]*models.Product, error)
	UnpublishProduct(ctx context.Context, productID int64) error
}

// Carts is the shopping cart storage.
type Carts interface {
	// FindDraftCarts returns open cart orders of a store with their items.
	FindDraftCarts(ctx context.Context, storeID int64) ([]*models.Order, error)
	// RemoveItem removes one line item from an order.
	RemoveItem(ctx context.Context, orderID, itemID int64) error
}

// Partners persists partner state and run statistics.
type Partners interface {
	SaveImportStatistics(ctx context.Context, partnerID int64, stats *models.ImportStatistics) error
	UnpublishPartner(ctx context.Context, partnerID int64) error
}

// Clock provides times.
type Clock interface {
	Now() time.Time
}

// Engine disables partners.
type Engine struct {
	catalog  Catalog
	carts    Carts
	partners Partners
	clock    Clock
}

// NewEngine returns new Engine.
func NewEngine(catalog Catalog, carts Carts, partners Partners, clock Clock) *Engine {
	return &Engine{
		catalog:  catalog,
		carts:    carts,
		partners: partners,
		clock:    clock,
	}
}

// Disable unpublishes all products of partner's stores, purges them from draft
// carts and marks the partner unpublished. reason, when non-empty, is recorded
// as an error entry of the persisted statistics. A partner without stores or
// carts is not an error.
func (e *Engine) Disable(ctx context.Context, partner *models.Partner, reason string) (*models.ImportStatistics, error) {
	start := e.clock.Now()
	stats := models.NewImportStatistics(start)
	if reason != "" {
		stats.Errors = append(stats.Errors, reason)
	}

	stores, err := e.catalog.PartnerStores(ctx, partner.ID)
	if err != nil {
		return nil, fmt.Errorf("can't load partner stores: %w", err)
	}

	for _, store := range stores {
		if err := e.disableStore(ctx, store, stats); err != nil {
			return nil, err
		}
	}

	stats.Duration = int64(e.clock.Now().Sub(start).Seconds())

	if err := e.partners.SaveImportStatistics(ctx, partner.ID, stats); err != nil {
		return nil, fmt.Errorf("can't save statistics: %w", err)
	}
	if err := e.partners.UnpublishPartner(ctx, partner.ID); err != nil {
		return nil, fmt.Errorf("can't unpublish partner: %w", err)
	}

	return stats, nil
}

func (e *Engine) disableStore(ctx context.Context, store *models.Store, stats *models.ImportStatistics) error {
	products, err := e.catalog.ActiveProducts(ctx, store.ID)
	if err != nil {
		return fmt.Errorf("can't load products of store %s: %w", store.UniqueID, err)
	}

	disabled := make(map[int64]struct{}, len(products))
	for _, product := range products {
		if err := e.catalog.UnpublishProduct(ctx, product.ID); err != nil {
			return fmt.Errorf("can't unpublish product %d: %w", product.ID, err)
		}
		disabled[product.ID] = struct{}{}
		stats.Deleted++
	}

	if len(disabled) == 0 {
		return nil
	}

	orders, err := e.carts.FindDraftCarts(ctx, store.ID)
	if err != nil {
		return fmt.Errorf("can't load carts of store %s: %w", store.UniqueID, err)
	}

	for _, order := range orders {
		if err := e.cleanOrder(ctx, order, disabled); err != nil {
			return err
		}
	}

	return nil
}

// cleanOrder removes items purchasing disabled products, then sweeps the
// remaining items once more: a zero-priced item referencing a kit group that
// just lost a member is a bundled extra with no paid sibling left, so it goes
// too.
func (e *Engine) cleanOrder(ctx context.Context, order *models.Order, disabled map[int64]struct{}) error {
	touchedKits := map[int64]struct{}{}
	removed := map[int64]struct{}{}

	for _, item := range order.Items {
		if _, ok := disabled[item.ProductID]; !ok {
			continue
		}
		if item.KitID != 0 {
			touchedKits[item.KitID] = struct{}{}
		}
		if err := e.carts.RemoveItem(ctx, order.ID, item.ID); err != nil {
			return fmt.Errorf("can't remove item %d from order %d: %w", item.ID, order.ID, err)
		}
		removed[item.ID] = struct{}{}
	}

	for _, item := range order.Items {
		if _, ok := removed[item.ID]; ok {
			continue
		}
		if item.KitID == 0 || item.UnitPrice > 0 {
			continue
		}
		if _, ok := touchedKits[item.KitID]; !ok {
			continue
		}
		if err := e.carts.RemoveItem(ctx, order.ID, item.ID); err != nil {
			return fmt.Errorf("can't remove item %d from order %d: %w", item.ID, order.ID, err)
		}
	}

	return nil
}
