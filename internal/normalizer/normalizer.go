// Package normalizer maps decoded feed entries onto the desired catalog state
// of one partner: stores and stock locations per region, product variations
// with prices and per-stock quantities, all under deterministic derived ids.
package normalizer

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/shlomaa/distributors-import/internal/platform/models"
)

//go:generate mockery --name SKUResolver --filename skuresolver.go

// SKUResolver resolves feed SKUs to internal catalog identities.
type SKUResolver interface {
	// ResolveSKU returns the internal identity of sku or nil when the catalog
	// does not carry it.
	ResolveSKU(ctx context.Context, sku string) (*models.SKUInfo, error)
}

// Normalizer assembles desired catalog state from decoded feed entries.
type Normalizer struct {
	resolver SKUResolver
}

// NewNormalizer returns new Normalizer.
func NewNormalizer(resolver SKUResolver) *Normalizer {
	return &Normalizer{resolver: resolver}
}

// Normalize converts entries into the desired state for partner. It returns the
// desired state and a list of validation errors. Feed SKUs unknown to the
// catalog are skipped silently. A partner without a configured unique id yields
// one error and empty desired state.
func (n *Normalizer) Normalize(
	ctx context.Context,
	entries []models.FeedEntry,
	partner *models.Partner,
) (*models.DesiredState, []string) {
	state := &models.DesiredState{
		Stores:        map[string]*models.DesiredStore{},
		StockNames:    map[string]string{},
		ProductTitles: map[int64]string{},
		Variations:    map[string]map[int64]map[string]*models.DesiredVariation{},
	}

	if partner.UniqueID == "" {
		return state, []string{"partner has no configured unique id"}
	}

	var errs []string
	if len(entries) == 0 {
		errs = append(errs, "feed format is invalid: no products found")
	}

	for ix := range entries {
		errs = append(errs, n.normalizeEntry(ctx, &entries[ix], partner, state)...)
	}

	return state, errs
}

func (n *Normalizer) normalizeEntry(
	ctx context.Context,
	entry *models.FeedEntry,
	partner *models.Partner,
	state *models.DesiredState,
) []string {
	info, err := n.resolver.ResolveSKU(ctx, entry.SKU)
	if err != nil {
		return []string{fmt.Sprintf("can't resolve SKU %s: %s", entry.SKU, err)}
	}
	if info == nil {
		// Feeds may reference products this catalog does not carry.
		return nil
	}

	state.ProductTitles[info.ProductID] = info.ProductTitle

	var (
		errs     []string
		validRow bool
	)

	for _, region := range entry.Regions {
		for _, code := range region.Codes {
			for ix := range region.Rows {
				rowErrs := validateRow(&region.Rows[ix], entry.SKU, code)
				if len(rowErrs) > 0 {
					errs = append(errs, rowErrs...)
					continue
				}
				validRow = true
				n.applyRow(state, partner, info, entry, code, &region.Rows[ix])
			}
		}
	}

	if !validRow {
		errs = append(errs, fmt.Sprintf("could not parse data for SKU %s", entry.SKU))
	}

	return errs
}

// applyRow folds one valid stock row into the desired state. Availability for
// the same region and stock accumulates; the desired price is the highest valid
// price seen for the SKU in the region, so input order never matters.
func (n *Normalizer) applyRow(
	state *models.DesiredState,
	partner *models.Partner,
	info *models.SKUInfo,
	entry *models.FeedEntry,
	code string,
	row *models.StockRow,
) {
	store, ok := state.Stores[code]
	if !ok {
		store = &models.DesiredStore{
			ID:         StoreID(partner.UniqueID, code),
			RegionCode: code,
			Title:      partner.Name + " " + code,
		}
		state.Stores[code] = store
	}
	store.City = row.City

	stockID := LocationID(partner.UniqueID, row.StockID)
	if _, ok := state.StockNames[stockID]; !ok {
		state.StockNames[stockID] = row.City + ", " + row.Address
	}
	if !lo.Contains(store.Stocks, stockID) {
		store.Stocks = append(store.Stocks, stockID)
	}

	if info.Size == "" {
		return
	}

	variation := ensureVariation(state, code, info.ProductID, entry.SKU)
	variation.SKU = VariationSKU(partner.UniqueID, code, entry.SKU)
	variation.VariationID = info.VariationID
	variation.Size = info.Size
	if row.Price > variation.Price {
		variation.Price = row.Price
	}

	qty, _ := strconv.Atoi(row.Available)
	current, _ := strconv.Atoi(variation.Count[stockID])
	variation.Count[stockID] = strconv.Itoa(current + qty)
}

func ensureVariation(
	state *models.DesiredState,
	code string,
	productID int64,
	sku string,
) *models.DesiredVariation {
	products, ok := state.Variations[code]
	if !ok {
		products = map[int64]map[string]*models.DesiredVariation{}
		state.Variations[code] = products
	}
	variations, ok := products[productID]
	if !ok {
		variations = map[string]*models.DesiredVariation{}
		products[productID] = variations
	}
	variation, ok := variations[sku]
	if !ok {
		variation = &models.DesiredVariation{Count: map[string]string{}}
		variations[sku] = variation
	}
	return variation
}

func validateRow(row *models.StockRow, sku, code string) []string {
	var errs []string
	if row.City == "" {
		errs = append(errs, fmt.Sprintf("SKU %s in region %s: required parameter city is missing", sku, code))
	}
	if row.Address == "" {
		errs = append(errs, fmt.Sprintf("SKU %s in region %s: required parameter address is missing", sku, code))
	}
	if row.StockID == "" {
		errs = append(errs, fmt.Sprintf("SKU %s in region %s: required parameter stock_id is missing", sku, code))
	}
	if row.Price <= 0 {
		errs = append(errs, fmt.Sprintf("SKU %s in region %s: invalid parameter price", sku, code))
	}
	if qty, err := strconv.Atoi(row.Available); err != nil || qty < 0 {
		errs = append(errs, fmt.Sprintf("SKU %s in region %s: invalid parameter available", sku, code))
	}
	return errs
}

// StoreID derives the stable store id for a partner and region.
func StoreID(partnerUID, regionCode string) string {
	return partnerUID + "_" + regionCode
}

// LocationID derives the stable stock location id for a partner and feed stock id.
func LocationID(partnerUID, stockID string) string {
	return partnerUID + "_" + strings.ReplaceAll(stockID, " ", "_")
}

// VariationSKU derives the per-store SKU for a partner, region and feed SKU.
func VariationSKU(partnerUID, regionCode, sku string) string {
	return partnerUID + "_" + regionCode + "_" + sku
}
