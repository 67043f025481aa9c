// Package reconciler converges the persisted catalog of one store toward the
// desired state assembled from a partner feed: stores and stock locations are
// resolved or created by derived id, products and variations are created,
// updated or retired, and stock levels are handed to the synchronizer.
package reconciler

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/samber/lo"
	"github.com/shlomaa/distributors-import/internal/platform/models"
)

//go:generate mockery --name Catalog --filename catalog.go

// Catalog is the store, product, variation and stock location storage.
type Catalog interface {
	// FindStore returns the store with uniqueID or nil when there is none.
	FindStore(ctx context.Context, uniqueID string) (*models.Store, error)
	// SaveStore inserts or updates store, assigning ID on insert.
	SaveStore(ctx context.Context, store *models.Store) error
	// StoreStockLocations returns the locations attached to a store keyed by unique id.
	StoreStockLocations(ctx context.Context, storeID int64) (map[string]*models.StockLocation, error)
	// CreateStockLocation inserts location, assigning its ID.
	CreateStockLocation(ctx context.Context, location *models.StockLocation) error
	// ActiveProducts returns the published products of a store.
	ActiveProducts(ctx context.Context, storeID int64) ([]*models.Product, error)
	// UnpublishProduct marks a product unpublished.
	UnpublishProduct(ctx context.Context, productID int64) error
	// FindProduct returns the store's product linked to relatedProductID or nil.
	FindProduct(ctx context.Context, storeID, relatedProductID int64) (*models.Product, error)
	// SaveProduct inserts or updates product, assigning ID on insert.
	SaveProduct(ctx context.Context, product *models.Product) error
	// ProductVariations returns all variations of a product.
	ProductVariations(ctx context.Context, productID int64) ([]*models.Variation, error)
	// SaveVariation inserts or updates variation, assigning ID on insert.
	SaveVariation(ctx context.Context, variation *models.Variation) error
	// DeleteVariation removes a variation.
	DeleteVariation(ctx context.Context, variationID int64) error
	// SizeValues returns all size attribute values keyed by name.
	SizeValues(ctx context.Context) (map[string]int64, error)
	// CreateSizeValue inserts a size attribute value and returns its id.
	CreateSizeValue(ctx context.Context, name string) (int64, error)
	// PartnerStores returns all stores linked to a partner.
	PartnerStores(ctx context.Context, partnerID int64) ([]*models.Store, error)
}

//go:generate mockery --name Regions --filename regions.go

// Regions is the region taxonomy lookup.
type Regions interface {
	// FindRegionByISO returns the region for an ISO code or nil when unknown.
	FindRegionByISO(ctx context.Context, code string) (*models.Region, error)
}

// StockSynchronizer sets absolute stock levels.
type StockSynchronizer interface {
	SetLevel(ctx context.Context, variationID, locationID int64, target int) error
}

// Reconciler converges catalog state per region.
type Reconciler struct {
	catalog Catalog
	regions Regions
	stock   StockSynchronizer
}

// NewReconciler returns new Reconciler.
func NewReconciler(catalog Catalog, regions Regions, stock StockSynchronizer) *Reconciler {
	return &Reconciler{
		catalog: catalog,
		regions: regions,
		stock:   stock,
	}
}

// Reconcile converges the catalog for one region of partner's desired state.
// It never fails the run: collaborator and validation problems are recorded in
// the returned report. A region whose code is unknown to the taxonomy leaves
// its store untouched.
func (r *Reconciler) Reconcile(
	ctx context.Context,
	partner *models.Partner,
	region *models.DesiredRegion,
	sizes *SizeCache,
) *models.RegionReport {
	report := &models.RegionReport{Code: region.Code}

	taxonomy, err := r.regions.FindRegionByISO(ctx, region.Code)
	if err != nil {
		report.Errors = append(report.Errors, fmt.Sprintf("can't look up region %s: %s", region.Code, err))
		return report
	}
	if taxonomy == nil {
		report.Errors = append(report.Errors, fmt.Sprintf("invalid region format %s", region.Code))
		return report
	}

	store, err := r.prepareStore(ctx, partner, region, taxonomy)
	if err != nil {
		report.Errors = append(report.Errors, fmt.Sprintf("can't prepare store %s: %s", region.Store.ID, err))
		return report
	}

	locations, err := r.catalog.StoreStockLocations(ctx, store.ID)
	if err != nil {
		report.Errors = append(report.Errors, fmt.Sprintf("can't load stock locations of store %s: %s", store.UniqueID, err))
		return report
	}

	active, err := r.catalog.ActiveProducts(ctx, store.ID)
	if err != nil {
		report.Errors = append(report.Errors, fmt.Sprintf("can't load products of store %s: %s", store.UniqueID, err))
		return report
	}

	// Snapshot before any mutation, then retire everything: products the feed
	// no longer sends must end up unpublished.
	before := make(map[int64]struct{}, len(active))
	for _, product := range active {
		before[product.ID] = struct{}{}
		if err := r.catalog.UnpublishProduct(ctx, product.ID); err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("can't unpublish product %d: %s", product.ID, err))
		}
	}

	processed := map[int64]struct{}{}
	for _, productID := range sortedKeys(region.Variations) {
		catalogID, errs := r.reconcileProduct(ctx, store, region, productID, region.Variations[productID], locations, sizes)
		report.Errors = append(report.Errors, errs...)
		if catalogID != 0 {
			processed[catalogID] = struct{}{}
		}
	}

	report.Count = len(processed)
	for id := range processed {
		if _, ok := before[id]; ok {
			report.Updated++
		} else {
			report.Created++
		}
	}
	for id := range before {
		if _, ok := processed[id]; !ok {
			report.Deleted++
		}
	}

	return report
}

// prepareStore resolves or creates the region's store by derived id and
// attaches its stock location set, first location being the default
// allocation location.
func (r *Reconciler) prepareStore(
	ctx context.Context,
	partner *models.Partner,
	region *models.DesiredRegion,
	taxonomy *models.Region,
) (*models.Store, error) {
	store, err := r.catalog.FindStore(ctx, region.Store.ID)
	if err != nil {
		return nil, fmt.Errorf("can't find store: %w", err)
	}
	if store == nil {
		store = &models.Store{
			UniqueID: region.Store.ID,
			Name:     region.Store.Title,
		}
	}
	store.City = region.Store.City
	store.RegionID = taxonomy.ID
	store.PartnerID = partner.ID

	locations := map[string]*models.StockLocation{}
	if store.ID != 0 {
		if locations, err = r.catalog.StoreStockLocations(ctx, store.ID); err != nil {
			return nil, fmt.Errorf("can't load stock locations: %w", err)
		}
	}

	locationIDs := make([]int64, 0, len(region.Store.Stocks))
	for _, uniqueID := range region.Store.Stocks {
		location, ok := locations[uniqueID]
		if !ok {
			location = &models.StockLocation{
				UniqueID: uniqueID,
				Name:     region.StockNames[uniqueID],
			}
			if err := r.catalog.CreateStockLocation(ctx, location); err != nil {
				return nil, fmt.Errorf("can't create stock location %s: %w", uniqueID, err)
			}
		}
		locationIDs = append(locationIDs, location.ID)
	}

	store.LocationIDs = locationIDs
	store.DefaultLocationID = 0
	if len(locationIDs) > 0 {
		store.DefaultLocationID = locationIDs[0]
	}

	if err := r.catalog.SaveStore(ctx, store); err != nil {
		return nil, fmt.Errorf("can't save store: %w", err)
	}

	return store, nil
}

// reconcileProduct converges one catalog product and its variations. It
// returns the catalog product id when the product ended up published and zero
// otherwise.
func (r *Reconciler) reconcileProduct(
	ctx context.Context,
	store *models.Store,
	region *models.DesiredRegion,
	productID int64,
	desired map[string]*models.DesiredVariation,
	locations map[string]*models.StockLocation,
	sizes *SizeCache,
) (int64, []string) {
	var errs []string

	product, err := r.catalog.FindProduct(ctx, store.ID, productID)
	if err != nil {
		return 0, []string{fmt.Sprintf("can't find product %d: %s", productID, err)}
	}
	if product == nil {
		product = &models.Product{
			StoreID:          store.ID,
			RelatedProductID: productID,
			Title:            region.ProductTitles[productID],
		}
		if err := r.catalog.SaveProduct(ctx, product); err != nil {
			return 0, []string{fmt.Sprintf("can't create product %d: %s", productID, err)}
		}
	}

	existingList, err := r.catalog.ProductVariations(ctx, product.ID)
	if err != nil {
		return 0, []string{fmt.Sprintf("can't load variations of product %d: %s", productID, err)}
	}
	existing := lo.SliceToMap(existingList, func(v *models.Variation) (string, *models.Variation) {
		return v.SKU, v
	})

	touched := map[int64]struct{}{}
	valid := 0

	skus := lo.Keys(desired)
	sort.Strings(skus)
	for _, sku := range skus {
		variation := desired[sku]

		sizeID, err := sizes.GetOrCreate(ctx, variation.Size)
		if err != nil {
			errs = append(errs, fmt.Sprintf("can't resolve size %q for SKU %s: %s", variation.Size, sku, err))
			continue
		}

		target, ok := existing[variation.SKU]
		if !ok {
			target = &models.Variation{
				ProductID: product.ID,
				SKU:       variation.SKU,
			}
		}
		target.Price = variation.Price
		target.SizeValueID = sizeID
		target.RelatedVariationID = variation.VariationID
		target.Published = true

		if err := r.catalog.SaveVariation(ctx, target); err != nil {
			errs = append(errs, fmt.Sprintf("can't save variation %s: %s", variation.SKU, err))
			continue
		}
		touched[target.ID] = struct{}{}
		valid++

		errs = append(errs, r.syncLevels(ctx, target, sku, variation.Count, locations)...)
	}

	product.Published = valid > 0
	if err := r.catalog.SaveProduct(ctx, product); err != nil {
		errs = append(errs, fmt.Sprintf("can't save product %d: %s", productID, err))
		return 0, errs
	}

	// Stale SKUs the partner no longer sends are removed, not just hidden.
	for _, variation := range existingList {
		if _, ok := touched[variation.ID]; ok {
			continue
		}
		if err := r.catalog.DeleteVariation(ctx, variation.ID); err != nil {
			errs = append(errs, fmt.Sprintf("can't delete variation %s: %s", variation.SKU, err))
		}
	}

	if !product.Published {
		return 0, errs
	}
	return product.ID, errs
}

// syncLevels pushes desired quantities to the stock synchronizer. Quantities
// which are not valid non-negative numbers force the level to zero and are
// reported as format errors.
func (r *Reconciler) syncLevels(
	ctx context.Context,
	variation *models.Variation,
	sku string,
	counts map[string]string,
	locations map[string]*models.StockLocation,
) []string {
	var errs []string

	stockIDs := lo.Keys(counts)
	sort.Strings(stockIDs)
	for _, stockID := range stockIDs {
		location, ok := locations[stockID]
		if !ok {
			continue
		}

		raw := counts[stockID]
		qty, err := strconv.Atoi(raw)
		if err != nil || qty < 0 {
			errs = append(errs, fmt.Sprintf("invalid stock quantity format: %q for SKU %s", raw, sku))
			qty = 0
		}

		if err := r.stock.SetLevel(ctx, variation.ID, location.ID, qty); err != nil {
			errs = append(errs, fmt.Sprintf("can't set stock level for SKU %s: %s", sku, err))
		}
	}

	return errs
}

func sortedKeys(variations map[int64]map[string]*models.DesiredVariation) []int64 {
	keys := lo.Keys(variations)
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
