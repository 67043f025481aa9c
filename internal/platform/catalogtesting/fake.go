// Package catalogtesting provides in-memory implementations of the catalog,
// region, stock and cart storage for tests that assert on converged state.
package catalogtesting

import (
	"context"
	"sort"
	"sync"

	"github.com/shlomaa/distributors-import/internal/platform/models"
)

// FakeCatalog is an in-memory catalog storage. Safe for concurrent use.
type FakeCatalog struct {
	mu sync.Mutex

	nextID     int64
	stores     map[string]*models.Store
	locations  map[int64]*models.StockLocation
	products   map[int64]*models.Product
	variations map[int64]*models.Variation
	sizes      map[string]int64
}

// NewFakeCatalog returns empty FakeCatalog.
func NewFakeCatalog() *FakeCatalog {
	return &FakeCatalog{
		stores:     map[string]*models.Store{},
		locations:  map[int64]*models.StockLocation{},
		products:   map[int64]*models.Product{},
		variations: map[int64]*models.Variation{},
		sizes:      map[string]int64{},
	}
}

func (f *FakeCatalog) nextIdentity() int64 {
	f.nextID++
	return f.nextID
}

// FindStore returns the store with uniqueID or nil when there is none.
func (f *FakeCatalog) FindStore(_ context.Context, uniqueID string) (*models.Store, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	store, ok := f.stores[uniqueID]
	if !ok {
		return nil, nil
	}

	copied := *store
	copied.LocationIDs = append([]int64(nil), store.LocationIDs...)

	return &copied, nil
}

// SaveStore inserts or updates store, assigning ID on insert.
func (f *FakeCatalog) SaveStore(_ context.Context, store *models.Store) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if store.ID == 0 {
		store.ID = f.nextIdentity()
	}

	copied := *store
	copied.LocationIDs = append([]int64(nil), store.LocationIDs...)
	f.stores[store.UniqueID] = &copied

	return nil
}

// StoreStockLocations returns the locations attached to a store keyed by unique id.
func (f *FakeCatalog) StoreStockLocations(_ context.Context, storeID int64) (map[string]*models.StockLocation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var store *models.Store
	for _, candidate := range f.stores {
		if candidate.ID == storeID {
			store = candidate
			break
		}
	}
	if store == nil {
		return map[string]*models.StockLocation{}, nil
	}

	result := map[string]*models.StockLocation{}
	for _, locationID := range store.LocationIDs {
		if location, ok := f.locations[locationID]; ok {
			copied := *location
			result[location.UniqueID] = &copied
		}
	}

	return result, nil
}

// CreateStockLocation inserts location, assigning its ID.
func (f *FakeCatalog) CreateStockLocation(_ context.Context, location *models.StockLocation) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	location.ID = f.nextIdentity()
	copied := *location
	f.locations[location.ID] = &copied

	return nil
}

// ActiveProducts returns the published products of a store.
func (f *FakeCatalog) ActiveProducts(_ context.Context, storeID int64) ([]*models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var products []*models.Product
	for _, product := range f.products {
		if product.StoreID == storeID && product.Published {
			copied := *product
			products = append(products, &copied)
		}
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })

	return products, nil
}

// UnpublishProduct marks a product unpublished.
func (f *FakeCatalog) UnpublishProduct(_ context.Context, productID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if product, ok := f.products[productID]; ok {
		product.Published = false
	}

	return nil
}

// FindProduct returns the store's product linked to relatedProductID or nil.
func (f *FakeCatalog) FindProduct(_ context.Context, storeID, relatedProductID int64) (*models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, product := range f.products {
		if product.StoreID == storeID && product.RelatedProductID == relatedProductID {
			copied := *product
			return &copied, nil
		}
	}

	return nil, nil
}

// SaveProduct inserts or updates product, assigning ID on insert.
func (f *FakeCatalog) SaveProduct(_ context.Context, product *models.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if product.ID == 0 {
		product.ID = f.nextIdentity()
	}

	copied := *product
	f.products[product.ID] = &copied

	return nil
}

// ProductVariations returns all variations of a product.
func (f *FakeCatalog) ProductVariations(_ context.Context, productID int64) ([]*models.Variation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var variations []*models.Variation
	for _, variation := range f.variations {
		if variation.ProductID == productID {
			copied := *variation
			variations = append(variations, &copied)
		}
	}
	sort.Slice(variations, func(i, j int) bool { return variations[i].ID < variations[j].ID })

	return variations, nil
}

// SaveVariation inserts or updates variation, assigning ID on insert.
func (f *FakeCatalog) SaveVariation(_ context.Context, variation *models.Variation) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if variation.ID == 0 {
		variation.ID = f.nextIdentity()
	}

	copied := *variation
	f.variations[variation.ID] = &copied

	return nil
}

// DeleteVariation removes a variation.
func (f *FakeCatalog) DeleteVariation(_ context.Context, variationID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.variations, variationID)

	return nil
}

// SizeValues returns all size attribute values keyed by name.
func (f *FakeCatalog) SizeValues(_ context.Context) (map[string]int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	result := make(map[string]int64, len(f.sizes))
	for name, id := range f.sizes {
		result[name] = id
	}

	return result, nil
}

// CreateSizeValue inserts a size attribute value and returns its id.
func (f *FakeCatalog) CreateSizeValue(_ context.Context, name string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := f.nextIdentity()
	f.sizes[name] = id

	return id, nil
}

// PartnerStores returns all stores linked to a partner.
func (f *FakeCatalog) PartnerStores(_ context.Context, partnerID int64) ([]*models.Store, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var stores []*models.Store
	for _, store := range f.stores {
		if store.PartnerID == partnerID {
			copied := *store
			copied.LocationIDs = append([]int64(nil), store.LocationIDs...)
			stores = append(stores, &copied)
		}
	}
	sort.Slice(stores, func(i, j int) bool { return stores[i].ID < stores[j].ID })

	return stores, nil
}

// Store returns the stored state of a store or nil.
func (f *FakeCatalog) Store(uniqueID string) *models.Store {
	store, _ := f.FindStore(context.Background(), uniqueID)
	return store
}

// Products returns all stored products sorted by ID.
func (f *FakeCatalog) Products() []*models.Product {
	f.mu.Lock()
	defer f.mu.Unlock()

	var products []*models.Product
	for _, product := range f.products {
		copied := *product
		products = append(products, &copied)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })

	return products
}

// Variations returns all stored variations sorted by ID.
func (f *FakeCatalog) Variations() []*models.Variation {
	f.mu.Lock()
	defer f.mu.Unlock()

	var variations []*models.Variation
	for _, variation := range f.variations {
		copied := *variation
		variations = append(variations, &copied)
	}
	sort.Slice(variations, func(i, j int) bool { return variations[i].ID < variations[j].ID })

	return variations
}

// SeedStore stores a store as if it was saved earlier.
func (f *FakeCatalog) SeedStore(store models.Store) *models.Store {
	_ = f.SaveStore(context.Background(), &store)
	return &store
}

// SeedLocation stores a stock location as if it was created earlier.
func (f *FakeCatalog) SeedLocation(location models.StockLocation) *models.StockLocation {
	_ = f.CreateStockLocation(context.Background(), &location)
	return &location
}

// SeedProduct stores a product as if it was saved earlier.
func (f *FakeCatalog) SeedProduct(product models.Product) *models.Product {
	_ = f.SaveProduct(context.Background(), &product)
	return &product
}

// SeedVariation stores a variation as if it was saved earlier.
func (f *FakeCatalog) SeedVariation(variation models.Variation) *models.Variation {
	_ = f.SaveVariation(context.Background(), &variation)
	return &variation
}

// FakeRegions is an in-memory region taxonomy keyed by ISO code.
type FakeRegions struct {
	Regions map[string]*models.Region
}

// FindRegionByISO returns the region for an ISO code or nil when unknown.
func (f *FakeRegions) FindRegionByISO(_ context.Context, code string) (*models.Region, error) {
	region, ok := f.Regions[code]
	if !ok {
		return nil, nil
	}

	return region, nil
}

// FakeSKUResolver is an in-memory SKU to catalog identity mapping.
type FakeSKUResolver struct {
	SKUs map[string]*models.SKUInfo
}

// ResolveSKU returns the internal identity of sku or nil when unknown.
func (f *FakeSKUResolver) ResolveSKU(_ context.Context, sku string) (*models.SKUInfo, error) {
	info, ok := f.SKUs[sku]
	if !ok {
		return nil, nil
	}

	return info, nil
}

type ledgerKey struct {
	VariationID int64
	LocationID  int64
}

// Transaction is one recorded stock movement.
type Transaction struct {
	VariationID int64
	LocationID  int64
	Qty         int
	Note        string
}

// FakeStockKeeper is an in-memory stock transaction ledger. Safe for concurrent use.
type FakeStockKeeper struct {
	mu sync.Mutex

	levels       map[ledgerKey]int
	Transactions []Transaction
}

// NewFakeStockKeeper returns empty FakeStockKeeper.
func NewFakeStockKeeper() *FakeStockKeeper {
	return &FakeStockKeeper{
		levels: map[ledgerKey]int{},
	}
}

// CurrentLevel returns the current total stock level.
func (f *FakeStockKeeper) CurrentLevel(_ context.Context, variationID, locationID int64) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.levels[ledgerKey{variationID, locationID}], nil
}

// Receive adds qty to the stock level.
func (f *FakeStockKeeper) Receive(_ context.Context, variationID, locationID int64, qty int, note string) error {
	f.record(variationID, locationID, qty, note)
	return nil
}

// Sell removes qty from the stock level.
func (f *FakeStockKeeper) Sell(_ context.Context, variationID, locationID int64, qty int, note string) error {
	f.record(variationID, locationID, -qty, note)
	return nil
}

func (f *FakeStockKeeper) record(variationID, locationID int64, qty int, note string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.levels[ledgerKey{variationID, locationID}] += qty
	f.Transactions = append(f.Transactions, Transaction{
		VariationID: variationID,
		LocationID:  locationID,
		Qty:         qty,
		Note:        note,
	})
}

// SeedLevel sets a stock level without recording a transaction.
func (f *FakeStockKeeper) SeedLevel(variationID, locationID int64, level int) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.levels[ledgerKey{variationID, locationID}] = level
}

// Level returns the current stock level.
func (f *FakeStockKeeper) Level(variationID, locationID int64) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.levels[ledgerKey{variationID, locationID}]
}

// FakeCarts is an in-memory cart storage.
type FakeCarts struct {
	Orders  []*models.Order
	Removed []int64
}

// FindDraftCarts returns open cart orders of a store with their items.
// Orders are copied, so later removals don't shift the returned slices.
func (f *FakeCarts) FindDraftCarts(_ context.Context, storeID int64) ([]*models.Order, error) {
	var orders []*models.Order
	for _, order := range f.Orders {
		if order.StoreID == storeID {
			copied := *order
			copied.Items = append([]models.OrderItem(nil), order.Items...)
			orders = append(orders, &copied)
		}
	}

	return orders, nil
}

// RemoveItem removes one line item from an order.
func (f *FakeCarts) RemoveItem(_ context.Context, orderID, itemID int64) error {
	for _, order := range f.Orders {
		if order.ID != orderID {
			continue
		}
		for ix, item := range order.Items {
			if item.ID == itemID {
				order.Items = append(order.Items[:ix], order.Items[ix+1:]...)
				f.Removed = append(f.Removed, itemID)
				break
			}
		}
	}

	return nil
}

// FakePartners records saved statistics and unpublished partners.
type FakePartners struct {
	SavedStats        map[int64]*models.ImportStatistics
	Unpublished       []int64
	SaveStatisticsErr error
}

// SaveImportStatistics records stats for a partner.
func (f *FakePartners) SaveImportStatistics(_ context.Context, partnerID int64, stats *models.ImportStatistics) error {
	if f.SaveStatisticsErr != nil {
		return f.SaveStatisticsErr
	}

	if f.SavedStats == nil {
		f.SavedStats = map[int64]*models.ImportStatistics{}
	}
	f.SavedStats[partnerID] = stats

	return nil
}

// UnpublishPartner records partnerID as unpublished.
func (f *FakePartners) UnpublishPartner(_ context.Context, partnerID int64) error {
	f.Unpublished = append(f.Unpublished, partnerID)
	return nil
}
