package models

import "time"

// FeedEntry is one product block decoded from a partner feed.
type FeedEntry struct {
	SKU     string
	Title   string
	Regions []RegionStock
}

// RegionStock groups stock rows under the canonical region codes of one feed region.
// Merged feed codes fan out into two canonical codes, all others into one.
type RegionStock struct {
	Codes []string
	Rows  []StockRow
}

// StockRow is one physical stock line of a feed region.
// Available is kept as sent so its validation stays a normalization concern.
type StockRow struct {
	StockID   string
	City      string
	Address   string
	Available string
	Active    bool
	Pickup    bool
	Price     float64
}

// DesiredStore is the per-region store state the catalog should converge to.
type DesiredStore struct {
	ID         string
	RegionCode string
	Title      string
	City       string
	Stocks     []string
}

// DesiredVariation is one SKU's desired state within one region.
// Count maps derived stock id to the quantity text to converge to.
type DesiredVariation struct {
	SKU         string
	VariationID int64
	Size        string
	Price       float64
	Count       map[string]string
}

// DesiredState is the full desired catalog state assembled from one feed.
type DesiredState struct {
	// Stores by canonical region code.
	Stores map[string]*DesiredStore
	// StockNames maps derived stock id to display name.
	StockNames map[string]string
	// ProductTitles maps internal product id to display name.
	ProductTitles map[int64]string
	// Variations by region code, internal product id and original SKU.
	Variations map[string]map[int64]map[string]*DesiredVariation
}

// DesiredRegion is the slice of a DesiredState for one canonical region code.
type DesiredRegion struct {
	Code          string
	Store         *DesiredStore
	StockNames    map[string]string
	ProductTitles map[int64]string
	Variations    map[int64]map[string]*DesiredVariation
}

// Partner is an external supplier whose feed is imported.
type Partner struct {
	ID        int64
	Name      string
	UniqueID  string
	ImportURL string
	Published bool
}

// Region is a taxonomy entry for a geographic sales region.
type Region struct {
	ID      int64
	Name    string
	ISOCode string
}

// Store scopes products and prices to one region for one partner.
type Store struct {
	ID                int64
	UniqueID          string
	Name              string
	City              string
	RegionID          int64
	PartnerID         int64
	LocationIDs       []int64
	DefaultLocationID int64
}

// StockLocation is a named physical inventory point referenced by a store.
type StockLocation struct {
	ID       int64
	UniqueID string
	Name     string
}

// Product is a store-scoped catalog product linked to an internal product.
type Product struct {
	ID               int64
	StoreID          int64
	RelatedProductID int64
	Title            string
	Published        bool
}

// Variation is a purchasable SKU of a catalog product.
type Variation struct {
	ID                 int64
	ProductID          int64
	SKU                string
	Price              float64
	SizeValueID        int64
	RelatedVariationID int64
	Published          bool
}

// SKUInfo is the internal identity a feed SKU resolves to.
type SKUInfo struct {
	VariationID  int64
	ProductID    int64
	ProductTitle string
	Size         string
}

// Order is a draft cart order with its line items.
type Order struct {
	ID      int64
	StoreID int64
	Items   []OrderItem
}

// OrderItem is one cart line. KitID is zero for items outside any kit group.
type OrderItem struct {
	ID        int64
	ProductID int64
	KitID     int64
	UnitPrice float64
}

// ImportStatistics is the summary of one import or deactivation run.
type ImportStatistics struct {
	RegionsCount int
	Count        int
	Created      int
	Updated      int
	Deleted      int
	Duration     int64
	Date         time.Time
	Errors       []string
}

// NewImportStatistics returns empty statistics dated at start.
func NewImportStatistics(start time.Time) *ImportStatistics {
	return &ImportStatistics{
		Date: start.UTC(),
	}
}

// RegionReport is the outcome of reconciling one region.
type RegionReport struct {
	Code    string
	Count   int
	Created int
	Updated int
	Deleted int
	Errors  []string
}
