package reconciler_test

import (
	"context"
	"testing"

	"github.com/shlomaa/distributors-import/internal/platform/catalogtesting"
	"github.com/shlomaa/distributors-import/internal/platform/models"
	"github.com/shlomaa/distributors-import/internal/reconciler"
	"github.com/shlomaa/distributors-import/internal/stocksync"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var partner = &models.Partner{ID: 123, Name: "Acme", UniqueID: "P7"}

func TestUnitReconcileNewRegion(t *testing.T) {
	catalog := catalogtesting.NewFakeCatalog()
	keeper := catalogtesting.NewFakeStockKeeper()
	rec := newReconciler(catalog, keeper)

	region := &models.DesiredRegion{
		Code: "RU-MOW",
		Store: &models.DesiredStore{
			ID:         "P7_RU-MOW",
			RegionCode: "RU-MOW",
			Title:      "Acme RU-MOW",
			City:       "Moscow",
			Stocks:     []string{"P7_Warehouse_1"},
		},
		StockNames:    map[string]string{"P7_Warehouse_1": "Moscow, Tverskaya 1"},
		ProductTitles: map[int64]string{10: "Trail Boots"},
		Variations: map[int64]map[string]*models.DesiredVariation{
			10: {
				"BOOT-42": {
					SKU:         "P7_RU-MOW_BOOT-42",
					VariationID: 100,
					Size:        "42",
					Price:       129.99,
					Count:       map[string]string{"P7_Warehouse_1": "8"},
				},
			},
		},
	}

	report := rec.Reconcile(context.TODO(), partner, region, reconciler.NewSizeCache(catalog))

	assert.Empty(t, report.Errors)
	assert.Equal(t, 1, report.Count)
	assert.Equal(t, 1, report.Created)
	assert.Zero(t, report.Updated)
	assert.Zero(t, report.Deleted)

	store := catalog.Store("P7_RU-MOW")
	require.NotNil(t, store, "should create the store under its derived id")
	assert.Equal(t, "Acme RU-MOW", store.Name)
	assert.Equal(t, "Moscow", store.City)
	assert.Equal(t, int64(77), store.RegionID)
	assert.Equal(t, int64(123), store.PartnerID)
	require.Len(t, store.LocationIDs, 1)
	assert.Equal(t, store.LocationIDs[0], store.DefaultLocationID,
		"first stock location should become the default",
	)

	products := catalog.Products()
	require.Len(t, products, 1)
	assert.Equal(t, "Trail Boots", products[0].Title)
	assert.Equal(t, int64(10), products[0].RelatedProductID)
	assert.True(t, products[0].Published)

	variations := catalog.Variations()
	require.Len(t, variations, 1)
	assert.Equal(t, "P7_RU-MOW_BOOT-42", variations[0].SKU)
	assert.Equal(t, int64(100), variations[0].RelatedVariationID)
	assert.InDelta(t, 129.99, variations[0].Price, 0.0001)
	assert.True(t, variations[0].Published)

	require.Len(t, keeper.Transactions, 1)
	assert.Equal(t, 8, keeper.Transactions[0].Qty)
	assert.Equal(t, "partner import: add stock level", keeper.Transactions[0].Note)
}

func TestUnitReconcileStaleProducts(t *testing.T) {
	catalog := catalogtesting.NewFakeCatalog()
	keeper := catalogtesting.NewFakeStockKeeper()
	rec := newReconciler(catalog, keeper)

	location := catalog.SeedLocation(models.StockLocation{UniqueID: "P7_Warehouse_1", Name: "Moscow, Tverskaya 1"})
	store := catalog.SeedStore(models.Store{
		UniqueID:          "P7_RU-MOW",
		Name:              "Acme RU-MOW",
		City:              "Moscow",
		RegionID:          77,
		PartnerID:         123,
		LocationIDs:       []int64{location.ID},
		DefaultLocationID: location.ID,
	})

	productA := catalog.SeedProduct(models.Product{StoreID: store.ID, RelatedProductID: 10, Title: "Trail Boots", Published: true})
	productB := catalog.SeedProduct(models.Product{StoreID: store.ID, RelatedProductID: 11, Title: "Rain Jacket", Published: true})
	catalog.SeedVariation(models.Variation{ProductID: productA.ID, SKU: "P7_RU-MOW_BOOT-42", Published: true})
	variationB := catalog.SeedVariation(models.Variation{ProductID: productB.ID, SKU: "P7_RU-MOW_JACKET-7", Published: true})

	region := &models.DesiredRegion{
		Code: "RU-MOW",
		Store: &models.DesiredStore{
			ID:         "P7_RU-MOW",
			RegionCode: "RU-MOW",
			Title:      "Acme RU-MOW",
			City:       "Moscow",
			Stocks:     []string{"P7_Warehouse_1"},
		},
		StockNames:    map[string]string{"P7_Warehouse_1": "Moscow, Tverskaya 1"},
		ProductTitles: map[int64]string{11: "Rain Jacket", 12: "Wool Scarf"},
		Variations: map[int64]map[string]*models.DesiredVariation{
			11: {
				"JACKET-7": {
					SKU:         "P7_RU-MOW_JACKET-7",
					VariationID: 101,
					Size:        "M",
					Price:       79.90,
					Count:       map[string]string{"P7_Warehouse_1": "2"},
				},
			},
			12: {
				"SCARF-1": {
					SKU:         "P7_RU-MOW_SCARF-1",
					VariationID: 102,
					Size:        "onesize",
					Price:       19.90,
					Count:       map[string]string{"P7_Warehouse_1": "4"},
				},
			},
		},
	}

	report := rec.Reconcile(context.TODO(), partner, region, reconciler.NewSizeCache(catalog))

	assert.Empty(t, report.Errors)
	assert.Equal(t, 2, report.Count)
	assert.Equal(t, 1, report.Created, "product 12 is new")
	assert.Equal(t, 1, report.Updated, "product 11 survives")
	assert.Equal(t, 1, report.Deleted, "product 10 is no longer sent")

	byRelated := map[int64]*models.Product{}
	for _, product := range catalog.Products() {
		byRelated[product.RelatedProductID] = product
	}
	assert.False(t, byRelated[10].Published, "stale product should end up unpublished")
	assert.True(t, byRelated[11].Published)
	assert.True(t, byRelated[12].Published)

	kept := false
	for _, variation := range catalog.Variations() {
		if variation.ID == variationB.ID {
			kept = true
			assert.InDelta(t, 79.90, variation.Price, 0.0001, "surviving variation should get the new price")
		}
	}
	assert.True(t, kept, "surviving variation should keep its identity")
}

func TestUnitReconcileStaleVariation(t *testing.T) {
	catalog := catalogtesting.NewFakeCatalog()
	keeper := catalogtesting.NewFakeStockKeeper()
	rec := newReconciler(catalog, keeper)

	location := catalog.SeedLocation(models.StockLocation{UniqueID: "P7_Warehouse_1", Name: "Moscow, Tverskaya 1"})
	store := catalog.SeedStore(models.Store{
		UniqueID:    "P7_RU-MOW",
		RegionID:    77,
		PartnerID:   123,
		LocationIDs: []int64{location.ID},
	})
	product := catalog.SeedProduct(models.Product{StoreID: store.ID, RelatedProductID: 10, Title: "Trail Boots", Published: true})
	stale := catalog.SeedVariation(models.Variation{ProductID: product.ID, SKU: "P7_RU-MOW_BOOT-41", Published: true})

	region := &models.DesiredRegion{
		Code: "RU-MOW",
		Store: &models.DesiredStore{
			ID:     "P7_RU-MOW",
			Title:  "Acme RU-MOW",
			City:   "Moscow",
			Stocks: []string{"P7_Warehouse_1"},
		},
		StockNames:    map[string]string{"P7_Warehouse_1": "Moscow, Tverskaya 1"},
		ProductTitles: map[int64]string{10: "Trail Boots"},
		Variations: map[int64]map[string]*models.DesiredVariation{
			10: {
				"BOOT-42": {
					SKU:         "P7_RU-MOW_BOOT-42",
					VariationID: 100,
					Size:        "42",
					Price:       129.99,
					Count:       map[string]string{"P7_Warehouse_1": "8"},
				},
			},
		},
	}

	report := rec.Reconcile(context.TODO(), partner, region, reconciler.NewSizeCache(catalog))

	assert.Empty(t, report.Errors)
	assert.Equal(t, 1, report.Updated)

	variations := catalog.Variations()
	require.Len(t, variations, 1, "stale variation should be deleted")
	assert.NotEqual(t, stale.ID, variations[0].ID)
	assert.Equal(t, "P7_RU-MOW_BOOT-42", variations[0].SKU)
}

func TestUnitReconcileUnknownRegion(t *testing.T) {
	catalog := catalogtesting.NewFakeCatalog()
	keeper := catalogtesting.NewFakeStockKeeper()
	rec := newReconciler(catalog, keeper)

	region := &models.DesiredRegion{
		Code:  "XX-99",
		Store: &models.DesiredStore{ID: "P7_XX-99", Title: "Acme XX-99", City: "Nowhere"},
	}

	report := rec.Reconcile(context.TODO(), partner, region, reconciler.NewSizeCache(catalog))

	assert.Equal(t, []string{"invalid region format XX-99"}, report.Errors)
	assert.Zero(t, report.Count)
	assert.Nil(t, catalog.Store("P7_XX-99"), "store of an unknown region must stay untouched")
}

func TestUnitReconcileInvalidQuantities(t *testing.T) {
	tests := map[string]struct {
		quantity string
	}{
		"negative": {quantity: "-3"},
		"text":     {quantity: "abc"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			catalog := catalogtesting.NewFakeCatalog()
			keeper := catalogtesting.NewFakeStockKeeper()
			rec := newReconciler(catalog, keeper)

			region := &models.DesiredRegion{
				Code: "RU-MOW",
				Store: &models.DesiredStore{
					ID:     "P7_RU-MOW",
					Title:  "Acme RU-MOW",
					City:   "Moscow",
					Stocks: []string{"P7_Warehouse_1"},
				},
				StockNames:    map[string]string{"P7_Warehouse_1": "Moscow, Tverskaya 1"},
				ProductTitles: map[int64]string{10: "Trail Boots"},
				Variations: map[int64]map[string]*models.DesiredVariation{
					10: {
						"BOOT-42": {
							SKU:         "P7_RU-MOW_BOOT-42",
							VariationID: 100,
							Size:        "42",
							Price:       129.99,
							Count:       map[string]string{"P7_Warehouse_1": tt.quantity},
						},
					},
				},
			}

			report := rec.Reconcile(context.TODO(), partner, region, reconciler.NewSizeCache(catalog))

			assert.Equal(t,
				[]string{`invalid stock quantity format: "` + tt.quantity + `" for SKU BOOT-42`},
				report.Errors,
			)
			assert.Equal(t, 1, report.Count, "the product itself is still processed")

			variations := catalog.Variations()
			require.Len(t, variations, 1)
			location := catalog.Store("P7_RU-MOW").LocationIDs[0]
			assert.Zero(t, keeper.Level(variations[0].ID, location), "level should be forced to zero")
			assert.Empty(t, keeper.Transactions, "a level already at zero emits no transaction")
		})
	}
}

func TestUnitSizeCacheReuse(t *testing.T) {
	catalog := catalogtesting.NewFakeCatalog()
	sizes := reconciler.NewSizeCache(catalog)

	first, err := sizes.GetOrCreate(context.TODO(), "42")
	require.NoError(t, err)

	second, err := sizes.GetOrCreate(context.TODO(), "42")
	require.NoError(t, err)
	assert.Equal(t, first, second, "same size name should resolve to one value")

	other, err := sizes.GetOrCreate(context.TODO(), "43")
	require.NoError(t, err)
	assert.NotEqual(t, first, other)

	values, err := catalog.SizeValues(context.TODO())
	require.NoError(t, err)
	assert.Len(t, values, 2)
}

func newReconciler(catalog *catalogtesting.FakeCatalog, keeper *catalogtesting.FakeStockKeeper) *reconciler.Reconciler {
	regions := &catalogtesting.FakeRegions{
		Regions: map[string]*models.Region{
			"RU-MOW": {ID: 77, Name: "Moscow", ISOCode: "RU-MOW"},
		},
	}

	return reconciler.NewReconciler(catalog, regions, stocksync.NewSynchronizer(keeper))
}
