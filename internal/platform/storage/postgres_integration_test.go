package storage_test

import (
	"context"
	"database/sql"
	"strings"
	"testing"
	"time"

	"github.com/shlomaa/distributors-import/internal/platform/models"
	"github.com/shlomaa/distributors-import/internal/platform/storage"
	pgmodels "github.com/shlomaa/distributors-import/internal/platform/storage/gen/postgres/public/model"
	"github.com/shlomaa/distributors-import/internal/platform/storage/storagetesting"
	_ "github.com/lib/pq"
	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"
)

func TestPostgresIntegration(t *testing.T) {
	suite.Run(t, new(PostgresTestSuite))
}

type PostgresTestSuite struct {
	suite.Suite
	DB *sql.DB
}

func (s *PostgresTestSuite) SetupSuite() {
	s.DB = storagetesting.Open(s.T())
	storagetesting.CleanupData(s.T(), s.DB)
}

func (s *PostgresTestSuite) TearDownSuite() {
	storagetesting.CleanupData(s.T(), s.DB)
	if err := s.DB.Close(); err != nil {
		s.FailNow("close DB", err)
	}
}

func (s *PostgresTestSuite) TestIntegrationFindPartner() {
	storagetesting.CleanupData(s.T(), s.DB)
	storagetesting.InsertPartners(s.T(), s.DB, pgmodels.Partner{
		ID:        123,
		Name:      "Acme Distribution",
		UniqueID:  "P7",
		ImportURL: "https://feeds.acme.example/products.xml",
		Published: true,
	})

	pg := storage.NewPostgres(s.DB)

	partner, err := pg.FindPartner(context.Background(), 123)
	s.Require().NoError(err)
	s.Require().NotNil(partner)
	s.Equal("P7", partner.UniqueID)
	s.Equal("https://feeds.acme.example/products.xml", partner.ImportURL)

	missing, err := pg.FindPartner(context.Background(), 999)
	s.Require().NoError(err)
	s.Nil(missing)
}

func (s *PostgresTestSuite) TestIntegrationSaveImportStatistics() {
	storagetesting.CleanupData(s.T(), s.DB)
	storagetesting.InsertPartners(s.T(), s.DB, pgmodels.Partner{
		ID:        123,
		Name:      "Acme Distribution",
		UniqueID:  "P7",
		Published: true,
	})

	pg := storage.NewPostgres(s.DB)

	stats := &models.ImportStatistics{
		RegionsCount: 2,
		Count:        40,
		Created:      3,
		Updated:      37,
		Deleted:      1,
		Duration:     12,
		Date:         time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC),
		Errors:       []string{"RU-77 | region skipped: required parameter code is missing", "could not parse data for SKU ABC"},
	}

	s.Require().NoError(pg.SaveImportStatistics(context.Background(), 123, stats))

	partner := s.selectPartner(123)
	s.Equal(int32(2), partner.ImportRegionsCount)
	s.Equal(int64(40), partner.ImportCount)
	s.Equal(int64(3), partner.ImportCreated)
	s.Equal(int64(37), partner.ImportUpdated)
	s.Equal(int64(1), partner.ImportDeleted)
	s.Equal(int64(12), partner.ImportDuration)
	s.Len(strings.Split(partner.ImportErrors, "\n"), 2)

	s.Error(pg.SaveImportStatistics(context.Background(), 999, stats))
}

func (s *PostgresTestSuite) TestIntegrationResolveSKU() {
	storagetesting.CleanupData(s.T(), s.DB)
	storagetesting.InsertCatalogSKUs(s.T(), s.DB,
		pgmodels.SgProduct{ID: 10, Title: "Trail Boots", Published: true},
		pgmodels.SgVariation{ID: 100, SgProductID: 10, SKU: "BOOT-42", Size: "42", Published: true},
		pgmodels.SgVariation{ID: 101, SgProductID: 10, SKU: "BOOT-43", Size: "43", Published: false},
	)

	pg := storage.NewPostgres(s.DB)

	info, err := pg.ResolveSKU(context.Background(), "BOOT-42")
	s.Require().NoError(err)
	s.Require().NotNil(info)
	s.Equal(int64(100), info.VariationID)
	s.Equal(int64(10), info.ProductID)
	s.Equal("Trail Boots", info.ProductTitle)
	s.Equal("42", info.Size)

	unpublished, err := pg.ResolveSKU(context.Background(), "BOOT-43")
	s.Require().NoError(err)
	s.Nil(unpublished)

	unknown, err := pg.ResolveSKU(context.Background(), "UNKNOWN")
	s.Require().NoError(err)
	s.Nil(unknown)
}

func (s *PostgresTestSuite) TestIntegrationSaveStore() {
	storagetesting.CleanupData(s.T(), s.DB)
	storagetesting.InsertPartners(s.T(), s.DB, pgmodels.Partner{ID: 123, UniqueID: "P7", Published: true})
	storagetesting.InsertRegions(s.T(), s.DB, pgmodels.Region{ID: 77, Name: "Moscow", ISOCode: "RU-MOW"})

	pg := storage.NewPostgres(s.DB)
	ctx := context.Background()

	first := &models.StockLocation{UniqueID: "P7_Warehouse_1", Name: "Moscow, Tverskaya 1"}
	s.Require().NoError(pg.CreateStockLocation(ctx, first))
	s.NotZero(first.ID)

	store := &models.Store{
		UniqueID:          "P7_RU-MOW",
		Name:              "Acme Distribution",
		City:              "Moscow",
		RegionID:          77,
		PartnerID:         123,
		LocationIDs:       []int64{first.ID},
		DefaultLocationID: first.ID,
	}
	s.Require().NoError(pg.SaveStore(ctx, store))
	s.NotZero(store.ID)

	stored, err := pg.FindStore(ctx, "P7_RU-MOW")
	s.Require().NoError(err)
	s.Require().NotNil(stored)
	s.Equal(store.ID, stored.ID)
	s.Equal([]int64{first.ID}, stored.LocationIDs)

	second := &models.StockLocation{UniqueID: "P7_Warehouse_2", Name: "Moscow, Arbat 10"}
	s.Require().NoError(pg.CreateStockLocation(ctx, second))

	stored.City = "Moscow Center"
	stored.LocationIDs = []int64{first.ID, second.ID}
	s.Require().NoError(pg.SaveStore(ctx, stored))

	updated, err := pg.FindStore(ctx, "P7_RU-MOW")
	s.Require().NoError(err)
	s.Require().NotNil(updated)
	s.Equal("Moscow Center", updated.City)
	s.ElementsMatch([]int64{first.ID, second.ID}, updated.LocationIDs)

	locations, err := pg.StoreStockLocations(ctx, stored.ID)
	s.Require().NoError(err)
	s.Len(locations, 2)
	s.Contains(locations, "P7_Warehouse_1")
	s.Contains(locations, "P7_Warehouse_2")
}

func (s *PostgresTestSuite) TestIntegrationStockLedger() {
	storagetesting.CleanupData(s.T(), s.DB)
	storagetesting.InsertPartners(s.T(), s.DB, pgmodels.Partner{ID: 123, UniqueID: "P7", Published: true})
	storagetesting.InsertRegions(s.T(), s.DB, pgmodels.Region{ID: 77, Name: "Moscow", ISOCode: "RU-MOW"})

	pg := storage.NewPostgres(s.DB)
	ctx := context.Background()

	location := &models.StockLocation{UniqueID: "P7_Warehouse_1", Name: "Moscow, Tverskaya 1"}
	s.Require().NoError(pg.CreateStockLocation(ctx, location))

	store := &models.Store{
		UniqueID:    "P7_RU-MOW",
		Name:        "Acme Distribution",
		City:        "Moscow",
		RegionID:    77,
		PartnerID:   123,
		LocationIDs: []int64{location.ID},
	}
	s.Require().NoError(pg.SaveStore(ctx, store))

	product := &models.Product{StoreID: store.ID, RelatedProductID: 10, Title: "Trail Boots", Published: true}
	s.Require().NoError(pg.SaveProduct(ctx, product))

	sizeID, err := pg.CreateSizeValue(ctx, "42")
	s.Require().NoError(err)

	variation := &models.Variation{
		ProductID:          product.ID,
		SKU:                "P7_RU-MOW_BOOT-42",
		Price:              129.99,
		SizeValueID:        sizeID,
		RelatedVariationID: 100,
		Published:          true,
	}
	s.Require().NoError(pg.SaveVariation(ctx, variation))

	level, err := pg.CurrentLevel(ctx, variation.ID, location.ID)
	s.Require().NoError(err)
	s.Zero(level)

	s.Require().NoError(pg.Receive(ctx, variation.ID, location.ID, 8, "partner import: add stock level"))

	level, err = pg.CurrentLevel(ctx, variation.ID, location.ID)
	s.Require().NoError(err)
	s.Equal(8, level)

	s.Require().NoError(pg.Sell(ctx, variation.ID, location.ID, 3, "partner import: remove stock level"))

	level, err = pg.CurrentLevel(ctx, variation.ID, location.ID)
	s.Require().NoError(err)
	s.Equal(5, level)

	transactions := storagetesting.SelectStockTransactions(s.T(), s.DB)
	s.Require().Len(transactions, 2)
	s.Equal(int32(8), transactions[0].Qty)
	s.Equal(int32(-3), transactions[1].Qty)

	s.Require().NoError(pg.DeleteVariation(ctx, variation.ID))
	s.Empty(storagetesting.SelectStockTransactions(s.T(), s.DB))
}

func (s *PostgresTestSuite) TestIntegrationDraftCarts() {
	storagetesting.CleanupData(s.T(), s.DB)
	storagetesting.InsertPartners(s.T(), s.DB, pgmodels.Partner{ID: 123, UniqueID: "P7", Published: true})
	storagetesting.InsertRegions(s.T(), s.DB, pgmodels.Region{ID: 77, Name: "Moscow", ISOCode: "RU-MOW"})
	storagetesting.InsertStores(s.T(), s.DB, pgmodels.Store{
		ID:        55,
		UniqueID:  "P7_RU-MOW",
		Name:      "Acme Distribution",
		City:      "Moscow",
		RegionID:  77,
		PartnerID: 123,
	})

	s.insertOrder(pgmodels.PurchaseOrder{ID: 1, StoreID: 55, State: "draft", Cart: true})
	s.insertOrder(pgmodels.PurchaseOrder{ID: 2, StoreID: 55, State: "confirmed", Cart: false})
	s.insertOrderItems(
		pgmodels.OrderItem{ID: 11, OrderID: 1, ProductID: 900, UnitPrice: 129.99},
		pgmodels.OrderItem{ID: 12, OrderID: 1, ProductID: 901, KitID: lo.ToPtr(int64(900)), UnitPrice: 0},
		pgmodels.OrderItem{ID: 13, OrderID: 2, ProductID: 902, UnitPrice: 49.99},
	)

	pg := storage.NewPostgres(s.DB)
	ctx := context.Background()

	carts, err := pg.FindDraftCarts(ctx, 55)
	s.Require().NoError(err)
	s.Require().Len(carts, 1)
	s.Equal(int64(1), carts[0].ID)
	s.Require().Len(carts[0].Items, 2)
	s.Equal(int64(900), carts[0].Items[1].KitID)

	s.Require().NoError(pg.RemoveItem(ctx, 1, 12))

	carts, err = pg.FindDraftCarts(ctx, 55)
	s.Require().NoError(err)
	s.Require().Len(carts, 1)
	s.Len(carts[0].Items, 1)
}

func (s *PostgresTestSuite) selectPartner(partnerID int64) pgmodels.Partner {
	s.T().Helper()

	row := s.DB.QueryRow(
		`SELECT import_regions_count, import_duration, import_count, import_updated,
			import_created, import_deleted, import_errors
		FROM partner WHERE id = $1`,
		partnerID,
	)

	var partner pgmodels.Partner
	err := row.Scan(
		&partner.ImportRegionsCount,
		&partner.ImportDuration,
		&partner.ImportCount,
		&partner.ImportUpdated,
		&partner.ImportCreated,
		&partner.ImportDeleted,
		&partner.ImportErrors,
	)
	if err != nil {
		s.FailNow("can't select partner", err)
	}

	return partner
}

func (s *PostgresTestSuite) insertOrder(order pgmodels.PurchaseOrder) {
	s.T().Helper()

	_, err := s.DB.Exec(
		`INSERT INTO purchase_order (id, store_id, state, cart) VALUES ($1, $2, $3, $4)`,
		order.ID, order.StoreID, order.State, order.Cart,
	)
	if err != nil {
		s.FailNow("can't insert order", err)
	}
}

func (s *PostgresTestSuite) insertOrderItems(items ...pgmodels.OrderItem) {
	s.T().Helper()

	for _, item := range items {
		_, err := s.DB.Exec(
			`INSERT INTO order_item (id, order_id, product_id, kit_id, unit_price) VALUES ($1, $2, $3, $4, $5)`,
			item.ID, item.OrderID, item.ProductID, item.KitID, item.UnitPrice,
		)
		if err != nil {
			s.FailNow("can't insert order item", err)
		}
	}
}
