package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/samber/lo"
	"github.com/shlomaa/distributors-import/internal/platform/models"
	"github.com/shlomaa/distributors-import/internal/platform/storage/gen/postgres/public/table"

	pgmodels "github.com/shlomaa/distributors-import/internal/platform/storage/gen/postgres/public/model"
	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

// Postgres is storage for partners, catalog entities, carts and the stock
// transaction ledger. It implements every collaborator interface of the
// import, reconciliation and deactivation packages.
type Postgres struct {
	db *sql.DB
}

// NewPostgres returns new Postgres.
func NewPostgres(db *sql.DB) Postgres {
	return Postgres{
		db: db,
	}
}

// FindPartner returns the partner with id or nil when there is none.
func (p Postgres) FindPartner(ctx context.Context, partnerID int64) (*models.Partner, error) {
	var partner pgmodels.Partner
	err := table.Partner.SELECT(table.Partner.AllColumns).
		WHERE(table.Partner.ID.EQ(pg.Int64(partnerID))).
		QueryContext(ctx, p.db, &partner)

	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("can't get partner from database: %w", err)
	}

	return toAppPartner(&partner), nil
}

// SaveImportStatistics writes run statistics onto the partner record.
func (p Postgres) SaveImportStatistics(
	ctx context.Context,
	partnerID int64,
	stats *models.ImportStatistics,
) error {
	columnList := pg.ColumnList{
		table.Partner.ImportRegionsCount,
		table.Partner.ImportDuration,
		table.Partner.ImportCount,
		table.Partner.ImportUpdated,
		table.Partner.ImportCreated,
		table.Partner.ImportDeleted,
		table.Partner.ImportDate,
		table.Partner.ImportErrors,
	}

	result, err := table.Partner.UPDATE(columnList).
		MODEL(toDBStatistics(partnerID, stats)).
		WHERE(table.Partner.ID.EQ(pg.Int64(partnerID))).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't update partner statistics: %w", err)
	}

	if rowsAffected, err := result.RowsAffected(); rowsAffected == 0 || err != nil {
		return fmt.Errorf("can't update partner statistics: %w", err)
	}

	return nil
}

// UnpublishPartner marks the partner unpublished.
func (p Postgres) UnpublishPartner(ctx context.Context, partnerID int64) error {
	_, err := table.Partner.UPDATE(table.Partner.Published).
		SET(pg.Bool(false)).
		WHERE(table.Partner.ID.EQ(pg.Int64(partnerID))).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't unpublish partner: %w", err)
	}

	return nil
}

// FindRegionByISO returns the region with ISO code or nil when unknown.
func (p Postgres) FindRegionByISO(ctx context.Context, code string) (*models.Region, error) {
	var region pgmodels.Region
	err := table.Region.SELECT(table.Region.AllColumns).
		WHERE(table.Region.ISOCode.EQ(pg.String(code))).
		QueryContext(ctx, p.db, &region)

	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("can't get region from database: %w", err)
	}

	return toAppRegion(&region), nil
}

// ResolveSKU returns the internal catalog identity of a feed SKU or nil when
// the catalog does not carry it. Only published products and variations count.
func (p Postgres) ResolveSKU(ctx context.Context, sku string) (*models.SKUInfo, error) {
	var row struct {
		pgmodels.SgVariation

		SgProduct pgmodels.SgProduct
	}

	err := table.SgVariation.
		INNER_JOIN(table.SgProduct, table.SgProduct.ID.EQ(table.SgVariation.SgProductID)).
		SELECT(table.SgVariation.AllColumns, table.SgProduct.AllColumns).
		WHERE(pg.AND(
			table.SgVariation.SKU.EQ(pg.String(sku)),
			table.SgVariation.Published.IS_TRUE(),
			table.SgProduct.Published.IS_TRUE(),
		)).
		LIMIT(1).
		QueryContext(ctx, p.db, &row)

	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("can't resolve SKU: %w", err)
	}

	return &models.SKUInfo{
		VariationID:  row.ID,
		ProductID:    row.SgProduct.ID,
		ProductTitle: row.SgProduct.Title,
		Size:         row.Size,
	}, nil
}

// FindStore returns the store with uniqueID or nil when there is none.
func (p Postgres) FindStore(ctx context.Context, uniqueID string) (*models.Store, error) {
	var store pgmodels.Store
	err := table.Store.SELECT(table.Store.AllColumns).
		WHERE(table.Store.UniqueID.EQ(pg.String(uniqueID))).
		QueryContext(ctx, p.db, &store)

	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("can't get store from database: %w", err)
	}

	locationIDs, err := getStoreLocationIDs(ctx, p.db, store.ID)
	if err != nil {
		return nil, err
	}

	return toAppStore(&store, locationIDs), nil
}

// SaveStore inserts or updates store and replaces its stock location set.
func (p Postgres) SaveStore(ctx context.Context, store *models.Store) error {
	return runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		dbStore := toDBStore(store)

		if store.ID == 0 {
			err := table.Store.INSERT(table.Store.MutableColumns).
				MODEL(dbStore).
				RETURNING(table.Store.ID).
				QueryContext(ctx, tx, dbStore)
			if err != nil {
				return fmt.Errorf("can't insert store into database: %w", err)
			}
			store.ID = dbStore.ID
		} else {
			_, err := table.Store.UPDATE(table.Store.MutableColumns).
				MODEL(dbStore).
				WHERE(table.Store.ID.EQ(pg.Int64(store.ID))).
				ExecContext(ctx, tx)
			if err != nil {
				return fmt.Errorf("can't update store: %w", err)
			}
		}

		return replaceStoreLocations(ctx, tx, store.ID, store.LocationIDs)
	})
}

// PartnerStores returns all stores linked to a partner.
func (p Postgres) PartnerStores(ctx context.Context, partnerID int64) ([]*models.Store, error) {
	var stores []pgmodels.Store
	err := table.Store.SELECT(table.Store.AllColumns).
		WHERE(table.Store.PartnerID.EQ(pg.Int64(partnerID))).
		ORDER_BY(table.Store.ID.ASC()).
		QueryContext(ctx, p.db, &stores)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("can't get partner stores from database: %w", err)
	}

	result := make([]*models.Store, 0, len(stores))
	for ix := range stores {
		locationIDs, err := getStoreLocationIDs(ctx, p.db, stores[ix].ID)
		if err != nil {
			return nil, err
		}
		result = append(result, toAppStore(&stores[ix], locationIDs))
	}

	return result, nil
}

// StoreStockLocations returns the stock locations attached to the store keyed
// by their unique id.
func (p Postgres) StoreStockLocations(
	ctx context.Context,
	storeID int64,
) (map[string]*models.StockLocation, error) {
	var locations []pgmodels.StockLocation
	err := table.StockLocation.
		INNER_JOIN(
			table.StoreStockLocation,
			table.StoreStockLocation.LocationID.EQ(table.StockLocation.ID),
		).
		SELECT(table.StockLocation.AllColumns).
		WHERE(table.StoreStockLocation.StoreID.EQ(pg.Int64(storeID))).
		QueryContext(ctx, p.db, &locations)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("can't get stock locations from database: %w", err)
	}

	result := make(map[string]*models.StockLocation, len(locations))
	for ix := range locations {
		result[locations[ix].UniqueID] = toAppLocation(&locations[ix])
	}

	return result, nil
}

// CreateStockLocation inserts location and assigns its ID.
func (p Postgres) CreateStockLocation(ctx context.Context, location *models.StockLocation) error {
	dbLocation := pgmodels.StockLocation{
		UniqueID: location.UniqueID,
		Name:     location.Name,
	}

	err := table.StockLocation.INSERT(table.StockLocation.MutableColumns).
		MODEL(&dbLocation).
		RETURNING(table.StockLocation.ID).
		QueryContext(ctx, p.db, &dbLocation)
	if err != nil {
		return fmt.Errorf("can't insert stock location into database: %w", err)
	}

	location.ID = dbLocation.ID

	return nil
}

// ActiveProducts returns the published products of a store.
func (p Postgres) ActiveProducts(ctx context.Context, storeID int64) ([]*models.Product, error) {
	var products []pgmodels.Product
	err := table.Product.SELECT(table.Product.AllColumns).
		WHERE(pg.AND(
			table.Product.StoreID.EQ(pg.Int64(storeID)),
			table.Product.Published.IS_TRUE(),
		)).
		ORDER_BY(table.Product.ID.ASC()).
		QueryContext(ctx, p.db, &products)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("can't get products from database: %w", err)
	}

	return lo.Map(products, func(_ pgmodels.Product, ix int) *models.Product {
		return toAppProduct(&products[ix])
	}), nil
}

// UnpublishProduct marks the product unpublished.
func (p Postgres) UnpublishProduct(ctx context.Context, productID int64) error {
	_, err := table.Product.UPDATE(table.Product.Published).
		SET(pg.Bool(false)).
		WHERE(table.Product.ID.EQ(pg.Int64(productID))).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't unpublish product: %w", err)
	}

	return nil
}

// FindProduct returns the store's product linked to relatedProductID or nil.
func (p Postgres) FindProduct(ctx context.Context, storeID, relatedProductID int64) (*models.Product, error) {
	var product pgmodels.Product
	err := table.Product.SELECT(table.Product.AllColumns).
		WHERE(pg.AND(
			table.Product.StoreID.EQ(pg.Int64(storeID)),
			table.Product.RelatedProductID.EQ(pg.Int64(relatedProductID)),
		)).
		LIMIT(1).
		QueryContext(ctx, p.db, &product)

	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("can't get product from database: %w", err)
	}

	return toAppProduct(&product), nil
}

// SaveProduct inserts or updates product, assigning ID on insert.
func (p Postgres) SaveProduct(ctx context.Context, product *models.Product) error {
	dbProduct := toDBProduct(product)

	if product.ID == 0 {
		err := table.Product.INSERT(table.Product.MutableColumns).
			MODEL(dbProduct).
			RETURNING(table.Product.ID).
			QueryContext(ctx, p.db, dbProduct)
		if err != nil {
			return fmt.Errorf("can't insert product into database: %w", err)
		}
		product.ID = dbProduct.ID
		return nil
	}

	_, err := table.Product.UPDATE(table.Product.MutableColumns).
		MODEL(dbProduct).
		WHERE(table.Product.ID.EQ(pg.Int64(product.ID))).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't update product: %w", err)
	}

	return nil
}

// ProductVariations returns all variations of a product.
func (p Postgres) ProductVariations(ctx context.Context, productID int64) ([]*models.Variation, error) {
	var variations []pgmodels.Variation
	err := table.Variation.SELECT(table.Variation.AllColumns).
		WHERE(table.Variation.ProductID.EQ(pg.Int64(productID))).
		ORDER_BY(table.Variation.ID.ASC()).
		QueryContext(ctx, p.db, &variations)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("can't get variations from database: %w", err)
	}

	return lo.Map(variations, func(_ pgmodels.Variation, ix int) *models.Variation {
		return toAppVariation(&variations[ix])
	}), nil
}

// SaveVariation inserts or updates variation, assigning ID on insert.
func (p Postgres) SaveVariation(ctx context.Context, variation *models.Variation) error {
	dbVariation := toDBVariation(variation)

	if variation.ID == 0 {
		err := table.Variation.INSERT(table.Variation.MutableColumns).
			MODEL(dbVariation).
			RETURNING(table.Variation.ID).
			QueryContext(ctx, p.db, dbVariation)
		if err != nil {
			return fmt.Errorf("can't insert variation into database: %w", err)
		}
		variation.ID = dbVariation.ID
		return nil
	}

	_, err := table.Variation.UPDATE(table.Variation.MutableColumns).
		MODEL(dbVariation).
		WHERE(table.Variation.ID.EQ(pg.Int64(variation.ID))).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't update variation: %w", err)
	}

	return nil
}

// DeleteVariation removes the variation and its stock transactions.
func (p Postgres) DeleteVariation(ctx context.Context, variationID int64) error {
	return runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		_, err := table.StockTransaction.DELETE().
			WHERE(table.StockTransaction.VariationID.EQ(pg.Int64(variationID))).
			ExecContext(ctx, tx)
		if err != nil {
			return fmt.Errorf("can't delete variation stock transactions: %w", err)
		}

		_, err = table.Variation.DELETE().
			WHERE(table.Variation.ID.EQ(pg.Int64(variationID))).
			ExecContext(ctx, tx)
		if err != nil {
			return fmt.Errorf("can't delete variation: %w", err)
		}

		return nil
	})
}

// SizeValues returns all size attribute values keyed by name.
func (p Postgres) SizeValues(ctx context.Context) (map[string]int64, error) {
	var values []pgmodels.SizeValue
	err := table.SizeValue.SELECT(table.SizeValue.AllColumns).
		QueryContext(ctx, p.db, &values)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("can't get size values from database: %w", err)
	}

	result := make(map[string]int64, len(values))
	for ix := range values {
		result[values[ix].Name] = values[ix].ID
	}

	return result, nil
}

// CreateSizeValue inserts a size attribute value and returns its id.
func (p Postgres) CreateSizeValue(ctx context.Context, name string) (int64, error) {
	value := pgmodels.SizeValue{
		Name: name,
	}

	err := table.SizeValue.INSERT(table.SizeValue.Name).
		MODEL(&value).
		RETURNING(table.SizeValue.ID).
		QueryContext(ctx, p.db, &value)
	if err != nil {
		return 0, fmt.Errorf("can't insert size value into database: %w", err)
	}

	return value.ID, nil
}

// CurrentLevel returns the current total stock level of a variation at a
// location, the sum of its transaction ledger.
func (p Postgres) CurrentLevel(ctx context.Context, variationID, locationID int64) (int, error) {
	var level struct {
		Total *int64
	}

	err := table.StockTransaction.SELECT(
		pg.SUMi(table.StockTransaction.Qty).AS("total"),
	).
		WHERE(pg.AND(
			table.StockTransaction.VariationID.EQ(pg.Int64(variationID)),
			table.StockTransaction.LocationID.EQ(pg.Int64(locationID)),
		)).
		QueryContext(ctx, p.db, &level)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return 0, fmt.Errorf("can't get stock level from database: %w", err)
	}

	if level.Total == nil {
		return 0, nil
	}

	return int(*level.Total), nil
}

// Receive appends a positive stock transaction.
func (p Postgres) Receive(ctx context.Context, variationID, locationID int64, qty int, note string) error {
	return p.insertTransaction(ctx, variationID, locationID, int32(qty), note)
}

// Sell appends a negative stock transaction.
func (p Postgres) Sell(ctx context.Context, variationID, locationID int64, qty int, note string) error {
	return p.insertTransaction(ctx, variationID, locationID, -int32(qty), note)
}

func (p Postgres) insertTransaction(
	ctx context.Context,
	variationID, locationID int64,
	qty int32,
	note string,
) error {
	transaction := pgmodels.StockTransaction{
		VariationID: variationID,
		LocationID:  locationID,
		Qty:         qty,
		Note:        note,
		CreatedAt:   lo.ToPtr(time.Now().UTC()),
	}

	_, err := table.StockTransaction.INSERT(table.StockTransaction.MutableColumns).
		MODEL(&transaction).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't insert stock transaction into database: %w", err)
	}

	return nil
}

// FindDraftCarts returns the draft cart orders of a store with their items.
func (p Postgres) FindDraftCarts(ctx context.Context, storeID int64) ([]*models.Order, error) {
	var orders []pgmodels.PurchaseOrder
	err := table.PurchaseOrder.SELECT(table.PurchaseOrder.AllColumns).
		WHERE(pg.AND(
			table.PurchaseOrder.StoreID.EQ(pg.Int64(storeID)),
			table.PurchaseOrder.State.EQ(pg.String("draft")),
			table.PurchaseOrder.Cart.IS_TRUE(),
		)).
		ORDER_BY(table.PurchaseOrder.ID.DESC()).
		QueryContext(ctx, p.db, &orders)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("can't get cart orders from database: %w", err)
	}

	result := make([]*models.Order, 0, len(orders))
	for ix := range orders {
		var items []pgmodels.OrderItem
		err := table.OrderItem.SELECT(table.OrderItem.AllColumns).
			WHERE(table.OrderItem.OrderID.EQ(pg.Int64(orders[ix].ID))).
			ORDER_BY(table.OrderItem.ID.ASC()).
			QueryContext(ctx, p.db, &items)
		if err != nil && !errors.Is(err, qrm.ErrNoRows) {
			return nil, fmt.Errorf("can't get order items from database: %w", err)
		}
		result = append(result, toAppOrder(&orders[ix], items))
	}

	return result, nil
}

// RemoveItem removes one line item from an order.
func (p Postgres) RemoveItem(ctx context.Context, orderID, itemID int64) error {
	_, err := table.OrderItem.DELETE().
		WHERE(pg.AND(
			table.OrderItem.OrderID.EQ(pg.Int64(orderID)),
			table.OrderItem.ID.EQ(pg.Int64(itemID)),
		)).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't delete order item: %w", err)
	}

	return nil
}

func getStoreLocationIDs(ctx context.Context, db qrm.DB, storeID int64) ([]int64, error) {
	var links []pgmodels.StoreStockLocation
	err := table.StoreStockLocation.SELECT(table.StoreStockLocation.AllColumns).
		WHERE(table.StoreStockLocation.StoreID.EQ(pg.Int64(storeID))).
		ORDER_BY(table.StoreStockLocation.LocationID.ASC()).
		QueryContext(ctx, db, &links)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("can't get store locations from database: %w", err)
	}

	return lo.Map(links, func(link pgmodels.StoreStockLocation, _ int) int64 {
		return link.LocationID
	}), nil
}

func replaceStoreLocations(ctx context.Context, db qrm.DB, storeID int64, locationIDs []int64) error {
	_, err := table.StoreStockLocation.DELETE().
		WHERE(table.StoreStockLocation.StoreID.EQ(pg.Int64(storeID))).
		ExecContext(ctx, db)
	if err != nil {
		return fmt.Errorf("can't delete outdated store locations from database: %w", err)
	}

	if len(locationIDs) == 0 {
		return nil
	}

	links := make([]pgmodels.StoreStockLocation, 0, len(locationIDs))
	for _, locationID := range locationIDs {
		links = append(links, pgmodels.StoreStockLocation{
			StoreID:    storeID,
			LocationID: locationID,
		})
	}

	_, err = table.StoreStockLocation.INSERT(table.StoreStockLocation.AllColumns).
		MODELS(links).
		ExecContext(ctx, db)
	if err != nil {
		return fmt.Errorf("can't insert store locations into database: %w", err)
	}

	return nil
}

func runInTransaction(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	var (
		tx  *sql.Tx
		err error
	)

	if tx, err = db.BeginTx(ctx, nil); err != nil {
		return fmt.Errorf("can't begin transaction: %w", err)
	}

	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("can't rollback transaction: %w (rollback reason: %w)", rbErr, err)
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("can't commit transaction: %w", err)
	}

	return nil
}
