package storagetesting

import (
	"database/sql"
	"os"
	"testing"

	pgmodels "github.com/shlomaa/distributors-import/internal/platform/storage/gen/postgres/public/model"
	"github.com/shlomaa/distributors-import/internal/platform/storage/gen/postgres/public/table"
	"github.com/go-jet/jet/v2/qrm"

	_ "github.com/lib/pq"
)

// Open opens connection to DB.
func Open(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Skip("please provide database URL via DATABASE_URL environment variable")
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		t.Fatalf("can't open connection to %q: %s", dbURL, err)
	}

	return db
}

// InsertPartners is a helper test function to insert partners.
func InsertPartners(t *testing.T, exc qrm.Executable, partners ...pgmodels.Partner) {
	t.Helper()

	if len(partners) == 0 {
		return
	}

	toInsert := make([]pgmodels.Partner, 0, len(partners))
	toInsert = append(toInsert, partners...)

	_, err := table.Partner.INSERT(table.Partner.AllColumns).MODELS(toInsert).Exec(exc)
	if err != nil {
		t.Fatal("can't insert partners", err)
	}
}

// InsertRegions is a helper test function to insert regions.
func InsertRegions(t *testing.T, exc qrm.Executable, regions ...pgmodels.Region) {
	t.Helper()

	if len(regions) == 0 {
		return
	}

	toInsert := make([]pgmodels.Region, 0, len(regions))
	toInsert = append(toInsert, regions...)

	_, err := table.Region.INSERT(table.Region.AllColumns).MODELS(toInsert).Exec(exc)
	if err != nil {
		t.Fatal("can't insert regions", err)
	}
}

// InsertStores is a helper test function to insert stores.
func InsertStores(t *testing.T, exc qrm.Executable, stores ...pgmodels.Store) {
	t.Helper()

	if len(stores) == 0 {
		return
	}

	toInsert := make([]pgmodels.Store, 0, len(stores))
	toInsert = append(toInsert, stores...)

	_, err := table.Store.INSERT(table.Store.AllColumns).MODELS(toInsert).Exec(exc)
	if err != nil {
		t.Fatal("can't insert stores", err)
	}
}

// InsertCatalogSKUs is a helper test function to insert catalog products with variations.
func InsertCatalogSKUs(t *testing.T, exc qrm.Executable, product pgmodels.SgProduct, variations ...pgmodels.SgVariation) {
	t.Helper()

	_, err := table.SgProduct.INSERT(table.SgProduct.AllColumns).MODEL(product).Exec(exc)
	if err != nil {
		t.Fatal("can't insert catalog product", err)
	}

	if len(variations) == 0 {
		return
	}

	toInsert := make([]pgmodels.SgVariation, 0, len(variations))
	toInsert = append(toInsert, variations...)

	_, err = table.SgVariation.INSERT(table.SgVariation.AllColumns).MODELS(toInsert).Exec(exc)
	if err != nil {
		t.Fatal("can't insert catalog variations", err)
	}
}

// InsertStockTransactions is a helper test function to insert stock transactions.
func InsertStockTransactions(t *testing.T, exc qrm.Executable, transactions ...pgmodels.StockTransaction) {
	t.Helper()

	if len(transactions) == 0 {
		return
	}

	toInsert := make([]pgmodels.StockTransaction, 0, len(transactions))
	toInsert = append(toInsert, transactions...)

	_, err := table.StockTransaction.INSERT(table.StockTransaction.AllColumns).MODELS(toInsert).Exec(exc)
	if err != nil {
		t.Fatal("can't insert stock transactions", err)
	}
}

// SelectStockTransactions is a helper test function returning all stored stock transactions.
func SelectStockTransactions(t *testing.T, db qrm.Queryable) []pgmodels.StockTransaction {
	t.Helper()

	var transactions []pgmodels.StockTransaction
	err := table.StockTransaction.SELECT(table.StockTransaction.AllColumns).
		ORDER_BY(table.StockTransaction.ID.ASC()).
		Query(db, &transactions)
	if err != nil {
		t.Fatal("can't select stock transactions", err)
	}

	return transactions
}

// CleanupData removes all rows inserted by storage tests.
func CleanupData(t *testing.T, exc qrm.Executable) {
	t.Helper()

	_, err := table.OrderItem.DELETE().WHERE(table.OrderItem.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete order items data", err)
	}

	_, err = table.PurchaseOrder.DELETE().WHERE(table.PurchaseOrder.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete orders data", err)
	}

	_, err = table.StockTransaction.DELETE().WHERE(table.StockTransaction.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete stock transactions data", err)
	}

	_, err = table.Variation.DELETE().WHERE(table.Variation.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete variations data", err)
	}

	_, err = table.Product.DELETE().WHERE(table.Product.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete products data", err)
	}

	_, err = table.SizeValue.DELETE().WHERE(table.SizeValue.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete size values data", err)
	}

	_, err = table.StoreStockLocation.DELETE().WHERE(table.StoreStockLocation.StoreID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete store stock locations data", err)
	}

	_, err = table.StockLocation.DELETE().WHERE(table.StockLocation.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete stock locations data", err)
	}

	_, err = table.Store.DELETE().WHERE(table.Store.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete stores data", err)
	}

	_, err = table.SgVariation.DELETE().WHERE(table.SgVariation.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete catalog variations data", err)
	}

	_, err = table.SgProduct.DELETE().WHERE(table.SgProduct.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete catalog products data", err)
	}

	_, err = table.Region.DELETE().WHERE(table.Region.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete regions data", err)
	}

	_, err = table.Partner.DELETE().WHERE(table.Partner.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete partners data", err)
	}
}
