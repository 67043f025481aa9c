package storage

import (
	"strings"

	"github.com/samber/lo"
	"github.com/shlomaa/distributors-import/internal/platform/models"

	pgmodels "github.com/shlomaa/distributors-import/internal/platform/storage/gen/postgres/public/model"
)

//go:generate make -C ../../../ generate-db

func toAppPartner(partner *pgmodels.Partner) *models.Partner {
	return &models.Partner{
		ID:        partner.ID,
		Name:      partner.Name,
		UniqueID:  partner.UniqueID,
		ImportURL: partner.ImportURL,
		Published: partner.Published,
	}
}

func toDBStatistics(partnerID int64, stats *models.ImportStatistics) *pgmodels.Partner {
	return &pgmodels.Partner{
		ID:                 partnerID,
		ImportRegionsCount: int32(stats.RegionsCount),
		ImportDuration:     stats.Duration,
		ImportCount:        int32(stats.Count),
		ImportUpdated:      int32(stats.Updated),
		ImportCreated:      int32(stats.Created),
		ImportDeleted:      int32(stats.Deleted),
		ImportDate:         lo.ToPtr(stats.Date),
		ImportErrors:       strings.Join(stats.Errors, "\n"),
	}
}

func toAppRegion(region *pgmodels.Region) *models.Region {
	return &models.Region{
		ID:      region.ID,
		Name:    region.Name,
		ISOCode: region.ISOCode,
	}
}

func toDBStore(store *models.Store) *pgmodels.Store {
	return &pgmodels.Store{
		ID:                store.ID,
		UniqueID:          store.UniqueID,
		Name:              store.Name,
		City:              store.City,
		RegionID:          store.RegionID,
		PartnerID:         store.PartnerID,
		DefaultLocationID: store.DefaultLocationID,
	}
}

func toAppStore(store *pgmodels.Store, locationIDs []int64) *models.Store {
	return &models.Store{
		ID:                store.ID,
		UniqueID:          store.UniqueID,
		Name:              store.Name,
		City:              store.City,
		RegionID:          store.RegionID,
		PartnerID:         store.PartnerID,
		LocationIDs:       locationIDs,
		DefaultLocationID: store.DefaultLocationID,
	}
}

func toAppLocation(location *pgmodels.StockLocation) *models.StockLocation {
	return &models.StockLocation{
		ID:       location.ID,
		UniqueID: location.UniqueID,
		Name:     location.Name,
	}
}

func toDBProduct(product *models.Product) *pgmodels.Product {
	return &pgmodels.Product{
		ID:               product.ID,
		StoreID:          product.StoreID,
		RelatedProductID: product.RelatedProductID,
		Title:            product.Title,
		Published:        product.Published,
	}
}

func toAppProduct(product *pgmodels.Product) *models.Product {
	return &models.Product{
		ID:               product.ID,
		StoreID:          product.StoreID,
		RelatedProductID: product.RelatedProductID,
		Title:            product.Title,
		Published:        product.Published,
	}
}

func toDBVariation(variation *models.Variation) *pgmodels.Variation {
	return &pgmodels.Variation{
		ID:                 variation.ID,
		ProductID:          variation.ProductID,
		SKU:                variation.SKU,
		Price:              variation.Price,
		SizeValueID:        variation.SizeValueID,
		RelatedVariationID: variation.RelatedVariationID,
		Published:          variation.Published,
	}
}

func toAppVariation(variation *pgmodels.Variation) *models.Variation {
	return &models.Variation{
		ID:                 variation.ID,
		ProductID:          variation.ProductID,
		SKU:                variation.SKU,
		Price:              variation.Price,
		SizeValueID:        variation.SizeValueID,
		RelatedVariationID: variation.RelatedVariationID,
		Published:          variation.Published,
	}
}

func toAppOrder(order *pgmodels.PurchaseOrder, items []pgmodels.OrderItem) *models.Order {
	appItems := make([]models.OrderItem, 0, len(items))
	for ix := range items {
		appItems = append(appItems, models.OrderItem{
			ID:        items[ix].ID,
			ProductID: items[ix].ProductID,
			KitID:     lo.FromPtr(items[ix].KitID),
			UnitPrice: items[ix].UnitPrice,
		})
	}

	return &models.Order{
		ID:      order.ID,
		StoreID: order.StoreID,
		Items:   appItems,
	}
}
