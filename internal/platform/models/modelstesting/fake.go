package modelstesting

import (
	"fmt"
	"math/rand"

	"github.com/go-faker/faker/v4"
	"github.com/shlomaa/distributors-import/internal/platform/models"
)

// FakePartner returns models.Partner with fake data.
func FakePartner(ops ...func(p *models.Partner)) models.Partner {
	partner := models.Partner{
		ID:        rand.Int63n(1000) + 1,
		Name:      faker.Word(),
		UniqueID:  fmt.Sprintf("P%d", rand.Int63n(100)),
		ImportURL: faker.URL(),
		Published: true,
	}

	for _, op := range ops {
		op(&partner)
	}

	return partner
}

// FakeEntry returns models.FeedEntry with fake data and a random number of fake regions.
func FakeEntry(ops ...func(e *models.FeedEntry)) models.FeedEntry {
	entry := models.FeedEntry{
		SKU:     faker.UUIDDigit(),
		Title:   faker.Word(),
		Regions: fakeRegions(),
	}

	for _, op := range ops {
		op(&entry)
	}

	return entry
}

// FakeRegion returns models.RegionStock with fake data and a random number of fake rows.
func FakeRegion(ops ...func(r *models.RegionStock)) models.RegionStock {
	region := models.RegionStock{
		Codes: []string{fmt.Sprintf("RU-%d", rand.Intn(90)+10)},
		Rows:  fakeRows(),
	}

	for _, op := range ops {
		op(&region)
	}

	return region
}

// FakeRow returns models.StockRow with fake valid data.
func FakeRow(ops ...func(r *models.StockRow)) models.StockRow {
	row := models.StockRow{
		StockID:   faker.Word(),
		City:      faker.Word(),
		Address:   faker.Sentence(),
		Available: fmt.Sprint(rand.Intn(50) + 1),
		Active:    true,
		Pickup:    true,
		Price:     float64(rand.Intn(10000)) / 100,
	}

	for _, op := range ops {
		op(&row)
	}

	return row
}

// FakeStore returns models.Store with fake data.
func FakeStore(ops ...func(s *models.Store)) models.Store {
	store := models.Store{
		ID:       rand.Int63n(1000) + 1,
		UniqueID: fmt.Sprintf("P%d_RU-%d", rand.Int63n(100), rand.Intn(90)+10),
		Name:     faker.Word(),
		City:     faker.Word(),
		RegionID: rand.Int63n(1000) + 1,
	}

	for _, op := range ops {
		op(&store)
	}

	return store
}

// FakeVariation returns models.Variation with fake data.
func FakeVariation(ops ...func(v *models.Variation)) models.Variation {
	variation := models.Variation{
		ID:                 rand.Int63n(1000) + 1,
		ProductID:          rand.Int63n(1000) + 1,
		SKU:                faker.UUIDDigit(),
		Price:              float64(rand.Intn(10000)) / 100,
		SizeValueID:        rand.Int63n(1000) + 1,
		RelatedVariationID: rand.Int63n(1000) + 1,
		Published:          true,
	}

	for _, op := range ops {
		op(&variation)
	}

	return variation
}

func fakeRegions() []models.RegionStock {
	regionsLen := rand.Intn(3) + 1
	regions := make([]models.RegionStock, 0, regionsLen)
	for i := 0; i < regionsLen; i++ {
		regions = append(regions, FakeRegion())
	}

	return regions
}

func fakeRows() []models.StockRow {
	rowsLen := rand.Intn(3) + 1
	rows := make([]models.StockRow, 0, rowsLen)
	for i := 0; i < rowsLen; i++ {
		rows = append(rows, FakeRow())
	}

	return rows
}
