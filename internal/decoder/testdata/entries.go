// Package testdata holds the expected decoding result of feed.xml.
package testdata

import (
	"github.com/shlomaa/distributors-import/internal/platform/models"
)

// Entries are the feed entries decoded from feed.xml.
var Entries = []models.FeedEntry{
	{
		SKU:   "BOOT-42",
		Title: "Trail Boots & Laces",
		Regions: []models.RegionStock{
			{
				Codes: []string{"RU-MOS", "RU-MOW"},
				Rows: []models.StockRow{
					{
						StockID:   "Warehouse 1",
						City:      "Moscow",
						Address:   "Tverskaya 1",
						Available: "8",
						Active:    true,
						Pickup:    true,
						Price:     129.99,
					},
					{
						StockID:   "Warehouse 2",
						City:      "Moscow",
						Address:   "Arbat 10",
						Available: "3",
						Active:    true,
						Pickup:    false,
						Price:     119.50,
					},
				},
			},
			{
				Codes: []string{"RU-NIZ"},
				Rows: []models.StockRow{
					{
						StockID:   "Warehouse 3",
						City:      "Nizhny Novgorod",
						Address:   "Bolshaya Pokrovskaya 2",
						Available: "5",
						Active:    true,
						Pickup:    true,
						Price:     125.00,
					},
				},
			},
		},
	},
	{
		SKU:   "JACKET-7",
		Title: "Rain Jacket",
		Regions: []models.RegionStock{
			{
				Codes: []string{"RU-LEN", "RU-SPE"},
				Rows: []models.StockRow{
					{
						StockID:   "Warehouse 5",
						City:      "Saint Petersburg",
						Address:   "Nevsky 20",
						Available: "not available",
						Active:    false,
						Pickup:    false,
						Price:     0,
					},
				},
			},
		},
	},
}

// RowErrors are the row-level errors reported while decoding feed.xml.
var RowErrors = []string{
	"JACKET-7 | region skipped: required parameter code is missing",
	"product skipped: required parameter id is missing",
}
