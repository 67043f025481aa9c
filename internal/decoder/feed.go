package decoder

import (
	"html"
	"strconv"
	"strings"

	"github.com/shlomaa/distributors-import/internal/platform/models"
)

// feedProduct is model for product elements in partner feed files.
type feedProduct struct {
	ID      string       `xml:"id"`
	Title   string       `xml:"title"`
	Regions []feedRegion `xml:"regions>region"`
}

// feedRegion is model for region elements in partner feed files.
type feedRegion struct {
	Code   string      `xml:"code"`
	Stocks []feedStock `xml:"stocks>stock"`
}

// feedStock is model for stock elements in partner feed files.
type feedStock struct {
	StockID   string `xml:"stock_id"`
	City      string `xml:"city"`
	Address   string `xml:"address"`
	Available string `xml:"available"`
	Active    string `xml:"active"`
	Pickup    string `xml:"pickup"`
	Price     string `xml:"price"`
}

// mergedRegions maps feed region codes which are cities sold as part of a wider
// region onto the full canonical code group. A stock row under any code of a
// group belongs to every code of the group.
var mergedRegions = map[string][]string{
	"RU-MOS": {"RU-MOS", "RU-MOW"},
	"RU-MOW": {"RU-MOS", "RU-MOW"},
	"RU-LEN": {"RU-LEN", "RU-SPE"},
	"RU-SPE": {"RU-LEN", "RU-SPE"},
}

func canonicalCodes(code string) []string {
	if codes, ok := mergedRegions[code]; ok {
		return codes
	}
	return []string{code}
}

func toAppEntry(product *feedProduct) models.FeedEntry {
	entry := models.FeedEntry{
		SKU:   strings.TrimSpace(product.ID),
		Title: html.UnescapeString(product.Title),
	}

	for ix := range product.Regions {
		region := toAppRegion(&product.Regions[ix])
		if region == nil {
			continue
		}
		entry.Regions = append(entry.Regions, *region)
	}

	return entry
}

func toAppRegion(region *feedRegion) *models.RegionStock {
	code := strings.TrimSpace(region.Code)
	if code == "" {
		return nil
	}

	rows := make([]models.StockRow, 0, len(region.Stocks))
	for ix := range region.Stocks {
		rows = append(rows, toAppRow(&region.Stocks[ix]))
	}

	return &models.RegionStock{
		Codes: canonicalCodes(code),
		Rows:  rows,
	}
}

func toAppRow(stock *feedStock) models.StockRow {
	return models.StockRow{
		StockID:   strings.TrimSpace(stock.StockID),
		City:      strings.TrimSpace(stock.City),
		Address:   strings.TrimSpace(stock.Address),
		Available: strings.TrimSpace(stock.Available),
		Active:    parseFlag(stock.Active),
		Pickup:    parseFlag(stock.Pickup),
		Price:     ParsePrice(stock.Price),
	}
}

// ParsePrice converts feed price text to a float. The feed uses a comma as the
// decimal separator; non-numeric input yields 0.
func ParsePrice(price string) float64 {
	normalized := strings.ReplaceAll(strings.TrimSpace(price), ",", ".")
	value, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return 0
	}
	return value
}

func parseFlag(value string) bool {
	flag, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return false
	}
	return flag != 0
}
