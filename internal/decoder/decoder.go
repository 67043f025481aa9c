package decoder

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"github.com/shlomaa/distributors-import/internal/platform/models"
)

var (
	// ErrEmptyFeed is returned when the feed has no content at all.
	ErrEmptyFeed = errors.New("feed is empty")
	// ErrNoProducts is returned when the feed contains no product elements.
	ErrNoProducts = errors.New("feed contains no products")
)

// Decoder decodes partner xml feeds into feed entries.
type Decoder struct{}

// Parse decodes all product elements from feed. It returns the decoded entries
// and a list of row-level errors for elements which were skipped. The returned
// error is non-nil only when the whole feed is unusable: empty input, malformed
// markup or no product elements at all.
func (d Decoder) Parse(ctx context.Context, feed io.Reader) ([]models.FeedEntry, []string, error) {
	dec := xml.NewDecoder(feed)
	dec.Strict = true

	var (
		entries  []models.FeedEntry
		rowErrs  []string
		products int
	)

	for {
		select {
		case <-ctx.Done():
			return nil, nil, ctx.Err()
		default:
		}

		token, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, nil, fmt.Errorf("feed markup is malformed: %w", err)
		}

		element, ok := token.(xml.StartElement)
		if !ok || element.Name.Local != "product" {
			continue
		}
		products++

		var product feedProduct
		if err := dec.DecodeElement(&product, &element); err != nil {
			return nil, nil, fmt.Errorf("feed markup is malformed: %w", err)
		}

		entry := toAppEntry(&product)
		if entry.SKU == "" {
			rowErrs = append(rowErrs, "product skipped: required parameter id is missing")
			continue
		}

		for ix := range product.Regions {
			if product.Regions[ix].Code == "" {
				rowErrs = append(rowErrs, fmt.Sprintf(
					"%s | region skipped: required parameter code is missing", entry.SKU,
				))
			}
		}

		entries = append(entries, entry)
	}

	if products == 0 {
		if entries == nil && rowErrs == nil && isEmptyInput(dec) {
			return nil, nil, ErrEmptyFeed
		}
		return nil, nil, ErrNoProducts
	}

	return entries, rowErrs, nil
}

// isEmptyInput reports whether the decoder consumed zero bytes.
func isEmptyInput(dec *xml.Decoder) bool {
	return dec.InputOffset() == 0
}
