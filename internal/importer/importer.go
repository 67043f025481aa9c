// Package importer drives one full feed import run per partner: fetch, parse,
// normalize, reconcile every region and persist the accumulated statistics.
package importer

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/shlomaa/distributors-import/internal/platform/models"
	"github.com/shlomaa/distributors-import/internal/reconciler"
	"golang.org/x/sync/errgroup"
)

//go:generate mockery --name Fetcher --filename fetcher.go
//go:generate mockery --name Decoder --filename decoder.go

// Fetcher fetches feed files.
type Fetcher interface {
	FetchFeed(ctx context.Context, url string) ([]byte, error)
}

// Decoder decodes feed bytes into feed entries.
type Decoder interface {
	Parse(ctx context.Context, feed io.Reader) ([]models.FeedEntry, []string, error)
}

// Normalizer assembles desired state from feed entries.
type Normalizer interface {
	Normalize(ctx context.Context, entries []models.FeedEntry, partner *models.Partner) (*models.DesiredState, []string)
}

// Partners persists run statistics on the partner record.
type Partners interface {
	SaveImportStatistics(ctx context.Context, partnerID int64, stats *models.ImportStatistics) error
}

// Clock provides times.
type Clock interface {
	// Now returns current UTC time.
	Now() time.Time
}

// Option is custom configuration of Importer.
type Option func(i *Importer)

// Importer runs feed imports.
type Importer struct {
	fetcher    Fetcher
	decoder    Decoder
	normalizer Normalizer
	reconciler *reconciler.Reconciler
	catalog    reconciler.Catalog
	partners   Partners
	clock      Clock
	workers    int
	logger     zerolog.Logger
}

// NewImporter returns new Importer.
func NewImporter(
	fetcher Fetcher,
	decoder Decoder,
	normalizer Normalizer,
	rec *reconciler.Reconciler,
	catalog reconciler.Catalog,
	partners Partners,
	ops ...Option,
) *Importer {
	imp := &Importer{
		fetcher:    fetcher,
		decoder:    decoder,
		normalizer: normalizer,
		reconciler: rec,
		catalog:    catalog,
		partners:   partners,
		clock:      systemClock{},
		workers:    1,
		logger:     zerolog.Nop(),
	}

	for _, op := range ops {
		op(imp)
	}

	return imp
}

// Import runs one import for partner. Fetch and parse failures do not abort
// the run: they are recorded in the statistics, which are persisted at the end
// of every run regardless of its outcome. The returned error only reports that
// the statistics themselves could not be written.
func (i *Importer) Import(ctx context.Context, partner *models.Partner) error {
	start := i.clock.Now()
	stats := models.NewImportStatistics(start)

	i.logger.Debug().
		Int64("partnerId", partner.ID).
		Msg("import started")

	desired := i.buildDesiredState(ctx, partner, stats)
	if desired != nil {
		i.reconcileRegions(ctx, partner, desired, stats)
	}

	stats.Duration = int64(i.clock.Now().Sub(start).Seconds())

	i.logger.Debug().
		Int64("partnerId", partner.ID).
		Int("count", stats.Count).
		Int("created", stats.Created).
		Int("updated", stats.Updated).
		Int("deleted", stats.Deleted).
		Int("errors", len(stats.Errors)).
		Msg("import finished")

	if err := i.partners.SaveImportStatistics(ctx, partner.ID, stats); err != nil {
		return fmt.Errorf("can't save import statistics: %w", err)
	}

	return nil
}

// buildDesiredState fetches and parses the feed. It returns nil when the run
// should soft-stop with only statistics to persist.
func (i *Importer) buildDesiredState(
	ctx context.Context,
	partner *models.Partner,
	stats *models.ImportStatistics,
) *models.DesiredState {
	feed, err := i.fetcher.FetchFeed(ctx, partner.ImportURL)
	if err != nil || !bytes.Contains(feed, []byte("<?xml")) {
		stats.Errors = append(stats.Errors, "could not fetch feed XML")
		return nil
	}

	entries, parseErrs, err := i.decoder.Parse(ctx, bytes.NewReader(feed))
	stats.Errors = append(stats.Errors, parseErrs...)
	if err != nil {
		stats.Errors = append(stats.Errors, fmt.Sprintf("feed format is corrupted: %s", err))
		return nil
	}

	desired, normErrs := i.normalizer.Normalize(ctx, entries, partner)
	stats.Errors = append(stats.Errors, normErrs...)

	return desired
}

// reconcileRegions converges every region of the desired state. Regions touch
// disjoint stores and stocks, so they run concurrently up to the worker limit;
// reports are merged in region order to keep accounting deterministic.
func (i *Importer) reconcileRegions(
	ctx context.Context,
	partner *models.Partner,
	desired *models.DesiredState,
	stats *models.ImportStatistics,
) {
	codes := lo.Keys(desired.Stores)
	sort.Strings(codes)

	sizes := reconciler.NewSizeCache(i.catalog)
	reports := make([]*models.RegionReport, len(codes))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(i.workers)
	for ix, code := range codes {
		ix := ix
		region := &models.DesiredRegion{
			Code:          code,
			Store:         desired.Stores[code],
			StockNames:    desired.StockNames,
			ProductTitles: desired.ProductTitles,
			Variations:    desired.Variations[code],
		}
		group.Go(func() error {
			reports[ix] = i.reconciler.Reconcile(groupCtx, partner, region, sizes)
			return nil
		})
	}
	_ = group.Wait()

	for _, report := range reports {
		if report == nil {
			continue
		}
		stats.Count += report.Count
		stats.Created += report.Created
		stats.Updated += report.Updated
		stats.Deleted += report.Deleted
		stats.Errors = append(stats.Errors, report.Errors...)
		if report.Count > 0 {
			stats.RegionsCount++
		}
	}
}

// WithClock sets Importer's custom Clock.
func WithClock(c Clock) Option {
	return func(i *Importer) {
		i.clock = c
	}
}

// WithWorkers sets how many regions are reconciled concurrently.
func WithWorkers(workers int) Option {
	return func(i *Importer) {
		if workers > 0 {
			i.workers = workers
		}
	}
}

// WithLogger sets Importer's logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(i *Importer) {
		i.logger = logger
	}
}
