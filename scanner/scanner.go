// Package scanner coordinates an enumeration run: per-region type catalogs,
// include/exclude filtering, and a bounded worker pool issuing the generic
// list call for every surviving (region, resource type) pair.
package scanner

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/welldone-cloud/aws-list-resources/internal/exclusions"
	"github.com/welldone-cloud/aws-list-resources/internal/filter"
	"github.com/welldone-cloud/aws-list-resources/inventory"
	"github.com/welldone-cloud/aws-list-resources/providers"
	"github.com/welldone-cloud/aws-list-resources/telemetry"
)

const defaultWorkers = 16

// task is one independent unit of work. Tasks carry no ordering dependency;
// each writes a disjoint (region, type) key in the report.
type task struct {
	region       string
	resourceType string
}

// Scanner drives one enumeration run against a provider.
type Scanner struct {
	api            providers.CloudAPI
	report         *inventory.Report
	typeFilter     *filter.Filter
	defaults       exclusions.Table
	filterDefaults bool
	metrics        *telemetry.ScanMetrics
	logger         *telemetry.Logger
	workers        int
}

// New creates a Scanner writing into the given report.
func New(api providers.CloudAPI, report *inventory.Report) *Scanner {
	return &Scanner{
		api:     api,
		report:  report,
		logger:  telemetry.NewLogger("scanner", false),
		workers: defaultWorkers,
	}
}

// WithTypeFilter sets the include/exclude resource type filter.
func (s *Scanner) WithTypeFilter(f *filter.Filter) *Scanner {
	s.typeFilter = f
	return s
}

// WithDefaultExclusions enables dropping provider-created default resources
// using the given table.
func (s *Scanner) WithDefaultExclusions(table exclusions.Table) *Scanner {
	s.defaults = table
	s.filterDefaults = true
	return s
}

// WithMetrics sets the metrics sink. A nil sink disables recording.
func (s *Scanner) WithMetrics(m *telemetry.ScanMetrics) *Scanner {
	s.metrics = m
	return s
}

// WithWorkers sets the worker pool size.
func (s *Scanner) WithWorkers(n int) *Scanner {
	if n > 0 {
		s.workers = n
	}
	return s
}

// WithLogger sets the logger.
func (s *Scanner) WithLogger(l *telemetry.Logger) *Scanner {
	s.logger = l
	return s
}

// Run enumerates all target regions. Per-pair failures are recorded in the
// report and never abort the run; the returned error is non-nil only when
// the context is canceled.
func (s *Scanner) Run(ctx context.Context, regions []string) (*Stats, error) {
	start := time.Now()
	stats := newStats(regions)

	tasks := s.buildTasks(ctx, regions, stats)
	if err := ctx.Err(); err != nil {
		return stats, err
	}

	s.logger.Info().
		Int("regions", len(regions)).
		Int("pairs", len(tasks)).
		Int("workers", s.workers).
		Msg("listing resources")

	if err := s.runPool(ctx, tasks, start, stats); err != nil {
		return stats, err
	}

	stats.Elapsed = time.Since(start)
	return stats, nil
}

// buildTasks fetches each region's type catalog concurrently and expands the
// filtered catalogs into (region, type) tasks. A catalog failure is recorded
// against its region and skips only that region.
func (s *Scanner) buildTasks(ctx context.Context, regions []string, stats *Stats) []task {
	catalogs := make([][]string, len(regions))

	var wg sync.WaitGroup
	for i, region := range regions {
		wg.Add(1)
		go func(i int, region string) {
			defer wg.Done()

			s.logger.Info().Str("region", region).Msg("reading supported resource types")
			supported, err := s.api.SupportedResourceTypes(ctx, region)
			if err != nil {
				s.logger.Error().Err(err).Str("region", region).Msg("unable to list resource types")
				s.report.RecordRegionError(region, "unable to list resource types: "+err.Error())
				stats.recordCatalogError(region)
				return
			}

			s.metrics.RecordCatalog(ctx, region, len(supported))
			stats.recordCatalog(region, len(supported))
			catalogs[i] = supported
		}(i, region)
	}
	wg.Wait()

	var tasks []task
	for i, region := range regions {
		filtered := catalogs[i]
		if s.typeFilter != nil {
			filtered = s.typeFilter.Apply(filtered)
		}
		stats.setPending(region, len(filtered))
		for _, resourceType := range filtered {
			tasks = append(tasks, task{region: region, resourceType: resourceType})
		}
	}
	return tasks
}

// runPool distributes tasks across the worker pool. Each worker records its
// own results; no ordering is guaranteed across pairs.
func (s *Scanner) runPool(ctx context.Context, tasks []task, start time.Time, stats *Stats) error {
	taskCh := make(chan task)

	var wg sync.WaitGroup
	for i := 0; i < s.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range taskCh {
				s.listPair(ctx, t, start, stats)
			}
		}()
	}

	var err error
feed:
	for _, t := range tasks {
		select {
		case taskCh <- t:
		case <-ctx.Done():
			err = ctx.Err()
			break feed
		}
	}
	close(taskCh)
	wg.Wait()

	return err
}

// listPair lists one (region, type) pair and records the outcome. A failure
// here must not prevent listing of the same type in another region nor other
// types in the same region.
func (s *Scanner) listPair(ctx context.Context, t task, start time.Time, stats *Stats) {
	if ctx.Err() != nil {
		return
	}

	s.logger.Debug().
		Str("region", t.region).
		Str("resource_type", t.resourceType).
		Msg("listing")

	identifiers, err := s.api.ListResources(ctx, t.region, t.resourceType)
	if err != nil {
		reason := providers.ReasonAPIError
		var listErr *providers.ListError
		if errors.As(err, &listErr) {
			reason = listErr.Reason
		} else if ctx.Err() != nil {
			return
		}
		s.report.RecordNotListed(t.region, t.resourceType, string(reason))
		s.metrics.RecordListError(ctx, t.region, string(reason))
		stats.recordNotListed(t.region)
		s.logger.Debug().
			Str("region", t.region).
			Str("resource_type", t.resourceType).
			Str("reason", string(reason)).
			Msg("not listed")
		s.finishPair(ctx, t.region, start, stats)
		return
	}

	if s.filterDefaults {
		identifiers = s.defaults.Apply(t.resourceType, identifiers)
	}

	s.report.AddListing(t.region, t.resourceType, identifiers)
	s.metrics.RecordListing(ctx, t.region, len(identifiers))
	stats.recordListed(t.region, len(identifiers))
	s.finishPair(ctx, t.region, start, stats)
}

func (s *Scanner) finishPair(ctx context.Context, region string, start time.Time, stats *Stats) {
	if done, elapsed := stats.finishTask(region, start); done {
		s.metrics.RecordRegionDuration(ctx, region, elapsed.Seconds())
		s.logger.Info().
			Str("region", region).
			Dur("elapsed", elapsed).
			Msg("region complete")
	}
}
