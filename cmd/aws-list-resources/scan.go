package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/oklog/run"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/welldone-cloud/aws-list-resources/config"
	"github.com/welldone-cloud/aws-list-resources/internal/exclusions"
	"github.com/welldone-cloud/aws-list-resources/internal/filter"
	"github.com/welldone-cloud/aws-list-resources/inventory"
	"github.com/welldone-cloud/aws-list-resources/providers"
	awsprovider "github.com/welldone-cloud/aws-list-resources/providers/aws"
	"github.com/welldone-cloud/aws-list-resources/scanner"
	"github.com/welldone-cloud/aws-list-resources/storage"
	"github.com/welldone-cloud/aws-list-resources/telemetry"
)

// scanCommand wires one enumeration run end to end.
type scanCommand struct {
	cfg    config.Config
	logger *telemetry.Logger
}

func newScanCommand(cfg config.Config) *scanCommand {
	return &scanCommand{
		cfg:    cfg,
		logger: telemetry.NewLogger("scan", rootDebug),
	}
}

// Run executes the scan. Per-pair failures are recorded in the report and
// still exit 0; only total failures (credentials, regions, output) return an
// error.
func (c *scanCommand) Run(ctx context.Context) error {
	start := time.Now()

	provider, err := awsprovider.New(ctx, providers.Options{
		Profile:    c.cfg.Profile,
		MaxRetries: 5,
	})
	if err != nil {
		return err
	}

	identity, err := provider.CallerIdentity(ctx)
	if err != nil {
		return fmt.Errorf("no or invalid AWS credentials configured: %w", err)
	}
	c.logger.Info().Str("account_id", identity.AccountID).Msg("analyzing account")

	enabled, err := provider.EnabledRegions(ctx)
	if err != nil {
		return err
	}

	targets, err := resolveRegions(c.cfg.Regions, enabled)
	if err != nil {
		return err
	}

	typeFilter, err := filter.New(c.cfg.IncludeResourceTypes, c.cfg.ExcludeResourceTypes)
	if err != nil {
		return err
	}

	table := exclusions.Builtin()
	if c.cfg.ExclusionsFile != "" {
		if table, err = exclusions.Load(c.cfg.ExclusionsFile); err != nil {
			return err
		}
	}

	report := inventory.NewReport(inventory.RunMetadata{
		AccountID:        identity.AccountID,
		AccountPrincipal: identity.ARN,
		Invocation:       strings.Join(os.Args, " "),
		RunTimestamp:     start.UTC().Format("20060102150405"),
	}, targets, c.cfg.OnlyCounts)

	metricsServer, err := c.setupMetrics()
	if err != nil {
		return err
	}
	scanMetrics, err := telemetry.NewScanMetrics(otel.Meter("aws-list-resources"))
	if err != nil {
		return fmt.Errorf("failed to create metrics: %w", err)
	}

	sc := scanner.New(provider, report).
		WithTypeFilter(typeFilter).
		WithWorkers(c.cfg.Workers).
		WithMetrics(scanMetrics).
		WithLogger(telemetry.NewLogger("scanner", rootDebug))
	if !c.cfg.IncludeDefaultResources {
		sc = sc.WithDefaultExclusions(table)
	}

	stats, err := c.runGroup(ctx, sc, targets, metricsServer)
	if err != nil {
		return err
	}

	path, err := report.WriteFile(c.cfg.OutputDir)
	if err != nil {
		return err
	}
	c.logger.Info().Str("path", path).Msg("output file written")

	c.recordHistory(identity.AccountID, targets, report, path, time.Since(start))

	if c.cfg.ShowStats {
		printStats(os.Stderr, targets, stats)
	}

	return nil
}

// runGroup composes the scan, the optional metrics endpoint and signal
// handling into one lifecycle.
func (c *scanCommand) runGroup(ctx context.Context, sc *scanner.Scanner, targets []string, metricsServer *http.Server) (*scanner.Stats, error) {
	scanCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var g run.Group
	var stats *scanner.Stats

	g.Add(func() error {
		var err error
		stats, err = sc.Run(scanCtx, targets)
		return err
	}, func(error) {
		cancel()
	})

	if metricsServer != nil {
		g.Add(func() error {
			c.logger.Info().Str("addr", metricsServer.Addr).Msg("serving metrics")
			if err := metricsServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		}, func(error) {
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer shutdownCancel()
			_ = metricsServer.Shutdown(shutdownCtx)
		})
	}

	g.Add(run.SignalHandler(scanCtx, os.Interrupt, syscall.SIGTERM))

	if err := g.Run(); err != nil {
		var signalErr run.SignalError
		if errors.As(err, &signalErr) {
			return nil, fmt.Errorf("aborted by signal %s", signalErr.Signal)
		}
		if !errors.Is(err, context.Canceled) {
			return nil, err
		}
	}

	return stats, nil
}

// setupMetrics wires the Prometheus exporter into the global meter provider
// when a metrics address is configured. Without it, the global meter stays a
// no-op and recording costs nothing.
func (c *scanCommand) setupMetrics() (*http.Server, error) {
	if c.cfg.MetricsAddr == "" {
		return nil, nil
	}

	exporter, err := prometheus.New()
	if err != nil {
		return nil, fmt.Errorf("failed to create prometheus exporter: %w", err)
	}
	otel.SetMeterProvider(sdkmetric.NewMeterProvider(sdkmetric.WithReader(exporter)))

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	return &http.Server{
		Addr:              c.cfg.MetricsAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}, nil
}

// recordHistory appends the run summary to the history database. History is
// bookkeeping; failures are logged, never fatal.
func (c *scanCommand) recordHistory(accountID string, targets []string, report *inventory.Report, path string, elapsed time.Duration) {
	if c.cfg.HistoryDB == "" {
		return
	}

	store, err := storage.Open(c.cfg.HistoryDB)
	if err != nil {
		c.logger.Warn().Err(err).Msg("failed to open run history")
		return
	}
	defer func() { _ = store.Close() }()

	resources, resourceTypes, notListed := report.Totals()
	err = store.Append(storage.RunRecord{
		Timestamp:       report.Metadata.RunTimestamp,
		AccountID:       accountID,
		Regions:         targets,
		Resources:       resources,
		ResourceTypes:   resourceTypes,
		NotListed:       notListed,
		OutputFile:      path,
		DurationSeconds: elapsed.Seconds(),
	})
	if err != nil {
		c.logger.Warn().Err(err).Msg("failed to record run history")
	}
}

// resolveRegions expands the requested region list against the regions
// enabled for the account. "ALL" selects every enabled region; explicit
// regions must be enabled, and duplicates are dropped preserving order.
func resolveRegions(requested, enabled []string) ([]string, error) {
	if len(requested) == 0 {
		return nil, errors.New("no target regions specified")
	}

	if len(requested) == 1 && requested[0] == "ALL" {
		return append([]string(nil), enabled...), nil
	}

	enabledSet := make(map[string]bool, len(enabled))
	for _, region := range enabled {
		enabledSet[region] = true
	}

	seen := make(map[string]bool, len(requested))
	targets := make([]string, 0, len(requested))
	for _, region := range requested {
		if seen[region] {
			continue
		}
		if !enabledSet[region] {
			return nil, fmt.Errorf("invalid or disabled region for account: %s", region)
		}
		seen[region] = true
		targets = append(targets, region)
	}

	return targets, nil
}

// printStats renders the per-region run statistics.
func printStats(out io.Writer, regions []string, stats *scanner.Stats) {
	if stats == nil {
		return
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "REGION\tTYPES\tMATCHED\tLISTED\tNOT LISTED\tRESOURCES\tDURATION")

	for _, region := range regions {
		rs := stats.Region(region)
		if rs == nil {
			continue
		}
		if rs.CatalogError {
			_, _ = fmt.Fprintf(w, "%s\t-\t-\t-\t-\t-\tcatalog error\n", region)
			continue
		}
		_, _ = fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%d\t%s\n",
			region,
			rs.TypesSupported,
			rs.TypesMatched,
			rs.TypesListed,
			rs.TypesNotListed,
			rs.Resources,
			rs.Duration.Round(time.Millisecond),
		)
	}

	_ = w.Flush()
	_, _ = fmt.Fprintf(out, "total elapsed: %s\n", stats.Elapsed.Round(time.Millisecond))
}
