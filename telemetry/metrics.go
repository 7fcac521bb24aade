package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// ScanMetrics holds the instruments describing an enumeration run. With no
// exporter configured the global meter is a no-op, so recording is always
// safe.
type ScanMetrics struct {
	ResourcesDiscovered metric.Int64Counter
	ListCalls           metric.Int64Counter
	ListErrors          metric.Int64Counter
	TypesSupported      metric.Int64Counter
	RegionDuration      metric.Float64Histogram
}

// NewScanMetrics initializes all scan instruments on the given meter.
func NewScanMetrics(meter metric.Meter) (*ScanMetrics, error) {
	m := &ScanMetrics{}
	var err error

	m.ResourcesDiscovered, err = meter.Int64Counter(
		"aws_list_resources.resources.discovered.total",
		metric.WithDescription("Total resource identifiers discovered"),
		metric.WithUnit("resources"),
	)
	if err != nil {
		return nil, err
	}

	m.ListCalls, err = meter.Int64Counter(
		"aws_list_resources.list.calls.total",
		metric.WithDescription("Total Cloud Control List operations issued"),
		metric.WithUnit("calls"),
	)
	if err != nil {
		return nil, err
	}

	m.ListErrors, err = meter.Int64Counter(
		"aws_list_resources.list.errors.total",
		metric.WithDescription("Total resource types that could not be listed"),
		metric.WithUnit("errors"),
	)
	if err != nil {
		return nil, err
	}

	m.TypesSupported, err = meter.Int64Counter(
		"aws_list_resources.types.supported.total",
		metric.WithDescription("Total listable resource types discovered per region"),
		metric.WithUnit("types"),
	)
	if err != nil {
		return nil, err
	}

	m.RegionDuration, err = meter.Float64Histogram(
		"aws_list_resources.region.duration.seconds",
		metric.WithDescription("Time taken to enumerate one region"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	return m, nil
}

// RecordListing records one successful list call.
func (m *ScanMetrics) RecordListing(ctx context.Context, region string, discovered int) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("region", region))
	m.ListCalls.Add(ctx, 1, attrs)
	m.ResourcesDiscovered.Add(ctx, int64(discovered), attrs)
}

// RecordListError records one failed list call with its reason code.
func (m *ScanMetrics) RecordListError(ctx context.Context, region, reason string) {
	if m == nil {
		return
	}
	m.ListCalls.Add(ctx, 1, metric.WithAttributes(attribute.String("region", region)))
	m.ListErrors.Add(ctx, 1, metric.WithAttributes(
		attribute.String("region", region),
		attribute.String("reason", reason),
	))
}

// RecordCatalog records the size of one region's type catalog.
func (m *ScanMetrics) RecordCatalog(ctx context.Context, region string, supported int) {
	if m == nil {
		return
	}
	m.TypesSupported.Add(ctx, int64(supported), metric.WithAttributes(attribute.String("region", region)))
}

// RecordRegionDuration records how long one region took end to end.
func (m *ScanMetrics) RecordRegionDuration(ctx context.Context, region string, seconds float64) {
	if m == nil {
		return
	}
	m.RegionDuration.Record(ctx, seconds, metric.WithAttributes(attribute.String("region", region)))
}
