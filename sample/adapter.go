package sample

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// FromSource normalizes a metric source into an ordered sequence of family
// groups.
//
// Supported source shapes:
//   - prometheus.Gatherer (registry-shaped): families in gather order.
//   - prometheus.Collector (collector-shaped): the collector's direct output.
//
// Any other shape fails with ErrUnsupportedSource. A source of a supported
// shape that cannot produce its families fails with ErrGatherFailed.
func FromSource(source any) ([]FamilyGroup, error) {
	switch src := source.(type) {
	case prometheus.Gatherer:
		families, err := src.Gather()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrGatherFailed, err)
		}

		return fromFamilies(families), nil
	case prometheus.Collector:
		families, err := collect(src)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrGatherFailed, err)
		}

		return fromFamilies(families), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedSource, source)
	}
}

// collect drains a single collector through a dedicated pedantic registry,
// which checks label and help consistency while converting the collected
// metrics into dto families.
func collect(c prometheus.Collector) ([]*dto.MetricFamily, error) {
	registry := prometheus.NewPedanticRegistry()
	if err := registry.Register(c); err != nil {
		return nil, err
	}

	return registry.Gather()
}
