package sample

import "errors"

// Errors returned while adapting a metric source. These are fatal for the
// calling assertion: an object that cannot produce metric families has no
// sensible partial result, and adaptation is never retried.
var (
	// ErrUnsupportedSource is returned when the evaluated object is neither
	// registry-shaped (prometheus.Gatherer) nor collector-shaped
	// (prometheus.Collector). The wrapped message carries the runtime type
	// name of the offending source.
	ErrUnsupportedSource = errors.New("unsupported metric source type")

	// ErrGatherFailed is returned when a source of a supported shape fails
	// to produce its metric families (an inconsistent collector, a gatherer
	// returning an error).
	ErrGatherFailed = errors.New("gathering metric families failed")
)
