// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

// Package metric is the thin instrumentation-facing API. It only defines
// interfaces and their no-op defaults, so instrumented code can compile and
// run before any SDK is installed; the wire encoder never depends on it.
package metric // import "go.opentelemetry.io/otlpwire/api/metric"

// MeterProvider is the entry point of the metric API.
type MeterProvider interface {
	// Meter returns a Meter for the given instrumentation scope name.
	Meter(name string, opts ...MeterOption) Meter
}

// Meter creates instruments scoped to one instrumentation library.
type Meter interface {
	// Int64Counter returns a monotonic additive instrument.
	Int64Counter(name string) Int64Counter
	// Int64ObservableCounter registers callback to be invoked on each
	// collection. The returned Registration removes it again.
	Int64ObservableCounter(name string, callback Int64Callback) Registration
}

// Int64Counter records monotonic int64 increments.
type Int64Counter interface {
	Add(incr int64)
}

// Int64Callback reports the current value of an observable counter.
type Int64Callback func() int64

// Registration ties an observable callback to its instrument.
type Registration interface {
	// Unregister removes the callback from future collections. Other
	// callbacks registered to the same instrument are unaffected; calling
	// Unregister more than once has no effect.
	Unregister()
}

// MeterOption configures a Meter.
type MeterOption func(*MeterConfig)

// MeterConfig holds the configuration applied by MeterOptions.
type MeterConfig struct {
	Version   string
	SchemaURL string
}

// WithInstrumentationVersion sets the version of the instrumentation library.
func WithInstrumentationVersion(version string) MeterOption {
	return func(cfg *MeterConfig) { cfg.Version = version }
}

// WithSchemaURL sets the schema URL of the recorded telemetry.
func WithSchemaURL(schemaURL string) MeterOption {
	return func(cfg *MeterConfig) { cfg.SchemaURL = schemaURL }
}

// NewMeterConfig applies opts and returns the resulting MeterConfig.
func NewMeterConfig(opts ...MeterOption) MeterConfig {
	var cfg MeterConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
