// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

// Package pmetric holds the metric signal model consumed by the wire
// encoder. All types are plain data: constructed by the producing side,
// read-only afterwards. Records are passed around by pointer so the
// encoder's size memoization and grouping can key off instance identity.
package pmetric // import "go.opentelemetry.io/otlpwire/pdata/pmetric"

import (
	"go.opentelemetry.io/otlpwire/pdata/pcommon"
)

// AggregationTemporality defines how a metric aggregator reports aggregated
// values: cumulative since process start, or deltas since the last report.
type AggregationTemporality int32

const (
	AggregationTemporalityUnspecified AggregationTemporality = iota
	AggregationTemporalityDelta
	AggregationTemporalityCumulative
)

// String returns the string representation of the AggregationTemporality.
func (at AggregationTemporality) String() string {
	switch at {
	case AggregationTemporalityDelta:
		return "Delta"
	case AggregationTemporalityCumulative:
		return "Cumulative"
	}
	return "Unspecified"
}

// Metric is one named metric together with the resource and instrumentation
// scope it was recorded under.
type Metric struct {
	Resource pcommon.Resource
	Scope    pcommon.InstrumentationScope

	Name        string
	Description string
	Unit        string

	// ExponentialHistogram holds the metric's data. Nil means the metric
	// carries no exponential histogram payload.
	ExponentialHistogram *ExponentialHistogramData
}

// ExponentialHistogramData is the collection of exponential histogram points
// reported under one metric.
type ExponentialHistogramData struct {
	AggregationTemporality AggregationTemporality
	DataPoints             []*ExponentialHistogramDataPoint
}

// ExponentialHistogramDataPoint is a single exponential histogram sample:
// a scale, a zero bucket, and two runs of exponentially sized buckets.
type ExponentialHistogramDataPoint struct {
	StartTimeUnixNano uint64
	TimeUnixNano      uint64
	Count             uint64

	// Sum is meaningful only when HasSum is set; zero is a legitimate sum.
	Sum    float64
	HasSum bool

	Scale     int32
	ZeroCount uint64

	// Positive and Negative hold the bucket runs on either side of zero.
	// Nil means the run is absent from the payload.
	Positive *ExponentialHistogramBuckets
	Negative *ExponentialHistogramBuckets

	Flags     uint32
	Exemplars []*Exemplar

	Min    float64
	HasMin bool
	Max    float64
	HasMax bool

	ZeroThreshold float64
}

// ExponentialHistogramBuckets is one run of contiguous buckets starting at
// the given offset from scale-zero.
type ExponentialHistogramBuckets struct {
	Offset       int32
	BucketCounts []uint64
}

// ExemplarValueType selects which value variant an Exemplar carries. The
// variant is fixed when the exemplar is recorded; the encoder dispatches on
// it without inspecting runtime types.
type ExemplarValueType int32

const (
	ExemplarValueTypeDouble ExemplarValueType = iota
	ExemplarValueTypeInt
)

// Exemplar is a sampled measurement linked to the trace context it was
// recorded in. SpanID and TraceID are hex strings; empty means unset.
type Exemplar struct {
	TimeUnixNano uint64

	ValueType   ExemplarValueType
	DoubleValue float64
	IntValue    int64

	SpanID  string
	TraceID string
}
