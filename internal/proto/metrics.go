// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

// Package proto catalogs the OTLP field descriptors used by the encoders.
// Field numbers and JSON names follow opentelemetry/proto/metrics/v1/metrics.proto;
// each descriptor is constructed once so its tag bytes are never recomputed.
package proto // import "go.opentelemetry.io/otlpwire/internal/proto"

import (
	"go.opentelemetry.io/otlpwire/marshal"
)

// Metric
var (
	MetricName                 = marshal.LengthDelimitedField(1, "name")
	MetricDescription          = marshal.LengthDelimitedField(2, "description")
	MetricUnit                 = marshal.LengthDelimitedField(3, "unit")
	MetricExponentialHistogram = marshal.LengthDelimitedField(10, "exponentialHistogram")
)

// ExponentialHistogram
var (
	ExponentialHistogramDataPoints             = marshal.LengthDelimitedField(1, "dataPoints")
	ExponentialHistogramAggregationTemporality = marshal.VarintField(2, "aggregationTemporality")
)

// ExponentialHistogramDataPoint
var (
	ExponentialHistogramDataPointStartTimeUnixNano = marshal.Fixed64Field(2, "startTimeUnixNano")
	ExponentialHistogramDataPointTimeUnixNano      = marshal.Fixed64Field(3, "timeUnixNano")
	ExponentialHistogramDataPointCount             = marshal.Fixed64Field(4, "count")
	ExponentialHistogramDataPointSum               = marshal.Fixed64Field(5, "sum")
	ExponentialHistogramDataPointScale             = marshal.VarintField(6, "scale")
	ExponentialHistogramDataPointZeroCount         = marshal.Fixed64Field(7, "zeroCount")
	ExponentialHistogramDataPointPositive          = marshal.LengthDelimitedField(8, "positive")
	ExponentialHistogramDataPointNegative          = marshal.LengthDelimitedField(9, "negative")
	ExponentialHistogramDataPointFlags             = marshal.VarintField(10, "flags")
	ExponentialHistogramDataPointExemplars         = marshal.LengthDelimitedField(11, "exemplars")
	ExponentialHistogramDataPointMin               = marshal.Fixed64Field(12, "min")
	ExponentialHistogramDataPointMax               = marshal.Fixed64Field(13, "max")
	ExponentialHistogramDataPointZeroThreshold     = marshal.Fixed64Field(14, "zeroThreshold")
)

// ExponentialHistogramDataPoint.Buckets
var (
	BucketsOffset       = marshal.VarintField(1, "offset")
	BucketsBucketCounts = marshal.LengthDelimitedField(2, "bucketCounts")
)

// Exemplar
var (
	ExemplarTimeUnixNano = marshal.Fixed64Field(2, "timeUnixNano")
	ExemplarAsDouble     = marshal.Fixed64Field(3, "asDouble")
	ExemplarSpanID       = marshal.LengthDelimitedField(4, "spanId")
	ExemplarTraceID      = marshal.LengthDelimitedField(5, "traceId")
	ExemplarAsInt        = marshal.Fixed64Field(6, "asInt")
)
