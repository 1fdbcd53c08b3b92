// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

// Package metrics implements the OTLP structured encoders for the metric
// signal. Every encoder is a stateless singleton composing the marshal
// primitives; all per-batch state lives in the marshal.Context the caller
// threads through the size and write passes.
package metrics // import "go.opentelemetry.io/otlpwire/otlp/metrics"

import (
	"go.opentelemetry.io/otlpwire/marshal"
	"go.opentelemetry.io/otlpwire/pdata/pmetric"
)

var (
	temporalityUnspecified = marshal.EnumValue{Number: 0, Name: "AGGREGATION_TEMPORALITY_UNSPECIFIED"}
	temporalityDelta       = marshal.EnumValue{Number: 1, Name: "AGGREGATION_TEMPORALITY_DELTA"}
	temporalityCumulative  = marshal.EnumValue{Number: 2, Name: "AGGREGATION_TEMPORALITY_CUMULATIVE"}
)

// toProtoTemporality translates the model enum to its wire value. The wire
// numbers are fixed by the OTLP proto and not assumed to match the model
// constants.
func toProtoTemporality(at pmetric.AggregationTemporality) marshal.EnumValue {
	switch at {
	case pmetric.AggregationTemporalityDelta:
		return temporalityDelta
	case pmetric.AggregationTemporalityCumulative:
		return temporalityCumulative
	}
	return temporalityUnspecified
}
