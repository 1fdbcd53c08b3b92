// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package metrics // import "go.opentelemetry.io/otlpwire/otlp/metrics"

import (
	"io"

	"go.opentelemetry.io/otlpwire/internal/proto"
	"go.opentelemetry.io/otlpwire/marshal"
	"go.opentelemetry.io/otlpwire/pdata/pmetric"
)

// Memoization tokens, one per encoder. Sizes computed for a record during
// the size pass are stored under the encoder's own token so encoders never
// read each other's entries for the same record.
var (
	metricHistogramKey = marshal.NewKey()
	dataPointsKey      = marshal.NewKey()
	bucketsKey         = marshal.NewKey()
	exemplarsKey       = marshal.NewKey()
)

// MetricMarshaler encodes one Metric message: its descriptive strings and
// the exponential-histogram payload.
type MetricMarshaler struct{}

var _ marshal.StatelessMarshaler[*pmetric.Metric] = MetricMarshaler{}

// Size returns the exact encoded size of m's Metric message.
func (MetricMarshaler) Size(ctx *marshal.Context, m *pmetric.Metric) int {
	size := marshal.SizeString(proto.MetricName, m.Name)
	size += marshal.SizeString(proto.MetricDescription, m.Description)
	size += marshal.SizeString(proto.MetricUnit, m.Unit)
	if m.ExponentialHistogram != nil {
		size += marshal.SizeMessageStateless(ctx, proto.MetricExponentialHistogram,
			m.ExponentialHistogram, ExponentialHistogramMarshaler{}, metricHistogramKey)
	}
	return size
}

// WriteTo writes the Metric message fields in the order Size visited them.
func (MetricMarshaler) WriteTo(ctx *marshal.Context, out marshal.Serializer, m *pmetric.Metric) error {
	if err := marshal.SerializeString(out, proto.MetricName, m.Name); err != nil {
		return err
	}
	if err := marshal.SerializeString(out, proto.MetricDescription, m.Description); err != nil {
		return err
	}
	if err := marshal.SerializeString(out, proto.MetricUnit, m.Unit); err != nil {
		return err
	}
	if m.ExponentialHistogram != nil {
		return marshal.SerializeMessageStateless(ctx, out, proto.MetricExponentialHistogram,
			m.ExponentialHistogram, ExponentialHistogramMarshaler{}, metricHistogramKey)
	}
	return nil
}

// ExponentialHistogramMarshaler encodes an ExponentialHistogram message:
// the repeated data points, delegated point by point, then the aggregation
// temporality enum.
type ExponentialHistogramMarshaler struct{}

var _ marshal.StatelessMarshaler[*pmetric.ExponentialHistogramData] = ExponentialHistogramMarshaler{}

// Size returns the exact encoded size of the histogram message.
func (ExponentialHistogramMarshaler) Size(ctx *marshal.Context, h *pmetric.ExponentialHistogramData) int {
	size := marshal.SizeRepeatedMessageStateless(ctx, proto.ExponentialHistogramDataPoints,
		h.DataPoints, ExponentialHistogramDataPointMarshaler{}, dataPointsKey)
	size += marshal.SizeEnum(proto.ExponentialHistogramAggregationTemporality,
		toProtoTemporality(h.AggregationTemporality))
	return size
}

// WriteTo writes the histogram message fields.
func (ExponentialHistogramMarshaler) WriteTo(ctx *marshal.Context, out marshal.Serializer, h *pmetric.ExponentialHistogramData) error {
	err := marshal.SerializeRepeatedMessageStateless(ctx, out, proto.ExponentialHistogramDataPoints,
		h.DataPoints, ExponentialHistogramDataPointMarshaler{}, dataPointsKey)
	if err != nil {
		return err
	}
	return marshal.SerializeEnum(out, proto.ExponentialHistogramAggregationTemporality,
		toProtoTemporality(h.AggregationTemporality))
}

// ExponentialHistogramDataPointMarshaler encodes one data point. Sum, min
// and max use the optional double forms: for them zero is a legitimate
// measured value, and presence is signaled by the record's Has flags rather
// than by the zero-omission rule.
type ExponentialHistogramDataPointMarshaler struct{}

var _ marshal.StatelessMarshaler[*pmetric.ExponentialHistogramDataPoint] = ExponentialHistogramDataPointMarshaler{}

// Size returns the exact encoded size of the data point message.
func (ExponentialHistogramDataPointMarshaler) Size(ctx *marshal.Context, p *pmetric.ExponentialHistogramDataPoint) int {
	size := marshal.SizeFixed64(proto.ExponentialHistogramDataPointStartTimeUnixNano, p.StartTimeUnixNano)
	size += marshal.SizeFixed64(proto.ExponentialHistogramDataPointTimeUnixNano, p.TimeUnixNano)
	size += marshal.SizeFixed64(proto.ExponentialHistogramDataPointCount, p.Count)
	if p.HasSum {
		size += marshal.SizeDoubleOptional(proto.ExponentialHistogramDataPointSum, p.Sum)
	}
	size += marshal.SizeSInt32(proto.ExponentialHistogramDataPointScale, p.Scale)
	size += marshal.SizeFixed64(proto.ExponentialHistogramDataPointZeroCount, p.ZeroCount)
	if p.Positive != nil {
		size += marshal.SizeMessageStateless(ctx, proto.ExponentialHistogramDataPointPositive,
			p.Positive, ExponentialHistogramBucketsMarshaler{}, bucketsKey)
	}
	if p.Negative != nil {
		size += marshal.SizeMessageStateless(ctx, proto.ExponentialHistogramDataPointNegative,
			p.Negative, ExponentialHistogramBucketsMarshaler{}, bucketsKey)
	}
	size += marshal.SizeUInt32(proto.ExponentialHistogramDataPointFlags, p.Flags)
	size += marshal.SizeRepeatedMessageStateless(ctx, proto.ExponentialHistogramDataPointExemplars,
		p.Exemplars, ExemplarMarshaler{}, exemplarsKey)
	if p.HasMin {
		size += marshal.SizeDoubleOptional(proto.ExponentialHistogramDataPointMin, p.Min)
	}
	if p.HasMax {
		size += marshal.SizeDoubleOptional(proto.ExponentialHistogramDataPointMax, p.Max)
	}
	size += marshal.SizeDouble(proto.ExponentialHistogramDataPointZeroThreshold, p.ZeroThreshold)
	return size
}

// WriteTo writes the data point message fields.
func (ExponentialHistogramDataPointMarshaler) WriteTo(ctx *marshal.Context, out marshal.Serializer, p *pmetric.ExponentialHistogramDataPoint) error {
	if err := marshal.SerializeFixed64(out, proto.ExponentialHistogramDataPointStartTimeUnixNano, p.StartTimeUnixNano); err != nil {
		return err
	}
	if err := marshal.SerializeFixed64(out, proto.ExponentialHistogramDataPointTimeUnixNano, p.TimeUnixNano); err != nil {
		return err
	}
	if err := marshal.SerializeFixed64(out, proto.ExponentialHistogramDataPointCount, p.Count); err != nil {
		return err
	}
	if p.HasSum {
		if err := marshal.SerializeDoubleOptional(out, proto.ExponentialHistogramDataPointSum, p.Sum); err != nil {
			return err
		}
	}
	if err := marshal.SerializeSInt32(out, proto.ExponentialHistogramDataPointScale, p.Scale); err != nil {
		return err
	}
	if err := marshal.SerializeFixed64(out, proto.ExponentialHistogramDataPointZeroCount, p.ZeroCount); err != nil {
		return err
	}
	if p.Positive != nil {
		err := marshal.SerializeMessageStateless(ctx, out, proto.ExponentialHistogramDataPointPositive,
			p.Positive, ExponentialHistogramBucketsMarshaler{}, bucketsKey)
		if err != nil {
			return err
		}
	}
	if p.Negative != nil {
		err := marshal.SerializeMessageStateless(ctx, out, proto.ExponentialHistogramDataPointNegative,
			p.Negative, ExponentialHistogramBucketsMarshaler{}, bucketsKey)
		if err != nil {
			return err
		}
	}
	if err := marshal.SerializeUInt32(out, proto.ExponentialHistogramDataPointFlags, p.Flags); err != nil {
		return err
	}
	err := marshal.SerializeRepeatedMessageStateless(ctx, out, proto.ExponentialHistogramDataPointExemplars,
		p.Exemplars, ExemplarMarshaler{}, exemplarsKey)
	if err != nil {
		return err
	}
	if p.HasMin {
		if err := marshal.SerializeDoubleOptional(out, proto.ExponentialHistogramDataPointMin, p.Min); err != nil {
			return err
		}
	}
	if p.HasMax {
		if err := marshal.SerializeDoubleOptional(out, proto.ExponentialHistogramDataPointMax, p.Max); err != nil {
			return err
		}
	}
	return marshal.SerializeDouble(out, proto.ExponentialHistogramDataPointZeroThreshold, p.ZeroThreshold)
}

// ExponentialHistogramBucketsMarshaler encodes one bucket run: a zig-zag
// offset and the packed bucket counts.
type ExponentialHistogramBucketsMarshaler struct{}

var _ marshal.StatelessMarshaler[*pmetric.ExponentialHistogramBuckets] = ExponentialHistogramBucketsMarshaler{}

// Size returns the exact encoded size of the buckets message.
func (ExponentialHistogramBucketsMarshaler) Size(_ *marshal.Context, b *pmetric.ExponentialHistogramBuckets) int {
	size := marshal.SizeSInt32(proto.BucketsOffset, b.Offset)
	size += marshal.SizeRepeatedUInt64(proto.BucketsBucketCounts, b.BucketCounts)
	return size
}

// WriteTo writes the buckets message fields.
func (ExponentialHistogramBucketsMarshaler) WriteTo(_ *marshal.Context, out marshal.Serializer, b *pmetric.ExponentialHistogramBuckets) error {
	if err := marshal.SerializeSInt32(out, proto.BucketsOffset, b.Offset); err != nil {
		return err
	}
	return marshal.SerializeRepeatedUInt64(out, proto.BucketsBucketCounts, b.BucketCounts)
}

// ExemplarMarshaler encodes one exemplar. The value variant is fixed when
// the exemplar is recorded; dispatch is on the record's ValueType, never on
// runtime type inspection. Both variants are emitted even when zero, since
// a measured zero is meaningful.
type ExemplarMarshaler struct{}

var _ marshal.StatelessMarshaler[*pmetric.Exemplar] = ExemplarMarshaler{}

// Size returns the exact encoded size of the exemplar message.
func (ExemplarMarshaler) Size(_ *marshal.Context, e *pmetric.Exemplar) int {
	size := marshal.SizeFixed64(proto.ExemplarTimeUnixNano, e.TimeUnixNano)
	switch e.ValueType {
	case pmetric.ExemplarValueTypeInt:
		size += marshal.SizeSFixed64Optional(proto.ExemplarAsInt, e.IntValue)
	default:
		size += marshal.SizeDoubleOptional(proto.ExemplarAsDouble, e.DoubleValue)
	}
	size += marshal.SizeSpanID(proto.ExemplarSpanID, e.SpanID)
	size += marshal.SizeTraceID(proto.ExemplarTraceID, e.TraceID)
	return size
}

// WriteTo writes the exemplar message fields.
func (ExemplarMarshaler) WriteTo(_ *marshal.Context, out marshal.Serializer, e *pmetric.Exemplar) error {
	if err := marshal.SerializeFixed64(out, proto.ExemplarTimeUnixNano, e.TimeUnixNano); err != nil {
		return err
	}
	switch e.ValueType {
	case pmetric.ExemplarValueTypeInt:
		if err := marshal.SerializeSFixed64Optional(out, proto.ExemplarAsInt, e.IntValue); err != nil {
			return err
		}
	default:
		if err := marshal.SerializeDoubleOptional(out, proto.ExemplarAsDouble, e.DoubleValue); err != nil {
			return err
		}
	}
	if err := marshal.SerializeSpanID(out, proto.ExemplarSpanID, e.SpanID); err != nil {
		return err
	}
	return marshal.SerializeTraceID(out, proto.ExemplarTraceID, e.TraceID)
}

// MarshalMetric encodes m into OTLP binary protobuf bytes, allocating the
// output buffer at exactly its serialized size.
func MarshalMetric(ctx *marshal.Context, m *pmetric.Metric) ([]byte, error) {
	return marshal.Marshal(ctx, MetricMarshaler{}, m)
}

// MarshalMetricJSON writes m as OTLP JSON to w, traversing the same fields
// as the binary encoding.
func MarshalMetricJSON(ctx *marshal.Context, w io.Writer, m *pmetric.Metric) error {
	return marshal.MarshalJSON(ctx, w, MetricMarshaler{}, m)
}
