// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package metrics // import "go.opentelemetry.io/otlpwire/otlp/metrics"

import (
	"go.opentelemetry.io/otlpwire/marshal"
	"go.opentelemetry.io/otlpwire/pdata/pcommon"
	"go.opentelemetry.io/otlpwire/pdata/pmetric"
)

// GroupMetrics partitions a flat metric batch into the resource -> scope ->
// metrics nesting of an OTLP export request, drawing all intermediate
// containers from ctx. Items are the *pmetric.Metric records themselves;
// the stateless encoders marshal them in place, so no per-record wrapper is
// allocated.
func GroupMetrics(ctx *marshal.Context, data []*pmetric.Metric) map[pcommon.Resource]map[pcommon.InstrumentationScope][]any {
	return marshal.GroupByResourceAndScopeFromContext(ctx, data,
		func(m *pmetric.Metric) pcommon.Resource { return m.Resource },
		func(m *pmetric.Metric) pcommon.InstrumentationScope { return m.Scope },
		func(m *pmetric.Metric) any { return m },
	)
}
