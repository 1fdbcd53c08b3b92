// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package metric

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMeterConfig(t *testing.T) {
	cfg := NewMeterConfig()
	assert.Empty(t, cfg.Version)
	assert.Empty(t, cfg.SchemaURL)

	cfg = NewMeterConfig(
		WithInstrumentationVersion("1.2.3"),
		WithSchemaURL("https://example.com/1.0"),
	)
	assert.Equal(t, "1.2.3", cfg.Version)
	assert.Equal(t, "https://example.com/1.0", cfg.SchemaURL)
}

func TestNoopMeterProvider(t *testing.T) {
	meter := NewNoopMeterProvider().Meter("test", WithInstrumentationVersion("1.0"))
	require.NotNil(t, meter)

	counter := meter.Int64Counter("requests")
	require.NotNil(t, counter)
	assert.NotPanics(t, func() { counter.Add(1) })

	reg := meter.Int64ObservableCounter("queue.size", func() int64 { return 0 })
	require.NotNil(t, reg)
	assert.NotPanics(t, func() {
		reg.Unregister()
		reg.Unregister()
	})
}
