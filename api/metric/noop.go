// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package metric // import "go.opentelemetry.io/otlpwire/api/metric"

// NewNoopMeterProvider returns a MeterProvider whose instruments record
// nothing. It is the default used when no SDK is installed.
func NewNoopMeterProvider() MeterProvider {
	return noopMeterProvider{}
}

type noopMeterProvider struct{}

func (noopMeterProvider) Meter(string, ...MeterOption) Meter {
	return noopMeter{}
}

type noopMeter struct{}

func (noopMeter) Int64Counter(string) Int64Counter {
	return noopCounter{}
}

func (noopMeter) Int64ObservableCounter(string, Int64Callback) Registration {
	return noopRegistration{}
}

type noopCounter struct{}

func (noopCounter) Add(int64) {}

type noopRegistration struct{}

func (noopRegistration) Unregister() {}
