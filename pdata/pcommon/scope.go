// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package pcommon // import "go.opentelemetry.io/otlpwire/pdata/pcommon"

// InstrumentationScope identifies the instrumentation library that produced
// a record. Like Resource, it compares by instance identity.
type InstrumentationScope struct {
	orig *instrumentationScope
}

type instrumentationScope struct {
	name      string
	version   string
	schemaURL string
}

// NewInstrumentationScope creates a new InstrumentationScope instance.
func NewInstrumentationScope(name, version, schemaURL string) InstrumentationScope {
	return InstrumentationScope{orig: &instrumentationScope{
		name:      name,
		version:   version,
		schemaURL: schemaURL,
	}}
}

// Name returns the instrumentation scope name.
func (is InstrumentationScope) Name() string {
	if is.orig == nil {
		return ""
	}
	return is.orig.name
}

// Version returns the instrumentation scope version.
func (is InstrumentationScope) Version() string {
	if is.orig == nil {
		return ""
	}
	return is.orig.version
}

// SchemaURL returns the schema URL of the scope.
func (is InstrumentationScope) SchemaURL() string {
	if is.orig == nil {
		return ""
	}
	return is.orig.schemaURL
}
