// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

// Package pcommon holds the telemetry model types shared by all signals.
// The types are read-only inputs to the wire encoder: they are constructed
// once by the producing SDK and never mutated afterwards.
//
// Resource and InstrumentationScope compare by instance identity, not by
// structural equality. Pipelines reuse one instance across many records, and
// the encoder's grouping stage relies on that reuse: two records share a
// group only when they share the same instance. Callers that construct
// structurally equal but distinct instances get distinct groups.
package pcommon // import "go.opentelemetry.io/otlpwire/pdata/pcommon"

// Resource describes the entity producing telemetry.
type Resource struct {
	orig *resource
}

type resource struct {
	schemaURL  string
	attributes map[string]string
}

// NewResource creates a new Resource instance. Each call yields a value that
// is distinct, in the identity sense, from every other Resource.
func NewResource(schemaURL string, attributes map[string]string) Resource {
	return Resource{orig: &resource{schemaURL: schemaURL, attributes: attributes}}
}

// SchemaURL returns the schema URL the resource attributes conform to.
func (r Resource) SchemaURL() string {
	if r.orig == nil {
		return ""
	}
	return r.orig.schemaURL
}

// Attributes returns the resource attributes. The returned map must be
// treated as read-only.
func (r Resource) Attributes() map[string]string {
	if r.orig == nil {
		return nil
	}
	return r.orig.attributes
}
