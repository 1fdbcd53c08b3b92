// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package pcommon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResourceIdentity(t *testing.T) {
	attrs := map[string]string{"service.name": "checkout"}
	r1 := NewResource("https://example.com/1.0", attrs)
	r2 := NewResource("https://example.com/1.0", attrs)

	// Structurally equal, but distinct instances: they never collide as
	// map keys.
	assert.False(t, r1 == r2)
	m := map[Resource]int{r1: 1, r2: 2}
	assert.Len(t, m, 2)

	// Copies of the same instance do collide.
	r3 := r1
	m[r3] = 3
	assert.Len(t, m, 2)
	assert.Equal(t, 3, m[r1])
}

func TestResourceAccessors(t *testing.T) {
	r := NewResource("https://example.com/1.0", map[string]string{"k": "v"})
	assert.Equal(t, "https://example.com/1.0", r.SchemaURL())
	assert.Equal(t, map[string]string{"k": "v"}, r.Attributes())

	var zero Resource
	assert.Empty(t, zero.SchemaURL())
	assert.Nil(t, zero.Attributes())
}

func TestInstrumentationScopeIdentity(t *testing.T) {
	s1 := NewInstrumentationScope("lib", "1.0", "")
	s2 := NewInstrumentationScope("lib", "1.0", "")

	assert.False(t, s1 == s2)
	m := map[InstrumentationScope]int{s1: 1, s2: 2}
	assert.Len(t, m, 2)
}

func TestInstrumentationScopeAccessors(t *testing.T) {
	s := NewInstrumentationScope("lib", "1.0", "https://example.com/1.0")
	assert.Equal(t, "lib", s.Name())
	assert.Equal(t, "1.0", s.Version())
	assert.Equal(t, "https://example.com/1.0", s.SchemaURL())

	var zero InstrumentationScope
	assert.Empty(t, zero.Name())
	assert.Empty(t, zero.Version())
	assert.Empty(t, zero.SchemaURL())
}
