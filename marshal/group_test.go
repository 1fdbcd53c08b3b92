// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package marshal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.opentelemetry.io/otlpwire/pdata/pcommon"
)

type testRecord struct {
	resource pcommon.Resource
	scope    pcommon.InstrumentationScope
	name     string
}

func groupRecords(records []testRecord, ctx *Context) map[pcommon.Resource]map[pcommon.InstrumentationScope][]any {
	getResource := func(r testRecord) pcommon.Resource { return r.resource }
	getScope := func(r testRecord) pcommon.InstrumentationScope { return r.scope }
	createItem := func(r testRecord) any { return r.name }
	if ctx != nil {
		return GroupByResourceAndScopeFromContext(ctx, records, getResource, getScope, createItem)
	}
	return GroupByResourceAndScope(records, getResource, getScope, createItem)
}

func TestGroupByResourceAndScope(t *testing.T) {
	res1 := pcommon.NewResource("https://example.com/1.0", nil)
	res2 := pcommon.NewResource("https://example.com/1.0", nil)
	scope1 := pcommon.NewInstrumentationScope("lib-a", "1.0", "")
	scope2 := pcommon.NewInstrumentationScope("lib-b", "2.0", "")

	records := []testRecord{
		{resource: res1, scope: scope1, name: "m1"},
		{resource: res1, scope: scope2, name: "m2"},
		{resource: res2, scope: scope1, name: "m3"},
	}

	for _, pooled := range []bool{false, true} {
		var ctx *Context
		if pooled {
			ctx = NewContext()
		}
		grouped := groupRecords(records, ctx)

		// Two resource instances, even though they are structurally equal.
		require.Len(t, grouped, 2)
		require.Len(t, grouped[res1], 2)
		assert.Equal(t, []any{"m1"}, grouped[res1][scope1])
		assert.Equal(t, []any{"m2"}, grouped[res1][scope2])
		require.Len(t, grouped[res2], 1)
		assert.Equal(t, []any{"m3"}, grouped[res2][scope1])
	}
}

func TestGroupPreservesEncounterOrder(t *testing.T) {
	res := pcommon.NewResource("", nil)
	scope := pcommon.NewInstrumentationScope("lib", "", "")

	var records []testRecord
	want := make([]any, 0, 32)
	for i := 0; i < 32; i++ {
		name := string(rune('a' + i))
		records = append(records, testRecord{resource: res, scope: scope, name: name})
		want = append(want, name)
	}

	fresh := groupRecords(records, nil)
	pooled := groupRecords(records, NewContext())
	assert.Equal(t, want, fresh[res][scope])
	assert.Equal(t, fresh, pooled)
}

func TestGroupNoRecordLossOrDuplication(t *testing.T) {
	resources := []pcommon.Resource{
		pcommon.NewResource("r0", nil),
		pcommon.NewResource("r1", nil),
		pcommon.NewResource("r2", nil),
	}
	scopes := []pcommon.InstrumentationScope{
		pcommon.NewInstrumentationScope("s0", "", ""),
		pcommon.NewInstrumentationScope("s1", "", ""),
	}

	var records []testRecord
	for i := 0; i < 100; i++ {
		records = append(records, testRecord{
			resource: resources[i%len(resources)],
			scope:    scopes[i%len(scopes)],
			name:     string(rune(i)),
		})
	}

	grouped := groupRecords(records, NewContext())
	total := 0
	seen := map[any]bool{}
	for _, scopeMap := range grouped {
		for _, items := range scopeMap {
			total += len(items)
			for _, item := range items {
				assert.False(t, seen[item])
				seen[item] = true
			}
		}
	}
	assert.Equal(t, len(records), total)
}

func TestGroupPooledVariantReusesContainers(t *testing.T) {
	ctx := NewContext()
	res := pcommon.NewResource("", nil)
	scope := pcommon.NewInstrumentationScope("lib", "", "")
	records := []testRecord{{resource: res, scope: scope, name: "m1"}}

	first := groupRecords(records, ctx)
	require.Len(t, first[res][scope], 1)

	ctx.Reset()

	// After a reset the same context serves the next batch from its pools.
	second := groupRecords(records, ctx)
	require.Len(t, second, 1)
	assert.Equal(t, []any{"m1"}, second[res][scope])
}
