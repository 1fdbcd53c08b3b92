// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package marshal // import "go.opentelemetry.io/otlpwire/marshal"

import (
	"go.opentelemetry.io/otlpwire/pdata/pcommon"
)

// Key is an opaque memoization token. Each encoder allocates its own Key
// once (at package init) and uses it for every size it caches, so two
// encoders memoizing against the same record never collide. Keys compare by
// pointer identity.
type Key struct {
	_ byte // keep the struct non-zero-sized so every allocation is distinct
}

// NewKey returns a new, unique memoization token.
func NewKey() *Key {
	return new(Key)
}

type memoKey struct {
	key  *Key
	item any
}

// Context is the per-batch working store threaded through the size pass and
// the matching write pass of one marshaling operation. It hands out pooled
// containers to the grouping stage and memoizes sizes computed during the
// size pass so the write pass reads them back instead of recomputing.
//
// A Context is not safe for concurrent use. Confine each instance to one
// batch at a time; concurrent batches need their own instances. Callers that
// want to reuse Contexts across batches call Reset between batches and
// manage their own pool — there is no hidden package-level pool.
type Context struct {
	sizes map[memoKey]int

	lists   [][]any
	listIdx int

	scopeMaps   []map[pcommon.InstrumentationScope][]any
	scopeMapIdx int

	resourceMaps   []map[pcommon.Resource]map[pcommon.InstrumentationScope][]any
	resourceMapIdx int
}

// NewContext returns an empty Context ready for one batch.
func NewContext() *Context {
	return &Context{sizes: make(map[memoKey]int)}
}

// PutSize memoizes the serialized size of item, as computed by the encoder
// owning key during the size pass.
func (c *Context) PutSize(key *Key, item any, size int) {
	c.sizes[memoKey{key: key, item: item}] = size
}

// CachedSize returns the size memoized for item under key, if any. Items are
// matched by identity: item must be the same instance passed to PutSize.
func (c *Context) CachedSize(key *Key, item any) (int, bool) {
	size, ok := c.sizes[memoKey{key: key, item: item}]
	return size, ok
}

// List hands out a pooled item list for the current batch. Lists that end up
// stored in a scope map obtained from this Context are reclaimed by Reset;
// ones that grew past their pooled backing are swapped in automatically.
func (c *Context) List() []any {
	if c.listIdx < len(c.lists) {
		l := c.lists[c.listIdx][:0]
		c.listIdx++
		return l
	}
	c.listIdx++
	c.lists = append(c.lists, nil)
	return nil
}

// ScopeMap hands out a pooled scope-to-items map for the current batch.
func (c *Context) ScopeMap() map[pcommon.InstrumentationScope][]any {
	if c.scopeMapIdx < len(c.scopeMaps) {
		m := c.scopeMaps[c.scopeMapIdx]
		c.scopeMapIdx++
		return m
	}
	m := make(map[pcommon.InstrumentationScope][]any)
	c.scopeMaps = append(c.scopeMaps, m)
	c.scopeMapIdx++
	return m
}

// ResourceMap hands out the pooled top-level grouping map for the current
// batch.
func (c *Context) ResourceMap() map[pcommon.Resource]map[pcommon.InstrumentationScope][]any {
	if c.resourceMapIdx < len(c.resourceMaps) {
		m := c.resourceMaps[c.resourceMapIdx]
		c.resourceMapIdx++
		return m
	}
	m := make(map[pcommon.Resource]map[pcommon.InstrumentationScope][]any)
	c.resourceMaps = append(c.resourceMaps, m)
	c.resourceMapIdx++
	return m
}

// Reset clears the memoized sizes and reclaims every container handed out
// since the last Reset, making the Context ready for the next batch.
func (c *Context) Reset() {
	clear(c.sizes)

	// Pull the final item lists out of the scope maps before clearing them,
	// so lists that grew during the batch keep their larger backing arrays.
	c.lists = c.lists[:0]
	for i := 0; i < c.scopeMapIdx; i++ {
		m := c.scopeMaps[i]
		for scope, list := range m {
			c.lists = append(c.lists, list[:0])
			delete(m, scope)
		}
	}
	for i := 0; i < c.resourceMapIdx; i++ {
		clear(c.resourceMaps[i])
	}
	c.listIdx = 0
	c.scopeMapIdx = 0
	c.resourceMapIdx = 0
}
