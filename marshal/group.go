// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package marshal // import "go.opentelemetry.io/otlpwire/marshal"

import (
	"go.opentelemetry.io/otlpwire/pdata/pcommon"
)

// GroupByResourceAndScope partitions a flat record collection into the
// resource -> scope -> items shape the wire format requires. Buckets are
// keyed by resource and scope instance identity (see pcommon); items within
// a scope keep the input encounter order.
func GroupByResourceAndScope[T any](
	data []T,
	getResource func(T) pcommon.Resource,
	getScope func(T) pcommon.InstrumentationScope,
	createItem func(T) any,
) map[pcommon.Resource]map[pcommon.InstrumentationScope][]any {
	result := make(map[pcommon.Resource]map[pcommon.InstrumentationScope][]any)
	for _, d := range data {
		resource := getResource(d)
		scopeMap, ok := result[resource]
		if !ok {
			scopeMap = make(map[pcommon.InstrumentationScope][]any)
			result[resource] = scopeMap
		}
		scope := getScope(d)
		scopeMap[scope] = append(scopeMap[scope], createItem(d))
	}
	return result
}

// GroupByResourceAndScopeFromContext is GroupByResourceAndScope with every
// map and item list drawn from the Context's pools instead of freshly
// allocated, for callers that group on every export. Group contents and
// ordering are identical to the allocating variant; the returned map is
// valid until the Context is reset.
func GroupByResourceAndScopeFromContext[T any](
	ctx *Context,
	data []T,
	getResource func(T) pcommon.Resource,
	getScope func(T) pcommon.InstrumentationScope,
	createItem func(T) any,
) map[pcommon.Resource]map[pcommon.InstrumentationScope][]any {
	result := ctx.ResourceMap()
	for _, d := range data {
		resource := getResource(d)
		scopeMap, ok := result[resource]
		if !ok {
			scopeMap = ctx.ScopeMap()
			result[resource] = scopeMap
		}
		scope := getScope(d)
		list, ok := scopeMap[scope]
		if !ok {
			list = ctx.List()
		}
		scopeMap[scope] = append(list, createItem(d))
	}
	return result
}
