// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package marshal // import "go.opentelemetry.io/otlpwire/marshal"

// Message-field helpers for the stateless contract. The Size* functions run
// during the size pass and memoize each element's size in the Context under
// the encoder's Key; the Serialize* functions read those sizes back during
// the write pass, so nested sizes are computed exactly once per batch.
//
// T is constrained to comparable because memoization keys off instance
// identity; in practice T is a pointer to a record type.

// SizeMessageStateless returns the size of an embedded message field and
// memoizes the message's own size for the write pass. Callers signal field
// absence by not calling this at all; a present-but-empty message still
// costs its tag and length prefix.
func SizeMessageStateless[T comparable](ctx *Context, field FieldInfo, value T, m StatelessMarshaler[T], key *Key) int {
	size := m.Size(ctx, value)
	ctx.PutSize(key, value, size)
	return SizeMessage(field, size)
}

// SerializeMessageStateless writes an embedded message field sized during
// the size pass.
func SerializeMessageStateless[T comparable](ctx *Context, out Serializer, field FieldInfo, value T, m StatelessMarshaler[T], key *Key) error {
	size, ok := ctx.CachedSize(key, value)
	if !ok {
		size = m.Size(ctx, value)
	}
	if err := out.writeStartMessage(field, size); err != nil {
		return err
	}
	if err := m.WriteTo(ctx, out, value); err != nil {
		return err
	}
	return out.writeEndMessage()
}

// SizeRepeatedMessageStateless returns the size of a repeated message field,
// memoizing each element's size. Message repetition is not packed: every
// element carries its own tag and length prefix. An empty slice contributes
// zero bytes.
func SizeRepeatedMessageStateless[T comparable](ctx *Context, field FieldInfo, values []T, m StatelessMarshaler[T], key *Key) int {
	if len(values) == 0 {
		return 0
	}
	size := 0
	for _, v := range values {
		elemSize := m.Size(ctx, v)
		ctx.PutSize(key, v, elemSize)
		size += SizeMessage(field, elemSize)
	}
	return size
}

// SerializeRepeatedMessageStateless writes a repeated message field sized
// during the size pass, preserving element order.
func SerializeRepeatedMessageStateless[T comparable](ctx *Context, out Serializer, field FieldInfo, values []T, m StatelessMarshaler[T], key *Key) error {
	if len(values) == 0 {
		return nil
	}
	if err := out.writeStartRepeated(field); err != nil {
		return err
	}
	for _, v := range values {
		size, ok := ctx.CachedSize(key, v)
		if !ok {
			size = m.Size(ctx, v)
		}
		if err := out.writeStartRepeatedElement(field, size); err != nil {
			return err
		}
		if err := m.WriteTo(ctx, out, v); err != nil {
			return err
		}
		if err := out.writeEndRepeatedElement(); err != nil {
			return err
		}
	}
	return out.writeEndRepeated()
}
