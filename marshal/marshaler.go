// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package marshal // import "go.opentelemetry.io/otlpwire/marshal"

import (
	"io"
)

// Marshaler is the eager encoder contract: the serialized size is computed
// (and typically cached) when the marshaler is constructed, before any bytes
// are written.
type Marshaler interface {
	// BinarySerializedSize returns the exact number of bytes WriteTo emits.
	BinarySerializedSize() int
	// WriteTo writes the message fields, without surrounding tag or length
	// prefix, to out.
	WriteTo(out Serializer) error
}

// StatelessMarshaler is the two-pass encoder contract for one record shape.
// Implementations hold no mutable state: all working storage lives in the
// Context, so one instance (typically an empty struct) serves any number of
// concurrent batches as long as every batch brings its own Context.
//
// For a given record, Size must run before WriteTo with the same Context, so
// that sizes memoized during the size pass are available to the write pass.
// T must be a pointer-shaped type: memoization keys off instance identity.
type StatelessMarshaler[T any] interface {
	// Size returns the exact number of bytes WriteTo emits for value.
	Size(ctx *Context, value T) int
	// WriteTo writes value's fields to out in the same order Size visited
	// them.
	WriteTo(ctx *Context, out Serializer, value T) error
}

// Marshal runs the two passes of m over value: it computes the exact
// serialized size, allocates one buffer of that size, and writes into it.
func Marshal[T comparable](ctx *Context, m StatelessMarshaler[T], value T) ([]byte, error) {
	ps := NewProtoSerializer(m.Size(ctx, value))
	if err := m.WriteTo(ctx, ps, value); err != nil {
		return nil, err
	}
	return ps.Bytes(), nil
}

// MarshalBinary encodes an eager Marshaler into a buffer of exactly its
// precomputed size.
func MarshalBinary(m Marshaler) ([]byte, error) {
	ps := NewProtoSerializer(m.BinarySerializedSize())
	if err := m.WriteTo(ps); err != nil {
		return nil, err
	}
	return ps.Bytes(), nil
}

// MarshalJSON writes value as one JSON object to w, using the same field
// traversal as the binary encoding. It is the debug-output counterpart of
// Marshal; the choice between the two writers is made here, at the call
// site, not probed at runtime.
func MarshalJSON[T comparable](ctx *Context, w io.Writer, m StatelessMarshaler[T], value T) error {
	js := NewJSONSerializer(w)
	js.beginMessage()
	if err := m.WriteTo(ctx, js, value); err != nil {
		js.release()
		return err
	}
	js.endMessage()
	return js.Close()
}
