// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

// Package marshal implements a low-level, reflection-free protobuf wire
// encoder for telemetry payloads. Encoding is performed in two passes over
// the same data: a size pass that computes the exact number of serialized
// bytes, and a write pass that emits exactly that many bytes. Because the
// total size is known up front, nested length prefixes are written without
// buffering sub-messages, and the output buffer is allocated exactly once.
package marshal // import "go.opentelemetry.io/otlpwire/marshal"

import (
	math_bits "math/bits"
)

// WireType identifies the protobuf wire encoding of a field.
type WireType uint32

const (
	WireTypeVarint          WireType = 0
	WireTypeFixed64         WireType = 1
	WireTypeLengthDelimited WireType = 2
	WireTypeFixed32         WireType = 5
)

const (
	// Fixed32Size is the encoded size of a fixed32 value, without tag.
	Fixed32Size = 4
	// Fixed64Size is the encoded size of a fixed64 value, without tag.
	Fixed64Size = 8

	// TraceIDSize and SpanIDSize are the raw binary sizes of the two
	// identifier fields. The data model carries them as hex strings twice
	// this length; they are decoded at write time.
	TraceIDSize = 16
	SpanIDSize  = 8
)

// FieldInfo describes a single protobuf field: its number, wire type and
// JSON name. The tag and its varint size are computed once at construction
// and reused on every size and write call.
type FieldInfo struct {
	number   uint32
	wireType WireType
	tag      uint32
	tagSize  int
	jsonName string
}

// NewFieldInfo returns the descriptor for the given field number and wire type.
func NewFieldInfo(number uint32, wireType WireType, jsonName string) FieldInfo {
	tag := number<<3 | uint32(wireType)
	return FieldInfo{
		number:   number,
		wireType: wireType,
		tag:      tag,
		tagSize:  Varint32Size(tag),
		jsonName: jsonName,
	}
}

// VarintField returns the descriptor of a varint-encoded scalar field
// (int32, int64, uint32, uint64, sint32, sint64, bool, enum).
func VarintField(number uint32, jsonName string) FieldInfo {
	return NewFieldInfo(number, WireTypeVarint, jsonName)
}

// Fixed64Field returns the descriptor of a fixed64, sfixed64 or double field.
func Fixed64Field(number uint32, jsonName string) FieldInfo {
	return NewFieldInfo(number, WireTypeFixed64, jsonName)
}

// Fixed32Field returns the descriptor of a fixed32, sfixed32 or float field.
func Fixed32Field(number uint32, jsonName string) FieldInfo {
	return NewFieldInfo(number, WireTypeFixed32, jsonName)
}

// LengthDelimitedField returns the descriptor of a length-delimited field:
// strings, bytes, nested messages and packed repeated scalars.
func LengthDelimitedField(number uint32, jsonName string) FieldInfo {
	return NewFieldInfo(number, WireTypeLengthDelimited, jsonName)
}

// Number returns the protobuf field number.
func (f FieldInfo) Number() uint32 { return f.number }

// WireType returns the wire type the field is encoded with.
func (f FieldInfo) WireType() WireType { return f.wireType }

// Tag returns the precomputed tag varint value, (number << 3) | wireType.
func (f FieldInfo) Tag() uint32 { return f.tag }

// TagSize returns the encoded size of the tag varint in bytes.
func (f FieldInfo) TagSize() int { return f.tagSize }

// JSONName returns the lowerCamelCase name used by the JSON serializer.
func (f FieldInfo) JSONName() string { return f.jsonName }

// EnumValue is a domain enum translated to its wire representation. The
// Number is the value defined by the proto enum, which is not assumed to
// match the Go constant it was mapped from.
type EnumValue struct {
	Number int32
	Name   string
}

// Varint64Size returns the number of bytes needed to varint-encode v.
func Varint64Size(v uint64) int {
	return (math_bits.Len64(v|1) + 6) / 7
}

// Varint32Size returns the number of bytes needed to varint-encode v.
func Varint32Size(v uint32) int {
	return (math_bits.Len32(v|1) + 6) / 7
}

// ZigZag32 interleaves negative and positive values so that small magnitudes
// produce small varints (sint32 encoding).
func ZigZag32(v int32) uint32 {
	return uint32(v<<1) ^ uint32(v>>31)
}

// ZigZag64 is the sint64 counterpart of ZigZag32.
func ZigZag64(v int64) uint64 {
	return uint64(v<<1) ^ uint64(v>>63)
}
