// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package marshal // import "go.opentelemetry.io/otlpwire/marshal"

// Field-size primitives, one per wire-format field type. Each function
// returns the exact number of bytes the matching write operation emits,
// including the tag. A scalar field holding its zero value contributes
// zero bytes: the field is omitted entirely, tag included. The *Optional
// variants bypass omission for fields that must distinguish unset from zero.

const (
	traceIDValueSize = 1 + TraceIDSize // length prefix + raw bytes
	spanIDValueSize  = 1 + SpanIDSize
)

// lengthDelimitedSize returns the size of a length-delimited payload
// including its length prefix, without tag.
func lengthDelimitedSize(payloadLen int) int {
	return Varint32Size(uint32(payloadLen)) + payloadLen
}

// SizeBool returns the size of a bool field.
func SizeBool(field FieldInfo, value bool) int {
	if !value {
		return 0
	}
	return field.tagSize + 1
}

// SizeEnum returns the size of an enum field. OTLP always defines the first
// enum member with number 0, so 0 is the omitted default.
func SizeEnum(field FieldInfo, value EnumValue) int {
	if value.Number == 0 {
		return 0
	}
	return field.tagSize + varintInt32Size(value.Number)
}

// SizeInt32 returns the size of an int32 field.
func SizeInt32(field FieldInfo, value int32) int {
	if value == 0 {
		return 0
	}
	return field.tagSize + varintInt32Size(value)
}

// SizeSInt32 returns the size of a sint32 (zig-zag) field.
func SizeSInt32(field FieldInfo, value int32) int {
	if value == 0 {
		return 0
	}
	return field.tagSize + Varint32Size(ZigZag32(value))
}

// SizeUInt32 returns the size of a uint32 field.
func SizeUInt32(field FieldInfo, value uint32) int {
	if value == 0 {
		return 0
	}
	return field.tagSize + Varint32Size(value)
}

// SizeInt64 returns the size of an int64 field.
func SizeInt64(field FieldInfo, value int64) int {
	if value == 0 {
		return 0
	}
	return field.tagSize + Varint64Size(uint64(value))
}

// SizeUInt64 returns the size of a uint64 field.
func SizeUInt64(field FieldInfo, value uint64) int {
	if value == 0 {
		return 0
	}
	return field.tagSize + Varint64Size(value)
}

// SizeFixed64 returns the size of a fixed64 field.
func SizeFixed64(field FieldInfo, value uint64) int {
	if value == 0 {
		return 0
	}
	return SizeFixed64Optional(field, value)
}

// SizeFixed64Optional returns the size of a fixed64 field that is emitted
// even when zero.
func SizeFixed64Optional(field FieldInfo, _ uint64) int {
	return field.tagSize + Fixed64Size
}

// SizeSFixed64Optional returns the size of an sfixed64 field that is emitted
// even when zero.
func SizeSFixed64Optional(field FieldInfo, _ int64) int {
	return field.tagSize + Fixed64Size
}

// SizeFixed32 returns the size of a fixed32 field.
func SizeFixed32(field FieldInfo, value uint32) int {
	if value == 0 {
		return 0
	}
	return field.tagSize + Fixed32Size
}

// SizeByteAsFixed32 returns the size of a single byte widened to a fixed32
// field.
func SizeByteAsFixed32(field FieldInfo, value byte) int {
	return SizeFixed32(field, uint32(value))
}

// SizeDouble returns the size of a double field.
func SizeDouble(field FieldInfo, value float64) int {
	if value == 0 {
		return 0
	}
	return SizeDoubleOptional(field, value)
}

// SizeDoubleOptional returns the size of a double field that is emitted even
// when zero.
func SizeDoubleOptional(field FieldInfo, _ float64) int {
	return field.tagSize + Fixed64Size
}

// SizeBytes returns the size of a bytes field.
func SizeBytes(field FieldInfo, value []byte) int {
	return SizeBytesLen(field, len(value))
}

// SizeBytesLen returns the size of a bytes field from its payload length
// alone.
func SizeBytesLen(field FieldInfo, length int) int {
	if length == 0 {
		return 0
	}
	return field.tagSize + lengthDelimitedSize(length)
}

// SizeString returns the size of a string field. Invalid UTF-8 bytes are
// written as '?' one-for-one, so the size is the string's byte length
// regardless of validity.
func SizeString(field FieldInfo, value string) int {
	return SizeBytesLen(field, len(value))
}

// SizeUTF16String returns the size of a string field supplied as UTF-16
// code units.
func SizeUTF16String(field FieldInfo, units []uint16) int {
	return SizeBytesLen(field, UTF16Size(units))
}

// SizeTraceID returns the size of a trace_id field. The size depends only on
// presence: an empty hex string means the field is absent.
func SizeTraceID(field FieldInfo, traceID string) int {
	if traceID == "" {
		return 0
	}
	return field.tagSize + traceIDValueSize
}

// SizeSpanID returns the size of a span_id field.
func SizeSpanID(field FieldInfo, spanID string) int {
	if spanID == "" {
		return 0
	}
	return field.tagSize + spanIDValueSize
}

// SizeMessage returns the size of an embedded message field given the
// message's own serialized size. Unlike scalars, a present-but-empty message
// still costs its tag and zero-length prefix; callers signal absence by not
// calling this at all.
func SizeMessage(field FieldInfo, messageSize int) int {
	return field.tagSize + lengthDelimitedSize(messageSize)
}

// SizeRepeatedFixed64 returns the size of a packed repeated fixed64 or
// sfixed64 field holding numValues elements.
func SizeRepeatedFixed64(field FieldInfo, numValues int) int {
	if numValues == 0 {
		return 0
	}
	return field.tagSize + lengthDelimitedSize(Fixed64Size*numValues)
}

// SizeRepeatedDouble returns the size of a packed repeated double field.
func SizeRepeatedDouble(field FieldInfo, values []float64) int {
	// Same wire shape as fixed64.
	return SizeRepeatedFixed64(field, len(values))
}

// SizeRepeatedUInt64 returns the size of a packed repeated uint64 field:
// one tag, one payload-length varint, then each element's value-only varint.
func SizeRepeatedUInt64(field FieldInfo, values []uint64) int {
	if len(values) == 0 {
		return 0
	}
	payloadSize := 0
	for _, v := range values {
		payloadSize += Varint64Size(v)
	}
	return field.tagSize + lengthDelimitedSize(payloadSize)
}

// SizeRepeatedMessage returns the size of a repeated message field. Message
// repetition is not packed: each element carries its own tag and length
// prefix.
func SizeRepeatedMessage(field FieldInfo, messages []Marshaler) int {
	size := 0
	for _, m := range messages {
		size += SizeMessage(field, m.BinarySerializedSize())
	}
	return size
}

// varintInt32Size is the size of an int32 encoded as a plain (non zig-zag)
// varint. Negative values sign-extend to ten bytes on the wire.
func varintInt32Size(v int32) int {
	return Varint64Size(uint64(int64(v)))
}
