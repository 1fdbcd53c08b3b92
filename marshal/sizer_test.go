// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package marshal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testField = VarintField(1, "value")

func TestSizeZeroOmission(t *testing.T) {
	// A scalar at its zero value contributes zero bytes, tag included.
	assert.Equal(t, 0, SizeBool(testField, false))
	assert.Equal(t, 0, SizeEnum(testField, EnumValue{Number: 0, Name: "UNSPECIFIED"}))
	assert.Equal(t, 0, SizeInt32(testField, 0))
	assert.Equal(t, 0, SizeSInt32(testField, 0))
	assert.Equal(t, 0, SizeUInt32(testField, 0))
	assert.Equal(t, 0, SizeInt64(testField, 0))
	assert.Equal(t, 0, SizeUInt64(testField, 0))
	assert.Equal(t, 0, SizeFixed64(Fixed64Field(1, "value"), 0))
	assert.Equal(t, 0, SizeFixed32(Fixed32Field(1, "value"), 0))
	assert.Equal(t, 0, SizeDouble(Fixed64Field(1, "value"), 0))
	assert.Equal(t, 0, SizeBytes(LengthDelimitedField(1, "value"), nil))
	assert.Equal(t, 0, SizeString(LengthDelimitedField(1, "value"), ""))
	assert.Equal(t, 0, SizeTraceID(LengthDelimitedField(1, "value"), ""))
	assert.Equal(t, 0, SizeSpanID(LengthDelimitedField(1, "value"), ""))
}

func TestSizeBool(t *testing.T) {
	assert.Equal(t, 0, SizeBool(testField, false))
	assert.Equal(t, testField.TagSize()+1, SizeBool(testField, true))
}

func TestSizeOptionalBypassesOmission(t *testing.T) {
	f64 := Fixed64Field(5, "sum")
	assert.Equal(t, f64.TagSize()+8, SizeDoubleOptional(f64, 0))
	assert.Equal(t, f64.TagSize()+8, SizeFixed64Optional(f64, 0))
	assert.Equal(t, f64.TagSize()+8, SizeSFixed64Optional(f64, 0))
}

func TestSizeVarintFields(t *testing.T) {
	assert.Equal(t, 1+1, SizeInt32(testField, 1))
	// Negative int32 sign-extends to the full ten varint bytes.
	assert.Equal(t, 1+10, SizeInt32(testField, -1))
	// The zig-zag variant keeps small negatives small.
	assert.Equal(t, 1+1, SizeSInt32(testField, -1))
	assert.Equal(t, 1+2, SizeSInt32(testField, -128))
	assert.Equal(t, 1+10, SizeInt64(testField, -1))
	assert.Equal(t, 1+2, SizeUInt32(testField, 300))
	assert.Equal(t, 1+10, SizeUInt64(testField, 1<<63))
	assert.Equal(t, 1+1, SizeEnum(testField, EnumValue{Number: 2, Name: "CUMULATIVE"}))
}

func TestSizeFixedWidthFields(t *testing.T) {
	f64 := Fixed64Field(2, "t")
	f32 := Fixed32Field(3, "f")
	// Size does not depend on the value, only on presence.
	assert.Equal(t, f64.TagSize()+8, SizeFixed64(f64, 1))
	assert.Equal(t, f64.TagSize()+8, SizeFixed64(f64, 1<<63))
	assert.Equal(t, f32.TagSize()+4, SizeFixed32(f32, 7))
	assert.Equal(t, f64.TagSize()+8, SizeDouble(f64, 3.5))
	assert.Equal(t, 0, SizeByteAsFixed32(f32, 0))
	assert.Equal(t, f32.TagSize()+4, SizeByteAsFixed32(f32, 0xff))
}

func TestSizeLengthDelimitedFields(t *testing.T) {
	f := LengthDelimitedField(1, "value")
	assert.Equal(t, 1+1+5, SizeBytes(f, []byte("hello")))
	assert.Equal(t, 1+1+5, SizeString(f, "hello"))
	// An invalid byte still costs exactly one output byte.
	assert.Equal(t, 1+1+3, SizeString(f, "a\xffb"))
	// Payloads of 128 bytes and up need a two-byte length prefix.
	assert.Equal(t, 1+2+128, SizeBytesLen(f, 128))
}

func TestSizeIdentifiers(t *testing.T) {
	f := LengthDelimitedField(4, "spanId")
	assert.Equal(t, f.TagSize()+1+8, SizeSpanID(f, "0102030405060708"))
	f = LengthDelimitedField(5, "traceId")
	assert.Equal(t, f.TagSize()+1+16, SizeTraceID(f, "0102030405060708090a0b0c0d0e0f10"))
}

func TestSizeRepeatedFixed64(t *testing.T) {
	f := LengthDelimitedField(2, "bucketCounts")
	assert.Equal(t, 0, SizeRepeatedFixed64(f, 0))
	assert.Equal(t, f.TagSize()+1+8*3, SizeRepeatedFixed64(f, 3))
	assert.Equal(t, 0, SizeRepeatedDouble(f, nil))
	assert.Equal(t, f.TagSize()+1+8*2, SizeRepeatedDouble(f, []float64{1.5, 2.5}))
}

func TestSizeRepeatedUInt64Additivity(t *testing.T) {
	f := LengthDelimitedField(2, "bucketCounts")
	assert.Equal(t, 0, SizeRepeatedUInt64(f, nil))

	values := []uint64{0, 1, 127, 128, 1 << 40}
	payload := 0
	for _, v := range values {
		payload += Varint64Size(v)
	}
	// One tag, one payload-length varint, then value-only encodings.
	assert.Equal(t, f.TagSize()+Varint32Size(uint32(payload))+payload, SizeRepeatedUInt64(f, values))
}

type fixedSizeMarshaler struct {
	size int
}

func (m fixedSizeMarshaler) BinarySerializedSize() int { return m.size }

func (m fixedSizeMarshaler) WriteTo(out Serializer) error { return nil }

func TestSizeRepeatedMessageAdditivity(t *testing.T) {
	f := LengthDelimitedField(1, "dataPoints")
	assert.Equal(t, 0, SizeRepeatedMessage(f, nil))

	messages := []Marshaler{
		fixedSizeMarshaler{size: 0},
		fixedSizeMarshaler{size: 5},
		fixedSizeMarshaler{size: 200},
	}
	want := 0
	for _, m := range messages {
		size := m.BinarySerializedSize()
		want += f.TagSize() + Varint32Size(uint32(size)) + size
	}
	assert.Equal(t, want, SizeRepeatedMessage(f, messages))

	// A present-but-empty message still costs tag plus zero-length prefix.
	assert.Equal(t, f.TagSize()+1, SizeMessage(f, 0))
}
