// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package marshal // import "go.opentelemetry.io/otlpwire/marshal"

// Serializer is the output side of the encoder contract, implemented by
// ProtoSerializer (binary wire format) and JSONSerializer (structured debug
// output). The interface is sealed: the write methods are unexported so that
// the zero-omission policy, applied once in the Serialize* functions below,
// cannot be bypassed by an out-of-package implementation.
type Serializer interface {
	writeBool(field FieldInfo, value bool) error
	writeEnum(field FieldInfo, value EnumValue) error
	writeInt32(field FieldInfo, value int32) error
	writeSInt32(field FieldInfo, value int32) error
	writeUInt32(field FieldInfo, value uint32) error
	writeInt64(field FieldInfo, value int64) error
	writeUInt64(field FieldInfo, value uint64) error
	writeFixed64(field FieldInfo, value uint64) error
	writeSFixed64(field FieldInfo, value int64) error
	writeFixed32(field FieldInfo, value uint32) error
	writeDouble(field FieldInfo, value float64) error
	writeString(field FieldInfo, value string) error
	writeUTF16String(field FieldInfo, units []uint16) error
	writeBytes(field FieldInfo, value []byte) error
	writeTraceID(field FieldInfo, traceID string) error
	writeSpanID(field FieldInfo, spanID string) error

	writeRepeatedFixed64(field FieldInfo, values []uint64) error
	writeRepeatedDouble(field FieldInfo, values []float64) error
	writeRepeatedUInt64(field FieldInfo, values []uint64) error

	writeStartMessage(field FieldInfo, size int) error
	writeEndMessage() error
	writeStartRepeated(field FieldInfo) error
	writeStartRepeatedElement(field FieldInfo, size int) error
	writeEndRepeatedElement() error
	writeEndRepeated() error
}

// SerializeBool writes a bool field, omitting it when false.
func SerializeBool(out Serializer, field FieldInfo, value bool) error {
	if !value {
		return nil
	}
	return out.writeBool(field, value)
}

// SerializeEnum writes an enum field, omitting it when the wire number is 0.
func SerializeEnum(out Serializer, field FieldInfo, value EnumValue) error {
	if value.Number == 0 {
		return nil
	}
	return out.writeEnum(field, value)
}

// SerializeInt32 writes an int32 field, omitting it when zero.
func SerializeInt32(out Serializer, field FieldInfo, value int32) error {
	if value == 0 {
		return nil
	}
	return out.writeInt32(field, value)
}

// SerializeSInt32 writes a sint32 field, omitting it when zero.
func SerializeSInt32(out Serializer, field FieldInfo, value int32) error {
	if value == 0 {
		return nil
	}
	return out.writeSInt32(field, value)
}

// SerializeUInt32 writes a uint32 field, omitting it when zero.
func SerializeUInt32(out Serializer, field FieldInfo, value uint32) error {
	if value == 0 {
		return nil
	}
	return out.writeUInt32(field, value)
}

// SerializeInt64 writes an int64 field, omitting it when zero.
func SerializeInt64(out Serializer, field FieldInfo, value int64) error {
	if value == 0 {
		return nil
	}
	return out.writeInt64(field, value)
}

// SerializeUInt64 writes a uint64 field, omitting it when zero.
func SerializeUInt64(out Serializer, field FieldInfo, value uint64) error {
	if value == 0 {
		return nil
	}
	return out.writeUInt64(field, value)
}

// SerializeFixed64 writes a fixed64 field, omitting it when zero.
func SerializeFixed64(out Serializer, field FieldInfo, value uint64) error {
	if value == 0 {
		return nil
	}
	return out.writeFixed64(field, value)
}

// SerializeFixed64Optional writes a fixed64 field even when zero, for fields
// where zero is a transmit-worthy value rather than the default.
func SerializeFixed64Optional(out Serializer, field FieldInfo, value uint64) error {
	return out.writeFixed64(field, value)
}

// SerializeSFixed64Optional writes an sfixed64 field even when zero.
func SerializeSFixed64Optional(out Serializer, field FieldInfo, value int64) error {
	return out.writeSFixed64(field, value)
}

// SerializeFixed32 writes a fixed32 field, omitting it when zero.
func SerializeFixed32(out Serializer, field FieldInfo, value uint32) error {
	if value == 0 {
		return nil
	}
	return out.writeFixed32(field, value)
}

// SerializeByteAsFixed32 writes a single byte widened to a fixed32 field.
func SerializeByteAsFixed32(out Serializer, field FieldInfo, value byte) error {
	return SerializeFixed32(out, field, uint32(value))
}

// SerializeDouble writes a double field, omitting it when zero.
func SerializeDouble(out Serializer, field FieldInfo, value float64) error {
	if value == 0 {
		return nil
	}
	return out.writeDouble(field, value)
}

// SerializeDoubleOptional writes a double field even when zero.
func SerializeDoubleOptional(out Serializer, field FieldInfo, value float64) error {
	return out.writeDouble(field, value)
}

// SerializeString writes a string field, omitting it when empty. Invalid
// UTF-8 bytes are replaced with '?', matching SizeString.
func SerializeString(out Serializer, field FieldInfo, value string) error {
	if value == "" {
		return nil
	}
	return out.writeString(field, value)
}

// SerializeUTF16String writes a string field supplied as UTF-16 code units,
// omitting it when empty.
func SerializeUTF16String(out Serializer, field FieldInfo, units []uint16) error {
	if len(units) == 0 {
		return nil
	}
	return out.writeUTF16String(field, units)
}

// SerializeBytes writes a bytes field, omitting it when empty.
func SerializeBytes(out Serializer, field FieldInfo, value []byte) error {
	if len(value) == 0 {
		return nil
	}
	return out.writeBytes(field, value)
}

// SerializeTraceID writes a trace_id field from its hex representation,
// omitting it when empty.
func SerializeTraceID(out Serializer, field FieldInfo, traceID string) error {
	if traceID == "" {
		return nil
	}
	return out.writeTraceID(field, traceID)
}

// SerializeSpanID writes a span_id field from its hex representation,
// omitting it when empty.
func SerializeSpanID(out Serializer, field FieldInfo, spanID string) error {
	if spanID == "" {
		return nil
	}
	return out.writeSpanID(field, spanID)
}

// SerializeRepeatedFixed64 writes a packed repeated fixed64 field, omitting
// it when empty.
func SerializeRepeatedFixed64(out Serializer, field FieldInfo, values []uint64) error {
	if len(values) == 0 {
		return nil
	}
	return out.writeRepeatedFixed64(field, values)
}

// SerializeRepeatedDouble writes a packed repeated double field, omitting it
// when empty.
func SerializeRepeatedDouble(out Serializer, field FieldInfo, values []float64) error {
	if len(values) == 0 {
		return nil
	}
	return out.writeRepeatedDouble(field, values)
}

// SerializeRepeatedUInt64 writes a packed repeated uint64 field, omitting it
// when empty.
func SerializeRepeatedUInt64(out Serializer, field FieldInfo, values []uint64) error {
	if len(values) == 0 {
		return nil
	}
	return out.writeRepeatedUInt64(field, values)
}

// SerializeMessage writes an embedded message field from an eager Marshaler.
// Presence is the caller's decision: calling this always emits the tag and
// length prefix, even for an empty message.
func SerializeMessage(out Serializer, field FieldInfo, message Marshaler) error {
	if err := out.writeStartMessage(field, message.BinarySerializedSize()); err != nil {
		return err
	}
	if err := message.WriteTo(out); err != nil {
		return err
	}
	return out.writeEndMessage()
}

// SerializeRepeatedMessage writes a repeated message field from eager
// Marshalers, one tag+length+payload triple per element.
func SerializeRepeatedMessage(out Serializer, field FieldInfo, messages []Marshaler) error {
	if len(messages) == 0 {
		return nil
	}
	if err := out.writeStartRepeated(field); err != nil {
		return err
	}
	for _, m := range messages {
		if err := out.writeStartRepeatedElement(field, m.BinarySerializedSize()); err != nil {
			return err
		}
		if err := m.WriteTo(out); err != nil {
			return err
		}
		if err := out.writeEndRepeatedElement(); err != nil {
			return err
		}
	}
	return out.writeEndRepeated()
}
