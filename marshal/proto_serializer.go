// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package marshal // import "go.opentelemetry.io/otlpwire/marshal"

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"io"
	"math"
)

var (
	errInvalidTraceID = errors.New("trace ID must be a 32 character hex string")
	errInvalidSpanID  = errors.New("span ID must be a 16 character hex string")
)

// ProtoSerializer writes the binary wire format into a buffer pre-sized by
// the size pass. Because every nested size is known before the first byte is
// written, length prefixes are emitted inline and sub-messages are never
// buffered separately.
type ProtoSerializer struct {
	buf []byte
}

var _ Serializer = (*ProtoSerializer)(nil)

// NewProtoSerializer returns a serializer whose buffer has capacity for
// exactly size bytes, as previously computed by the matching size pass.
func NewProtoSerializer(size int) *ProtoSerializer {
	return &ProtoSerializer{buf: make([]byte, 0, size)}
}

// Bytes returns the serialized bytes written so far. The returned slice
// aliases the serializer's buffer.
func (ps *ProtoSerializer) Bytes() []byte {
	return ps.buf
}

// WriteTo copies the serialized bytes to w.
func (ps *ProtoSerializer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(ps.buf)
	return int64(n), err
}

func (ps *ProtoSerializer) appendVarint(v uint64) {
	for v >= 0x80 {
		ps.buf = append(ps.buf, byte(v)|0x80)
		v >>= 7
	}
	ps.buf = append(ps.buf, byte(v))
}

func (ps *ProtoSerializer) appendTag(field FieldInfo) {
	ps.appendVarint(uint64(field.tag))
}

func (ps *ProtoSerializer) writeBool(field FieldInfo, value bool) error {
	ps.appendTag(field)
	if value {
		ps.buf = append(ps.buf, 1)
	} else {
		ps.buf = append(ps.buf, 0)
	}
	return nil
}

func (ps *ProtoSerializer) writeEnum(field FieldInfo, value EnumValue) error {
	ps.appendTag(field)
	ps.appendVarint(uint64(int64(value.Number)))
	return nil
}

func (ps *ProtoSerializer) writeInt32(field FieldInfo, value int32) error {
	ps.appendTag(field)
	// Negative int32 sign-extends to ten bytes, same as int64.
	ps.appendVarint(uint64(int64(value)))
	return nil
}

func (ps *ProtoSerializer) writeSInt32(field FieldInfo, value int32) error {
	ps.appendTag(field)
	ps.appendVarint(uint64(ZigZag32(value)))
	return nil
}

func (ps *ProtoSerializer) writeUInt32(field FieldInfo, value uint32) error {
	ps.appendTag(field)
	ps.appendVarint(uint64(value))
	return nil
}

func (ps *ProtoSerializer) writeInt64(field FieldInfo, value int64) error {
	ps.appendTag(field)
	ps.appendVarint(uint64(value))
	return nil
}

func (ps *ProtoSerializer) writeUInt64(field FieldInfo, value uint64) error {
	ps.appendTag(field)
	ps.appendVarint(value)
	return nil
}

func (ps *ProtoSerializer) writeFixed64(field FieldInfo, value uint64) error {
	ps.appendTag(field)
	ps.buf = binary.LittleEndian.AppendUint64(ps.buf, value)
	return nil
}

func (ps *ProtoSerializer) writeSFixed64(field FieldInfo, value int64) error {
	return ps.writeFixed64(field, uint64(value))
}

func (ps *ProtoSerializer) writeFixed32(field FieldInfo, value uint32) error {
	ps.appendTag(field)
	ps.buf = binary.LittleEndian.AppendUint32(ps.buf, value)
	return nil
}

func (ps *ProtoSerializer) writeDouble(field FieldInfo, value float64) error {
	return ps.writeFixed64(field, math.Float64bits(value))
}

func (ps *ProtoSerializer) writeString(field FieldInfo, value string) error {
	ps.appendTag(field)
	ps.appendVarint(uint64(len(value)))
	ps.buf = appendSanitized(ps.buf, value)
	return nil
}

func (ps *ProtoSerializer) writeUTF16String(field FieldInfo, units []uint16) error {
	ps.appendTag(field)
	ps.appendVarint(uint64(UTF16Size(units)))
	ps.buf = AppendUTF16(ps.buf, units)
	return nil
}

func (ps *ProtoSerializer) writeBytes(field FieldInfo, value []byte) error {
	ps.appendTag(field)
	ps.appendVarint(uint64(len(value)))
	ps.buf = append(ps.buf, value...)
	return nil
}

func (ps *ProtoSerializer) writeTraceID(field FieldInfo, traceID string) error {
	var raw [TraceIDSize]byte
	if hex.DecodedLen(len(traceID)) != TraceIDSize {
		return errInvalidTraceID
	}
	if _, err := hex.Decode(raw[:], []byte(traceID)); err != nil {
		return errInvalidTraceID
	}
	ps.appendTag(field)
	ps.appendVarint(TraceIDSize)
	ps.buf = append(ps.buf, raw[:]...)
	return nil
}

func (ps *ProtoSerializer) writeSpanID(field FieldInfo, spanID string) error {
	var raw [SpanIDSize]byte
	if hex.DecodedLen(len(spanID)) != SpanIDSize {
		return errInvalidSpanID
	}
	if _, err := hex.Decode(raw[:], []byte(spanID)); err != nil {
		return errInvalidSpanID
	}
	ps.appendTag(field)
	ps.appendVarint(SpanIDSize)
	ps.buf = append(ps.buf, raw[:]...)
	return nil
}

func (ps *ProtoSerializer) writeRepeatedFixed64(field FieldInfo, values []uint64) error {
	ps.appendTag(field)
	ps.appendVarint(uint64(Fixed64Size * len(values)))
	for _, v := range values {
		ps.buf = binary.LittleEndian.AppendUint64(ps.buf, v)
	}
	return nil
}

func (ps *ProtoSerializer) writeRepeatedDouble(field FieldInfo, values []float64) error {
	ps.appendTag(field)
	ps.appendVarint(uint64(Fixed64Size * len(values)))
	for _, v := range values {
		ps.buf = binary.LittleEndian.AppendUint64(ps.buf, math.Float64bits(v))
	}
	return nil
}

func (ps *ProtoSerializer) writeRepeatedUInt64(field FieldInfo, values []uint64) error {
	payloadSize := 0
	for _, v := range values {
		payloadSize += Varint64Size(v)
	}
	ps.appendTag(field)
	ps.appendVarint(uint64(payloadSize))
	for _, v := range values {
		ps.appendVarint(v)
	}
	return nil
}

func (ps *ProtoSerializer) writeStartMessage(field FieldInfo, size int) error {
	ps.appendTag(field)
	ps.appendVarint(uint64(size))
	return nil
}

func (ps *ProtoSerializer) writeEndMessage() error { return nil }

func (ps *ProtoSerializer) writeStartRepeated(FieldInfo) error { return nil }

func (ps *ProtoSerializer) writeStartRepeatedElement(field FieldInfo, size int) error {
	return ps.writeStartMessage(field, size)
}

func (ps *ProtoSerializer) writeEndRepeatedElement() error { return nil }

func (ps *ProtoSerializer) writeEndRepeated() error { return nil }
