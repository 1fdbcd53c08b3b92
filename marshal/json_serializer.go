// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package marshal // import "go.opentelemetry.io/otlpwire/marshal"

import (
	"encoding/base64"
	"fmt"
	"io"
	"math"
	"strconv"

	jsoniter "github.com/json-iterator/go"
)

// JSONSerializer renders the same field traversal as ProtoSerializer into
// JSON, for human inspection and textual transports. It follows the protobuf
// JSON mapping: 64-bit integers as decimal strings, bytes as base64,
// identifiers as hex, enums as their wire numbers.
//
// Field separators are handled by tracking whether the current object or
// array already has a member, so marshalers never emit commas themselves.
type JSONSerializer struct {
	stream *jsoniter.Stream

	// wmTracker has one entry per open JSON object, true once a field was
	// written into it. elemTracker is the same for open arrays.
	wmTracker   []bool
	elemTracker []bool
}

var _ Serializer = (*JSONSerializer)(nil)

// NewJSONSerializer returns a serializer writing to w. Output is buffered;
// Close flushes it and reports the first write error.
func NewJSONSerializer(w io.Writer) *JSONSerializer {
	return &JSONSerializer{
		stream:      jsoniter.ConfigFastest.BorrowStream(w),
		wmTracker:   make([]bool, 0, 8),
		elemTracker: make([]bool, 0, 8),
	}
}

// Close flushes buffered output and returns the stream to its pool. The
// serializer must not be used afterwards.
func (js *JSONSerializer) Close() error {
	err := js.stream.Flush()
	if err == nil {
		err = js.stream.Error
	}
	js.release()
	return err
}

func (js *JSONSerializer) release() {
	jsoniter.ConfigFastest.ReturnStream(js.stream)
	js.stream = nil
}

func (js *JSONSerializer) beginMessage() {
	js.stream.WriteObjectStart()
	js.wmTracker = append(js.wmTracker, false)
}

func (js *JSONSerializer) endMessage() {
	js.stream.WriteObjectEnd()
	js.wmTracker = js.wmTracker[:len(js.wmTracker)-1]
}

func (js *JSONSerializer) objectField(field FieldInfo) {
	if js.wmTracker[len(js.wmTracker)-1] {
		js.stream.WriteMore()
	}
	js.stream.WriteObjectField(field.jsonName)
	js.wmTracker[len(js.wmTracker)-1] = true
}

func (js *JSONSerializer) err() error {
	return js.stream.Error
}

func (js *JSONSerializer) writeBool(field FieldInfo, value bool) error {
	js.objectField(field)
	js.stream.WriteBool(value)
	return js.err()
}

func (js *JSONSerializer) writeEnum(field FieldInfo, value EnumValue) error {
	js.objectField(field)
	js.stream.WriteInt32(value.Number)
	return js.err()
}

func (js *JSONSerializer) writeInt32(field FieldInfo, value int32) error {
	js.objectField(field)
	js.stream.WriteInt32(value)
	return js.err()
}

func (js *JSONSerializer) writeSInt32(field FieldInfo, value int32) error {
	return js.writeInt32(field, value)
}

func (js *JSONSerializer) writeUInt32(field FieldInfo, value uint32) error {
	js.objectField(field)
	js.stream.WriteUint32(value)
	return js.err()
}

// 64-bit integers are written as decimal strings, per the protobuf JSON
// encoding rules for int64, uint64 and fixed64.
func (js *JSONSerializer) writeInt64(field FieldInfo, value int64) error {
	js.objectField(field)
	js.stream.WriteString(strconv.FormatInt(value, 10))
	return js.err()
}

func (js *JSONSerializer) writeUInt64(field FieldInfo, value uint64) error {
	js.objectField(field)
	js.stream.WriteString(strconv.FormatUint(value, 10))
	return js.err()
}

func (js *JSONSerializer) writeFixed64(field FieldInfo, value uint64) error {
	return js.writeUInt64(field, value)
}

func (js *JSONSerializer) writeSFixed64(field FieldInfo, value int64) error {
	return js.writeInt64(field, value)
}

func (js *JSONSerializer) writeFixed32(field FieldInfo, value uint32) error {
	return js.writeUInt32(field, value)
}

func (js *JSONSerializer) writeDouble(field FieldInfo, value float64) error {
	js.objectField(field)
	js.writeFloatValue(value)
	return js.err()
}

// writeFloatValue gracefully handles infinity and NaN, which JSON numbers
// cannot represent.
func (js *JSONSerializer) writeFloatValue(value float64) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		js.stream.WriteString(fmt.Sprintf("%f", value))
		return
	}
	js.stream.WriteFloat64(value)
}

func (js *JSONSerializer) writeString(field FieldInfo, value string) error {
	js.objectField(field)
	js.stream.WriteString(sanitizeString(value))
	return js.err()
}

func (js *JSONSerializer) writeUTF16String(field FieldInfo, units []uint16) error {
	js.objectField(field)
	js.stream.WriteString(string(AppendUTF16(nil, units)))
	return js.err()
}

func (js *JSONSerializer) writeBytes(field FieldInfo, value []byte) error {
	js.objectField(field)
	js.stream.WriteString(base64.StdEncoding.EncodeToString(value))
	return js.err()
}

// Identifiers are already hex strings in the data model and pass through.
func (js *JSONSerializer) writeTraceID(field FieldInfo, traceID string) error {
	js.objectField(field)
	js.stream.WriteString(traceID)
	return js.err()
}

func (js *JSONSerializer) writeSpanID(field FieldInfo, spanID string) error {
	js.objectField(field)
	js.stream.WriteString(spanID)
	return js.err()
}

func (js *JSONSerializer) writeRepeatedFixed64(field FieldInfo, values []uint64) error {
	return js.writeRepeatedUInt64(field, values)
}

func (js *JSONSerializer) writeRepeatedDouble(field FieldInfo, values []float64) error {
	js.objectField(field)
	js.stream.WriteArrayStart()
	for i, v := range values {
		if i > 0 {
			js.stream.WriteMore()
		}
		js.writeFloatValue(v)
	}
	js.stream.WriteArrayEnd()
	return js.err()
}

func (js *JSONSerializer) writeRepeatedUInt64(field FieldInfo, values []uint64) error {
	js.objectField(field)
	js.stream.WriteArrayStart()
	for i, v := range values {
		if i > 0 {
			js.stream.WriteMore()
		}
		js.stream.WriteString(strconv.FormatUint(v, 10))
	}
	js.stream.WriteArrayEnd()
	return js.err()
}

func (js *JSONSerializer) writeStartMessage(field FieldInfo, _ int) error {
	js.objectField(field)
	js.beginMessage()
	return js.err()
}

func (js *JSONSerializer) writeEndMessage() error {
	js.endMessage()
	return js.err()
}

func (js *JSONSerializer) writeStartRepeated(field FieldInfo) error {
	js.objectField(field)
	js.stream.WriteArrayStart()
	js.elemTracker = append(js.elemTracker, false)
	return js.err()
}

func (js *JSONSerializer) writeStartRepeatedElement(_ FieldInfo, _ int) error {
	if js.elemTracker[len(js.elemTracker)-1] {
		js.stream.WriteMore()
	}
	js.elemTracker[len(js.elemTracker)-1] = true
	js.beginMessage()
	return js.err()
}

func (js *JSONSerializer) writeEndRepeatedElement() error {
	js.endMessage()
	return js.err()
}

func (js *JSONSerializer) writeEndRepeated() error {
	js.stream.WriteArrayEnd()
	js.elemTracker = js.elemTracker[:len(js.elemTracker)-1]
	return js.err()
}
