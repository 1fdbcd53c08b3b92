// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package marshal

import (
	"testing"
	"unicode/utf16"

	"github.com/stretchr/testify/assert"
)

func encodeUTF16(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

func TestUTF16Encoding(t *testing.T) {
	tests := []struct {
		name  string
		units []uint16
		size  int
		bytes []byte
	}{
		{name: "empty", units: nil, size: 0, bytes: nil},
		{name: "ascii", units: encodeUTF16("a"), size: 1, bytes: []byte{0x61}},
		{name: "two byte", units: encodeUTF16("©"), size: 2, bytes: []byte{0xc2, 0xa9}},
		{name: "three byte", units: encodeUTF16("∆"), size: 3, bytes: []byte{0xe2, 0x88, 0x86}},
		{name: "surrogate pair", units: encodeUTF16("😀"), size: 4, bytes: []byte{0xf0, 0x9f, 0x98, 0x80}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.size, UTF16Size(tt.units))
			got := AppendUTF16(nil, tt.units)
			assert.Equal(t, tt.size, len(got))
			assert.Equal(t, tt.bytes, got)
		})
	}
}

func TestUTF16UnpairedSurrogates(t *testing.T) {
	// Lone high surrogate, then a valid pair, then a lone low surrogate.
	// The unpaired halves each become one '?'.
	units := []uint16{0xD83D}
	units = append(units, encodeUTF16("😀")...)
	units = append(units, 0xDE00)

	assert.Equal(t, 6, UTF16Size(units))
	assert.Equal(t, "?😀?", string(AppendUTF16(nil, units)))

	// A high surrogate at the very end of input is also unpaired.
	assert.Equal(t, 1, UTF16Size([]uint16{0xD800}))
	assert.Equal(t, "?", string(AppendUTF16(nil, []uint16{0xD800})))

	// Two high surrogates in a row: only a low surrogate completes a pair.
	assert.Equal(t, 2, UTF16Size([]uint16{0xD800, 0xD800}))
	assert.Equal(t, "??", string(AppendUTF16(nil, []uint16{0xD800, 0xD800})))
}

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "", sanitizeString(""))
	assert.Equal(t, "plain", sanitizeString("plain"))
	assert.Equal(t, "héllo😀", sanitizeString("héllo😀"))

	// Each invalid byte becomes exactly one '?', keeping the length stable.
	broken := "ab\xffcd"
	assert.Equal(t, "ab?cd", sanitizeString(broken))
	assert.Equal(t, len(broken), len(sanitizeString(broken)))

	// A truncated multi-byte sequence degrades byte-for-byte.
	truncated := "\xe2\x88"
	assert.Equal(t, "??", sanitizeString(truncated))

	got := appendSanitized(nil, "x\x80y")
	assert.Equal(t, []byte("x?y"), got)
}
