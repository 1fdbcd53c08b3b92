// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package marshal // import "go.opentelemetry.io/otlpwire/marshal"

import (
	"unicode/utf8"
)

// Text handling for string fields. Two input shapes are supported, each with
// a size function and a write function that agree byte-for-byte on every
// input, malformed or not:
//
//   - Go strings, which are UTF-8 by convention but not by construction.
//     Every invalid byte is replaced by a single '?' at write time, so the
//     encoded size is exactly len(s).
//   - UTF-16 code unit sequences, as handed over by wide-string sources.
//     Surrogate pairs combine into one 4-byte code point; any unpaired
//     surrogate is replaced by a single '?'.
//
// Malformed input never fails; it degrades deterministically.

const (
	surrogateMin = 0xD800 // first high surrogate
	surrogateMid = 0xDC00 // first low surrogate
	surrogateMax = 0xE000 // first code point past the surrogate block

	replacementByte = '?'
)

// UTF16Size returns the number of UTF-8 bytes AppendUTF16 produces for units.
func UTF16Size(units []uint16) int {
	size := 0
	for i := 0; i < len(units); i++ {
		c := units[i]
		switch {
		case c < 0x80:
			size++
		case c < 0x800:
			size += 2
		case c < surrogateMin || c >= surrogateMax:
			size += 3
		default:
			if c < surrogateMid && i+1 < len(units) && isLowSurrogate(units[i+1]) {
				i++
				size += 4
				continue
			}
			// Unpaired surrogate, replaced by '?'.
			size++
		}
	}
	return size
}

// AppendUTF16 appends the UTF-8 encoding of units to dst and returns the
// extended buffer.
func AppendUTF16(dst []byte, units []uint16) []byte {
	for i := 0; i < len(units); i++ {
		c := units[i]
		switch {
		case c < 0x80:
			dst = append(dst, byte(c))
		case c < 0x800:
			dst = append(dst, byte(0xc0|c>>6), byte(0x80|c&0x3f))
		case c < surrogateMin || c >= surrogateMax:
			dst = append(dst, byte(0xe0|c>>12), byte(0x80|c>>6&0x3f), byte(0x80|c&0x3f))
		default:
			if c < surrogateMid && i+1 < len(units) && isLowSurrogate(units[i+1]) {
				cp := 0x10000 + (uint32(c-surrogateMin)<<10 | uint32(units[i+1]-surrogateMid))
				dst = append(dst,
					byte(0xf0|cp>>18),
					byte(0x80|cp>>12&0x3f),
					byte(0x80|cp>>6&0x3f),
					byte(0x80|cp&0x3f))
				i++
				continue
			}
			dst = append(dst, replacementByte)
		}
	}
	return dst
}

func isLowSurrogate(c uint16) bool {
	return surrogateMid <= c && c < surrogateMax
}

// appendSanitized appends s to dst with every invalid UTF-8 byte replaced by
// '?'. The result is always exactly len(s) bytes longer than dst, which is
// what SizeString assumes.
func appendSanitized(dst []byte, s string) []byte {
	// Fast path: valid strings are copied wholesale.
	if utf8.ValidString(s) {
		return append(dst, s...)
	}
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			dst = append(dst, replacementByte)
			i++
			continue
		}
		dst = append(dst, s[i:i+size]...)
		i += size
	}
	return dst
}

// sanitizeString returns s unchanged when it is valid UTF-8, otherwise a
// copy with invalid bytes replaced by '?'. Used by the JSON writer, which
// must not hand broken UTF-8 to the stream encoder.
func sanitizeString(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	return string(appendSanitized(make([]byte, 0, len(s)), s))
}
