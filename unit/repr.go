// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package unit

import (
	"encoding/binary"

	"github.com/born-ml/numeric/internal/unit"
)

// NativeOrder is the byte order of the running machine.
var NativeOrder = unit.NativeOrder

// BitSize returns the width of T in bits.
func BitSize[T Number]() int { return unit.BitSize[T]() }

// ByteSize returns the width of T in bytes.
func ByteSize[T Number]() int { return unit.ByteSize[T]() }

// ToBits reinterprets x as an unsigned integer in the low BitSize bits.
func ToBits[T Number](x T) uint64 { return unit.ToBits(x) }

// FromBits reinterprets the low BitSize bits of b as a T.
func FromBits[T Number](b uint64) T { return unit.FromBits[T](b) }

// ToBytes encodes x in the given byte order.
func ToBytes[T Number](x T, order binary.ByteOrder) []byte { return unit.ToBytes(x, order) }

// FromBytes decodes a T. The buffer must be exactly ByteSize long.
func FromBytes[T Number](buf []byte, order binary.ByteOrder) (T, error) {
	return unit.FromBytes[T](buf, order)
}

// ToBEBytes encodes x big-endian.
func ToBEBytes[T Number](x T) []byte { return unit.ToBEBytes(x) }

// ToLEBytes encodes x little-endian.
func ToLEBytes[T Number](x T) []byte { return unit.ToLEBytes(x) }

// ToNEBytes encodes x in native order.
func ToNEBytes[T Number](x T) []byte { return unit.ToNEBytes(x) }

// FromBEBytes decodes a big-endian T.
func FromBEBytes[T Number](buf []byte) (T, error) { return unit.FromBEBytes[T](buf) }

// FromLEBytes decodes a little-endian T.
func FromLEBytes[T Number](buf []byte) (T, error) { return unit.FromLEBytes[T](buf) }

// FromNEBytes decodes a native-order T.
func FromNEBytes[T Number](buf []byte) (T, error) { return unit.FromNEBytes[T](buf) }
