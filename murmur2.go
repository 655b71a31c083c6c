// Package murmur2 implements the 32-bit and 64-bit variants of the
// MurmurHash2 algorithm by Austin Appleby.
//
// MurmurHash2 is a fast non-cryptographic hash for hash tables, bloom
// filters and partitioning schemes. It offers no resistance against an
// adversary and must not be used for anything security related.
//
// The text overloads hash the UTF-8 bytes of the string, so their values
// are reproducible across platforms and match any other implementation
// fed the same UTF-8 encoding. The default seeds match the values used by
// Apache Commons Codec.
package murmur2

import (
	"errors"
	"fmt"
)

// Default seeds used by Sum32/Sum64 and the text overloads.
const (
	DefaultSeed32 uint32 = 0x9747b28c
	DefaultSeed64 uint32 = 0xe17a1465
)

// ErrOutOfRange is returned when a requested length or substring range
// does not fit the provided input.
var ErrOutOfRange = errors.New("murmur2: out of range")

func checkLength(length, size int) error {
	if length < 0 || length > size {
		return fmt.Errorf("%w: length %d, input size %d", ErrOutOfRange, length, size)
	}
	return nil
}

// String32 returns the 32-bit hash of the UTF-8 bytes of text with the
// default seed.
func String32(text string) uint32 {
	return hash32([]byte(text), DefaultSeed32)
}

// Substring32 returns the 32-bit hash of the UTF-8 bytes of
// text[start:start+length] with the default seed. start and length are
// byte offsets, not rune offsets.
func Substring32(text string, start, length int) (uint32, error) {
	if err := checkSubstring(start, length, len(text)); err != nil {
		return 0, err
	}
	return hash32([]byte(text[start:start+length]), DefaultSeed32), nil
}

// String64 returns the 64-bit hash of the UTF-8 bytes of text with the
// default seed.
func String64(text string) uint64 {
	return hash64([]byte(text), DefaultSeed64)
}

// Substring64 returns the 64-bit hash of the UTF-8 bytes of
// text[start:start+length] with the default seed. start and length are
// byte offsets, not rune offsets.
func Substring64(text string, start, length int) (uint64, error) {
	if err := checkSubstring(start, length, len(text)); err != nil {
		return 0, err
	}
	return hash64([]byte(text[start:start+length]), DefaultSeed64), nil
}

func checkSubstring(start, length, size int) error {
	if start < 0 || length < 0 || start > size-length {
		return fmt.Errorf("%w: substring [%d:%d] of text with %d bytes",
			ErrOutOfRange, start, start+length, size)
	}
	return nil
}
