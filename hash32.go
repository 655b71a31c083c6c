package murmur2

import "encoding/binary"

// Mixing constants for the 32-bit variant, generated offline by the
// original author.
const (
	m32 = uint32(0x5bd1e995)
	r32 = 24
)

// Hash32 returns the 32-bit MurmurHash2 of the first length bytes of data
// under the given seed. It fails with ErrOutOfRange when length is
// negative or exceeds len(data); bytes past length never affect the
// result.
func Hash32(data []byte, length int, seed uint32) (uint32, error) {
	if err := checkLength(length, len(data)); err != nil {
		return 0, err
	}
	return hash32(data[:length], seed), nil
}

// Sum32 is Hash32 with the default seed.
func Sum32(data []byte, length int) (uint32, error) {
	return Hash32(data, length, DefaultSeed32)
}

func hash32(data []byte, seed uint32) uint32 {
	h := seed ^ uint32(len(data))

	// Mix 4 bytes at a time into the hash
	for len(data) >= 4 {
		k := binary.LittleEndian.Uint32(data)

		k *= m32
		k ^= k >> r32
		k *= m32

		h *= m32
		h ^= k

		data = data[4:]
	}

	// Handle the last few bytes
	switch len(data) {
	case 3:
		h ^= uint32(data[2]) << 16
		fallthrough
	case 2:
		h ^= uint32(data[1]) << 8
		fallthrough
	case 1:
		h ^= uint32(data[0])
		h *= m32
	}

	// Final mixing
	h ^= h >> 13
	h *= m32
	h ^= h >> 15

	return h
}
