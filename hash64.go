package murmur2

import "encoding/binary"

// Mixing constants for the 64-bit variant.
const (
	m64 = uint64(0xc6a4a7935bd1e995)
	r64 = 47
)

// Hash64 returns the 64-bit MurmurHash2 (MurmurHash64A) of the first
// length bytes of data under the given seed. The seed is a 32-bit
// pattern zero-extended into the 64-bit state. It fails with
// ErrOutOfRange when length is negative or exceeds len(data).
func Hash64(data []byte, length int, seed uint32) (uint64, error) {
	if err := checkLength(length, len(data)); err != nil {
		return 0, err
	}
	return hash64(data[:length], seed), nil
}

// Sum64 is Hash64 with the default seed.
func Sum64(data []byte, length int) (uint64, error) {
	return Hash64(data, length, DefaultSeed64)
}

func hash64(data []byte, seed uint32) uint64 {
	h := uint64(seed) ^ uint64(len(data))*m64

	// Mix 8 bytes at a time into the hash
	for len(data) >= 8 {
		k := binary.LittleEndian.Uint64(data)

		k *= m64
		k ^= k >> r64
		k *= m64

		h ^= k
		h *= m64

		data = data[8:]
	}

	// Handle the last few bytes
	switch len(data) {
	case 7:
		h ^= uint64(data[6]) << 48
		fallthrough
	case 6:
		h ^= uint64(data[5]) << 40
		fallthrough
	case 5:
		h ^= uint64(data[4]) << 32
		fallthrough
	case 4:
		h ^= uint64(data[3]) << 24
		fallthrough
	case 3:
		h ^= uint64(data[2]) << 16
		fallthrough
	case 2:
		h ^= uint64(data[1]) << 8
		fallthrough
	case 1:
		h ^= uint64(data[0])
		h *= m64
	}

	// Final mixing
	h ^= h >> r64
	h *= m64
	h ^= h >> r64

	return h
}
