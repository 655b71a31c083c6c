// Package vectors loads known-answer vector files used to verify
// bit-exact agreement with other MurmurHash2 implementations.
package vectors

import (
	"encoding/hex"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	murmur2 "github.com/pv/murmur2-go"
)

// Vector is one known-answer entry. The input is given either as text
// (hashed as UTF-8 bytes) or as a hex byte string. A missing length means
// the whole input; a missing seed means the variant's default seed.
type Vector struct {
	Name   string  `yaml:"name"`
	Text   *string `yaml:"text"`
	Hex    *string `yaml:"hex"`
	Length *int    `yaml:"length"`
	Seed   *uint32 `yaml:"seed"`
	Sum32  *uint32 `yaml:"sum32"`
	Sum64  *uint64 `yaml:"sum64"`
}

type vectorFile struct {
	Vectors []Vector `yaml:"vectors"`
}

// Load reads and validates a YAML vector file.
func Load(path string) ([]Vector, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read vector file: %w", err)
	}

	var file vectorFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	for i := range file.Vectors {
		if err := file.Vectors[i].validate(); err != nil {
			return nil, fmt.Errorf("vector %d (%s): %w", i, file.Vectors[i].Name, err)
		}
	}

	return file.Vectors, nil
}

func (v *Vector) validate() error {
	if v.Name == "" {
		return fmt.Errorf("missing name")
	}
	if (v.Text == nil) == (v.Hex == nil) {
		return fmt.Errorf("exactly one of text and hex must be given")
	}
	if v.Sum32 == nil && v.Sum64 == nil {
		return fmt.Errorf("no expected sum given")
	}

	input, err := v.Input()
	if err != nil {
		return err
	}
	if v.Length != nil && (*v.Length < 0 || *v.Length > len(input)) {
		return fmt.Errorf("length %d out of range for %d input bytes", *v.Length, len(input))
	}
	return nil
}

// Input returns the input bytes of the vector.
func (v *Vector) Input() ([]byte, error) {
	if v.Text != nil {
		return []byte(*v.Text), nil
	}
	input, err := hex.DecodeString(*v.Hex)
	if err != nil {
		return nil, fmt.Errorf("decode hex input: %w", err)
	}
	return input, nil
}

// Check hashes the vector input and compares it against every expected
// sum the vector carries.
func (v *Vector) Check() error {
	input, err := v.Input()
	if err != nil {
		return err
	}
	length := len(input)
	if v.Length != nil {
		length = *v.Length
	}

	if v.Sum32 != nil {
		got, err := hash32(input, length, v.Seed)
		if err != nil {
			return err
		}
		if got != *v.Sum32 {
			return fmt.Errorf("sum32 mismatch: got %#08x, want %#08x", got, *v.Sum32)
		}
	}

	if v.Sum64 != nil {
		got, err := hash64(input, length, v.Seed)
		if err != nil {
			return err
		}
		if got != *v.Sum64 {
			return fmt.Errorf("sum64 mismatch: got %#016x, want %#016x", got, *v.Sum64)
		}
	}

	return nil
}

func hash32(input []byte, length int, seed *uint32) (uint32, error) {
	if seed != nil {
		return murmur2.Hash32(input, length, *seed)
	}
	return murmur2.Sum32(input, length)
}

func hash64(input []byte, length int, seed *uint32) (uint64, error) {
	if seed != nil {
		return murmur2.Hash64(input, length, *seed)
	}
	return murmur2.Sum64(input, length)
}
