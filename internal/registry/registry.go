// Package registry assigns stable numeric IDs to names by hashing them
// with MurmurHash2, the scheme uniset uses to derive object IDs from
// configuration names. Assignments are recorded in a Store so that hash
// collisions between distinct names are detected instead of silently
// aliasing two objects.
package registry

import (
	"errors"
	"fmt"

	murmur2 "github.com/pv/murmur2-go"
)

// ErrCollision is returned when a name hashes to an ID already owned by a
// different name.
var ErrCollision = errors.New("registry: id collision")

// Store persists name to ID assignments.
type Store interface {
	// Put records the assignment of id to name.
	Put(name string, id uint32) error

	// Get returns the ID assigned to name.
	Get(name string) (uint32, bool, error)

	// NameForID returns the name that owns id.
	NameForID(id uint32) (string, bool, error)

	// Count returns the number of recorded assignments.
	Count() (int, error)

	// Close closes the store.
	Close() error
}

// Registry derives and records IDs for names.
type Registry struct {
	store Store
}

func New(store Store) *Registry {
	return &Registry{store: store}
}

// Register assigns murmur2.String32(name) as the ID of name and records
// the assignment. Registering an already known name returns its existing
// ID; a name whose hash is owned by a different name fails with
// ErrCollision.
func (r *Registry) Register(name string) (uint32, error) {
	id := murmur2.String32(name)

	owner, ok, err := r.store.NameForID(id)
	if err != nil {
		return 0, err
	}
	if ok {
		if owner != name {
			return 0, fmt.Errorf("%w: %q and %q both hash to %d", ErrCollision, name, owner, id)
		}
		return id, nil
	}

	if err := r.store.Put(name, id); err != nil {
		return 0, err
	}
	return id, nil
}

// Lookup returns the recorded ID of name.
func (r *Registry) Lookup(name string) (uint32, bool, error) {
	return r.store.Get(name)
}

// Resolve returns the name that owns id.
func (r *Registry) Resolve(id uint32) (string, bool, error) {
	return r.store.NameForID(id)
}

// Count returns the number of registered names.
func (r *Registry) Count() (int, error) {
	return r.store.Count()
}

// Close closes the underlying store.
func (r *Registry) Close() error {
	return r.store.Close()
}
