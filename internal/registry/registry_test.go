package registry

import (
	"errors"
	"path/filepath"
	"testing"

	murmur2 "github.com/pv/murmur2-go"
)

func testStores(t *testing.T) map[string]Store {
	t.Helper()

	sqlite, err := NewSQLiteStore(filepath.Join(t.TempDir(), "registry.db"))
	if err != nil {
		t.Fatalf("create sqlite store: %v", err)
	}

	return map[string]Store{
		"memory": NewMemoryStore(),
		"sqlite": sqlite,
	}
}

func TestRegister(t *testing.T) {
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			reg := New(store)
			defer reg.Close()

			id, err := reg.Register("SES.AMC1_OPCUA_EM1")
			if err != nil {
				t.Fatalf("register: %v", err)
			}
			if want := murmur2.String32("SES.AMC1_OPCUA_EM1"); id != want {
				t.Errorf("Register assigned %d, want %d", id, want)
			}

			// Registering again must be idempotent
			again, err := reg.Register("SES.AMC1_OPCUA_EM1")
			if err != nil {
				t.Fatalf("re-register: %v", err)
			}
			if again != id {
				t.Errorf("re-register returned %d, want %d", again, id)
			}

			count, err := reg.Count()
			if err != nil {
				t.Fatal(err)
			}
			if count != 1 {
				t.Errorf("count = %d, want 1", count)
			}
		})
	}
}

func TestLookupAndResolve(t *testing.T) {
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			reg := New(store)
			defer reg.Close()

			id, err := reg.Register("Sensor_AS")
			if err != nil {
				t.Fatal(err)
			}

			got, ok, err := reg.Lookup("Sensor_AS")
			if err != nil {
				t.Fatal(err)
			}
			if !ok || got != id {
				t.Errorf("Lookup = (%d, %v), want (%d, true)", got, ok, id)
			}

			owner, ok, err := reg.Resolve(id)
			if err != nil {
				t.Fatal(err)
			}
			if !ok || owner != "Sensor_AS" {
				t.Errorf("Resolve(%d) = (%q, %v), want (\"Sensor_AS\", true)", id, owner, ok)
			}

			if _, ok, err := reg.Lookup("unknown"); err != nil || ok {
				t.Errorf("Lookup of unknown name = (ok=%v, err=%v), want (false, nil)", ok, err)
			}
		})
	}
}

func TestRegisterCollision(t *testing.T) {
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			reg := New(store)
			defer reg.Close()

			// Simulate a hash collision by pre-assigning the ID that
			// "Sensor_AS" would get to another name.
			id := murmur2.String32("Sensor_AS")
			if err := store.Put("Sensor_BS", id); err != nil {
				t.Fatal(err)
			}

			if _, err := reg.Register("Sensor_AS"); !errors.Is(err, ErrCollision) {
				t.Errorf("Register on colliding ID: got %v, want ErrCollision", err)
			}
		})
	}
}

func TestSQLiteStorePersistence(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "registry.db")

	store, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	id, err := New(store).Register("Persistent_S")
	if err != nil {
		t.Fatal(err)
	}
	if err := store.Close(); err != nil {
		t.Fatal(err)
	}

	// Reopen and confirm the assignment survived
	store, err = NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	got, ok, err := store.Get("Persistent_S")
	if err != nil {
		t.Fatal(err)
	}
	if !ok || got != id {
		t.Errorf("after reopen Get = (%d, %v), want (%d, true)", got, ok, id)
	}
}
