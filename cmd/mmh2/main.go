// Command mmh2 computes MurmurHash2 values.
//
// With arguments it hashes each argument's UTF-8 bytes; without arguments
// it hashes standard input. -check verifies a YAML known-answer vector
// file, -registry assigns and records hash-derived IDs for names.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	murmur2 "github.com/pv/murmur2-go"
	"github.com/pv/murmur2-go/internal/config"
	"github.com/pv/murmur2-go/internal/logger"
	"github.com/pv/murmur2-go/internal/registry"
	"github.com/pv/murmur2-go/internal/vectors"
)

func main() {
	cfg := config.Parse()
	log := logger.New(cfg.LogFormat, slog.LevelInfo)

	switch {
	case cfg.CheckFile != "":
		runCheck(cfg, log)
	case cfg.Registry != "":
		runRegister(cfg, log)
	default:
		runHash(cfg, log)
	}
}

func runCheck(cfg *config.Config, log *slog.Logger) {
	vecs, err := vectors.Load(cfg.CheckFile)
	if err != nil {
		log.Error("load vector file", "file", cfg.CheckFile, "err", err)
		os.Exit(1)
	}

	failed := 0
	for _, v := range vecs {
		if err := v.Check(); err != nil {
			log.Error("vector mismatch", "vector", v.Name, "err", err)
			failed++
		}
	}
	if failed > 0 {
		log.Error("vector check failed", "file", cfg.CheckFile, "failed", failed, "total", len(vecs))
		os.Exit(1)
	}
	log.Info("all vectors match", "file", cfg.CheckFile, "total", len(vecs))
}

func runRegister(cfg *config.Config, log *slog.Logger) {
	if len(cfg.Args) == 0 {
		log.Error("no names to register")
		os.Exit(1)
	}

	var store registry.Store
	var err error
	switch cfg.Storage {
	case config.StorageMemory:
		store = registry.NewMemoryStore()
	default:
		store, err = registry.NewSQLiteStore(cfg.Registry)
		if err != nil {
			log.Error("open registry", "path", cfg.Registry, "err", err)
			os.Exit(1)
		}
	}

	reg := registry.New(store)
	defer reg.Close()

	for _, name := range cfg.Args {
		id, err := reg.Register(name)
		if err != nil {
			log.Error("register name", "name", name, "err", err)
			os.Exit(1)
		}
		fmt.Printf("%d\t%s\n", id, name)
	}
}

func runHash(cfg *config.Config, log *slog.Logger) {
	if len(cfg.Args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Error("read stdin", "err", err)
			os.Exit(1)
		}
		printHash(cfg, log, data, "-")
		return
	}

	for _, arg := range cfg.Args {
		printHash(cfg, log, []byte(arg), arg)
	}
}

func printHash(cfg *config.Config, log *slog.Logger, data []byte, label string) {
	if cfg.Use64 {
		sum, err := hash64(cfg, data)
		if err != nil {
			log.Error("hash input", "input", label, "err", err)
			os.Exit(1)
		}
		fmt.Printf("%016x  %s\n", sum, label)
		return
	}

	sum, err := hash32(cfg, data)
	if err != nil {
		log.Error("hash input", "input", label, "err", err)
		os.Exit(1)
	}
	fmt.Printf("%08x  %s\n", sum, label)
}

func hash32(cfg *config.Config, data []byte) (uint32, error) {
	if cfg.SeedSet {
		return murmur2.Hash32(data, len(data), uint32(cfg.Seed))
	}
	return murmur2.Sum32(data, len(data))
}

func hash64(cfg *config.Config, data []byte) (uint64, error) {
	if cfg.SeedSet {
		return murmur2.Hash64(data, len(data), uint32(cfg.Seed))
	}
	return murmur2.Sum64(data, len(data))
}
