package config

import "flag"

type StorageType string

const (
	StorageMemory StorageType = "memory"
	StorageSQLite StorageType = "sqlite"
)

// Config holds the mmh2 command line options.
type Config struct {
	Use64     bool
	Seed      uint
	SeedSet   bool
	CheckFile string
	Registry  string
	Storage   StorageType
	LogFormat string
	Args      []string
}

func Parse() *Config {
	cfg := &Config{}

	flag.BoolVar(&cfg.Use64, "64", false, "Use the 64-bit variant")
	flag.UintVar(&cfg.Seed, "seed", 0, "Explicit seed (default: the variant's default seed)")
	flag.StringVar(&cfg.CheckFile, "check", "", "Verify a YAML known-answer vector file and exit")
	flag.StringVar(&cfg.Registry, "registry", "", "Register names in this database and print their IDs")

	var storageStr string
	flag.StringVar(&storageStr, "storage", "sqlite", "Registry storage type: memory or sqlite")

	flag.StringVar(&cfg.LogFormat, "log-format", "text", "Log format: text or json")

	flag.Parse()

	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			cfg.SeedSet = true
		}
	})

	cfg.Storage = StorageType(storageStr)
	if cfg.Storage != StorageMemory && cfg.Storage != StorageSQLite {
		cfg.Storage = StorageSQLite
	}
	cfg.Args = flag.Args()

	return cfg
}
