package persistence

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Drivers understood by Open.
const (
	DriverFile   = "file"
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
	DriverMemory = "memory"
)

// Config selects and parameterises a KV backend.
type Config struct {
	Driver    string
	Path      string
	RedisAddr string
	RedisDB   int
}

// DefaultDir is where local backends keep their files unless told otherwise.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".dragon-dice"
	}
	return filepath.Join(home, ".dragon-dice")
}

// DefaultPath returns the conventional file location for a local driver.
func DefaultPath(driver string) string {
	switch driver {
	case DriverSQLite:
		return filepath.Join(DefaultDir(), "settings.db")
	default:
		return filepath.Join(DefaultDir(), "settings.json")
	}
}

// Open builds the KV backend described by cfg.
func Open(ctx context.Context, cfg Config) (KV, error) {
	driver := cfg.Driver
	if driver == "" {
		driver = DriverFile
	}
	path := cfg.Path
	if path == "" {
		path = DefaultPath(driver)
	}

	var (
		kv  KV
		err error
	)
	switch driver {
	case DriverFile:
		kv, err = NewFileStore(path)
	case DriverSQLite:
		kv, err = OpenSQLite(path)
	case DriverRedis:
		addr := cfg.RedisAddr
		if addr == "" {
			addr = "localhost:6379"
		}
		kv, err = OpenRedis(ctx, addr, cfg.RedisDB)
	case DriverMemory:
		kv = NewMemoryStore()
	default:
		return nil, fmt.Errorf("unknown store driver %q", driver)
	}
	if err != nil {
		return nil, err
	}
	return kv, nil
}
