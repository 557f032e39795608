// Package storage contains the storage-agnostic sink contract and the backend
// factory. Concrete backends (sqlite, postgres) register themselves at init
// time; callers pick one by kind and stay backend-agnostic from then on.
package storage

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Repository is the load sink. The orchestrator uses it strictly
// sequentially: DDL via Exec, then one Insert per table.
type Repository interface {
	// Exec runs a single SQL statement, typically DDL.
	Exec(ctx context.Context, sql string) error

	// Insert writes rows into table using a single transaction. Every row
	// must have len(columns) values in column order. It returns the number of
	// rows inserted; on error, nothing from this call is kept.
	Insert(ctx context.Context, table string, columns []string, rows [][]any) (int64, error)

	// Close releases the underlying connection resources.
	Close()
}

// Config selects and configures a backend.
type Config struct {
	// Kind names a registered backend, e.g. "sqlite" or "postgres".
	Kind string

	// DSN is backend-specific: a file path or URI for sqlite, a pgx
	// connection string for postgres.
	DSN string
}

// Factory constructs a Repository from a Config.
type Factory func(ctx context.Context, cfg Config) (Repository, error)

var (
	mu        sync.RWMutex
	factories = map[string]Factory{}
)

// Register makes a backend available under the given kind. It is called from
// backend packages' init functions; importing erpload/internal/storage/all
// wires in every built-in backend.
func Register(kind string, f Factory) {
	mu.Lock()
	defer mu.Unlock()
	factories[kind] = f
}

// Kinds returns the registered backend names, sorted.
func Kinds() []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, 0, len(factories))
	for k := range factories {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Open constructs the Repository for cfg.Kind.
func Open(ctx context.Context, cfg Config) (Repository, error) {
	mu.RLock()
	f, ok := factories[cfg.Kind]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("storage: no backend registered for kind %q (have %v)", cfg.Kind, Kinds())
	}
	return f(ctx, cfg)
}
