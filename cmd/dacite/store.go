package main

import (
	"fmt"

	"github.com/dacite/dacite/configuration"
	"github.com/dacite/dacite/store"
)

// openStore builds the store.Blob backend named by cfg.Store.Type().
func openStore(cfg *configuration.Configuration) (store.Blob, error) {
	switch cfg.Store.Type() {
	case "memory", "":
		return store.NewMemory(), nil
	case "redis":
		return store.NewRedis(cfg.Redis)
	default:
		return nil, fmt.Errorf("unsupported store backend %q", cfg.Store.Type())
	}
}
