// Package bootstrap wires a client session together: configuration, storage,
// and the shared application state handle.
package bootstrap

import (
	"fmt"

	"github.com/shashiranjanraj/shopeasy/app/state"
	"github.com/shashiranjanraj/shopeasy/config"
	"github.com/shashiranjanraj/shopeasy/pkg/session"
	"github.com/shashiranjanraj/shopeasy/pkg/storage"
)

// Boot loads config, connects the storage disks, and returns the application
// state. Call once per process; the returned State is the handle every
// service is constructed with.
func Boot() (*state.State, error) {
	if err := config.Load(); err != nil {
		return nil, fmt.Errorf("bootstrap: config: %w", err)
	}

	storage.Connect()

	sess := session.New(storage.Use(config.StorageDefault()))
	return state.New(sess), nil
}
