// Package storage persists the client's local state (the session token and
// profile snapshot) behind a small Disk abstraction.
//
// The default disk is the local filesystem. An S3-compatible disk can be
// configured instead, for installations that keep client state in object
// storage:
//
//	storage.Connect()
//	disk := storage.Use(config.StorageDefault())
//	disk.Put("session/token", []byte(token))
package storage

import (
	"fmt"
	"sync"

	"github.com/shashiranjanraj/shopeasy/config"
	"github.com/shashiranjanraj/shopeasy/pkg/logger"
)

// Disk is a string-keyed blob store. Implementations must treat Delete of a
// missing path as a no-op.
type Disk interface {
	Put(path string, content []byte) error
	Get(path string) ([]byte, error)
	Exists(path string) bool
	Delete(path string) error
	URL(path string) string
}

var (
	managerMu sync.RWMutex
	disks     = map[string]Disk{}
)

// Connect boots the storage manager. Call once at application startup.
func Connect() {
	RegisterDisk("local", NewLocal(config.StorageLocalRoot(), config.StorageURL()))

	// Boot the S3 disk only if a bucket is configured.
	if config.StorageS3Bucket() != "" {
		d, err := newS3Disk()
		if err != nil {
			logger.Warn("storage/s3: disk disabled", "error", err)
		} else {
			RegisterDisk("s3", d)
		}
	}
}

// Use returns the named disk ("local" or "s3").
func Use(name string) Disk {
	managerMu.RLock()
	d, ok := disks[name]
	managerMu.RUnlock()
	if !ok {
		panic(fmt.Sprintf("storage: disk %q is not configured", name))
	}
	return d
}

// RegisterDisk plugs in a custom Disk implementation at boot time.
func RegisterDisk(name string, d Disk) {
	managerMu.Lock()
	disks[name] = d
	managerMu.Unlock()
}
