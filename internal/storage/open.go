package storage

import (
	"context"
	"fmt"
)

// Backend names accepted by Open.
const (
	BackendBolt     = "bolt"
	BackendPostgres = "postgres"
)

// Open returns the chat log for backend. The postgres backend migrates its table first.
func Open(ctx context.Context, backend, dataDir, databaseURL string) (AdminLog, error) {
	switch backend {
	case BackendPostgres:
		store, err := NewStore(ctx, databaseURL)
		if err != nil {
			return nil, err
		}
		if err := store.AutoMigrate(ctx); err != nil {
			store.Close()
			return nil, err
		}
		return storeLog{AdminLog: store.ChatEntries, store: store}, nil
	case BackendBolt, "":
		log, err := OpenBoltLog(BoltPath(dataDir))
		if err != nil {
			return nil, err
		}
		return log, nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}

// storeLog closes the database pool along with the log.
type storeLog struct {
	AdminLog
	store *Store
}

func (s storeLog) Close() error {
	s.store.Close()
	return nil
}
