package storage

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/easeaico/moodmate/internal/types"
)

// BoltFileName is the chat log file created under the data directory.
const BoltFileName = "chatlog.bolt"

var usersBucket = []byte("users")

// BoltLog keeps one nested bucket per user, keyed by a big-endian sequence so
// iteration order is append order.
type BoltLog struct {
	db *bolt.DB
}

// BoltPath returns the chat log path under dataDir.
func BoltPath(dataDir string) string {
	if dataDir == "" {
		dataDir = "."
	}
	return filepath.Join(dataDir, BoltFileName)
}

// OpenBoltLog opens or creates the chat log at path.
func OpenBoltLog(path string) (*BoltLog, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open chat log: %w", err)
	}
	return &BoltLog{db: db}, nil
}

func (l *BoltLog) Append(ctx context.Context, userID string, entry types.ChatEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to encode chat entry: %w", err)
	}
	err = l.db.Update(func(tx *bolt.Tx) error {
		root, err := tx.CreateBucketIfNotExists(usersBucket)
		if err != nil {
			return err
		}
		b, err := root.CreateBucketIfNotExists([]byte(userID))
		if err != nil {
			return err
		}
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		return b.Put(sequenceKey(seq), data)
	})
	if err != nil {
		return fmt.Errorf("failed to append chat entry: %w", err)
	}
	return nil
}

func (l *BoltLog) ReadAll(ctx context.Context, userID string) ([]types.ChatEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries := []types.ChatEntry{}
	err := l.db.View(func(tx *bolt.Tx) error {
		root := tx.Bucket(usersBucket)
		if root == nil {
			return nil
		}
		b := root.Bucket([]byte(userID))
		if b == nil {
			return nil
		}
		return b.ForEach(func(k, v []byte) error {
			var entry types.ChatEntry
			if err := json.Unmarshal(v, &entry); err != nil {
				// Skip malformed entries instead of failing the whole read
				slog.Warn("skipping malformed chat entry", "user_id", userID, "key", binary.BigEndian.Uint64(k), "error", err.Error())
				return nil
			}
			entries = append(entries, entry)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read chat log: %w", err)
	}
	return entries, nil
}

func (l *BoltLog) Users(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var users []string
	err := l.db.View(func(tx *bolt.Tx) error {
		root := tx.Bucket(usersBucket)
		if root == nil {
			return nil
		}
		return root.ForEach(func(k, v []byte) error {
			// nested buckets have a nil value
			if v == nil {
				users = append(users, string(k))
			}
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (l *BoltLog) Clear(ctx context.Context, userID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := l.db.Update(func(tx *bolt.Tx) error {
		root := tx.Bucket(usersBucket)
		if root == nil {
			return nil
		}
		if err := root.DeleteBucket([]byte(userID)); err != nil && !errors.Is(err, bolt.ErrBucketNotFound) {
			return err
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to clear chat log: %w", err)
	}
	return nil
}

func (l *BoltLog) Close() error {
	if l.db == nil {
		return nil
	}
	return l.db.Close()
}

func sequenceKey(seq uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, seq)
	return key
}
