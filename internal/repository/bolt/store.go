// Package bolt implements the repository on an embedded bbolt file for local development.
package bolt

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"integrador-hub/config"

	"go.etcd.io/bbolt"
	"go.uber.org/zap"
)

var (
	usersBucket       = []byte("Users")
	projectsBucket    = []byte("Projects")
	evaluationsBucket = []byte("Evaluations")
	groupsBucket      = []byte("Groups")
	materiasBucket    = []byte("Materias")
	carrerasBucket    = []byte("Carreras")
)

var buckets = [][]byte{usersBucket, projectsBucket, evaluationsBucket, groupsBucket, materiasBucket, carrerasBucket}

// Store keeps one JSON document per key, one bucket per collection.
type Store struct {
	log *zap.SugaredLogger
	cfg config.BoltConfig
	db  *bbolt.DB
}

// New creates a bolt repository instance.
func New(log *zap.SugaredLogger, cfg *config.Config) *Store {
	return &Store{
		log: log.Named("repo.bolt"),
		cfg: cfg.Bolt,
	}
}

// OnStart opens (or creates) the database file and its buckets.
func (s *Store) OnStart(_ context.Context) error {
	if err := os.MkdirAll(filepath.Dir(s.cfg.Path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	_, statErr := os.Stat(s.cfg.Path)
	fresh := os.IsNotExist(statErr)

	db, err := bbolt.Open(s.cfg.Path, 0o600, &bbolt.Options{Timeout: s.cfg.OpenTimeout})
	if err != nil {
		return fmt.Errorf("open bolt: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, b := range buckets {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("create buckets: %w", err)
	}

	s.db = db
	if fresh && s.cfg.SeedFile != "" {
		if err := s.Seed(s.cfg.SeedFile); err != nil {
			return err
		}
	}

	s.log.Infow("bolt ready", "path", s.cfg.Path, "fresh", fresh)
	return nil
}

// OnStop closes the database file.
func (s *Store) OnStop(_ context.Context) error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func save[T any](s *Store, bucket []byte, key string, value T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s %s: %w", bucket, key, err)
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucket).Put([]byte(key), data)
	})
}

func get[T any](s *Store, bucket []byte, key string, notFound error) (*T, error) {
	var out T
	err := s.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket(bucket).Get([]byte(key))
		if v == nil {
			return notFound
		}
		return json.Unmarshal(v, &out)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// list returns the documents of bucket accepted by keep.
func list[T any](s *Store, bucket []byte, keep func(T) bool) ([]T, error) {
	out := make([]T, 0)
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucket).ForEach(func(k, v []byte) error {
			var doc T
			if err := json.Unmarshal(v, &doc); err != nil {
				return fmt.Errorf("decode %s %s: %w", bucket, k, err)
			}
			if keep(doc) {
				out = append(out, doc)
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
