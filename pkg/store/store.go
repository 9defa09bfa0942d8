// Package store is the persistent history of the strided tool: every range
// query that resolved successfully, keyed by a sequence number.
package store

import (
	"errors"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
	"src.strided.sh/pkg/errutil"
	"src.strided.sh/pkg/logutil"
)

var logger = logutil.GetLogger("[store] ")

const bucketQuery = "query"

// The following functions are called with a writable transaction when a
// database is opened, in unspecified order.
var initDB = map[string](func(*bolt.Tx) error){}

// ErrNoMatchingQuery is the error returned when a query lookup completes with
// no result.
var ErrNoMatchingQuery = errors.New("no matching query")

// Query is an entry in the query history.
type Query struct {
	Text string
	Seq  int
}

// Store is the interface of the query history.
type Store interface {
	NextQuerySeq() (int, error)
	AddQuery(text string) (int, error)
	DelQuery(seq int) error
	Query(seq int) (string, error)
	Queries(from, upto int) ([]Query, error)
	Close() error
}

type dbStore struct {
	db *bolt.DB
}

// NewStore creates a new Store from the given file.
func NewStore(dbname string) (Store, error) {
	db, err := bolt.Open(dbname, 0644, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	st, err := NewStoreFromDB(db)
	if err != nil {
		return nil, errutil.Multi(err, db.Close())
	}
	return st, nil
}

// NewStoreFromDB creates a new Store from a bolt DB.
func NewStoreFromDB(db *bolt.DB) (Store, error) {
	logger.Println("initializing store")
	defer logger.Println("initialized store")
	st := &dbStore{db}

	err := db.Update(func(tx *bolt.Tx) error {
		for name, fn := range initDB {
			err := fn(tx)
			if err != nil {
				return fmt.Errorf("failed to %s: %w", name, err)
			}
		}
		return nil
	})
	return st, err
}

// Close closes the underlying database.
func (s *dbStore) Close() error {
	return s.db.Close()
}
