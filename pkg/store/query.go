package store

import (
	"encoding/binary"

	bolt "go.etcd.io/bbolt"
)

func init() {
	initDB["initialize query history table"] = func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketQuery))
		return err
	}
}

// NextQuerySeq returns the next sequence number of the query history.
func (s *dbStore) NextQuerySeq() (int, error) {
	var seq uint64
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketQuery))
		seq = b.Sequence() + 1
		return nil
	})
	return int(seq), err
}

// AddQuery adds a new query to the query history.
func (s *dbStore) AddQuery(text string) (int, error) {
	var (
		seq uint64
		err error
	)
	err = s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketQuery))
		seq, err = b.NextSequence()
		if err != nil {
			return err
		}
		return b.Put(marshalSeq(seq), []byte(text))
	})
	return int(seq), err
}

// DelQuery deletes a query history item with the given sequence number.
func (s *dbStore) DelQuery(seq int) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketQuery))
		return b.Delete(marshalSeq(uint64(seq)))
	})
}

// Query returns the query history item with the specified sequence number.
func (s *dbStore) Query(seq int) (string, error) {
	var text string
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketQuery))
		v := b.Get(marshalSeq(uint64(seq)))
		if v == nil {
			return ErrNoMatchingQuery
		}
		text = string(v)
		return nil
	})
	return text, err
}

// Queries returns all queries with sequence numbers in [from, upto).
func (s *dbStore) Queries(from, upto int) ([]Query, error) {
	var queries []Query
	err := s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket([]byte(bucketQuery)).Cursor()
		for k, v := c.Seek(marshalSeq(uint64(from))); k != nil && unmarshalSeq(k) < uint64(upto); k, v = c.Next() {
			queries = append(queries, Query{Text: string(v), Seq: int(unmarshalSeq(k))})
		}
		return nil
	})
	return queries, err
}

func marshalSeq(seq uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, seq)
	return b
}

func unmarshalSeq(key []byte) uint64 {
	return binary.BigEndian.Uint64(key)
}
