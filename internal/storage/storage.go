// Package storage persists search telemetry in an embedded BadgerDB
// database so a long-running engine process (or an offline inspection of
// the data directory) can review search history across UCI sessions.
package storage

import (
	"encoding/binary"
	"encoding/json"

	"github.com/dgraph-io/badger/v4"
)

const keyPrefixSearch = "search:"

// SearchTelemetry is one record of a completed MCTS search, written after
// every "go" command the UCI layer handles. It has no influence on move
// selection; it exists purely for later inspection.
type SearchTelemetry struct {
	StartFEN    string  `json:"start_fen"`
	BestMove    string  `json:"best_move"`
	Iterations  int     `json:"iterations"`
	TreeSize    int     `json:"tree_size"`
	ElapsedMs   int64   `json:"elapsed_ms"`
	Exploration float64 `json:"exploration_c"`
}

// Storage wraps BadgerDB for durable search telemetry.
type Storage struct {
	db *badger.DB
}

// NewStorage opens (creating if necessary) the telemetry database in dir.
func NewStorage(dir string) (*Storage, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Storage{db: db}, nil
}

// Close closes the database.
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RecordSearch appends rec under the next sequence number. Keys are
// zero-padded big-endian sequence numbers so a range scan over the
// "search:" prefix returns records in the order they were written.
func (s *Storage) RecordSearch(rec SearchTelemetry) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		seq, err := nextSearchSeq(txn)
		if err != nil {
			return err
		}
		return txn.Set(searchKey(seq), data)
	})
}

// ListSearches returns every recorded search in the order it was written.
func (s *Storage) ListSearches() ([]SearchTelemetry, error) {
	var records []SearchTelemetry

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(keyPrefixSearch)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(opts.Prefix); it.ValidForPrefix(opts.Prefix); it.Next() {
			var rec SearchTelemetry
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &rec)
			})
			if err != nil {
				return err
			}
			records = append(records, rec)
		}
		return nil
	})

	return records, err
}

const keySearchSeq = "search_seq"

// nextSearchSeq returns the next monotonically increasing sequence number
// for a search record, persisting the counter in the same transaction.
func nextSearchSeq(txn *badger.Txn) (uint64, error) {
	var seq uint64

	item, err := txn.Get([]byte(keySearchSeq))
	switch err {
	case nil:
		err = item.Value(func(val []byte) error {
			seq = binary.BigEndian.Uint64(val)
			return nil
		})
		if err != nil {
			return 0, err
		}
	case badger.ErrKeyNotFound:
		seq = 0
	default:
		return 0, err
	}

	next := seq + 1
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, next)
	if err := txn.Set([]byte(keySearchSeq), buf); err != nil {
		return 0, err
	}

	return next, nil
}

func searchKey(seq uint64) []byte {
	buf := make([]byte, len(keyPrefixSearch)+8)
	copy(buf, keyPrefixSearch)
	binary.BigEndian.PutUint64(buf[len(keyPrefixSearch):], seq)
	return buf
}
