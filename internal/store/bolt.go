package store

import (
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/vkedu/projects-bot/internal/catalog"
)

var (
	catalogBucket = []byte("catalog")
	faqBucket     = []byte("faq")
)

var (
	snapshotKey = []byte("snapshot")
	entriesKey  = []byte("entries")
)

// Store persists the catalog snapshot between scraper runs and across bot
// restarts.
type Store interface {
	SaveCatalog(snap catalog.Snapshot) error
	LoadCatalog() (catalog.Snapshot, error)
	SaveFAQ(entries []catalog.FAQEntry) error
	LoadFAQ() ([]catalog.FAQEntry, error)
	Close() error
}

type BoltStore struct {
	db *bolt.DB
}

func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(catalogBucket); err != nil {
			return err
		}
		_, err := tx.CreateBucketIfNotExists(faqBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating buckets: %w", err)
	}

	return &BoltStore{db: db}, nil
}

// SaveCatalog replaces the stored snapshot in a single transaction, so a
// concurrent reader sees either the old or the new catalog, never a mix.
func (s *BoltStore) SaveCatalog(snap catalog.Snapshot) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		data, err := json.Marshal(snap)
		if err != nil {
			return err
		}
		return tx.Bucket(catalogBucket).Put(snapshotKey, data)
	})
}

// LoadCatalog returns the stored snapshot, or a zero snapshot when nothing
// has been scraped yet.
func (s *BoltStore) LoadCatalog() (catalog.Snapshot, error) {
	var snap catalog.Snapshot
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(catalogBucket).Get(snapshotKey)
		if v == nil {
			return nil
		}
		return json.Unmarshal(v, &snap)
	})
	return snap, err
}

func (s *BoltStore) SaveFAQ(entries []catalog.FAQEntry) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		data, err := json.Marshal(entries)
		if err != nil {
			return err
		}
		return tx.Bucket(faqBucket).Put(entriesKey, data)
	})
}

func (s *BoltStore) LoadFAQ() ([]catalog.FAQEntry, error) {
	var entries []catalog.FAQEntry
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(faqBucket).Get(entriesKey)
		if v == nil {
			return nil
		}
		return json.Unmarshal(v, &entries)
	})
	return entries, err
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}
