// Package highscore keeps the best score across runs.
package highscore

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/quasilyte/gdata"
)

const itemKey = "highscore"

// ItemStore is the subset of gdata.Manager the store needs.
type ItemStore interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// Record is the persisted best session.
type Record struct {
	Score    int       `json:"score"`
	Kills    int       `json:"kills"`
	Ticks    int       `json:"ticks"`
	Achieved time.Time `json:"achieved"`
}

// Store reads and updates the best record.
type Store struct {
	items ItemStore
	best  Record
}

// Open initializes gdata storage for appName and loads the saved record.
func Open(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("open save data: %w", err)
	}
	return New(m)
}

// New wraps items and loads the saved record, if any.
func New(items ItemStore) (*Store, error) {
	s := &Store{items: items}
	data, err := items.LoadItem(itemKey)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", itemKey, err)
	}
	if data == nil {
		return s, nil
	}
	if err := json.Unmarshal(data, &s.best); err != nil {
		return nil, fmt.Errorf("parse %s: %w", itemKey, err)
	}
	return s, nil
}

// Best returns the best record so far.
func (s *Store) Best() Record {
	return s.best
}

// Submit saves r when it beats the current best and reports whether it did.
func (s *Store) Submit(r Record) (bool, error) {
	if r.Score <= s.best.Score {
		return false, nil
	}
	data, err := json.Marshal(r)
	if err != nil {
		return false, fmt.Errorf("encode %s: %w", itemKey, err)
	}
	if err := s.items.SaveItem(itemKey, data); err != nil {
		return false, fmt.Errorf("save %s: %w", itemKey, err)
	}
	s.best = r
	return true, nil
}
