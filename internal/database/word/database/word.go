package database

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bloops-games/sketchy/internal/byteutil"
	"github.com/bloops-games/sketchy/internal/database"
	"github.com/bloops-games/sketchy/internal/database/word/model"
	bolt "go.etcd.io/bbolt"
)

const bucket = "words"

var (
	ErrEmptyWord  = fmt.Errorf("empty word")
	ErrWordExists = fmt.Errorf("word already exists")
	ErrNotFound   = fmt.Errorf("not found")
	errStopCursor = errors.New("stop cursor")
)

func New(db *database.DB) *DB {
	return &DB{sDB: db}
}

type DB struct {
	sDB *database.DB
}

// Add stores m under the next bucket sequence. Duplicate texts are rejected.
func (db *DB) Add(m model.Word) (model.Word, error) {
	m.Text = model.Normalize(m.Text)
	if m.Text == "" {
		return m, ErrEmptyWord
	}

	tx, err := db.sDB.DB.Begin(true)
	if err != nil {
		return m, fmt.Errorf("starting transaction: %w", err)
	}

	defer tx.Rollback() // nolint

	b, err := tx.CreateBucketIfNotExists([]byte(bucket))
	if err != nil {
		return m, fmt.Errorf("create bucket: %w", err)
	}

	if _, ok, err := find(b, m.Text); err != nil {
		return m, err
	} else if ok {
		return m, ErrWordExists
	}

	id, err := b.NextSequence()
	if err != nil {
		return m, fmt.Errorf("next sequence: %w", err)
	}
	m.ID = id

	bytes, err := json.Marshal(m)
	if err != nil {
		return m, fmt.Errorf("marshal: %w", err)
	}

	if err := b.Put(byteutil.EncodeUint64(id), bytes); err != nil {
		return m, fmt.Errorf("put to bucket: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return m, fmt.Errorf("committing transaction: %w", err)
	}

	return m, nil
}

// FetchAll returns every stored word in insertion order.
func (db *DB) FetchAll() ([]model.Word, error) {
	var list []model.Word

	if err := db.sDB.DB.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucket))
		if b == nil {
			return nil
		}

		return b.ForEach(func(k, v []byte) error {
			var w model.Word
			if err := json.Unmarshal(v, &w); err != nil {
				return fmt.Errorf("json unmarshal: %w", err)
			}
			list = append(list, w)
			return nil
		})
	}); err != nil {
		return nil, fmt.Errorf("view transaction: %w", err)
	}

	return list, nil
}

func (db *DB) Delete(text string) error {
	text = model.Normalize(text)

	return db.sDB.DB.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucket))
		if b == nil {
			return ErrNotFound
		}

		w, ok, err := find(b, text)
		if err != nil {
			return err
		}
		if !ok {
			return ErrNotFound
		}

		if err := b.Delete(byteutil.EncodeUint64(w.ID)); err != nil {
			return fmt.Errorf("delete key: %w", err)
		}

		return nil
	})
}

func find(b *bolt.Bucket, text string) (model.Word, bool, error) {
	var found model.Word
	err := b.ForEach(func(k, v []byte) error {
		var w model.Word
		if err := json.Unmarshal(v, &w); err != nil {
			return fmt.Errorf("json unmarshal: %w", err)
		}
		if w.Text == text {
			found = w
			return errStopCursor
		}
		return nil
	})

	switch {
	case errors.Is(err, errStopCursor):
		return found, true, nil
	case err != nil:
		return found, false, err
	}

	return found, false, nil
}
