package store

import (
	"context"
	"encoding/json/v2"
	"errors"
	"fmt"
	"iter"

	"github.com/dgraph-io/badger/v4"
)

// Collection provides generic document operations for one entity type.
// Documents are stored as JSON under "<prefix><id>"; every read returns
// the stored fields with the ID already merged in (the ID is part of
// the document).
type Collection[T any] struct {
	store  *Store
	prefix string
}

// NewCollection creates a Collection for type T under the given key prefix.
func NewCollection[T any](s *Store, prefix string) *Collection[T] {
	return &Collection[T]{
		store:  s,
		prefix: prefix,
	}
}

// Create inserts a new document with the given ID.
// Returns ErrAlreadyExists if a document with this ID already exists.
func (c *Collection[T]) Create(ctx context.Context, id string, doc *T) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	key := c.prefix + id

	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	return c.store.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte(key))
		if err == nil {
			return ErrAlreadyExists
		}
		if !errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("failed to check existing key: %w", err)
		}

		if err := txn.Set([]byte(key), data); err != nil {
			return fmt.Errorf("failed to set key: %w", err)
		}
		return nil
	})
}

// Get retrieves a document by ID.
// Returns ErrNotFound if the document does not exist.
func (c *Collection[T]) Get(ctx context.Context, id string) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key := c.prefix + id
	var doc T

	err := c.store.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to get key: %w", err)
		}

		return item.Value(func(val []byte) error {
			if err := json.Unmarshal(val, &doc); err != nil {
				return fmt.Errorf("failed to unmarshal document: %w", err)
			}
			return nil
		})
	})

	if err != nil {
		return nil, err
	}

	return &doc, nil
}

// Update replaces an existing document wholesale.
// Returns ErrNotFound if the document does not exist.
func (c *Collection[T]) Update(ctx context.Context, id string, doc *T) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	key := c.prefix + id

	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	return c.store.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte(key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to get existing key: %w", err)
		}

		if err := txn.Set([]byte(key), data); err != nil {
			return fmt.Errorf("failed to set key: %w", err)
		}
		return nil
	})
}

// Delete removes a document by ID.
// This operation is idempotent - it does not return an error if the document does not exist.
func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	key := c.prefix + id

	return c.store.db.Update(func(txn *badger.Txn) error {
		if err := txn.Delete([]byte(key)); err != nil {
			return fmt.Errorf("failed to delete key: %w", err)
		}
		return nil
	})
}

// BatchCreate inserts all documents in a single transaction.
// Either every document is written or none is; a duplicate ID aborts
// the whole batch with ErrAlreadyExists.
func (c *Collection[T]) BatchCreate(ctx context.Context, ids []string, docs []*T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(ids) != len(docs) {
		return fmt.Errorf("batch create: %d ids for %d documents", len(ids), len(docs))
	}

	// Marshal everything up front so a bad document cannot abort the
	// transaction halfway through.
	payloads := make([][]byte, len(docs))
	for i, doc := range docs {
		data, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("failed to marshal document %d: %w", i, err)
		}
		payloads[i] = data
	}

	return c.store.db.Update(func(txn *badger.Txn) error {
		for i, id := range ids {
			key := c.prefix + id

			_, err := txn.Get([]byte(key))
			if err == nil {
				return ErrAlreadyExists.WithMessage(fmt.Sprintf("document %q already exists", id))
			}
			if !errors.Is(err, badger.ErrKeyNotFound) {
				return fmt.Errorf("failed to check existing key: %w", err)
			}

			if err := txn.Set([]byte(key), payloads[i]); err != nil {
				return fmt.Errorf("failed to set key: %w", err)
			}
		}
		return nil
	})
}

// List returns an iterator over all documents in key order.
func (c *Collection[T]) List(ctx context.Context) iter.Seq2[*T, error] {
	return func(yield func(*T, error) bool) {
		c.store.db.View(func(txn *badger.Txn) error {
			opts := badger.DefaultIteratorOptions
			opts.Prefix = []byte(c.prefix)
			opts.PrefetchValues = true

			it := txn.NewIterator(opts)
			defer it.Close()

			for it.Seek([]byte(c.prefix)); it.ValidForPrefix([]byte(c.prefix)); it.Next() {
				if ctx.Err() != nil {
					yield(nil, ctx.Err())
					return ctx.Err()
				}

				var doc T
				err := it.Item().Value(func(val []byte) error {
					return json.Unmarshal(val, &doc)
				})

				if err != nil {
					yield(nil, err)
					return err
				}

				if !yield(&doc, nil) {
					return nil // Consumer stopped early
				}
			}

			return nil
		})
	}
}

// Filter returns all documents matching the predicate, in key order.
func (c *Collection[T]) Filter(ctx context.Context, match func(*T) bool) ([]*T, error) {
	var out []*T
	for doc, err := range c.List(ctx) {
		if err != nil {
			return nil, err
		}
		if match(doc) {
			out = append(out, doc)
		}
	}
	return out, nil
}

// FindFirst returns the first document matching the predicate in key
// order, or ErrNotFound if nothing matches.
func (c *Collection[T]) FindFirst(ctx context.Context, match func(*T) bool) (*T, error) {
	for doc, err := range c.List(ctx) {
		if err != nil {
			return nil, err
		}
		if match(doc) {
			return doc, nil
		}
	}
	return nil, ErrNotFound
}

// Count returns the number of documents in the collection.
func (c *Collection[T]) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	count := 0
	err := c.store.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(c.prefix)
		opts.PrefetchValues = false

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek([]byte(c.prefix)); it.ValidForPrefix([]byte(c.prefix)); it.Next() {
			count++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}
