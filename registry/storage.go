// Package registry implements the catalog store: CRUD and lookup operations
// over users, VOs, clusters, and application instances, plus the user-VO
// membership relation, on top of a key-value backend.
//
// The package is split in two layers. Store operates within a backend
// transaction and maintains the primary record buckets together with the
// secondary-index buckets (user token, user Globus ID, VO name, cluster
// name). Service wraps Store in View/Update transactions and presents the
// catalog's public contract: lookups return invalid-entity sentinels for
// misses, and only genuine backend failures surface as errors.
package registry

import (
	"context"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/fedcloud/catalog"
	"github.com/fedcloud/catalog/idgen"
	"github.com/fedcloud/catalog/kv"
)

// Store is the transaction-level storage layer of the catalog.
//
// It holds no authoritative in-memory state; every read consults the
// backend. The generators are the only shared mutable in-process resources
// and carry their own synchronization.
type Store struct {
	kvStore kv.Store

	IDGen    catalog.IDGenerator
	TokenGen catalog.TokenGenerator

	clock clock.Clock
}

// StoreOption is an option for a Store.
type StoreOption func(*Store)

// WithIDGenerator overrides the identifier generator.
func WithIDGenerator(gen catalog.IDGenerator) StoreOption {
	return func(s *Store) {
		s.IDGen = gen
	}
}

// WithTokenGenerator overrides the token generator.
func WithTokenGenerator(gen catalog.TokenGenerator) StoreOption {
	return func(s *Store) {
		s.TokenGen = gen
	}
}

// WithClock overrides the clock used to stamp creation times.
func WithClock(c clock.Clock) StoreOption {
	return func(s *Store) {
		s.clock = c
	}
}

// NewStore returns a Store over the provided key-value backend.
func NewStore(kvStore kv.Store, opts ...StoreOption) *Store {
	store := &Store{
		kvStore: kvStore,
	}
	for _, opt := range opts {
		opt(store)
	}
	if store.IDGen == nil || store.TokenGen == nil {
		gen := idgen.NewGenerator()
		if store.IDGen == nil {
			store.IDGen = gen
		}
		if store.TokenGen == nil {
			store.TokenGen = gen
		}
	}
	if store.clock == nil {
		store.clock = clock.New()
	}
	return store
}

// View opens up a transaction that will not write to any data.
func (s *Store) View(ctx context.Context, fn func(kv.Tx) error) error {
	return s.kvStore.View(ctx, fn)
}

// Update opens up a transaction that will mutate data.
func (s *Store) Update(ctx context.Context, fn func(kv.Tx) error) error {
	return s.kvStore.Update(ctx, fn)
}

func (s *Store) now() time.Time {
	return s.clock.Now().UTC()
}
