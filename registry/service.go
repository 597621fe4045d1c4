package registry

import (
	"github.com/fedcloud/catalog"
	"github.com/fedcloud/catalog/kit/errors"
)

var (
	_ catalog.UserService                = (*Service)(nil)
	_ catalog.MembershipService          = (*Service)(nil)
	_ catalog.VOService                  = (*Service)(nil)
	_ catalog.ClusterService             = (*Service)(nil)
	_ catalog.ApplicationInstanceService = (*Service)(nil)
)

// Service is the public face of the catalog store.
//
// Lookups honor the upward contract: a miss yields the zero (invalid) entity
// or an empty collection with a nil error, and a non-nil error always means
// the backend call itself failed. Mutations return coded errors; a conflict
// on an alternate key rejects the write rather than shadowing an existing
// record.
//
// Multi-step mutations run inside a single backend transaction where the
// kv.Store provides one. Against a backend without cross-key transactions
// partial completion is possible; the catalog reports the failure and leaves
// cleanup to a retry rather than attempting rollback.
type Service struct {
	store   *Store
	configs catalog.ClusterConfigStore
}

// NewService returns a Service over st, keeping cluster configuration blobs
// in the provided external store.
func NewService(st *Store, configs catalog.ClusterConfigStore) *Service {
	return &Service{
		store:   st,
		configs: configs,
	}
}

// isNotFound reports whether err denotes a missing record rather than a
// failed backend call.
func isNotFound(err error) bool {
	return errors.ErrorCode(err) == errors.ENotFound
}
