package registry

import (
	"context"

	"github.com/fedcloud/catalog"
	"github.com/fedcloud/catalog/kit/errors"
	"github.com/fedcloud/catalog/kv"
)

// CreateCluster stores a record for a new cluster, assigning an ID when
// unset. The owning VO must exist. When the record carries no configuration
// reference, the deterministic blob path is attached.
func (s *Service) CreateCluster(ctx context.Context, c *catalog.Cluster) error {
	if c == nil || !c.Valid {
		return &errors.Error{
			Code: errors.EInvalid,
			Msg:  "cannot store an invalid cluster",
			Op:   catalog.OpCreateCluster,
		}
	}

	// Work on a copy; a rejected create must leave the caller's record
	// untouched.
	n := *c
	if n.ID == "" {
		n.ID = s.store.IDGen.ClusterID()
	} else if !catalog.IsClusterID(n.ID) {
		return InvalidIDError(n.ID, "cluster")
	}
	if n.Config == "" {
		n.Config = s.configs.ConfigPath(n.ID)
	}

	err := s.store.Update(ctx, func(tx kv.Tx) error {
		if _, err := s.store.GetVO(ctx, tx, n.OwningVO); err != nil {
			return err
		}
		return s.store.CreateCluster(ctx, tx, n)
	})
	if err != nil {
		return err
	}

	*c = n
	return nil
}

// DeleteCluster removes the cluster and its externally stored configuration.
// Removal is rejected while application instances still run on the cluster.
// The record and the blob are removed in separate steps; when the blob
// removal fails the record is already gone and the error reports the
// partial completion.
func (s *Service) DeleteCluster(ctx context.Context, id string) error {
	err := s.store.Update(ctx, func(tx kv.Tx) error {
		c, err := s.store.GetCluster(ctx, tx, id)
		if err != nil {
			return err
		}

		insts, err := s.store.ListInstances(ctx, tx)
		if err != nil {
			return err
		}
		for _, inst := range insts {
			if inst.Cluster == id {
				return ClusterHasInstancesError(c.Name)
			}
		}

		return s.store.DeleteCluster(ctx, tx, id)
	})
	if err != nil {
		return err
	}

	if err := s.configs.RemoveConfig(id); err != nil {
		return &errors.Error{
			Code: errors.EInternal,
			Msg:  "cluster removed but its configuration was not",
			Op:   catalog.OpDeleteCluster,
			Err:  err,
		}
	}
	return nil
}

// ListClusters returns all clusters.
func (s *Service) ListClusters(ctx context.Context) ([]catalog.Cluster, error) {
	var clusters []catalog.Cluster
	err := s.store.View(ctx, func(tx kv.Tx) error {
		cs, err := s.store.ListClusters(ctx, tx)
		if err != nil {
			return err
		}
		clusters = cs
		return nil
	})

	if err != nil {
		return nil, err
	}

	return clusters, nil
}

// FindClusterByID returns the cluster with the given ID, or an invalid
// cluster when the ID is not known.
func (s *Service) FindClusterByID(ctx context.Context, id string) (catalog.Cluster, error) {
	var cluster catalog.Cluster
	err := s.store.View(ctx, func(tx kv.Tx) error {
		c, err := s.store.GetCluster(ctx, tx, id)
		if err != nil {
			return err
		}
		cluster = c
		return nil
	})

	if isNotFound(err) {
		return catalog.Cluster{}, nil
	}
	if err != nil {
		return catalog.Cluster{}, err
	}

	return cluster, nil
}

// FindClusterByName returns the cluster with the given name, or an invalid
// cluster when the name is not known.
func (s *Service) FindClusterByName(ctx context.Context, name string) (catalog.Cluster, error) {
	var cluster catalog.Cluster
	err := s.store.View(ctx, func(tx kv.Tx) error {
		c, err := s.store.GetClusterByName(ctx, tx, name)
		if err != nil {
			return err
		}
		cluster = c
		return nil
	})

	if isNotFound(err) {
		return catalog.Cluster{}, nil
	}
	if err != nil {
		return catalog.Cluster{}, err
	}

	return cluster, nil
}

// GetCluster returns the cluster matching the given ID or name. ID-shaped
// input goes straight to the primary record; everything else is a name
// lookup.
func (s *Service) GetCluster(ctx context.Context, idOrName string) (catalog.Cluster, error) {
	if catalog.IsClusterID(idOrName) {
		return s.FindClusterByID(ctx, idOrName)
	}
	return s.FindClusterByName(ctx, idOrName)
}

// ConfigPathForCluster returns the path under which the cluster's
// configuration blob is stored. Pure computation from the ID; no I/O.
func (s *Service) ConfigPathForCluster(id string) string {
	return s.configs.ConfigPath(id)
}
