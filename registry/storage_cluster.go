package registry

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/fedcloud/catalog"
	"github.com/fedcloud/catalog/kit/errors"
	"github.com/fedcloud/catalog/kv"
)

var (
	clusterBucket = []byte("clustersv1")
	clusterIndex  = []byte("clusterindexv1")
)

func clusterIndexKey(n string) []byte {
	return []byte(strings.TrimSpace(n))
}

func unmarshalCluster(v []byte) (catalog.Cluster, error) {
	c := catalog.Cluster{}
	if err := json.Unmarshal(v, &c); err != nil {
		return catalog.Cluster{}, ErrCorruptCluster(err)
	}
	c.Valid = true

	return c, nil
}

func marshalCluster(c catalog.Cluster) ([]byte, error) {
	v, err := json.Marshal(c)
	if err != nil {
		return nil, ErrUnprocessableCluster(err)
	}

	return v, nil
}

func (s *Store) uniqueClusterName(tx kv.Tx, name string) error {
	key := clusterIndexKey(name)
	if len(key) == 0 {
		return ErrNameisEmpty
	}

	idx, err := tx.Bucket(clusterIndex)
	if err != nil {
		return errors.ErrInternalServiceError(err)
	}

	_, err = idx.Get(key)
	if kv.IsNotFound(err) {
		return nil
	}

	if err == nil {
		return ClusterAlreadyExistsError(name)
	}

	return errors.ErrInternalServiceError(err)
}

func (s *Store) uniqueClusterID(tx kv.Tx, id string) error {
	b, err := tx.Bucket(clusterBucket)
	if err != nil {
		return errors.ErrInternalServiceError(err)
	}

	_, err = b.Get([]byte(id))
	if kv.IsNotFound(err) {
		return nil
	}

	if err == nil {
		return NotUniqueIDError
	}

	return errors.ErrInternalServiceError(err)
}

// GetCluster returns the cluster with the given ID.
func (s *Store) GetCluster(ctx context.Context, tx kv.Tx, id string) (cluster catalog.Cluster, retErr error) {
	defer func() {
		retErr = errors.ErrInternalServiceError(retErr, errors.WithErrorOp(catalog.OpFindClusterByID))
	}()

	b, err := tx.Bucket(clusterBucket)
	if err != nil {
		return catalog.Cluster{}, err
	}

	v, err := b.Get([]byte(id))
	if kv.IsNotFound(err) {
		return catalog.Cluster{}, ErrClusterNotFound
	}

	if err != nil {
		return catalog.Cluster{}, err
	}

	return unmarshalCluster(v)
}

// GetClusterByName returns the cluster with the given name.
func (s *Store) GetClusterByName(ctx context.Context, tx kv.Tx, name string) (cluster catalog.Cluster, retErr error) {
	defer func() {
		retErr = errors.ErrInternalServiceError(retErr, errors.WithErrorOp(catalog.OpFindClusterByName))
	}()

	idx, err := tx.Bucket(clusterIndex)
	if err != nil {
		return catalog.Cluster{}, err
	}

	id, err := idx.Get(clusterIndexKey(name))
	if kv.IsNotFound(err) {
		return catalog.Cluster{}, ClusterNotFoundByName(name)
	}

	if err != nil {
		return catalog.Cluster{}, err
	}

	return s.GetCluster(ctx, tx, string(id))
}

// ListClusters returns all clusters.
func (s *Store) ListClusters(ctx context.Context, tx kv.Tx) (clusters []catalog.Cluster, retErr error) {
	defer func() {
		retErr = errors.ErrInternalServiceError(retErr, errors.WithErrorOp(catalog.OpListClusters))
	}()

	b, err := tx.Bucket(clusterBucket)
	if err != nil {
		return nil, err
	}

	cursor, err := b.Cursor()
	if err != nil {
		return nil, err
	}

	cs := []catalog.Cluster{}
	for k, v := cursor.First(); k != nil; k, v = cursor.Next() {
		c, err := unmarshalCluster(v)
		if err != nil {
			continue
		}

		cs = append(cs, c)
	}

	return cs, nil
}

// CreateCluster stores a record for a new cluster.
func (s *Store) CreateCluster(ctx context.Context, tx kv.Tx, c catalog.Cluster) (retErr error) {
	defer func() {
		retErr = errors.ErrInternalServiceError(retErr, errors.WithErrorOp(catalog.OpCreateCluster))
	}()

	if err := s.uniqueClusterID(tx, c.ID); err != nil {
		return err
	}
	if err := s.uniqueClusterName(tx, c.Name); err != nil {
		return err
	}

	v, err := marshalCluster(c)
	if err != nil {
		return err
	}

	idx, err := tx.Bucket(clusterIndex)
	if err != nil {
		return err
	}
	if err := idx.Put(clusterIndexKey(c.Name), []byte(c.ID)); err != nil {
		return err
	}

	b, err := tx.Bucket(clusterBucket)
	if err != nil {
		return err
	}

	return b.Put([]byte(c.ID), v)
}

// DeleteCluster removes the cluster record and its name index entry.
// The externally stored configuration blob is the Service's concern.
func (s *Store) DeleteCluster(ctx context.Context, tx kv.Tx, id string) (retErr error) {
	defer func() {
		retErr = errors.ErrInternalServiceError(retErr, errors.WithErrorOp(catalog.OpDeleteCluster))
	}()

	c, err := s.GetCluster(ctx, tx, id)
	if err != nil {
		return err
	}

	idx, err := tx.Bucket(clusterIndex)
	if err != nil {
		return err
	}
	if err := idx.Delete(clusterIndexKey(c.Name)); err != nil {
		return err
	}

	b, err := tx.Bucket(clusterBucket)
	if err != nil {
		return err
	}

	return b.Delete([]byte(id))
}
