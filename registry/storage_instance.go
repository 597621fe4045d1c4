package registry

import (
	"context"
	"encoding/json"

	"github.com/fedcloud/catalog"
	"github.com/fedcloud/catalog/kit/errors"
	"github.com/fedcloud/catalog/kv"
)

var (
	instanceBucket = []byte("instancesv1")

	// The configuration payload lives in its own bucket, keyed by the same
	// instance ID. Splitting it from the record keeps the primary fetch
	// small when only metadata is needed; reading the config costs a
	// second get.
	instanceConfigBucket = []byte("instanceconfigsv1")
)

func unmarshalInstance(v []byte) (catalog.ApplicationInstance, error) {
	inst := catalog.ApplicationInstance{}
	if err := json.Unmarshal(v, &inst); err != nil {
		return catalog.ApplicationInstance{}, ErrCorruptInstance(err)
	}
	inst.Valid = true

	return inst, nil
}

func marshalInstance(inst catalog.ApplicationInstance) ([]byte, error) {
	// The record is marshalled without its configuration; see the bucket
	// comment above.
	v, err := json.Marshal(inst)
	if err != nil {
		return nil, ErrUnprocessableInstance(err)
	}

	return v, nil
}

func (s *Store) uniqueInstanceID(tx kv.Tx, id string) error {
	b, err := tx.Bucket(instanceBucket)
	if err != nil {
		return errors.ErrInternalServiceError(err)
	}

	_, err = b.Get([]byte(id))
	if kv.IsNotFound(err) {
		return nil
	}

	if err == nil {
		return InstanceIDAlreadyExistsError(id)
	}

	return errors.ErrInternalServiceError(err)
}

// GetInstance returns the application instance with the given ID. The
// returned record's Config is unset; use GetInstanceConfig.
func (s *Store) GetInstance(ctx context.Context, tx kv.Tx, id string) (inst catalog.ApplicationInstance, retErr error) {
	defer func() {
		retErr = errors.ErrInternalServiceError(retErr, errors.WithErrorOp(catalog.OpGetApplicationInstance))
	}()

	b, err := tx.Bucket(instanceBucket)
	if err != nil {
		return catalog.ApplicationInstance{}, err
	}

	v, err := b.Get([]byte(id))
	if kv.IsNotFound(err) {
		return catalog.ApplicationInstance{}, ErrInstanceNotFound
	}

	if err != nil {
		return catalog.ApplicationInstance{}, err
	}

	return unmarshalInstance(v)
}

// GetInstanceConfig returns the configuration for the instance with the
// given ID, or the empty string when the ID is unknown.
func (s *Store) GetInstanceConfig(ctx context.Context, tx kv.Tx, id string) (config string, retErr error) {
	defer func() {
		retErr = errors.ErrInternalServiceError(retErr, errors.WithErrorOp(catalog.OpGetApplicationInstanceConfig))
	}()

	b, err := tx.Bucket(instanceConfigBucket)
	if err != nil {
		return "", err
	}

	v, err := b.Get([]byte(id))
	if kv.IsNotFound(err) {
		return "", nil
	}

	if err != nil {
		return "", err
	}

	return string(v), nil
}

// ListInstances returns all application instances, without configurations.
func (s *Store) ListInstances(ctx context.Context, tx kv.Tx) (insts []catalog.ApplicationInstance, retErr error) {
	defer func() {
		retErr = errors.ErrInternalServiceError(retErr, errors.WithErrorOp(catalog.OpListApplicationInstances))
	}()

	b, err := tx.Bucket(instanceBucket)
	if err != nil {
		return nil, err
	}

	cursor, err := b.Cursor()
	if err != nil {
		return nil, err
	}

	is := []catalog.ApplicationInstance{}
	for k, v := cursor.First(); k != nil; k, v = cursor.Next() {
		inst, err := unmarshalInstance(v)
		if err != nil {
			continue
		}

		is = append(is, inst)
	}

	return is, nil
}

// CreateInstance stores a record for a new application instance and its
// configuration payload.
func (s *Store) CreateInstance(ctx context.Context, tx kv.Tx, inst catalog.ApplicationInstance) (retErr error) {
	defer func() {
		retErr = errors.ErrInternalServiceError(retErr, errors.WithErrorOp(catalog.OpCreateApplicationInstance))
	}()

	if err := s.uniqueInstanceID(tx, inst.ID); err != nil {
		return err
	}

	v, err := marshalInstance(inst)
	if err != nil {
		return err
	}

	b, err := tx.Bucket(instanceBucket)
	if err != nil {
		return err
	}
	if err := b.Put([]byte(inst.ID), v); err != nil {
		return err
	}

	if inst.Config == "" {
		return nil
	}

	cb, err := tx.Bucket(instanceConfigBucket)
	if err != nil {
		return err
	}
	return cb.Put([]byte(inst.ID), []byte(inst.Config))
}

// DeleteInstance removes the instance record and its configuration.
func (s *Store) DeleteInstance(ctx context.Context, tx kv.Tx, id string) (retErr error) {
	defer func() {
		retErr = errors.ErrInternalServiceError(retErr, errors.WithErrorOp(catalog.OpDeleteApplicationInstance))
	}()

	if _, err := s.GetInstance(ctx, tx, id); err != nil {
		return err
	}

	b, err := tx.Bucket(instanceBucket)
	if err != nil {
		return err
	}
	if err := b.Delete([]byte(id)); err != nil {
		return err
	}

	cb, err := tx.Bucket(instanceConfigBucket)
	if err != nil {
		return err
	}
	return cb.Delete([]byte(id))
}
