package registry

import (
	"context"
	"encoding/json"
	"strings"

	"go.uber.org/multierr"

	"github.com/fedcloud/catalog"
	"github.com/fedcloud/catalog/kit/errors"
	"github.com/fedcloud/catalog/kv"
)

var (
	voBucket = []byte("vosv1")
	voIndex  = []byte("voindexv1")
)

func voIndexKey(n string) []byte {
	return []byte(strings.TrimSpace(n))
}

func unmarshalVO(v []byte) (catalog.VO, error) {
	vo := catalog.VO{}
	if err := json.Unmarshal(v, &vo); err != nil {
		return catalog.VO{}, ErrCorruptVO(err)
	}
	vo.Valid = true

	return vo, nil
}

func marshalVO(vo catalog.VO) ([]byte, error) {
	v, err := json.Marshal(vo)
	if err != nil {
		return nil, ErrUnprocessableVO(err)
	}

	return v, nil
}

func (s *Store) uniqueVOName(tx kv.Tx, name string) error {
	key := voIndexKey(name)
	if len(key) == 0 {
		return ErrNameisEmpty
	}

	idx, err := tx.Bucket(voIndex)
	if err != nil {
		return errors.ErrInternalServiceError(err)
	}

	_, err = idx.Get(key)
	// if not found then this is _unique_.
	if kv.IsNotFound(err) {
		return nil
	}

	// no error means this is not unique
	if err == nil {
		return VOAlreadyExistsError(name)
	}

	// any other error is some sort of internal server error
	return errors.ErrInternalServiceError(err)
}

func (s *Store) uniqueVOID(tx kv.Tx, id string) error {
	b, err := tx.Bucket(voBucket)
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

// GetVO returns the VO with the given ID.
func (s *Store) GetVO(ctx context.Context, tx kv.Tx, id string) (vo catalog.VO, retErr error) {
	defer func() {
		retErr = errors.ErrInternalServiceError(retErr, errors.WithErrorOp(catalog.OpFindVOByID))
	}()

	b, err := tx.Bucket(voBucket)
	if err != nil {
		return catalog.VO{}, err
	}

	v, err := b.Get([]byte(id))
	if kv.IsNotFound(err) {
		return catalog.VO{}, ErrVONotFound
	}

	if err != nil {
		return catalog.VO{}, err
	}

	return unmarshalVO(v)
}

// GetVOByName returns the VO with the given name.
func (s *Store) GetVOByName(ctx context.Context, tx kv.Tx, name string) (vo catalog.VO, retErr error) {
	defer func() {
		retErr = errors.ErrInternalServiceError(retErr, errors.WithErrorOp(catalog.OpFindVOByName))
	}()

	idx, err := tx.Bucket(voIndex)
	if err != nil {
		return catalog.VO{}, err
	}

	id, err := idx.Get(voIndexKey(name))
	if kv.IsNotFound(err) {
		return catalog.VO{}, VONotFoundByName(name)
	}

	if err != nil {
		return catalog.VO{}, err
	}

	return s.GetVO(ctx, tx, string(id))
}

// ListVOs returns all VOs.
func (s *Store) ListVOs(ctx context.Context, tx kv.Tx) (vos []catalog.VO, retErr error) {
	defer func() {
		retErr = errors.ErrInternalServiceError(retErr, errors.WithErrorOp(catalog.OpListVOs))
	}()

	b, err := tx.Bucket(voBucket)
	if err != nil {
		return nil, err
	}

	cursor, err := b.Cursor()
	if err != nil {
		return nil, err
	}

	vs := []catalog.VO{}
	for k, v := cursor.First(); k != nil; k, v = cursor.Next() {
		vo, err := unmarshalVO(v)
		if err != nil {
			continue
		}

		vs = append(vs, vo)
	}

	return vs, nil
}

// CreateVO stores a record for a new VO.
func (s *Store) CreateVO(ctx context.Context, tx kv.Tx, vo catalog.VO) (retErr error) {
	defer func() {
		retErr = errors.ErrInternalServiceError(retErr, errors.WithErrorOp(catalog.OpCreateVO))
	}()

	if err := s.uniqueVOID(tx, vo.ID); err != nil {
		return err
	}
	if err := s.uniqueVOName(tx, vo.Name); err != nil {
		return err
	}

	v, err := marshalVO(vo)
	if err != nil {
		return err
	}

	idx, err := tx.Bucket(voIndex)
	if err != nil {
		return err
	}
	if err := idx.Put(voIndexKey(vo.Name), []byte(vo.ID)); err != nil {
		return err
	}

	b, err := tx.Bucket(voBucket)
	if err != nil {
		return err
	}

	return b.Put([]byte(vo.ID), v)
}

// DeleteVO removes the VO record, its name index entry, and the VO's
// membership rows.
func (s *Store) DeleteVO(ctx context.Context, tx kv.Tx, id string) (retErr error) {
	defer func() {
		retErr = errors.ErrInternalServiceError(retErr, errors.WithErrorOp(catalog.OpDeleteVO))
	}()

	vo, err := s.GetVO(ctx, tx, id)
	if err != nil {
		return err
	}

	idx, err := tx.Bucket(voIndex)
	if err != nil {
		return err
	}
	if err := idx.Delete(voIndexKey(vo.Name)); err != nil {
		return err
	}

	b, err := tx.Bucket(voBucket)
	if err != nil {
		return err
	}
	if err := b.Delete([]byte(id)); err != nil {
		return err
	}

	// Clean up the VO's memberships. Do not fail fast; try to avoid as
	// much as possible the effects of partial deletion.
	userIDs, err := s.ListUsersForVO(ctx, tx, id)
	if err != nil {
		return err
	}
	var aggErr error
	for _, userID := range userIDs {
		if err := s.DeleteMembership(ctx, tx, userID, id); err != nil {
			aggErr = multierr.Append(aggErr, err)
		}
	}
	return aggErr
}
