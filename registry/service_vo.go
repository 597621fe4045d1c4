package registry

import (
	"context"

	"github.com/fedcloud/catalog"
	"github.com/fedcloud/catalog/kit/errors"
	"github.com/fedcloud/catalog/kv"
)

// CreateVO stores a record for a new VO, assigning an ID when unset.
func (s *Service) CreateVO(ctx context.Context, vo *catalog.VO) error {
	if vo == nil || !vo.Valid {
		return &errors.Error{
			Code: errors.EInvalid,
			Msg:  "cannot store an invalid VO",
			Op:   catalog.OpCreateVO,
		}
	}

	// Work on a copy; a rejected create must leave the caller's record
	// untouched.
	n := *vo
	if n.ID == "" {
		n.ID = s.store.IDGen.VOID()
	} else if !catalog.IsVOID(n.ID) {
		return InvalidIDError(n.ID, "VO")
	}

	err := s.store.Update(ctx, func(tx kv.Tx) error {
		return s.store.CreateVO(ctx, tx, n)
	})
	if err != nil {
		return err
	}

	*vo = n
	return nil
}

// DeleteVO removes the VO and cascades its membership rows. Removal is
// rejected while clusters or application instances still belong to the VO;
// tearing those down is the caller's decision.
func (s *Service) DeleteVO(ctx context.Context, id string) error {
	return s.store.Update(ctx, func(tx kv.Tx) error {
		vo, err := s.store.GetVO(ctx, tx, id)
		if err != nil {
			return err
		}

		clusters, err := s.store.ListClusters(ctx, tx)
		if err != nil {
			return err
		}
		for _, c := range clusters {
			if c.OwningVO == id {
				return VOHasDependentsError(vo.Name)
			}
		}

		insts, err := s.store.ListInstances(ctx, tx)
		if err != nil {
			return err
		}
		for _, inst := range insts {
			if inst.OwningVO == id {
				return VOHasDependentsError(vo.Name)
			}
		}

		return s.store.DeleteVO(ctx, tx, id)
	})
}

// ListVOs returns all VOs.
func (s *Service) ListVOs(ctx context.Context) ([]catalog.VO, error) {
	var vos []catalog.VO
	err := s.store.View(ctx, func(tx kv.Tx) error {
		vs, err := s.store.ListVOs(ctx, tx)
		if err != nil {
			return err
		}
		vos = vs
		return nil
	})

	if err != nil {
		return nil, err
	}

	return vos, nil
}

// FindVOByID returns the VO with the given ID, or an invalid VO when the ID
// is not known.
func (s *Service) FindVOByID(ctx context.Context, id string) (catalog.VO, error) {
	var vo catalog.VO
	err := s.store.View(ctx, func(tx kv.Tx) error {
		v, err := s.store.GetVO(ctx, tx, id)
		if err != nil {
			return err
		}
		vo = v
		return nil
	})

	if isNotFound(err) {
		return catalog.VO{}, nil
	}
	if err != nil {
		return catalog.VO{}, err
	}

	return vo, nil
}

// FindVOByName returns the VO with the given name, or an invalid VO when the
// name is not known.
func (s *Service) FindVOByName(ctx context.Context, name string) (catalog.VO, error) {
	var vo catalog.VO
	err := s.store.View(ctx, func(tx kv.Tx) error {
		v, err := s.store.GetVOByName(ctx, tx, name)
		if err != nil {
			return err
		}
		vo = v
		return nil
	})

	if isNotFound(err) {
		return catalog.VO{}, nil
	}
	if err != nil {
		return catalog.VO{}, err
	}

	return vo, nil
}

// GetVO returns the VO matching the given ID or name. ID-shaped input goes
// straight to the primary record; everything else is a name lookup.
func (s *Service) GetVO(ctx context.Context, idOrName string) (catalog.VO, error) {
	if catalog.IsVOID(idOrName) {
		return s.FindVOByID(ctx, idOrName)
	}
	return s.FindVOByName(ctx, idOrName)
}
