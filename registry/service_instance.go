package registry

import (
	"context"

	"github.com/fedcloud/catalog"
	"github.com/fedcloud/catalog/kit/errors"
	"github.com/fedcloud/catalog/kv"
)

// CreateApplicationInstance stores a record for a new instance, assigning an
// ID when unset and stamping the creation time. The owning VO and the
// target cluster must exist.
func (s *Service) CreateApplicationInstance(ctx context.Context, inst *catalog.ApplicationInstance) error {
	if inst == nil || !inst.Valid {
		return &errors.Error{
			Code: errors.EInvalid,
			Msg:  "cannot store an invalid application instance",
			Op:   catalog.OpCreateApplicationInstance,
		}
	}

	// Work on a copy; a rejected create must leave the caller's record
	// untouched.
	n := *inst
	if n.ID == "" {
		n.ID = s.store.IDGen.InstanceID()
	} else if !catalog.IsInstanceID(n.ID) {
		return InvalidIDError(n.ID, "instance")
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = s.store.now()
	}

	err := s.store.Update(ctx, func(tx kv.Tx) error {
		if _, err := s.store.GetVO(ctx, tx, n.OwningVO); err != nil {
			return err
		}
		if _, err := s.store.GetCluster(ctx, tx, n.Cluster); err != nil {
			return err
		}
		return s.store.CreateInstance(ctx, tx, n)
	})
	if err != nil {
		return err
	}

	*inst = n
	return nil
}

// DeleteApplicationInstance removes the instance record and its stored
// configuration.
func (s *Service) DeleteApplicationInstance(ctx context.Context, id string) error {
	return s.store.Update(ctx, func(tx kv.Tx) error {
		return s.store.DeleteInstance(ctx, tx, id)
	})
}

// GetApplicationInstance returns the instance with the given ID, or an
// invalid instance when the ID is not known. The configuration is never
// populated here; fetch it with GetApplicationInstanceConfig.
func (s *Service) GetApplicationInstance(ctx context.Context, id string) (catalog.ApplicationInstance, error) {
	var inst catalog.ApplicationInstance
	err := s.store.View(ctx, func(tx kv.Tx) error {
		i, err := s.store.GetInstance(ctx, tx, id)
		if err != nil {
			return err
		}
		inst = i
		return nil
	})

	if isNotFound(err) {
		return catalog.ApplicationInstance{}, nil
	}
	if err != nil {
		return catalog.ApplicationInstance{}, err
	}

	return inst, nil
}

// GetApplicationInstanceConfig returns the configuration for the instance
// with the given ID, or the empty string when the ID is not known.
func (s *Service) GetApplicationInstanceConfig(ctx context.Context, id string) (string, error) {
	var config string
	err := s.store.View(ctx, func(tx kv.Tx) error {
		c, err := s.store.GetInstanceConfig(ctx, tx, id)
		if err != nil {
			return err
		}
		config = c
		return nil
	})

	if err != nil {
		return "", err
	}

	return config, nil
}

// ListApplicationInstances returns all instances, without configurations.
func (s *Service) ListApplicationInstances(ctx context.Context) ([]catalog.ApplicationInstance, error) {
	var insts []catalog.ApplicationInstance
	err := s.store.View(ctx, func(tx kv.Tx) error {
		is, err := s.store.ListInstances(ctx, tx)
		if err != nil {
			return err
		}
		insts = is
		return nil
	})

	if err != nil {
		return nil, err
	}

	return insts, nil
}
