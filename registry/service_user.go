package registry

import (
	"context"

	"github.com/fedcloud/catalog"
	"github.com/fedcloud/catalog/kit/errors"
	"github.com/fedcloud/catalog/kv"
)

// CreateUser stores a record for a new user. An ID and access token are
// generated when unset; a caller-supplied ID must have the user ID shape.
func (s *Service) CreateUser(ctx context.Context, u *catalog.User) error {
	if u == nil || !u.Valid {
		return &errors.Error{
			Code: errors.EInvalid,
			Msg:  "cannot store an invalid user",
			Op:   catalog.OpCreateUser,
		}
	}

	// Work on a copy; a rejected create must leave the caller's record
	// untouched.
	n := *u
	if n.ID == "" {
		n.ID = s.store.IDGen.UserID()
	} else if !catalog.IsUserID(n.ID) {
		return InvalidIDError(n.ID, "user")
	}
	if n.Token == "" {
		n.Token = s.store.TokenGen.Token()
	}

	err := s.store.Update(ctx, func(tx kv.Tx) error {
		return s.store.CreateUser(ctx, tx, n)
	})
	if err != nil {
		return err
	}

	*u = n
	return nil
}

// GetUser returns the user with the given ID, or an invalid user when the ID
// is not known.
func (s *Service) GetUser(ctx context.Context, id string) (catalog.User, error) {
	var user catalog.User
	err := s.store.View(ctx, func(tx kv.Tx) error {
		u, err := s.store.GetUser(ctx, tx, id)
		if err != nil {
			return err
		}
		user = u
		return nil
	})

	if isNotFound(err) {
		return catalog.User{}, nil
	}
	if err != nil {
		return catalog.User{}, err
	}

	return user, nil
}

// FindUserByToken returns the user owning the given access token, or an
// invalid user when the token is not known.
func (s *Service) FindUserByToken(ctx context.Context, token string) (catalog.User, error) {
	var user catalog.User
	err := s.store.View(ctx, func(tx kv.Tx) error {
		u, err := s.store.GetUserByToken(ctx, tx, token)
		if err != nil {
			return err
		}
		user = u
		return nil
	})

	if isNotFound(err) {
		return catalog.User{}, nil
	}
	if err != nil {
		return catalog.User{}, err
	}

	return user, nil
}

// FindUserByGlobusID returns the user with the given Globus identity, or an
// invalid user when the identity is not known.
func (s *Service) FindUserByGlobusID(ctx context.Context, globusID string) (catalog.User, error) {
	var user catalog.User
	err := s.store.View(ctx, func(tx kv.Tx) error {
		u, err := s.store.GetUserByGlobusID(ctx, tx, globusID)
		if err != nil {
			return err
		}
		user = u
		return nil
	})

	if isNotFound(err) {
		return catalog.User{}, nil
	}
	if err != nil {
		return catalog.User{}, err
	}

	return user, nil
}

// UpdateUser replaces the stored record for u.ID with u. Updating a user
// that does not exist is an error; last write wins between concurrent
// updates of the same record.
func (s *Service) UpdateUser(ctx context.Context, u catalog.User) error {
	if !u.Valid {
		return &errors.Error{
			Code: errors.EInvalid,
			Msg:  "cannot store an invalid user",
			Op:   catalog.OpUpdateUser,
		}
	}
	if u.Token == "" {
		return &errors.Error{
			Code: errors.EInvalid,
			Msg:  "user must carry an access token",
			Op:   catalog.OpUpdateUser,
		}
	}

	return s.store.Update(ctx, func(tx kv.Tx) error {
		return s.store.UpdateUser(ctx, tx, u)
	})
}

// DeleteUser removes the user record and the user's VO memberships. The
// membership cleanup is best effort; a partial failure is reported and left
// for a retry.
func (s *Service) DeleteUser(ctx context.Context, id string) error {
	return s.store.Update(ctx, func(tx kv.Tx) error {
		return s.store.DeleteUser(ctx, tx, id)
	})
}

// ListUsers returns all users, reduced to ID, name, and email.
func (s *Service) ListUsers(ctx context.Context) ([]catalog.User, error) {
	var users []catalog.User
	err := s.store.View(ctx, func(tx kv.Tx) error {
		us, err := s.store.ListUsers(ctx, tx)
		if err != nil {
			return err
		}
		users = us
		return nil
	})

	if err != nil {
		return nil, err
	}

	return users, nil
}
