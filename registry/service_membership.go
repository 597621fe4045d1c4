package registry

import (
	"context"

	"github.com/fedcloud/catalog/kv"
)

// AddUserToVO records that the user belongs to the VO. Both the user and the
// VO must exist.
func (s *Service) AddUserToVO(ctx context.Context, userID, voID string) error {
	return s.store.Update(ctx, func(tx kv.Tx) error {
		return s.store.AddMembership(ctx, tx, userID, voID)
	})
}

// RemoveUserFromVO removes the (user, VO) pair. Removing a membership that
// does not exist is an error.
func (s *Service) RemoveUserFromVO(ctx context.Context, userID, voID string) error {
	return s.store.Update(ctx, func(tx kv.Tx) error {
		return s.store.DeleteMembership(ctx, tx, userID, voID)
	})
}

// GetUserVOMemberships returns the IDs of the VOs the user belongs to. An
// unknown user simply has no memberships.
func (s *Service) GetUserVOMemberships(ctx context.Context, userID string) ([]string, error) {
	var voIDs []string
	err := s.store.View(ctx, func(tx kv.Tx) error {
		ids, err := s.store.ListVOsForUser(ctx, tx, userID)
		if err != nil {
			return err
		}
		voIDs = ids
		return nil
	})

	if err != nil {
		return nil, err
	}

	return voIDs, nil
}

// GetMembersOfVO returns the IDs of the users belonging to the VO. An
// unknown VO simply has no members.
func (s *Service) GetMembersOfVO(ctx context.Context, voID string) ([]string, error) {
	var userIDs []string
	err := s.store.View(ctx, func(tx kv.Tx) error {
		ids, err := s.store.ListUsersForVO(ctx, tx, voID)
		if err != nil {
			return err
		}
		userIDs = ids
		return nil
	})

	if err != nil {
		return nil, err
	}

	return userIDs, nil
}

// UserInVO reports whether the user belongs to the VO. Unknown IDs on either
// side report false, never an error.
func (s *Service) UserInVO(ctx context.Context, userID, voID string) (bool, error) {
	var in bool
	err := s.store.View(ctx, func(tx kv.Tx) error {
		ok, err := s.store.HasMembership(ctx, tx, userID, voID)
		if err != nil {
			return err
		}
		in = ok
		return nil
	})

	if err != nil {
		return false, err
	}

	return in, nil
}
