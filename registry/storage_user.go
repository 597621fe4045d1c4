package registry

import (
	"context"
	"encoding/json"

	"go.uber.org/multierr"

	"github.com/fedcloud/catalog"
	"github.com/fedcloud/catalog/kit/errors"
	"github.com/fedcloud/catalog/kv"
)

var (
	userBucket = []byte("usersv1")

	// Alternate-key indexes: the backend is keyed by ID, so token and
	// Globus ID lookups go through index buckets mapping the attribute
	// value to the primary ID. The indexes are maintained in the same
	// transaction as every write to the primary bucket.
	userTokenIndex  = []byte("usertokenindexv1")
	userGlobusIndex = []byte("userglobusindexv1")
)

func unmarshalUser(v []byte) (catalog.User, error) {
	u := catalog.User{}
	if err := json.Unmarshal(v, &u); err != nil {
		return catalog.User{}, ErrCorruptUser(err)
	}
	u.Valid = true

	return u, nil
}

func marshalUser(u catalog.User) ([]byte, error) {
	v, err := json.Marshal(u)
	if err != nil {
		return nil, ErrUnprocessableUser(err)
	}

	return v, nil
}

func (s *Store) uniqueUserID(tx kv.Tx, id string) error {
	b, err := tx.Bucket(userBucket)
	if err != nil {
		return errors.ErrInternalServiceError(err)
	}

	_, err = b.Get([]byte(id))
	// if not found then this is _unique_.
	if kv.IsNotFound(err) {
		return nil
	}

	// no error means this is not unique
	if err == nil {
		return UserIDAlreadyExistsError(id)
	}

	// any other error is some sort of internal server error
	return errors.ErrInternalServiceError(err)
}

func (s *Store) uniqueUserToken(tx kv.Tx, token string) error {
	idx, err := tx.Bucket(userTokenIndex)
	if err != nil {
		return errors.ErrInternalServiceError(err)
	}

	_, err = idx.Get([]byte(token))
	if kv.IsNotFound(err) {
		return nil
	}

	if err == nil {
		return ErrUserTokenNotUnique
	}

	return errors.ErrInternalServiceError(err)
}

func (s *Store) uniqueUserGlobusID(tx kv.Tx, globusID string) error {
	idx, err := tx.Bucket(userGlobusIndex)
	if err != nil {
		return errors.ErrInternalServiceError(err)
	}

	_, err = idx.Get([]byte(globusID))
	if kv.IsNotFound(err) {
		return nil
	}

	if err == nil {
		return UserGlobusIDExistsError(globusID)
	}

	return errors.ErrInternalServiceError(err)
}

// GetUser returns the user with the given ID.
func (s *Store) GetUser(ctx context.Context, tx kv.Tx, id string) (user catalog.User, retErr error) {
	defer func() {
		retErr = errors.ErrInternalServiceError(retErr, errors.WithErrorOp(catalog.OpGetUser))
	}()

	b, err := tx.Bucket(userBucket)
	if err != nil {
		return catalog.User{}, err
	}

	v, err := b.Get([]byte(id))
	if kv.IsNotFound(err) {
		return catalog.User{}, ErrUserNotFound
	}

	if err != nil {
		return catalog.User{}, err
	}

	return unmarshalUser(v)
}

// GetUserByToken returns the user owning the given access token, reduced to
// the fields the authorization path needs: ID, token, and admin flag.
func (s *Store) GetUserByToken(ctx context.Context, tx kv.Tx, token string) (user catalog.User, retErr error) {
	defer func() {
		retErr = errors.ErrInternalServiceError(retErr, errors.WithErrorOp(catalog.OpFindUserByToken))
	}()

	u, err := s.getUserByIndex(ctx, tx, userTokenIndex, token)
	if err != nil {
		return catalog.User{}, err
	}

	return catalog.User{Valid: true, ID: u.ID, Token: u.Token, Admin: u.Admin}, nil
}

// GetUserByGlobusID returns the user with the given Globus identity, reduced
// to ID and token.
func (s *Store) GetUserByGlobusID(ctx context.Context, tx kv.Tx, globusID string) (user catalog.User, retErr error) {
	defer func() {
		retErr = errors.ErrInternalServiceError(retErr, errors.WithErrorOp(catalog.OpFindUserByGlobusID))
	}()

	u, err := s.getUserByIndex(ctx, tx, userGlobusIndex, globusID)
	if err != nil {
		return catalog.User{}, err
	}

	return catalog.User{Valid: true, ID: u.ID, Token: u.Token}, nil
}

func (s *Store) getUserByIndex(ctx context.Context, tx kv.Tx, index []byte, key string) (catalog.User, error) {
	idx, err := tx.Bucket(index)
	if err != nil {
		return catalog.User{}, err
	}

	uid, err := idx.Get([]byte(key))
	if kv.IsNotFound(err) {
		return catalog.User{}, ErrUserNotFound
	}

	if err != nil {
		return catalog.User{}, err
	}

	return s.GetUser(ctx, tx, string(uid))
}

// ListUsers returns all users, reduced to ID, name, and email. Tokens and
// Globus identities are deliberately omitted from bulk listing.
func (s *Store) ListUsers(ctx context.Context, tx kv.Tx) (users []catalog.User, retErr error) {
	defer func() {
		retErr = errors.ErrInternalServiceError(retErr, errors.WithErrorOp(catalog.OpListUsers))
	}()

	b, err := tx.Bucket(userBucket)
	if err != nil {
		return nil, err
	}

	cursor, err := b.Cursor()
	if err != nil {
		return nil, err
	}

	us := []catalog.User{}
	for k, v := cursor.First(); k != nil; k, v = cursor.Next() {
		u, err := unmarshalUser(v)
		if err != nil {
			continue
		}

		us = append(us, catalog.User{Valid: true, ID: u.ID, Name: u.Name, Email: u.Email})
	}

	return us, nil
}

// CreateUser stores a record for a new user. The ID and both alternate keys
// must not collide with existing records; collisions reject the operation
// rather than shadow an existing account.
func (s *Store) CreateUser(ctx context.Context, tx kv.Tx, u catalog.User) (retErr error) {
	defer func() {
		retErr = errors.ErrInternalServiceError(retErr, errors.WithErrorOp(catalog.OpCreateUser))
	}()

	if err := s.uniqueUserID(tx, u.ID); err != nil {
		return err
	}
	if err := s.uniqueUserToken(tx, u.Token); err != nil {
		return err
	}
	if u.GlobusID != "" {
		if err := s.uniqueUserGlobusID(tx, u.GlobusID); err != nil {
			return err
		}
	}

	return s.putUser(tx, u)
}

// UpdateUser replaces the stored record for u.ID with u, re-pointing the
// token and Globus ID indexes when those fields change.
func (s *Store) UpdateUser(ctx context.Context, tx kv.Tx, u catalog.User) (retErr error) {
	defer func() {
		retErr = errors.ErrInternalServiceError(retErr, errors.WithErrorOp(catalog.OpUpdateUser))
	}()

	current, err := s.GetUser(ctx, tx, u.ID)
	if err != nil {
		return err
	}

	if u.Token != current.Token {
		if err := s.uniqueUserToken(tx, u.Token); err != nil {
			return err
		}
		idx, err := tx.Bucket(userTokenIndex)
		if err != nil {
			return err
		}
		if err := idx.Delete([]byte(current.Token)); err != nil {
			return err
		}
	}

	if u.GlobusID != current.GlobusID {
		if u.GlobusID != "" {
			if err := s.uniqueUserGlobusID(tx, u.GlobusID); err != nil {
				return err
			}
		}
		if current.GlobusID != "" {
			idx, err := tx.Bucket(userGlobusIndex)
			if err != nil {
				return err
			}
			if err := idx.Delete([]byte(current.GlobusID)); err != nil {
				return err
			}
		}
	}

	return s.putUser(tx, u)
}

// putUser writes the record and points the alternate-key indexes at it.
func (s *Store) putUser(tx kv.Tx, u catalog.User) error {
	v, err := marshalUser(u)
	if err != nil {
		return err
	}

	encodedID := []byte(u.ID)

	idx, err := tx.Bucket(userTokenIndex)
	if err != nil {
		return err
	}
	if err := idx.Put([]byte(u.Token), encodedID); err != nil {
		return err
	}

	if u.GlobusID != "" {
		idx, err := tx.Bucket(userGlobusIndex)
		if err != nil {
			return err
		}
		if err := idx.Put([]byte(u.GlobusID), encodedID); err != nil {
			return err
		}
	}

	b, err := tx.Bucket(userBucket)
	if err != nil {
		return err
	}

	return b.Put(encodedID, v)
}

// DeleteUser removes the user record, its index entries, and the user's
// membership rows.
func (s *Store) DeleteUser(ctx context.Context, tx kv.Tx, id string) (retErr error) {
	defer func() {
		retErr = errors.ErrInternalServiceError(retErr, errors.WithErrorOp(catalog.OpDeleteUser))
	}()

	u, err := s.GetUser(ctx, tx, id)
	if err != nil {
		return err
	}

	idx, err := tx.Bucket(userTokenIndex)
	if err != nil {
		return err
	}
	if err := idx.Delete([]byte(u.Token)); err != nil {
		return err
	}

	if u.GlobusID != "" {
		idx, err := tx.Bucket(userGlobusIndex)
		if err != nil {
			return err
		}
		if err := idx.Delete([]byte(u.GlobusID)); err != nil {
			return err
		}
	}

	b, err := tx.Bucket(userBucket)
	if err != nil {
		return err
	}
	if err := b.Delete([]byte(id)); err != nil {
		return err
	}

	// Clean up the user's memberships. Do not fail fast; try to avoid as
	// much as possible the effects of partial deletion.
	voIDs, err := s.ListVOsForUser(ctx, tx, id)
	if err != nil {
		return err
	}
	var aggErr error
	for _, voID := range voIDs {
		if err := s.DeleteMembership(ctx, tx, id, voID); err != nil {
			aggErr = multierr.Append(aggErr, err)
		}
	}
	return aggErr
}
