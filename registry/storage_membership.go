package registry

import (
	"bytes"
	"context"

	"github.com/fedcloud/catalog"
	"github.com/fedcloud/catalog/kit/errors"
	"github.com/fedcloud/catalog/kv"
)

// Membership rows are stored twice, once per lookup direction, so that both
// "which VOs does this user belong to" and "who are the members of this VO"
// are prefix seeks over an index rather than scans. IDs never contain the
// separator, so composite keys parse unambiguously.
var (
	membershipBucket   = []byte("membershipsv1")       // userID/voID -> voID
	membershipVOBucket = []byte("membershipvoindexv1") // voID/userID -> userID
)

const membershipKeySep = "/"

func membershipKey(userID, voID string) []byte {
	return []byte(userID + membershipKeySep + voID)
}

func membershipVOKey(voID, userID string) []byte {
	return []byte(voID + membershipKeySep + userID)
}

// AddMembership records that the user belongs to the VO. Both endpoints
// must denote existing records at creation time.
func (s *Store) AddMembership(ctx context.Context, tx kv.Tx, userID, voID string) (retErr error) {
	defer func() {
		retErr = errors.ErrInternalServiceError(retErr, errors.WithErrorOp(catalog.OpAddUserToVO))
	}()

	if _, err := s.GetUser(ctx, tx, userID); err != nil {
		return err
	}
	if _, err := s.GetVO(ctx, tx, voID); err != nil {
		return err
	}

	b, err := tx.Bucket(membershipBucket)
	if err != nil {
		return err
	}

	if _, err := b.Get(membershipKey(userID, voID)); err == nil {
		return ErrMembershipExists
	} else if !kv.IsNotFound(err) {
		return err
	}

	if err := b.Put(membershipKey(userID, voID), []byte(voID)); err != nil {
		return err
	}

	vb, err := tx.Bucket(membershipVOBucket)
	if err != nil {
		return err
	}
	return vb.Put(membershipVOKey(voID, userID), []byte(userID))
}

// DeleteMembership removes the (user, VO) pair from both directions.
func (s *Store) DeleteMembership(ctx context.Context, tx kv.Tx, userID, voID string) (retErr error) {
	defer func() {
		retErr = errors.ErrInternalServiceError(retErr, errors.WithErrorOp(catalog.OpRemoveUserFromVO))
	}()

	b, err := tx.Bucket(membershipBucket)
	if err != nil {
		return err
	}

	if _, err := b.Get(membershipKey(userID, voID)); kv.IsNotFound(err) {
		return ErrMembershipNotFound
	} else if err != nil {
		return err
	}

	if err := b.Delete(membershipKey(userID, voID)); err != nil {
		return err
	}

	vb, err := tx.Bucket(membershipVOBucket)
	if err != nil {
		return err
	}
	return vb.Delete(membershipVOKey(voID, userID))
}

// HasMembership reports whether the user belongs to the VO.
func (s *Store) HasMembership(ctx context.Context, tx kv.Tx, userID, voID string) (ok bool, retErr error) {
	defer func() {
		retErr = errors.ErrInternalServiceError(retErr, errors.WithErrorOp(catalog.OpUserInVO))
	}()

	b, err := tx.Bucket(membershipBucket)
	if err != nil {
		return false, err
	}

	_, err = b.Get(membershipKey(userID, voID))
	if kv.IsNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// ListVOsForUser returns the IDs of the VOs the user belongs to.
func (s *Store) ListVOsForUser(ctx context.Context, tx kv.Tx, userID string) (voIDs []string, retErr error) {
	defer func() {
		retErr = errors.ErrInternalServiceError(retErr, errors.WithErrorOp(catalog.OpGetUserVOMemberships))
	}()

	return s.listMembershipValues(tx, membershipBucket, userID)
}

// ListUsersForVO returns the IDs of the users belonging to the VO.
func (s *Store) ListUsersForVO(ctx context.Context, tx kv.Tx, voID string) (userIDs []string, retErr error) {
	defer func() {
		retErr = errors.ErrInternalServiceError(retErr, errors.WithErrorOp(catalog.OpGetMembersOfVO))
	}()

	return s.listMembershipValues(tx, membershipVOBucket, voID)
}

func (s *Store) listMembershipValues(tx kv.Tx, bucket []byte, keyID string) ([]string, error) {
	b, err := tx.Bucket(bucket)
	if err != nil {
		return nil, err
	}

	cursor, err := b.Cursor()
	if err != nil {
		return nil, err
	}

	prefix := []byte(keyID + membershipKeySep)
	ids := []string{}
	for k, v := cursor.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, v = cursor.Next() {
		ids = append(ids, string(v))
	}

	return ids, nil
}
