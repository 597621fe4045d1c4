package registry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fedcloud/catalog"
	"github.com/fedcloud/catalog/kit/errors"
)

func TestMembershipSymmetry(t *testing.T) {
	svc, _ := initService(t)
	ctx := context.Background()

	u := mustCreateUser(t, svc, "alice")
	vo1 := mustCreateVO(t, svc, "atlas")
	vo2 := mustCreateVO(t, svc, "cms")

	require.NoError(t, svc.AddUserToVO(ctx, u.ID, vo1.ID))
	require.NoError(t, svc.AddUserToVO(ctx, u.ID, vo2.ID))

	voIDs, err := svc.GetUserVOMemberships(ctx, u.ID)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{vo1.ID, vo2.ID}, voIDs)

	// Both directions of the relation must agree.
	for _, voID := range voIDs {
		members, err := svc.GetMembersOfVO(ctx, voID)
		require.NoError(t, err)
		require.Contains(t, members, u.ID)

		in, err := svc.UserInVO(ctx, u.ID, voID)
		require.NoError(t, err)
		require.True(t, in)
	}
}

func TestAddUserToVOIsIdempotentConflict(t *testing.T) {
	svc, _ := initService(t)
	ctx := context.Background()

	u := mustCreateUser(t, svc, "bob")
	vo := mustCreateVO(t, svc, "dune")

	require.NoError(t, svc.AddUserToVO(ctx, u.ID, vo.ID))

	err := svc.AddUserToVO(ctx, u.ID, vo.ID)
	require.Error(t, err)
	require.Equal(t, errors.EConflict, errors.ErrorCode(err))

	// The duplicate attempt must not disturb the relation.
	voIDs, err := svc.GetUserVOMemberships(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, []string{vo.ID}, voIDs)
}

func TestAddUserToVORequiresBothSides(t *testing.T) {
	svc, _ := initService(t)
	ctx := context.Background()

	u := mustCreateUser(t, svc, "carol")
	vo := mustCreateVO(t, svc, "icecube")

	err := svc.AddUserToVO(ctx, catalog.UserIDPrefix+"deadbeef-0000-0000-0000-000000000000", vo.ID)
	require.Error(t, err)
	require.Equal(t, errors.ENotFound, errors.ErrorCode(err))

	err = svc.AddUserToVO(ctx, u.ID, catalog.VOIDPrefix+"deadbeef-0000-0000-0000-000000000000")
	require.Error(t, err)
	require.Equal(t, errors.ENotFound, errors.ErrorCode(err))
}

func TestRemoveUserFromVOReversesAllViews(t *testing.T) {
	svc, _ := initService(t)
	ctx := context.Background()

	u := mustCreateUser(t, svc, "dave")
	vo := mustCreateVO(t, svc, "ligo")
	require.NoError(t, svc.AddUserToVO(ctx, u.ID, vo.ID))

	require.NoError(t, svc.RemoveUserFromVO(ctx, u.ID, vo.ID))

	in, err := svc.UserInVO(ctx, u.ID, vo.ID)
	require.NoError(t, err)
	require.False(t, in)

	voIDs, err := svc.GetUserVOMemberships(ctx, u.ID)
	require.NoError(t, err)
	require.Empty(t, voIDs)

	members, err := svc.GetMembersOfVO(ctx, vo.ID)
	require.NoError(t, err)
	require.Empty(t, members)
}

func TestRemoveUserFromVOAbsentMembership(t *testing.T) {
	svc, _ := initService(t)
	ctx := context.Background()

	u := mustCreateUser(t, svc, "eve")
	vo := mustCreateVO(t, svc, "belle")

	err := svc.RemoveUserFromVO(ctx, u.ID, vo.ID)
	require.Error(t, err)
	require.Equal(t, errors.ENotFound, errors.ErrorCode(err))
}

func TestUserInVOUnknownIDs(t *testing.T) {
	svc, _ := initService(t)
	ctx := context.Background()

	in, err := svc.UserInVO(ctx,
		catalog.UserIDPrefix+"deadbeef-0000-0000-0000-000000000000",
		catalog.VOIDPrefix+"deadbeef-0000-0000-0000-000000000000")
	require.NoError(t, err)
	require.False(t, in)

	voIDs, err := svc.GetUserVOMemberships(ctx, catalog.UserIDPrefix+"deadbeef-0000-0000-0000-000000000000")
	require.NoError(t, err)
	require.Empty(t, voIDs)
}

func TestMembershipsAreScopedToTheirUser(t *testing.T) {
	svc, _ := initService(t)
	ctx := context.Background()

	u1 := mustCreateUser(t, svc, "frank")
	u2 := mustCreateUser(t, svc, "gina")
	vo1 := mustCreateVO(t, svc, "xenon")
	vo2 := mustCreateVO(t, svc, "nova")

	require.NoError(t, svc.AddUserToVO(ctx, u1.ID, vo1.ID))
	require.NoError(t, svc.AddUserToVO(ctx, u2.ID, vo2.ID))

	voIDs, err := svc.GetUserVOMemberships(ctx, u1.ID)
	require.NoError(t, err)
	require.Equal(t, []string{vo1.ID}, voIDs)

	in, err := svc.UserInVO(ctx, u1.ID, vo2.ID)
	require.NoError(t, err)
	require.False(t, in)
}
