package registry_test

import (
	"context"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/require"

	"github.com/fedcloud/catalog"
	"github.com/fedcloud/catalog/configs"
	"github.com/fedcloud/catalog/inmem"
	"github.com/fedcloud/catalog/registry"
)

var serviceTime = time.Date(2024, 5, 17, 9, 30, 0, 0, time.UTC)

func initService(t *testing.T) (*registry.Service, *configs.Store) {
	t.Helper()

	mock := clock.NewMock()
	mock.Set(serviceTime)

	st := registry.NewStore(inmem.NewKVStore(), registry.WithClock(mock))
	cfg := configs.NewStore(t.TempDir())
	return registry.NewService(st, cfg), cfg
}

// Lookups against a store that has never been written must report misses
// through the sentinel contract, not through backend errors.
func TestFreshStoreLookupsReportNotFound(t *testing.T) {
	svc, _ := initService(t)
	ctx := context.Background()

	u, err := svc.GetUser(ctx, catalog.UserIDPrefix+"deadbeef-0000-0000-0000-000000000000")
	require.NoError(t, err)
	require.False(t, u.Valid)

	vo, err := svc.FindVOByID(ctx, catalog.VOIDPrefix+"deadbeef-0000-0000-0000-000000000000")
	require.NoError(t, err)
	require.False(t, vo.Valid)

	c, err := svc.GetCluster(ctx, "no-such-site")
	require.NoError(t, err)
	require.False(t, c.Valid)

	inst, err := svc.GetApplicationInstance(ctx, catalog.InstanceIDPrefix+"deadbeef-0000-0000-0000-000000000000")
	require.NoError(t, err)
	require.False(t, inst.Valid)

	in, err := svc.UserInVO(ctx,
		catalog.UserIDPrefix+"deadbeef-0000-0000-0000-000000000000",
		catalog.VOIDPrefix+"deadbeef-0000-0000-0000-000000000000")
	require.NoError(t, err)
	require.False(t, in)

	voIDs, err := svc.GetUserVOMemberships(ctx, catalog.UserIDPrefix+"deadbeef-0000-0000-0000-000000000000")
	require.NoError(t, err)
	require.Empty(t, voIDs)

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	require.Empty(t, users)
}

func mustCreateUser(t *testing.T, svc *registry.Service, name string) catalog.User {
	t.Helper()

	u := catalog.NewUser(name)
	require.NoError(t, svc.CreateUser(context.Background(), &u))
	return u
}

func mustCreateVO(t *testing.T, svc *registry.Service, name string) catalog.VO {
	t.Helper()

	vo := catalog.NewVO(name)
	require.NoError(t, svc.CreateVO(context.Background(), &vo))
	return vo
}

func mustCreateCluster(t *testing.T, svc *registry.Service, name, voID string) catalog.Cluster {
	t.Helper()

	c := catalog.NewCluster(name)
	c.OwningVO = voID
	require.NoError(t, svc.CreateCluster(context.Background(), &c))
	return c
}
