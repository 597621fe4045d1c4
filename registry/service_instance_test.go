package registry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fedcloud/catalog"
	"github.com/fedcloud/catalog/kit/errors"
	"github.com/fedcloud/catalog/registry"
)

func createInstanceFixture(t *testing.T) (*testFixture, catalog.ApplicationInstance) {
	t.Helper()

	svc, _ := initService(t)
	ctx := context.Background()

	vo := mustCreateVO(t, svc, "atlas")
	c := mustCreateCluster(t, svc, "cern-site", vo.ID)

	inst := catalog.NewApplicationInstance("osg-frontier-squid")
	inst.OwningVO = vo.ID
	inst.Cluster = c.ID
	inst.Config = "Instance:\n  replicaCount: 2\n"
	require.NoError(t, svc.CreateApplicationInstance(ctx, &inst))

	return &testFixture{svc: svc, vo: vo, cluster: c}, inst
}

type testFixture struct {
	svc     *registry.Service
	vo      catalog.VO
	cluster catalog.Cluster
}

func TestInstanceRoundTrip(t *testing.T) {
	fx, inst := createInstanceFixture(t)
	ctx := context.Background()

	require.True(t, catalog.IsInstanceID(inst.ID))
	require.Equal(t, serviceTime, inst.CreatedAt)

	got, err := fx.svc.GetApplicationInstance(ctx, inst.ID)
	require.NoError(t, err)
	require.True(t, got.Valid)
	require.Equal(t, inst.ID, got.ID)
	require.Equal(t, inst.Name, got.Name)
	require.Equal(t, fx.vo.ID, got.OwningVO)
	require.Equal(t, fx.cluster.ID, got.Cluster)
	require.True(t, got.CreatedAt.Equal(serviceTime))
	// The record fetch never carries the configuration payload.
	require.Empty(t, got.Config)
}

func TestGetInstanceConfig(t *testing.T) {
	fx, inst := createInstanceFixture(t)
	ctx := context.Background()

	config, err := fx.svc.GetApplicationInstanceConfig(ctx, inst.ID)
	require.NoError(t, err)
	require.Equal(t, "Instance:\n  replicaCount: 2\n", config)
}

func TestGetInstanceConfigUnknownID(t *testing.T) {
	fx, _ := createInstanceFixture(t)

	config, err := fx.svc.GetApplicationInstanceConfig(context.Background(), catalog.InstanceIDPrefix+"deadbeef-0000-0000-0000-000000000000")
	require.NoError(t, err)
	require.Empty(t, config)
}

func TestGetInstanceNotFound(t *testing.T) {
	fx, _ := createInstanceFixture(t)

	got, err := fx.svc.GetApplicationInstance(context.Background(), catalog.InstanceIDPrefix+"deadbeef-0000-0000-0000-000000000000")
	require.NoError(t, err)
	require.False(t, got.Valid)
}

func TestCreateInstanceRequiresVOAndCluster(t *testing.T) {
	svc, _ := initService(t)
	ctx := context.Background()

	vo := mustCreateVO(t, svc, "cms")
	c := mustCreateCluster(t, svc, "fermi-site", vo.ID)

	inst := catalog.NewApplicationInstance("nginx")
	inst.OwningVO = catalog.VOIDPrefix + "deadbeef-0000-0000-0000-000000000000"
	inst.Cluster = c.ID
	err := svc.CreateApplicationInstance(ctx, &inst)
	require.Error(t, err)
	require.Equal(t, errors.ENotFound, errors.ErrorCode(err))

	// The rejected create must not have assigned anything to the record.
	require.Empty(t, inst.ID)
	require.True(t, inst.CreatedAt.IsZero())

	inst2 := catalog.NewApplicationInstance("nginx")
	inst2.OwningVO = vo.ID
	inst2.Cluster = catalog.ClusterIDPrefix + "deadbeef-0000-0000-0000-000000000000"
	err = svc.CreateApplicationInstance(ctx, &inst2)
	require.Error(t, err)
	require.Equal(t, errors.ENotFound, errors.ErrorCode(err))
}

func TestDeleteInstance(t *testing.T) {
	fx, inst := createInstanceFixture(t)
	ctx := context.Background()

	require.NoError(t, fx.svc.DeleteApplicationInstance(ctx, inst.ID))

	got, err := fx.svc.GetApplicationInstance(ctx, inst.ID)
	require.NoError(t, err)
	require.False(t, got.Valid)

	config, err := fx.svc.GetApplicationInstanceConfig(ctx, inst.ID)
	require.NoError(t, err)
	require.Empty(t, config)

	err = fx.svc.DeleteApplicationInstance(ctx, inst.ID)
	require.Error(t, err)
	require.Equal(t, errors.ENotFound, errors.ErrorCode(err))
}

func TestListInstances(t *testing.T) {
	fx, inst := createInstanceFixture(t)
	ctx := context.Background()

	inst2 := catalog.NewApplicationInstance("htcondor-worker")
	inst2.OwningVO = fx.vo.ID
	inst2.Cluster = fx.cluster.ID
	require.NoError(t, fx.svc.CreateApplicationInstance(ctx, &inst2))

	insts, err := fx.svc.ListApplicationInstances(ctx)
	require.NoError(t, err)
	require.Len(t, insts, 2)

	names := map[string]bool{}
	for _, i := range insts {
		require.True(t, i.Valid)
		require.Empty(t, i.Config)
		names[i.Name] = true
	}
	require.True(t, names[inst.Name])
	require.True(t, names["htcondor-worker"])
}
