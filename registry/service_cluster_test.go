package registry_test

import (
	"context"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/fedcloud/catalog"
	"github.com/fedcloud/catalog/kit/errors"
)

func TestClusterRoundTrip(t *testing.T) {
	svc, _ := initService(t)
	ctx := context.Background()

	vo := mustCreateVO(t, svc, "atlas")
	c := mustCreateCluster(t, svc, "cern-site", vo.ID)

	require.True(t, catalog.IsClusterID(c.ID))
	require.Equal(t, svc.ConfigPathForCluster(c.ID), c.Config)

	got, err := svc.FindClusterByID(ctx, c.ID)
	require.NoError(t, err)
	require.True(t, got.Valid)
	if diff := cmp.Diff(c, got); diff != "" {
		t.Fatalf("cluster mismatch (-want +got):\n%s", diff)
	}
}

func TestCreateClusterRequiresOwningVO(t *testing.T) {
	svc, _ := initService(t)

	c := catalog.NewCluster("orphan-site")
	c.OwningVO = catalog.VOIDPrefix + "deadbeef-0000-0000-0000-000000000000"
	err := svc.CreateCluster(context.Background(), &c)
	require.Error(t, err)
	require.Equal(t, errors.ENotFound, errors.ErrorCode(err))

	// The rejected create must not have assigned anything to the record.
	require.Empty(t, c.ID)
	require.Empty(t, c.Config)
}

func TestCreateClusterRejectsDuplicateName(t *testing.T) {
	svc, _ := initService(t)
	ctx := context.Background()

	vo := mustCreateVO(t, svc, "cms")
	mustCreateCluster(t, svc, "fermi-site", vo.ID)

	dup := catalog.NewCluster("fermi-site")
	dup.OwningVO = vo.ID
	err := svc.CreateCluster(ctx, &dup)
	require.Error(t, err)
	require.Equal(t, errors.EConflict, errors.ErrorCode(err))
}

func TestGetClusterByIDOrName(t *testing.T) {
	svc, _ := initService(t)
	ctx := context.Background()

	vo := mustCreateVO(t, svc, "dune")
	c := mustCreateCluster(t, svc, "surf-site", vo.ID)

	byID, err := svc.GetCluster(ctx, c.ID)
	require.NoError(t, err)
	byName, err := svc.GetCluster(ctx, c.Name)
	require.NoError(t, err)

	require.True(t, byID.Valid)
	if diff := cmp.Diff(byID, byName); diff != "" {
		t.Fatalf("lookup paths disagree (-id +name):\n%s", diff)
	}

	missing, err := svc.GetCluster(ctx, "no-such-site")
	require.NoError(t, err)
	require.False(t, missing.Valid)
}

func TestConfigPathForClusterIsDeterministic(t *testing.T) {
	svc, _ := initService(t)

	id := catalog.ClusterIDPrefix + "b2f9ad59-1f64-44a7-9c6f-12a59bc8a301"
	p1 := svc.ConfigPathForCluster(id)
	p2 := svc.ConfigPathForCluster(id)
	require.Equal(t, p1, p2)
	require.Contains(t, p1, id)
}

func TestDeleteClusterRemovesConfigBlob(t *testing.T) {
	svc, cfg := initService(t)
	ctx := context.Background()

	vo := mustCreateVO(t, svc, "icecube")
	c := mustCreateCluster(t, svc, "pole-site", vo.ID)

	require.NoError(t, cfg.WriteConfig(c.ID, []byte("apiVersion: v1\nkind: Config\n")))
	_, err := os.Stat(cfg.ConfigPath(c.ID))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCluster(ctx, c.ID))

	_, err = os.Stat(cfg.ConfigPath(c.ID))
	require.True(t, os.IsNotExist(err))

	got, err := svc.FindClusterByID(ctx, c.ID)
	require.NoError(t, err)
	require.False(t, got.Valid)
}

func TestDeleteClusterRejectedWithInstances(t *testing.T) {
	svc, _ := initService(t)
	ctx := context.Background()

	vo := mustCreateVO(t, svc, "ligo")
	c := mustCreateCluster(t, svc, "hanford-site", vo.ID)

	inst := catalog.NewApplicationInstance("osg-frontier-squid")
	inst.OwningVO = vo.ID
	inst.Cluster = c.ID
	require.NoError(t, svc.CreateApplicationInstance(ctx, &inst))

	err := svc.DeleteCluster(ctx, c.ID)
	require.Error(t, err)
	require.Equal(t, errors.EConflict, errors.ErrorCode(err))

	got, err := svc.FindClusterByID(ctx, c.ID)
	require.NoError(t, err)
	require.True(t, got.Valid)
}

func TestDeleteClusterIdempotence(t *testing.T) {
	svc, _ := initService(t)
	ctx := context.Background()

	vo := mustCreateVO(t, svc, "belle")
	c := mustCreateCluster(t, svc, "kek-site", vo.ID)
	require.NoError(t, svc.DeleteCluster(ctx, c.ID))

	err := svc.DeleteCluster(ctx, c.ID)
	require.Error(t, err)
	require.Equal(t, errors.ENotFound, errors.ErrorCode(err))
}

func TestListClusters(t *testing.T) {
	svc, _ := initService(t)
	ctx := context.Background()

	vo := mustCreateVO(t, svc, "xenon")
	mustCreateCluster(t, svc, "lngs-site", vo.ID)
	mustCreateCluster(t, svc, "snolab-site", vo.ID)

	clusters, err := svc.ListClusters(ctx)
	require.NoError(t, err)
	require.Len(t, clusters, 2)
	for _, c := range clusters {
		require.True(t, c.Valid)
		require.Equal(t, vo.ID, c.OwningVO)
	}
}
