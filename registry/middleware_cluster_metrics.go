package registry

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/fedcloud/catalog"
	"github.com/fedcloud/catalog/kit/metric"
)

var _ catalog.ClusterService = (*ClusterMetrics)(nil)

// ClusterMetrics is a metrics service middleware for the cluster service.
type ClusterMetrics struct {
	// RED metrics
	rec *metric.REDClient

	clusterService catalog.ClusterService
}

// NewClusterMetrics returns a metrics service middleware for the cluster
// service.
func NewClusterMetrics(reg prometheus.Registerer, s catalog.ClusterService, opts ...metric.ClientOptFn) *ClusterMetrics {
	return &ClusterMetrics{
		rec:            metric.New(reg, "cluster", opts...),
		clusterService: s,
	}
}

func (m *ClusterMetrics) CreateCluster(ctx context.Context, c *catalog.Cluster) error {
	rec := m.rec.Record("create_cluster")
	err := m.clusterService.CreateCluster(ctx, c)
	return rec(err)
}

func (m *ClusterMetrics) DeleteCluster(ctx context.Context, id string) error {
	rec := m.rec.Record("delete_cluster")
	err := m.clusterService.DeleteCluster(ctx, id)
	return rec(err)
}

func (m *ClusterMetrics) ListClusters(ctx context.Context) ([]catalog.Cluster, error) {
	rec := m.rec.Record("list_clusters")
	clusters, err := m.clusterService.ListClusters(ctx)
	return clusters, rec(err)
}

func (m *ClusterMetrics) FindClusterByID(ctx context.Context, id string) (catalog.Cluster, error) {
	rec := m.rec.Record("find_cluster_by_id")
	c, err := m.clusterService.FindClusterByID(ctx, id)
	return c, rec(err)
}

func (m *ClusterMetrics) FindClusterByName(ctx context.Context, name string) (catalog.Cluster, error) {
	rec := m.rec.Record("find_cluster_by_name")
	c, err := m.clusterService.FindClusterByName(ctx, name)
	return c, rec(err)
}

func (m *ClusterMetrics) GetCluster(ctx context.Context, idOrName string) (catalog.Cluster, error) {
	rec := m.rec.Record("get_cluster")
	c, err := m.clusterService.GetCluster(ctx, idOrName)
	return c, rec(err)
}

func (m *ClusterMetrics) ConfigPathForCluster(id string) string {
	rec := m.rec.Record("config_path_for_cluster")
	path := m.clusterService.ConfigPathForCluster(id)
	_ = rec(nil)
	return path
}
