package registry

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/fedcloud/catalog"
)

var _ catalog.ClusterService = (*ClusterLogger)(nil)

// ClusterLogger is a logging service middleware for the cluster service.
type ClusterLogger struct {
	logger         *zap.Logger
	clusterService catalog.ClusterService
}

// NewClusterLogger returns a logging service middleware for the cluster
// service.
func NewClusterLogger(log *zap.Logger, s catalog.ClusterService) *ClusterLogger {
	return &ClusterLogger{
		logger:         log,
		clusterService: s,
	}
}

func (l *ClusterLogger) CreateCluster(ctx context.Context, c *catalog.Cluster) (err error) {
	defer func(start time.Time) {
		dur := zap.Duration("took", time.Since(start))
		if err != nil {
			l.logger.Debug("failed to create cluster", zap.Error(err), dur)
			return
		}
		l.logger.Debug("cluster create", dur)
	}(time.Now())
	return l.clusterService.CreateCluster(ctx, c)
}

func (l *ClusterLogger) DeleteCluster(ctx context.Context, id string) (err error) {
	defer func(start time.Time) {
		dur := zap.Duration("took", time.Since(start))
		if err != nil {
			msg := fmt.Sprintf("failed to delete cluster with ID %v", id)
			l.logger.Debug(msg, zap.Error(err), dur)
			return
		}
		l.logger.Debug("cluster delete", dur)
	}(time.Now())
	return l.clusterService.DeleteCluster(ctx, id)
}

func (l *ClusterLogger) ListClusters(ctx context.Context) (clusters []catalog.Cluster, err error) {
	defer func(start time.Time) {
		dur := zap.Duration("took", time.Since(start))
		if err != nil {
			l.logger.Debug("failed to list clusters", zap.Error(err), dur)
			return
		}
		l.logger.Debug("clusters list", dur)
	}(time.Now())
	return l.clusterService.ListClusters(ctx)
}

func (l *ClusterLogger) FindClusterByID(ctx context.Context, id string) (c catalog.Cluster, err error) {
	defer func(start time.Time) {
		dur := zap.Duration("took", time.Since(start))
		if err != nil {
			msg := fmt.Sprintf("failed to find cluster with ID %v", id)
			l.logger.Debug(msg, zap.Error(err), dur)
			return
		}
		l.logger.Debug("cluster find by ID", dur)
	}(time.Now())
	return l.clusterService.FindClusterByID(ctx, id)
}

func (l *ClusterLogger) FindClusterByName(ctx context.Context, name string) (c catalog.Cluster, err error) {
	defer func(start time.Time) {
		dur := zap.Duration("took", time.Since(start))
		if err != nil {
			msg := fmt.Sprintf("failed to find cluster with name %v", name)
			l.logger.Debug(msg, zap.Error(err), dur)
			return
		}
		l.logger.Debug("cluster find by name", dur)
	}(time.Now())
	return l.clusterService.FindClusterByName(ctx, name)
}

func (l *ClusterLogger) GetCluster(ctx context.Context, idOrName string) (c catalog.Cluster, err error) {
	defer func(start time.Time) {
		dur := zap.Duration("took", time.Since(start))
		if err != nil {
			msg := fmt.Sprintf("failed to get cluster %v", idOrName)
			l.logger.Debug(msg, zap.Error(err), dur)
			return
		}
		l.logger.Debug("cluster get", dur)
	}(time.Now())
	return l.clusterService.GetCluster(ctx, idOrName)
}

func (l *ClusterLogger) ConfigPathForCluster(id string) string {
	// Pure path computation; nothing worth logging.
	return l.clusterService.ConfigPathForCluster(id)
}
