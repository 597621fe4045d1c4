package registry

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/fedcloud/catalog"
)

var _ catalog.ApplicationInstanceService = (*InstanceLogger)(nil)

// InstanceLogger is a logging service middleware for the application
// instance service.
type InstanceLogger struct {
	logger          *zap.Logger
	instanceService catalog.ApplicationInstanceService
}

// NewInstanceLogger returns a logging service middleware for the application
// instance service.
func NewInstanceLogger(log *zap.Logger, s catalog.ApplicationInstanceService) *InstanceLogger {
	return &InstanceLogger{
		logger:          log,
		instanceService: s,
	}
}

func (l *InstanceLogger) CreateApplicationInstance(ctx context.Context, inst *catalog.ApplicationInstance) (err error) {
	defer func(start time.Time) {
		dur := zap.Duration("took", time.Since(start))
		if err != nil {
			l.logger.Debug("failed to create application instance", zap.Error(err), dur)
			return
		}
		l.logger.Debug("application instance create", dur)
	}(time.Now())
	return l.instanceService.CreateApplicationInstance(ctx, inst)
}

func (l *InstanceLogger) DeleteApplicationInstance(ctx context.Context, id string) (err error) {
	defer func(start time.Time) {
		dur := zap.Duration("took", time.Since(start))
		if err != nil {
			msg := fmt.Sprintf("failed to delete application instance with ID %v", id)
			l.logger.Debug(msg, zap.Error(err), dur)
			return
		}
		l.logger.Debug("application instance delete", dur)
	}(time.Now())
	return l.instanceService.DeleteApplicationInstance(ctx, id)
}

func (l *InstanceLogger) GetApplicationInstance(ctx context.Context, id string) (inst catalog.ApplicationInstance, err error) {
	defer func(start time.Time) {
		dur := zap.Duration("took", time.Since(start))
		if err != nil {
			msg := fmt.Sprintf("failed to get application instance with ID %v", id)
			l.logger.Debug(msg, zap.Error(err), dur)
			return
		}
		l.logger.Debug("application instance get", dur)
	}(time.Now())
	return l.instanceService.GetApplicationInstance(ctx, id)
}

func (l *InstanceLogger) GetApplicationInstanceConfig(ctx context.Context, id string) (config string, err error) {
	defer func(start time.Time) {
		dur := zap.Duration("took", time.Since(start))
		if err != nil {
			msg := fmt.Sprintf("failed to get configuration of application instance with ID %v", id)
			l.logger.Debug(msg, zap.Error(err), dur)
			return
		}
		l.logger.Debug("application instance config get", dur)
	}(time.Now())
	return l.instanceService.GetApplicationInstanceConfig(ctx, id)
}

func (l *InstanceLogger) ListApplicationInstances(ctx context.Context) (insts []catalog.ApplicationInstance, err error) {
	defer func(start time.Time) {
		dur := zap.Duration("took", time.Since(start))
		if err != nil {
			l.logger.Debug("failed to list application instances", zap.Error(err), dur)
			return
		}
		l.logger.Debug("application instances list", dur)
	}(time.Now())
	return l.instanceService.ListApplicationInstances(ctx)
}
