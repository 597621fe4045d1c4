package registry

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/fedcloud/catalog"
)

var _ catalog.VOService = (*VOLogger)(nil)

// VOLogger is a logging service middleware for the VO service.
type VOLogger struct {
	logger    *zap.Logger
	voService catalog.VOService
}

// NewVOLogger returns a logging service middleware for the VO service.
func NewVOLogger(log *zap.Logger, s catalog.VOService) *VOLogger {
	return &VOLogger{
		logger:    log,
		voService: s,
	}
}

func (l *VOLogger) CreateVO(ctx context.Context, vo *catalog.VO) (err error) {
	defer func(start time.Time) {
		dur := zap.Duration("took", time.Since(start))
		if err != nil {
			l.logger.Debug("failed to create VO", zap.Error(err), dur)
			return
		}
		l.logger.Debug("VO create", dur)
	}(time.Now())
	return l.voService.CreateVO(ctx, vo)
}

func (l *VOLogger) DeleteVO(ctx context.Context, id string) (err error) {
	defer func(start time.Time) {
		dur := zap.Duration("took", time.Since(start))
		if err != nil {
			msg := fmt.Sprintf("failed to delete VO with ID %v", id)
			l.logger.Debug(msg, zap.Error(err), dur)
			return
		}
		l.logger.Debug("VO delete", dur)
	}(time.Now())
	return l.voService.DeleteVO(ctx, id)
}

func (l *VOLogger) ListVOs(ctx context.Context) (vos []catalog.VO, err error) {
	defer func(start time.Time) {
		dur := zap.Duration("took", time.Since(start))
		if err != nil {
			l.logger.Debug("failed to list VOs", zap.Error(err), dur)
			return
		}
		l.logger.Debug("VOs list", dur)
	}(time.Now())
	return l.voService.ListVOs(ctx)
}

func (l *VOLogger) FindVOByID(ctx context.Context, id string) (vo catalog.VO, err error) {
	defer func(start time.Time) {
		dur := zap.Duration("took", time.Since(start))
		if err != nil {
			msg := fmt.Sprintf("failed to find VO with ID %v", id)
			l.logger.Debug(msg, zap.Error(err), dur)
			return
		}
		l.logger.Debug("VO find by ID", dur)
	}(time.Now())
	return l.voService.FindVOByID(ctx, id)
}

func (l *VOLogger) FindVOByName(ctx context.Context, name string) (vo catalog.VO, err error) {
	defer func(start time.Time) {
		dur := zap.Duration("took", time.Since(start))
		if err != nil {
			msg := fmt.Sprintf("failed to find VO with name %v", name)
			l.logger.Debug(msg, zap.Error(err), dur)
			return
		}
		l.logger.Debug("VO find by name", dur)
	}(time.Now())
	return l.voService.FindVOByName(ctx, name)
}

func (l *VOLogger) GetVO(ctx context.Context, idOrName string) (vo catalog.VO, err error) {
	defer func(start time.Time) {
		dur := zap.Duration("took", time.Since(start))
		if err != nil {
			msg := fmt.Sprintf("failed to get VO %v", idOrName)
			l.logger.Debug(msg, zap.Error(err), dur)
			return
		}
		l.logger.Debug("VO get", dur)
	}(time.Now())
	return l.voService.GetVO(ctx, idOrName)
}
