package registry

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/fedcloud/catalog"
)

var _ catalog.UserService = (*UserLogger)(nil)

// UserLogger is a logging service middleware for the user service.
type UserLogger struct {
	logger      *zap.Logger
	userService catalog.UserService
}

// NewUserLogger returns a logging service middleware for the user service.
func NewUserLogger(log *zap.Logger, s catalog.UserService) *UserLogger {
	return &UserLogger{
		logger:      log,
		userService: s,
	}
}

func (l *UserLogger) CreateUser(ctx context.Context, u *catalog.User) (err error) {
	defer func(start time.Time) {
		dur := zap.Duration("took", time.Since(start))
		if err != nil {
			l.logger.Debug("failed to create user", zap.Error(err), dur)
			return
		}
		l.logger.Debug("user create", dur)
	}(time.Now())
	return l.userService.CreateUser(ctx, u)
}

func (l *UserLogger) GetUser(ctx context.Context, id string) (u catalog.User, err error) {
	defer func(start time.Time) {
		dur := zap.Duration("took", time.Since(start))
		if err != nil {
			msg := fmt.Sprintf("failed to get user with ID %v", id)
			l.logger.Debug(msg, zap.Error(err), dur)
			return
		}
		l.logger.Debug("user get by ID", dur)
	}(time.Now())
	return l.userService.GetUser(ctx, id)
}

func (l *UserLogger) FindUserByToken(ctx context.Context, token string) (u catalog.User, err error) {
	defer func(start time.Time) {
		dur := zap.Duration("took", time.Since(start))
		if err != nil {
			// The token is a credential; it stays out of the log.
			l.logger.Debug("failed to find user by token", zap.Error(err), dur)
			return
		}
		l.logger.Debug("user find by token", dur)
	}(time.Now())
	return l.userService.FindUserByToken(ctx, token)
}

func (l *UserLogger) FindUserByGlobusID(ctx context.Context, globusID string) (u catalog.User, err error) {
	defer func(start time.Time) {
		dur := zap.Duration("took", time.Since(start))
		if err != nil {
			msg := fmt.Sprintf("failed to find user with Globus ID %v", globusID)
			l.logger.Debug(msg, zap.Error(err), dur)
			return
		}
		l.logger.Debug("user find by Globus ID", dur)
	}(time.Now())
	return l.userService.FindUserByGlobusID(ctx, globusID)
}

func (l *UserLogger) UpdateUser(ctx context.Context, u catalog.User) (err error) {
	defer func(start time.Time) {
		dur := zap.Duration("took", time.Since(start))
		if err != nil {
			msg := fmt.Sprintf("failed to update user with ID %v", u.ID)
			l.logger.Debug(msg, zap.Error(err), dur)
			return
		}
		l.logger.Debug("user update", dur)
	}(time.Now())
	return l.userService.UpdateUser(ctx, u)
}

func (l *UserLogger) DeleteUser(ctx context.Context, id string) (err error) {
	defer func(start time.Time) {
		dur := zap.Duration("took", time.Since(start))
		if err != nil {
			msg := fmt.Sprintf("failed to delete user with ID %v", id)
			l.logger.Debug(msg, zap.Error(err), dur)
			return
		}
		l.logger.Debug("user delete", dur)
	}(time.Now())
	return l.userService.DeleteUser(ctx, id)
}

func (l *UserLogger) ListUsers(ctx context.Context) (users []catalog.User, err error) {
	defer func(start time.Time) {
		dur := zap.Duration("took", time.Since(start))
		if err != nil {
			l.logger.Debug("failed to list users", zap.Error(err), dur)
			return
		}
		l.logger.Debug("users list", dur)
	}(time.Now())
	return l.userService.ListUsers(ctx)
}
