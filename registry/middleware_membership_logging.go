package registry

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/fedcloud/catalog"
)

var _ catalog.MembershipService = (*MembershipLogger)(nil)

// MembershipLogger is a logging service middleware for the membership
// service.
type MembershipLogger struct {
	logger            *zap.Logger
	membershipService catalog.MembershipService
}

// NewMembershipLogger returns a logging service middleware for the
// membership service.
func NewMembershipLogger(log *zap.Logger, s catalog.MembershipService) *MembershipLogger {
	return &MembershipLogger{
		logger:            log,
		membershipService: s,
	}
}

func (l *MembershipLogger) AddUserToVO(ctx context.Context, userID, voID string) (err error) {
	defer func(start time.Time) {
		dur := zap.Duration("took", time.Since(start))
		if err != nil {
			msg := fmt.Sprintf("failed to add user %v to VO %v", userID, voID)
			l.logger.Debug(msg, zap.Error(err), dur)
			return
		}
		l.logger.Debug("membership add", dur)
	}(time.Now())
	return l.membershipService.AddUserToVO(ctx, userID, voID)
}

func (l *MembershipLogger) RemoveUserFromVO(ctx context.Context, userID, voID string) (err error) {
	defer func(start time.Time) {
		dur := zap.Duration("took", time.Since(start))
		if err != nil {
			msg := fmt.Sprintf("failed to remove user %v from VO %v", userID, voID)
			l.logger.Debug(msg, zap.Error(err), dur)
			return
		}
		l.logger.Debug("membership remove", dur)
	}(time.Now())
	return l.membershipService.RemoveUserFromVO(ctx, userID, voID)
}

func (l *MembershipLogger) GetUserVOMemberships(ctx context.Context, userID string) (voIDs []string, err error) {
	defer func(start time.Time) {
		dur := zap.Duration("took", time.Since(start))
		if err != nil {
			msg := fmt.Sprintf("failed to list memberships of user %v", userID)
			l.logger.Debug(msg, zap.Error(err), dur)
			return
		}
		l.logger.Debug("memberships of user", dur)
	}(time.Now())
	return l.membershipService.GetUserVOMemberships(ctx, userID)
}

func (l *MembershipLogger) GetMembersOfVO(ctx context.Context, voID string) (userIDs []string, err error) {
	defer func(start time.Time) {
		dur := zap.Duration("took", time.Since(start))
		if err != nil {
			msg := fmt.Sprintf("failed to list members of VO %v", voID)
			l.logger.Debug(msg, zap.Error(err), dur)
			return
		}
		l.logger.Debug("members of VO", dur)
	}(time.Now())
	return l.membershipService.GetMembersOfVO(ctx, voID)
}

func (l *MembershipLogger) UserInVO(ctx context.Context, userID, voID string) (in bool, err error) {
	defer func(start time.Time) {
		dur := zap.Duration("took", time.Since(start))
		if err != nil {
			msg := fmt.Sprintf("failed to test membership of user %v in VO %v", userID, voID)
			l.logger.Debug(msg, zap.Error(err), dur)
			return
		}
		l.logger.Debug("membership test", dur)
	}(time.Now())
	return l.membershipService.UserInVO(ctx, userID, voID)
}
