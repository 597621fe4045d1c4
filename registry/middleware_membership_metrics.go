package registry

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/fedcloud/catalog"
	"github.com/fedcloud/catalog/kit/metric"
)

var _ catalog.MembershipService = (*MembershipMetrics)(nil)

// MembershipMetrics is a metrics service middleware for the membership
// service. Membership checks run on the per-request authorization path, so
// their latency is worth watching.
type MembershipMetrics struct {
	// RED metrics
	rec *metric.REDClient

	membershipService catalog.MembershipService
}

// NewMembershipMetrics returns a metrics service middleware for the
// membership service.
func NewMembershipMetrics(reg prometheus.Registerer, s catalog.MembershipService, opts ...metric.ClientOptFn) *MembershipMetrics {
	return &MembershipMetrics{
		rec:               metric.New(reg, "membership", opts...),
		membershipService: s,
	}
}

func (m *MembershipMetrics) AddUserToVO(ctx context.Context, userID, voID string) error {
	rec := m.rec.Record("add_user_to_vo")
	err := m.membershipService.AddUserToVO(ctx, userID, voID)
	return rec(err)
}

func (m *MembershipMetrics) RemoveUserFromVO(ctx context.Context, userID, voID string) error {
	rec := m.rec.Record("remove_user_from_vo")
	err := m.membershipService.RemoveUserFromVO(ctx, userID, voID)
	return rec(err)
}

func (m *MembershipMetrics) GetUserVOMemberships(ctx context.Context, userID string) ([]string, error) {
	rec := m.rec.Record("get_user_vo_memberships")
	voIDs, err := m.membershipService.GetUserVOMemberships(ctx, userID)
	return voIDs, rec(err)
}

func (m *MembershipMetrics) GetMembersOfVO(ctx context.Context, voID string) ([]string, error) {
	rec := m.rec.Record("get_members_of_vo")
	userIDs, err := m.membershipService.GetMembersOfVO(ctx, voID)
	return userIDs, rec(err)
}

func (m *MembershipMetrics) UserInVO(ctx context.Context, userID, voID string) (bool, error) {
	rec := m.rec.Record("user_in_vo")
	ok, err := m.membershipService.UserInVO(ctx, userID, voID)
	return ok, rec(err)
}
