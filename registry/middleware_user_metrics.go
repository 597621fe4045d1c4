package registry

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/fedcloud/catalog"
	"github.com/fedcloud/catalog/kit/metric"
)

var _ catalog.UserService = (*UserMetrics)(nil)

// UserMetrics is a metrics service middleware for the user service.
type UserMetrics struct {
	// RED metrics
	rec *metric.REDClient

	userService catalog.UserService
}

// NewUserMetrics returns a metrics service middleware for the user service.
func NewUserMetrics(reg prometheus.Registerer, s catalog.UserService, opts ...metric.ClientOptFn) *UserMetrics {
	return &UserMetrics{
		rec:         metric.New(reg, "user", opts...),
		userService: s,
	}
}

func (m *UserMetrics) CreateUser(ctx context.Context, u *catalog.User) error {
	rec := m.rec.Record("create_user")
	err := m.userService.CreateUser(ctx, u)
	return rec(err)
}

func (m *UserMetrics) GetUser(ctx context.Context, id string) (catalog.User, error) {
	rec := m.rec.Record("get_user")
	user, err := m.userService.GetUser(ctx, id)
	return user, rec(err)
}

func (m *UserMetrics) FindUserByToken(ctx context.Context, token string) (catalog.User, error) {
	rec := m.rec.Record("find_user_by_token")
	user, err := m.userService.FindUserByToken(ctx, token)
	return user, rec(err)
}

func (m *UserMetrics) FindUserByGlobusID(ctx context.Context, globusID string) (catalog.User, error) {
	rec := m.rec.Record("find_user_by_globus_id")
	user, err := m.userService.FindUserByGlobusID(ctx, globusID)
	return user, rec(err)
}

func (m *UserMetrics) UpdateUser(ctx context.Context, u catalog.User) error {
	rec := m.rec.Record("update_user")
	err := m.userService.UpdateUser(ctx, u)
	return rec(err)
}

func (m *UserMetrics) DeleteUser(ctx context.Context, id string) error {
	rec := m.rec.Record("delete_user")
	err := m.userService.DeleteUser(ctx, id)
	return rec(err)
}

func (m *UserMetrics) ListUsers(ctx context.Context) ([]catalog.User, error) {
	rec := m.rec.Record("list_users")
	users, err := m.userService.ListUsers(ctx)
	return users, rec(err)
}
