package registry

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/fedcloud/catalog"
	"github.com/fedcloud/catalog/kit/metric"
)

var _ catalog.VOService = (*VOMetrics)(nil)

// VOMetrics is a metrics service middleware for the VO service.
type VOMetrics struct {
	// RED metrics
	rec *metric.REDClient

	voService catalog.VOService
}

// NewVOMetrics returns a metrics service middleware for the VO service.
func NewVOMetrics(reg prometheus.Registerer, s catalog.VOService, opts ...metric.ClientOptFn) *VOMetrics {
	return &VOMetrics{
		rec:       metric.New(reg, "vo", opts...),
		voService: s,
	}
}

func (m *VOMetrics) CreateVO(ctx context.Context, vo *catalog.VO) error {
	rec := m.rec.Record("create_vo")
	err := m.voService.CreateVO(ctx, vo)
	return rec(err)
}

func (m *VOMetrics) DeleteVO(ctx context.Context, id string) error {
	rec := m.rec.Record("delete_vo")
	err := m.voService.DeleteVO(ctx, id)
	return rec(err)
}

func (m *VOMetrics) ListVOs(ctx context.Context) ([]catalog.VO, error) {
	rec := m.rec.Record("list_vos")
	vos, err := m.voService.ListVOs(ctx)
	return vos, rec(err)
}

func (m *VOMetrics) FindVOByID(ctx context.Context, id string) (catalog.VO, error) {
	rec := m.rec.Record("find_vo_by_id")
	vo, err := m.voService.FindVOByID(ctx, id)
	return vo, rec(err)
}

func (m *VOMetrics) FindVOByName(ctx context.Context, name string) (catalog.VO, error) {
	rec := m.rec.Record("find_vo_by_name")
	vo, err := m.voService.FindVOByName(ctx, name)
	return vo, rec(err)
}

func (m *VOMetrics) GetVO(ctx context.Context, idOrName string) (catalog.VO, error) {
	rec := m.rec.Record("get_vo")
	vo, err := m.voService.GetVO(ctx, idOrName)
	return vo, rec(err)
}
