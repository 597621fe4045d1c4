package registry

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/fedcloud/catalog"
	"github.com/fedcloud/catalog/kit/metric"
)

var _ catalog.ApplicationInstanceService = (*InstanceMetrics)(nil)

// InstanceMetrics is a metrics service middleware for the application
// instance service.
type InstanceMetrics struct {
	// RED metrics
	rec *metric.REDClient

	instanceService catalog.ApplicationInstanceService
}

// NewInstanceMetrics returns a metrics service middleware for the
// application instance service.
func NewInstanceMetrics(reg prometheus.Registerer, s catalog.ApplicationInstanceService, opts ...metric.ClientOptFn) *InstanceMetrics {
	return &InstanceMetrics{
		rec:             metric.New(reg, "instance", opts...),
		instanceService: s,
	}
}

func (m *InstanceMetrics) CreateApplicationInstance(ctx context.Context, inst *catalog.ApplicationInstance) error {
	rec := m.rec.Record("create_application_instance")
	err := m.instanceService.CreateApplicationInstance(ctx, inst)
	return rec(err)
}

func (m *InstanceMetrics) DeleteApplicationInstance(ctx context.Context, id string) error {
	rec := m.rec.Record("delete_application_instance")
	err := m.instanceService.DeleteApplicationInstance(ctx, id)
	return rec(err)
}

func (m *InstanceMetrics) GetApplicationInstance(ctx context.Context, id string) (catalog.ApplicationInstance, error) {
	rec := m.rec.Record("get_application_instance")
	inst, err := m.instanceService.GetApplicationInstance(ctx, id)
	return inst, rec(err)
}

func (m *InstanceMetrics) GetApplicationInstanceConfig(ctx context.Context, id string) (string, error) {
	rec := m.rec.Record("get_application_instance_config")
	config, err := m.instanceService.GetApplicationInstanceConfig(ctx, id)
	return config, rec(err)
}

func (m *InstanceMetrics) ListApplicationInstances(ctx context.Context) ([]catalog.ApplicationInstance, error) {
	rec := m.rec.Record("list_application_instances")
	insts, err := m.instanceService.ListApplicationInstances(ctx)
	return insts, rec(err)
}
