package metric_test

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/fedcloud/catalog/kit/metric"
)

func TestREDClientRecordsCallsAndDurations(t *testing.T) {
	reg := prometheus.NewRegistry()
	client := metric.New(reg, "user")

	require.NoError(t, client.Record("create_user")(nil))

	boom := errors.New("boom")
	require.Equal(t, boom, client.Record("create_user")(boom))

	mfs, err := reg.Gather()
	require.NoError(t, err)

	counts := map[string]float64{}
	var histogramSamples uint64
	for _, mf := range mfs {
		switch mf.GetName() {
		case "catalog_user_call_total":
			for _, m := range mf.GetMetric() {
				labels := map[string]string{}
				for _, lp := range m.GetLabel() {
					labels[lp.GetName()] = lp.GetValue()
				}
				require.Equal(t, "create_user", labels["method"])
				counts[labels["error"]] = m.GetCounter().GetValue()
			}
		case "catalog_user_duration_seconds":
			for _, m := range mf.GetMetric() {
				histogramSamples += m.GetHistogram().GetSampleCount()
			}
		}
	}

	require.Equal(t, float64(1), counts["false"])
	require.Equal(t, float64(1), counts["true"])
	require.Equal(t, uint64(2), histogramSamples)
}

func TestREDClientNamespaceOption(t *testing.T) {
	reg := prometheus.NewRegistry()
	client := metric.New(reg, "membership", metric.WithNamespace("fedcloud"))

	_ = client.Record("user_in_vo")(nil)

	mfs, err := reg.Gather()
	require.NoError(t, err)

	names := []string{}
	for _, mf := range mfs {
		names = append(names, mf.GetName())
	}
	require.Contains(t, names, "fedcloud_membership_call_total")
	require.Contains(t, names, "fedcloud_membership_duration_seconds")
}
