package configs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fedcloud/catalog/configs"
)

func TestConfigPathIsDeterministic(t *testing.T) {
	s := configs.NewStore("/var/lib/catalog/configs")

	p := s.ConfigPath("cluster_b2f9ad59-1f64-44a7-9c6f-12a59bc8a301")
	require.Equal(t, p, s.ConfigPath("cluster_b2f9ad59-1f64-44a7-9c6f-12a59bc8a301"))
	require.Equal(t, filepath.Join("/var/lib/catalog/configs", "cluster_b2f9ad59-1f64-44a7-9c6f-12a59bc8a301.yaml"), p)
}

func TestWriteReadRemoveConfig(t *testing.T) {
	s := configs.NewStore(filepath.Join(t.TempDir(), "configs"))

	const id = "cluster_b2f9ad59-1f64-44a7-9c6f-12a59bc8a301"
	payload := []byte("apiVersion: v1\nkind: Config\n")

	require.NoError(t, s.WriteConfig(id, payload))

	got, err := s.ReadConfig(id)
	require.NoError(t, err)
	require.Equal(t, payload, got)

	require.NoError(t, s.RemoveConfig(id))

	_, err = s.ReadConfig(id)
	require.True(t, os.IsNotExist(err))
}

func TestRemoveConfigNeverWritten(t *testing.T) {
	s := configs.NewStore(t.TempDir())

	require.NoError(t, s.RemoveConfig("cluster_deadbeef-0000-0000-0000-000000000000"))
}
