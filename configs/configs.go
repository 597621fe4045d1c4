// Package configs stores per-cluster configuration payloads on the
// filesystem. Cluster configs are consumed by kubectl-style tooling, so they
// live as plain files rather than in the catalog's key-value backend; the
// catalog keeps only the deterministic path.
package configs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fedcloud/catalog"
)

var _ catalog.ClusterConfigStore = (*Store)(nil)

// Store holds cluster configuration blobs under a single directory,
// one file per cluster ID.
type Store struct {
	dir string
}

// NewStore returns a Store rooted at dir. The directory is created on the
// first write, not here.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// ConfigPath maps a cluster ID to the path of its configuration file.
// Pure computation; the file need not exist.
func (s *Store) ConfigPath(clusterID string) string {
	return filepath.Join(s.dir, clusterID+".yaml")
}

// WriteConfig stores the configuration payload for the cluster.
func (s *Store) WriteConfig(clusterID string, config []byte) error {
	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return fmt.Errorf("unable to create directory %s: %v", s.dir, err)
	}
	return os.WriteFile(s.ConfigPath(clusterID), config, 0600)
}

// ReadConfig returns the stored configuration payload for the cluster.
func (s *Store) ReadConfig(clusterID string) ([]byte, error) {
	return os.ReadFile(s.ConfigPath(clusterID))
}

// RemoveConfig deletes the stored configuration for the cluster. Removing a
// config that was never written is not an error.
func (s *Store) RemoveConfig(clusterID string) error {
	err := os.Remove(s.ConfigPath(clusterID))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
