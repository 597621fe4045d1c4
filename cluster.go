package catalog

import (
	"context"
	"fmt"
)

// Cluster is a registered deployment target owned by a VO. The zero value is
// the "no such cluster" sentinel. Name is an alternate lookup key, expected
// unique. The large configuration payload itself lives in an external blob
// store addressed by cluster ID; Config holds only a reference.
type Cluster struct {
	// Valid indicates whether the cluster exists.
	Valid    bool   `json:"-"`
	ID       string `json:"id"`
	Name     string `json:"name"`
	OwningVO string `json:"owningVO"`
	Config   string `json:"config,omitempty"`
}

// NewCluster returns a valid cluster with the given name and no ID assigned
// yet.
func NewCluster(name string) Cluster {
	return Cluster{Valid: true, Name: name}
}

func (c Cluster) String() string {
	if !c.Valid {
		return "invalid cluster"
	}
	return fmt.Sprintf("cluster %s (%s)", c.Name, c.ID)
}

// ops for cluster errors and op logs.
const (
	OpCreateCluster        = "CreateCluster"
	OpDeleteCluster        = "DeleteCluster"
	OpListClusters         = "ListClusters"
	OpFindClusterByID      = "FindClusterByID"
	OpFindClusterByName    = "FindClusterByName"
	OpGetCluster           = "GetCluster"
	OpConfigPathForCluster = "ConfigPathForCluster"
)

// ClusterService manages cluster records.
type ClusterService interface {
	// Stores a record for a new cluster, assigning an ID if unset.
	CreateCluster(ctx context.Context, c *Cluster) error

	// Removes the cluster record and its externally stored configuration.
	// Fails while application instances still run on the cluster.
	DeleteCluster(ctx context.Context, id string) error

	// Returns all clusters.
	ListClusters(ctx context.Context) ([]Cluster, error)

	// Returns the cluster with the given ID.
	FindClusterByID(ctx context.Context, id string) (Cluster, error)

	// Returns the cluster with the given name.
	FindClusterByName(ctx context.Context, name string) (Cluster, error)

	// Returns the cluster matching the given ID or, failing that shape,
	// name.
	GetCluster(ctx context.Context, idOrName string) (Cluster, error)

	// Returns the path under which the cluster's configuration blob is
	// stored. Pure computation; performs no I/O and no existence check.
	ConfigPathForCluster(id string) string
}

// ClusterConfigStore is the external collaborator holding the large
// per-cluster configuration payloads, addressed by cluster ID.
type ClusterConfigStore interface {
	// ConfigPath deterministically maps a cluster ID to a storage path.
	ConfigPath(clusterID string) string

	// RemoveConfig deletes the stored payload for the cluster, if any.
	RemoveConfig(clusterID string) error
}
