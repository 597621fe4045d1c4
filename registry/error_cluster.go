package registry

import (
	"fmt"

	"github.com/fedcloud/catalog/kit/errors"
)

var (
	// ErrClusterNotFound is used when the cluster is not found.
	ErrClusterNotFound = &errors.Error{
		Msg:  "cluster not found",
		Code: errors.ENotFound,
	}
)

// ClusterAlreadyExistsError is used when creating a cluster with a name that
// already exists.
func ClusterAlreadyExistsError(name string) *errors.Error {
	return &errors.Error{
		Code: errors.EConflict,
		Msg:  fmt.Sprintf("cluster with name %s already exists", name),
	}
}

// ClusterNotFoundByName is used when the cluster is not found by name.
func ClusterNotFoundByName(name string) *errors.Error {
	return &errors.Error{
		Code: errors.ENotFound,
		Msg:  fmt.Sprintf("cluster %q not found", name),
	}
}

// ClusterHasInstancesError is used when deleting a cluster that application
// instances still run on.
func ClusterHasInstancesError(name string) *errors.Error {
	return &errors.Error{
		Code: errors.EConflict,
		Msg:  fmt.Sprintf("cluster %s still runs application instances", name),
	}
}

// ErrCorruptCluster is used when the cluster cannot be unmarshalled from
// the bytes stored in the kv.
func ErrCorruptCluster(err error) *errors.Error {
	return &errors.Error{
		Code: errors.EInternal,
		Msg:  "cluster could not be unmarshalled",
		Err:  err,
		Op:   "kv/getCluster",
	}
}

// ErrUnprocessableCluster is used when a cluster is not able to be processed.
func ErrUnprocessableCluster(err error) *errors.Error {
	return &errors.Error{
		Code: errors.EUnprocessableEntity,
		Msg:  "cluster could not be marshalled",
		Err:  err,
		Op:   "kv/putCluster",
	}
}
