package registry

import (
	"fmt"

	"github.com/fedcloud/catalog/kit/errors"
)

var (
	// ErrVONotFound is used when the VO is not found.
	ErrVONotFound = &errors.Error{
		Msg:  "VO not found",
		Code: errors.ENotFound,
	}
)

// VOAlreadyExistsError is used when creating a VO with a name that already
// exists.
func VOAlreadyExistsError(name string) *errors.Error {
	return &errors.Error{
		Code: errors.EConflict,
		Msg:  fmt.Sprintf("VO with name %s already exists", name),
	}
}

// VONotFoundByName is used when the VO is not found by name.
func VONotFoundByName(name string) *errors.Error {
	return &errors.Error{
		Code: errors.ENotFound,
		Msg:  fmt.Sprintf("VO %q not found", name),
	}
}

// VOHasDependentsError is used when deleting a VO that still owns clusters
// or application instances.
func VOHasDependentsError(name string) *errors.Error {
	return &errors.Error{
		Code: errors.EConflict,
		Msg:  fmt.Sprintf("VO %s still owns clusters or application instances", name),
	}
}

// ErrCorruptVO is used when the VO cannot be unmarshalled from the bytes
// stored in the kv.
func ErrCorruptVO(err error) *errors.Error {
	return &errors.Error{
		Code: errors.EInternal,
		Msg:  "VO could not be unmarshalled",
		Err:  err,
		Op:   "kv/getVO",
	}
}

// ErrUnprocessableVO is used when a VO is not able to be processed.
func ErrUnprocessableVO(err error) *errors.Error {
	return &errors.Error{
		Code: errors.EUnprocessableEntity,
		Msg:  "VO could not be marshalled",
		Err:  err,
		Op:   "kv/putVO",
	}
}
