package registry

import (
	"fmt"

	"github.com/fedcloud/catalog/kit/errors"
)

var (
	// ErrInstanceNotFound is used when the application instance is not found.
	ErrInstanceNotFound = &errors.Error{
		Msg:  "application instance not found",
		Code: errors.ENotFound,
	}
)

// InstanceIDAlreadyExistsError is used when attempting to create an
// application instance with an ID that already exists.
func InstanceIDAlreadyExistsError(id string) *errors.Error {
	return &errors.Error{
		Code: errors.EConflict,
		Msg:  fmt.Sprintf("application instance with ID %s already exists", id),
	}
}

// ErrCorruptInstance is used when the application instance cannot be
// unmarshalled from the bytes stored in the kv.
func ErrCorruptInstance(err error) *errors.Error {
	return &errors.Error{
		Code: errors.EInternal,
		Msg:  "application instance could not be unmarshalled",
		Err:  err,
		Op:   "kv/getInstance",
	}
}

// ErrUnprocessableInstance is used when an application instance is not able
// to be processed.
func ErrUnprocessableInstance(err error) *errors.Error {
	return &errors.Error{
		Code: errors.EUnprocessableEntity,
		Msg:  "application instance could not be marshalled",
		Err:  err,
		Op:   "kv/putInstance",
	}
}
