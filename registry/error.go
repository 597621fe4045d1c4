package registry

import (
	"github.com/fedcloud/catalog/kit/errors"
)

var (
	// ErrNameisEmpty is when a name is empty.
	ErrNameisEmpty = &errors.Error{
		Code: errors.EInvalid,
		Msg:  "name is empty",
	}

	// NotUniqueIDError is used when attempting to create a record whose ID
	// already exists. IDs are generated, so this should not occur; it must
	// still never silently overwrite.
	NotUniqueIDError = &errors.Error{
		Code: errors.EConflict,
		Msg:  "ID already exists",
	}
)

// InvalidIDError is used when an operation is given an ID that does not have
// the expected shape for the entity kind.
func InvalidIDError(id, kind string) *errors.Error {
	return &errors.Error{
		Code: errors.EInvalid,
		Msg:  "not a valid " + kind + " ID: " + id,
	}
}
