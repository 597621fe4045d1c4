package registry

import (
	"fmt"

	"github.com/fedcloud/catalog/kit/errors"
)

var (
	// ErrUserNotFound is used when the user is not found.
	ErrUserNotFound = &errors.Error{
		Msg:  "user not found",
		Code: errors.ENotFound,
	}

	// ErrUserTokenNotUnique is used when a user's access token collides
	// with one already bound to another account.
	ErrUserTokenNotUnique = &errors.Error{
		Code: errors.EConflict,
		Msg:  "access token is already bound to a user",
	}
)

// UserGlobusIDExistsError is used when a user's Globus identity is already
// claimed by another account.
func UserGlobusIDExistsError(globusID string) *errors.Error {
	return &errors.Error{
		Code: errors.EConflict,
		Msg:  fmt.Sprintf("user with Globus ID %s already exists", globusID),
	}
}

// UserIDAlreadyExistsError is used when attempting to create a user with an
// ID that already exists.
func UserIDAlreadyExistsError(id string) *errors.Error {
	return &errors.Error{
		Code: errors.EConflict,
		Msg:  fmt.Sprintf("user with ID %s already exists", id),
	}
}

// ErrCorruptUser is used when the user cannot be unmarshalled from the
// bytes stored in the kv.
func ErrCorruptUser(err error) *errors.Error {
	return &errors.Error{
		Code: errors.EInternal,
		Msg:  "user could not be unmarshalled",
		Err:  err,
		Op:   "kv/getUser",
	}
}

// ErrUnprocessableUser is used when a user is not able to be processed.
func ErrUnprocessableUser(err error) *errors.Error {
	return &errors.Error{
		Code: errors.EUnprocessableEntity,
		Msg:  "user could not be marshalled",
		Err:  err,
		Op:   "kv/putUser",
	}
}
