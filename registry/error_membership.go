package registry

import (
	"github.com/fedcloud/catalog/kit/errors"
)

var (
	// ErrMembershipNotFound is used when the (user, VO) pair is not found.
	ErrMembershipNotFound = &errors.Error{
		Msg:  "user is not a member of the VO",
		Code: errors.ENotFound,
	}

	// ErrMembershipExists is used when the (user, VO) pair already exists.
	ErrMembershipExists = &errors.Error{
		Msg:  "user is already a member of the VO",
		Code: errors.EConflict,
	}
)
