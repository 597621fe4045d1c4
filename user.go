package catalog

import (
	"context"
	"fmt"
)

// User is a platform user account.
//
// The zero value is the "no such user" sentinel; callers must check Valid
// before reading any other field. Token and GlobusID are alternate lookup
// keys, each expected unique across all users.
type User struct {
	// Valid indicates whether the account exists.
	Valid    bool   `json:"-"`
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Token    string `json:"token,omitempty"`
	GlobusID string `json:"globusID,omitempty"`
	Admin    bool   `json:"admin,omitempty"`
}

// NewUser returns a valid user with the given name and no ID assigned yet.
func NewUser(name string) User {
	return User{Valid: true, Name: name}
}

func (u User) String() string {
	if !u.Valid {
		return "invalid user"
	}
	return fmt.Sprintf("user %s (%s)", u.Name, u.ID)
}

// ops for user errors and op logs.
const (
	OpCreateUser           = "CreateUser"
	OpGetUser              = "GetUser"
	OpFindUserByToken      = "FindUserByToken"
	OpFindUserByGlobusID   = "FindUserByGlobusID"
	OpUpdateUser           = "UpdateUser"
	OpDeleteUser           = "DeleteUser"
	OpListUsers            = "ListUsers"
	OpAddUserToVO          = "AddUserToVO"
	OpRemoveUserFromVO     = "RemoveUserFromVO"
	OpGetUserVOMemberships = "GetUserVOMemberships"
	OpGetMembersOfVO       = "GetMembersOfVO"
	OpUserInVO             = "UserInVO"
)

// UserService manages user account records.
//
// Lookups return the zero (invalid) User with a nil error when no record
// matches; a non-nil error always means the lookup itself could not be
// carried out.
type UserService interface {
	// Stores a record for a new user, assigning an ID and token if unset.
	CreateUser(ctx context.Context, u *User) error

	// Returns the user with the given ID.
	GetUser(ctx context.Context, id string) (User, error)

	// Returns the user owning the given access token. Only the ID, token,
	// and admin flag are populated.
	FindUserByToken(ctx context.Context, token string) (User, error)

	// Returns the user with the given Globus identity. Only the ID and
	// token are populated.
	FindUserByGlobusID(ctx context.Context, globusID string) (User, error)

	// Replaces the stored record for u.ID with u.
	UpdateUser(ctx context.Context, u User) error

	// Removes the user record and the user's VO memberships.
	DeleteUser(ctx context.Context, id string) error

	// Returns all users, reduced to ID, name, and email.
	ListUsers(ctx context.Context) ([]User, error)
}

// MembershipService maintains the many-to-many relation between users and
// VOs. Both directions are index-backed; these calls sit on the per-request
// authorization path and must stay cheap.
type MembershipService interface {
	AddUserToVO(ctx context.Context, userID, voID string) error
	RemoveUserFromVO(ctx context.Context, userID, voID string) error

	// Returns the IDs of the VOs the user belongs to.
	GetUserVOMemberships(ctx context.Context, userID string) ([]string, error)

	// Returns the IDs of the users belonging to the VO.
	GetMembersOfVO(ctx context.Context, voID string) ([]string, error)

	// Reports whether the user belongs to the VO.
	UserInVO(ctx context.Context, userID, voID string) (bool, error)
}
