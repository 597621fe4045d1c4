package catalog

import (
	"strings"

	"github.com/google/uuid"
)

// Entity IDs are opaque strings formed from a kind-specific prefix followed
// by a canonically formatted 128-bit random identifier. The prefix makes the
// kind of an ID recognizable on sight and lets lookup code decide cheaply
// whether a caller-supplied string can be an ID at all.
const (
	UserIDPrefix     = "user_"
	VOIDPrefix       = "vo_"
	ClusterIDPrefix  = "cluster_"
	InstanceIDPrefix = "instance_"
)

// IDGenerator produces globally unique identifiers for new records.
//
// Implementations must be safe for concurrent use; generation must not fail
// under normal operation.
type IDGenerator interface {
	UserID() string
	VOID() string
	ClusterID() string
	InstanceID() string
}

// TokenGenerator produces opaque bearer tokens for user accounts. A token is
// textually indistinguishable from a bare UUID and carries no structure.
type TokenGenerator interface {
	Token() string
}

// IsUserID reports whether s has the shape of a user ID.
func IsUserID(s string) bool { return isID(UserIDPrefix, s) }

// IsVOID reports whether s has the shape of a VO ID.
func IsVOID(s string) bool { return isID(VOIDPrefix, s) }

// IsClusterID reports whether s has the shape of a cluster ID.
func IsClusterID(s string) bool { return isID(ClusterIDPrefix, s) }

// IsInstanceID reports whether s has the shape of an application instance ID.
func IsInstanceID(s string) bool { return isID(InstanceIDPrefix, s) }

func isID(prefix, s string) bool {
	if !strings.HasPrefix(s, prefix) {
		return false
	}
	return uuid.Validate(s[len(prefix):]) == nil
}
