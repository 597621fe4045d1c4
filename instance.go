package catalog

import (
	"context"
	"fmt"
	"time"
)

// ApplicationInstance is a running deployment of an application onto a
// cluster, within a VO's scope. The zero value is the "no such instance"
// sentinel.
//
// The configuration payload is stored and fetched separately from the rest
// of the record: GetApplicationInstance never populates Config, which may be
// large; use GetApplicationInstanceConfig when it is actually needed.
type ApplicationInstance struct {
	// Valid indicates whether the instance exists.
	Valid     bool      `json:"-"`
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	OwningVO  string    `json:"owningVO"`
	Cluster   string    `json:"cluster"`
	Config    string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewApplicationInstance returns a valid instance with the given name and no
// ID assigned yet.
func NewApplicationInstance(name string) ApplicationInstance {
	return ApplicationInstance{Valid: true, Name: name}
}

func (a ApplicationInstance) String() string {
	if !a.Valid {
		return "invalid application instance"
	}
	return fmt.Sprintf("instance %s (%s) on %s", a.Name, a.ID, a.Cluster)
}

// ops for instance errors and op logs.
const (
	OpCreateApplicationInstance    = "CreateApplicationInstance"
	OpDeleteApplicationInstance    = "DeleteApplicationInstance"
	OpGetApplicationInstance       = "GetApplicationInstance"
	OpGetApplicationInstanceConfig = "GetApplicationInstanceConfig"
	OpListApplicationInstances     = "ListApplicationInstances"
)

// ApplicationInstanceService manages application instance records.
type ApplicationInstanceService interface {
	// Stores a record for a new instance, assigning an ID if unset and
	// stamping the creation time.
	CreateApplicationInstance(ctx context.Context, inst *ApplicationInstance) error

	// Removes the instance record and its stored configuration.
	DeleteApplicationInstance(ctx context.Context, id string) error

	// Returns the instance with the given ID, without its configuration.
	GetApplicationInstance(ctx context.Context, id string) (ApplicationInstance, error)

	// Returns the configuration for the instance with the given ID, or the
	// empty string when the ID is unknown.
	GetApplicationInstanceConfig(ctx context.Context, id string) (string, error)

	// Returns all instances, without their configurations.
	ListApplicationInstances(ctx context.Context) ([]ApplicationInstance, error)
}
