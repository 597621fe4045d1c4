package catalog

import (
	"context"
	"fmt"
	"sort"
)

// VO is a virtual organization: a named group of users sharing ownership of
// clusters and authorization scope. The zero value is the "no such VO"
// sentinel. Name is an alternate lookup key, expected unique.
type VO struct {
	// Valid indicates whether the VO exists.
	Valid bool   `json:"-"`
	ID    string `json:"id"`
	Name  string `json:"name"`
}

// NewVO returns a valid VO with the given name and no ID assigned yet.
func NewVO(name string) VO {
	return VO{Valid: true, Name: name}
}

func (v VO) String() string {
	if !v.Valid {
		return "invalid VO"
	}
	return fmt.Sprintf("VO %s (%s)", v.Name, v.ID)
}

// ops for VO errors and op logs.
const (
	OpCreateVO     = "CreateVO"
	OpDeleteVO     = "DeleteVO"
	OpListVOs      = "ListVOs"
	OpFindVOByID   = "FindVOByID"
	OpFindVOByName = "FindVOByName"
	OpGetVO        = "GetVO"
)

// VOService manages virtual organization records.
type VOService interface {
	// Stores a record for a new VO, assigning an ID if unset.
	CreateVO(ctx context.Context, vo *VO) error

	// Removes the VO record and its membership rows. Fails while clusters
	// or application instances still belong to the VO.
	DeleteVO(ctx context.Context, id string) error

	// Returns all VOs.
	ListVOs(ctx context.Context) ([]VO, error)

	// Returns the VO with the given ID.
	FindVOByID(ctx context.Context, id string) (VO, error)

	// Returns the VO with the given name.
	FindVOByName(ctx context.Context, name string) (VO, error)

	// Returns the VO matching the given ID or, failing that shape, name.
	GetVO(ctx context.Context, idOrName string) (VO, error)
}

// SortVOs sorts a slice of VOs by name.
func SortVOs(vos []VO) {
	sort.Slice(vos, func(i, j int) bool { return vos[i].Name < vos[j].Name })
}
