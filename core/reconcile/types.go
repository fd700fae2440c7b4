package reconcile

import (
	"site-cms/core/database"

	"gorm.io/gorm"
)

// PlaceholderPrefix marks a client-generated id for a row that has never been saved.
const PlaceholderPrefix = "temp-"

// Entity constrains the pointer type of a persisted model.
type Entity[M any] interface {
	*M
	database.Identifiable
}

// Scope restricts a replace to one slice of a table.
type Scope func(*gorm.DB) *gorm.DB

// Counts is the outcome of a diff reconcile.
type Counts struct {
	Created int `json:"createdCount"`
	Updated int `json:"updatedCount"`
	Deleted int `json:"deletedCount"`
}

// ActionType is the kind of change a plan applies to one row.
type ActionType string

const (
	// ActionCreate inserts an incoming item as a new row.
	ActionCreate ActionType = "create"
	// ActionUpdate overwrites a persisted row in place.
	ActionUpdate ActionType = "update"
)

// Action is one planned write for the incoming item at Index.
type Action struct {
	Type  ActionType
	Index int
	// ID is the incoming identifier, empty for fresh items.
	ID string
	// Stale is set when a real-looking id matched no persisted row.
	Stale bool
}

// Plan is the full set of writes a diff reconcile will perform.
type Plan struct {
	// Deletes lists persisted ids absent from the incoming set.
	Deletes []string
	// Actions holds one entry per incoming item, in payload order.
	Actions []Action
	// Duplicates lists real ids named by more than one incoming item.
	Duplicates []string
}

// Summary counts the planned writes. Deleted is the planned figure; the engine
// reports rows actually removed.
func (p *Plan) Summary() Counts {
	c := Counts{Deleted: len(p.Deletes)}
	for _, a := range p.Actions {
		switch a.Type {
		case ActionCreate:
			c.Created++
		case ActionUpdate:
			c.Updated++
		}
	}
	return c
}
