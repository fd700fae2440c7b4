package database

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SingletonID is the fixed primary key of one-row configuration tables.
const SingletonID = "default"

// Model is the base of every persisted entity: an opaque string surrogate id
// plus timestamps.
type Model struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate assigns a fresh surrogate id unless one was set explicitly.
func (m *Model) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// GetID returns the surrogate id.
func (m *Model) GetID() string {
	return m.ID
}

// SetID overrides the surrogate id.
func (m *Model) SetID(id string) {
	m.ID = id
}

// Identifiable is implemented by pointers to every entity embedding Model.
type Identifiable interface {
	GetID() string
	SetID(id string)
}

// Ordered sorts by position ascending; ties keep insertion order.
func Ordered(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC").Order("created_at ASC").Order("id ASC")
}

// Active restricts a query to rows visible on public read paths.
func Active(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}
