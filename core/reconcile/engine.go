package reconcile

import (
	"errors"
	"fmt"
	"strings"

	"site-cms/core/response"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Reconcile makes the table of M hold exactly the incoming items while
// preserving the identity of rows the client still references.
//
// Items carrying a persisted id are updated in place, items with an empty or
// placeholder id are created, and persisted rows the payload no longer names
// are deleted. An id that looks real but matches nothing is treated as a
// create and logged as a warning. A real id repeated in the payload is a
// validation error. label names the entity in error messages.
//
// Reconcile must run inside a transaction; the caller commits or rolls back.
func Reconcile[M any, PM Entity[M]](tx *gorm.DB, logger *zap.Logger, label string, incoming []PM) (Counts, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	// 1. Load the persisted id set
	var persisted []string
	if err := tx.Model(new(M)).Pluck("id", &persisted).Error; err != nil {
		return Counts{}, fmt.Errorf("failed to load %s ids: %w", label, err)
	}

	ids := make([]string, len(incoming))
	for i, item := range incoming {
		ids[i] = item.GetID()
	}
	plan := BuildPlan(persisted, ids)
	if len(plan.Duplicates) > 0 {
		return Counts{}, response.Validation(fmt.Sprintf("Duplicate %s id in payload: %s", label, plan.Duplicates[0]))
	}

	// 2. Remove rows no longer referenced
	var counts Counts
	if len(plan.Deletes) > 0 {
		res := tx.Where("id IN ?", plan.Deletes).Delete(new(M))
		if res.Error != nil {
			return Counts{}, fmt.Errorf("failed to delete stale %s rows: %w", label, res.Error)
		}
		counts.Deleted = int(res.RowsAffected)
	}

	// 3. Apply creates and updates in payload order
	for _, action := range plan.Actions {
		item := incoming[action.Index]
		switch action.Type {
		case ActionUpdate:
			res := overwrite(tx, item)
			if res.Error != nil {
				return Counts{}, classifyWrite(label, res.Error)
			}
			if res.RowsAffected == 0 {
				return Counts{}, response.NotFound(titleCase(label) + " not found")
			}
			counts.Updated++
		case ActionCreate:
			if action.Stale {
				logger.Warn("Unknown id in payload, creating a new row instead",
					zap.String("entity", label),
					zap.String("id", action.ID))
			}
			item.SetID("")
			if err := tx.Create(item).Error; err != nil {
				return Counts{}, classifyWrite(label, err)
			}
			counts.Created++
		}
	}

	return counts, nil
}

// overwrite writes every column of row, zero values included, except the
// creation timestamp and associations.
func overwrite(tx *gorm.DB, row any) *gorm.DB {
	return tx.Model(row).Select("*").Omit("created_at", clause.Associations).Updates(row)
}

func classifyWrite(label string, err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return response.Conflict(fmt.Sprintf("Duplicate %s detected", label), err)
	}
	return fmt.Errorf("failed to write %s: %w", label, err)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
