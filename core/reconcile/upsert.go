package reconcile

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// UpsertByKey writes row as the single row whose column equals value.
// A missing row is created (an id already set on row, such as a singleton
// key, is kept); an existing row has every column but its creation time
// overwritten and keeps its surrogate id. It reports whether a row was created.
func UpsertByKey[M any, PM Entity[M]](tx *gorm.DB, column string, value any, row PM) (bool, error) {
	var existing M
	err := tx.Select("id").Where(eq(column, value)).Take(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := tx.Create(row).Error; err != nil {
			return false, err
		}
		return true, nil
	case err != nil:
		return false, fmt.Errorf("failed to look up %s: %w", column, err)
	}

	row.SetID(PM(&existing).GetID())
	if err := overwrite(tx, row).Error; err != nil {
		return false, err
	}
	return false, nil
}
