package reconcile

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AllRows scopes a replace to the whole table.
func AllRows(db *gorm.DB) *gorm.DB {
	// GORM refuses a DELETE without conditions
	return db.Where("1 = 1")
}

// Where scopes a replace to rows whose column equals value.
func Where(column string, value any) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(eq(column, value))
	}
}

// eq quotes column, which may be a reserved word such as "key".
func eq(column string, value any) clause.Eq {
	return clause.Eq{Column: clause.Column{Name: column}, Value: value}
}

// ReplaceAll deletes every row of M inside scope and inserts rows in order.
// Incoming ids are discarded so every row gets a fresh surrogate id; has-many
// children on the rows are inserted after their parent. An empty rows slice
// simply empties the scope.
//
// ReplaceAll must run inside a transaction; the caller commits or rolls back.
func ReplaceAll[M any, PM Entity[M]](tx *gorm.DB, scope Scope, rows []M) ([]M, error) {
	if scope == nil {
		scope = AllRows
	}

	if err := tx.Scopes(scope).Delete(new(M)).Error; err != nil {
		return nil, fmt.Errorf("failed to clear rows: %w", err)
	}

	if len(rows) == 0 {
		return []M{}, nil
	}

	for i := range rows {
		PM(&rows[i]).SetID("")
	}
	if err := tx.Create(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to insert rows: %w", err)
	}

	return rows, nil
}

// Position returns the explicit position when given, otherwise the 1-based
// payload index.
func Position(explicit *int, index int) int {
	if explicit != nil {
		return *explicit
	}
	return index + 1
}
