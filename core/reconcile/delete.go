package reconcile

import (
	"site-cms/core/response"

	"gorm.io/gorm"
)

// DeleteByID removes the row of M with the given id. Owned children go with
// it through their ON DELETE CASCADE foreign keys. A missing row yields a
// not-found error carrying notFound as its message.
func DeleteByID[M any](tx *gorm.DB, id, notFound string) error {
	res := tx.Where("id = ?", id).Delete(new(M))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return response.NotFound(notFound)
	}
	return nil
}
