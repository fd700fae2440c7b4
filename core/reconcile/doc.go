// Package reconcile makes stored content match an incoming snapshot.
//
// Every admin save in the CMS sends the complete desired state of a content
// family. This package provides the write strategies that bring the database
// in line with that state:
//
//   - ReplaceAll deletes every row in a scope and inserts the payload in order.
//     Ids change on every save; used where nothing external points at a row.
//   - Reconcile diffs persisted ids against incoming ids, updating survivors in
//     place, creating new items and deleting the rest. Row identity is kept.
//   - UpsertByKey writes one row addressed by a business key (or a fixed
//     singleton id) without touching its siblings.
//   - DeleteByID removes a single row and lets foreign keys cascade.
//
// None of these open a transaction. Callers wrap each save in db.Transaction
// so a failure leaves the previous content untouched.
//
// # Identifiers
//
// Clients mint ids prefixed with "temp-" for rows they have not saved yet.
// Such ids, and empty ids, always mean "create". A real-looking id that no
// longer exists is also created, with a warning, instead of failing the save.
//
// # Usage Example
//
//	err := db.Transaction(func(tx *gorm.DB) error {
//	    counts, err = reconcile.Reconcile(tx, logger, "testimonial", items)
//	    return err
//	})
package reconcile
