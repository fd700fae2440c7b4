// Package uploads accepts admin file uploads, stores their bytes in object
// storage and keeps a metadata row per file.
//
// Bytes are written before the row and outside any transaction. A crash in
// between leaves an object with no row; FindOrphans reports those and
// PurgeOrphans removes them on request. Deleting a file removes the row first
// and then tries to remove the object: a failed object removal is logged and
// the delete still succeeds, because the row is the source of truth.
//
// # Accepted files
//
// Size must not exceed storage.max_upload_bytes (10 MiB by default) and the
// content type must be in AllowedTypes. A missing or generic declared type is
// replaced by one sniffed from the leading bytes.
package uploads
