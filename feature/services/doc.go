// Package services serves the service catalogue: listing with filters,
// per-slug detail pages, categories and the quote-form picker.
//
// The catalogue is replaced wholesale on every admin save. Slugs are unique;
// a payload repeating a slug is rejected as a conflict and nothing changes.
package services
