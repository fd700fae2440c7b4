// Package footer manages the site footer: link columns, contact details and
// social profiles.
//
// Each of the three lists is saved whole. A save deletes the previous list
// and inserts the submitted one in a single transaction, so every save mints
// new ids. Footer links are written with their column in the same insert,
// after the column row has its id.
//
// The public footer read runs its three queries concurrently and fails as a
// whole if any of them fails.
package footer
