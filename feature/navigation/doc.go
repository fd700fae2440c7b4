// Package navigation serves the site menu and its dropdown panels.
//
// Nav items are addressed by their unique key: an admin save upserts each
// submitted item and leaves any other item alone. The links of a dropdown are
// owned by it and are replaced wholesale whenever the dropdown is saved.
// Deleting a nav item removes its dropdown and links through cascading
// foreign keys.
package navigation
