// Package pages serves per-page copy and the call-to-action banners shown on
// each page.
//
// Page content is one row per page key, created on first save and overwritten
// afterwards. Call-to-actions are grouped by page key: a save replaces the
// banners of every page it mentions and leaves other pages alone.
package pages
