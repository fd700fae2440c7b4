// Package sections stores the heading copy of individual landing-page
// sections, one row per section key.
package sections
