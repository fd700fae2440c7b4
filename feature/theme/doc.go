// Package theme stores the site's brand colors, company name and logo.
//
// There is exactly one theme row. It lives under a fixed id and every save is
// an upsert of that row. Public pages receive the theme as part of the
// navigation payload.
package theme
