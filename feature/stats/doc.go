// Package stats serves the landing-page headline figures.
//
// Admin saves replace the whole list; ids are reissued on every save.
package stats
