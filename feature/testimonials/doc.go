// Package testimonials serves customer quotes.
//
// Admin saves are diff-reconciled rather than replaced: rows whose id appears
// in the payload are updated in place, new rows are created, and rows missing
// from the payload are deleted. The save reports how many of each happened.
package testimonials
