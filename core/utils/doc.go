// Package utils provides small conversion helpers shared by the feature handlers.
// They normalise loose query-string filters (featured=true, limit=6) and trim
// optional payload strings, so handlers stay free of strconv boilerplate.
package utils
