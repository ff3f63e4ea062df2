// Package ledger derives the dashboard's view of a transaction batch:
// the date-range filter, the count/total summary and the page window.
//
// Every function here is pure. Callers recompute from the current inputs;
// FilterCache exists only so repeated renders with unchanged bounds reuse
// the previous filter result.
package ledger
