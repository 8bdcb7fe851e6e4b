// Package report prints rename progress.
//
// Both reporters build the same lines from style markup: the terminal
// reporter renders the styles and adds pterm prefixes, the plain reporter
// strips them. Errors go to the error writer, everything else to the
// output writer. The last line of a run is always
//
//	Total files renamed: N
package report
