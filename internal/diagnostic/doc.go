// Package diagnostic provides structured warnings and errors collected while
// dictionary rows are turned into cin map entries.
//
// Passes never log or abort on malformed rows. They record a coded diagnostic
// naming the source and row, skip the affected association and move on.
// Callers decide how to surface the collected diagnostics.
package diagnostic
