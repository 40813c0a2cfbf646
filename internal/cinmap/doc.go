// Package cinmap provides the multi-valued key to candidate-set map that
// every dictionary source fills, and the merger that unions those maps.
//
// A key is what the user types; a candidate is one string the input method
// offers for it. Candidate sets have no order and never hold duplicates.
// Maps only grow: nothing in this package removes a key or a candidate.
package cinmap
