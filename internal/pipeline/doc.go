// Package pipeline derives input-method keys from dictionary rows.
//
// Each pass models one way a user may type the same lexical entry:
//   - single-word: the exact romanized form, e.g. "a1"
//   - syllable-split: one syllable of a hyphenated compound, e.g. "ti1"
//   - concatenated-phrase: the whole compound without separators, e.g. "ti1tsa2"
//   - alternative-marker: the root before a literary/vernacular/substitute/colloquial marker
//   - slash-alternative: one reading out of a slash-separated list
//   - tone-normalization: any key above with its tone digits left out
//
// After tone normalization every key holding a tone digit has a tone-free
// counterpart whose candidates are a superset of its own. The one exception
// is a key made only of tone digits, such as "2": it would strip to the empty
// key, which cannot be typed or printed, so it is left without a counterpart.
//
// Passes are pure: they take the rows and the map built so far and return a
// new map plus the diagnostics they raised. A Pipeline runs the enabled
// passes in that fixed order over the same filtered rows.
package pipeline
