// Package dict loads ChhoeTaigi dictionary exports into rows and filters out
// rows that carry nothing a user could type.
//
// Sources are CSV files with a header row. Columns are looked up by name, so
// the column order of an export does not matter. Optional cells that are
// empty load as nil, which is how the rest of the tool spells "absent".
package dict
