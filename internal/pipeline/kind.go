package pipeline

//go:generate go tool stringer -type=PassKind -output=kind_string.go

// PassKind identifies one key derivation pass.
type PassKind int

const (
	_ PassKind = iota // zero value is not a pass

	PassSingleWord
	PassSyllableSplit
	PassConcatenatedPhrase
	PassAltMarker
	PassSlashAlternative
	PassToneNormalization
)

// Order is the order passes run in. Tone normalization must stay last since
// it works over every key the other passes produced.
var Order = []PassKind{
	PassSingleWord,
	PassSyllableSplit,
	PassConcatenatedPhrase,
	PassAltMarker,
	PassSlashAlternative,
	PassToneNormalization,
}
