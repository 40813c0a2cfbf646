package pipeline

// Config selects the passes a Pipeline runs and the character sets they use.
type Config struct {
	SingleWord         bool
	SyllableSplit      bool
	ConcatenatedPhrase bool
	AltMarker          bool
	SlashAlternative   bool
	ToneNormalization  bool

	// ForeignMarkers exclude a row from the single-word pass.
	ForeignMarkers []string
	// AltMarkers flag literary, vernacular, substitute and colloquial readings.
	AltMarkers []string
	// ToneDigits are deleted from keys by the tone-normalization pass.
	ToneDigits string
}

// DefaultConfig enables every pass with the ChhoeTaigi marker sets.
func DefaultConfig() Config {
	return Config{
		SingleWord:         true,
		SyllableSplit:      true,
		ConcatenatedPhrase: true,
		AltMarker:          true,
		SlashAlternative:   true,
		ToneNormalization:  true,
		ForeignMarkers:     []string{"な"},
		AltMarkers:         []string{"文", "白", "替", "俗"},
		ToneDigits:         "234578",
	}
}

// Enabled reports whether the given pass is switched on.
func (c Config) Enabled(kind PassKind) bool {
	switch kind {
	case PassSingleWord:
		return c.SingleWord
	case PassSyllableSplit:
		return c.SyllableSplit
	case PassConcatenatedPhrase:
		return c.ConcatenatedPhrase
	case PassAltMarker:
		return c.AltMarker
	case PassSlashAlternative:
		return c.SlashAlternative
	case PassToneNormalization:
		return c.ToneNormalization
	default:
		return false
	}
}
