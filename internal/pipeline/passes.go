package pipeline

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"cin-generator/internal/cinmap"
	"cin-generator/internal/diagnostic"
	"cin-generator/internal/dict"
)

// Env carries what a pass needs besides rows and the map.
type Env struct {
	// Source names the dictionary the rows came from, for diagnostics.
	Source string
	Config Config
}

// PassFunc is one key derivation pass. It returns a new map holding every
// association of in plus its own; in is not modified.
type PassFunc func(env Env, rows []dict.Row, in cinmap.Map) (cinmap.Map, diagnostic.Diagnostics)

// Func returns the implementation of a pass kind.
func Func(kind PassKind) (PassFunc, bool) {
	switch kind {
	case PassSingleWord:
		return SingleWord, true
	case PassSyllableSplit:
		return SyllableSplit, true
	case PassConcatenatedPhrase:
		return ConcatenatedPhrase, true
	case PassAltMarker:
		return AltMarker, true
	case PassSlashAlternative:
		return SlashAlternative, true
	case PassToneNormalization:
		return ToneNormalization, true
	default:
		return nil, false
	}
}

// SingleWord maps a plain word to its lowercased unicode and its Han form.
func SingleWord(env Env, rows []dict.Row, in cinmap.Map) (cinmap.Map, diagnostic.Diagnostics) {
	out := in.Clone()

	for _, row := range rows {
		if !IsSingleWord(row.Input, env.Config.ForeignMarkers) {
			continue
		}

		key := strings.ToLower(row.Input)
		out.Add(key, strings.ToLower(row.Unicode))

		if row.Han != nil {
			out.Add(key, *row.Han)
		}
	}

	return out, diagnostic.Diagnostics{}
}

// SyllableSplit maps each syllable of a hyphenated compound to the matching
// unicode syllable and, when the counts line up, to the matching Han character.
func SyllableSplit(env Env, rows []dict.Row, in cinmap.Map) (cinmap.Map, diagnostic.Diagnostics) {
	out := in.Clone()

	var diags diagnostic.Diagnostics

	for _, row := range rows {
		if !IsHyphenatedCompound(row.Input) {
			continue
		}

		syllables := strings.Split(row.Input, "-")
		readings := strings.Split(row.Unicode, "-")

		if len(syllables) == len(readings) {
			for i, s := range syllables {
				out.Add(strings.ToLower(s), strings.ToLower(readings[i]))
			}
		} else {
			diags.AddWarning(diagnostic.CodeSyllableUnicodeMismatch,
				fmt.Sprintf("%q has %d syllables but unicode %q has %d",
					row.Input, len(syllables), row.Unicode, len(readings)),
				env.Source, row.Line)
		}

		if row.Han == nil {
			continue
		}

		han := []rune(*row.Han)
		if len(han) != len(syllables) {
			diags.AddWarning(diagnostic.CodeSyllableHanMismatch,
				fmt.Sprintf("%q has %d syllables but han %q has %d characters",
					row.Input, len(syllables), *row.Han, utf8.RuneCountInString(*row.Han)),
				env.Source, row.Line)

			continue
		}

		for i, s := range syllables {
			out.Add(strings.ToLower(s), string(han[i]))
		}
	}

	return out, diags
}

// ConcatenatedPhrase maps a hyphenated compound typed without hyphens to the
// intact unicode and Han renderings.
func ConcatenatedPhrase(env Env, rows []dict.Row, in cinmap.Map) (cinmap.Map, diagnostic.Diagnostics) {
	out := in.Clone()

	for _, row := range rows {
		if !IsHyphenatedCompound(row.Input) {
			continue
		}

		key := strings.ToLower(strings.ReplaceAll(row.Input, "-", ""))
		out.Add(key, row.Unicode)

		if row.Han != nil {
			out.Add(key, *row.Han)
		}
	}

	return out, diagnostic.Diagnostics{}
}

// AltMarker maps the root in front of an alternative-reading marker to the
// unicode root and the Han form. A secondary pronunciation pair on the row is
// added under its own key.
func AltMarker(env Env, rows []dict.Row, in cinmap.Map) (cinmap.Map, diagnostic.Diagnostics) {
	out := in.Clone()
	markers := env.Config.AltMarkers

	for _, row := range rows {
		if !HasAltMarker(row.Input, markers) {
			continue
		}

		key := strings.ToLower(beforeMarker(row.Input, markers))
		out.Add(key, beforeMarker(row.Unicode, markers))

		if row.Han != nil {
			out.Add(key, *row.Han)
		}

		if row.InputAlt == nil || row.UnicodeAlt == nil {
			continue
		}

		if strings.ContainsAny(*row.InputAlt, "-/") {
			continue
		}

		out.Add(strings.ToLower(beforeParen(*row.InputAlt)), strings.ToLower(beforeParen(*row.UnicodeAlt)))
	}

	return out, diagnostic.Diagnostics{}
}

// SlashAlternative maps each slash-separated reading, typed without spaces or
// hyphens, to its unicode reading and the row's shared Han form.
func SlashAlternative(env Env, rows []dict.Row, in cinmap.Map) (cinmap.Map, diagnostic.Diagnostics) {
	out := in.Clone()

	var diags diagnostic.Diagnostics

	for _, row := range rows {
		if !HasSlashAlternatives(row.Input) {
			continue
		}

		inputs := splitTrim(row.Input, "/")
		readings := splitTrim(row.Unicode, "/")

		if len(inputs) != len(readings) {
			diags.AddWarning(diagnostic.CodeSlashAlternativeMismatch,
				fmt.Sprintf("%q has %d alternatives but unicode %q has %d",
					row.Input, len(inputs), row.Unicode, len(readings)),
				env.Source, row.Line)

			continue
		}

		for i, alt := range inputs {
			key := strings.ToLower(stripSeparators(alt))
			out.Add(key, readings[i])

			if row.Han != nil {
				out.Add(key, *row.Han)
			}
		}
	}

	return out, diags
}

// ToneNormalization unions every key's candidates into the bucket of the same
// key with its tone digits removed. It reads the map only; rows are ignored.
func ToneNormalization(env Env, _ []dict.Row, in cinmap.Map) (cinmap.Map, diagnostic.Diagnostics) {
	out := in.Clone()

	for _, key := range in.Keys() {
		bare := stripTones(key, env.Config.ToneDigits)
		if bare == key || bare == "" {
			continue
		}

		out.AddAll(bare, in[key])
	}

	return out, diagnostic.Diagnostics{}
}
