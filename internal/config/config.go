package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"cin-generator/internal/cin"
	"cin-generator/internal/dict"
	"cin-generator/internal/pipeline"
)

// File is the parsed configuration file.
type File struct {
	Version        string       `yaml:"version"`
	Engine         Engine       `yaml:"engine"`
	Sources        []string     `yaml:"sources,omitempty"`
	Columns        dict.Columns `yaml:"columns"`
	NormalizeNFC   *bool        `yaml:"normalize_nfc,omitempty"`
	Passes         Passes       `yaml:"passes"`
	ForeignMarkers []string     `yaml:"foreign_markers,omitempty"`
	AltMarkers     []string     `yaml:"alt_markers,omitempty"`
	ToneDigits     *string      `yaml:"tone_digits,omitempty"`
}

// Engine holds the .cin header values.
type Engine struct {
	EName       string `yaml:"ename"`
	CName       string `yaml:"cname"`
	SelKey      string `yaml:"selkey"`
	// KeynameSkip is kept when explicitly empty; nil means the default set.
	KeynameSkip *string `yaml:"keyname_skip,omitempty"`
}

// Passes toggles the key derivation passes. A nil toggle means enabled.
type Passes struct {
	SingleWord         *bool `yaml:"single_word,omitempty"`
	SyllableSplit      *bool `yaml:"syllable_split,omitempty"`
	ConcatenatedPhrase *bool `yaml:"concatenated_phrase,omitempty"`
	AltMarker          *bool `yaml:"alt_marker,omitempty"`
	SlashAlternative   *bool `yaml:"slash_alternative,omitempty"`
	ToneNormalization  *bool `yaml:"tone_normalization,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() *File {
	f := &File{}
	applyDefaults(f)

	return f
}

// LoadFile loads and parses a YAML config file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a File and validates it.
func Parse(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&f)

	if err := f.Validate(); err != nil {
		return nil, err
	}

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}

	header := cin.DefaultHeader()
	if f.Engine.EName == "" {
		f.Engine.EName = header.EName
	}

	if f.Engine.CName == "" {
		f.Engine.CName = header.CName
	}

	if f.Engine.SelKey == "" {
		f.Engine.SelKey = header.SelKey
	}

	if f.Engine.KeynameSkip == nil {
		f.Engine.KeynameSkip = &header.KeynameSkip
	}

	cols := dict.DefaultColumns()
	if f.Columns.Input == "" {
		f.Columns.Input = cols.Input
	}

	if f.Columns.Unicode == "" {
		f.Columns.Unicode = cols.Unicode
	}

	if f.Columns.Han == "" {
		f.Columns.Han = cols.Han
	}

	if f.Columns.InputAlt == "" {
		f.Columns.InputAlt = cols.InputAlt
	}

	if f.Columns.UnicodeAlt == "" {
		f.Columns.UnicodeAlt = cols.UnicodeAlt
	}

	if f.NormalizeNFC == nil {
		f.NormalizeNFC = boolPtr(true)
	}

	defaults := pipeline.DefaultConfig()
	if f.ForeignMarkers == nil {
		f.ForeignMarkers = defaults.ForeignMarkers
	}

	if f.AltMarkers == nil {
		f.AltMarkers = defaults.AltMarkers
	}

	if f.ToneDigits == nil {
		f.ToneDigits = &defaults.ToneDigits
	}
}

// Validate reports configuration values no build can work with.
func (f *File) Validate() error {
	var errs []error

	if f.Version != "1" {
		errs = append(errs, fmt.Errorf("unsupported config version %q", f.Version))
	}

	if f.Engine.EName == "" {
		errs = append(errs, errors.New("engine.ename must not be empty"))
	}

	if f.Engine.SelKey == "" {
		errs = append(errs, errors.New("engine.selkey must not be empty"))
	}

	for _, d := range deref(f.ToneDigits) {
		if d < '0' || d > '9' {
			errs = append(errs, fmt.Errorf("tone_digits: %q is not a digit", d))
		}
	}

	return errors.Join(errs...)
}

// Header returns the .cin header described by the engine section.
func (f *File) Header() cin.Header {
	return cin.Header{
		EName:       f.Engine.EName,
		CName:       f.Engine.CName,
		SelKey:      f.Engine.SelKey,
		KeynameSkip: deref(f.Engine.KeynameSkip),
	}
}

// LoadOptions returns how dictionary sources are read.
func (f *File) LoadOptions() dict.LoadOptions {
	return dict.LoadOptions{
		Columns:      f.Columns,
		NormalizeNFC: enabled(f.NormalizeNFC),
	}
}

// Pipeline returns the pass configuration.
func (f *File) Pipeline() pipeline.Config {
	return pipeline.Config{
		SingleWord:         enabled(f.Passes.SingleWord),
		SyllableSplit:      enabled(f.Passes.SyllableSplit),
		ConcatenatedPhrase: enabled(f.Passes.ConcatenatedPhrase),
		AltMarker:          enabled(f.Passes.AltMarker),
		SlashAlternative:   enabled(f.Passes.SlashAlternative),
		ToneNormalization:  enabled(f.Passes.ToneNormalization),
		ForeignMarkers:     f.ForeignMarkers,
		AltMarkers:         f.AltMarkers,
		ToneDigits:         deref(f.ToneDigits),
	}
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

func enabled(b *bool) bool {
	return b == nil || *b
}

func boolPtr(b bool) *bool {
	return &b
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
