package dict

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Columns names the CSV header cells each Row field is read from.
type Columns struct {
	Input      string `yaml:"input"`
	Unicode    string `yaml:"unicode"`
	Han        string `yaml:"han"`
	InputAlt   string `yaml:"input_alt"`
	UnicodeAlt string `yaml:"unicode_alt"`
}

// DefaultColumns returns the ChhoeTaigi column names.
func DefaultColumns() Columns {
	return Columns{
		Input:      "KipInput",
		Unicode:    "KipUnicode",
		Han:        "HanLoTaibunKip",
		InputAlt:   "KipInputOthers",
		UnicodeAlt: "KipUnicodeOthers",
	}
}

// LoadOptions controls how a source is read.
type LoadOptions struct {
	Columns Columns
	// NormalizeNFC composes every cell to Unicode NFC.
	NormalizeNFC bool
}

// Source is a loaded dictionary file.
type Source struct {
	// Name identifies the source in diagnostics.
	Name string
	Rows []Row
}

// ErrMissingColumn is returned when a required column is absent from the header.
var ErrMissingColumn = errors.New("missing required column")

// LoadFile reads a dictionary CSV from path.
func LoadFile(path string, opts LoadOptions) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	src, err := Load(f, opts)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filepath.Base(path), err)
	}

	src.Name = filepath.Base(path)

	return src, nil
}

// Load reads a dictionary CSV with a header row from r.
func Load(r io.Reader, opts LoadOptions) (*Source, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.New("empty file")
	}

	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	idx, err := resolveColumns(header, opts.Columns)
	if err != nil {
		return nil, err
	}

	src := &Source{}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("reading record: %w", err)
		}

		line, _ := reader.FieldPos(0)
		cell := func(i int) string {
			if i < 0 || i >= len(record) {
				return ""
			}

			return cleanCell(record[i], opts.NormalizeNFC)
		}

		src.Rows = append(src.Rows, Row{
			Line:       line,
			Input:      cell(idx.input),
			Unicode:    cell(idx.unicode),
			Han:        Text(cell(idx.han)),
			InputAlt:   Text(cell(idx.inputAlt)),
			UnicodeAlt: Text(cell(idx.unicodeAlt)),
		})
	}

	return src, nil
}

type columnIndex struct {
	input, unicode, han, inputAlt, unicodeAlt int
}

func resolveColumns(header []string, cols Columns) (columnIndex, error) {
	for i := range header {
		header[i] = cleanCell(header[i], false)
	}

	idx := columnIndex{
		input:      findColumn(header, cols.Input),
		unicode:    findColumn(header, cols.Unicode),
		han:        findColumn(header, cols.Han),
		inputAlt:   findColumn(header, cols.InputAlt),
		unicodeAlt: findColumn(header, cols.UnicodeAlt),
	}

	if idx.input < 0 {
		return idx, fmt.Errorf("%w %q", ErrMissingColumn, cols.Input)
	}

	if idx.unicode < 0 {
		return idx, fmt.Errorf("%w %q", ErrMissingColumn, cols.Unicode)
	}

	return idx, nil
}

func findColumn(header []string, name string) int {
	if name == "" {
		return -1
	}

	for i, col := range header {
		if strings.EqualFold(col, name) {
			return i
		}
	}

	return -1
}

func cleanCell(v string, nfc bool) string {
	v = strings.TrimPrefix(v, "\ufeff")
	v = strings.TrimSpace(v)

	if nfc {
		v = norm.NFC.String(v)
	}

	return v
}
