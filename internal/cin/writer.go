package cin

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"cin-generator/internal/cinmap"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Header holds the table metadata printed before %chardef.
type Header struct {
	// EName is the engine name, e.g. "combo-tailo".
	EName string
	// CName is the display name, e.g. "多漢羅".
	CName string
	// SelKey lists the candidate selection keys.
	SelKey string
	// KeynameSkip lists letters left out of the %keyname section.
	KeynameSkip string
}

// DefaultHeader returns the combo-tailo table header.
func DefaultHeader() Header {
	return Header{
		EName:       "combo-tailo",
		CName:       "多漢羅",
		SelKey:      "qwdfzxyv",
		KeynameSkip: "qwdfzxyzv",
	}
}

// Keyname is one %keyname entry.
type Keyname struct {
	Key  string
	Name string
}

// Keynames returns the digits 1..9 and the letters a..z not in skip.
func (h Header) Keynames() []Keyname {
	names := make([]Keyname, 0, 9+26)
	for d := '1'; d <= '9'; d++ {
		names = append(names, Keyname{Key: string(d), Name: string(d)})
	}

	for c := 'a'; c <= 'z'; c++ {
		if strings.ContainsRune(h.KeynameSkip, c) {
			continue
		}

		names = append(names, Keyname{Key: string(c), Name: string(c)})
	}

	return names
}

var cinTemplate = template.Must(template.New("cin").Parse(`%gen_inp
%ename {{.Header.EName}}
%cname {{.Header.CName}}
%encoding UTF-8
%selkey {{.Header.SelKey}}
%keyname begin
{{range .Header.Keynames}}{{.Key}} {{.Name}}
{{end}}%keyname end
%chardef begin
{{.Body}}%chardef end
`))

type templateData struct {
	Header Header
	Body   string
}

// Write renders the full table for m to w.
func Write(w io.Writer, h Header, m cinmap.Map) error {
	if h.SelKey == "" {
		return errors.New("rendering cin table: empty selkey")
	}

	var buf bytes.Buffer

	err := cinTemplate.Execute(&buf, templateData{Header: h, Body: Body(m)})
	if err != nil {
		return fmt.Errorf("rendering cin table: %w", err)
	}

	_, err = w.Write(buf.Bytes())
	if err != nil {
		return fmt.Errorf("writing cin table: %w", err)
	}

	return nil
}

// WriteFile renders the table to path, creating its directory if needed.
func WriteFile(path string, h Header, m cinmap.Map) error {
	err := os.MkdirAll(filepath.Dir(path), dirPerm)
	if err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	var buf bytes.Buffer
	if err := Write(&buf, h, m); err != nil {
		return err
	}

	if err := os.WriteFile(path, buf.Bytes(), filePerm); err != nil {
		return fmt.Errorf("writing file %s: %w", path, err)
	}

	return nil
}
