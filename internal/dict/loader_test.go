package dict

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = "\ufeffDictWordID,KipInput,KipUnicode,HanLoTaibunKip,KipInputOthers,KipUnicodeOthers\n" +
	"1,a1,A1,甲,,\n" +
	"2,ti1-tsa2,TI1-TSA2,豬灶,,\n" +
	"3,,,空,,\n" +
	"4,p1/p2,U1/U2,H,p3(替),U3(替)\n"

func TestLoad(t *testing.T) {
	src, err := Load(strings.NewReader(sampleCSV), LoadOptions{Columns: DefaultColumns()})
	require.NoError(t, err)
	require.Len(t, src.Rows, 4)

	first := src.Rows[0]
	assert.Equal(t, 2, first.Line)
	assert.Equal(t, "a1", first.Input)
	assert.Equal(t, "A1", first.Unicode)
	require.NotNil(t, first.Han)
	assert.Equal(t, "甲", *first.Han)
	assert.Nil(t, first.InputAlt)
	assert.Nil(t, first.UnicodeAlt)

	last := src.Rows[3]
	assert.Equal(t, 5, last.Line)
	require.NotNil(t, last.InputAlt)
	assert.Equal(t, "p3(替)", *last.InputAlt)
	require.NotNil(t, last.UnicodeAlt)
	assert.Equal(t, "U3(替)", *last.UnicodeAlt)
}

func TestLoadOptionalColumnsMissing(t *testing.T) {
	data := "KipUnicode,KipInput\nA1,a1\n"

	src, err := Load(strings.NewReader(data), LoadOptions{Columns: DefaultColumns()})
	require.NoError(t, err)
	require.Len(t, src.Rows, 1)
	assert.Equal(t, "a1", src.Rows[0].Input)
	assert.Equal(t, "A1", src.Rows[0].Unicode)
	assert.Nil(t, src.Rows[0].Han)
}

func TestLoadMissingRequiredColumn(t *testing.T) {
	_, err := Load(strings.NewReader("KipInput,HanLoTaibunKip\na1,甲\n"), LoadOptions{Columns: DefaultColumns()})
	require.ErrorIs(t, err, ErrMissingColumn)
	assert.Contains(t, err.Error(), "KipUnicode")
}

func TestLoadEmpty(t *testing.T) {
	_, err := Load(strings.NewReader(""), LoadOptions{Columns: DefaultColumns()})
	require.Error(t, err)
}

func TestLoadNormalizesNFC(t *testing.T) {
	data := "KipInput,KipUnicode\na2,a\u0301\n"

	src, err := Load(strings.NewReader(data), LoadOptions{Columns: DefaultColumns(), NormalizeNFC: true})
	require.NoError(t, err)
	assert.Equal(t, "\u00e1", src.Rows[0].Unicode)

	src, err = Load(strings.NewReader(data), LoadOptions{Columns: DefaultColumns()})
	require.NoError(t, err)
	assert.Equal(t, "a\u0301", src.Rows[0].Unicode)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ChhoeTaigi_Test.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o644))

	src, err := LoadFile(path, LoadOptions{Columns: DefaultColumns()})
	require.NoError(t, err)
	assert.Equal(t, "ChhoeTaigi_Test.csv", src.Name)
	assert.Len(t, src.Rows, 4)

	_, err = LoadFile(filepath.Join(dir, "missing.csv"), LoadOptions{Columns: DefaultColumns()})
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestFilter(t *testing.T) {
	rows := []Row{
		{Input: "a1"},
		{Input: ""},
		{Input: "   "},
		{Input: "ti1-tsa2"},
	}

	got := Filter(rows)

	require.Len(t, got, 2)
	assert.Equal(t, "a1", got[0].Input)
	assert.Equal(t, "ti1-tsa2", got[1].Input)
}

func TestText(t *testing.T) {
	assert.Nil(t, Text(""))
	require.NotNil(t, Text("甲"))
	assert.Equal(t, "甲", *Text("甲"))
}
