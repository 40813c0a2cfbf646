package cin

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cin-generator/internal/cinmap"
)

func TestKeynames(t *testing.T) {
	names := DefaultHeader().Keynames()

	var keys []string
	for _, n := range names {
		assert.Equal(t, n.Key, n.Name)
		keys = append(keys, n.Key)
	}

	assert.Equal(t, strings.Split("1 2 3 4 5 6 7 8 9 a b c e g h i j k l m n o p r s t u", " "), keys)
}

func TestWrite(t *testing.T) {
	m := cinmap.New()
	m.Add("a1", "甲")

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, Header{EName: "test", CName: "測試", SelKey: "12", KeynameSkip: "bcdefghijklmnopqrstuvwxyz"}, m))

	want := `%gen_inp
%ename test
%cname 測試
%encoding UTF-8
%selkey 12
%keyname begin
1 1
2 2
3 3
4 4
5 5
6 6
7 7
8 8
9 9
a a
%keyname end
%chardef begin
a1 甲
%chardef end
`
	assert.Equal(t, want, buf.String())
}

func TestWriteEmptySelKey(t *testing.T) {
	err := Write(&bytes.Buffer{}, Header{EName: "x"}, cinmap.New())
	require.Error(t, err)
}

func TestWriteFile(t *testing.T) {
	m := cinmap.New()
	m.Add("a", "x")

	path := filepath.Join(t.TempDir(), "out", "combo-tailo.cin")
	require.NoError(t, WriteFile(path, DefaultHeader(), m))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%gen_inp\n%ename combo-tailo\n"))
	assert.Contains(t, string(data), "%chardef begin\na x\n%chardef end\n")
}
