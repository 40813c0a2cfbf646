package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	csvA = "KipInput,KipUnicode,HanLoTaibunKip\n" +
		"a1,A1,甲\n" +
		"ti1-tsa2,TI1-TSA2,豬灶\n" +
		"a1-b2,X,\n"
	csvB = "KipInput,KipUnicode,HanLoTaibunKip\n" +
		"a1,A1,亞\n" +
		"p1/p2,U1/U2,H\n"
)

func writeSources(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.csv"), []byte(csvA), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.csv"), []byte(csvB), 0o644))

	return dir
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	cmd := newRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestBuildToStdout(t *testing.T) {
	dir := writeSources(t)

	stdout, stderr, err := execute(t, "build", filepath.Join(dir, "*.csv"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(stdout, "%gen_inp\n%ename combo-tailo\n%cname 多漢羅\n"))
	assert.True(t, strings.HasSuffix(stdout, "%chardef end\n"))

	for _, line := range []string{
		"a1 a1", "a1 甲", "a1 亞",
		"ti1 ti1", "ti1 豬", "tsa2 tsa2", "tsa2 灶",
		"ti1tsa2 TI1-TSA2", "ti1tsa2 豬灶",
		"p1 U1", "p1 H", "p2 U2", "p2 H",
		"tsa tsa2", "tsa 灶",
	} {
		assert.Contains(t, stdout, "\n"+line+"\n")
	}

	assert.Contains(t, stderr, "SYLLABLE_UNICODE_MISMATCH")
}

func TestBuildToFile(t *testing.T) {
	dir := writeSources(t)
	out := filepath.Join(dir, "out", "table.cin")

	stdout, _, err := execute(t, "build", "-o", out, "-j", "1",
		filepath.Join(dir, "a.csv"), filepath.Join(dir, "b.csv"))
	require.NoError(t, err)
	assert.Empty(t, stdout)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "%chardef begin\n")
}

func TestBuildUsesConfig(t *testing.T) {
	dir := writeSources(t)
	cfgPath := filepath.Join(dir, "cin.yaml")
	cfg := "engine:\n  ename: only-single\n" +
		"sources:\n  - " + filepath.Join(dir, "a.csv") + "\n" +
		"passes:\n  syllable_split: false\n  concatenated_phrase: false\n  tone_normalization: false\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o644))

	stdout, stderr, err := execute(t, "build", "--config", cfgPath)
	require.NoError(t, err)

	assert.Contains(t, stdout, "%ename only-single\n")
	assert.Contains(t, stdout, "%chardef begin\na1 a1\na1 甲\n%chardef end\n")
	assert.NotContains(t, stderr, "SYLLABLE_UNICODE_MISMATCH")
}

func TestBuildMissingSourceFails(t *testing.T) {
	stdout, stderr, err := execute(t, "build", filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "build aborted")
}

func TestBuildNoSources(t *testing.T) {
	_, stderr, err := execute(t, "build")
	require.Error(t, err)
	assert.Contains(t, stderr, "no dictionary sources given")
}

func TestBuildBadLogLevel(t *testing.T) {
	_, _, err := execute(t, "build", "--log-level", "loud", "x.csv")
	require.Error(t, err)
}

func TestCheck(t *testing.T) {
	dir := writeSources(t)

	stdout, stderr, err := execute(t, "check", "--log-level", "info", filepath.Join(dir, "a.csv"))
	require.NoError(t, err)

	assert.Contains(t, stdout, "a.csv\trows=3\t")
	assert.Contains(t, stdout, "warnings=1\n")
	assert.Contains(t, stderr, "source processed")
	assert.NotContains(t, stdout, "%chardef")
}

func TestCheckReportsLoadFailuresAndContinues(t *testing.T) {
	dir := writeSources(t)

	stdout, stderr, err := execute(t, "check", "-j", "1",
		filepath.Join(dir, "a.csv"), filepath.Join(dir, "missing.csv"))
	require.Error(t, err)

	assert.Contains(t, stdout, "a.csv\trows=3\t")
	assert.Contains(t, stdout, "missing.csv\trows=0\tkeys=0\tpairs=0\twarnings=0\terrors=1\n")
	assert.Contains(t, stderr, "SOURCE_LOAD")
	assert.Contains(t, err.Error(), "missing.csv: [SOURCE_LOAD]")
}

func TestCheckLogsPassesAtDebug(t *testing.T) {
	dir := writeSources(t)

	_, stderr, err := execute(t, "check", "--log-level", "debug", filepath.Join(dir, "b.csv"))
	require.NoError(t, err)

	assert.Contains(t, stderr, "pipeline assembled")
	assert.Contains(t, stderr, "PassSingleWord")
	assert.Contains(t, stderr, "PassToneNormalization")
}

func TestCheckLogsFilteredRows(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "blank.csv")
	require.NoError(t, os.WriteFile(path, []byte("KipInput,KipUnicode\n,X\na1,A1\n"), 0o644))

	_, stderr, err := execute(t, "check", "--log-level", "info", path)
	require.NoError(t, err)
	assert.Contains(t, stderr, "ROWS_WITHOUT_INPUT")
}

func TestConfigPrintsEffectiveConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "cin.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("engine:\n  ename: dumped\n  keyname_skip: \"\"\n"), 0o644))

	stdout, _, err := execute(t, "config", "--config", cfgPath)
	require.NoError(t, err)

	assert.Contains(t, stdout, "ename: dumped")
	assert.Contains(t, stdout, "selkey: qwdfzxyv")
	assert.Contains(t, stdout, "keyname_skip: \"\"")
	assert.Contains(t, stdout, "tone_digits: \"234578\"")

	// the dump is itself a loadable config
	dumped := filepath.Join(dir, "dumped.yaml")
	require.NoError(t, os.WriteFile(dumped, []byte(stdout), 0o644))

	again, _, err := execute(t, "config", "--config", dumped)
	require.NoError(t, err)
	assert.Equal(t, stdout, again)
}
