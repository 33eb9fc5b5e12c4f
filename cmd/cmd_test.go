package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var buf, errBuf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&errBuf)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	if err != nil {
		t.Log(errBuf.String())
	}
	return buf.String(), err
}

func TestCommands_DemoFlow(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("FINECHECK_LLM_PROVIDER", "demo")
	t.Setenv("FINECHECK_LOCALE", "en")
	db := filepath.Join(dir, "finecheck.db")

	out, err := execute(t, "", "fine", "add", "--db", db,
		"--report", "TA-1", "--date", "2024-05-12", "--location", "Dizengoff 50",
		"--violation", "Parking in a loading zone", "--amount", "250 ILS")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Stored fine TA-1.")

	out, err = execute(t, "", "fine", "list", "--db", db)
	require.NoError(t, err, out)
	assert.Contains(t, out, "TA-1")
	assert.Contains(t, out, "Parking in a loading zone")

	out, err = execute(t, "", "analyze", "TA-1", "--db", db, "--json")
	require.NoError(t, err, out)
	var res struct {
		Model   string `json:"model"`
		Verdict struct {
			Category  string   `json:"category"`
			KeyPoints []string `json:"key_points"`
		} `json:"verdict"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res), out)
	assert.Equal(t, "demo", res.Model)
	assert.NotEmpty(t, res.Verdict.Category)
	assert.Len(t, res.Verdict.KeyPoints, 4)

	out, err = execute(t, "", "letter", "TA-1", "--db", db, "--mode", "arguments", "--json")
	require.NoError(t, err, out)
	var l struct {
		Arguments []string `json:"arguments"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &l), out)
	assert.Len(t, l.Arguments, 6)

	out, err = execute(t, "", "history", "--db", db)
	require.NoError(t, err, out)
	assert.Contains(t, out, "analysis")
	assert.Contains(t, out, "TA-1")

	out, err = execute(t, "", "llm", "list", "--db", db)
	require.NoError(t, err, out)
	assert.Contains(t, out, "fine-analysis")
	assert.Contains(t, out, "contest-arguments")

	out, err = execute(t, "", "fine", "rm", "TA-1", "--db", db)
	require.NoError(t, err, out)
	_, err = execute(t, "", "fine", "show", "TA-1", "--db", db)
	assert.Error(t, err)
}

func TestClassifyCommand(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	db := filepath.Join(dir, "finecheck.db")

	out, err := execute(t, "Summary: ok\n\nResult: correct", "classify", "-", "--db", db, "--json")
	require.NoError(t, err, out)
	var v struct {
		Category string `json:"category"`
		Trace    struct {
			Pass string `json:"pass"`
		} `json:"trace"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &v), out)
	assert.Equal(t, "favorable", v.Category)
	assert.Equal(t, "label", v.Trace.Pass)

	doc := filepath.Join(dir, "doc.txt")
	require.NoError(t, os.WriteFile(doc, []byte("Result: incorrect"), 0o644))
	out, err = execute(t, "", "classify", doc, "--db", db, "--json=false", "--trace")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Not in your favor")
	assert.Contains(t, out, "Decided by: label")
}

func TestResetCommand(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	db := filepath.Join(dir, "finecheck.db")
	require.NoError(t, os.WriteFile(db, []byte("x"), 0o644))

	_, err := execute(t, "", "reset", "--db", db)
	require.Error(t, err)
	assert.FileExists(t, db)

	out, err := execute(t, "", "reset", "--db", db, "--yes")
	require.NoError(t, err, out)
	assert.NoFileExists(t, db)
}

func TestVersionCommand(t *testing.T) {
	t.Chdir(t.TempDir())
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "finecheck (devel)\n", out)
}
