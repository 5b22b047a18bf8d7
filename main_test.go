package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Monday 2 October 2023
var testNow = time.Date(2023, time.October, 2, 9, 0, 0, 0, time.UTC)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	a := newApp()
	a.now = func() time.Time { return testNow }
	cmd := newRootCmd(a)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func testBaseDir(t *testing.T) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	return t.TempDir()
}

func writeFile(t *testing.T, name, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(name), 0755))
	require.NoError(t, os.WriteFile(name, []byte(content), 0644))
}

func TestPathDefaults(t *testing.T) {
	base := testBaseDir(t)

	out, err := runCmd(t, "--base-dir", base, "path")
	require.NoError(t, err)
	assert.Equal(t, "2023-10-02.md\n", out)

	out, err = runCmd(t, "--base-dir", base, "path", "--abs", "tomorrow")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "2023-10-03.md")+"\n", out)
}

func TestPathLiteralFolderFromEnv(t *testing.T) {
	base := testBaseDir(t)
	t.Setenv("PERIODIC_DAILY_FOLDER", "Steve's Brain")

	out, err := runCmd(t, "--base-dir", base, "path")
	require.NoError(t, err)
	assert.Equal(t, "Steve's Brain/2023-10-02.md\n", out)
}

func TestPathTemplateFolderFromConfigFile(t *testing.T) {
	base := testBaseDir(t)
	cfgFile := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, cfgFile, `
[daily]
folder = "yyyy/MM"

[weekly]
folder = "yyyy-'Weekly notes'"
`)

	out, err := runCmd(t, "--config", cfgFile, "--base-dir", base, "path", "2023-10-05")
	require.NoError(t, err)
	assert.Equal(t, "2023/10/2023-10-05.md\n", out)

	out, err = runCmd(t, "--config", cfgFile, "--base-dir", base, "path", "--kind", "weekly", "2023-10-05")
	require.NoError(t, err)
	assert.Equal(t, "2023-Weekly notes/2023-W40.md\n", out)
}

func TestPathOtherKinds(t *testing.T) {
	base := testBaseDir(t)
	tests := map[string]string{
		"monthly":   "2023-10.md\n",
		"quarterly": "2023-Q4.md\n",
		"yearly":    "2023.md\n",
	}
	for kind, want := range tests {
		out, err := runCmd(t, "--base-dir", base, "path", "-k", kind)
		require.NoError(t, err, kind)
		assert.Equal(t, want, out, kind)
	}
}

func TestPathErrors(t *testing.T) {
	base := testBaseDir(t)

	_, err := runCmd(t, "--base-dir", base, "path", "next week")
	assert.ErrorIs(t, err, errBadDate)

	_, err = runCmd(t, "--base-dir", base, "path", "--kind", "hourly")
	assert.Error(t, err)

	_, err = runCmd(t, "--config", filepath.Join(base, "missing.toml"), "path")
	assert.Error(t, err)
}

func TestNewCreatesNote(t *testing.T) {
	base := testBaseDir(t)
	t.Setenv("PERIODIC_DAILY_FOLDER", "Daily notes")

	out, err := runCmd(t, "--base-dir", base, "new")
	require.NoError(t, err)
	f := filepath.Join(base, "Daily notes", "2023-10-02.md")
	assert.Equal(t, f+"\n", out)

	b, err := os.ReadFile(f)
	require.NoError(t, err)
	assert.Contains(t, string(b), "Monday, 2 October 2023")

	_, err = runCmd(t, "--base-dir", base, "new")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = runCmd(t, "--base-dir", base, "new", "--force")
	assert.NoError(t, err)
}

func TestNewCarriesOpenItems(t *testing.T) {
	base := testBaseDir(t)
	writeFile(t, filepath.Join(base, "2023-10-01.md"), `# Sunday

## Inbox

- [ ] carry me
- [x] done task
- [C] cancelled task

## Other

- [ ] stay behind
`)

	_, err := runCmd(t, "--base-dir", base, "new", "--carry", "Inbox", "--carry", "Rolled Over")
	require.NoError(t, err)

	b, err := os.ReadFile(filepath.Join(base, "2023-10-02.md"))
	require.NoError(t, err)
	note := string(b)
	assert.Contains(t, note, "Inbox")
	assert.Contains(t, note, "Rolled Over")
	assert.Contains(t, note, "carry me")
	assert.NotContains(t, note, "done task")
	assert.NotContains(t, note, "cancelled task")
	assert.NotContains(t, note, "stay behind")
}

func TestNewWeeklyTitle(t *testing.T) {
	base := testBaseDir(t)

	out, err := runCmd(t, "--base-dir", base, "new", "-k", "weekly")
	require.NoError(t, err)

	b, err := os.ReadFile(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Contains(t, string(b), "Week 40, 2023")
}

func TestShow(t *testing.T) {
	base := testBaseDir(t)
	old := isTerminal
	isTerminal = func(io.Writer) bool { return false }
	defer func() { isTerminal = old }()

	writeFile(t, filepath.Join(base, "2023-10-02.md"), "# Today\n\n- [ ] something\n")
	out, err := runCmd(t, "--base-dir", base, "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Today")
	assert.Contains(t, out, "something")

	_, err = runCmd(t, "--base-dir", base, "show", "yesterday")
	assert.Error(t, err)
}

func TestDays(t *testing.T) {
	base := testBaseDir(t)

	out, err := runCmd(t, "--base-dir", base, "days", "-n", "3")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Today, 2023-10-02, Mon, 2023-10-02.md",
		"Tomorrow, 2023-10-03, Tue, 2023-10-03.md",
		"2023-10-04, Wed, 2023-10-04.md",
	}, strings.Split(strings.TrimSpace(out), "\n"))

	out, err = runCmd(t, "--base-dir", base, "days", "-n", "2", "-k", "monthly")
	require.NoError(t, err)
	assert.Equal(t, "Current, 2023-10-01, Sun, 2023-10.md\nNext, 2023-11-01, Wed, 2023-11.md\n", out)
}

func TestHeadings(t *testing.T) {
	base := testBaseDir(t)
	f := filepath.Join(base, "note.md")
	writeFile(t, f, "# Title\n\ntext\n\n## Inbox *now*\n\n### Sub\n")

	out, err := runCmd(t, "--base-dir", base, "headings", f)
	require.NoError(t, err)
	assert.Equal(t, "# Title\n## Inbox now\n### Sub\n", out)
}

func TestKindsAndStatuses(t *testing.T) {
	base := testBaseDir(t)

	out, err := runCmd(t, "--base-dir", base, "kinds")
	require.NoError(t, err)
	assert.Contains(t, out, `daily      folder="" format="yyyy-MM-dd"`)
	assert.Equal(t, 5, strings.Count(out, "\n"))

	out, err = runCmd(t, "--base-dir", base, "statuses")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "[ ] Todo\n"))
	assert.Contains(t, out, "[x] Done\n")
}

func TestConfigCmd(t *testing.T) {
	base := testBaseDir(t)

	out, err := runCmd(t, "--base-dir", base, "config")
	require.NoError(t, err)
	var cfg Config
	require.NoError(t, json.Unmarshal([]byte(out), &cfg))
	assert.Equal(t, base, cfg.BaseDir)
	assert.Equal(t, "yyyy-MM-dd", cfg.Daily.Format)

	out, err = runCmd(t, "--base-dir", base, "config", "--format", "toml")
	require.NoError(t, err)
	assert.Contains(t, out, "base_dir = ")
	assert.Contains(t, out, "[daily]")

	out, err = runCmd(t, "--base-dir", base, "config", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "base_dir: ")

	_, err = runCmd(t, "--base-dir", base, "config", "--format", "xml")
	assert.Error(t, err)
}

func TestParseDate(t *testing.T) {
	tests := map[string]time.Time{
		"":           testNow,
		"today":      testNow,
		"yesterday":  testNow.AddDate(0, 0, -1),
		"tomorrow":   testNow.AddDate(0, 0, 1),
		"2024-02-29": time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC),
		"2024/02/29": time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC),
		"20240229":   time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC),
	}
	for in, want := range tests {
		got, err := parseDate(in, testNow)
		require.NoError(t, err, in)
		assert.True(t, want.Equal(got), "%q: got %v", in, got)
	}

	_, err := parseDate("2023-02-30", testNow)
	assert.ErrorIs(t, err, errBadDate)
}

func TestWeeklyNoteWithSundayStart(t *testing.T) {
	base := testBaseDir(t)

	out, err := runCmd(t, "--base-dir", base, "--week-starts-on", "0", "path", "--kind", "weekly", "2023-10-04")
	require.NoError(t, err)
	assert.Equal(t, "2023-W40.md\n", out)

	out, err = runCmd(t, "--base-dir", base, "--week-starts-on", "1", "path", "--kind", "weekly", "2023-10-04")
	require.NoError(t, err)
	assert.Equal(t, "2023-W40.md\n", out)

	out, err = runCmd(t, "--base-dir", base, "--week-starts-on", "0", "new", "-k", "weekly", "2023-10-04")
	require.NoError(t, err)
	b, err := os.ReadFile(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Contains(t, string(b), "Week 40, 2023")
}
