package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NouGithub/sdcv/pkg/testutil"
)

// run executes a fresh root command with the given args and returns
// captured stdout/stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd := NewRootCmd()
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestVersionFlag(t *testing.T) {
	out, _, err := run(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "Console version of Stardict, version")
}

func TestListDicts(t *testing.T) {
	home := t.TempDir()
	dataDir := t.TempDir()
	t.Setenv("HOME", home)

	testutil.WriteIfo(t, home, ".stardict/dic/personal.ifo", "Personal", 12)
	testutil.WriteIfo(t, dataDir, "wordnet.ifo", "WordNet", 147306)

	out, _, err := run(t, "--list-dicts", "--data-dir", dataDir)
	require.NoError(t, err)
	assert.Contains(t, out, "Dictionary's name   Word count")
	assert.Contains(t, out, "Personal    12")
	assert.Contains(t, out, "WordNet    147306")
}

func TestDataDirEnvironmentVariable(t *testing.T) {
	home := t.TempDir()
	dataDir := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("STARDICT_DATA_DIR", dataDir)

	testutil.WriteIfo(t, dataDir, "env.ifo", "EnvDict", 5)

	out, _, err := run(t, "-l")
	require.NoError(t, err)
	assert.Contains(t, out, "EnvDict    5")
}

func TestBatchPhraseWithoutMatches(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("STARDICT_DATA_DIR", t.TempDir())

	out, _, err := run(t, "cat")
	require.NoError(t, err)
	assert.Contains(t, out, "Nothing similar to cat, sorry :(")
}

func TestUseDictUnknownBookname(t *testing.T) {
	home := t.TempDir()
	dataDir := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("STARDICT_DATA_DIR", dataDir)

	testutil.WriteIfo(t, dataDir, "wordnet.ifo", "WordNet", 1)

	_, _, err := run(t, "-u", "NoSuchDict", "cat")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "internal error")
	assert.Contains(t, err.Error(), "NoSuchDict")
}

func TestStaleOrderingFileAborts(t *testing.T) {
	home := t.TempDir()
	dataDir := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("STARDICT_DATA_DIR", dataDir)

	testutil.WriteIfo(t, dataDir, "wordnet.ifo", "WordNet", 1)
	testutil.WriteOrdering(t, home, "Removed Dictionary")

	_, _, err := run(t, "cat")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Removed Dictionary")
}

func TestEmptyBatch(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("STARDICT_DATA_DIR", t.TempDir())

	_, errOut, err := run(t, "--non-interactive")
	require.NoError(t, err)
	assert.Contains(t, errOut, "There are no words/phrases to translate.")
}

func TestConfDirCreatedBestEffort(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("STARDICT_DATA_DIR", t.TempDir())

	_, _, err := run(t, "-n")
	require.NoError(t, err)
	assert.DirExists(t, home+"/.stardict")
}

func TestUnknownFlagFails(t *testing.T) {
	_, _, err := run(t, "--definitely-not-a-flag")
	assert.Error(t, err)
}
