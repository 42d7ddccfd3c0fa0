// Package testutil provides shared test helpers for creating config files and word-list fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// BasicWordList is a small word list in the text format covering nouns,
// conjugated verbs, 하다 verbs and both escape meanings.
const BasicWordList = `# basic words
학교 (學校)
  school
가다|가
  go
공부하다
  study
그
  {he
저
  <that>
사다
  buy
`

// BasicExclusions removes the bare stem of 사다.
const BasicExclusions = `# too ambiguous
사
`

// WriteFile writes contents to dir/name and returns the path.
func WriteFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

// SetupTestConfig creates a config file referring to BasicWordList and
// BasicExclusions in tmpDir. Extra YAML is appended to the generated config.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string, extra ...string) string {
	t.Helper()

	wordList := WriteFile(t, tmpDir, filepath.Join("lists", "basic.wl.txt"), BasicWordList)
	exclusions := WriteFile(t, tmpDir, filepath.Join("lists", "exclusions.txt"), BasicExclusions)

	configContent := fmt.Sprintf(`word_lists:
  - %s
exclusion_lists:
  - %s
translation:
  mode: normal
`, wordList, exclusions)
	for _, e := range extra {
		configContent += e
	}

	return WriteFile(t, tmpDir, "config.yml", configContent)
}
