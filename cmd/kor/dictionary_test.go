package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/kor/internal/testutil"
	"github.com/at-ishikawa/kor/internal/wordlist"
)

func TestDictionaryExportCommand(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := testutil.SetupTestConfig(t, tmpDir)
	output := filepath.Join(tmpDir, "export.yml")

	got, err := executeCommand(t, "--config", cfgPath, "dictionary", "export", "-o", output)
	require.NoError(t, err)
	assert.Empty(t, got)

	reader := wordlist.NewReader(wordlist.NewParser())
	exported, _, err := reader.ReadFile(output)
	require.NoError(t, err)
	want, _, err := reader.ReadFile(filepath.Join(tmpDir, "lists", "basic.wl.txt"))
	require.NoError(t, err)
	assert.Equal(t, want, exported)
}

func TestDictionaryExportCommand_Stdout(t *testing.T) {
	tmpDir := t.TempDir()
	wordList := testutil.WriteFile(t, tmpDir, "one.txt", "학교 (學校)\n  school\n")

	got, err := executeCommand(t, "dictionary", "export", "-w", wordList)
	require.NoError(t, err)
	assert.Contains(t, got, "- hangeul: 학교\n")
	assert.Contains(t, got, "hanja: 學校\n")
	assert.Contains(t, got, "- school\n")
}

func TestDictionaryExportCommand_Errors(t *testing.T) {
	tmpDir := t.TempDir()
	wordList := testutil.WriteFile(t, tmpDir, "one.txt", "학교\n  school\n")

	tests := []struct {
		name string
		args []string
	}{
		{
			name: "missing word list",
			args: []string{"dictionary", "export", "-w", filepath.Join(tmpDir, "missing.txt")},
		},
		{
			name: "unwritable output",
			args: []string{"dictionary", "export", "-w", wordList, "-o", filepath.Join(tmpDir, "missing", "export.yml")},
		},
		{
			name: "unsupported word list format",
			args: []string{"dictionary", "export", "-w", testutil.WriteFile(t, tmpDir, "words.json", "[]")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeCommand(t, tt.args...)
			assert.Error(t, err)
		})
	}
}
