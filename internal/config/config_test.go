package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		Host:     "localhost",
		Port:     3306,
		Database: "kor",
		Username: "kor",
	}
}

func TestConfigLoader_Load(t *testing.T) {
	tests := []struct {
		name              string
		configContent     func(dir string) string
		useExplicitPath   bool
		want              func(dir string) *Config
		wantErrorContains []string
	}{
		{
			name: "valid config file with custom values",
			configContent: func(dir string) string {
				return `word_lists:
  - ` + filepath.Join(dir, "basic.wl.txt") + `
exclusion_lists:
  - ` + filepath.Join(dir, "exclude.txt") + `
translation:
  mode: line
  color: true
database:
  host: db.example.com
  port: 3307
`
			},
			want: func(dir string) *Config {
				db := defaultDatabaseConfig()
				db.Host = "db.example.com"
				db.Port = 3307
				return &Config{
					WordLists:      []string{filepath.Join(dir, "basic.wl.txt")},
					ExclusionLists: []string{filepath.Join(dir, "exclude.txt")},
					Translation:    TranslationConfig{Mode: "line", Color: true},
					Database:       db,
				}
			},
		},
		{
			name: "empty config uses defaults",
			configContent: func(dir string) string {
				return "unknown_key: value\n"
			},
			want: func(dir string) *Config {
				return &Config{
					Translation: TranslationConfig{Mode: "normal"},
					Database:    defaultDatabaseConfig(),
				}
			},
		},
		{
			name: "explicit config file path",
			configContent: func(dir string) string {
				return "translation:\n  mode: retranslate\n"
			},
			useExplicitPath: true,
			want: func(dir string) *Config {
				return &Config{
					Translation: TranslationConfig{Mode: "retranslate"},
					Database:    defaultDatabaseConfig(),
				}
			},
		},
		{
			name: "invalid YAML format",
			configContent: func(dir string) string {
				return "translation:\n  mode: normal\n  invalid yaml format here [[[\n"
			},
			wantErrorContains: []string{
				"configuration file found but could not be read",
				"Please check the file format and permissions",
			},
		},
		{
			name: "missing word list",
			configContent: func(dir string) string {
				return "word_lists:\n  - " + filepath.Join(dir, "missing.wl.txt") + "\n"
			},
			wantErrorContains: []string{
				"invalid configuration",
				"word_lists[0] must be an existing and readable file",
			},
		},
		{
			name: "word list is a directory",
			configContent: func(dir string) string {
				return "word_lists:\n  - " + dir + "\n"
			},
			wantErrorContains: []string{
				"word_lists[0] must be an existing and readable file",
			},
		},
		{
			name: "unknown translation mode",
			configContent: func(dir string) string {
				return "translation:\n  mode: verbose\n"
			},
			wantErrorContains: []string{
				"invalid configuration",
				"mode",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(tempDir, "basic.wl.txt"), []byte("학교\n  school\n"), 0644))
			require.NoError(t, os.WriteFile(filepath.Join(tempDir, "exclude.txt"), []byte("사\n"), 0644))

			var configPath string
			if tt.useExplicitPath {
				configPath = filepath.Join(tempDir, "custom.yml")
				require.NoError(t, os.WriteFile(configPath, []byte(tt.configContent(tempDir)), 0644))
			} else {
				require.NoError(t, os.WriteFile(filepath.Join(tempDir, "config.yml"), []byte(tt.configContent(tempDir)), 0644))

				originalDir, err := os.Getwd()
				require.NoError(t, err)
				defer func() {
					require.NoError(t, os.Chdir(originalDir))
				}()
				require.NoError(t, os.Chdir(tempDir))
			}

			loader, err := NewConfigLoader(configPath)
			require.NoError(t, err)
			got, err := loader.Load()

			if len(tt.wantErrorContains) > 0 {
				require.Error(t, err)
				assert.Nil(t, got)
				for _, wantMsg := range tt.wantErrorContains {
					assert.Contains(t, err.Error(), wantMsg)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want(tempDir), got)
		})
	}
}

func TestConfigLoader_Load_PasswordFromEnvironment(t *testing.T) {
	t.Setenv("KOR_DB_PASSWORD", "secret")
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte("database:\n  enabled: true\n"), 0644))

	loader, err := NewConfigLoader(configPath)
	require.NoError(t, err)
	got, err := loader.Load()
	require.NoError(t, err)

	assert.True(t, got.Database.Enabled)
	assert.Equal(t, "secret", got.Database.Password)
}

func TestConfigLoader_Validate(t *testing.T) {
	loader, err := NewConfigLoader("")
	require.NoError(t, err)

	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "valid",
			cfg: Config{
				Translation: TranslationConfig{Mode: "normal"},
				Database:    defaultDatabaseConfig(),
			},
		},
		{
			name: "database enabled without host",
			cfg: Config{
				Translation: TranslationConfig{Mode: "normal"},
				Database:    DatabaseConfig{Enabled: true, Database: "kor"},
			},
			wantErr: true,
		},
		{
			name: "word list flag that does not exist",
			cfg: Config{
				WordLists:   []string{"/nonexistent/word/list.txt"},
				Translation: TranslationConfig{Mode: "normal"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := loader.Validate(&tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
