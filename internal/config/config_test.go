package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/dbgcmd/internal/logging"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dbgcmd.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		content string
		check   func(t *testing.T, cfg Config)
		wantErr string
	}{
		{
			name: "overrides merge with defaults",
			content: `
theme: dracula
startShown: false
keys:
  older: ["ctrl+k"]
log:
  file: /tmp/dbgcmd.log
  level: debug
  format: json
`,
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, "dracula", cfg.Theme)
				assert.False(t, cfg.StartShown)
				assert.Equal(t, []string{"ctrl+k"}, cfg.Keys.Older)
				assert.Equal(t, []string{"down", "ctrl+n"}, cfg.Keys.Newer)
				assert.Equal(t, DefaultAllowedChars, cfg.AllowedChars)

				lc := cfg.Logging()
				assert.Equal(t, "/tmp/dbgcmd.log", lc.FilePath)
				assert.Equal(t, slog.LevelDebug, lc.Level)
				assert.Equal(t, logging.FormatJSON, lc.Format)
				assert.Equal(t, 10, lc.MaxSizeMB)
			},
		},
		{
			name:    "empty key list is rejected",
			content: "keys:\n  confirm: []\n",
			wantErr: "keys.confirm has no keys",
		},
		{
			name:    "unknown log level is rejected",
			content: "log:\n  level: loud\n",
			wantErr: `unknown log level "loud"`,
		},
		{
			name:    "malformed yaml",
			content: "theme: [unterminated\n",
			wantErr: "failed to parse config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tt.content))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
