package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, home string, lines ...string) {
	t.Helper()
	content := ""
	for _, l := range lines {
		content += l + "\n"
	}
	require.NoError(t, os.WriteFile(filepath.Join(home, ".darc"), []byte(content), 0600))
}

func TestGet(t *testing.T) {
	tests := []struct {
		name      string
		lines     []string
		key       string
		wantValue string
		wantFound bool
	}{
		{
			name:      "value from file",
			lines:     []string{"color=never"},
			key:       "color",
			wantValue: "never",
			wantFound: true,
		},
		{
			name:      "default when missing from file",
			lines:     []string{"# nothing"},
			key:       "log_level",
			wantValue: "warn",
			wantFound: true,
		},
		{
			name:      "unknown key in file is still readable",
			lines:     []string{"custom=1"},
			key:       "custom",
			wantValue: "1",
			wantFound: true,
		},
		{
			name:      "unknown key",
			lines:     []string{"color=auto"},
			key:       "nope",
			wantFound: false,
		},
		{
			name:      "broken file falls back to defaults",
			lines:     []string{"garbage"},
			key:       "enable_log",
			wantValue: "true",
			wantFound: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := setupTempHome(t)
			writeConfig(t, home, tt.lines...)

			value, found := Get(tt.key)
			require.Equal(t, tt.wantFound, found)
			require.Equal(t, tt.wantValue, value)
		})
	}
}

func TestGetAll_MergesFileOverDefaults(t *testing.T) {
	home := setupTempHome(t)
	writeConfig(t, home, "log_level=debug", "extra=yes")

	all, err := GetAll()
	require.NoError(t, err)
	require.Equal(t, map[string]string{
		"color":      "auto",
		"enable_log": "true",
		"log_level":  "debug",
		"extra":      "yes",
	}, all)
}

func TestGetAll_NoConfigFile(t *testing.T) {
	home := setupTempHome(t)

	all, err := GetAll()
	require.NoError(t, err)
	require.Equal(t, "auto", all["color"])
	require.Equal(t, "true", all["enable_log"])
	require.Equal(t, "warn", all["log_level"])

	_, ok := Get("color")
	require.True(t, ok)

	_, err = os.Stat(filepath.Join(home, ".darc"))
	require.True(t, os.IsNotExist(err), "reading config must not create ~/.darc")
}
