package root_test

import (
	"os"
	"path/filepath"
	"testing"

	"fjacquet/fintrack/cmd/root"
	"fjacquet/fintrack/internal/config"
	"fjacquet/fintrack/internal/container"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	root.Init()
}

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "fintrack", root.Cmd.Use)
	assert.Contains(t, root.Cmd.Short, "personal finance tracker")
	assert.Contains(t, root.Cmd.Long, "pipe-delimited")
	assert.NotNil(t, root.Cmd.RunE)
	assert.NotNil(t, root.Cmd.PersistentPreRunE)
}

func TestRootCommand_Flags(t *testing.T) {
	tests := []struct {
		name      string
		shorthand string
	}{
		{"data-file", "f"},
		{"user", "u"},
		{"password", "p"},
		{"log-level", ""},
		{"log-format", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag := root.Cmd.PersistentFlags().Lookup(tt.name)
			require.NotNil(t, flag)
			assert.Equal(t, tt.shorthand, flag.Shorthand)
		})
	}
}

func TestApplyFlags(t *testing.T) {
	cfg := config.Default()
	root.ApplyFlags(cfg, root.CommonFlags{})
	assert.Equal(t, "users.txt", cfg.Data.File)
	assert.Equal(t, "info", cfg.Log.Level)

	root.ApplyFlags(cfg, root.CommonFlags{DataFile: "other.txt", LogLevel: "debug", LogFormat: "json"})
	assert.Equal(t, "other.txt", cfg.Data.File)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadConfig_RejectsBadFlag(t *testing.T) {
	wd, wdErr := os.Getwd()
	require.NoError(t, wdErr)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	original := root.SharedFlags
	defer func() { root.SharedFlags = original }()

	root.SharedFlags = root.CommonFlags{LogLevel: "loud"}
	_, err := root.LoadConfig()
	assert.Error(t, err)
}

func TestCredentials_EnvFallback(t *testing.T) {
	original := root.SharedFlags
	defer func() { root.SharedFlags = original }()

	t.Setenv(root.EnvUser, "env-user")
	t.Setenv(root.EnvPassword, "env-pw")

	root.SharedFlags = root.CommonFlags{}
	user, password := root.Credentials()
	assert.Equal(t, "env-user", user)
	assert.Equal(t, "env-pw", password)

	root.SharedFlags = root.CommonFlags{User: "flag-user", Password: "flag-pw"}
	user, password = root.Credentials()
	assert.Equal(t, "flag-user", user)
	assert.Equal(t, "flag-pw", password)
}

func TestContainer(t *testing.T) {
	original := root.AppContainer
	defer func() { root.AppContainer = original }()

	root.AppContainer = nil
	_, err := root.Container()
	assert.Error(t, err)

	cfg := config.Default()
	cfg.Data.File = filepath.Join(t.TempDir(), "users.txt")
	c, err := container.NewContainer(cfg)
	require.NoError(t, err)
	root.AppContainer = c

	got, err := root.Container()
	require.NoError(t, err)
	assert.Same(t, c, got)
}
