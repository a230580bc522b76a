package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ventflow/internal/config"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, config.Validate(config.Default()))
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, "ventflow.yaml", `
input: valves.txt
budget: 26
workers: 4
bound: none
require_connected: true
`)
	cfg := config.Default()
	require.NoError(t, config.LoadFile(path, &cfg))

	assert.Equal(t, "valves.txt", cfg.Input)
	assert.Equal(t, int64(26), cfg.Budget)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, "none", cfg.Bound)
	assert.True(t, cfg.RequireConnected)
	assert.Equal(t, "AA", cfg.Start, "unset keys keep defaults")
}

func TestLoadFile_Errors(t *testing.T) {
	cfg := config.Default()
	assert.ErrorIs(t, config.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"), &cfg), config.ErrFile)

	path := writeFile(t, "bad.yaml", "budgett: 3\n")
	assert.ErrorIs(t, config.LoadFile(path, &cfg), config.ErrFile)
}

func TestApplyEnv(t *testing.T) {
	cfg := config.Default()
	env := map[string]string{
		"VENTFLOW_START":             "BB",
		"VENTFLOW_BUDGET":            "12",
		"VENTFLOW_MEMO":              "0",
		"VENTFLOW_REQUIRE_CONNECTED": "true",
		"VENTFLOW_LOG_FORMAT":        " json ",
		"VENTFLOW_INPUT":             "",
	}
	require.NoError(t, config.ApplyEnv(&cfg, config.MapLookup(env)))

	assert.Equal(t, "BB", cfg.Start)
	assert.Equal(t, int64(12), cfg.Budget)
	assert.Equal(t, 0, cfg.Memo)
	assert.True(t, cfg.RequireConnected)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Empty(t, cfg.Input)

	bad := config.MapLookup(map[string]string{"VENTFLOW_WORKERS": "many"})
	assert.ErrorIs(t, config.ApplyEnv(&cfg, bad), config.ErrInvalid)
}

func TestDotEnvFile(t *testing.T) {
	path := writeFile(t, ".env", "VENTFLOW_BOUND=none\nVENTFLOW_WORKERS=3\n")
	vars, err := godotenv.Read(path)
	require.NoError(t, err)

	cfg := config.Default()
	require.NoError(t, config.ApplyEnv(&cfg, config.MapLookup(vars)))
	assert.Equal(t, "none", cfg.Bound)
	assert.Equal(t, 3, cfg.Workers)
}

func TestLoadDotEnv(t *testing.T) {
	const key = "VENTFLOW_TEST_DOTENV_MARKER"
	path := writeFile(t, "test.env", key+"=yes\n")
	t.Cleanup(func() { os.Unsetenv(key) })

	require.NoError(t, config.LoadDotEnv(path))
	assert.Equal(t, "yes", os.Getenv(key))

	require.NoError(t, config.LoadDotEnv(filepath.Join(t.TempDir(), "absent.env")))
}

func TestLoad_Layers(t *testing.T) {
	path := writeFile(t, "ventflow.yaml", "budget: 20\nworkers: 2\n")
	t.Setenv("VENTFLOW_BUDGET", "10")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(10), cfg.Budget, "env beats file")
	assert.Equal(t, 2, cfg.Workers, "file beats default")
}

func TestValidate(t *testing.T) {
	cfg := config.Default()
	cfg.Start = "A"
	cfg.Workers = 0
	cfg.Bound = "greedy"

	err := config.Validate(cfg)
	require.ErrorIs(t, err, config.ErrInvalid)
	assert.Contains(t, err.Error(), "start must be 2 characters")
	assert.Contains(t, err.Error(), "workers must be at least 1")
	assert.Contains(t, err.Error(), "bound must be one of: none optimistic")
}
