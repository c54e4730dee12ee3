package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadWithOptions(LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, VERSION, cfg.Version)
	assert.Equal(t, "-", cfg.Preview.HTMLOutputPath)
	assert.Empty(t, cfg.Preview.DocumentPath)
	assert.Empty(t, cfg.Preview.MJMLOutputPath)
	assert.Empty(t, cfg.Preview.TemplateDataPath)
	assert.Equal(t, "Untitled email", cfg.Editor.DefaultDocumentName)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("ENVIRONMENT", "development")
	t.Setenv("PREVIEW_DOCUMENT", "/tmp/doc.json")
	t.Setenv("EDITOR_DEFAULT_DOCUMENT_NAME", "Draft")

	cfg, err := LoadWithOptions(LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "development", cfg.Environment)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "/tmp/doc.json", cfg.Preview.DocumentPath)
	assert.Equal(t, "Draft", cfg.Editor.DefaultDocumentName)
}

func TestLoadFromEnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := dir + "/.env"
	require.NoError(t, os.WriteFile(envFile, []byte("LOG_LEVEL=warn\nPREVIEW_MJML_OUTPUT=out.mjml\n"), 0o644))

	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(cwd) })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "out.mjml", cfg.Preview.MJMLOutputPath)
}

func TestLoadMissingEnvFileIsFine(t *testing.T) {
	cfg, err := LoadWithOptions(LoadOptions{EnvFile: "does-not-exist"})
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestIsDevelopment(t *testing.T) {
	assert.True(t, (&Config{Environment: "development"}).IsDevelopment())
	assert.False(t, (&Config{Environment: "production"}).IsDevelopment())
	assert.False(t, (&Config{Environment: "staging"}).IsDevelopment())
}
