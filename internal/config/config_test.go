package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `{
		"inference_url": "https://api.example.com/classify",
		"listen_addr": ":9090",
		"use_browser": true
	}`)

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com/classify", cfg.InferenceURL)
	assert.Equal(t, ":9090", cfg.ListenAddr)
	assert.True(t, cfg.UseBrowser)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := writeConfig(t, "{not json")
	_, err = LoadConfig(path)
	assert.Error(t, err)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("INFERENCE_API_URL", "https://env.example.com")
	t.Setenv("DATABASE_URL", "postgres://env")

	cfg := &Config{InferenceURL: "https://file.example.com"}
	cfg.FromEnv()

	assert.Equal(t, "https://env.example.com", cfg.InferenceURL)
	assert.Equal(t, "postgres://env", cfg.DatabaseURL)
}

func TestValidate_MutuallyExclusiveJobInputs(t *testing.T) {
	cfg := &Config{Job: "job.txt", JobURL: "https://example.com/job"}

	assert.Error(t, cfg.Validate())
}

func TestValidate_MissingFiles(t *testing.T) {
	cfg := &Config{Resume: filepath.Join(t.TempDir(), "missing.txt")}

	assert.Error(t, cfg.Validate())
}

func TestValidate_ExistingFilesPass(t *testing.T) {
	dir := t.TempDir()
	resume := filepath.Join(dir, "resume.txt")
	require.NoError(t, os.WriteFile(resume, []byte("text"), 0o644))

	cfg := &Config{Resume: resume}

	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := &Config{InferenceURL: "https://mine.example.com"}

	merged := cfg.MergeWithDefaults(Config{
		InferenceURL: "https://default.example.com",
		GeminiAPIKey: "default-key",
	})

	assert.Equal(t, "https://mine.example.com", merged.InferenceURL)
	assert.Equal(t, "default-key", merged.GeminiAPIKey)
	assert.Equal(t, DefaultListenAddr, merged.ListenAddr)
	assert.Equal(t, DefaultInferenceTimeoutSeconds, merged.InferenceTimeoutSeconds)
	assert.Equal(t, DefaultInferenceMaxRetries, merged.InferenceMaxRetries)
}
