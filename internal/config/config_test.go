package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "sahayak.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "mymemory", cfg.Translation.Primary)
	assert.True(t, cfg.Translation.FallbackEnabled)
	assert.Equal(t, 8*time.Second, cfg.Translation.Timeout)
	assert.Equal(t, 16, cfg.Validation.MinAge)
	assert.Equal(t, 70, cfg.Validation.MaxAge)
	assert.Equal(t, 50, cfg.Validation.MaxExperienceYears)
	assert.Equal(t, 10_000_000, cfg.Validation.MaxWage)
	assert.Equal(t, "hi", cfg.Validation.ErrorLanguage)
	assert.Equal(t, "extended", cfg.Validation.NumberWords.Wage)
	assert.Equal(t, []float64{0.80, 0.70}, cfg.Cutoffs.Skill)
	assert.InDelta(t, 0.70, cfg.Cutoffs.Location, 1e-9)
	assert.Equal(t, "none", cfg.TTS.Provider)
	assert.Equal(t, "./data/sahayak.db", cfg.Store.Path)
	assert.Equal(t, 30*time.Minute, cfg.Session.TTL)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 8, cfg.Batch.Workers)
}

func TestLoad_YAMLFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := writeYAML(t, dir, `
translation:
  primary: google
  timeout: 3s
  google:
    api_key: "abc"
validation:
  min_age: 18
  error_language: en
  number_words:
    age: basic
cutoffs:
  skill: [0.9]
tts:
  provider: google
server:
  addr: "127.0.0.1:9000"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "google", cfg.Translation.Primary)
	assert.Equal(t, 3*time.Second, cfg.Translation.Timeout)
	assert.Equal(t, "abc", cfg.Translation.Google.APIKey)
	assert.Equal(t, 18, cfg.Validation.MinAge)
	assert.Equal(t, 70, cfg.Validation.MaxAge, "unset keys keep defaults")
	assert.Equal(t, "en", cfg.Validation.ErrorLanguage)
	assert.Equal(t, "basic", cfg.Validation.NumberWords.Age)
	assert.Equal(t, []float64{0.9}, cfg.Cutoffs.Skill)
	assert.Equal(t, "google", cfg.TTS.Provider)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := writeYAML(t, dir, "validation:\n  max_age: 60\n")

	t.Setenv("SAHAYAK_VALIDATION_MAX_AGE", "65")
	t.Setenv("SAHAYAK_TRANSLATION_PRIMARY", "none")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 65, cfg.Validation.MaxAge)
	assert.Equal(t, "none", cfg.Translation.Primary)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SAHAYAK_STORE_PATH=/tmp/from-dotenv.db\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("SAHAYAK_STORE_PATH") })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/from-dotenv.db", cfg.Store.Path)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := Load("does-not-exist.yaml")
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "unknown provider", yaml: "translation:\n  primary: deepl\n"},
		{name: "inverted age range", yaml: "validation:\n  min_age: 80\n"},
		{name: "cutoff above one", yaml: "cutoffs:\n  location: 1.5\n"},
		{name: "unknown number table", yaml: "validation:\n  number_words:\n    wage: roman\n"},
		{name: "zero workers", yaml: "batch:\n  workers: 0\n"},
		{name: "negative wage ceiling", yaml: "validation:\n  max_wage: -1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			t.Chdir(dir)
			path := writeYAML(t, dir, tt.yaml)

			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}
