package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/finecheck/internal/verdict"
)

// clearEnv blanks every variable that could leak into the resolution.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"FINECHECK_DB", "FINECHECK_LOCALE", "FINECHECK_LLM_PROVIDER", "FINECHECK_LLM_TIMEOUT",
		"FINECHECK_OPENAI_API_KEY", "FINECHECK_LLM_OPENAI_API_KEY",
		"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY",
	} {
		t.Setenv(k, "")
	}
}

func TestDefaults(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	v, err := NewViper("")
	require.NoError(t, err)
	cfg, err := FromViper(v)
	require.NoError(t, err)

	assert.Equal(t, "", cfg.DBPath)
	assert.Equal(t, verdict.LocaleEnglish, cfg.Locale)
	assert.Equal(t, ":8080", cfg.ServerAddr)
	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, "gpt-4o", cfg.LLM.OpenAI.Model)
	assert.Equal(t, 30*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, 1000, cfg.LLM.MaxTokens)
	assert.Equal(t, 1500, cfg.LLM.LetterMaxTokens)
	assert.Equal(t, 0.7, cfg.LLM.Temperature)
	assert.Equal(t, 3, cfg.LLM.Retry.MaxAttempts)
}

func TestConfigFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "finecheck.yaml")
	doc := `
db: /tmp/fines.db
locale: he-IL
server:
  addr: 127.0.0.1:9000
llm:
  provider: anthropic
  timeout: 45s
  anthropic:
    api_key: sk-file
    model: claude-sonnet
  retry:
    max_attempts: 5
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	v, err := NewViper(path)
	require.NoError(t, err)
	cfg, err := FromViper(v)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/fines.db", cfg.DBPath)
	assert.Equal(t, verdict.LocaleHebrew, cfg.Locale)
	assert.Equal(t, "127.0.0.1:9000", cfg.ServerAddr)
	assert.Equal(t, "anthropic", cfg.LLM.Provider)
	assert.Equal(t, "sk-file", cfg.LLM.Anthropic.APIKey)
	assert.Equal(t, "claude-sonnet", cfg.LLM.Anthropic.Model)
	assert.Equal(t, 45*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, 5, cfg.LLM.Retry.MaxAttempts)
}

func TestMissingExplicitConfigFile(t *testing.T) {
	_, err := NewViper(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "finecheck.yaml")
	require.NoError(t, os.WriteFile(path, []byte("llm:\n  openai:\n    api_key: from-file\n"), 0o644))

	t.Setenv("FINECHECK_OPENAI_API_KEY", "from-env")
	t.Setenv("FINECHECK_DB", "/var/lib/finecheck.db")

	v, err := NewViper(path)
	require.NoError(t, err)
	cfg, err := FromViper(v)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.LLM.OpenAI.APIKey)
	assert.Equal(t, "/var/lib/finecheck.db", cfg.DBPath)
}

func TestDiscoverVendorKey(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())
	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("FINECHECK_LLM_TIMEOUT", "5s")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "gemini", cfg.LLM.Provider)
	assert.Equal(t, "g-key", cfg.LLM.Gemini.APIKey)
	assert.Equal(t, 5*time.Second, cfg.LLM.Timeout)
}

func TestInvalidRetry(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "finecheck.yaml")
	require.NoError(t, os.WriteFile(path, []byte("llm:\n  retry:\n    max_attempts: 0\n"), 0o644))

	v, err := NewViper(path)
	require.NoError(t, err)
	_, err = FromViper(v)
	assert.ErrorContains(t, err, "max_attempts")
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("FINECHECK_TEST_DOTENV=loaded\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("FINECHECK_TEST_DOTENV") })

	require.NoError(t, LoadDotEnv())
	assert.Equal(t, "loaded", os.Getenv("FINECHECK_TEST_DOTENV"))

	// Missing files are skipped.
	require.NoError(t, LoadDotEnv(filepath.Join(dir, "missing.env")))
}

func TestTuning(t *testing.T) {
	tn, err := Config{}.Tuning()
	require.NoError(t, err)
	assert.Equal(t, verdict.DefaultTuning(), tn)

	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("strong_threshold: 4\n"), 0o644))
	tn, err = Config{TuningFile: path}.Tuning()
	require.NoError(t, err)
	assert.Equal(t, 4.0, tn.Strong)

	_, err = Config{TuningFile: filepath.Join(t.TempDir(), "x.yaml")}.Tuning()
	assert.Error(t, err)
}
