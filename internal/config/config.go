// Package config resolves finecheck settings from .env files, an optional
// YAML config file and FINECHECK_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/abhisek/finecheck/internal/llm"
	"github.com/abhisek/finecheck/internal/verdict"
)

// Config holds all application configuration.
type Config struct {
	// DBPath is the SQLite file. Empty means the default XDG location.
	DBPath string

	// Locale is the default output language ("en" or "he").
	Locale verdict.Locale

	// TuningFile optionally points at a YAML classifier tuning file.
	TuningFile string

	// ServerAddr is the listen address of the HTTP API.
	ServerAddr string

	LLM LLMConfig
}

// LLMConfig extends the provider configuration with request parameters.
type LLMConfig struct {
	llm.Config

	MaxTokens       int     // analysis requests
	LetterMaxTokens int     // cancellation letters
	Temperature     float64 // both flows
}

// envAliases binds the provider keys to their short env names so that
// FINECHECK_OPENAI_API_KEY works alongside FINECHECK_LLM_OPENAI_API_KEY.
var envAliases = map[string]string{
	"llm.anthropic.api_key":   "FINECHECK_ANTHROPIC_API_KEY",
	"llm.anthropic.model":     "FINECHECK_ANTHROPIC_MODEL",
	"llm.openai.api_key":      "FINECHECK_OPENAI_API_KEY",
	"llm.openai.model":        "FINECHECK_OPENAI_MODEL",
	"llm.openai.base_url":     "FINECHECK_OPENAI_BASE_URL",
	"llm.gemini.api_key":      "FINECHECK_GEMINI_API_KEY",
	"llm.gemini.model":        "FINECHECK_GEMINI_MODEL",
	"llm.openrouter.api_key":  "FINECHECK_OPENROUTER_API_KEY",
	"llm.openrouter.model":    "FINECHECK_OPENROUTER_MODEL",
	"llm.openrouter.base_url": "FINECHECK_OPENROUTER_BASE_URL",
}

// LoadDotEnv loads each .env file that exists. Variables already present in
// the environment win.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// NewViper returns a viper instance with defaults, env binding and, when
// found, the config file applied. configFile overrides the search path.
func NewViper(configFile string) (*viper.Viper, error) {
	v := viper.New()
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("finecheck")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "finecheck"))
		}
	}

	v.SetEnvPrefix("FINECHECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range envAliases {
		long := "FINECHECK_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, long, env); err != nil {
			return nil, fmt.Errorf("bind %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	return v, nil
}

func setDefaults(v *viper.Viper) {
	d := llm.DefaultConfig()

	v.SetDefault("db", "")
	v.SetDefault("locale", string(verdict.LocaleEnglish))
	v.SetDefault("tuning_file", "")
	v.SetDefault("server.addr", ":8080")

	v.SetDefault("llm.timeout", d.Timeout)
	v.SetDefault("llm.max_tokens", 1000)
	v.SetDefault("llm.letter_max_tokens", 1500)
	v.SetDefault("llm.temperature", 0.7)

	v.SetDefault("llm.anthropic.model", d.Anthropic.Model)
	v.SetDefault("llm.openai.model", d.OpenAI.Model)
	v.SetDefault("llm.gemini.model", d.Gemini.Model)
	v.SetDefault("llm.openrouter.model", d.OpenRouter.Model)

	v.SetDefault("llm.retry.max_attempts", d.Retry.MaxAttempts)
	v.SetDefault("llm.retry.initial_wait", d.Retry.InitialWait)
	v.SetDefault("llm.retry.max_wait", d.Retry.MaxWait)
	v.SetDefault("llm.retry.multiplier", d.Retry.Multiplier)
}

// FromViper converts the viper state into a Config. When no provider is
// configured and its key is missing, the standard vendor env vars are probed.
func FromViper(v *viper.Viper) (Config, error) {
	cfg := Config{
		DBPath:     v.GetString("db"),
		Locale:     verdict.ParseLocale(v.GetString("locale")),
		TuningFile: v.GetString("tuning_file"),
		ServerAddr: v.GetString("server.addr"),
	}

	p := llm.DefaultConfig()
	if name := v.GetString("llm.provider"); name != "" {
		p.Provider = name
	}
	p.Timeout = v.GetDuration("llm.timeout")
	p.Anthropic = llm.AnthropicConfig{
		APIKey: v.GetString("llm.anthropic.api_key"),
		Model:  v.GetString("llm.anthropic.model"),
	}
	p.OpenAI = llm.OpenAIConfig{
		APIKey:  v.GetString("llm.openai.api_key"),
		Model:   v.GetString("llm.openai.model"),
		BaseURL: v.GetString("llm.openai.base_url"),
	}
	p.Gemini = llm.GeminiConfig{
		APIKey: v.GetString("llm.gemini.api_key"),
		Model:  v.GetString("llm.gemini.model"),
	}
	p.OpenRouter = llm.OpenRouterConfig{
		APIKey:  v.GetString("llm.openrouter.api_key"),
		Model:   v.GetString("llm.openrouter.model"),
		BaseURL: v.GetString("llm.openrouter.base_url"),
	}
	p.Retry = llm.RetryConfig{
		MaxAttempts: v.GetInt("llm.retry.max_attempts"),
		InitialWait: v.GetDuration("llm.retry.initial_wait"),
		MaxWait:     v.GetDuration("llm.retry.max_wait"),
		Multiplier:  v.GetFloat64("llm.retry.multiplier"),
	}

	if !p.HasKey() && v.GetString("llm.provider") == "" {
		if found, ok := llm.DiscoverConfig(); ok {
			found.Timeout = p.Timeout
			found.Retry = p.Retry
			p = found
		}
	}

	if p.Retry.MaxAttempts < 1 {
		return Config{}, fmt.Errorf("llm.retry.max_attempts must be at least 1, got %d", p.Retry.MaxAttempts)
	}
	if p.Timeout < 0 {
		return Config{}, fmt.Errorf("llm.timeout must not be negative, got %s", p.Timeout)
	}

	cfg.LLM = LLMConfig{
		Config:          p,
		MaxTokens:       v.GetInt("llm.max_tokens"),
		LetterMaxTokens: v.GetInt("llm.letter_max_tokens"),
		Temperature:     v.GetFloat64("llm.temperature"),
	}
	return cfg, nil
}

// Load runs the full resolution: .env, config file, environment.
func Load(configFile string) (Config, error) {
	if err := LoadDotEnv(); err != nil {
		return Config{}, err
	}
	v, err := NewViper(configFile)
	if err != nil {
		return Config{}, err
	}
	return FromViper(v)
}

// Tuning returns the classifier tuning, read from TuningFile when set.
func (c Config) Tuning() (verdict.Tuning, error) {
	if c.TuningFile == "" {
		return verdict.DefaultTuning(), nil
	}
	t, err := verdict.LoadTuning(c.TuningFile)
	if err != nil {
		return verdict.Tuning{}, fmt.Errorf("tuning: %w", err)
	}
	return t, nil
}
