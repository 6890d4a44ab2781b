// Package config loads sahayak settings from an optional YAML file, a .env
// file and SAHAYAK_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/valpere/sahayak/internal/logging"
	"github.com/valpere/sahayak/internal/normalize"
	"github.com/valpere/sahayak/internal/numparse"
	"github.com/valpere/sahayak/internal/translator"
	"github.com/valpere/sahayak/internal/tts"
	"github.com/valpere/sahayak/internal/validation"
)

// EnvPrefix prefixes every environment override, e.g.
// SAHAYAK_TRANSLATION_PRIMARY.
const EnvPrefix = "SAHAYAK"

type Config struct {
	Log         logging.Config    `mapstructure:"log"`
	Translation TranslationConfig `mapstructure:"translation"`
	Validation  validation.Rules  `mapstructure:"validation"`
	Cutoffs     normalize.Cutoffs `mapstructure:"cutoffs"`
	TTS         tts.Config        `mapstructure:"tts"`
	Store       StoreConfig       `mapstructure:"store"`
	Session     SessionConfig     `mapstructure:"session"`
	Server      ServerConfig      `mapstructure:"server"`
	Batch       BatchConfig       `mapstructure:"batch"`
}

// TranslationConfig selects the primary provider ("mymemory", "google" or
// "none") and the gtx fallback.
type TranslationConfig struct {
	Primary         string                   `mapstructure:"primary"`
	Google          translator.ServiceConfig `mapstructure:"google"`
	MyMemory        translator.ServiceConfig `mapstructure:"mymemory"`
	Fallback        translator.ServiceConfig `mapstructure:"fallback"`
	FallbackEnabled bool                     `mapstructure:"fallback_enabled"`
	Timeout         time.Duration            `mapstructure:"timeout"`
	LanguageGate    bool                     `mapstructure:"language_gate"`
}

type StoreConfig struct {
	Path string `mapstructure:"path"`
}

// SessionConfig controls how long unfinished onboarding answers are kept.
type SessionConfig struct {
	TTL             time.Duration `mapstructure:"ttl"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
}

type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type BatchConfig struct {
	Workers int           `mapstructure:"workers"`
	Timeout time.Duration `mapstructure:"timeout"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("translation.primary", "mymemory")
	v.SetDefault("translation.fallback_enabled", true)
	v.SetDefault("translation.timeout", 8*time.Second)
	v.SetDefault("translation.language_gate", false)
	v.SetDefault("translation.google.credentials", "")
	v.SetDefault("translation.google.api_key", "")
	v.SetDefault("translation.google.timeout", 8*time.Second)
	v.SetDefault("translation.mymemory.email", "")
	v.SetDefault("translation.mymemory.base_url", "")
	v.SetDefault("translation.mymemory.timeout", 10*time.Second)
	v.SetDefault("translation.fallback.base_url", "")
	v.SetDefault("translation.fallback.timeout", 10*time.Second)

	rules := validation.DefaultRules()
	v.SetDefault("validation.min_age", rules.MinAge)
	v.SetDefault("validation.max_age", rules.MaxAge)
	v.SetDefault("validation.max_experience_years", rules.MaxExperienceYears)
	v.SetDefault("validation.max_wage", rules.MaxWage)
	v.SetDefault("validation.max_name_words", rules.MaxNameWords)
	v.SetDefault("validation.min_name_letter_ratio", rules.MinNameLetterRatio)
	v.SetDefault("validation.max_free_skill_words", rules.MaxFreeSkillWords)
	v.SetDefault("validation.error_language", rules.ErrorLanguage)
	v.SetDefault("validation.number_words.age", rules.NumberWords.Age)
	v.SetDefault("validation.number_words.experience", rules.NumberWords.Experience)
	v.SetDefault("validation.number_words.wage", rules.NumberWords.Wage)

	cutoffs := normalize.DefaultCutoffs()
	v.SetDefault("cutoffs.skill", cutoffs.Skill)
	v.SetDefault("cutoffs.location", cutoffs.Location)
	v.SetDefault("cutoffs.gender", cutoffs.Gender)
	v.SetDefault("cutoffs.language", cutoffs.Language)
	v.SetDefault("cutoffs.language_title", cutoffs.LanguageTitle)

	v.SetDefault("tts.provider", "none")
	v.SetDefault("tts.timeout", 10*time.Second)
	v.SetDefault("tts.google.base_url", "")
	v.SetDefault("tts.elevenlabs.api_key", "")
	v.SetDefault("tts.elevenlabs.voice_id", "")
	v.SetDefault("tts.elevenlabs.model_id", "")

	v.SetDefault("store.path", "./data/sahayak.db")
	v.SetDefault("session.ttl", 30*time.Minute)
	v.SetDefault("session.cleanup_interval", 5*time.Minute)
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("batch.workers", 8)
	v.SetDefault("batch.timeout", 20*time.Second)
}

// Load reads configuration. path may be empty, in which case sahayak.yaml
// in the working directory is used when present. Environment variables
// override the file; a .env file, when present, seeds the environment.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("sahayak")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// Validate checks ranges and provider names.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Translation.Primary) {
	case "mymemory", "google", "none":
	default:
		return fmt.Errorf("translation.primary: unknown provider %q", c.Translation.Primary)
	}
	if c.Translation.Timeout <= 0 {
		return fmt.Errorf("translation.timeout must be positive")
	}

	r := c.Validation
	if r.MinAge <= 0 || r.MaxAge < r.MinAge {
		return fmt.Errorf("validation: invalid age range %d-%d", r.MinAge, r.MaxAge)
	}
	if r.MaxExperienceYears <= 0 {
		return fmt.Errorf("validation.max_experience_years must be positive")
	}
	if r.MaxWage <= 0 {
		return fmt.Errorf("validation.max_wage must be positive")
	}
	if r.MaxNameWords <= 0 || r.MaxFreeSkillWords <= 0 {
		return fmt.Errorf("validation: word limits must be positive")
	}
	if r.MinNameLetterRatio <= 0 || r.MinNameLetterRatio > 1 {
		return fmt.Errorf("validation.min_name_letter_ratio must be in (0,1]")
	}
	for field, table := range map[string]string{
		"age":        r.NumberWords.Age,
		"experience": r.NumberWords.Experience,
		"wage":       r.NumberWords.Wage,
	} {
		if _, err := numparse.ParserFor(table); err != nil {
			return fmt.Errorf("validation.number_words.%s: %w", field, err)
		}
	}

	if len(c.Cutoffs.Skill) == 0 {
		return fmt.Errorf("cutoffs.skill must not be empty")
	}
	cutoffs := append([]float64{c.Cutoffs.Location, c.Cutoffs.Gender, c.Cutoffs.Language, c.Cutoffs.LanguageTitle}, c.Cutoffs.Skill...)
	for _, cut := range cutoffs {
		if cut <= 0 || cut > 1 {
			return fmt.Errorf("cutoffs must be in (0,1], got %v", cut)
		}
	}

	if c.Batch.Workers <= 0 {
		return fmt.Errorf("batch.workers must be positive")
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("session.ttl must be positive")
	}
	return nil
}
