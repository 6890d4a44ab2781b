// Package tts renders validation error messages as audio so a voice-only
// user hears why an answer was rejected.
package tts

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Synthesizer converts text in the given language to audio bytes.
type Synthesizer interface {
	Name() string
	Synthesize(ctx context.Context, text, lang string) ([]byte, error)
}

// Config selects and configures a synthesizer. Provider is "none",
// "google" or "elevenlabs".
type Config struct {
	Provider   string           `mapstructure:"provider"`
	Timeout    time.Duration    `mapstructure:"timeout"`
	Google     GoogleConfig     `mapstructure:"google"`
	ElevenLabs ElevenLabsConfig `mapstructure:"elevenlabs"`
}

// New builds the configured synthesizer. It returns nil when audio is
// disabled.
func New(cfg Config, logger *zap.Logger) (Synthesizer, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	switch strings.ToLower(cfg.Provider) {
	case "", "none":
		return nil, nil
	case "google":
		g := cfg.Google
		if g.Timeout == 0 {
			g.Timeout = cfg.Timeout
		}
		return NewGoogleWebTTS(g), nil
	case "elevenlabs":
		e := cfg.ElevenLabs
		if e.Timeout == 0 {
			e.Timeout = cfg.Timeout
		}
		s, err := NewElevenLabsTTS(e, logger)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown tts provider %q", cfg.Provider)
	}
}
