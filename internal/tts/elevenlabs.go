package tts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	defaultAPIBaseURL   = "https://api.elevenlabs.io/v1"
	defaultVoiceID      = "21m00Tcm4TlvDq8ikWAM"
	defaultOutputFormat = "mp3_44100_128"
	defaultModelID      = "eleven_multilingual_v2"
	defaultStability    = 0.5
	defaultClarity      = 0.75
)

// ElevenLabsConfig configures the ElevenLabs adapter. Only APIKey is
// required.
type ElevenLabsConfig struct {
	APIKey       string        `mapstructure:"api_key"`
	APIBaseURL   string        `mapstructure:"base_url"`
	VoiceID      string        `mapstructure:"voice_id"`
	ModelID      string        `mapstructure:"model_id"`
	OutputFormat string        `mapstructure:"output_format"`
	Stability    float64       `mapstructure:"stability"`
	Clarity      float64       `mapstructure:"clarity"`
	Timeout      time.Duration `mapstructure:"timeout"`
}

type elevenLabsVoiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
}

type elevenLabsRequest struct {
	Text          string                  `json:"text"`
	ModelID       string                  `json:"model_id"`
	LanguageCode  string                  `json:"language_code,omitempty"`
	VoiceSettings elevenLabsVoiceSettings `json:"voice_settings"`
}

type ElevenLabsTTS struct {
	apiKey       string
	apiBaseURL   string
	voiceID      string
	modelID      string
	outputFormat string
	stability    float64
	clarity      float64
	client       *http.Client
	logger       *zap.Logger
}

var _ Synthesizer = (*ElevenLabsTTS)(nil)

func ValidateElevenLabsConfig(cfg ElevenLabsConfig) error {
	if cfg.APIKey == "" {
		return fmt.Errorf("eleven labs API key is required")
	}
	if cfg.Stability < 0 || cfg.Stability > 1 {
		return fmt.Errorf("stability must be between 0 and 1, got %f", cfg.Stability)
	}
	if cfg.Clarity < 0 || cfg.Clarity > 1 {
		return fmt.Errorf("clarity must be between 0 and 1, got %f", cfg.Clarity)
	}
	return nil
}

func NewElevenLabsTTS(cfg ElevenLabsConfig, logger *zap.Logger) (*ElevenLabsTTS, error) {
	if err := ValidateElevenLabsConfig(cfg); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	t := &ElevenLabsTTS{
		apiKey:       cfg.APIKey,
		apiBaseURL:   cfg.APIBaseURL,
		voiceID:      cfg.VoiceID,
		modelID:      cfg.ModelID,
		outputFormat: cfg.OutputFormat,
		stability:    cfg.Stability,
		clarity:      cfg.Clarity,
		logger:       logger,
	}
	if t.apiBaseURL == "" {
		t.apiBaseURL = defaultAPIBaseURL
	}
	if t.voiceID == "" {
		t.voiceID = defaultVoiceID
		logger.Info("Using default voice ID", zap.String("voiceID", t.voiceID))
	}
	if t.modelID == "" {
		t.modelID = defaultModelID
	}
	if t.outputFormat == "" {
		t.outputFormat = defaultOutputFormat
	}
	if t.stability == 0 {
		t.stability = defaultStability
	}
	if t.clarity == 0 {
		t.clarity = defaultClarity
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	t.client = &http.Client{Timeout: timeout}
	return t, nil
}

func (e *ElevenLabsTTS) Name() string {
	return "elevenlabs"
}

func (e *ElevenLabsTTS) Synthesize(ctx context.Context, text, lang string) ([]byte, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("text cannot be empty")
	}

	body, err := json.Marshal(elevenLabsRequest{
		Text:         text,
		ModelID:      e.modelID,
		LanguageCode: lang,
		VoiceSettings: elevenLabsVoiceSettings{
			Stability:       e.stability,
			SimilarityBoost: e.clarity,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/text-to-speech/%s?output_format=%s", e.apiBaseURL, e.voiceID, e.outputFormat)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("xi-api-key", e.apiKey)
	req.Header.Set("Accept", "audio/mpeg")
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		e.logger.Warn("ElevenLabs request failed",
			zap.Int("status", resp.StatusCode),
			zap.String("body", string(msg)))
		return nil, fmt.Errorf("eleven labs API error (status %d): %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio: %w", err)
	}
	return audio, nil
}
