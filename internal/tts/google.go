package tts

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultGoogleTTSURL = "https://translate.google.com/translate_tts"

// maxGoogleTTSRunes is the longest text the web endpoint accepts per call.
const maxGoogleTTSRunes = 200

type GoogleConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// GoogleWebTTS uses the unauthenticated translate_tts endpoint and returns
// MP3 audio.
type GoogleWebTTS struct {
	baseURL string
	client  *http.Client
}

func NewGoogleWebTTS(cfg GoogleConfig) *GoogleWebTTS {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultGoogleTTSURL
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &GoogleWebTTS{baseURL: baseURL, client: &http.Client{Timeout: timeout}}
}

func (g *GoogleWebTTS) Name() string {
	return "google"
}

// Synthesize returns MP3 audio. Text longer than the endpoint limit is
// split and the MP3 streams are concatenated.
func (g *GoogleWebTTS) Synthesize(ctx context.Context, text, lang string) ([]byte, error) {
	parts := splitText(text, maxGoogleTTSRunes)
	if len(parts) == 0 {
		return nil, fmt.Errorf("text cannot be empty")
	}
	if lang == "" {
		lang = "hi"
	}

	var audio []byte
	for i, part := range parts {
		chunk, err := g.fetch(ctx, part, lang)
		if err != nil {
			return nil, fmt.Errorf("part %d/%d: %w", i+1, len(parts), err)
		}
		audio = append(audio, chunk...)
	}
	return audio, nil
}

func (g *GoogleWebTTS) fetch(ctx context.Context, text, lang string) ([]byte, error) {
	params := url.Values{}
	params.Set("ie", "UTF-8")
	params.Set("client", "tw-ob")
	params.Set("tl", lang)
	params.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tts request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tts returned status %d", resp.StatusCode)
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio: %w", err)
	}
	if len(audio) == 0 {
		return nil, fmt.Errorf("tts returned no audio")
	}
	return audio, nil
}
