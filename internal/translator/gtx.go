package translator

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultGtxURL     = "https://translate.googleapis.com/translate_a/single"
	defaultGtxTimeout = 10 * time.Second
)

// GtxService calls the public web translation endpoint used by browser
// extensions. It is the gateway's fallback.
type GtxService struct {
	baseURL string
	client  *http.Client
}

func NewGtxService(cfg ServiceConfig) *GtxService {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultGtxURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultGtxTimeout
	}
	return &GtxService{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (s *GtxService) Name() string {
	return "gtx"
}

func (s *GtxService) Translate(ctx context.Context, req TranslateRequest) (*ServiceResult, error) {
	result := &ServiceResult{ServiceName: s.Name()}
	start := time.Now()
	defer func() { result.Latency = time.Since(start) }()

	sourceLang := req.SourceLang
	if sourceLang == "" {
		sourceLang = "auto"
	}

	params := url.Values{}
	params.Set("client", "gtx")
	params.Set("sl", sourceLang)
	params.Set("tl", req.TargetLang)
	params.Set("dt", "t")
	params.Set("q", req.Text)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		result.Error = fmt.Sprintf("failed to create request: %v", err)
		return result, err
	}

	resp, err := s.client.Do(httpReq)
	if err != nil {
		result.Error = fmt.Sprintf("request failed: %v", err)
		return result, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		result.Error = fmt.Sprintf("unexpected status: %d", resp.StatusCode)
		return result, fmt.Errorf("gtx: unexpected status %d", resp.StatusCode)
	}

	var data []any
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		result.Error = fmt.Sprintf("failed to decode response: %v", err)
		return result, err
	}

	text, err := joinSegments(data)
	if err != nil {
		result.Error = err.Error()
		return result, err
	}

	result.TranslatedText = text
	result.Confidence = 1.0

	return result, nil
}

// joinSegments concatenates the translated part of every segment in
// data[0]. Each segment is [translated, original, ...]; segments without a
// translated string are skipped.
func joinSegments(data []any) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("gtx: empty response")
	}
	segments, ok := data[0].([]any)
	if !ok {
		return "", fmt.Errorf("gtx: unexpected response shape")
	}

	var b strings.Builder
	for _, seg := range segments {
		parts, ok := seg.([]any)
		if !ok || len(parts) == 0 {
			continue
		}
		if s, ok := parts[0].(string); ok {
			b.WriteString(s)
		}
	}
	return b.String(), nil
}
