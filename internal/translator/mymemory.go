package translator

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const defaultMyMemoryURL = "https://api.mymemory.translated.net/get"

// MyMemoryService calls the free MyMemory API. It needs no credentials; an
// email raises the daily quota.
type MyMemoryService struct {
	email   string
	baseURL string
	client  *http.Client
}

func NewMyMemoryService(cfg ServiceConfig) *MyMemoryService {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultMyMemoryURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &MyMemoryService{
		email:   cfg.Email,
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (s *MyMemoryService) Name() string {
	return "mymemory"
}

func (s *MyMemoryService) Translate(ctx context.Context, req TranslateRequest) (*ServiceResult, error) {
	result := &ServiceResult{ServiceName: s.Name()}
	start := time.Now()
	defer func() { result.Latency = time.Since(start) }()

	sourceLang := req.SourceLang
	if sourceLang == "" || sourceLang == "auto" {
		sourceLang = "en"
	}

	params := url.Values{}
	params.Set("q", req.Text)
	params.Set("langpair", fmt.Sprintf("%s|%s", sourceLang, req.TargetLang))
	if s.email != "" {
		params.Set("de", s.email)
	}

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
		return result, fmt.Errorf("mymemory: unexpected status %d", resp.StatusCode)
	}

	var mymemResp struct {
		ResponseData struct {
			TranslatedText string  `json:"translatedText"`
			Match          float64 `json:"match"`
		} `json:"responseData"`
		// the API sends the status as a number or as a quoted number
		ResponseStatus  json.Number `json:"responseStatus"`
		ResponseDetails string      `json:"responseDetails"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&mymemResp); err != nil {
		result.Error = fmt.Sprintf("failed to decode response: %v", err)
		return result, err
	}

	if mymemResp.ResponseStatus.String() != "200" {
		result.Error = fmt.Sprintf("API error: %s (%s)", mymemResp.ResponseDetails, mymemResp.ResponseStatus)
		return result, fmt.Errorf("mymemory: API error: %s", mymemResp.ResponseDetails)
	}

	result.TranslatedText = mymemResp.ResponseData.TranslatedText
	result.Confidence = min(max(mymemResp.ResponseData.Match, 0), 1)

	return result, nil
}
