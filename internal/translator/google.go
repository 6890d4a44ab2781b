package translator

import (
	"context"
	"fmt"
	"time"

	translate "cloud.google.com/go/translate"
	"golang.org/x/text/language"
	"google.golang.org/api/option"
)

// GoogleService uses the Cloud Translation v2 API. Credentials come from a
// service-account file, an API key, or application default credentials.
type GoogleService struct {
	credentials string
	apiKey      string
}

func NewGoogleService(cfg ServiceConfig) *GoogleService {
	return &GoogleService{credentials: cfg.Credentials, apiKey: cfg.APIKey}
}

func (s *GoogleService) Name() string {
	return "google"
}

func (s *GoogleService) Translate(ctx context.Context, req TranslateRequest) (*ServiceResult, error) {
	result := &ServiceResult{ServiceName: s.Name()}
	start := time.Now()
	defer func() { result.Latency = time.Since(start) }()

	targetLangTag, err := language.Parse(req.TargetLang)
	if err != nil {
		result.Error = fmt.Sprintf("invalid target language: %v", err)
		return result, fmt.Errorf("invalid target language: %w", err)
	}

	opts := []option.ClientOption{}
	switch {
	case s.credentials != "":
		opts = append(opts, option.WithCredentialsFile(s.credentials))
	case s.apiKey != "":
		opts = append(opts, option.WithAPIKey(s.apiKey))
	}

	client, err := translate.NewClient(ctx, opts...)
	if err != nil {
		result.Error = fmt.Sprintf("failed to create client: %v", err)
		return result, fmt.Errorf("failed to create client: %w", err)
	}
	defer client.Close()

	var translateOpts *translate.Options
	if req.SourceLang != "" && req.SourceLang != "auto" {
		sourceLangTag, err := language.Parse(req.SourceLang)
		if err != nil {
			result.Error = fmt.Sprintf("invalid source language: %v", err)
			return result, fmt.Errorf("invalid source language: %w", err)
		}
		translateOpts = &translate.Options{Source: sourceLangTag, Format: translate.Text}
	}

	translations, err := client.Translate(ctx, []string{req.Text}, targetLangTag, translateOpts)
	if err != nil {
		result.Error = fmt.Sprintf("translation failed: %v", err)
		return result, fmt.Errorf("translation failed: %w", err)
	}

	if len(translations) == 0 {
		result.Error = "no translation returned"
		return result, fmt.Errorf("no translation returned")
	}

	result.TranslatedText = translations[0].Text
	result.Confidence = 1.0

	return result, nil
}
