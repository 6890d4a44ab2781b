package server

import (
	"github.com/valpere/sahayak/internal/session"
	"github.com/valpere/sahayak/internal/store"
	"github.com/valpere/sahayak/internal/validation"
)

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type ValidateRequest struct {
	QuestionKey    string `json:"question_key"`
	Text           string `json:"text"`
	SourceLanguage string `json:"source_language"`
}

type BatchRequest struct {
	Answers []validation.RawAnswer `json:"answers"`
}

type TranslateRequest struct {
	Text       string `json:"text"`
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang"`
}

type AnswerRequest struct {
	QuestionKey    string `json:"question_key"`
	Text           string `json:"text"`
	SourceLanguage string `json:"source_language"`
}

type ProgressResponse struct {
	Phone   string             `json:"phone"`
	Answers session.Answers    `json:"answers"`
	Pending []validation.Field `json:"pending"`
}

type WorkersResponse struct {
	Workers []store.Worker `json:"workers"`
	Count   int            `json:"count"`
}
