// Package onboarding runs the question-by-question worker interview: each
// answer is validated, accepted values are kept in a session and a
// completed session becomes a stored worker profile.
package onboarding

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/valpere/sahayak/internal/numparse"
	"github.com/valpere/sahayak/internal/session"
	"github.com/valpere/sahayak/internal/store"
	"github.com/valpere/sahayak/internal/tts"
	"github.com/valpere/sahayak/internal/validation"
)

var (
	ErrInvalidPhone    = errors.New("invalid phone number")
	ErrUnknownQuestion = errors.New("unknown question key")
	ErrIncomplete      = errors.New("onboarding incomplete")
)

// DefaultRequired are the fields a profile needs before it can be saved.
var DefaultRequired = []validation.Field{
	validation.FieldName,
	validation.FieldAge,
	validation.FieldGender,
	validation.FieldSkill,
	validation.FieldExperience,
	validation.FieldLocation,
}

// Validator is the part of validation.Engine the service needs.
type Validator interface {
	ValidateAnswer(ctx context.Context, answer validation.RawAnswer) validation.Result
}

// Repository persists attempts and finished profiles.
type Repository interface {
	LogAnswer(ctx context.Context, rec store.AnswerRecord) error
	UpsertWorker(ctx context.Context, w *store.Worker) error
}

// Submission is the outcome of one submitted answer.
type Submission struct {
	Field  validation.Field  `json:"field"`
	Result validation.Result `json:"result"`
	// Audio is the spoken error message, set only for rejected answers when
	// a synthesizer is configured.
	Audio    []byte               `json:"audio,omitempty"`
	Answers  session.Answers      `json:"answers"`
	Pending  []validation.Field   `json:"pending"`
	Next     *validation.Question `json:"next,omitempty"`
	Complete bool                 `json:"complete"`
}

type Service struct {
	validator Validator
	sessions  session.Store
	repo      Repository
	synth     tts.Synthesizer
	required  []validation.Field
	logger    *zap.Logger
}

type Option func(*Service)

// WithSynthesizer enables error-message audio.
func WithSynthesizer(s tts.Synthesizer) Option {
	return func(svc *Service) { svc.synth = s }
}

// WithRequired overrides DefaultRequired.
func WithRequired(fields ...validation.Field) Option {
	return func(svc *Service) { svc.required = fields }
}

func New(validator Validator, sessions session.Store, repo Repository, logger *zap.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Service{
		validator: validator,
		sessions:  sessions,
		repo:      repo,
		required:  DefaultRequired,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SubmitAnswer validates one answer for the worker identified by phone.
// Rejections are reported in Submission.Result; errors are returned only
// for a bad phone or question key.
func (s *Service) SubmitAnswer(ctx context.Context, phone, questionKey, text, sourceLang string) (*Submission, error) {
	phone, err := s.checkPhone(ctx, phone)
	if err != nil {
		return nil, err
	}
	field, ok := validation.ResolveField(questionKey)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownQuestion, questionKey)
	}

	res := s.validator.ValidateAnswer(ctx, validation.RawAnswer{
		QuestionKey:    string(field),
		Text:           text,
		SourceLanguage: sourceLang,
	})

	if err := s.repo.LogAnswer(ctx, store.AnswerRecord{
		Phone:        phone,
		QuestionKey:  string(field),
		RawText:      text,
		SourceLang:   sourceLang,
		Valid:        res.Valid,
		CleanedValue: res.Value,
		Reason:       string(res.Reason),
	}); err != nil {
		s.logger.Warn("failed to log answer", zap.String("field", string(field)), zap.Error(err))
	}

	sub := &Submission{Field: field, Result: res}

	var answers session.Answers
	if res.Valid {
		answers = s.sessions.SetAnswer(phone, string(field), res.Value)
	} else {
		answers, _ = s.sessions.Answers(phone)
		sub.Audio = s.speak(ctx, res)
	}
	if answers == nil {
		answers = session.Answers{}
	}

	sub.Answers = answers
	sub.Pending = s.pending(answers)
	sub.Complete = len(sub.Pending) == 0
	sub.Next = nextQuestion(answers, res, field)

	s.logger.Debug("answer submitted",
		zap.String("field", string(field)),
		zap.Bool("valid", res.Valid),
		zap.String("reason", string(res.Reason)),
		zap.Int("pending", len(sub.Pending)))
	return sub, nil
}

// Progress returns the accepted answers and the required fields still
// missing for phone.
func (s *Service) Progress(phone string) (session.Answers, []validation.Field) {
	answers, ok := s.sessions.Answers(numparse.OnlyDigits(numparse.NormalizeDigits(phone)))
	if !ok {
		answers = session.Answers{}
	}
	return answers, s.pending(answers)
}

// Complete saves the session as a worker profile and clears the session.
// It fails with ErrIncomplete while required fields are missing.
func (s *Service) Complete(ctx context.Context, phone string) (*store.Worker, error) {
	phone, err := s.checkPhone(ctx, phone)
	if err != nil {
		return nil, err
	}

	answers, _ := s.sessions.Answers(phone)
	if missing := s.pending(answers); len(missing) > 0 {
		names := make([]string, len(missing))
		for i, f := range missing {
			names[i] = string(f)
		}
		return nil, fmt.Errorf("%w: missing %s", ErrIncomplete, strings.Join(names, ", "))
	}

	w := &store.Worker{
		Phone:      phone,
		Name:       answers[string(validation.FieldName)],
		Age:        answers[string(validation.FieldAge)],
		Gender:     answers[string(validation.FieldGender)],
		Skill:      answers[string(validation.FieldSkill)],
		Experience: answers[string(validation.FieldExperience)],
		Location:   answers[string(validation.FieldLocation)],
		Wage:       answers[string(validation.FieldWage)],
		Languages:  answers[string(validation.FieldLanguages)],
	}
	if err := s.repo.UpsertWorker(ctx, w); err != nil {
		return nil, fmt.Errorf("failed to save worker: %w", err)
	}
	s.sessions.Delete(phone)

	s.logger.Info("onboarding complete", zap.String("worker_id", w.ID))
	return w, nil
}

func (s *Service) checkPhone(ctx context.Context, phone string) (string, error) {
	res := s.validator.ValidateAnswer(ctx, validation.RawAnswer{
		QuestionKey: string(validation.FieldPhone),
		Text:        phone,
	})
	if !res.Valid {
		return "", fmt.Errorf("%w: %q", ErrInvalidPhone, phone)
	}
	return res.Value, nil
}

func (s *Service) speak(ctx context.Context, res validation.Result) []byte {
	if s.synth == nil || res.ErrorMessage == "" {
		return nil
	}
	audio, err := s.synth.Synthesize(ctx, res.ErrorMessage, res.ErrorLanguage)
	if err != nil {
		s.logger.Warn("failed to synthesize error message",
			zap.String("synthesizer", s.synth.Name()), zap.Error(err))
		return nil
	}
	return audio
}

func (s *Service) pending(answers session.Answers) []validation.Field {
	var missing []validation.Field
	for _, f := range s.required {
		if _, ok := answers[string(f)]; !ok {
			missing = append(missing, f)
		}
	}
	return missing
}

// nextQuestion repeats the current question after a rejection, otherwise
// picks the first unanswered field in interview order.
func nextQuestion(answers session.Answers, res validation.Result, current validation.Field) *validation.Question {
	target := current
	if res.Valid {
		target = ""
		for _, f := range validation.Fields {
			if f == validation.FieldPhone {
				continue
			}
			if _, ok := answers[string(f)]; !ok {
				target = f
				break
			}
		}
	}
	if target == "" {
		return nil
	}
	for _, q := range validation.Questions() {
		if q.Key == target {
			q := q
			return &q
		}
	}
	return nil
}
