// Package validation checks spoken onboarding answers field by field and
// turns accepted answers into canonical values.
package validation

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/valpere/sahayak/internal/normalize"
	"github.com/valpere/sahayak/internal/numparse"
)

// NumberWords names the number-word table each numeric field falls back
// to when the answer has no digits.
type NumberWords struct {
	Age        string `mapstructure:"age"`
	Experience string `mapstructure:"experience"`
	Wage       string `mapstructure:"wage"`
}

// Rules are the tunable limits of the field validators.
type Rules struct {
	MinAge             int         `mapstructure:"min_age"`
	MaxAge             int         `mapstructure:"max_age"`
	MaxExperienceYears int         `mapstructure:"max_experience_years"`
	MaxWage            int         `mapstructure:"max_wage"`
	MaxNameWords       int         `mapstructure:"max_name_words"`
	MinNameLetterRatio float64     `mapstructure:"min_name_letter_ratio"`
	MaxFreeSkillWords  int         `mapstructure:"max_free_skill_words"`
	ErrorLanguage      string      `mapstructure:"error_language"`
	NumberWords        NumberWords `mapstructure:"number_words"`
}

func DefaultRules() Rules {
	return Rules{
		MinAge:             16,
		MaxAge:             70,
		MaxExperienceYears: 50,
		MaxWage:            10_000_000,
		MaxNameWords:       4,
		MinNameLetterRatio: 0.7,
		MaxFreeSkillWords:  3,
		ErrorLanguage:      DefaultErrorLanguage,
		NumberWords: NumberWords{
			Age:        numparse.TableNone,
			Experience: numparse.TableNone,
			Wage:       numparse.TableExtended,
		},
	}
}

// Engine validates answers. It keeps no per-call state and is safe for
// concurrent use.
type Engine struct {
	rules      Rules
	normalizer *normalize.Normalizer
	ageWords   *numparse.Parser
	expWords   *numparse.Parser
	wageWords  *numparse.Parser
	logger     *zap.Logger
}

func New(rules Rules, normalizer *normalize.Normalizer, logger *zap.Logger) (*Engine, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	e := &Engine{rules: rules, normalizer: normalizer, logger: logger}

	var err error
	if e.ageWords, err = numparse.ParserFor(rules.NumberWords.Age); err != nil {
		return nil, fmt.Errorf("age: %w", err)
	}
	if e.expWords, err = numparse.ParserFor(rules.NumberWords.Experience); err != nil {
		return nil, fmt.Errorf("experience: %w", err)
	}
	if e.wageWords, err = numparse.ParserFor(rules.NumberWords.Wage); err != nil {
		return nil, fmt.Errorf("wage: %w", err)
	}
	return e, nil
}

// Validate checks text as the answer to questionKey. Unknown keys are
// accepted with surrounding whitespace removed.
func (e *Engine) Validate(ctx context.Context, questionKey, text string) Result {
	return e.ValidateAnswer(ctx, RawAnswer{QuestionKey: questionKey, Text: text})
}

// ValidateAnswer is Validate with an optional assumed source language.
func (e *Engine) ValidateAnswer(ctx context.Context, answer RawAnswer) Result {
	field, known := ResolveField(answer.QuestionKey)
	if !known {
		return accept(strings.TrimSpace(answer.Text))
	}

	text := strings.TrimSpace(answer.Text)
	if text == "" {
		return e.reject(field, ReasonEmpty)
	}

	var res Result
	switch field {
	case FieldName:
		res = e.validateName(text)
	case FieldAge:
		res = e.validateAge(text)
	case FieldSkill:
		res = e.validateSkill(ctx, text, answer.SourceLanguage)
	case FieldExperience:
		res = e.validateExperience(text)
	case FieldLocation:
		res = e.validateLocation(ctx, text, answer.SourceLanguage)
	case FieldGender:
		res = e.validateGender(text)
	case FieldPhone:
		res = e.validatePhone(text)
	case FieldWage:
		res = e.validateWage(text)
	case FieldLanguages:
		res = e.validateLanguages(ctx, text, answer.SourceLanguage)
	}

	if !res.Valid {
		res = e.reject(field, res.Reason)
		e.logger.Debug("answer rejected",
			zap.String("field", string(field)),
			zap.String("reason", string(res.Reason)))
	}
	return res
}

func (e *Engine) reject(field Field, reason Reason) Result {
	msg, lang := Message(field, e.rules.ErrorLanguage)
	return Result{
		Valid:         false,
		ErrorMessage:  msg,
		ErrorLanguage: lang,
		Reason:        reason,
	}
}

func fail(reason Reason) Result {
	return Result{Reason: reason}
}
