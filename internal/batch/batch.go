// Package batch validates many answers concurrently.
package batch

import (
	"context"
	"sync"
	"time"

	"github.com/valpere/sahayak/internal/validation"
)

// Validator is the part of validation.Engine a Runner needs.
type Validator interface {
	ValidateAnswer(ctx context.Context, answer validation.RawAnswer) validation.Result
}

type Config struct {
	// Workers bounds the number of answers validated at once.
	Workers int
	// Timeout bounds each answer, including its translation calls.
	Timeout time.Duration
}

// Report holds results in input order.
type Report struct {
	Results  []validation.Result `json:"results"`
	Valid    int                 `json:"valid"`
	Invalid  int                 `json:"invalid"`
	Duration time.Duration       `json:"duration"`
}

type Runner struct {
	validator Validator
	config    Config
}

func New(validator Validator, config Config) *Runner {
	if config.Workers <= 0 {
		config.Workers = 1
	}
	return &Runner{validator: validator, config: config}
}

// Run validates answers and returns once every answer has a result.
func (r *Runner) Run(ctx context.Context, answers []validation.RawAnswer) *Report {
	start := time.Now()
	report := &Report{Results: make([]validation.Result, len(answers))}

	type indexed struct {
		index int
		res   validation.Result
	}

	results := make(chan indexed, len(answers))
	sem := make(chan struct{}, r.config.Workers)

	var wg sync.WaitGroup
	for i, ans := range answers {
		wg.Add(1)
		go func(index int, answer validation.RawAnswer) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			answerCtx := ctx
			if r.config.Timeout > 0 {
				var cancel context.CancelFunc
				answerCtx, cancel = context.WithTimeout(ctx, r.config.Timeout)
				defer cancel()
			}
			results <- indexed{index: index, res: r.validator.ValidateAnswer(answerCtx, answer)}
		}(i, ans)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	for ir := range results {
		report.Results[ir.index] = ir.res
		if ir.res.Valid {
			report.Valid++
		} else {
			report.Invalid++
		}
	}

	report.Duration = time.Since(start)
	return report
}
