package batch

import (
	"context"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/valpere/sahayak/internal/validation"
)

type stubValidator struct {
	delay    time.Duration
	inFlight atomic.Int32
	peak     atomic.Int32
}

func (s *stubValidator) ValidateAnswer(ctx context.Context, answer validation.RawAnswer) validation.Result {
	n := s.inFlight.Add(1)
	defer s.inFlight.Add(-1)
	for {
		p := s.peak.Load()
		if n <= p || s.peak.CompareAndSwap(p, n) {
			break
		}
	}

	select {
	case <-time.After(s.delay):
	case <-ctx.Done():
		return validation.Result{Valid: false, Reason: validation.ReasonNoMatch}
	}

	if strings.TrimSpace(answer.Text) == "" {
		return validation.Result{Valid: false, Reason: validation.ReasonEmpty}
	}
	return validation.Result{Valid: true, Value: strings.ToUpper(answer.Text)}
}

func TestRunner_PreservesOrder(t *testing.T) {
	v := &stubValidator{delay: 5 * time.Millisecond}
	r := New(v, Config{Workers: 3, Timeout: time.Second})

	answers := []validation.RawAnswer{
		{QuestionKey: "name", Text: "a"},
		{QuestionKey: "name", Text: ""},
		{QuestionKey: "name", Text: "c"},
		{QuestionKey: "name", Text: "d"},
		{QuestionKey: "name", Text: " "},
	}

	report := r.Run(context.Background(), answers)

	want := []string{"A", "", "C", "D", ""}
	for i, w := range want {
		if report.Results[i].Value != w {
			t.Errorf("Results[%d].Value = %q, want %q", i, report.Results[i].Value, w)
		}
	}
	if report.Valid != 3 || report.Invalid != 2 {
		t.Errorf("Valid/Invalid = %d/%d, want 3/2", report.Valid, report.Invalid)
	}
}

func TestRunner_BoundsConcurrency(t *testing.T) {
	v := &stubValidator{delay: 10 * time.Millisecond}
	r := New(v, Config{Workers: 2})

	answers := make([]validation.RawAnswer, 10)
	for i := range answers {
		answers[i] = validation.RawAnswer{QuestionKey: "name", Text: "x"}
	}
	r.Run(context.Background(), answers)

	if peak := v.peak.Load(); peak > 2 {
		t.Errorf("peak concurrency = %d, want <= 2", peak)
	}
}

func TestRunner_Timeout(t *testing.T) {
	v := &stubValidator{delay: time.Second}
	r := New(v, Config{Workers: 4, Timeout: 20 * time.Millisecond})

	start := time.Now()
	report := r.Run(context.Background(), []validation.RawAnswer{{QuestionKey: "name", Text: "x"}})

	if time.Since(start) > 500*time.Millisecond {
		t.Error("expected per-answer timeout to cut the call short")
	}
	if report.Results[0].Valid {
		t.Error("expected timed-out answer to be invalid")
	}
}

func TestRunner_Empty(t *testing.T) {
	r := New(&stubValidator{}, Config{})
	report := r.Run(context.Background(), nil)
	if len(report.Results) != 0 || report.Valid != 0 || report.Invalid != 0 {
		t.Errorf("unexpected report for empty input: %+v", report)
	}
}
