package server

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/valpere/sahayak/internal/batch"
	"github.com/valpere/sahayak/internal/normalize"
	"github.com/valpere/sahayak/internal/onboarding"
	"github.com/valpere/sahayak/internal/session"
	"github.com/valpere/sahayak/internal/store"
	"github.com/valpere/sahayak/internal/translator"
	"github.com/valpere/sahayak/internal/validation"
	"github.com/valpere/sahayak/internal/vocab"
)

type fakeTranslator struct{}

func (fakeTranslator) Resolve(_ context.Context, text, src, tgt string) translator.Outcome {
	if text == "नमस्ते" {
		return translator.Outcome{Text: "hello", SourceUsed: translator.SourcePrimary}
	}
	return translator.Outcome{Text: text, SourceUsed: translator.SourceNone}
}

func newTestServer(t *testing.T) (*Server, *store.Store) {
	t.Helper()
	logger := zaptest.NewLogger(t)

	n := normalize.New(vocab.Default(), nil, normalize.DefaultCutoffs(), logger)
	engine, err := validation.New(validation.DefaultRules(), n, logger)
	require.NoError(t, err)

	db, err := store.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	svc := onboarding.New(engine, session.NewMemoryStore(time.Minute, time.Minute), db, logger,
		onboarding.WithRequired(validation.FieldName, validation.FieldSkill))

	return New(Deps{
		Validator:  engine,
		Batch:      batch.New(engine, batch.Config{Workers: 2, Timeout: time.Second}),
		Translator: fakeTranslator{},
		Onboarding: svc,
		Workers:    db,
		Logger:     logger,
	}), db
}

func do(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	s, _ := newTestServer(t)
	rec := do(t, s, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","service":"sahayak"}`, rec.Body.String())
}

func TestValidate(t *testing.T) {
	s, _ := newTestServer(t)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantValid  bool
		wantValue  string
		wantReason string
	}{
		{name: "valid age", body: `{"question_key":"age","text":"२८"}`, wantStatus: http.StatusOK, wantValid: true, wantValue: "28"},
		{name: "invalid phone", body: `{"question_key":"phone","text":"12345"}`, wantStatus: http.StatusOK, wantReason: "bad_length"},
		{name: "alias", body: `{"question_key":"sex","text":"महिला"}`, wantStatus: http.StatusOK, wantValid: true, wantValue: "Female"},
		{name: "missing key", body: `{"text":"x"}`, wantStatus: http.StatusBadRequest},
		{name: "malformed", body: `{"question_key":`, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, s, http.MethodPost, "/api/v1/validate", tt.body)
			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantStatus != http.StatusOK {
				var errResp ErrorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
				assert.NotEmpty(t, errResp.Error)
				return
			}

			var res validation.Result
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
			assert.Equal(t, tt.wantValid, res.Valid)
			assert.Equal(t, tt.wantValue, res.Value)
			assert.Equal(t, tt.wantReason, string(res.Reason))
			if !res.Valid {
				assert.NotEmpty(t, res.ErrorMessage)
				assert.Equal(t, "hi", res.ErrorLanguage)
			}
		})
	}
}

func TestValidateBatch(t *testing.T) {
	s, _ := newTestServer(t)

	rec := do(t, s, http.MethodPost, "/api/v1/validate/batch", `{"answers":[
		{"question_key":"age","text":"28"},
		{"question_key":"age","text":"5"},
		{"question_key":"skill","text":"painter"}
	]}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var report batch.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	require.Len(t, report.Results, 3)
	assert.Equal(t, "28", report.Results[0].Value)
	assert.False(t, report.Results[1].Valid)
	assert.Equal(t, "Painter", report.Results[2].Value)
	assert.Equal(t, 2, report.Valid)
	assert.Equal(t, 1, report.Invalid)

	rec = do(t, s, http.MethodPost, "/api/v1/validate/batch", `{"answers":[]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTranslate(t *testing.T) {
	s, _ := newTestServer(t)

	rec := do(t, s, http.MethodPost, "/api/v1/translate", `{"text":"नमस्ते"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"text":"hello","source_used":"primary","suspicious":false}`, rec.Body.String())

	rec = do(t, s, http.MethodPost, "/api/v1/translate", `{"text":"  "}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestQuestions(t *testing.T) {
	s, _ := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/api/v1/questions", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var qs []validation.Question
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &qs))
	assert.Len(t, qs, len(validation.Fields))
	assert.Equal(t, validation.FieldName, qs[0].Key)
	assert.NotEmpty(t, qs[0].Prompt["hi"])
}

func TestOnboardingFlow(t *testing.T) {
	s, db := newTestServer(t)
	const phone = "9876543210"

	rec := do(t, s, http.MethodPost, "/api/v1/onboarding/"+phone+"/complete", "")
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, s, http.MethodPost, "/api/v1/onboarding/"+phone+"/answers", `{"question_key":"name","text":"Sita Devi"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var sub onboarding.Submission
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sub))
	assert.True(t, sub.Result.Valid)
	assert.Equal(t, []validation.Field{validation.FieldSkill}, sub.Pending)

	rec = do(t, s, http.MethodPost, "/api/v1/onboarding/"+phone+"/answers", `{"question_key":"job_title","text":"दर्जी"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sub))
	assert.True(t, sub.Complete)

	rec = do(t, s, http.MethodGet, "/api/v1/onboarding/"+phone, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var progress ProgressResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &progress))
	assert.Equal(t, "Sita Devi", progress.Answers["name"])
	assert.Empty(t, progress.Pending)

	rec = do(t, s, http.MethodPost, "/api/v1/onboarding/"+phone+"/complete", "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	w, err := db.GetWorker(context.Background(), phone)
	require.NoError(t, err)
	assert.Equal(t, "Sita Devi", w.Name)
	assert.Equal(t, "Tailor", w.Skill)
}

func TestOnboarding_BadInput(t *testing.T) {
	s, _ := newTestServer(t)

	rec := do(t, s, http.MethodPost, "/api/v1/onboarding/123/answers", `{"question_key":"name","text":"Sita"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, s, http.MethodPost, "/api/v1/onboarding/9876543210/answers", `{"question_key":"colour","text":"blue"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unknown_question")

	rec = do(t, s, http.MethodPost, "/api/v1/onboarding/9876543210/answers", `{"text":"blue"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWorkers(t *testing.T) {
	s, db := newTestServer(t)
	ctx := context.Background()

	require.NoError(t, db.UpsertWorker(ctx, &store.Worker{Phone: "9000000001", Name: "A", Skill: "Painter", Location: "Mumbai"}))
	require.NoError(t, db.UpsertWorker(ctx, &store.Worker{Phone: "9000000002", Name: "B", Skill: "Plumber", Location: "Delhi"}))

	rec := do(t, s, http.MethodGet, "/api/v1/workers?skill=painter", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list WorkersResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Equal(t, 1, list.Count)
	assert.Equal(t, "A", list.Workers[0].Name)

	rec = do(t, s, http.MethodGet, "/api/v1/workers?limit=abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, s, http.MethodGet, "/api/v1/workers/9000000002", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"skill":"Plumber"`)

	rec = do(t, s, http.MethodGet, "/api/v1/workers/export", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/csv")
	rows, err := csv.NewReader(rec.Body).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 3)

	rec = do(t, s, http.MethodDelete, "/api/v1/workers/9000000002", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, s, http.MethodGet, "/api/v1/workers/9000000002", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, s, http.MethodDelete, "/api/v1/workers/9000000002", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUnconfiguredServices(t *testing.T) {
	logger := zaptest.NewLogger(t)
	s := New(Deps{Logger: logger})

	for _, path := range []string{"/api/v1/workers", "/api/v1/onboarding/9876543210"} {
		rec := do(t, s, http.MethodGet, path, "")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code, path)
	}
}
