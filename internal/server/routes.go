package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/valpere/sahayak/internal/onboarding"
	"github.com/valpere/sahayak/internal/store"
	"github.com/valpere/sahayak/internal/validation"
)

func (s *Server) initRoutes() {
	e := s.echo

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"service": serviceName,
		})
	})

	v1 := e.Group("/api/v1")

	v1.POST("/validate", s.validate)
	v1.POST("/validate/batch", s.validateBatch)
	v1.POST("/translate", s.translate)
	v1.GET("/questions", s.questions)

	v1.GET("/onboarding/:phone", s.progress)
	v1.POST("/onboarding/:phone/answers", s.submitAnswer)
	v1.POST("/onboarding/:phone/complete", s.complete)

	v1.GET("/workers", s.listWorkers)
	v1.GET("/workers/export", s.exportWorkers)
	v1.GET("/workers/:phone", s.getWorker)
	v1.DELETE("/workers/:phone", s.deleteWorker)
}

func badRequest(c echo.Context, code, msg string) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Error: code, Message: msg})
}

func unavailable(c echo.Context, what string) error {
	return c.JSON(http.StatusServiceUnavailable, ErrorResponse{
		Error:   "unavailable",
		Message: what + " is not configured",
	})
}

func (s *Server) internalError(c echo.Context, msg string, err error) error {
	s.logger.Error(msg, zap.Error(err))
	return c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   "internal_error",
		Message: msg,
	})
}

func (s *Server) validate(c echo.Context) error {
	var req ValidateRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid_request", "Invalid request format")
	}
	if strings.TrimSpace(req.QuestionKey) == "" {
		return badRequest(c, "missing_fields", "question_key is required")
	}

	res := s.deps.Validator.ValidateAnswer(c.Request().Context(), validation.RawAnswer{
		QuestionKey:    req.QuestionKey,
		Text:           req.Text,
		SourceLanguage: req.SourceLanguage,
	})
	return c.JSON(http.StatusOK, res)
}

func (s *Server) validateBatch(c echo.Context) error {
	var req BatchRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid_request", "Invalid request format")
	}
	if len(req.Answers) == 0 {
		return badRequest(c, "missing_fields", "answers must not be empty")
	}
	if len(req.Answers) > maxBatchSize {
		return badRequest(c, "too_many_answers", fmt.Sprintf("at most %d answers per batch", maxBatchSize))
	}

	return c.JSON(http.StatusOK, s.deps.Batch.Run(c.Request().Context(), req.Answers))
}

func (s *Server) translate(c echo.Context) error {
	var req TranslateRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid_request", "Invalid request format")
	}
	if strings.TrimSpace(req.Text) == "" {
		return badRequest(c, "missing_fields", "text is required")
	}

	out := s.deps.Translator.Resolve(c.Request().Context(), req.Text, req.SourceLang, req.TargetLang)
	return c.JSON(http.StatusOK, out)
}

func (s *Server) questions(c echo.Context) error {
	return c.JSON(http.StatusOK, validation.Questions())
}

func (s *Server) progress(c echo.Context) error {
	if s.deps.Onboarding == nil {
		return unavailable(c, "onboarding")
	}
	phone := c.Param("phone")
	answers, pending := s.deps.Onboarding.Progress(phone)
	return c.JSON(http.StatusOK, ProgressResponse{Phone: phone, Answers: answers, Pending: pending})
}

func (s *Server) submitAnswer(c echo.Context) error {
	if s.deps.Onboarding == nil {
		return unavailable(c, "onboarding")
	}
	var req AnswerRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid_request", "Invalid request format")
	}
	if strings.TrimSpace(req.QuestionKey) == "" {
		return badRequest(c, "missing_fields", "question_key is required")
	}

	sub, err := s.deps.Onboarding.SubmitAnswer(c.Request().Context(), c.Param("phone"), req.QuestionKey, req.Text, req.SourceLanguage)
	switch {
	case errors.Is(err, onboarding.ErrInvalidPhone):
		return badRequest(c, "invalid_phone", err.Error())
	case errors.Is(err, onboarding.ErrUnknownQuestion):
		return badRequest(c, "unknown_question", err.Error())
	case err != nil:
		return s.internalError(c, "Failed to submit answer", err)
	}
	return c.JSON(http.StatusOK, sub)
}

func (s *Server) complete(c echo.Context) error {
	if s.deps.Onboarding == nil {
		return unavailable(c, "onboarding")
	}

	w, err := s.deps.Onboarding.Complete(c.Request().Context(), c.Param("phone"))
	switch {
	case errors.Is(err, onboarding.ErrInvalidPhone):
		return badRequest(c, "invalid_phone", err.Error())
	case errors.Is(err, onboarding.ErrIncomplete):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: "incomplete", Message: err.Error()})
	case err != nil:
		return s.internalError(c, "Failed to save worker", err)
	}
	return c.JSON(http.StatusCreated, w)
}

func workerFilter(c echo.Context) (store.WorkerFilter, error) {
	f := store.WorkerFilter{
		Skill:    c.QueryParam("skill"),
		Location: c.QueryParam("location"),
	}
	if l := c.QueryParam("limit"); l != "" {
		n, err := strconv.Atoi(l)
		if err != nil || n < 0 {
			return f, fmt.Errorf("invalid limit %q", l)
		}
		f.Limit = n
	}
	return f, nil
}

func (s *Server) listWorkers(c echo.Context) error {
	if s.deps.Workers == nil {
		return unavailable(c, "worker store")
	}
	f, err := workerFilter(c)
	if err != nil {
		return badRequest(c, "invalid_query", err.Error())
	}

	workers, err := s.deps.Workers.ListWorkers(c.Request().Context(), f)
	if err != nil {
		return s.internalError(c, "Failed to list workers", err)
	}
	if workers == nil {
		workers = []store.Worker{}
	}
	return c.JSON(http.StatusOK, WorkersResponse{Workers: workers, Count: len(workers)})
}

func (s *Server) getWorker(c echo.Context) error {
	if s.deps.Workers == nil {
		return unavailable(c, "worker store")
	}
	w, err := s.deps.Workers.GetWorker(c.Request().Context(), c.Param("phone"))
	if errors.Is(err, store.ErrNotFound) {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not_found", Message: err.Error()})
	}
	if err != nil {
		return s.internalError(c, "Failed to load worker", err)
	}
	return c.JSON(http.StatusOK, w)
}

func (s *Server) deleteWorker(c echo.Context) error {
	if s.deps.Workers == nil {
		return unavailable(c, "worker store")
	}
	err := s.deps.Workers.DeleteWorker(c.Request().Context(), c.Param("phone"))
	if errors.Is(err, store.ErrNotFound) {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not_found", Message: err.Error()})
	}
	if err != nil {
		return s.internalError(c, "Failed to delete worker", err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) exportWorkers(c echo.Context) error {
	if s.deps.Workers == nil {
		return unavailable(c, "worker store")
	}
	f, err := workerFilter(c)
	if err != nil {
		return badRequest(c, "invalid_query", err.Error())
	}

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	res.Header().Set(echo.HeaderContentDisposition, `attachment; filename="workers.csv"`)
	res.WriteHeader(http.StatusOK)

	n, err := s.deps.Workers.ExportCSV(c.Request().Context(), res, f)
	if err != nil {
		s.logger.Error("worker export failed", zap.Error(err))
		return nil
	}
	s.logger.Debug("workers exported", zap.Int("rows", n))
	return nil
}
