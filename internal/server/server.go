// Package server exposes validation, translation and onboarding over HTTP.
package server

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/valpere/sahayak/internal/batch"
	"github.com/valpere/sahayak/internal/onboarding"
	"github.com/valpere/sahayak/internal/session"
	"github.com/valpere/sahayak/internal/store"
	"github.com/valpere/sahayak/internal/translator"
	"github.com/valpere/sahayak/internal/validation"
)

const serviceName = "sahayak"

// maxBatchSize caps POST /api/v1/validate/batch.
const maxBatchSize = 200

type Validator interface {
	ValidateAnswer(ctx context.Context, answer validation.RawAnswer) validation.Result
}

type BatchRunner interface {
	Run(ctx context.Context, answers []validation.RawAnswer) *batch.Report
}

type Translator interface {
	Resolve(ctx context.Context, text, src, tgt string) translator.Outcome
}

type Onboarding interface {
	SubmitAnswer(ctx context.Context, phone, questionKey, text, sourceLang string) (*onboarding.Submission, error)
	Complete(ctx context.Context, phone string) (*store.Worker, error)
	Progress(phone string) (session.Answers, []validation.Field)
}

type WorkerStore interface {
	ListWorkers(ctx context.Context, f store.WorkerFilter) ([]store.Worker, error)
	GetWorker(ctx context.Context, phone string) (*store.Worker, error)
	DeleteWorker(ctx context.Context, phone string) error
	ExportCSV(ctx context.Context, w io.Writer, f store.WorkerFilter) (int, error)
}

// Deps are the services behind the routes. Onboarding and Workers may be
// nil, in which case their routes answer 503.
type Deps struct {
	Validator  Validator
	Batch      BatchRunner
	Translator Translator
	Onboarding Onboarding
	Workers    WorkerStore
	Logger     *zap.Logger
}

type Server struct {
	echo   *echo.Echo
	deps   Deps
	logger *zap.Logger
}

func New(deps Deps) *Server {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit("1M"))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				fields = append(fields, zap.Error(v.Error))
			}
			deps.Logger.Info("request", fields...)
			return nil
		},
	}))

	s := &Server{echo: e, deps: deps, logger: deps.Logger}
	s.initRoutes()
	return s
}

// Handler returns the underlying http.Handler.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start serves on addr until Shutdown is called.
func (s *Server) Start(addr string) error {
	s.logger.Info("server listening", zap.String("addr", addr))
	if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests, waiting at most timeout.
func (s *Server) Shutdown(ctx context.Context, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return s.echo.Shutdown(ctx)
}
