package translator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/valpere/sahayak/internal/detector"
)

// LanguageGate reports whether text is plausibly written in lang.
// *detector.Detector implements it.
type LanguageGate interface {
	Matches(text, lang string) bool
}

type GatewayOption func(*Gateway)

// WithTimeout bounds the primary call. The fallback keeps its own client
// timeout. Zero leaves the caller's context as the only deadline.
func WithTimeout(d time.Duration) GatewayOption {
	return func(g *Gateway) { g.timeout = d }
}

// WithLanguageGate treats primary output that gate rejects for the target
// language as suspicious.
func WithLanguageGate(gate LanguageGate) GatewayOption {
	return func(g *Gateway) { g.gate = gate }
}

// Gateway translates with a primary service and escalates once to a
// fallback service. It holds no mutable state and is safe for concurrent
// use.
type Gateway struct {
	primary  TranslationService
	fallback TranslationService
	gate     LanguageGate
	timeout  time.Duration
	logger   *zap.Logger
}

// NewGateway builds a Gateway. Either service may be nil.
func NewGateway(primary, fallback TranslationService, logger *zap.Logger, opts ...GatewayOption) *Gateway {
	if logger == nil {
		logger = zap.NewNop()
	}
	g := &Gateway{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Translate returns the best available translation of text, or text itself.
func (g *Gateway) Translate(ctx context.Context, text, src, tgt string) string {
	return g.Resolve(ctx, text, src, tgt).Text
}

// TranslateToEnglish translates text to English. An empty assumedSource
// is inferred from the script of text.
func (g *Gateway) TranslateToEnglish(ctx context.Context, text, assumedSource string) string {
	return g.Translate(ctx, text, assumedSource, "en")
}

// Resolve translates text from src to tgt and reports which service the
// result came from. Priority is fallback, then primary, then the input.
func (g *Gateway) Resolve(ctx context.Context, text, src, tgt string) Outcome {
	if src == "" {
		src = detector.SourceLanguage(text)
	}
	if tgt == "" {
		tgt = "en"
	}

	unchanged := Outcome{Text: text, SourceUsed: SourceNone}
	if strings.TrimSpace(text) == "" || strings.EqualFold(src, tgt) {
		return unchanged
	}

	req := TranslateRequest{Text: text, SourceLang: src, TargetLang: tgt}

	primary := g.call(ctx, g.primary, req, g.timeout)
	if primary != "" && !IsSuspicious(text, primary) && g.inTarget(primary, tgt) {
		return Outcome{Text: primary, SourceUsed: SourcePrimary}
	}

	g.logger.Debug("escalating to fallback translation",
		zap.String("source_lang", src),
		zap.String("target_lang", tgt),
		zap.Bool("primary_empty", primary == ""))

	fallback := g.call(ctx, g.fallback, req, 0)
	switch {
	case fallback != "":
		return Outcome{Text: fallback, SourceUsed: SourceFallback, Suspicious: true}
	case primary != "":
		return Outcome{Text: primary, SourceUsed: SourcePrimary, Suspicious: true}
	}
	unchanged.Suspicious = true
	return unchanged
}

func (g *Gateway) inTarget(text, tgt string) bool {
	return g.gate == nil || g.gate.Matches(text, tgt)
}

// call runs one service under an optional timeout and turns every failure,
// including a panic, into an empty string.
func (g *Gateway) call(ctx context.Context, svc TranslationService, req TranslateRequest, timeout time.Duration) (text string) {
	if svc == nil {
		return ""
	}

	defer func() {
		if r := recover(); r != nil {
			g.logger.Warn("translation service panicked",
				zap.String("service", svc.Name()),
				zap.Error(fmt.Errorf("%v", r)))
			text = ""
		}
	}()

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	res, err := svc.Translate(ctx, req)
	if err != nil {
		fields := []zap.Field{zap.String("service", svc.Name()), zap.Error(err)}
		if res != nil {
			fields = append(fields, zap.Duration("latency", res.Latency))
		}
		g.logger.Warn("translation failed", fields...)
		return ""
	}
	if res == nil {
		return ""
	}

	g.logger.Debug("translation done",
		zap.String("service", res.ServiceName),
		zap.Duration("latency", res.Latency))
	return strings.TrimSpace(res.TranslatedText)
}
