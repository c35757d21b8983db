package consultation

import (
	"context"
	"errors"
	"strings"
	"time"

	"legalassist/monitoring"
	"legalassist/services/intelligence"
	"legalassist/utils"

	"go.uber.org/zap"
)

const (
	reasonError   = "error"
	reasonTimeout = "timeout"
	reasonEmpty   = "empty"
)

type completion struct {
	text   string
	reason string
}

func (c completion) failed() bool { return c.reason != "" }

// complete runs one bounded generation call and classifies the outcome.
// Failures are logged, counted and reported here so callers only pick a fallback.
func (s *DefaultConsultationService) complete(ctx context.Context, op string, req intelligence.GenerationRequest) completion {
	if s.Generator == nil {
		return s.fail(op, reasonError, intelligence.ErrUnavailable)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout())
	defer cancel()

	start := time.Now()
	text, err := s.Generator.Generate(ctx, req)
	monitoring.AIRequestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())

	switch {
	case err != nil && errors.Is(err, context.DeadlineExceeded):
		return s.fail(op, reasonTimeout, err)
	case err != nil:
		return s.fail(op, reasonError, err)
	case strings.TrimSpace(text) == "":
		return s.fail(op, reasonEmpty, nil)
	}
	return completion{text: text}
}

func (s *DefaultConsultationService) fail(op, reason string, err error) completion {
	monitoring.AIFallbackReplies.WithLabelValues(op, reason).Inc()
	utils.GetLogger().Warn("text generation fell back to canned reply",
		zap.String("operation", op),
		zap.String("reason", reason),
		zap.Error(err),
	)
	if err != nil && !errors.Is(err, intelligence.ErrUnavailable) {
		utils.CaptureError(utils.ExternalError("text generation failed", err), map[string]interface{}{
			"operation": op,
			"reason":    reason,
		})
	}
	return completion{reason: reason}
}
