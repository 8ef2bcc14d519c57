package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/leadscout"
)

// Ensure LoggingInferencer implements leadscout.Inferencer.
var _ leadscout.Inferencer = (*LoggingInferencer)(nil)

// LoggingInferencer wraps an Inferencer with debug logging.
type LoggingInferencer struct {
	next   leadscout.Inferencer
	logger *slog.Logger
}

// NewLoggingInferencer creates a new LoggingInferencer.
func NewLoggingInferencer(next leadscout.Inferencer, logger *slog.Logger) *LoggingInferencer {
	return &LoggingInferencer{next: next, logger: logger}
}

// Infer logs prompt and reply sizes and delegates to the wrapped inferencer.
func (i *LoggingInferencer) Infer(ctx context.Context, prompt string) (reply string, err error) {
	defer func(begin time.Time) {
		i.logger.Info("infer",
			"prompt_bytes", len(prompt),
			"reply_bytes", len(reply),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return i.next.Infer(ctx, prompt)
}
