// Package slog provides logging decorators for clawdoc services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/juniperonsteam67-glitch/clawdoc"
)

// Ensure LoggingLearner implements clawdoc.Learner.
var _ clawdoc.Learner = (*LoggingLearner)(nil)

// LoggingLearner wraps a Learner with timing and outcome logging.
type LoggingLearner struct {
	next   clawdoc.Learner
	logger *slog.Logger
}

// NewLoggingLearner creates a new LoggingLearner.
func NewLoggingLearner(next clawdoc.Learner, logger *slog.Logger) *LoggingLearner {
	return &LoggingLearner{next: next, logger: logger}
}

// Learn delegates to the wrapped learner and logs the outcome.
func (l *LoggingLearner) Learn(ctx context.Context, req clawdoc.SourceRequest) (*clawdoc.Document, error) {
	begin := time.Now()
	doc, err := l.next.Learn(ctx, req)
	if err != nil {
		l.logger.Warn("learn failed",
			"source", req.Source,
			"code", clawdoc.ErrorCode(err),
			"duration", time.Since(begin),
		)
		return nil, err
	}

	l.logger.Info("learned",
		"name", doc.Name,
		"source", req.Source,
		"type", string(doc.Type),
		"sections", len(doc.Sections),
		"duration", time.Since(begin),
	)
	return doc, nil
}
