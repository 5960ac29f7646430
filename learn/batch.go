package learn

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/juniperonsteam67-glitch/clawdoc"
	"github.com/juniperonsteam67-glitch/clawdoc/bloom"
)

// Bloom filter sizing for batch deduplication.
const (
	batchExpectedSources   = 10000
	batchFalsePositiveRate = 0.01
)

// Failure records a source that could not be learned.
type Failure struct {
	Source string
	Err    error
}

// Report holds the outcome of a batch learning run. Learned documents
// appear in input order; failures do not abort the run.
type Report struct {
	Learned []*clawdoc.Document
	Failed  []Failure
	Skipped int
}

// LearnAll learns multiple sources concurrently. Duplicate sources
// within the batch are skipped. Individual failures are collected in
// the report; only context cancellation aborts the whole run.
func (l *Learner) LearnAll(ctx context.Context, reqs []clawdoc.SourceRequest) (*Report, error) {
	concurrency := l.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	seen := bloom.NewFilter(batchExpectedSources, batchFalsePositiveRate)
	report := &Report{}

	docs := make([]*clawdoc.Document, len(reqs))
	errs := make([]error, len(reqs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, req := range reqs {
		if seen.Seen(req.Source) {
			report.Skipped++
			l.logger().Debug("skipping duplicate source", slog.String("source", req.Source))
			continue
		}

		i, req := i, req
		g.Go(func() error {
			doc, err := l.Learn(gctx, req)
			docs[i] = doc
			errs[i] = err
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for i := range reqs {
		switch {
		case docs[i] != nil:
			report.Learned = append(report.Learned, docs[i])
		case errs[i] != nil:
			report.Failed = append(report.Failed, Failure{Source: reqs[i].Source, Err: errs[i]})
			l.logger().Warn("failed to learn source",
				slog.String("source", reqs[i].Source),
				slog.Any("error", errs[i]),
			)
		}
	}

	return report, nil
}
