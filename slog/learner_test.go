package slog_test

import (
	"bytes"
	"context"
	stdslog "log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juniperonsteam67-glitch/clawdoc"
	"github.com/juniperonsteam67-glitch/clawdoc/mock"
	clawslog "github.com/juniperonsteam67-glitch/clawdoc/slog"
)

func TestLoggingLearner_Learn(t *testing.T) {
	t.Parallel()

	t.Run("Success", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := stdslog.New(stdslog.NewTextHandler(&buf, nil))

		next := &mock.Learner{LearnFn: func(ctx context.Context, req clawdoc.SourceRequest) (*clawdoc.Document, error) {
			return &clawdoc.Document{Name: "tar", Type: clawdoc.TypeReferencePage}, nil
		}}

		l := clawslog.NewLoggingLearner(next, logger)
		doc, err := l.Learn(context.Background(), clawdoc.SourceRequest{Source: "man:tar"})
		require.NoError(t, err)

		assert.Equal(t, "tar", doc.Name)
		assert.Contains(t, buf.String(), "learned")
		assert.Contains(t, buf.String(), "man:tar")
	})

	t.Run("Failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := stdslog.New(stdslog.NewTextHandler(&buf, nil))

		next := &mock.Learner{LearnFn: func(ctx context.Context, req clawdoc.SourceRequest) (*clawdoc.Document, error) {
			return nil, clawdoc.Errorf(clawdoc.ENOTFOUND, "no entry")
		}}

		l := clawslog.NewLoggingLearner(next, logger)
		_, err := l.Learn(context.Background(), clawdoc.SourceRequest{Source: "man:missing"})
		require.Error(t, err)

		assert.Contains(t, buf.String(), "learn failed")
		assert.Contains(t, buf.String(), clawdoc.ENOTFOUND)
	})
}
