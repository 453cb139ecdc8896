package learn_test

import (
	"context"
	"errors"
	"testing"

	"github.com/saulo-duarte/learnai-lambda/internal/learn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_Learn(t *testing.T) {
	ctx := context.Background()

	t.Run("success forwards compiled instruction", func(t *testing.T) {
		p := echoProvider()
		svc := learn.NewService(p)

		msg, err := svc.Learn(ctx, learn.LearnRequest{Task: learn.TaskGrammarCorrection, Text: "He go to school."})
		require.NoError(t, err)

		want, err := learn.Compile(learn.TaskGrammarCorrection, "He go to school.")
		require.NoError(t, err)
		require.Len(t, p.Calls(), 1)
		assert.Equal(t, want, p.Calls()[0])
		assert.Equal(t, "echo: "+want, msg)
	})

	t.Run("missing fields", func(t *testing.T) {
		p := echoProvider()
		svc := learn.NewService(p)

		for _, req := range []learn.LearnRequest{
			{Text: "hello"},
			{Task: learn.TaskFluentRephrase},
			{},
		} {
			_, err := svc.Learn(ctx, req)
			assert.ErrorIs(t, err, learn.ErrInvalidRequest)
		}
		assert.Empty(t, p.Calls())
	})

	t.Run("unsupported task", func(t *testing.T) {
		p := echoProvider()
		svc := learn.NewService(p)

		_, err := svc.Learn(ctx, learn.LearnRequest{Task: "unknown-task", Text: "hello"})
		assert.ErrorIs(t, err, learn.ErrUnsupportedTask)
		assert.Empty(t, p.Calls())
	})

	t.Run("provider failure is upstream", func(t *testing.T) {
		cause := errors.New("rpc error: quota exceeded for project 1234")
		p := failingProvider(cause)
		svc := learn.NewService(p)

		_, err := svc.Learn(ctx, learn.LearnRequest{Task: learn.TaskSentenceImprovement, Text: "hello"})
		assert.ErrorIs(t, err, learn.ErrUpstream)
		assert.ErrorIs(t, err, cause)
		assert.Len(t, p.Calls(), 1)
	})

	t.Run("empty model response is upstream", func(t *testing.T) {
		p := failingProvider(learn.ErrEmptyResponse)
		svc := learn.NewService(p)

		_, err := svc.Learn(ctx, learn.LearnRequest{Task: learn.TaskSentenceImprovement, Text: "hello"})
		assert.ErrorIs(t, err, learn.ErrUpstream)
		assert.ErrorIs(t, err, learn.ErrEmptyResponse)
	})
}

func TestService_Tasks(t *testing.T) {
	svc := learn.NewService(echoProvider())
	assert.Equal(t, learn.Tasks(), svc.Tasks())
}
