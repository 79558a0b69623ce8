package generation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type textSourceFunc func(ctx context.Context, prompt string) (string, error)

func (f textSourceFunc) Text(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

func TestTextOrFallback(t *testing.T) {
	ctx := context.Background()

	t.Run("nil source", func(t *testing.T) {
		g := testContext(testConfig())
		assert.Equal(t, "fallback", g.textOrFallback(ctx, "prompt", "fallback"))
	})

	t.Run("error never surfaces", func(t *testing.T) {
		g := testContext(testConfig())
		g.Text = textSourceFunc(func(context.Context, string) (string, error) {
			return "", errors.New("provider down")
		})
		assert.Equal(t, "fallback", g.textOrFallback(ctx, "prompt", "fallback"))
	})

	t.Run("blank response falls back", func(t *testing.T) {
		g := testContext(testConfig())
		g.Text = textSourceFunc(func(context.Context, string) (string, error) {
			return "  \n", nil
		})
		assert.Equal(t, "fallback", g.textOrFallback(ctx, "prompt", "fallback"))
	})

	t.Run("response trimmed", func(t *testing.T) {
		g := testContext(testConfig())
		g.Text = textSourceFunc(func(context.Context, string) (string, error) {
			return " A crisp description.\n", nil
		})
		assert.Equal(t, "A crisp description.", g.textOrFallback(ctx, "prompt", "fallback"))
	})
}
